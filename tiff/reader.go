package tiff

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// UnknownTagPolicy controls what the reader does when it meets a tag
// the registry does not recognize: keep it as a generic Entry, drop it,
// or stop reading the directory (spec §4.2, grounded on the
// teacher's `Control.Unknown` / ConUnTag enum in exif.go).
type UnknownTagPolicy int

const (
	KeepUnknownTag UnknownTagPolicy = iota
	DropUnknownTag
	StopOnUnknownTag
)

// Options configures a ReadTiff call: the byte-slice-oriented
// counterpart of spec §6's I/O-backend collaborator contract.
// Grounded on the teacher's Control struct (exif.go).
type Options struct {
	Unknown UnknownTagPolicy
	// MaxDirectories bounds how many IFDs (including nested sub-IFDs
	// and maker-note directories) a single ReadTiff call will walk,
	// defaulting to len(data)/16 when zero -- the same
	// file_size/16 directory budget spec §4.2's robustness invariants
	// require, since the smallest possible IFD entry is far larger
	// than 16 bytes and a legitimate file cannot contain more
	// directories than that.
	MaxDirectories int
}

func (o *Options) maxDirectories(dataLen int) int {
	if o != nil && o.MaxDirectories > 0 {
		return o.MaxDirectories
	}
	return dataLen / 16
}

func (o *Options) unknownPolicy() UnknownTagPolicy {
	if o == nil {
		return KeepUnknownTag
	}
	return o.Unknown
}

// readState threads the per-call budget and cycle guard through the
// recursive directory walk.
type readState struct {
	data       []byte
	bo         binary.ByteOrder
	opts       *Options
	visited    map[uint32]bool
	budget     int
	creator    Creator
	makerByMake string
}

// ReadTiff parses a TIFF byte slice (already extracted from its
// envelope) into a composite tree rooted at IFD0, per spec §4.2's
// 5-step per-directory algorithm: decode the header, walk IFD0, chase
// any nested sub-IFD/MakerNote pointers depth-first, then walk IFD1 if
// IFD0's next-IFD offset is non-zero. Binary-array tags are read as
// ordinary entries: the reader builds no BinaryArray nodes.
func ReadTiff(data []byte, opts *Options) (*Directory, binary.ByteOrder, error) {
	hdr, err := ReadHeader(data)
	if err != nil {
		return nil, nil, err
	}
	st := &readState{
		data:    data,
		bo:      hdr.ByteOrder,
		opts:    opts,
		visited: make(map[uint32]bool),
		budget:  opts.maxDirectories(len(data)),
	}

	root, nextOff, err := st.readDirectory(GroupIfd0, hdr.FirstIfdOff)
	if err != nil {
		return nil, nil, errors.Wrap(err, "reading IFD0")
	}
	if nextOff != 0 && st.budget > 0 {
		thumb, _, err := st.readDirectory(GroupIfd1, nextOff)
		if err != nil {
			return nil, nil, errors.Wrap(err, "reading IFD1")
		}
		root.AddNext(thumb)
	}
	return root, hdr.ByteOrder, nil
}

// readDirectory decodes one IFD at offset off: the 2-byte entry
// count, each 12-byte entry (recursing into nested IFDs/MakerNotes as
// their tags are recognized), and the trailing 4-byte next-IFD
// offset. It implements spec §4.2's overflow-safe bounds checks and
// visited-offset cycle guard, and isolates a single malformed sibling
// entry rather than aborting the whole directory (spec §7 "sibling-
// IFD isolation on read"), except under StopOnUnknownTag, which aborts
// on the first entry that fails to read.
func (st *readState) readDirectory(group Group, off uint32) (*Directory, uint32, error) {
	if st.budget <= 0 {
		return nil, 0, errors.Wrap(ErrCorruptedMetadata, "directory budget exhausted (possible cycle)")
	}
	if st.visited[off] {
		return nil, 0, errors.Wrapf(ErrCorruptedMetadata, "cycle detected at offset %#x", off)
	}
	st.visited[off] = true
	st.budget--

	count, err := readU16(st.bo, st.data, off)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "directory %s: reading entry count at %#x", group, off)
	}
	dir := NewDirectory(group)

	entryOff := off + 2
	for i := uint16(0); i < count; i++ {
		node, err := st.readEntry(group, entryOff)
		if err != nil {
			switch st.opts.unknownPolicy() {
			case StopOnUnknownTag:
				return nil, 0, errors.Wrapf(err, "directory %s: entry %d", group, i)
			default:
				// Sibling isolation: skip this entry, keep the rest of
				// the directory (spec §7).
			}
		} else if node != nil {
			if err := dir.AddChild(node); err != nil {
				return nil, 0, errors.Wrapf(err, "directory %s: attaching entry %d", group, i)
			}
		}
		entryOff += 12
	}

	nextOff, err := readU32(st.bo, st.data, entryOff)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "directory %s: reading next-IFD offset", group)
	}
	return dir, nextOff, nil
}

// readEntry decodes one 12-byte IFD entry at off and, for tags the
// registry marks as addressing a nested IFD, recursively reads that
// IFD and wraps it in a SubIfd node instead of a plain Entry.
func (st *readState) readEntry(group Group, off uint32) (Node, error) {
	tag, err := readU16(st.bo, st.data, off)
	if err != nil {
		return nil, err
	}
	wireType, err := readU16(st.bo, st.data, off+2)
	if err != nil {
		return nil, err
	}
	count, err := readU32(st.bo, st.data, off+4)
	if err != nil {
		return nil, err
	}

	info, known := LookupTag(group, tag)
	if !known {
		switch st.opts.unknownPolicy() {
		case DropUnknownTag:
			return nil, nil
		case StopOnUnknownTag:
			return nil, errors.Wrapf(ErrCorruptedMetadata, "unknown tag %#x in %s", tag, group)
		}
	}
	typ := Type(wireType)
	if known && info.Type != TypeUndefined && info.Type.IsInternal() {
		typ = info.Type
	}

	if tag == 0x927c && group == GroupExifIfd {
		return st.readMakerNote(group, off, count)
	}

	if known {
		if childGroup, ok := info.HasChild(); ok {
			ptr, err := readU32(st.bo, st.data, off+8)
			if err != nil {
				return nil, err
			}
			if ptr == 0 {
				// spec §9 Open Question: a zero sub-IFD pointer is
				// accepted as "absent", not an error.
				return nil, nil
			}
			nested, _, err := st.readDirectory(childGroup, ptr)
			if err != nil {
				return nil, errors.Wrapf(err, "reading nested IFD for tag %#x", tag)
			}
			return NewSubIfd(tag, group, nested), nil
		}
	}

	valSize := typ.Size() * count
	inline := valSize <= 4
	var payload []byte
	var dataOff uint32
	if inline {
		if err := need(st.data, off+8, valSize); err != nil {
			return nil, err
		}
		payload = st.data[off+8 : off+8+valSize]
	} else {
		ptr, err := readU32(st.bo, st.data, off+8)
		if err != nil {
			return nil, err
		}
		if err := need(st.data, ptr, valSize); err != nil {
			return nil, errors.Wrapf(ErrOffsetOutOfRange, "tag %#x: %v", tag, err)
		}
		payload = st.data[ptr : ptr+valSize]
		dataOff = ptr
	}

	value, err := ParseValue(st.bo, typ, count, payload)
	if err != nil {
		return nil, errors.Wrapf(err, "tag %#x", tag)
	}
	if tag == 0x010f && group == GroupIfd0 {
		st.makerByMake = value.String()
	}

	switch n := newLeafNode(tag, group, value).(type) {
	case *DataEntry:
		n.setWireOrigin(off, dataOff)
		return n, nil
	case *Entry:
		n.setWireOrigin(off, dataOff, inline)
		return n, nil
	default:
		return n, nil
	}
}

// readMakerNote decodes the MakerNote entry (0x927c): it slices out
// the maker note's raw bytes, attempts vendor dispatch (C7), and
// returns an MnEntry wrapping either a recognized IfdMakernote or the
// untouched raw bytes (spec §4.4).
func (st *readState) readMakerNote(group Group, off uint32, count uint32) (Node, error) {
	ptr, err := readU32(st.bo, st.data, off+8)
	if err != nil {
		return nil, err
	}
	if ptr > uint32(len(st.data)) {
		return nil, errors.Wrap(ErrOffsetOutOfRange, "maker note")
	}
	// A declared length running past the end of the buffer is clamped to
	// the bytes present; such a note is kept only if its signature is
	// still recognized.
	clamped := false
	if err := need(st.data, ptr, count); err != nil {
		count = uint32(len(st.data)) - ptr
		clamped = true
	}
	raw := st.data[ptr : ptr+count]

	header, mnGroup, consumed, ok := IdentifyMakernote(raw, st.makerByMake)
	if !ok || consumed > uint32(len(raw)) {
		if clamped {
			return nil, errors.Wrap(ErrCorruptedMetadata, "maker note: length overruns buffer and signature not recognized")
		}
		return NewMnEntry(group, raw, nil), nil
	}

	// The nested IFD starts right after the vendor header, at an
	// absolute offset of ptr+consumed; BaseOffset instead governs how
	// pointers *inside* that nested IFD are resolved (spec §4.4).
	bo := header.ByteOrder()
	if bo == nil {
		bo = st.bo
	}
	sub := &readState{
		data:    st.data,
		bo:      bo,
		opts:    st.opts,
		visited: st.visited,
		budget:  st.budget,
	}
	dir, _, err := sub.readDirectory(mnGroup, ptr+consumed)
	st.budget = sub.budget
	if err != nil {
		return NewMnEntry(group, raw, nil), nil
	}
	return NewMnEntry(group, raw, NewIfdMakernote(mnGroup, header, dir)), nil
}
