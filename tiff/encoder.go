package tiff

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// Encoder merges user-level edits (an ExifData produced by Decode,
// modified by the caller) back into a composite tree, then picks one
// of the two write strategies spec §4.3 describes. Grounded on the
// teacher's `Serialize` entry point (serialize.go), generalized to
// also carry the merge step the teacher never needed (it only ever
// wrote back exactly what it had just parsed).
type Encoder struct {
	creator Creator
}

// NewEncoder returns a ready-to-use Encoder; it carries no state of
// its own beyond the (stateless) Creator tables.
func NewEncoder() *Encoder { return &Encoder{} }

// Merge applies every Datum in edits to root, creating intermediate
// Directory/SubIfd nodes along the way via Creator.GetPath/Create
// (spec §2 "user edits ExifData -> C11 maps each datum via C3 to a
// path, calls addPath to materialize tree nodes").
func (enc *Encoder) Merge(root *Directory, edits *ExifData) error {
	for _, d := range edits.Data {
		if err := enc.mergeOne(root, d); err != nil {
			return errors.Wrapf(err, "merging %s", d.Key())
		}
	}
	return nil
}

func (enc *Encoder) mergeOne(root *Directory, d Datum) error {
	leaf := enc.creator.Create(d.Tag.Tag(), d.Group, d.Value)
	if d.Group == GroupIfd0 {
		return root.AddChild(leaf)
	}
	tag, path, _, err := enc.creator.GetPath(d.Group)
	if err != nil {
		return err
	}
	_, err = root.AddPath(ExtTag(tag), path, GroupIfd0, leaf)
	return err
}

// Encode writes root out, per spec §4.3's policy: try the
// non-intrusive in-place patch first (only possible when the caller
// supplies the original buffer the tree was read from), falling back
// to a full intrusive rewrite whenever any edit does not fit its
// original slot, or no original buffer is available at all (a tree
// built from scratch, never read).
func (enc *Encoder) Encode(root *Directory, original []byte, edits *ExifData, opts *WriteOptions) ([]byte, error) {
	if original != nil {
		if patched, ok, err := tryInPlace(original, edits, opts.byteOrder()); err != nil {
			return nil, err
		} else if ok {
			return patched, nil
		}
	}
	return WriteTiff(root, opts)
}

// entryWithWireOrigin is satisfied by *Entry and *DataEntry: the two
// node kinds that remember where ReadTiff found them, and so are the
// only ones eligible for an in-place patch.
type entryWithWireOrigin interface {
	Node
	wireInfo() (wireOrigin, bool)
}

func (e *Entry) wireInfo() (wireOrigin, bool) {
	if e.wire.entryOff == 0 {
		return wireOrigin{}, false
	}
	return e.wire, true
}

func (e *DataEntry) wireInfo() (wireOrigin, bool) {
	if e.wire.entryOff == 0 {
		return wireOrigin{}, false
	}
	return e.wire, true
}

// tryInPlace implements spec §4.3's non-intrusive strategy over a
// whole ExifData batch: if every edited Datum both originated from a
// read entry (Datum.srcNode set by Decode) and still fits the slot it
// was read from, patch a copy of original directly and leave every
// other offset in the file untouched. The moment any edit can't be
// satisfied that way it returns ok=false, signaling the caller to
// fall back to WriteTiff -- no partial patch is ever returned.
func tryInPlace(original []byte, edits *ExifData, bo binary.ByteOrder) ([]byte, bool, error) {
	patched := make([]byte, len(original))
	copy(patched, original)

	for _, d := range edits.Data {
		src, ok := d.srcNode.(entryWithWireOrigin)
		if !ok {
			return nil, false, nil
		}
		fit, err := patchInPlace(patched, bo, src, d.Value)
		if err != nil {
			return nil, false, err
		}
		if !fit {
			return nil, false, nil
		}
	}
	return patched, true, nil
}

// patchInPlace overwrites node's original bytes with newValue if
// newValue's wire type matches the entry's original type, its count
// does not exceed the original count, and (for out-of-line values)
// its byte size does not exceed the original data-area allocation
// (spec §4.3 "same type, count <= original count, data-area usage has
// not grown"). It reports fit=false, nil -- never a partial write --
// when the edit does not satisfy those constraints.
func patchInPlace(buf []byte, bo binary.ByteOrder, node entryWithWireOrigin, newValue Value) (bool, error) {
	origin, ok := node.wireInfo()
	if !ok {
		return false, nil
	}
	if newValue.TypeID().WireCode() != wireCodeOf(node) {
		return false, nil
	}
	if newValue.Count() > origin.origCount || newValue.Size() > origin.origSize {
		return false, nil
	}

	if err := need(buf, origin.entryOff, 12); err != nil {
		return false, err
	}
	putU32(bo, buf, origin.entryOff+4, newValue.Count())

	if origin.inline {
		if newValue.Size() > 4 {
			return false, nil
		}
		copy(buf[origin.entryOff+8:origin.entryOff+12], newValue.Bytes())
		return true, nil
	}

	if err := need(buf, origin.dataOff, newValue.Size()); err != nil {
		return false, err
	}
	copy(buf[origin.dataOff:], newValue.Bytes())
	return true, nil
}

// wireCodeOf returns the original entry's wire type code, read back
// from its own current Value (an Entry/DataEntry's Value never changes
// type after ReadTiff constructs it, only after a successful in-place
// or merged edit replaces the node entirely).
func wireCodeOf(node entryWithWireOrigin) uint16 {
	switch n := node.(type) {
	case *Entry:
		return n.Value().TypeID().WireCode()
	case *DataEntry:
		return n.Value().TypeID().WireCode()
	default:
		return 0
	}
}
