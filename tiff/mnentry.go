package tiff

import "github.com/pkg/errors"

// MnEntry is the MakerNote tag (0x927C) entry itself: it dispatches to
// a vendor-specific IfdMakernote child when the header is recognized
// (C7), and otherwise preserves the original bytes verbatim so an
// unrecognized maker note survives a round-trip untouched (spec §4.4
// "unknown maker notes are preserved as opaque Undefined blobs").
// Grounded on the teacher's two-entry `maker` dispatch table in
// exif.go (`maker{name, try}` for Apple/Nikon), generalized to the
// full vendor set via C7's prefix table.
type MnEntry struct {
	tag   ExtTag
	group Group
	raw   []byte
	child *IfdMakernote // nil if the signature was not recognized
}

func NewMnEntry(group Group, raw []byte, child *IfdMakernote) *MnEntry {
	return &MnEntry{tag: ExtTag(0x927c), group: group, raw: raw, child: child}
}

func (m *MnEntry) Tag() ExtTag  { return m.tag }
func (m *MnEntry) Group() Group { return m.group }
func (m *MnEntry) Known() bool       { return m.child != nil }
func (m *MnEntry) Raw() []byte       { return m.raw }
func (m *MnEntry) Child() *IfdMakernote { return m.child }

// AddPath forwards straight into the vendor child, mirroring
// SubIfd.AddPath: the caller already sliced path down to what remains
// beneath this node, so this is a transparent pass-through.
func (m *MnEntry) AddPath(tag ExtTag, path Path, root Group, leaf Node) (Node, error) {
	if m.child == nil {
		return nil, errors.Wrap(ErrCorruptedMetadata, "MnEntry.AddPath: maker note not recognized")
	}
	return m.child.AddPath(tag, path, root, leaf)
}
func (m *MnEntry) AddChild(child Node) error {
	if m.child == nil {
		return errors.Wrap(ErrCorruptedMetadata, "MnEntry.AddChild: maker note not recognized")
	}
	return m.child.AddChild(child)
}
func (m *MnEntry) AddNext(Node) error { return &nodeKindError{"AddNext", "MnEntry"} }

func (m *MnEntry) Accept(v Visitor, flags VisitFlags) (VisitFlags, error) {
	return v.VisitMnEntry(m, flags)
}

func (m *MnEntry) Size() uint32 { return 12 }
func (m *MnEntry) Count() uint32 { return 1 }

func (m *MnEntry) SizeData() uint32 {
	if m.child == nil {
		return alignUp2(uint32(len(m.raw)))
	}
	return alignUp2(m.child.Size() + m.child.SizeData())
}

func (m *MnEntry) SizeImage() uint32 {
	if m.child == nil {
		return 0
	}
	return m.child.SizeImage()
}

// Write emits the MakerNote entry as an Undefined-type pointer; if the
// maker note was recognized, the child IfdMakernote is responsible for
// its own header + nested-IFD bytes, otherwise the original raw bytes
// are copied verbatim (spec §4.4 "preserved as opaque Undefined blob").
func (m *MnEntry) Write(c *writeCursor) (uint32, error) {
	off := c.entryOff
	c.putU16(off, m.tag.Tag())
	c.putU16(off+2, uint16(TypeUndefined))

	if m.child == nil {
		c.putU32(off+4, uint32(len(m.raw)))
		c.putU32(off+8, c.dataOff)
		c.entryOff = off + 12
		if err := writeDataArea(c, m.raw); err != nil {
			return 0, errors.Wrap(err, "writing raw maker note")
		}
		return 12, nil
	}

	c.putU32(off+4, m.child.Size()+m.child.SizeData())
	c.putU32(off+8, c.dataOff)
	c.entryOff = off + 12

	nested := &writeCursor{
		bo:       c.bo,
		buf:      c.buf,
		entryOff: c.dataOff,
		dataOff:  c.dataOff + m.child.Size() + m.child.Directory().Size(),
		imageOff: c.imageOff,
		fixups:   c.fixups,
	}
	if _, err := m.child.Write(nested); err != nil {
		return 0, errors.Wrap(err, "writing maker note body")
	}
	c.dataOff = nested.dataOff
	c.imageOff = nested.imageOff
	return 12, nil
}
