package tiff

// SizeEntry is a companion entry (StripByteCounts, JPEGInterchangeFormatLength)
// whose value is derived from a paired ImageEntry's current byte length
// rather than stored independently, so the two can never drift out of
// sync across an edit (spec §4.3's offset-consistency invariant).
// Grounded on the teacher's tLen field in Desc, which `checkJPEGInterchangeFormatLength`
// reads directly off the decoded thumbnail rather than caching a
// separately-settable count.
type SizeEntry struct {
	tag    ExtTag
	group  Group
	typ    Type
	sizeOf *ImageEntry
}

func NewSizeEntry(tag uint16, group Group, typ Type, sizeOf *ImageEntry) *SizeEntry {
	return &SizeEntry{tag: ExtTag(tag), group: group, typ: typ, sizeOf: sizeOf}
}

func (e *SizeEntry) Tag() ExtTag  { return e.tag }
func (e *SizeEntry) Group() Group { return e.group }

func (e *SizeEntry) AddPath(tag ExtTag, path Path, root Group, leaf Node) (Node, error) {
	return nil, &nodeKindError{"AddPath", "SizeEntry"}
}
func (e *SizeEntry) AddChild(Node) error { return &nodeKindError{"AddChild", "SizeEntry"} }
func (e *SizeEntry) AddNext(Node) error  { return &nodeKindError{"AddNext", "SizeEntry"} }

func (e *SizeEntry) Accept(v Visitor, flags VisitFlags) (VisitFlags, error) {
	return v.VisitSizeEntry(e, flags)
}

func (e *SizeEntry) Size() uint32      { return 12 }
func (e *SizeEntry) Count() uint32     { return 1 }
func (e *SizeEntry) SizeData() uint32  { return 0 }
func (e *SizeEntry) SizeImage() uint32 { return 0 }

// Length returns the current byte length of the paired ImageEntry.
func (e *SizeEntry) Length() uint32 { return uint32(len(e.sizeOf.data)) }

func (e *SizeEntry) Write(c *writeCursor) (uint32, error) {
	off := c.entryOff
	c.putU16(off, e.tag.Tag())
	c.putU16(off+2, e.typ.WireCode())
	c.putU32(off+4, 1)
	c.putU32(off+8, e.Length())
	c.entryOff = off + 12
	return 12, nil
}
