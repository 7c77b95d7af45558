package tiff

import "github.com/pkg/errors"

// SubIfd is a pointer entry (ExifIFD, GPSInfoIFD, InteroperabilityIFD,
// SubIFDs, vendor RAW sub-images) whose value is the byte offset of a
// nested Directory, generalized from the teacher's `checkEmbeddedIfd`
// helper (parse.go), which inlines this same recursive-pointer pattern
// once per tag instead of as a reusable node.
type SubIfd struct {
	tag   ExtTag
	group Group
	dir   *Directory
}

func NewSubIfd(tag uint16, group Group, dir *Directory) *SubIfd {
	return &SubIfd{tag: ExtTag(tag), group: group, dir: dir}
}

func (s *SubIfd) Tag() ExtTag      { return s.tag }
func (s *SubIfd) Group() Group     { return s.group }
func (s *SubIfd) Directory() *Directory { return s.dir }

// AddPath forwards straight into the wrapped directory: the caller
// (Directory.AddPath) already consumed the hop that led here and
// sliced path down to whatever remains beneath it, so a SubIfd is a
// transparent pass-through, not another level of slicing. An empty
// remaining path means the leaf attaches directly inside dir.
func (s *SubIfd) AddPath(tag ExtTag, path Path, root Group, leaf Node) (Node, error) {
	return s.dir.AddPath(tag, path, root, leaf)
}
func (s *SubIfd) AddChild(child Node) error { return s.dir.AddChild(child) }
func (s *SubIfd) AddNext(next Node) error   { return &nodeKindError{"AddNext", "SubIfd"} }

func (s *SubIfd) Accept(v Visitor, flags VisitFlags) (VisitFlags, error) {
	return v.VisitSubIfd(s, flags)
}

func (s *SubIfd) Size() uint32  { return 12 }
func (s *SubIfd) Count() uint32 { return 1 }

func (s *SubIfd) SizeData() uint32 {
	return alignUp2(s.dir.Size() + s.dir.SizeData())
}

func (s *SubIfd) SizeImage() uint32 { return s.dir.SizeImage() }

// Write emits a Long pointer entry to c.dataOff, then writes the
// nested directory's own table and data area starting there.
func (s *SubIfd) Write(c *writeCursor) (uint32, error) {
	off := c.entryOff
	c.putU16(off, s.tag.Tag())
	c.putU16(off+2, uint16(TypeLong))
	c.putU32(off+4, 1)
	c.putU32(off+8, c.dataOff)
	c.entryOff = off + 12

	nested := &writeCursor{
		bo:       c.bo,
		buf:      c.buf,
		entryOff: c.dataOff,
		dataOff:  c.dataOff + s.dir.Size(),
		imageOff: c.imageOff,
		fixups:   c.fixups,
	}
	if _, err := s.dir.Write(nested); err != nil {
		return 0, errors.Wrapf(err, "writing sub-IFD tag %#x", s.tag.Tag())
	}
	c.dataOff = nested.dataOff
	c.imageOff = nested.imageOff
	return 12, nil
}
