package tiff

import "github.com/pkg/errors"

// ImageEntry owns a trailing block of raw image bytes (a thumbnail, a
// strip, a tile) written to the root directory's image area rather
// than its data area, and addressed by an offset entry (tag
// JPEGInterchangeFormat/StripOffsets/TileOffsets). Grounded on the
// teacher's tOffset/tLen pair in Desc plus thumbnailValue in
// values.go, split here into its own node so the writer can place
// image bytes after the data area as spec §4.3's layout requires.
type ImageEntry struct {
	tag   ExtTag
	group Group
	typ   Type // TypeLong classically; TypeShort for some strip tags
	data  []byte
}

func NewImageEntry(tag uint16, group Group, typ Type, data []byte) *ImageEntry {
	return &ImageEntry{tag: ExtTag(tag), group: group, typ: typ, data: data}
}

func (e *ImageEntry) Tag() ExtTag  { return e.tag }
func (e *ImageEntry) Group() Group { return e.group }
func (e *ImageEntry) Data() []byte { return e.data }

func (e *ImageEntry) AddPath(tag ExtTag, path Path, root Group, leaf Node) (Node, error) {
	return nil, &nodeKindError{"AddPath", "ImageEntry"}
}
func (e *ImageEntry) AddChild(Node) error { return &nodeKindError{"AddChild", "ImageEntry"} }
func (e *ImageEntry) AddNext(Node) error  { return &nodeKindError{"AddNext", "ImageEntry"} }

func (e *ImageEntry) Accept(v Visitor, flags VisitFlags) (VisitFlags, error) {
	return v.VisitImageEntry(e, flags)
}

func (e *ImageEntry) Size() uint32      { return 12 }
func (e *ImageEntry) Count() uint32     { return 1 }
func (e *ImageEntry) SizeData() uint32  { return 0 }
func (e *ImageEntry) SizeImage() uint32 { return alignUp2(uint32(len(e.data))) }

// Write emits the entry header with its offset slot pointing at
// c.imageOff, then copies the image bytes there.
func (e *ImageEntry) Write(c *writeCursor) (uint32, error) {
	off := c.entryOff
	c.putU16(off, e.tag.Tag())
	c.putU16(off+2, e.typ.WireCode())
	c.putU32(off+4, 1)
	c.putU32(off+8, c.imageOff)

	if err := need(c.buf, c.imageOff, uint32(len(e.data))); err != nil {
		return 0, errors.Wrapf(err, "writing image area for tag %#x", e.tag.Tag())
	}
	copy(c.buf[c.imageOff:], e.data)
	c.imageOff += alignUp2(uint32(len(e.data)))
	c.entryOff = off + 12
	return 12, nil
}
