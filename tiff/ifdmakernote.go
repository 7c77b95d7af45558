package tiff

import "github.com/pkg/errors"

// IfdMakernote is a recognized vendor maker note: a fixed vendor
// header (signature, optional embedded byte order, base-offset rule)
// followed by a nested Directory of vendor-defined tags. The vendor
// headers are parsed by the functions in makernote_*.go (C7), most of
// them sharing simpleMakernoteHeader, generalized from the shape of
// garyhouston-tiff66's per-vendor SpaceRec (GetSpace/IsMakerNote/
// getIFDTree/getFooter/putIFDTree).
type IfdMakernote struct {
	group  Group
	header MakernoteHeader
	dir    *Directory
}

func NewIfdMakernote(group Group, header MakernoteHeader, dir *Directory) *IfdMakernote {
	return &IfdMakernote{group: group, header: header, dir: dir}
}

func (m *IfdMakernote) Tag() ExtTag        { return TagRoot }
func (m *IfdMakernote) Group() Group       { return m.group }
func (m *IfdMakernote) Directory() *Directory { return m.dir }
func (m *IfdMakernote) Header() MakernoteHeader { return m.header }

// AddPath forwards straight into the wrapped directory, mirroring
// SubIfd.AddPath: the caller already sliced path down to what remains
// beneath this node, so this is a transparent pass-through.
func (m *IfdMakernote) AddPath(tag ExtTag, path Path, root Group, leaf Node) (Node, error) {
	return m.dir.AddPath(tag, path, root, leaf)
}
func (m *IfdMakernote) AddChild(child Node) error { return m.dir.AddChild(child) }
func (m *IfdMakernote) AddNext(Node) error        { return &nodeKindError{"AddNext", "IfdMakernote"} }

func (m *IfdMakernote) Accept(v Visitor, flags VisitFlags) (VisitFlags, error) {
	return v.VisitIfdMakernote(m, flags)
}

func (m *IfdMakernote) Size() uint32 { return m.header.HeaderSize() }
func (m *IfdMakernote) Count() uint32 { return 1 }

func (m *IfdMakernote) SizeData() uint32 {
	return alignUp2(m.dir.Size() + m.dir.SizeData())
}

func (m *IfdMakernote) SizeImage() uint32 { return m.dir.SizeImage() }

// Write emits the vendor header bytes at c.entryOff, then the nested
// directory immediately after.
func (m *IfdMakernote) Write(c *writeCursor) (uint32, error) {
	headerOff := c.entryOff
	headerBytes := m.header.Encode(c.bo)
	if err := need(c.buf, headerOff, uint32(len(headerBytes))); err != nil {
		return 0, errors.Wrap(err, "writing maker note header")
	}
	copy(c.buf[headerOff:], headerBytes)
	c.entryOff = headerOff + uint32(len(headerBytes))

	if _, err := m.dir.Write(c); err != nil {
		return 0, errors.Wrap(err, "writing maker note directory")
	}
	return c.entryOff - headerOff, nil
}
