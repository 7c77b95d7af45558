package tiff

import "encoding/binary"

// VisitFlags lets a Visitor steer traversal as it walks the composite
// tree (spec §4.1's "{Traverse, KnownMakernote}" flag set). A visit
// method clears FlagTraverse to skip a subtree's children (e.g. an
// unrecognized MakerNote whose bytes should be preserved but not
// descended into).
type VisitFlags uint8

const (
	FlagTraverse VisitFlags = 1 << iota
	FlagKnownMakernote
)

func defaultFlags() VisitFlags { return FlagTraverse }

// Visitor is implemented once per tree walk: the decoder (C10) builds
// an ExifData list. The encoder/writer (C11) does not use it; it calls
// each node's Size and Write methods directly. Generalized from the teacher's single-purpose ifdd walk
// (exif.go's checkIFD/Format) into an explicit double-dispatch visitor,
// one method per concrete Node type.
type Visitor interface {
	VisitDirectory(d *Directory, flags VisitFlags) (VisitFlags, error)
	VisitEntry(e *Entry, flags VisitFlags) (VisitFlags, error)
	VisitDataEntry(e *DataEntry, flags VisitFlags) (VisitFlags, error)
	VisitSizeEntry(e *SizeEntry, flags VisitFlags) (VisitFlags, error)
	VisitImageEntry(e *ImageEntry, flags VisitFlags) (VisitFlags, error)
	VisitSubIfd(s *SubIfd, flags VisitFlags) (VisitFlags, error)
	VisitMnEntry(m *MnEntry, flags VisitFlags) (VisitFlags, error)
	VisitIfdMakernote(m *IfdMakernote, flags VisitFlags) (VisitFlags, error)
	VisitBinaryArray(b *BinaryArray, flags VisitFlags) (VisitFlags, error)
	VisitBinaryElement(b *BinaryElement, flags VisitFlags) (VisitFlags, error)
}

// writeCursor threads the six-phase layout state (spec §4.3) through a
// Write call: the entry table, the data area, and the trailing image
// area grow independently, and a node only ever needs to know where
// its own slice of each area begins.
type writeCursor struct {
	bo  binary.ByteOrder
	buf []byte

	entryOff uint32 // next 12-byte entry slot
	dataOff  uint32 // next out-of-line data byte
	imageOff uint32 // next trailing image byte

	fixups *offsetFixups
}

func (c *writeCursor) putU16(off uint32, v uint16) { putU16(c.bo, c.buf, off, v) }
func (c *writeCursor) putU32(off uint32, v uint32) { putU32(c.bo, c.buf, off, v) }

// Node is the tagged-sum composite tree element of spec §3/§4.1,
// realized as a Go interface over concrete structs rather than a
// closed sum type. Every node knows its own wire footprint (Size,
// SizeData, SizeImage) so a parent can lay out its children without
// a second traversal pass.
type Node interface {
	// Tag returns the node's (possibly synthetic) extended tag.
	Tag() ExtTag
	// Group returns the IFD group the node belongs to.
	Group() Group

	// AddPath locates or creates the node addressed by path, starting
	// the walk at root with tag as the first step already consumed
	// (spec §4.1: "Creator produces a TiffPath per user key; addPath
	// in C4 walks/creates nodes along it"). It returns the terminal
	// node: an existing one if the path already resolves, or leaf
	// (attached at the right place) if it didn't.
	AddPath(tag ExtTag, path Path, root Group, leaf Node) (Node, error)
	// AddChild attaches child as an ordinary child of this node.
	AddChild(child Node) error
	// AddNext attaches next as this node's IFD-chain successor
	// (only meaningful on *Directory; a no-op returning an error on
	// leaf node types).
	AddNext(next Node) error

	// Accept double-dispatches to the appropriate Visitor method.
	Accept(v Visitor, flags VisitFlags) (VisitFlags, error)

	// Size is this node's own contribution to its parent's 12-byte
	// entry table: 12 for an entry node, including SubIfd, MnEntry and
	// BinaryArray; 0 for a BinaryElement. A Directory reports ITS OWN
	// table (2-byte count, 12 bytes per entry, 4-byte next-IFD offset),
	// and an IfdMakernote the length of its vendor header.
	Size() uint32
	// Count is the number of 12-byte entries this node contributes
	// at the level it is walked from (1 for a leaf, len(children) for
	// a Directory being serialized as an IFD).
	Count() uint32
	// SizeData is the size, in bytes, of any out-of-line data area
	// this node owns (entry values too large to fit inline, plus any
	// data areas owned transitively by children).
	SizeData() uint32
	// SizeImage is the size, in bytes, of any trailing image/
	// thumbnail/strip data this node owns.
	SizeImage() uint32

	// Write emits this node's entry (and recursively its data/image
	// areas) through c, returning the number of entry-table bytes
	// written at c.entryOff.
	Write(c *writeCursor) (uint32, error)
}

// nodeKindError is returned by AddPath, AddChild or AddNext on node
// types that do not support that operation (e.g. AddNext on anything
// but *Directory).
type nodeKindError struct {
	op   string
	kind string
}

func (e *nodeKindError) Error() string {
	return "tiff: " + e.op + " not supported on " + e.kind
}
