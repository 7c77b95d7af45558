package tiff

// BinaryElement is one named, fixed-offset field inside a BinaryArray
// (spec §4.5), e.g. Nikon ShotInfo's "ISOSetting" or "ShutterCount".
// It is a Node purely so the decoder visitor can walk it like any
// other leaf; it never appears in a parent's wire entry table (its
// BinaryArray owns that).
type BinaryElement struct {
	name   string
	group  Group
	offset uint32
	value  Value
}

func NewBinaryElement(name string, group Group, offset uint32, value Value) *BinaryElement {
	return &BinaryElement{name: name, group: group, offset: offset, value: value}
}

func (e *BinaryElement) Name() string  { return e.name }
func (e *BinaryElement) Offset() uint32 { return e.offset }
func (e *BinaryElement) Value() Value  { return e.value }

// Tag synthesizes a stable ExtTag from the element's byte offset so it
// can participate in lookups the same way an ordinary tag does; it is
// never written to the wire.
func (e *BinaryElement) Tag() ExtTag  { return ExtTag(e.offset) }
func (e *BinaryElement) Group() Group { return e.group }

func (e *BinaryElement) AddPath(tag ExtTag, path Path, root Group, leaf Node) (Node, error) {
	return nil, &nodeKindError{"AddPath", "BinaryElement"}
}
func (e *BinaryElement) AddChild(Node) error { return &nodeKindError{"AddChild", "BinaryElement"} }
func (e *BinaryElement) AddNext(Node) error  { return &nodeKindError{"AddNext", "BinaryElement"} }

func (e *BinaryElement) Accept(v Visitor, flags VisitFlags) (VisitFlags, error) {
	return v.VisitBinaryElement(e, flags)
}

func (e *BinaryElement) Size() uint32      { return 0 }
func (e *BinaryElement) Count() uint32     { return 0 }
func (e *BinaryElement) SizeData() uint32  { return 0 }
func (e *BinaryElement) SizeImage() uint32 { return 0 }

// Write is a no-op: a BinaryElement's bytes live inside its owning
// BinaryArray's raw payload and are emitted by BinaryArray.Write.
func (e *BinaryElement) Write(c *writeCursor) (uint32, error) { return 0, nil }
