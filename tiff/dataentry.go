package tiff

import "github.com/pkg/errors"

// DataEntry is an entry whose value is always written to the data
// area, even when it would otherwise fit in the inline 4-byte slot.
// Used for tags the registry marks as "always-offset" (spec §3
// DataEntry) -- typically values that are logically variable-length
// even though a particular instance happens to be short, such as
// GPS coordinate triplets and LensSpecification's 4-rational array,
// where callers expect a stable out-of-line address to patch in place
// without ever touching the entry table (spec §4.3 "non-intrusive
// update" strategy).
type DataEntry struct {
	tag   ExtTag
	group Group
	value Value
	wire  wireOrigin
}

func NewDataEntry(tag uint16, group Group, value Value) *DataEntry {
	return &DataEntry{tag: ExtTag(tag), group: group, value: value}
}

func (e *DataEntry) Tag() ExtTag  { return e.tag }
func (e *DataEntry) Group() Group { return e.group }
func (e *DataEntry) Value() Value { return e.value }

func (e *DataEntry) setWireOrigin(entryOff, dataOff uint32) {
	e.wire = wireOrigin{entryOff: entryOff, dataOff: dataOff, origSize: e.value.Size(), origCount: e.value.Count()}
}

func (e *DataEntry) AddPath(tag ExtTag, path Path, root Group, leaf Node) (Node, error) {
	return nil, &nodeKindError{"AddPath", "DataEntry"}
}
func (e *DataEntry) AddChild(Node) error { return &nodeKindError{"AddChild", "DataEntry"} }
func (e *DataEntry) AddNext(Node) error  { return &nodeKindError{"AddNext", "DataEntry"} }

func (e *DataEntry) Accept(v Visitor, flags VisitFlags) (VisitFlags, error) {
	return v.VisitDataEntry(e, flags)
}

func (e *DataEntry) Size() uint32     { return 12 }
func (e *DataEntry) Count() uint32    { return 1 }
func (e *DataEntry) SizeData() uint32 { return alignUp2(e.value.Size()) }
func (e *DataEntry) SizeImage() uint32 { return 0 }

func (e *DataEntry) Write(c *writeCursor) (uint32, error) {
	off := c.entryOff
	c.putU16(off, e.tag.Tag())
	c.putU16(off+2, e.value.TypeID().WireCode())
	c.putU32(off+4, e.value.Count())
	c.putU32(off+8, c.dataOff)
	if err := writeDataArea(c, e.value.Bytes()); err != nil {
		return 0, errors.Wrapf(err, "writing data area for tag %#x", e.tag.Tag())
	}
	c.entryOff = off + 12
	return 12, nil
}
