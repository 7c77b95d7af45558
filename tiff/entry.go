package tiff

import "github.com/pkg/errors"

// Entry is an ordinary leaf IFD entry: a (tag, group) pair holding a
// Value. Grounded on the teacher's per-tag `store*Value` calls
// (parse.go/values.go), generalized into a standalone node instead of
// being folded into `ifdd`'s single entry list.
type Entry struct {
	tag   ExtTag
	group Group
	value Value

	// wire records where this entry was found in the buffer ReadTiff
	// parsed it from, so the non-intrusive writer (C11 tryInPlace) can
	// patch the original bytes instead of relinearizing the whole
	// tree. Zero value (origin.entryOff == 0) means "not read from a
	// buffer" -- a freshly created entry, which always forces a
	// rewrite.
	wire wireOrigin
}

// wireOrigin is the read-time position bookkeeping shared by Entry and
// DataEntry (spec §4.3 "non-intrusive update": same type, count <=
// original count, data-area usage has not grown").
type wireOrigin struct {
	entryOff  uint32 // absolute offset of the 12-byte entry slot
	dataOff   uint32 // absolute offset of out-of-line value bytes, 0 if inline
	origSize  uint32 // original value.Size(), to bound a shrink-only in-place patch
	origCount uint32
	inline    bool
}

// NewEntry creates a leaf entry. value must already be fully decoded
// (ParseValue or a constructor in value.go).
func NewEntry(tag uint16, group Group, value Value) *Entry {
	return &Entry{tag: ExtTag(tag), group: group, value: value}
}

// newLeafNode builds the leaf node type the registry calls for at
// (tag, group): a *DataEntry for tags marked AlwaysOffset, a plain
// *Entry otherwise. Shared by the reader (which then records wire
// origin separately) and the encoder's merge step (spec §3 "DataEntry:
// logically variable-length values"), so both paths agree on which
// tags always live out-of-line.
func newLeafNode(tag uint16, group Group, value Value) Node {
	if info, ok := LookupTag(group, tag); ok && info.AlwaysOffset {
		return NewDataEntry(tag, group, value)
	}
	return NewEntry(tag, group, value)
}

func (e *Entry) Tag() ExtTag   { return e.tag }
func (e *Entry) Group() Group  { return e.group }
func (e *Entry) Value() Value  { return e.value }

// setWireOrigin is called by the reader right after parsing, recording
// where this entry's bytes live so a later in-place edit can target
// them directly.
func (e *Entry) setWireOrigin(entryOff, dataOff uint32, inline bool) {
	e.wire = wireOrigin{
		entryOff:  entryOff,
		dataOff:   dataOff,
		origSize:  e.value.Size(),
		origCount: e.value.Count(),
		inline:    inline,
	}
}

func (e *Entry) AddPath(tag ExtTag, path Path, root Group, leaf Node) (Node, error) {
	return nil, &nodeKindError{"AddPath", "Entry"}
}
func (e *Entry) AddChild(Node) error { return &nodeKindError{"AddChild", "Entry"} }
func (e *Entry) AddNext(Node) error  { return &nodeKindError{"AddNext", "Entry"} }

func (e *Entry) Accept(v Visitor, flags VisitFlags) (VisitFlags, error) {
	return v.VisitEntry(e, flags)
}

func (e *Entry) Size() uint32 { return 12 }
func (e *Entry) Count() uint32 { return 1 }

// inline reports whether the value's wire payload fits in the 4-byte
// value-or-offset slot of a classic TIFF entry.
func (e *Entry) inline() bool {
	return e.value.Size() <= 4
}

func (e *Entry) SizeData() uint32 {
	if e.inline() {
		return 0
	}
	return alignUp2(e.value.Size())
}

func (e *Entry) SizeImage() uint32 { return 0 }

// Write emits the 12-byte entry header: tag, wire-type, count, and
// either the inline value bytes (padded to 4) or a 4-byte offset into
// the data area, where the value payload is appended.
func (e *Entry) Write(c *writeCursor) (uint32, error) {
	off := c.entryOff
	c.putU16(off, e.tag.Tag())
	c.putU16(off+2, e.value.TypeID().WireCode())
	c.putU32(off+4, e.value.Count())

	payload := e.value.Bytes()
	if e.inline() {
		copy(c.buf[off+8:off+12], payload)
	} else {
		c.putU32(off+8, c.dataOff)
		if err := writeDataArea(c, payload); err != nil {
			return 0, errors.Wrapf(err, "writing data area for tag %#x", e.tag.Tag())
		}
	}
	c.entryOff = off + 12
	return 12, nil
}

// writeDataArea copies payload into the buffer at c.dataOff, advancing
// the cursor by the 2-byte-aligned length (spec §4.3 data-area rule).
func writeDataArea(c *writeCursor, payload []byte) error {
	if err := need(c.buf, c.dataOff, uint32(len(payload))); err != nil {
		return err
	}
	copy(c.buf[c.dataOff:], payload)
	c.dataOff += alignUp2(uint32(len(payload)))
	return nil
}
