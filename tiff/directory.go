package tiff

import "github.com/pkg/errors"

// Directory is an IFD: an ordered set of entries plus an optional
// "next" successor (IFD0 -> IFD1 chaining). Grounded on the teacher's
// `ifdd` (exif.go), generalized from a single fixed-shape struct into
// a Node so it can also appear nested under a SubIfd/IfdMakernote.
type Directory struct {
	group    Group
	entries  []Node
	next     Node
	fromNext bool // this Directory is itself an IFD-chain successor
}

// NewDirectory creates an empty IFD for group.
func NewDirectory(group Group) *Directory {
	return &Directory{group: group}
}

func (d *Directory) Tag() ExtTag { return TagRoot }
func (d *Directory) Group() Group { return d.group }

func (d *Directory) Children() []Node { return d.entries }
func (d *Directory) Next() Node       { return d.next }

func (d *Directory) findChild(tag ExtTag, group Group) Node {
	for _, c := range d.entries {
		if c.Tag() == tag && c.Group() == group {
			return c
		}
	}
	return nil
}

// AddPath implements Node.AddPath: each step but the last must resolve
// to (or create) a container node already present as a child; the last
// step attaches leaf directly, replacing any existing node at that
// slot (spec §4.1 "last write wins for a given TiffPath").
func (d *Directory) AddPath(tag ExtTag, path Path, root Group, leaf Node) (Node, error) {
	if tag == TagNext {
		if err := d.AddNext(leaf); err != nil {
			return nil, err
		}
		return leaf, nil
	}
	if len(path) == 0 {
		if err := d.AddChild(leaf); err != nil {
			return nil, err
		}
		return leaf, nil
	}
	step := path[0]
	child := d.findChild(step.Tag, step.Group)
	if child == nil {
		// Build the same node kind ReadTiff would have found here (a
		// SubIfd wrapping a fresh Directory, for every hop the factory
		// table covers), so a path created by an edit is
		// indistinguishable from one that came off the wire -- the
		// writer, and a later findChild on the same path, don't need to
		// know which.
		child = Creator{}.Create(step.Tag.Tag(), step.Group, nil)
		if err := d.AddChild(child); err != nil {
			return nil, err
		}
	}
	return child.AddPath(step.Tag, path[1:], root, leaf)
}

// AddChild attaches child as an ordinary entry of this IFD, replacing
// any existing entry with the same (tag, group) pair.
func (d *Directory) AddChild(child Node) error {
	for i, c := range d.entries {
		if c.Tag() == child.Tag() && c.Group() == child.Group() {
			d.entries[i] = child
			return nil
		}
	}
	d.entries = append(d.entries, child)
	return nil
}

// AddNext attaches next as this directory's IFD-chain successor.
func (d *Directory) AddNext(next Node) error {
	d.next = next
	return nil
}

func (d *Directory) Accept(v Visitor, flags VisitFlags) (VisitFlags, error) {
	return v.VisitDirectory(d, flags)
}

// Size is the directory's own entry-table footprint: a 2-byte count, N
// 12-byte entries, and a 4-byte next-IFD offset (spec §4.3 IFD layout).
func (d *Directory) Size() uint32 {
	return 2 + 12*uint32(len(d.entries)) + 4
}

func (d *Directory) Count() uint32 { return uint32(len(d.entries)) }

// SizeData is this directory's own out-of-line value footprint plus
// the data area owned (transitively) by its IFD-chain successor, if
// any. It deliberately excludes d.next.Size() itself: the successor's
// *entry table* is written contiguously with this directory's own
// table (see Write), not inside the data area, so the writer's
// entry-table/data-area split (chainTableSize in writer.go) must
// account for it separately to avoid the two regions overlapping.
func (d *Directory) SizeData() uint32 {
	var sz uint32
	for _, c := range d.entries {
		sz += alignUp2(c.SizeData())
	}
	if d.next != nil {
		sz += d.next.SizeData()
	}
	return sz
}

func (d *Directory) SizeImage() uint32 {
	var sz uint32
	for _, c := range d.entries {
		sz += c.SizeImage()
	}
	if d.next != nil {
		sz += d.next.SizeImage()
	}
	return sz
}

// sortedChildren returns entries in the order the writer should emit
// them: tag-ascending for ordinary groups, insertion order preserved
// within a maker-note group (spec §4.3's ordering rule).
func (d *Directory) sortedChildren() []Node {
	if d.group.IsMakerGroup() {
		out := make([]Node, len(d.entries))
		copy(out, d.entries)
		return out
	}
	out := make([]Node, len(d.entries))
	copy(out, d.entries)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1].Tag() > out[j].Tag(); j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}

// Write emits the 2-byte count, the sorted entry table, and the
// 4-byte next-IFD offset, then recursively emits each entry's data
// area and the next directory (if any), following the six-phase
// layout of spec §4.3.
func (d *Directory) Write(c *writeCursor) (uint32, error) {
	children := d.sortedChildren()

	tableOff := c.entryOff
	c.putU16(tableOff, uint16(len(children)))
	c.entryOff = tableOff + 2

	for _, child := range children {
		if _, err := child.Write(c); err != nil {
			return 0, errors.Wrapf(err, "writing entry tag %#x group %s", child.Tag(), child.Group())
		}
	}

	nextOff := c.entryOff
	c.entryOff = nextOff + 4
	if d.next != nil {
		// The successor IFD's own table is written immediately after
		// this one's (spec §4.3's "next IFD" phase); its offset field
		// must name wherever that table actually lands, which is
		// c.entryOff right now, not the data-area cursor.
		ifdStart := c.entryOff
		c.putU32(nextOff, ifdStart)
		if _, err := d.next.Write(c); err != nil {
			return 0, errors.Wrap(err, "writing next IFD")
		}
	} else {
		c.putU32(nextOff, 0)
	}
	return c.entryOff - tableOff, nil
}
