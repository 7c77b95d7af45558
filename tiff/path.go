package tiff

// ExtTag widens a 16-bit TIFF tag with synthetic positions used only
// inside the composite tree (spec §3 TiffPath, §GLOSSARY "Extended tag").
type ExtTag uint32

const (
	extTagSyntheticBase ExtTag = 0x1_0000_0000 >> 16 // keep 16-bit tags untouched

	// TagRoot addresses the root of a TiffPath.
	TagRoot ExtTag = extTagSyntheticBase + iota
	// TagNext targets a Directory's `next` slot instead of its child list.
	TagNext
	// TagAll is a wildcard: "any tag in this group whose parent is not
	// specially overridden" (spec §4.1).
	TagAll
	// TagPana/TagFuji/TagCmt2/TagCmt3/TagCmt4 are synthetic positions for
	// format variants that splice extra fixed structures into the tree
	// (Panasonic/Fuji raw headers, BMFF CMT2-4 boxes).
	TagPana
	TagFuji
	TagCmt2
	TagCmt3
	TagCmt4
)

// Tag returns the plain 16-bit tag for ordinary (non-synthetic) values.
func (e ExtTag) Tag() uint16 {
	return uint16(e)
}

// IsSynthetic reports whether e is one of the reserved path markers
// rather than an ordinary 16-bit tag.
func (e ExtTag) IsSynthetic() bool {
	return e >= extTagSyntheticBase
}

// PathStep is one (extendedTag, group) link in a TiffPath.
type PathStep struct {
	Tag   ExtTag
	Group Group
}

// Path is a LIFO stack of PathSteps, root first after Creator.GetPath
// reverses it (spec §3 TiffPath: "Produced by C5 for each user key;
// consumed by addPath in C4").
type Path []PathStep

// push appends a step to the path (used while GetPath walks from the
// target group up to the root, before the path is reversed).
func (p *Path) push(step PathStep) {
	*p = append(*p, step)
}

// reverse flips the path in place so index 0 is the root step.
func (p Path) reverse() {
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}
}
