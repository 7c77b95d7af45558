package tiff

import "github.com/pkg/errors"

// pathKey identifies one (tag, group) addressing point in the
// composite tree, the unit both the path table and the factory table
// are keyed on (spec §4.1 C5).
type pathKey struct {
	tag   uint16
	group Group
}

// groupLink records how to reach group from its parent: the tag that
// addresses it there, and the parent group itself. GroupIfd0 has no
// link (it is the tree's root).
type groupLink struct {
	tag    uint16
	parent Group
}

// pathTable is the static parent map spec §4.1 describes: given a
// target group, it yields the single hop needed to reach it from its
// immediate parent. GetPath walks this chain from the target up to
// GroupIfd0 and reverses it into a root-first Path. Grounded on the
// teacher's hard-coded nesting (checkEmbeddedIfd calls for Exif/GPS,
// the Nikon/Apple maker-note dispatch), generalized into data instead
// of one bespoke call site per nesting.
var pathTable = map[Group]groupLink{
	GroupExifIfd:  {0x8769, GroupIfd0},
	GroupGpsIfd:   {0x8825, GroupIfd0},
	GroupIopIfd:   {0xa005, GroupExifIfd},
	GroupMakerNote: {0x927c, GroupExifIfd},

	GroupNikon1: {0, GroupMakerNote}, GroupNikon2: {0, GroupMakerNote}, GroupNikon3: {0, GroupMakerNote},
	GroupNikon3Preview:      {0x0011, GroupNikon3},
	GroupNikon3VignetteCorr: {0x0013, GroupNikon3},
	GroupNikon3ColorBalance: {0x0097, GroupNikon3},

	GroupOlympus: {0, GroupMakerNote}, GroupOlympus2: {0, GroupMakerNote}, GroupOMSystem: {0, GroupMakerNote},
	GroupOlympusEquipment:       {0x2010, GroupOlympus2},
	GroupOlympusCameraSettings:  {0x2020, GroupOlympus2},
	GroupOlympusRawDevelopment:  {0x2030, GroupOlympus2},
	GroupOlympusRawDev2:         {0x2031, GroupOlympus2},
	GroupOlympusImageProcessing: {0x2040, GroupOlympus2},
	GroupOlympusFocusInfo:       {0x2050, GroupOlympus2},

	GroupSony1: {0, GroupMakerNote}, GroupSony2: {0, GroupMakerNote},
	GroupSony1MltCsA100: {0xb028, GroupSony1},
	GroupSony1MltCsOld:  {0x0114, GroupSony1},
	GroupSony1MltCsNew:  {0x0114, GroupSony1},
	GroupSony1MltCs7D:   {0x0114, GroupSony1},

	GroupFuji: {0, GroupMakerNote}, GroupPentax: {0, GroupMakerNote}, GroupPentaxDng: {0, GroupMakerNote},
	GroupSamsung2: {0, GroupMakerNote}, GroupSigma: {0, GroupMakerNote}, GroupPanasonic: {0, GroupMakerNote},
	GroupCasio: {0, GroupMakerNote}, GroupCasio2: {0, GroupMakerNote}, GroupApple: {0, GroupMakerNote},
	GroupSamsung2PictureWizard: {0x0021, GroupSamsung2},
	GroupPanaRaw:               {0, GroupIfd0},
}

// nodeFactory builds a blank Node for a (tag, group) addressing point.
type nodeFactory func(tag uint16, group Group) Node

// factoryTable maps a pathKey to the concrete Node constructor the
// tree builder uses for it; a miss falls back to a plain *Entry (spec
// §4.1 "Lookup miss in the factory table yields a plain Entry").
var factoryTable = map[pathKey]nodeFactory{
	{0x8769, GroupIfd0}: func(tag uint16, g Group) Node { return NewSubIfd(tag, g, NewDirectory(GroupExifIfd)) },
	{0x8825, GroupIfd0}: func(tag uint16, g Group) Node { return NewSubIfd(tag, g, NewDirectory(GroupGpsIfd)) },
	{0xa005, GroupExifIfd}: func(tag uint16, g Group) Node {
		return NewSubIfd(tag, g, NewDirectory(GroupIopIfd))
	},
	{0x014a, GroupIfd0}: func(tag uint16, g Group) Node {
		return NewSubIfd(tag, g, NewDirectory(GroupSubImage1))
	},
}

// Creator builds composite-tree nodes the way C5 specifies: GetPath
// resolves a target group's ancestor chain, Create builds the
// concrete node type registered for a given addressing point.
type Creator struct{}

// GetPath walks group's ancestor chain up to GroupIfd0 (the tree
// root) and returns it as a root-first Path -- every hop down to and
// including the one that addresses group itself from its immediate
// parent -- plus that same tag on its own, for callers that need to
// know it apart from path navigation (e.g. a TagNext check).
//
// Every hop is pushed, including group's own (there is no "skip the
// first hop" special case): AddPath's terminal len(path)==0 branch
// must land on the Directory that physically holds group's entries,
// not on one level above it, or a merged-in leaf would attach to the
// wrong table.
func (Creator) GetPath(group Group) (tag uint16, path Path, root Group, err error) {
	if group == GroupIfd0 {
		return 0, nil, GroupIfd0, nil
	}
	var steps Path
	g := group
	var ownTag uint16
	for {
		link, ok := pathTable[g]
		if !ok {
			return 0, nil, 0, errors.Wrapf(ErrCorruptedMetadata, "creator: no path entry for group %s", g)
		}
		if g == group {
			ownTag = link.tag
		}
		// PathStep.Group must name the group the step's entry
		// physically lives in (its parent directory), matching what
		// findChild compares against -- a SubIfd's Group() is the
		// directory holding its pointer entry, not the directory it
		// wraps.
		steps.push(PathStep{Tag: ExtTag(link.tag), Group: link.parent})
		if link.parent == GroupIfd0 {
			break
		}
		g = link.parent
	}
	steps.reverse()
	return ownTag, steps, GroupIfd0, nil
}

// Create builds the concrete node registered for (tag, group), or a
// leaf entry holding value if no factory is registered -- a *DataEntry
// for tags the registry marks AlwaysOffset, a plain *Entry otherwise
// (see newLeafNode), so a merged-in edit for e.g. a GPS coordinate gets
// the same node kind ReadTiff would have built for it.
func (Creator) Create(tag uint16, group Group, value Value) Node {
	if f, ok := factoryTable[pathKey{tag, group}]; ok {
		return f(tag, group)
	}
	return newLeafNode(tag, group, value)
}
