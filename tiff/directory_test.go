package tiff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func asciiEntry(tag uint16, group Group, s string) *Entry {
	data := append([]byte(s), 0)
	return NewEntry(tag, group, AsciiValue{rawValue{typ: TypeAscii, count: uint32(len(data)), data: data}})
}

func TestDirectoryAddChildReplacesSameTagGroup(t *testing.T) {
	d := NewDirectory(GroupIfd0)
	require.NoError(t, d.AddChild(asciiEntry(0x010f, GroupIfd0, "Canon")))
	require.NoError(t, d.AddChild(asciiEntry(0x010f, GroupIfd0, "Nikon")))

	require.Len(t, d.Children(), 1)
	assert.Equal(t, "Nikon", d.Children()[0].(*Entry).Value().String())
}

func TestDirectorySortedChildrenOrdersByTagAscending(t *testing.T) {
	d := NewDirectory(GroupIfd0)
	require.NoError(t, d.AddChild(asciiEntry(0x0132, GroupIfd0, "b")))
	require.NoError(t, d.AddChild(asciiEntry(0x010f, GroupIfd0, "a")))
	require.NoError(t, d.AddChild(asciiEntry(0x0112, GroupIfd0, "c")))

	sorted := d.sortedChildren()
	require.Len(t, sorted, 3)
	assert.Equal(t, uint16(0x010f), sorted[0].Tag().Tag())
	assert.Equal(t, uint16(0x0112), sorted[1].Tag().Tag())
	assert.Equal(t, uint16(0x0132), sorted[2].Tag().Tag())
}

func TestDirectorySortedChildrenPreservesMakerNoteOrder(t *testing.T) {
	d := NewDirectory(GroupNikon3)
	require.NoError(t, d.AddChild(asciiEntry(0x0099, GroupNikon3, "second")))
	require.NoError(t, d.AddChild(asciiEntry(0x0001, GroupNikon3, "first")))

	sorted := d.sortedChildren()
	require.Len(t, sorted, 2)
	assert.Equal(t, uint16(0x0099), sorted[0].Tag().Tag())
	assert.Equal(t, uint16(0x0001), sorted[1].Tag().Tag())
}

func TestDirectorySizeAndSizeData(t *testing.T) {
	d := NewDirectory(GroupIfd0)
	require.NoError(t, d.AddChild(asciiEntry(0x010f, GroupIfd0, "Canon"))) // 6 bytes, out of line

	assert.Equal(t, uint32(2+12+4), d.Size())
	assert.Equal(t, alignUp2(6), d.SizeData())
}

func TestDirectoryAddPathWithEmptyPathAttachesDirectly(t *testing.T) {
	root := NewDirectory(GroupIfd0)
	leaf := asciiEntry(0x9003, GroupExifIfd, "2024:01:02")

	_, err := root.AddPath(ExtTag(0x8769), Path{}, GroupIfd0, leaf)
	require.NoError(t, err)

	require.Len(t, root.Children(), 1)
	assert.Equal(t, uint16(0x9003), root.Children()[0].Tag().Tag())
}

func TestDirectoryAddPathNestedSteps(t *testing.T) {
	root := NewDirectory(GroupIfd0)
	leaf := asciiEntry(0xa005, GroupIopIfd, "dummy")
	// Group names the hop's *parent* (where the pointer entry itself
	// lives), matching Creator.GetPath's output and a SubIfd's own
	// Group() -- not the group the hop descends into.
	path := Path{{Tag: ExtTag(0x8769), Group: GroupIfd0}}

	_, err := root.AddPath(ExtTag(0xa005), path, GroupIfd0, leaf)
	require.NoError(t, err)

	require.Len(t, root.Children(), 1)
	exifSub, ok := root.Children()[0].(*SubIfd)
	require.True(t, ok)
	assert.Equal(t, GroupExifIfd, exifSub.Directory().Group())
	require.Len(t, exifSub.Directory().Children(), 1)
	assert.Equal(t, uint16(0xa005), exifSub.Directory().Children()[0].Tag().Tag())
}

func TestDirectoryAddPathNextTargetsChainSlot(t *testing.T) {
	root := NewDirectory(GroupIfd0)
	next := NewDirectory(GroupIfd1)

	_, err := root.AddPath(TagNext, nil, GroupIfd0, next)
	require.NoError(t, err)
	assert.Same(t, next, root.Next())
}

func TestChainTableSizeSumsAcrossIfdChain(t *testing.T) {
	root := NewDirectory(GroupIfd0)
	require.NoError(t, root.AddChild(asciiEntry(0x010f, GroupIfd0, "Canon")))
	next := NewDirectory(GroupIfd1)
	require.NoError(t, next.AddChild(asciiEntry(0x010f, GroupIfd1, "Canon")))
	require.NoError(t, root.AddNext(next))

	assert.Equal(t, root.Size()+next.Size(), chainTableSize(root))
}
