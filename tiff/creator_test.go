package tiff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatorGetPathRoot(t *testing.T) {
	var c Creator
	tag, path, root, err := c.GetPath(GroupIfd0)
	require.NoError(t, err)
	assert.Equal(t, uint16(0), tag)
	assert.Empty(t, path)
	assert.Equal(t, GroupIfd0, root)
}

func TestCreatorGetPathExifIfd(t *testing.T) {
	var c Creator
	tag, path, root, err := c.GetPath(GroupExifIfd)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x8769), tag)
	require.Len(t, path, 1)
	assert.Equal(t, uint16(0x8769), path[0].Tag.Tag())
	assert.Equal(t, GroupIfd0, path[0].Group)
	assert.Equal(t, GroupIfd0, root)
}

func TestCreatorGetPathIopIfdNestedUnderExif(t *testing.T) {
	var c Creator
	tag, path, _, err := c.GetPath(GroupIopIfd)
	require.NoError(t, err)
	assert.Equal(t, uint16(0xa005), tag)
	require.Len(t, path, 2)
	assert.Equal(t, uint16(0x8769), path[0].Tag.Tag())
	// Group names the hop's parent (Ifd0, where the ExifIfd pointer
	// entry itself lives), not the group the hop descends into.
	assert.Equal(t, GroupIfd0, path[0].Group)
	assert.Equal(t, uint16(0xa005), path[1].Tag.Tag())
	assert.Equal(t, GroupExifIfd, path[1].Group)
}

func TestCreatorGetPathUnknownGroupErrors(t *testing.T) {
	var c Creator
	_, _, _, err := c.GetPath(Group(99999))
	require.Error(t, err)
}

func TestCreatorCreateUsesFactoryForExifIfdPointer(t *testing.T) {
	var c Creator
	node := c.Create(0x8769, GroupIfd0, nil)
	sub, ok := node.(*SubIfd)
	require.True(t, ok)
	assert.Equal(t, GroupExifIfd, sub.Directory().Group())
}

func TestCreatorCreateFallsBackToLeafNodeForOrdinaryTag(t *testing.T) {
	var c Creator
	val := AsciiValue{rawValue{typ: TypeAscii, count: 6, data: []byte("Canon\x00")}}
	node := c.Create(0x010f, GroupIfd0, val)
	_, ok := node.(*Entry)
	require.True(t, ok)
}

func TestCreatorCreateUsesDataEntryForAlwaysOffsetTag(t *testing.T) {
	var c Creator
	val := RationalValue{rawValue{typ: TypeRational, count: 3, data: make([]byte, 24)}, nil}
	node := c.Create(0x0002, GroupGpsIfd, val) // GPSLatitude
	_, ok := node.(*DataEntry)
	require.True(t, ok)
}
