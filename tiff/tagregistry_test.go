package tiff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupTagKnown(t *testing.T) {
	info, ok := LookupTag(GroupIfd0, 0x010f)
	require.True(t, ok)
	assert.Equal(t, "Make", info.Name)
	assert.Equal(t, TypeAscii, info.Type)
}

func TestLookupTagUnknown(t *testing.T) {
	_, ok := LookupTag(GroupIfd0, 0xdead)
	assert.False(t, ok)
}

func TestLookupTagHasChildForExifIfd(t *testing.T) {
	info, ok := LookupTag(GroupIfd0, 0x8769)
	require.True(t, ok)
	group, has := info.HasChild()
	assert.True(t, has)
	assert.Equal(t, GroupExifIfd, group)
}

func TestAlwaysOffsetTagsIncludeGpsCoordinatesAndLensSpec(t *testing.T) {
	cases := []struct {
		group Group
		tag   uint16
	}{
		{GroupGpsIfd, 0x0002}, // GPSLatitude
		{GroupGpsIfd, 0x0004}, // GPSLongitude
		{GroupGpsIfd, 0x0006}, // GPSAltitude
		{GroupGpsIfd, 0x0007}, // GPSTimeStamp
		{GroupExifIfd, 0xa432}, // LensSpecification
	}
	for _, c := range cases {
		info, ok := LookupTag(c.group, c.tag)
		require.True(t, ok, "tag %#x in %s should be registered", c.tag, c.group)
		assert.True(t, info.AlwaysOffset, "tag %#x in %s should be AlwaysOffset", c.tag, c.group)
	}
}

func TestOrdinaryTagsAreNotAlwaysOffset(t *testing.T) {
	info, ok := LookupTag(GroupIfd0, 0x0112) // Orientation
	require.True(t, ok)
	assert.False(t, info.AlwaysOffset)
}
