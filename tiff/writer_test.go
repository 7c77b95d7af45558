package tiff

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTiffThenReadTiffRoundTrips(t *testing.T) {
	root := NewDirectory(GroupIfd0)
	require.NoError(t, root.AddChild(asciiEntry(0x010f, GroupIfd0, "Canon")))
	orientation := NewEntry(0x0112, GroupIfd0,
		ShortValue{rawValue{typ: TypeShort, count: 1, data: []byte{1, 0}}, nil})
	require.NoError(t, root.AddChild(orientation))

	buf, err := WriteTiff(root, nil)
	require.NoError(t, err)

	got, _, err := ReadTiff(buf, nil)
	require.NoError(t, err)
	require.Len(t, got.Children(), 2)

	data, err := Decode(got)
	require.NoError(t, err)
	d, ok := data.Get("Ifd0.Make")
	require.True(t, ok)
	assert.Equal(t, "Canon", d.Value.String())
}

func TestWriteTiffChainsIfd0ToIfd1(t *testing.T) {
	root := NewDirectory(GroupIfd0)
	require.NoError(t, root.AddChild(asciiEntry(0x010f, GroupIfd0, "Canon")))
	thumb := NewDirectory(GroupIfd1)
	require.NoError(t, thumb.AddChild(asciiEntry(0x010f, GroupIfd1, "Canon")))
	require.NoError(t, root.AddNext(thumb))

	buf, err := WriteTiff(root, nil)
	require.NoError(t, err)

	got, _, err := ReadTiff(buf, nil)
	require.NoError(t, err)
	require.NotNil(t, got.Next())
	next, ok := got.Next().(*Directory)
	require.True(t, ok)
	assert.Equal(t, GroupIfd1, next.Group())
	require.Len(t, next.Children(), 1)
}

func TestWriteTiffNilRootErrors(t *testing.T) {
	_, err := WriteTiff(nil, nil)
	require.Error(t, err)
}

func TestOffsetFixupsApply(t *testing.T) {
	buf := make([]byte, 16)
	f := newOffsetFixups()
	f.register(12, 0xdeadbeef)
	require.NoError(t, f.apply(binary.LittleEndian, buf))
	assert.Equal(t, uint32(0xdeadbeef), binary.LittleEndian.Uint32(buf[12:16]))
}
