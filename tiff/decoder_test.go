package tiff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeFlattensEntries(t *testing.T) {
	buf := buildSimpleTiff(t)
	root, _, err := ReadTiff(buf, nil)
	require.NoError(t, err)

	data, err := Decode(root)
	require.NoError(t, err)
	require.Equal(t, 2, data.Len())

	d, ok := data.Get("Ifd0.Make")
	require.True(t, ok)
	assert.Equal(t, "Canon", d.Value.String())
	assert.NotNil(t, d.srcNode)

	d2, ok := data.Get("Ifd0.Orientation")
	require.True(t, ok)
	assert.Equal(t, "1", d2.Value.String())
}

func TestDecodeUnknownTagFallsBackToNumericKey(t *testing.T) {
	buf := buildSimpleTiff(t)
	root, _, err := ReadTiff(buf, nil)
	require.NoError(t, err)

	// Replace one entry's tag in-place with one the registry doesn't know.
	for i, c := range root.Children() {
		if e, ok := c.(*Entry); ok && e.Tag().Tag() == 0x0112 {
			root.Children()[i] = NewEntry(0xffff, GroupIfd0, e.Value())
		}
	}

	data, err := Decode(root)
	require.NoError(t, err)
	d, ok := data.Get("Ifd0.0xffff")
	require.True(t, ok)
	assert.Equal(t, "Ifd0.0xffff", d.Key())
	_ = d
}

func TestDatumKeyFallsBackToHexWhenNameEmpty(t *testing.T) {
	d := Datum{Group: GroupIfd0, Tag: ExtTag(0x1234)}
	assert.Equal(t, "Ifd0.0x1234", d.Key())
}

func TestDatumStringRendersKeyEqualsValue(t *testing.T) {
	d := Datum{Group: GroupIfd0, Tag: ExtTag(0x010f), Name: "Make",
		Value: AsciiValue{rawValue{typ: TypeAscii, count: 6, data: []byte("Canon\x00")}}}
	assert.Equal(t, "Ifd0.Make = Canon", d.String())
}
