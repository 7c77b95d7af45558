package tiff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncoderMergeAttachesDirectIfd0Tag(t *testing.T) {
	root := NewDirectory(GroupIfd0)
	edits := &ExifData{Data: []Datum{
		{Group: GroupIfd0, Tag: ExtTag(0x010f), Name: "Make",
			Value: AsciiValue{rawValue{typ: TypeAscii, count: 6, data: []byte("Canon\x00")}}},
	}}

	enc := NewEncoder()
	require.NoError(t, enc.Merge(root, edits))
	require.Len(t, root.Children(), 1)
	assert.Equal(t, uint16(0x010f), root.Children()[0].Tag().Tag())
}

func TestEncoderMergeCreatesNestedExifIfd(t *testing.T) {
	root := NewDirectory(GroupIfd0)
	edits := &ExifData{Data: []Datum{
		{Group: GroupExifIfd, Tag: ExtTag(0x9003), Name: "DateTimeOriginal",
			Value: AsciiValue{rawValue{typ: TypeAscii, count: 20, data: []byte("2024:01:02 03:04:05\x00")}}},
	}}

	enc := NewEncoder()
	require.NoError(t, enc.Merge(root, edits))

	require.Len(t, root.Children(), 1)
	sub, ok := root.Children()[0].(*SubIfd)
	require.True(t, ok)
	assert.Equal(t, GroupExifIfd, sub.Directory().Group())
	require.Len(t, sub.Directory().Children(), 1)
	assert.Equal(t, uint16(0x9003), sub.Directory().Children()[0].Tag().Tag())
}

func TestEncoderMergeUsesDataEntryForAlwaysOffsetTag(t *testing.T) {
	root := NewDirectory(GroupIfd0)
	edits := &ExifData{Data: []Datum{
		{Group: GroupGpsIfd, Tag: ExtTag(0x0002), Name: "GPSLatitude",
			Value: RationalValue{rawValue{typ: TypeRational, count: 3, data: make([]byte, 24)}, nil}},
	}}

	enc := NewEncoder()
	require.NoError(t, enc.Merge(root, edits))

	sub, ok := root.Children()[0].(*SubIfd)
	require.True(t, ok)
	_, ok = sub.Directory().Children()[0].(*DataEntry)
	assert.True(t, ok)
}

func TestEncoderEncodeFallsBackToWriteTiffWithNoOriginal(t *testing.T) {
	root := NewDirectory(GroupIfd0)
	require.NoError(t, root.AddChild(asciiEntry(0x010f, GroupIfd0, "Canon")))

	enc := NewEncoder()
	buf, err := enc.Encode(root, nil, &ExifData{}, nil)
	require.NoError(t, err)

	got, _, err := ReadTiff(buf, nil)
	require.NoError(t, err)
	require.Len(t, got.Children(), 1)
}

func TestEncoderEncodePatchesInPlaceWhenEditFitsOriginalSlot(t *testing.T) {
	buf := buildSimpleTiff(t)
	root, _, err := ReadTiff(buf, nil)
	require.NoError(t, err)

	data, err := Decode(root)
	require.NoError(t, err)
	d, ok := data.Get("Ifd0.Orientation")
	require.True(t, ok)

	edited := &ExifData{Data: []Datum{
		{Group: d.Group, Tag: d.Tag, Name: d.Name, srcNode: d.srcNode,
			Value: ShortValue{rawValue{typ: TypeShort, count: 1, data: []byte{8, 0}}, nil}},
	}}

	enc := NewEncoder()
	out, err := enc.Encode(root, buf, edited, &WriteOptions{})
	require.NoError(t, err)
	require.Equal(t, len(buf), len(out), "in-place patch must not resize the buffer")

	got, _, err := ReadTiff(out, nil)
	require.NoError(t, err)
	outData, err := Decode(got)
	require.NoError(t, err)
	d2, ok := outData.Get("Ifd0.Orientation")
	require.True(t, ok)
	assert.Equal(t, "8", d2.Value.String())

	// Untouched entry must survive byte-for-byte.
	d3, ok := outData.Get("Ifd0.Make")
	require.True(t, ok)
	assert.Equal(t, "Canon", d3.Value.String())
}

func TestEncoderEncodeFallsBackWhenEditHasNoWireOrigin(t *testing.T) {
	buf := buildSimpleTiff(t)
	root, _, err := ReadTiff(buf, nil)
	require.NoError(t, err)

	// A Datum with no srcNode (as if synthesized, not decoded) can never
	// qualify for in-place patching; Encode falls back to WriteTiff,
	// which only reflects the edit if the caller already merged it into
	// root (Merge is the step that maps a Datum onto a tree position;
	// tryInPlace works off edits+srcNode directly and does not need it).
	edited := &ExifData{Data: []Datum{
		{Group: GroupIfd0, Tag: ExtTag(0x0112), Name: "Orientation",
			Value: ShortValue{rawValue{typ: TypeShort, count: 1, data: []byte{3, 0}}, nil}},
	}}

	enc := NewEncoder()
	require.NoError(t, enc.Merge(root, edited))
	out, err := enc.Encode(root, buf, edited, &WriteOptions{})
	require.NoError(t, err)
	require.NotEmpty(t, out)

	got, _, err := ReadTiff(out, nil)
	require.NoError(t, err)
	outData, err := Decode(got)
	require.NoError(t, err)
	d, ok := outData.Get("Ifd0.Orientation")
	require.True(t, ok)
	assert.Equal(t, "3", d.Value.String())
}
