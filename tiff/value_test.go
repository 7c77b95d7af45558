package tiff

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValueShort(t *testing.T) {
	raw := []byte{0x00, 0x03, 0x00, 0x07}
	v, err := ParseValue(binary.BigEndian, TypeShort, 2, raw)
	require.NoError(t, err)
	sv, ok := v.(ShortValue)
	require.True(t, ok)
	assert.Equal(t, []uint16{3, 7}, sv.Values())
	assert.Equal(t, "3 7", sv.String())
}

func TestParseValueRational(t *testing.T) {
	raw := make([]byte, 8)
	binary.BigEndian.PutUint32(raw[0:4], 1)
	binary.BigEndian.PutUint32(raw[4:8], 2)
	v, err := ParseValue(binary.BigEndian, TypeRational, 1, raw)
	require.NoError(t, err)
	rv, ok := v.(RationalValue)
	require.True(t, ok)
	got := rv.Values()
	require.Len(t, got, 1)
	assert.Equal(t, uint32(1), got[0].Num)
	assert.Equal(t, uint32(2), got[0].Den)
}

func TestParseValueTooShort(t *testing.T) {
	_, err := ParseValue(binary.BigEndian, TypeLong, 2, []byte{1, 2, 3})
	require.Error(t, err)
}

func TestAsciiValueTruncatesAtNUL(t *testing.T) {
	raw := []byte("Canon\x00garbage")
	v, err := ParseValue(binary.BigEndian, TypeAscii, uint32(len(raw)), raw)
	require.NoError(t, err)
	assert.Equal(t, "Canon", v.String())
}

func TestCommentValueSkipsCharsetPrefix(t *testing.T) {
	raw := append([]byte("ASCII\x00\x00\x00"), []byte("hello world")...)
	v, err := ParseValue(binary.BigEndian, TypeComment, uint32(len(raw)), raw)
	require.NoError(t, err)
	assert.Equal(t, "hello world", v.String())
}

func TestDateValueTruncatesAtNUL(t *testing.T) {
	raw := []byte("2024:01:02 03:04:05\x00")
	v, err := ParseValue(binary.BigEndian, TypeDate, uint32(len(raw)), raw)
	require.NoError(t, err)
	assert.Equal(t, "2024:01:02 03:04:05", v.String())
}

func TestTypeWireCodeInternalTypesEncodeAsUndefined(t *testing.T) {
	assert.Equal(t, uint16(TypeUndefined), TypeComment.WireCode())
	assert.Equal(t, uint16(TypeUndefined), TypeDate.WireCode())
	assert.True(t, TypeComment.IsInternal())
	assert.False(t, TypeLong.IsInternal())
}
