package tiff

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNeed(t *testing.T) {
	buf := make([]byte, 8)
	require.NoError(t, need(buf, 0, 8))
	require.NoError(t, need(buf, 4, 4))
	require.Error(t, need(buf, 4, 5))
	require.Error(t, need(buf, 9, 1))
}

func TestReadWriteRoundTrip(t *testing.T) {
	buf := make([]byte, 16)
	putU16(binary.BigEndian, buf, 0, 0xabcd)
	putU32(binary.BigEndian, buf, 2, 0x01020304)

	u16, err := readU16(binary.BigEndian, buf, 0)
	require.NoError(t, err)
	assert.Equal(t, uint16(0xabcd), u16)

	u32, err := readU32(binary.BigEndian, buf, 2)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x01020304), u32)
}

func TestAlignUp2(t *testing.T) {
	assert.Equal(t, uint32(0), alignUp2(0))
	assert.Equal(t, uint32(2), alignUp2(1))
	assert.Equal(t, uint32(2), alignUp2(2))
	assert.Equal(t, uint32(4), alignUp2(3))
	assert.Equal(t, uint32(4), alignUp2(4))
}

func TestTypeSizes(t *testing.T) {
	assert.Equal(t, uint32(1), TypeByte.Size())
	assert.Equal(t, uint32(2), TypeShort.Size())
	assert.Equal(t, uint32(4), TypeLong.Size())
	assert.Equal(t, uint32(8), TypeRational.Size())
	assert.Equal(t, uint32(1), TypeComment.Size())
	assert.Equal(t, uint32(1), TypeDate.Size())
}
