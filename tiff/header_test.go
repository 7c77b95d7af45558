package tiff

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadHeaderLittleEndian(t *testing.T) {
	buf := make([]byte, 8)
	buf[0], buf[1] = 'I', 'I'
	binary.LittleEndian.PutUint16(buf[2:4], MagicClassic)
	binary.LittleEndian.PutUint32(buf[4:8], 8)

	h, err := ReadHeader(buf)
	require.NoError(t, err)
	assert.Equal(t, binary.LittleEndian, h.ByteOrder)
	assert.Equal(t, uint32(8), h.FirstIfdOff)
	assert.False(t, h.IsCR2)
}

func TestReadHeaderBigEndian(t *testing.T) {
	buf := make([]byte, 8)
	buf[0], buf[1] = 'M', 'M'
	binary.BigEndian.PutUint16(buf[2:4], MagicClassic)
	binary.BigEndian.PutUint32(buf[4:8], 8)

	h, err := ReadHeader(buf)
	require.NoError(t, err)
	assert.Equal(t, binary.BigEndian, h.ByteOrder)
}

func TestReadHeaderRejectsBadByteOrderMark(t *testing.T) {
	buf := make([]byte, 8)
	buf[0], buf[1] = 'X', 'X'
	_, err := ReadHeader(buf)
	require.Error(t, err)
}

func TestReadHeaderRejectsUnknownMagic(t *testing.T) {
	buf := make([]byte, 8)
	buf[0], buf[1] = 'I', 'I'
	binary.LittleEndian.PutUint16(buf[2:4], 0x1234)
	_, err := ReadHeader(buf)
	require.Error(t, err)
}

func TestReadHeaderTooShort(t *testing.T) {
	_, err := ReadHeader([]byte{'I', 'I', 0})
	require.Error(t, err)
}

func TestReadHeaderCR2(t *testing.T) {
	buf := make([]byte, 16)
	buf[0], buf[1] = 'I', 'I'
	binary.LittleEndian.PutUint16(buf[2:4], 0x4352)
	binary.LittleEndian.PutUint32(buf[4:8], 16)
	binary.LittleEndian.PutUint32(buf[12:16], 0x100)

	h, err := ReadHeader(buf)
	require.NoError(t, err)
	assert.True(t, h.IsCR2)
	assert.Equal(t, uint32(0x100), h.CR2Offset)
}

func TestWriteHeaderRoundTrip(t *testing.T) {
	buf := make([]byte, 8)
	h := &Header{ByteOrder: binary.LittleEndian, Magic: MagicClassic, FirstIfdOff: 8}
	require.NoError(t, WriteHeader(buf, h))

	got, err := ReadHeader(buf)
	require.NoError(t, err)
	assert.Equal(t, h.FirstIfdOff, got.FirstIfdOff)
	assert.Equal(t, h.Magic, got.Magic)
}

func TestIsOlympusRawSignature(t *testing.T) {
	assert.True(t, IsOlympusRawSignature([]byte("IIRO\x00\x00")))
	assert.True(t, IsOlympusRawSignature([]byte("MMOR\x00\x00")))
	assert.False(t, IsOlympusRawSignature([]byte("II\x2a\x00")))
	assert.False(t, IsOlympusRawSignature([]byte("II")))
}
