package tiff

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageEntryWritesHeaderAndImageArea(t *testing.T) {
	e := NewImageEntry(0x0201, GroupIfd1, TypeLong, []byte{1, 2, 3})
	buf := make([]byte, 64)
	c := &writeCursor{bo: binary.LittleEndian, buf: buf, entryOff: 0, dataOff: 40, imageOff: 50, fixups: newOffsetFixups()}

	n, err := e.Write(c)
	require.NoError(t, err)
	assert.Equal(t, uint32(12), n)
	assert.Equal(t, uint32(50)+alignUp2(3), c.imageOff)
	assert.Equal(t, []byte{1, 2, 3}, buf[50:53])
}

func TestImageEntryAddPathRejected(t *testing.T) {
	e := NewImageEntry(0x0201, GroupIfd1, TypeLong, nil)
	_, err := e.AddPath(ExtTag(0), nil, GroupIfd0, nil)
	require.Error(t, err)
}

func TestSizeEntryTracksImageEntryLength(t *testing.T) {
	img := NewImageEntry(0x0201, GroupIfd1, TypeLong, []byte{1, 2, 3, 4, 5})
	size := NewSizeEntry(0x0202, GroupIfd1, TypeLong, img)
	assert.Equal(t, uint32(5), size.Length())

	buf := make([]byte, 32)
	c := &writeCursor{bo: binary.LittleEndian, buf: buf, entryOff: 0, dataOff: 20, imageOff: 20, fixups: newOffsetFixups()}
	n, err := size.Write(c)
	require.NoError(t, err)
	assert.Equal(t, uint32(12), n)
	assert.Equal(t, uint32(5), binary.LittleEndian.Uint32(buf[8:12]))
}

func TestBinaryArrayAddChildAppendsElement(t *testing.T) {
	b := NewBinaryArray(0x0003, GroupNikon3, nil, []byte{0, 1, 2, 3})
	elem := NewBinaryElement("ISOSetting", GroupNikon3, 2, ShortValue{rawValue{typ: TypeShort, count: 1, data: []byte{9, 0}}, nil})

	require.NoError(t, b.AddChild(elem))
	require.Len(t, b.Elements(), 1)
	assert.Equal(t, "ISOSetting", b.Elements()[0].Name())
}

func TestBinaryArrayAddChildRejectsNonElement(t *testing.T) {
	b := NewBinaryArray(0x0003, GroupNikon3, nil, nil)
	err := b.AddChild(NewDirectory(GroupNikon3))
	require.Error(t, err)
}

func TestBinaryArrayWriteWithoutCipherEmitsRawBytes(t *testing.T) {
	b := NewBinaryArray(0x0003, GroupNikon3, nil, []byte{0xaa, 0xbb, 0xcc})
	buf := make([]byte, 32)
	c := &writeCursor{bo: binary.LittleEndian, buf: buf, entryOff: 0, dataOff: 16, imageOff: 16, fixups: newOffsetFixups()}

	n, err := b.Write(c)
	require.NoError(t, err)
	assert.Equal(t, uint32(12), n)
	assert.Equal(t, []byte{0xaa, 0xbb, 0xcc}, buf[16:19])
}

func TestBinaryElementTagEncodesOffsetAndWriteIsNoOp(t *testing.T) {
	elem := NewBinaryElement("ShutterCount", GroupNikon3, 0x0a, ShortValue{rawValue{typ: TypeShort, count: 1, data: []byte{1, 0}}, nil})
	assert.Equal(t, uint16(0x0a), elem.Tag().Tag())

	buf := make([]byte, 8)
	c := &writeCursor{bo: binary.LittleEndian, buf: buf, entryOff: 0, dataOff: 0, imageOff: 0, fixups: newOffsetFixups()}
	n, err := elem.Write(c)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), n)
	assert.Equal(t, uint32(0), c.entryOff)
}
