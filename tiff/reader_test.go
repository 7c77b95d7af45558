package tiff

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildSimpleTiff hand-assembles a minimal little-endian IFD0 with two
// entries: Make (ASCII, out-of-line) and Orientation (Short, inline).
// Layout: 8-byte header, 2-entry table (2+24+4=30 bytes) starting at 8,
// "Canon\0" data area right after.
func buildSimpleTiff(t *testing.T) []byte {
	t.Helper()
	const (
		tableOff = 8
		dataOff  = tableOff + 2 + 2*12 + 4 // 38
	)
	buf := make([]byte, dataOff+6)
	bo := binary.LittleEndian

	buf[0], buf[1] = 'I', 'I'
	bo.PutUint16(buf[2:4], MagicClassic)
	bo.PutUint32(buf[4:8], tableOff)

	bo.PutUint16(buf[tableOff:], 2) // entry count

	e1 := tableOff + 2
	bo.PutUint16(buf[e1:], 0x010f)   // Make
	bo.PutUint16(buf[e1+2:], 2)      // Ascii
	bo.PutUint32(buf[e1+4:], 6)      // count
	bo.PutUint32(buf[e1+8:], dataOff)

	e2 := e1 + 12
	bo.PutUint16(buf[e2:], 0x0112) // Orientation
	bo.PutUint16(buf[e2+2:], 3)    // Short
	bo.PutUint32(buf[e2+4:], 1)    // count
	bo.PutUint16(buf[e2+8:], 1)    // value 1, inline

	nextOff := e2 + 12
	bo.PutUint32(buf[nextOff:], 0) // no IFD1

	copy(buf[dataOff:], "Canon\x00")
	return buf
}

func TestReadTiffParsesEntries(t *testing.T) {
	buf := buildSimpleTiff(t)

	root, bo, err := ReadTiff(buf, nil)
	require.NoError(t, err)
	assert.Equal(t, binary.LittleEndian, bo)
	require.Len(t, root.Children(), 2)

	var make_, orientation Node
	for _, c := range root.Children() {
		switch c.Tag().Tag() {
		case 0x010f:
			make_ = c
		case 0x0112:
			orientation = c
		}
	}
	require.NotNil(t, make_)
	require.NotNil(t, orientation)

	me, ok := make_.(*Entry)
	require.True(t, ok)
	assert.Equal(t, "Canon", me.Value().String())

	oe, ok := orientation.(*Entry)
	require.True(t, ok)
	sv, ok := oe.Value().(ShortValue)
	require.True(t, ok)
	assert.Equal(t, []uint16{1}, sv.Values())
}

func TestReadTiffRejectsShortBuffer(t *testing.T) {
	_, _, err := ReadTiff([]byte{1, 2, 3}, nil)
	require.Error(t, err)
}

func TestReadTiffDetectsCycle(t *testing.T) {
	// A directory whose single entry-count read loops back to itself:
	// offset 8 holds a count that, combined with a corrupted pointer
	// layout, would revisit offset 8. Simplest to exercise directly via
	// readState/visited instead of crafting a real nested-IFD cycle.
	buf := buildSimpleTiff(t)
	hdr, err := ReadHeader(buf)
	require.NoError(t, err)

	st := &readState{
		data:    buf,
		bo:      hdr.ByteOrder,
		visited: map[uint32]bool{hdr.FirstIfdOff: true},
		budget:  10,
	}
	_, _, err = st.readDirectory(GroupIfd0, hdr.FirstIfdOff)
	require.Error(t, err)
}

func TestReadTiffUnknownTagKeptByDefault(t *testing.T) {
	buf := buildSimpleTiff(t)
	// Turn the second entry (Orientation) into an unregistered tag.
	binary.LittleEndian.PutUint16(buf[8+2+12:], 0xffff)
	root, _, err := ReadTiff(buf, &Options{Unknown: KeepUnknownTag})
	require.NoError(t, err)
	assert.Len(t, root.Children(), 2)
}

func TestAlwaysOffsetTagBuildsDataEntryEvenWhenShort(t *testing.T) {
	const (
		tableOff = 8
		dataOff  = tableOff + 2 + 1*12 + 4
	)
	buf := make([]byte, dataOff+4)
	bo := binary.LittleEndian
	buf[0], buf[1] = 'I', 'I'
	bo.PutUint16(buf[2:4], MagicClassic)
	bo.PutUint32(buf[4:8], tableOff)
	bo.PutUint16(buf[tableOff:], 1)

	e1 := tableOff + 2
	bo.PutUint16(buf[e1:], 0xa432) // LensSpecification
	bo.PutUint16(buf[e1+2:], 5)    // Rational... but force a short count to exercise inline-sized path
	bo.PutUint32(buf[e1+4:], 0)    // count 0 -> size 0, always <= 4
	bo.PutUint32(buf[e1+8:], dataOff)

	nextOff := e1 + 12
	bo.PutUint32(buf[nextOff:], 0)

	// LensSpecification is registered in the Exif IFD, so the table is
	// read as that group.
	st := &readState{data: buf, bo: bo, visited: map[uint32]bool{}, budget: 10}
	root, _, err := st.readDirectory(GroupExifIfd, tableOff)
	require.NoError(t, err)
	require.Len(t, root.Children(), 1)
	_, ok := root.Children()[0].(*DataEntry)
	assert.True(t, ok, "AlwaysOffset tag should always decode as *DataEntry")
}
