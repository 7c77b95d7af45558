package tiff

import (
	"encoding/binary"
	"math"

	"github.com/pkg/errors"
)

// Sizes, in bytes, of one value of each wire Type. Mirrors the
// teacher's fmtSize/getTiffTypeSize table.
var typeSizes = map[Type]uint32{
	TypeByte:      1,
	TypeAscii:     1,
	TypeShort:     2,
	TypeLong:      4,
	TypeRational:  8,
	TypeSByte:     1,
	TypeUndefined: 1,
	TypeSShort:    2,
	TypeSLong:     4,
	TypeSRational: 8,
	TypeFloat:     4,
	TypeDouble:    8,
	TypeIfd:       4,

	// Internal types are byte-counted blobs on the wire (written as
	// Undefined, see Type.WireCode), so they share Undefined's 1-byte
	// element size.
	TypeComment: 1,
	TypeDate:    1,
}

// Size returns the byte size of a single value of type t, or 0 if t is
// not a recognized wire type.
func (t Type) Size() uint32 {
	return typeSizes[t]
}

func need(buf []byte, off, n uint32) error {
	if uint64(off)+uint64(n) > uint64(len(buf)) {
		return errors.Wrapf(ErrCorruptedMetadata,
			"read past end of buffer (offset %#x, length %d, buffer %d)", off, n, len(buf))
	}
	return nil
}

func readU8(buf []byte, off uint32) (uint8, error) {
	if err := need(buf, off, 1); err != nil {
		return 0, err
	}
	return buf[off], nil
}

func readU16(bo binary.ByteOrder, buf []byte, off uint32) (uint16, error) {
	if err := need(buf, off, 2); err != nil {
		return 0, err
	}
	return bo.Uint16(buf[off:]), nil
}

func readU32(bo binary.ByteOrder, buf []byte, off uint32) (uint32, error) {
	if err := need(buf, off, 4); err != nil {
		return 0, err
	}
	return bo.Uint32(buf[off:]), nil
}

func readI8(buf []byte, off uint32) (int8, error) {
	v, err := readU8(buf, off)
	return int8(v), err
}

func readI16(bo binary.ByteOrder, buf []byte, off uint32) (int16, error) {
	v, err := readU16(bo, buf, off)
	return int16(v), err
}

func readI32(bo binary.ByteOrder, buf []byte, off uint32) (int32, error) {
	v, err := readU32(bo, buf, off)
	return int32(v), err
}

func readFloat32(bo binary.ByteOrder, buf []byte, off uint32) (float32, error) {
	v, err := readU32(bo, buf, off)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

func readFloat64(bo binary.ByteOrder, buf []byte, off uint32) (float64, error) {
	if err := need(buf, off, 8); err != nil {
		return 0, err
	}
	return math.Float64frombits(bo.Uint64(buf[off:])), nil
}

func putU16(bo binary.ByteOrder, buf []byte, off uint32, v uint16) {
	bo.PutUint16(buf[off:], v)
}

func putU32(bo binary.ByteOrder, buf []byte, off uint32, v uint32) {
	bo.PutUint32(buf[off:], v)
}

// alignUp2 rounds sz up to the next 2-byte boundary, matching the
// writer's getAlignedDataSize (serialize.go in the teacher).
func alignUp2(sz uint32) uint32 {
	if sz&1 == 1 {
		sz++
	}
	return sz
}
