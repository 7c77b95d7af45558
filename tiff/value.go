package tiff

import (
	"encoding/binary"
	"strings"

	"github.com/pkg/errors"
)

// Value is the tagged-sum Exif value model of spec §3: a typed payload
// (an array when Count() > 1) plus, for DataEntry/ImageEntry values, an
// optional out-of-line data area carried by the owning node rather than
// the value itself.
//
// Generalized from the teacher's closed `serializer` interface
// (serializeEntry/serializeData/format in values.go) into a type that
// the decoder visitor (C10) can also read from, without depending on
// ifdd-internal layout.
type Value interface {
	// TypeID is the value's wire type.
	TypeID() Type
	// Count is the number of TypeID-sized elements.
	Count() uint32
	// Size is the wire-encoded payload size in bytes (Count * TypeID.Size(),
	// except for ASCII/Undefined-backed internal types which carry their
	// own byte length).
	Size() uint32
	// Bytes returns the raw wire-encoded payload, in the value's native
	// byte order, ready to be written verbatim to an entry's data area.
	Bytes() []byte
	// String renders a human-readable form, used by the decoder and by
	// diagnostic formatting.
	String() string
}

// rawValue is embedded by every concrete Value to carry the already
// wire-encoded payload; Bytes()/Size() are shared, decoding is
// type-specific.
type rawValue struct {
	typ   Type
	count uint32
	data  []byte // wire-encoded, length == Size()
}

func (v rawValue) TypeID() Type   { return v.typ }
func (v rawValue) Count() uint32  { return v.count }
func (v rawValue) Size() uint32   { return uint32(len(v.data)) }
func (v rawValue) Bytes() []byte  { return v.data }

// ByteValue holds TypeByte/TypeSByte/TypeUndefined arrays.
type ByteValue struct{ rawValue }

func (v ByteValue) String() string {
	if v.typ == TypeSByte {
		out := make([]int8, v.count)
		for i := range out {
			out[i] = int8(v.data[i])
		}
		return formatInts(out)
	}
	return formatHex(v.data)
}

// AsciiValue holds a NUL-terminated or count-bounded ASCII string,
// truncated per spec §4.2's robustness invariant: "string-type values
// truncated at first NUL or at count, whichever comes first".
type AsciiValue struct{ rawValue }

func (v AsciiValue) String() string {
	s := v.data
	if i := indexByte(s, 0); i >= 0 {
		s = s[:i]
	}
	return string(s)
}

// ShortValue holds TypeShort (uint16) arrays.
type ShortValue struct {
	rawValue
	bo binary.ByteOrder
}

func (v ShortValue) Values() []uint16 {
	out := make([]uint16, v.count)
	for i := range out {
		out[i] = v.bo.Uint16(v.data[i*2:])
	}
	return out
}
func (v ShortValue) String() string { return formatUints(v.Values()) }

// LongValue holds TypeLong (uint32) arrays.
type LongValue struct {
	rawValue
	bo binary.ByteOrder
}

func (v LongValue) Values() []uint32 {
	out := make([]uint32, v.count)
	for i := range out {
		out[i] = v.bo.Uint32(v.data[i*4:])
	}
	return out
}
func (v LongValue) String() string { return formatUints32(v.Values()) }

// SShortValue holds TypeSShort (int16) arrays.
type SShortValue struct {
	rawValue
	bo binary.ByteOrder
}

func (v SShortValue) Values() []int16 {
	out := make([]int16, v.count)
	for i := range out {
		out[i] = int16(v.bo.Uint16(v.data[i*2:]))
	}
	return out
}
func (v SShortValue) String() string { return formatInts16(v.Values()) }

// SLongValue holds TypeSLong (int32) arrays.
type SLongValue struct {
	rawValue
	bo binary.ByteOrder
}

func (v SLongValue) Values() []int32 {
	out := make([]int32, v.count)
	for i := range out {
		out[i] = int32(v.bo.Uint32(v.data[i*4:]))
	}
	return out
}
func (v SLongValue) String() string { return formatInts32(v.Values()) }

// RationalValue holds TypeRational (URational) arrays.
type RationalValue struct {
	rawValue
	bo binary.ByteOrder
}

func (v RationalValue) Values() []URational {
	out := make([]URational, v.count)
	for i := range out {
		out[i] = URational{
			Num: v.bo.Uint32(v.data[i*8:]),
			Den: v.bo.Uint32(v.data[i*8+4:]),
		}
	}
	return out
}
func (v RationalValue) String() string { return formatRationals(v.Values()) }

// SRationalValue holds TypeSRational (SRational) arrays.
type SRationalValue struct {
	rawValue
	bo binary.ByteOrder
}

func (v SRationalValue) Values() []SRational {
	out := make([]SRational, v.count)
	for i := range out {
		out[i] = SRational{
			Num: int32(v.bo.Uint32(v.data[i*8:])),
			Den: int32(v.bo.Uint32(v.data[i*8+4:])),
		}
	}
	return out
}
func (v SRationalValue) String() string { return formatSRationals(v.Values()) }

// FloatValue holds TypeFloat (float32) arrays.
type FloatValue struct {
	rawValue
	bo binary.ByteOrder
}

func (v FloatValue) Values() []float32 {
	out := make([]float32, v.count)
	for i := range out {
		bits := v.bo.Uint32(v.data[i*4:])
		out[i] = float32FromBits(bits)
	}
	return out
}
func (v FloatValue) String() string { return formatFloats(v.Values()) }

// DoubleValue holds TypeDouble (float64) arrays.
type DoubleValue struct {
	rawValue
	bo binary.ByteOrder
}

func (v DoubleValue) Values() []float64 {
	out := make([]float64, v.count)
	for i := range out {
		bits := v.bo.Uint64(v.data[i*8:])
		out[i] = float64FromBits(bits)
	}
	return out
}
func (v DoubleValue) String() string { return formatDoubles(v.Values()) }

// IfdValue holds TypeIfd pointer arrays (used by SubIfd entries).
type IfdValue struct {
	rawValue
	bo binary.ByteOrder
}

func (v IfdValue) Values() []uint32 {
	out := make([]uint32, v.count)
	for i := range out {
		out[i] = v.bo.Uint32(v.data[i*4:])
	}
	return out
}
func (v IfdValue) String() string { return formatUints32(v.Values()) }

// CommentValue is a library-internal type (spec §3) for a UserComment
// entry: an 8-byte charset-id prefix followed by the text.
type CommentValue struct{ rawValue }

func (v CommentValue) String() string {
	if len(v.data) <= 8 {
		return ""
	}
	return string(v.data[8:])
}

// DateValue is a library-internal type for an Exif ASCII date/time
// ("YYYY:MM:DD HH:MM:SS\0") re-exposed with a dedicated tag for callers
// that want it distinct from a plain AsciiValue.
type DateValue struct{ rawValue }

func (v DateValue) String() string {
	s := v.data
	if i := indexByte(s, 0); i >= 0 {
		s = s[:i]
	}
	return string(s)
}

// ParseValue decodes count elements of wire type typ from raw (already
// sliced to exactly Size() bytes) using byte order bo.
func ParseValue(bo binary.ByteOrder, typ Type, count uint32, raw []byte) (Value, error) {
	want := typ.Size() * count
	if uint32(len(raw)) < want {
		return nil, errors.Wrapf(ErrCorruptedMetadata,
			"value of type %s count %d needs %d bytes, got %d", typ, count, want, len(raw))
	}
	raw = raw[:want]
	base := rawValue{typ: typ, count: count, data: raw}
	switch typ {
	case TypeByte, TypeUndefined, TypeSByte:
		return ByteValue{base}, nil
	case TypeAscii:
		return AsciiValue{base}, nil
	case TypeShort:
		return ShortValue{base, bo}, nil
	case TypeLong:
		return LongValue{base, bo}, nil
	case TypeSShort:
		return SShortValue{base, bo}, nil
	case TypeSLong:
		return SLongValue{base, bo}, nil
	case TypeRational:
		return RationalValue{base, bo}, nil
	case TypeSRational:
		return SRationalValue{base, bo}, nil
	case TypeFloat:
		return FloatValue{base, bo}, nil
	case TypeDouble:
		return DoubleValue{base, bo}, nil
	case TypeIfd:
		return IfdValue{base, bo}, nil
	case TypeComment:
		return CommentValue{base}, nil
	case TypeDate:
		return DateValue{base}, nil
	default:
		return nil, errors.Wrapf(ErrCorruptedMetadata, "unknown wire type %d", uint16(typ))
	}
}

func indexByte(b []byte, c byte) int {
	for i, x := range b {
		if x == c {
			return i
		}
	}
	return -1
}

func formatHex(b []byte) string {
	var sb strings.Builder
	for i, c := range b {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(hexByte(c))
	}
	return sb.String()
}

const hexDigits = "0123456789abcdef"

func hexByte(c byte) string {
	return string([]byte{hexDigits[c>>4], hexDigits[c&0xf]})
}
