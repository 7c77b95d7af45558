package tiff

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// Nikon2Header covers the older "Nikon\x00\x01" maker note, whose
// header is just the 8-byte signature itself with no embedded TIFF
// header -- the nested IFD starts immediately after it and reuses the
// enclosing TIFF's byte order (spec §4.4 Nikon v2 row).
func parseNikon2Header(raw []byte, byMake string) (MakernoteHeader, uint32, error) {
	const sigLen = 8
	if len(raw) < sigLen {
		return nil, 0, errUnrecognizedHeader("Nikon2")
	}
	return &simpleMakernoteHeader{
		vendor: "Nikon2",
		raw:    append([]byte(nil), raw[:sigLen]...),
		mode:   baseOffsetMakerNoteStart,
	}, sigLen, nil
}

// Nikon3Header covers the modern "Nikon\x00\x02" maker note: an
// 8-byte signature followed by a nested mini-TIFF header (2-byte byte
// order mark, 2-byte magic, 4-byte first-IFD offset -- always 8 from
// the mini-header's own start). Offsets inside the nested IFD are
// relative to the start of that mini-TIFF header, i.e. just after the
// 8-byte signature (spec §4.4 "TIFF-within-a-TIFF").
type Nikon3Header struct {
	raw   []byte
	order binary.ByteOrder
}

func (h *Nikon3Header) Vendor() string             { return "Nikon3" }
func (h *Nikon3Header) HeaderSize() uint32          { return uint32(len(h.raw)) }
func (h *Nikon3Header) ByteOrder() binary.ByteOrder { return h.order }
func (h *Nikon3Header) Encode(binary.ByteOrder) []byte { return h.raw }

func (h *Nikon3Header) BaseOffset(makerNoteStart, tiffStart uint32) uint32 {
	return makerNoteStart + 8 // start of the nested mini-TIFF header
}

func parseNikon3Header(raw []byte, byMake string) (MakernoteHeader, uint32, error) {
	const sigLen = 8
	const miniHeaderLen = 8
	total := sigLen + miniHeaderLen
	if len(raw) < total {
		return nil, 0, errUnrecognizedHeader("Nikon3")
	}
	order := detectMakernoteByteOrder(raw[sigLen:], binary.BigEndian)
	magic := order.Uint16(raw[sigLen+2:])
	if magic != 0x002a {
		return nil, 0, errors.Wrap(ErrCorruptedMetadata, "Nikon3 maker note: bad mini-TIFF magic")
	}
	return &Nikon3Header{
		raw:   append([]byte(nil), raw[:total]...),
		order: order,
	}, uint32(total), nil
}
