package tiff

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// Classic TIFF and RAW-variant header magic words (spec §6). The
// classic TIFF magic (0x002A) is shared by plain TIFF, Exif-in-JPEG,
// and most RAW formats derived from TIFF; CR2/ORF/Panasonic layer a
// few extra bytes on top for their own bookkeeping.
const (
	MagicClassic    uint16 = 0x002a
	MagicPanasonic  uint16 = 0x0055
	magicOrfBigII          = 0x4f52 // "OR" read as big-endian uint16
	magicOrfLilSR          = 0x5352 // "RS" read as little-endian uint16 ("IIRS")
)

// Header is the decoded result of ReadHeader: byte order, the magic
// word actually found (so callers/writers can tell a CR2 from a plain
// TIFF), the first IFD's offset, and any format-specific trailer
// (CR2's third, footer-pointed IFD).
type Header struct {
	ByteOrder    binary.ByteOrder
	Magic        uint16
	FirstIfdOff  uint32
	CR2Offset    uint32 // CR2's IFD3 offset, 0 if absent
	IsCR2        bool
}

// ReadHeader parses the 8-byte classic TIFF header (or its CR2/ORF/
// Panasonic variants) at the start of data, validating the byte-order
// mark and magic word per spec §6. Grounded on the teacher's
// `checkValidTiff` (exif.go).
func ReadHeader(data []byte) (*Header, error) {
	if len(data) < 8 {
		return nil, errors.Wrap(ErrInputDataRead, "header: buffer shorter than 8 bytes")
	}
	var bo binary.ByteOrder
	switch {
	case data[0] == 'I' && data[1] == 'I':
		bo = binary.LittleEndian
	case data[0] == 'M' && data[1] == 'M':
		bo = binary.BigEndian
	default:
		return nil, errors.Wrapf(ErrInvalidByteOrder, "header: unrecognized byte-order mark %q", data[:2])
	}

	magic := bo.Uint16(data[2:4])
	h := &Header{ByteOrder: bo, Magic: magic}

	switch magic {
	case MagicClassic, MagicPanasonic, magicOrfBigII, magicOrfLilSR:
		h.FirstIfdOff = bo.Uint32(data[4:8])
	case 0x4352: // "CR" -- Canon RAW v2 (CR2)
		if len(data) < 16 {
			return nil, errors.Wrap(ErrInputDataRead, "CR2 header: buffer shorter than 16 bytes")
		}
		h.FirstIfdOff = bo.Uint32(data[4:8])
		h.IsCR2 = true
		h.CR2Offset = bo.Uint32(data[12:16])
	default:
		return nil, errors.Wrapf(ErrNotAnImage, "header: unrecognized magic %#04x", magic)
	}
	return h, nil
}

// IsOlympusRawSignature reports whether the first four bytes of data
// match one of Olympus's raw-format prefixes ("IIRO"/"MMOR"/"IIRS"/"IISR"),
// layered on top of a classic TIFF header rather than replacing it
// (spec §6 "ORF raw-format magic words").
func IsOlympusRawSignature(data []byte) bool {
	if len(data) < 4 {
		return false
	}
	switch string(data[:4]) {
	case "IIRO", "MMOR", "IIRS", "IISR":
		return true
	default:
		return false
	}
}

// WriteHeader serializes h's fixed 8 (or 16, for CR2) bytes into buf
// at offset 0, the inverse of ReadHeader.
func WriteHeader(buf []byte, h *Header) error {
	if h.IsCR2 {
		if err := need(buf, 0, 16); err != nil {
			return err
		}
	} else if err := need(buf, 0, 8); err != nil {
		return err
	}
	if h.ByteOrder == binary.LittleEndian {
		buf[0], buf[1] = 'I', 'I'
	} else {
		buf[0], buf[1] = 'M', 'M'
	}
	putU16(h.ByteOrder, buf, 2, h.Magic)
	putU32(h.ByteOrder, buf, 4, h.FirstIfdOff)
	if h.IsCR2 {
		putU32(h.ByteOrder, buf, 12, h.CR2Offset)
	}
	return nil
}
