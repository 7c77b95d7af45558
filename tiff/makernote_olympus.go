package tiff

import "encoding/binary"

// parseOlympus1Header covers the original "OLYMP\x00" + 2-byte version
// signature (spec §4.4 Olympus v1): no embedded byte order, pointers
// relative to the maker note's own start.
func parseOlympus1Header(raw []byte, byMake string) (MakernoteHeader, uint32, error) {
	const headerLen = 8
	if len(raw) < headerLen {
		return nil, 0, errUnrecognizedHeader("Olympus1")
	}
	return &simpleMakernoteHeader{
		vendor: "Olympus1",
		raw:    append([]byte(nil), raw[:headerLen]...),
		mode:   baseOffsetMakerNoteStart,
	}, headerLen, nil
}

// parseOlympus2Header covers the revised "OLYMPUS\x00" signature with
// an embedded byte-order mark ("II"/"MM") plus a 2-byte version
// (spec §4.4 Olympus v2): a 12-byte header, nested IFD offsets
// relative to the maker note's own start.
func parseOlympus2Header(raw []byte, byMake string) (MakernoteHeader, uint32, error) {
	const headerLen = 12
	if len(raw) < headerLen {
		return nil, 0, errUnrecognizedHeader("Olympus2")
	}
	order := detectMakernoteByteOrder(raw[8:10], binary.BigEndian)
	return &simpleMakernoteHeader{
		vendor: "Olympus2",
		raw:    append([]byte(nil), raw[:headerLen]...),
		mode:   baseOffsetMakerNoteStart,
		order:  order,
	}, headerLen, nil
}

// parseOMSystemHeader covers OM Digital Solutions' post-rebrand
// "OM SYSTEM\x00" signature, structurally identical to Olympus2 but
// with a longer vendor tag (spec §4.4 OM System).
func parseOMSystemHeader(raw []byte, byMake string) (MakernoteHeader, uint32, error) {
	const headerLen = 16
	if len(raw) < headerLen {
		return nil, 0, errUnrecognizedHeader("OMSystem")
	}
	order := detectMakernoteByteOrder(raw[12:14], binary.BigEndian)
	return &simpleMakernoteHeader{
		vendor: "OMSystem",
		raw:    append([]byte(nil), raw[:headerLen]...),
		mode:   baseOffsetMakerNoteStart,
		order:  order,
	}, headerLen, nil
}
