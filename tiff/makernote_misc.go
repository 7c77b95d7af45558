package tiff

// This file covers the remaining vendor families of spec §4.4 that
// each need only a fixed signature header with no further internal
// structure: Fuji, Panasonic, Pentax/Pentax-DNG, Samsung, Sigma, and
// Casio2. Every one of them builds a *simpleMakernoteHeader; only the
// signature length and base-offset rule differ, mirroring how
// garyhouston-tiff66's per-vendor SpaceRecs differ only in these same
// two respects for the "plain signature" vendors.

// parseFujiHeader: "FUJIFILM" (8 bytes) + 4-byte little-endian offset
// to the nested IFD, itself relative to the maker note's own start
// (spec §4.4 Fuji).
func parseFujiHeader(raw []byte, byMake string) (MakernoteHeader, uint32, error) {
	const headerLen = 12
	if len(raw) < headerLen {
		return nil, 0, errUnrecognizedHeader("Fuji")
	}
	return &simpleMakernoteHeader{
		vendor: "Fuji",
		raw:    append([]byte(nil), raw[:headerLen]...),
		mode:   baseOffsetMakerNoteStart,
	}, headerLen, nil
}

// parsePanasonicHeader: "Panasonic\x00\x00\x00" (12 bytes), no nested
// sub-header, pointers relative to the maker note's own start (spec
// §4.4 Panasonic).
func parsePanasonicHeader(raw []byte, byMake string) (MakernoteHeader, uint32, error) {
	const headerLen = 12
	if len(raw) < headerLen {
		return nil, 0, errUnrecognizedHeader("Panasonic")
	}
	return &simpleMakernoteHeader{
		vendor: "Panasonic",
		raw:    append([]byte(nil), raw[:headerLen]...),
		mode:   baseOffsetMakerNoteStart,
	}, headerLen, nil
}

// parsePentaxHeader: "PENTAX \x00" (8 bytes) followed immediately by
// the nested IFD, relative to the maker note's own start (spec §4.4
// Pentax).
func parsePentaxHeader(raw []byte, byMake string) (MakernoteHeader, uint32, error) {
	const headerLen = 8
	if len(raw) < headerLen {
		return nil, 0, errUnrecognizedHeader("Pentax")
	}
	return &simpleMakernoteHeader{
		vendor: "Pentax",
		raw:    append([]byte(nil), raw[:headerLen]...),
		mode:   baseOffsetMakerNoteStart,
	}, headerLen, nil
}

// parsePentaxDngHeader: the older Asahi Optical Co. "AOC\x00" 4-byte
// signature used by Pentax DNGs, pointers relative to the maker
// note's own start (spec §4.4 Pentax-DNG).
func parsePentaxDngHeader(raw []byte, byMake string) (MakernoteHeader, uint32, error) {
	const headerLen = 4
	if len(raw) < headerLen {
		return nil, 0, errUnrecognizedHeader("PentaxDng")
	}
	return &simpleMakernoteHeader{
		vendor: "PentaxDng",
		raw:    append([]byte(nil), raw[:headerLen]...),
		mode:   baseOffsetMakerNoteStart,
	}, headerLen, nil
}

// parseSamsungHeader: "SAMSUNG" signature variants used across the
// NX/GX lines. Pointers are relative to the enclosing TIFF's own
// start, not the maker note (spec §4.4 Samsung).
func parseSamsungHeader(raw []byte, byMake string) (MakernoteHeader, uint32, error) {
	const headerLen = 8
	if len(raw) < headerLen {
		return nil, 0, errUnrecognizedHeader("Samsung2")
	}
	return &simpleMakernoteHeader{
		vendor: "Samsung2",
		raw:    append([]byte(nil), raw[:headerLen]...),
		mode:   baseOffsetTiffStart,
	}, headerLen, nil
}

// parseSigmaHeader: "SIGMA\x00\x00\x00" or the older "FOVEON\x00\x00"
// signature, both 8 bytes, pointers relative to the maker note's own
// start (spec §4.4 Sigma).
func parseSigmaHeader(raw []byte, byMake string) (MakernoteHeader, uint32, error) {
	const headerLen = 8
	if len(raw) < headerLen {
		return nil, 0, errUnrecognizedHeader("Sigma")
	}
	return &simpleMakernoteHeader{
		vendor: "Sigma",
		raw:    append([]byte(nil), raw[:headerLen]...),
		mode:   baseOffsetMakerNoteStart,
	}, headerLen, nil
}

// parseCasio2Header: "QVC\x00\x00\x00" (6 bytes), pointers relative to
// the enclosing TIFF's own start (spec §4.4 Casio2).
func parseCasio2Header(raw []byte, byMake string) (MakernoteHeader, uint32, error) {
	const headerLen = 6
	if len(raw) < headerLen {
		return nil, 0, errUnrecognizedHeader("Casio2")
	}
	return &simpleMakernoteHeader{
		vendor: "Casio2",
		raw:    append([]byte(nil), raw[:headerLen]...),
		mode:   baseOffsetTiffStart,
	}, headerLen, nil
}
