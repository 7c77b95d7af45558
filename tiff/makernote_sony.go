package tiff

// parseSony1Header covers the older "SONY CS \x00\x00" fixed-IFD
// maker note (no nested sub-IFDs, entries addressed directly):
// pointers are relative to the maker note's own start (spec §4.4 Sony
// v1).
func parseSony1Header(raw []byte, byMake string) (MakernoteHeader, uint32, error) {
	const headerLen = 12
	if len(raw) < headerLen {
		return nil, 0, errUnrecognizedHeader("Sony1")
	}
	return &simpleMakernoteHeader{
		vendor: "Sony1",
		raw:    append([]byte(nil), raw[:headerLen]...),
		mode:   baseOffsetMakerNoteStart,
	}, headerLen, nil
}

// parseSony2Header covers the revised "SONY DSC \x00\x00" signature
// used by newer bodies, identical base-offset rule to Sony1 but a
// longer signature (spec §4.4 Sony v2).
func parseSony2Header(raw []byte, byMake string) (MakernoteHeader, uint32, error) {
	const headerLen = 14
	if len(raw) < headerLen {
		return nil, 0, errUnrecognizedHeader("Sony2")
	}
	return &simpleMakernoteHeader{
		vendor: "Sony2",
		raw:    append([]byte(nil), raw[:headerLen]...),
		mode:   baseOffsetMakerNoteStart,
	}, headerLen, nil
}
