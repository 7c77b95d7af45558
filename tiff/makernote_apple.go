package tiff

import "encoding/binary"

// Apple maker notes (grounded on the teacher's apple.go) carry no
// signature at all: the MakerNote entry's bytes are simply a nested
// IFD, read as big-endian, starting at offset 0, whose
// tags (0x0001-0x001f) are plist-encoded acceleration vectors, HDR
// type flags, and similar iOS-only metadata. The teacher recognizes
// it purely by the Make tag ("Apple"); there is no byte signature to
// match against, so this family is dispatched by byMake in
// makerPrefixTable rather than by prefix (spec §4.4's documented
// [ADD] supplement, see DESIGN.md).
func parseAppleHeader(raw []byte, byMake string) (MakernoteHeader, uint32, error) {
	if byMake != "Apple" {
		return nil, 0, errUnrecognizedHeader("Apple")
	}
	return &simpleMakernoteHeader{
		vendor: "Apple",
		raw:    nil,
		mode:   baseOffsetMakerNoteStart,
		order:  binary.BigEndian,
	}, 0, nil
}
