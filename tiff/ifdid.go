package tiff

import "fmt"

// Group is a namespace discriminator for tags (spec §3 IfdId): which
// logical IFD a (tag, value) pair belongs to. It carries no state of its
// own, just identity, matching spec §3's "purely discriminator; no
// state". Generalized from the teacher's 7-value IfdId
// (PRIMARY/THUMBNAIL/EXIF/GPS/IOP/MAKER/EMBEDDED) to the ~60-value
// vendor tree spec §3 requires.
type Group int

const (
	GroupIfd0 Group = iota
	GroupIfd1
	GroupExifIfd
	GroupGpsIfd
	GroupIopIfd
	GroupMakerNote

	// Sub-images (tag 0x014A in Ifd0, spec §6).
	GroupSubImage1
	GroupSubImage2
	GroupSubImage3
	GroupSubImage4
	GroupSubImage5
	GroupSubImage6
	GroupSubImage7
	GroupSubImage8
	GroupSubImage9
	GroupSubThumb1

	// Canon.
	GroupCanon
	GroupCanonCs
	GroupCanonSi
	GroupCanonCf
	GroupCanonPi
	GroupCanonFi
	GroupCanonPa

	// Nikon.
	GroupNikon1
	GroupNikon2
	GroupNikon3
	GroupNikon3Preview
	GroupNikon3VignetteCorr
	GroupNikon3ColorBalance

	// Olympus.
	GroupOlympus
	GroupOlympus2
	GroupOlympusEquipment
	GroupOlympusCameraSettings
	GroupOlympusRawDevelopment
	GroupOlympusRawDev2
	GroupOlympusImageProcessing
	GroupOlympusFocusInfo
	GroupOMSystem

	// Sony.
	GroupSony1
	GroupSony2
	GroupSony1MltCsA100
	GroupSony1MltCsOld
	GroupSony1MltCsNew
	GroupSony1MltCs7D

	// Fuji/Pentax/Samsung/Sigma/Panasonic/Casio/Apple.
	GroupFuji
	GroupPentax
	GroupPentaxDng
	GroupSamsung2
	GroupSamsung2PictureWizard
	GroupSigma
	GroupPanasonic
	GroupPanaRaw
	GroupCasio
	GroupCasio2
	GroupApple

	groupCount
)

var groupNames = [...]string{
	GroupIfd0:                   "Ifd0",
	GroupIfd1:                   "Ifd1",
	GroupExifIfd:                "ExifIfd",
	GroupGpsIfd:                 "GpsIfd",
	GroupIopIfd:                 "IopIfd",
	GroupMakerNote:              "MakerNote",
	GroupSubImage1:              "SubImage1",
	GroupSubImage2:              "SubImage2",
	GroupSubImage3:              "SubImage3",
	GroupSubImage4:              "SubImage4",
	GroupSubImage5:              "SubImage5",
	GroupSubImage6:              "SubImage6",
	GroupSubImage7:              "SubImage7",
	GroupSubImage8:              "SubImage8",
	GroupSubImage9:              "SubImage9",
	GroupSubThumb1:              "SubThumb1",
	GroupCanon:                  "Canon",
	GroupCanonCs:                "CanonCs",
	GroupCanonSi:                "CanonSi",
	GroupCanonCf:                "CanonCf",
	GroupCanonPi:                "CanonPi",
	GroupCanonFi:                "CanonFi",
	GroupCanonPa:                "CanonPa",
	GroupNikon1:                 "Nikon1",
	GroupNikon2:                 "Nikon2",
	GroupNikon3:                 "Nikon3",
	GroupNikon3Preview:          "Nikon3Preview",
	GroupNikon3VignetteCorr:     "Nikon3VignetteControl",
	GroupNikon3ColorBalance:     "Nikon3ColorBalance",
	GroupOlympus:                "Olympus",
	GroupOlympus2:               "Olympus2",
	GroupOlympusEquipment:       "OlympusEquipment",
	GroupOlympusCameraSettings:  "OlympusCameraSettings",
	GroupOlympusRawDevelopment:  "OlympusRawDevelopment",
	GroupOlympusRawDev2:         "OlympusRawDev2",
	GroupOlympusImageProcessing: "OlympusImageProcessing",
	GroupOlympusFocusInfo:       "OlympusFocusInfo",
	GroupOMSystem:               "OMSystem",
	GroupSony1:                  "Sony1",
	GroupSony2:                  "Sony2",
	GroupSony1MltCsA100:         "Sony1MltCsA100",
	GroupSony1MltCsOld:          "Sony1MltCsOld",
	GroupSony1MltCsNew:          "Sony1MltCsNew",
	GroupSony1MltCs7D:           "Sony1MltCs7D",
	GroupFuji:                   "Fuji",
	GroupPentax:                 "Pentax",
	GroupPentaxDng:              "PentaxDng",
	GroupSamsung2:               "Samsung2",
	GroupSamsung2PictureWizard:  "Samsung2PictureWizard",
	GroupSigma:                  "Sigma",
	GroupPanasonic:              "Panasonic",
	GroupPanaRaw:                "PanaRaw",
	GroupCasio:                  "Casio",
	GroupCasio2:                 "Casio2",
	GroupApple:                  "Apple",
}

// String returns the group's canonical name.
func (g Group) String() string {
	if g >= 0 && int(g) < len(groupNames) && groupNames[g] != "" {
		return groupNames[g]
	}
	return fmt.Sprintf("Group(%d)", int(g))
}

// IsMakerGroup reports whether g belongs to a vendor maker-note tree,
// used by the writer's ordering rule: "preserved insertion order within
// makernote groups (group >= MakerNote)" (spec §4.3).
func (g Group) IsMakerGroup() bool {
	return g >= GroupMakerNote
}
