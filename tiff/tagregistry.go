package tiff

// TagInfo is the static metadata the tag registry (spec §3 TagRegistry)
// returns for a (Group, tag) pair: everything the reader and decoder
// need that cannot be derived from the wire bytes alone.
//
// Grounded on the teacher's per-tag check*() dispatch in parse.go,
// which hard-codes this same information (name, expected TIFF type,
// printer/format function, whether the tag addresses a nested IFD)
// inside each checkXxxTag switch arm. Here it is hoisted into a single
// data table, matching spec §4.1's "TagRegistry: pure lookup, no
// parsing side effects".
type TagInfo struct {
	Name string
	// Type is the tag's expected wire type. The reader does not check
	// entries against it; it only re-types an entry whose registered
	// Type is an internal one (Comment, Date). TypeUndefined leaves the
	// type to the wire (e.g. vendor-defined MakerNote entries).
	Type Type
	// ChildGroup is set when the tag addresses a nested IFD (e.g.
	// ExifIFD, GpsIFD, SubIfd); zero value GroupIfd0 otherwise, so the
	// caller must consult hasChild, not the zero value, to tell "no
	// child" from "child is Ifd0".
	ChildGroup Group
	hasChild   bool
	// AlwaysOffset marks tags the reader/writer must build as a
	// DataEntry rather than a plain Entry: values that are logically
	// variable-length (coordinate triplets, lens-spec quads) even when
	// a particular instance is short enough to fit inline, so callers
	// get a stable out-of-line address to patch non-intrusively (spec
	// §3 DataEntry, §4.3 "non-intrusive update").
	AlwaysOffset bool
}

type tagKey struct {
	group Group
	tag   uint16
}

var tagRegistry = map[tagKey]TagInfo{}

func registerTag(group Group, tag uint16, info TagInfo) {
	tagRegistry[tagKey{group, tag}] = info
}

func registerIfdTag(group Group, tag uint16, info TagInfo, child Group) {
	info.hasChild = true
	info.ChildGroup = child
	tagRegistry[tagKey{group, tag}] = info
}

// LookupTag returns the registered metadata for (group, tag), or
// (TagInfo{}, false) if the tag is not in the registry -- an unknown
// tag, not a malformed one; the reader still builds a generic Entry
// node for it (spec §4.4 S3).
func LookupTag(group Group, tag uint16) (TagInfo, bool) {
	info, ok := tagRegistry[tagKey{group, tag}]
	return info, ok
}

// HasChild reports whether info addresses a nested IFD and, if so,
// which group that IFD belongs to.
func (info TagInfo) HasChild() (Group, bool) {
	return info.ChildGroup, info.hasChild
}

func init() {
	registerPrimaryTags()
	registerExifTags()
	registerGpsTags()
	registerIopTags()
	registerAppleTags()
}

// registerPrimaryTags covers IFD0/IFD1 (spec glossary "Primary/
// Thumbnail IFD"), grounded on parse.go's first tag block (lines
// ~205-299 in the teacher).
func registerPrimaryTags() {
	for _, g := range []Group{GroupIfd0, GroupIfd1} {
		registerTag(g, 0x0100, TagInfo{Name: "ImageWidth", Type: TypeLong})
		registerTag(g, 0x0101, TagInfo{Name: "ImageLength", Type: TypeLong})
		registerTag(g, 0x0102, TagInfo{Name: "BitsPerSample", Type: TypeShort})
		registerTag(g, 0x0103, TagInfo{Name: "Compression", Type: TypeShort})
		registerTag(g, 0x0106, TagInfo{Name: "PhotometricInterpretation", Type: TypeShort})
		registerTag(g, 0x010e, TagInfo{Name: "ImageDescription", Type: TypeAscii})
		registerTag(g, 0x010f, TagInfo{Name: "Make", Type: TypeAscii})
		registerTag(g, 0x0110, TagInfo{Name: "Model", Type: TypeAscii})
		registerTag(g, 0x0111, TagInfo{Name: "StripOffsets", Type: TypeLong})
		registerTag(g, 0x0112, TagInfo{Name: "Orientation", Type: TypeShort})
		registerTag(g, 0x0115, TagInfo{Name: "SamplesPerPixel", Type: TypeShort})
		registerTag(g, 0x0116, TagInfo{Name: "RowsPerStrip", Type: TypeLong})
		registerTag(g, 0x0117, TagInfo{Name: "StripByteCounts", Type: TypeLong})
		registerTag(g, 0x011a, TagInfo{Name: "XResolution", Type: TypeRational})
		registerTag(g, 0x011b, TagInfo{Name: "YResolution", Type: TypeRational})
		registerTag(g, 0x011c, TagInfo{Name: "PlanarConfiguration", Type: TypeShort})
		registerTag(g, 0x0128, TagInfo{Name: "ResolutionUnit", Type: TypeShort})
		registerTag(g, 0x0131, TagInfo{Name: "Software", Type: TypeAscii})
		registerTag(g, 0x0132, TagInfo{Name: "DateTime", Type: TypeDate})
		registerTag(g, 0x013b, TagInfo{Name: "Artist", Type: TypeAscii})
		registerTag(g, 0x013c, TagInfo{Name: "HostComputer", Type: TypeAscii})
		registerTag(g, 0x013e, TagInfo{Name: "WhitePoint", Type: TypeRational})
		registerTag(g, 0x013f, TagInfo{Name: "PrimaryChromaticities", Type: TypeRational})
		registerTag(g, 0x0211, TagInfo{Name: "YCbCrCoefficients", Type: TypeRational})
		registerTag(g, 0x0212, TagInfo{Name: "YCbCrSubSampling", Type: TypeShort})
		registerTag(g, 0x0213, TagInfo{Name: "YCbCrPositioning", Type: TypeShort})
		registerTag(g, 0x0214, TagInfo{Name: "ReferenceBlackWhite", Type: TypeRational})
		registerTag(g, 0x8298, TagInfo{Name: "Copyright", Type: TypeAscii})
		registerTag(g, 0x014a, TagInfo{Name: "SubIFDs", Type: TypeLong})
		registerTag(g, 0xea1c, TagInfo{Name: "Padding", Type: TypeUndefined})

		// JPEG thumbnail pointer pair (spec §6 "thumbnail access").
		registerTag(g, 0x0201, TagInfo{Name: "JPEGInterchangeFormat", Type: TypeLong})
		registerTag(g, 0x0202, TagInfo{Name: "JPEGInterchangeFormatLength", Type: TypeLong})
	}
	registerIfdTag(GroupIfd0, 0x8769, TagInfo{Name: "ExifIFD", Type: TypeLong}, GroupExifIfd)
	registerIfdTag(GroupIfd0, 0x8825, TagInfo{Name: "GPSInfoIFD", Type: TypeLong}, GroupGpsIfd)
}

// registerExifTags covers the Exif sub-IFD (spec glossary "Exif IFD"),
// grounded on parse.go's second tag block (lines ~504-578).
func registerExifTags() {
	g := GroupExifIfd
	registerTag(g, 0x829a, TagInfo{Name: "ExposureTime", Type: TypeRational})
	registerTag(g, 0x829d, TagInfo{Name: "FNumber", Type: TypeRational})
	registerTag(g, 0x8822, TagInfo{Name: "ExposureProgram", Type: TypeShort})
	registerTag(g, 0x8827, TagInfo{Name: "ISOSpeedRatings", Type: TypeShort})
	registerTag(g, 0x9000, TagInfo{Name: "ExifVersion", Type: TypeUndefined})
	registerTag(g, 0x9003, TagInfo{Name: "DateTimeOriginal", Type: TypeDate})
	registerTag(g, 0x9004, TagInfo{Name: "DateTimeDigitized", Type: TypeDate})
	registerTag(g, 0x9010, TagInfo{Name: "OffsetTime", Type: TypeAscii})
	registerTag(g, 0x9011, TagInfo{Name: "OffsetTimeOriginal", Type: TypeAscii})
	registerTag(g, 0x9012, TagInfo{Name: "OffsetTimeDigitized", Type: TypeAscii})
	registerTag(g, 0x9101, TagInfo{Name: "ComponentsConfiguration", Type: TypeUndefined})
	registerTag(g, 0x9102, TagInfo{Name: "CompressedBitsPerPixel", Type: TypeRational})
	registerTag(g, 0x9201, TagInfo{Name: "ShutterSpeedValue", Type: TypeSRational})
	registerTag(g, 0x9202, TagInfo{Name: "ApertureValue", Type: TypeRational})
	registerTag(g, 0x9203, TagInfo{Name: "BrightnessValue", Type: TypeSRational})
	registerTag(g, 0x9204, TagInfo{Name: "ExposureBiasValue", Type: TypeSRational})
	registerTag(g, 0x9205, TagInfo{Name: "MaxApertureValue", Type: TypeRational})
	registerTag(g, 0x9206, TagInfo{Name: "SubjectDistance", Type: TypeRational})
	registerTag(g, 0x9207, TagInfo{Name: "MeteringMode", Type: TypeShort})
	registerTag(g, 0x9208, TagInfo{Name: "LightSource", Type: TypeShort})
	registerTag(g, 0x9209, TagInfo{Name: "Flash", Type: TypeShort})
	registerTag(g, 0x920a, TagInfo{Name: "FocalLength", Type: TypeRational})
	registerTag(g, 0x9214, TagInfo{Name: "SubjectArea", Type: TypeShort})
	registerTag(g, 0x9286, TagInfo{Name: "UserComment", Type: TypeComment})
	registerTag(g, 0x9290, TagInfo{Name: "SubsecTime", Type: TypeAscii})
	registerTag(g, 0x9291, TagInfo{Name: "SubsecTimeOriginal", Type: TypeAscii})
	registerTag(g, 0x9292, TagInfo{Name: "SubsecTimeDigitized", Type: TypeAscii})
	registerTag(g, 0xa000, TagInfo{Name: "FlashpixVersion", Type: TypeUndefined})
	registerTag(g, 0xa001, TagInfo{Name: "ColorSpace", Type: TypeShort})
	registerTag(g, 0xa002, TagInfo{Name: "PixelXDimension", Type: TypeLong})
	registerTag(g, 0xa003, TagInfo{Name: "PixelYDimension", Type: TypeLong})
	registerTag(g, 0xa214, TagInfo{Name: "SubjectLocation", Type: TypeShort})
	registerTag(g, 0xa217, TagInfo{Name: "SensingMethod", Type: TypeShort})
	registerTag(g, 0xa300, TagInfo{Name: "FileSource", Type: TypeUndefined})
	registerTag(g, 0xa301, TagInfo{Name: "SceneType", Type: TypeUndefined})
	registerTag(g, 0xa302, TagInfo{Name: "CFAPattern", Type: TypeUndefined})
	registerTag(g, 0xa401, TagInfo{Name: "CustomRendered", Type: TypeShort})
	registerTag(g, 0xa402, TagInfo{Name: "ExposureMode", Type: TypeShort})
	registerTag(g, 0xa403, TagInfo{Name: "WhiteBalance", Type: TypeShort})
	registerTag(g, 0xa404, TagInfo{Name: "DigitalZoomRatio", Type: TypeRational})
	registerTag(g, 0xa405, TagInfo{Name: "FocalLengthIn35mmFilm", Type: TypeShort})
	registerTag(g, 0xa406, TagInfo{Name: "SceneCaptureType", Type: TypeShort})
	registerTag(g, 0xa407, TagInfo{Name: "GainControl", Type: TypeShort})
	registerTag(g, 0xa408, TagInfo{Name: "Contrast", Type: TypeShort})
	registerTag(g, 0xa409, TagInfo{Name: "Saturation", Type: TypeShort})
	registerTag(g, 0xa40a, TagInfo{Name: "Sharpness", Type: TypeShort})
	registerTag(g, 0xa40c, TagInfo{Name: "SubjectDistanceRange", Type: TypeShort})
	registerTag(g, 0xa420, TagInfo{Name: "ImageUniqueID", Type: TypeAscii})
	registerTag(g, 0xa432, TagInfo{Name: "LensSpecification", Type: TypeRational, AlwaysOffset: true})
	registerTag(g, 0xa433, TagInfo{Name: "LensMake", Type: TypeAscii})
	registerTag(g, 0xa434, TagInfo{Name: "LensModel", Type: TypeAscii})
	// MakerNote and the Interop pointer are not plain DataEntry tags --
	// they drive C7/the Interop sub-IFD and are handled by the reader
	// directly, but the registry still names them for decoder output.
	registerTag(g, 0x927c, TagInfo{Name: "MakerNote", Type: TypeUndefined})
	registerIfdTag(g, 0xa005, TagInfo{Name: "InteroperabilityIFD", Type: TypeLong}, GroupIopIfd)
}

// registerGpsTags covers the GPS sub-IFD, grounded on parse.go's third
// tag block (lines ~1332-1389).
func registerGpsTags() {
	g := GroupGpsIfd
	registerTag(g, 0x0000, TagInfo{Name: "GPSVersionID", Type: TypeByte})
	registerTag(g, 0x0001, TagInfo{Name: "GPSLatitudeRef", Type: TypeAscii})
	registerTag(g, 0x0002, TagInfo{Name: "GPSLatitude", Type: TypeRational, AlwaysOffset: true})
	registerTag(g, 0x0003, TagInfo{Name: "GPSLongitudeRef", Type: TypeAscii})
	registerTag(g, 0x0004, TagInfo{Name: "GPSLongitude", Type: TypeRational, AlwaysOffset: true})
	registerTag(g, 0x0005, TagInfo{Name: "GPSAltitudeRef", Type: TypeByte})
	registerTag(g, 0x0006, TagInfo{Name: "GPSAltitude", Type: TypeRational, AlwaysOffset: true})
	registerTag(g, 0x0007, TagInfo{Name: "GPSTimeStamp", Type: TypeRational, AlwaysOffset: true})
	registerTag(g, 0x0008, TagInfo{Name: "GPSSatellites", Type: TypeAscii})
	registerTag(g, 0x0009, TagInfo{Name: "GPSStatus", Type: TypeAscii})
	registerTag(g, 0x000a, TagInfo{Name: "GPSMeasureMode", Type: TypeAscii})
	registerTag(g, 0x000b, TagInfo{Name: "GPSDOP", Type: TypeRational})
	registerTag(g, 0x000c, TagInfo{Name: "GPSSpeedRef", Type: TypeAscii})
	registerTag(g, 0x000d, TagInfo{Name: "GPSSpeed", Type: TypeRational})
	registerTag(g, 0x000e, TagInfo{Name: "GPSTrackRef", Type: TypeAscii})
	registerTag(g, 0x000f, TagInfo{Name: "GPSTrack", Type: TypeRational})
	registerTag(g, 0x0010, TagInfo{Name: "GPSImgDirectionRef", Type: TypeAscii})
	registerTag(g, 0x0011, TagInfo{Name: "GPSImgDirection", Type: TypeRational})
	registerTag(g, 0x0012, TagInfo{Name: "GPSMapDatum", Type: TypeAscii})
	registerTag(g, 0x001d, TagInfo{Name: "GPSDateStamp", Type: TypeAscii})
}

// registerIopTags covers the Interoperability sub-IFD, grounded on
// parse.go's fourth tag block (lines ~1390+).
func registerIopTags() {
	g := GroupIopIfd
	registerTag(g, 0x0001, TagInfo{Name: "InteroperabilityIndex", Type: TypeAscii})
	registerTag(g, 0x0002, TagInfo{Name: "InteroperabilityVersion", Type: TypeUndefined})
}

// registerAppleTags covers the subset of the Apple maker note this
// engine names explicitly; the remainder decode as generic Entry
// nodes with the registry miss falling back to an unnamed tag (spec
// §4.1's "unknown tag still builds a generic Entry"). Grounded on the
// teacher's apple.go tag constant block.
func registerAppleTags() {
	g := GroupApple
	registerTag(g, 0x0004, TagInfo{Name: "AppleFlag0004", Type: TypeSLong})
	registerTag(g, 0x0008, TagInfo{Name: "AppleAccelerationVector", Type: TypeSRational})
	registerTag(g, 0x000a, TagInfo{Name: "AppleHDRImageType", Type: TypeSLong})
	registerTag(g, 0x000e, TagInfo{Name: "AppleOrientation", Type: TypeSLong})
	registerTag(g, 0x0011, TagInfo{Name: "AppleMediaGroupUUID", Type: TypeAscii})
	registerTag(g, 0x0015, TagInfo{Name: "AppleImageUniqueID", Type: TypeAscii})
}
