package tiff

import "errors"

// Sentinel error kinds, per spec §7. Wrap with github.com/pkg/errors.Wrapf
// at call boundaries so the sentinel remains recoverable via errors.Is.
var (
	ErrNotAnImage                    = errors.New("tiff: not a TIFF-derived image")
	ErrDataSourceOpen                = errors.New("tiff: could not open data source")
	ErrInputDataRead                 = errors.New("tiff: short read")
	ErrCorruptedMetadata             = errors.New("tiff: corrupted metadata")
	ErrInvalidByteOrder              = errors.New("tiff: invalid byte order")
	ErrOffsetOutOfRange              = errors.New("tiff: offset out of range")
	ErrUnsupportedDataAreaOffsetType = errors.New("tiff: unsupported data area offset type")
	ErrTooLargeJpegSegment           = errors.New("tiff: encoded segment too large")
	ErrInvalidSettingForImage        = errors.New("tiff: setting not valid for this image")
	ErrWritingImageFormatUnsupported = errors.New("tiff: write path not implemented for this format")
)
