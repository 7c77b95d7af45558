// Package tiff implements the TIFF/Exif metadata engine shared by every
// raw-image and still-image container this module's callers support:
// the composite IFD tree, the directory reader and writer, the tag
// creation registry, makernote dispatch and header handling, and the
// binary-array sub-parser used for vendor maker notes.
//
// The package operates on an already-extracted TIFF byte slice (the
// payload of a JPEG APP1 segment, a WebP EXIF chunk, a raw file's TIFF
// header, ...). Locating that slice inside a particular container format
// is the job of a collaborator outside this package.
package tiff
