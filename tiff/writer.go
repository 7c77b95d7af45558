package tiff

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// WriteOptions controls the intrusive rewrite path (spec §4.3): byte
// order, whether to emit a CR2-style 16-byte header with a trailing
// IFD3 pointer fixup, and the headers's own first-IFD offset, which
// for classic TIFF is always 8 but is kept configurable so a caller
// embedding the TIFF stream inside a larger container (a JPEG APP1
// segment, a RIFF chunk) can reserve extra leading bytes.
type WriteOptions struct {
	ByteOrder   binary.ByteOrder
	HeaderSize  uint32 // defaults to 8 (or 16 for CR2) when zero
	CR2         bool
	CR2Ifd3Dir  *Directory // optional third IFD, CR2's RAW preview chain
}

func (o *WriteOptions) byteOrder() binary.ByteOrder {
	if o != nil && o.ByteOrder != nil {
		return o.ByteOrder
	}
	return binary.LittleEndian
}

func (o *WriteOptions) headerSize() uint32 {
	if o != nil && o.HeaderSize != 0 {
		return o.HeaderSize
	}
	if o != nil && o.CR2 {
		return 16
	}
	return 8
}

// chainTableSize sums Size() over a Directory and its IFD-chain
// successors (IFD0 -> IFD1 -> ...). The writer must reserve this many
// bytes as one contiguous entry-table region before the shared data
// area begins, since Directory.Write threads the chain through the
// same writeCursor.entryOff rather than recursing into a fresh region
// per link (spec §4.3's "next IFD" phase keeps entry tables adjacent).
func chainTableSize(root *Directory) uint32 {
	var sz uint32
	for d := root; d != nil; {
		sz += d.Size()
		next, _ := d.Next().(*Directory)
		d = next
	}
	return sz
}

// WriteTiff performs the intrusive six-phase rewrite of spec §4.3:
// size the whole tree, allocate one buffer, then walk it once more
// emitting the header, the chained entry tables, the shared data
// area, and the trailing image area, in that order. Grounded on the
// teacher's `Serialize`/`serializeEntries`/`serializeDataArea`
// (serialize.go), generalized from "two IFDs, no nesting, no fixups"
// into an arbitrarily deep composite tree with a CR2 header fixup.
func WriteTiff(root *Directory, opts *WriteOptions) ([]byte, error) {
	if root == nil {
		return nil, errors.Wrap(ErrCorruptedMetadata, "WriteTiff: nil root directory")
	}
	bo := opts.byteOrder()
	headerSize := opts.headerSize()

	tableSize := chainTableSize(root)
	dataSize := root.SizeData()
	imageSize := root.SizeImage()

	var ifd3Size uint32
	if opts != nil && opts.CR2 && opts.CR2Ifd3Dir != nil {
		ifd3Size = chainTableSize(opts.CR2Ifd3Dir) + opts.CR2Ifd3Dir.SizeData()
	}

	total := headerSize + tableSize + dataSize + imageSize + ifd3Size
	buf := make([]byte, total)

	hdr := &Header{ByteOrder: bo, Magic: MagicClassic, FirstIfdOff: headerSize}
	if opts != nil && opts.CR2 {
		hdr.Magic = 0x4352
		hdr.IsCR2 = true
	}
	if err := WriteHeader(buf, hdr); err != nil {
		return nil, errors.Wrap(err, "WriteTiff: header")
	}

	fixups := newOffsetFixups()
	c := &writeCursor{
		bo:       bo,
		buf:      buf,
		entryOff: headerSize,
		dataOff:  headerSize + tableSize,
		imageOff: headerSize + tableSize + dataSize,
		fixups:   fixups,
	}
	if _, err := root.Write(c); err != nil {
		return nil, errors.Wrap(err, "WriteTiff: writing tree")
	}

	if opts != nil && opts.CR2 && opts.CR2Ifd3Dir != nil {
		ifd3Off := c.imageOff
		ifd3Cursor := &writeCursor{
			bo:       bo,
			buf:      buf,
			entryOff: ifd3Off,
			dataOff:  ifd3Off + chainTableSize(opts.CR2Ifd3Dir),
			imageOff: ifd3Off + chainTableSize(opts.CR2Ifd3Dir) + opts.CR2Ifd3Dir.SizeData(),
			fixups:   fixups,
		}
		if _, err := opts.CR2Ifd3Dir.Write(ifd3Cursor); err != nil {
			return nil, errors.Wrap(err, "WriteTiff: writing CR2 IFD3")
		}
		// CR2Offset lives at header byte 12 (spec §6); registered as a
		// fixup rather than written directly so every header-embedded
		// pointer goes through the same patch path.
		fixups.register(12, ifd3Off)
	}

	if err := fixups.apply(bo, buf); err != nil {
		return nil, errors.Wrap(err, "WriteTiff: applying fixups")
	}
	return buf, nil
}
