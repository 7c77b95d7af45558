package tiff

import "github.com/pkg/errors"

// BinaryArray is an Undefined-type entry whose payload is itself a
// fixed-layout binary structure (Nikon ShotInfo/ColorBalance/LensData,
// Sony camera-settings blocks) described by an ArrayCfg (C8). It wraps
// the same raw bytes an ordinary Entry would hold, but additionally
// exposes named BinaryElement children for decoded sub-fields -- the
// elements are a read/write view over `raw`, not separate wire
// entries (spec §4.5: "sub-parser produces named elements over an
// existing entry's bytes").
type BinaryArray struct {
	tag   ExtTag
	group Group
	cfg   *ArrayCfg
	raw   []byte // on-the-wire bytes, enciphered if cfg.Cipher != nil
	elems []*BinaryElement
}

func NewBinaryArray(tag uint16, group Group, cfg *ArrayCfg, raw []byte) *BinaryArray {
	return &BinaryArray{tag: ExtTag(tag), group: group, cfg: cfg, raw: raw}
}

func (b *BinaryArray) Tag() ExtTag  { return b.tag }
func (b *BinaryArray) Group() Group { return b.group }
func (b *BinaryArray) Config() *ArrayCfg { return b.cfg }
func (b *BinaryArray) Elements() []*BinaryElement { return b.elems }
func (b *BinaryArray) Raw() []byte { return b.raw }

// SetElements replaces the decoded element view (populated by the
// binary-array sub-parser once it has deciphered `raw`, C8).
func (b *BinaryArray) SetElements(elems []*BinaryElement) { b.elems = elems }

func (b *BinaryArray) AddPath(tag ExtTag, path Path, root Group, leaf Node) (Node, error) {
	return nil, &nodeKindError{"AddPath", "BinaryArray"}
}
func (b *BinaryArray) AddChild(child Node) error {
	elem, ok := child.(*BinaryElement)
	if !ok {
		return errors.Wrap(ErrCorruptedMetadata, "BinaryArray.AddChild: not a BinaryElement")
	}
	b.elems = append(b.elems, elem)
	return nil
}
func (b *BinaryArray) AddNext(Node) error { return &nodeKindError{"AddNext", "BinaryArray"} }

func (b *BinaryArray) Accept(v Visitor, flags VisitFlags) (VisitFlags, error) {
	return v.VisitBinaryArray(b, flags)
}

func (b *BinaryArray) Size() uint32      { return 12 }
func (b *BinaryArray) Count() uint32     { return 1 }
func (b *BinaryArray) SizeData() uint32  { return alignUp2(uint32(len(b.raw))) }
func (b *BinaryArray) SizeImage() uint32 { return 0 }

// Write re-enciphers the current element view back into `raw` (if the
// array carries a cipher) before emitting it as an ordinary Undefined
// data-area entry.
func (b *BinaryArray) Write(c *writeCursor) (uint32, error) {
	payload := b.raw
	if b.cfg != nil && b.cfg.Cipher != nil && len(b.elems) > 0 {
		plain, err := b.cfg.Cipher.Decipher(b.raw, b.cfg)
		if err != nil {
			return 0, errors.Wrap(err, "deciphering binary array")
		}
		for _, el := range b.elems {
			if el.value != nil && el.offset < uint32(len(plain)) {
				copy(plain[el.offset:], el.value.Bytes())
			}
		}
		reenciphered, err := b.cfg.Cipher.Encipher(plain, b.cfg)
		if err != nil {
			return 0, errors.Wrap(err, "enciphering binary array")
		}
		payload = reenciphered
	}

	off := c.entryOff
	c.putU16(off, b.tag.Tag())
	c.putU16(off+2, uint16(TypeUndefined))
	c.putU32(off+4, uint32(len(payload)))
	c.putU32(off+8, c.dataOff)
	c.entryOff = off + 12
	if err := writeDataArea(c, payload); err != nil {
		return 0, errors.Wrapf(err, "writing binary array tag %#x", b.tag.Tag())
	}
	return 12, nil
}
