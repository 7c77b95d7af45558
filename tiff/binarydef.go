package tiff

import "encoding/binary"

// ArrayDef names one fixed-offset field inside a binary array (spec
// §4.5): a byte offset, a wire type, and an element count.
type ArrayDef struct {
	Name   string
	Offset uint32
	Type   Type
	Count  uint32
}

// ArraySet groups the ArrayDefs that apply to one on-disk layout
// version of a vendor structure (e.g. Nikon ShotInfo "0215" vs
// "0204"), since the same tag's payload layout changes across
// firmware/camera generations.
type ArraySet struct {
	Version string
	Length  uint32 // expected total byte length for this version, 0 = unchecked
	Defs    []ArrayDef
}

// Cipher descrambles/re-scrambles a binary array's raw bytes. Vendor
// ciphers here are XOR-keystream constructions whose keystream does
// not depend on the plaintext, so Decipher and Encipher are the same
// transformation (spec §4.5 / DESIGN.md's resolution of the teacher's
// read-only `descramble`).
type Cipher interface {
	Decipher(raw []byte, cfg *ArrayCfg) ([]byte, error)
	Encipher(raw []byte, cfg *ArrayCfg) ([]byte, error)
}

// ArrayCfg is the sub-parser's top-level configuration for one
// binary-array tag: which ArraySet applies (selected by a version
// prefix found in the data itself, or the sole set when VersionBytes
// is 0; a Sony camera model selects only the SonyCipher rotation), an
// optional Cipher, and whether short trailing reads should be
// concatenated into the last defined field rather than rejected
// (spec §4.5 "ConcatGaps" policy, resolved in DESIGN.md's Open
// Questions section).
type ArrayCfg struct {
	Tag          uint16
	Group        Group
	Sets         []ArraySet
	Cipher       Cipher
	ConcatGaps   bool
	VersionBytes int // how many leading bytes select the ArraySet, 0 = single Set
}

// SelectSet picks the ArraySet whose Version prefix matches raw, or
// the sole entry if cfg carries only one (VersionBytes == 0).
func (cfg *ArrayCfg) SelectSet(raw []byte) (*ArraySet, bool) {
	if cfg.VersionBytes == 0 {
		if len(cfg.Sets) == 0 {
			return nil, false
		}
		return &cfg.Sets[0], true
	}
	if len(raw) < cfg.VersionBytes {
		return nil, false
	}
	prefix := string(raw[:cfg.VersionBytes])
	for i := range cfg.Sets {
		if cfg.Sets[i].Version == prefix {
			return &cfg.Sets[i], true
		}
	}
	return nil, false
}

// DecodeElements decodes each ArrayDef in set against deciphered data,
// per the gap policy in cfg: a def whose offset+size overruns the
// buffer is either skipped (default) or clamped into the remaining
// bytes when cfg.ConcatGaps is set.
func DecodeElements(bo binary.ByteOrder, group Group, data []byte, set *ArraySet, cfg *ArrayCfg) []*BinaryElement {
	var out []*BinaryElement
	for _, def := range set.Defs {
		need := def.Type.Size() * def.Count
		avail := uint32(0)
		if def.Offset < uint32(len(data)) {
			avail = uint32(len(data)) - def.Offset
		}
		count := def.Count
		if avail < need {
			if !cfg.ConcatGaps || avail == 0 {
				continue
			}
			count = avail / def.Type.Size()
			if count == 0 {
				continue
			}
		}
		v, err := ParseValue(bo, def.Type, count, data[def.Offset:])
		if err != nil {
			continue
		}
		out = append(out, NewBinaryElement(def.Name, group, def.Offset, v))
	}
	return out
}
