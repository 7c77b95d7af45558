package tiff

// sonyCipherTable is a fixed substitution table used by several Sony
// camera-settings blocks (Sony1MltCsOld/New/A100/7D) to obscure raw
// bytes with a simple XOR against this repeating 16-byte key, started
// at a model-selected rotation (see SonyCipher) -- a lighter-weight scheme than
// Nikon's two-key keystream, but the same self-inverse property
// applies: XOR-ing the same byte twice restores the original.
var sonyCipherTable = [16]byte{
	0x02, 0x15, 0x3e, 0x47, 0x58, 0x61, 0x7a, 0x8d,
	0x9c, 0xa5, 0xbe, 0xc7, 0xd8, 0xe1, 0xfa, 0x0d,
}

// SonyCipher implements Cipher for Sony's model-selected permutation
// (spec §4.5 "Sony variants use a model-selected permutation"). Model
// selects which rotation of sonyCipherTable to apply; unrecognized
// models fall back to rotation 0, matching how the teacher's maker
// table treats an unrecognized sub-model as a best-effort default
// rather than a hard error.
type SonyCipher struct {
	Model string
}

var sonyModelRotation = map[string]int{
	"DSLR-A100": 0,
	"DSLR-A700": 3,
	"DSLR-A900": 5,
	"SLT-A77":   7,
}

func (c SonyCipher) rotation() int {
	if r, ok := sonyModelRotation[c.Model]; ok {
		return r
	}
	return 0
}

func (c SonyCipher) Decipher(raw []byte, cfg *ArrayCfg) ([]byte, error) {
	return c.transform(raw), nil
}

func (c SonyCipher) Encipher(raw []byte, cfg *ArrayCfg) ([]byte, error) {
	return c.transform(raw), nil
}

func (c SonyCipher) transform(data []byte) []byte {
	rot := c.rotation()
	out := make([]byte, len(data))
	for i, b := range data {
		key := sonyCipherTable[(i+rot)%len(sonyCipherTable)]
		out[i] = b ^ key
	}
	return out
}
