package tiff

import "encoding/binary"

// offsetFixups records header-embedded pointers that can only be
// resolved after the directory tree has been laid out -- spec §4.3's
// "fixup records (e.g. CR2 IFD3 pointer in its header) are written in
// a second pass". A plain writeCursor field rather than a return value
// because several node kinds (SubIfd, MnEntry, IfdMakernote) thread
// the same cursor through nested Write calls and any of them may need
// to register a fixup (a nested directory reporting where its CR2-
// specific trailer landed, for instance).
type offsetFixups struct {
	entries []fixupEntry
}

type fixupEntry struct {
	headerOffset uint32
	value        uint32
}

// newOffsetFixups returns an empty registry, ready to be threaded
// through a writeCursor.
func newOffsetFixups() *offsetFixups {
	return &offsetFixups{}
}

// register records that buf[headerOffset:headerOffset+4] must be
// patched with value once the full tree has been written (i.e. once
// value -- usually an offset discovered mid-traversal -- is known).
func (f *offsetFixups) register(headerOffset, value uint32) {
	f.entries = append(f.entries, fixupEntry{headerOffset, value})
}

// apply patches every registered fixup into buf using byte order bo.
// Grounded on the teacher's single assumption (serialize.go never
// revisits already-written bytes, since it never emitted CR2); this
// registry is the generalization spec §4.3 requires to support that
// format.
func (f *offsetFixups) apply(bo binary.ByteOrder, buf []byte) error {
	for _, e := range f.entries {
		if err := need(buf, e.headerOffset, 4); err != nil {
			return err
		}
		bo.PutUint32(buf[e.headerOffset:], e.value)
	}
	return nil
}
