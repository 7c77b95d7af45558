package tiff

import "encoding/binary"

// decoder is the C10 Visitor: it walks a composite tree built by
// ReadTiff and flattens it into an ExifData slice of Datum records.
// Grounded on the teacher's single-pass `Format`/ifdd-walk that prints
// name=value pairs (exif.go), generalized into the Visitor interface
// so a reader could re-walk the same tree for other purposes (the
// writer does not: it calls each node's Write method directly).
type decoder struct {
	out *ExifData
}

// Decode walks root (and its IFD-chain successors) and returns the
// flattened ExifData, in tree-walk order: spec §3 "decode(tree) ->
// ExifData" is realized as exactly one Accept call per node.
func Decode(root *Directory) (*ExifData, error) {
	d := &decoder{out: &ExifData{}}
	if _, err := root.Accept(d, defaultFlags()); err != nil {
		return nil, err
	}
	return d.out, nil
}

func (d *decoder) nameOf(group Group, tag ExtTag) string {
	if tag.IsSynthetic() {
		return ""
	}
	if info, ok := LookupTag(group, tag.Tag()); ok {
		return info.Name
	}
	return ""
}

func (d *decoder) emit(group Group, tag ExtTag, value Value) {
	d.emitNode(group, tag, value, nil)
}

func (d *decoder) emitNode(group Group, tag ExtTag, value Value, src Node) {
	d.out.add(Datum{Group: group, Tag: tag, Name: d.nameOf(group, tag), Value: value, srcNode: src})
}

func (d *decoder) VisitDirectory(dir *Directory, flags VisitFlags) (VisitFlags, error) {
	if flags&FlagTraverse == 0 {
		return flags, nil
	}
	for _, child := range dir.Children() {
		if _, err := child.Accept(d, defaultFlags()); err != nil {
			return flags, err
		}
	}
	if next := dir.Next(); next != nil {
		if _, err := next.Accept(d, defaultFlags()); err != nil {
			return flags, err
		}
	}
	return flags, nil
}

func (d *decoder) VisitEntry(e *Entry, flags VisitFlags) (VisitFlags, error) {
	d.emitNode(e.Group(), e.Tag(), e.Value(), e)
	return flags, nil
}

func (d *decoder) VisitDataEntry(e *DataEntry, flags VisitFlags) (VisitFlags, error) {
	d.emitNode(e.Group(), e.Tag(), e.Value(), e)
	return flags, nil
}

func (d *decoder) VisitSizeEntry(e *SizeEntry, flags VisitFlags) (VisitFlags, error) {
	bo := binary.BigEndian
	buf := make([]byte, 4)
	bo.PutUint32(buf, e.Length())
	d.emit(e.Group(), e.Tag(), LongValue{rawValue{typ: TypeLong, count: 1, data: buf}, bo})
	return flags, nil
}

func (d *decoder) VisitImageEntry(e *ImageEntry, flags VisitFlags) (VisitFlags, error) {
	// Thumbnail/strip bytes are not surfaced as a Datum (spec Non-goal
	// "no thumbnail rendering"); the decoder only reports metadata.
	return flags, nil
}

func (d *decoder) VisitSubIfd(s *SubIfd, flags VisitFlags) (VisitFlags, error) {
	if flags&FlagTraverse == 0 {
		return flags, nil
	}
	return s.Directory().Accept(d, defaultFlags())
}

func (d *decoder) VisitMnEntry(m *MnEntry, flags VisitFlags) (VisitFlags, error) {
	if !m.Known() {
		d.emit(m.Group(), m.Tag(), ByteValue{rawValue{typ: TypeUndefined, count: uint32(len(m.Raw())), data: m.Raw()}})
		return flags, nil
	}
	return m.Child().Accept(d, defaultFlags())
}

func (d *decoder) VisitIfdMakernote(m *IfdMakernote, flags VisitFlags) (VisitFlags, error) {
	if flags&FlagTraverse == 0 {
		return flags, nil
	}
	return m.Directory().Accept(d, defaultFlags())
}

func (d *decoder) VisitBinaryArray(b *BinaryArray, flags VisitFlags) (VisitFlags, error) {
	for _, el := range b.Elements() {
		if _, err := el.Accept(d, defaultFlags()); err != nil {
			return flags, err
		}
	}
	if len(b.Elements()) == 0 {
		d.emit(b.Group(), b.Tag(), ByteValue{rawValue{typ: TypeUndefined, count: uint32(len(b.Raw())), data: b.Raw()}})
	}
	return flags, nil
}

func (d *decoder) VisitBinaryElement(b *BinaryElement, flags VisitFlags) (VisitFlags, error) {
	d.out.add(Datum{Group: b.Group(), Tag: b.Tag(), Name: b.Name(), Value: b.Value()})
	return flags, nil
}
