package tiff

import "fmt"

// Datum is one decoded metadata record (spec §3 "ExifData"): the fully
// qualified key (group + tag name, e.g. "ExifIfd.ExposureTime", see
// Key) and the parsed Value itself, whose TypeID gives the type it is
// held as. Grounded on the teacher's flattened key/value accessor shape
// (values.go's `serializer.format`), generalized into a standalone
// record the decoder can emit without depending on ifdd internals.
type Datum struct {
	Group Group
	Tag   ExtTag
	Name  string
	Value Value

	// srcNode is the Entry/DataEntry this datum was decoded from, if
	// any (nil for values synthesized by the decoder, e.g. SizeEntry's
	// computed length, or for a Datum the caller constructs from
	// scratch for a brand-new tag). The encoder's non-intrusive write
	// strategy (spec §4.3) uses it to patch the original buffer
	// directly instead of relinearizing the whole tree.
	srcNode Node
}

// Key renders the datum's fully qualified name the way user-facing
// Exif tools print it: "<Group>.<Name>", falling back to the numeric
// tag when the registry has no name for it.
func (d Datum) Key() string {
	if d.Name == "" {
		return fmt.Sprintf("%s.%#04x", d.Group, d.Tag.Tag())
	}
	return fmt.Sprintf("%s.%s", d.Group, d.Name)
}

func (d Datum) String() string {
	if d.Value == nil {
		return d.Key()
	}
	return fmt.Sprintf("%s = %s", d.Key(), d.Value.String())
}

// ExifData is the decoded, user-facing result of walking a composite
// tree (spec §3): a flat, ordered list of data, independent of the
// tree shape that produced them. Round-tripping is: decode(tree) ->
// ExifData -> apply user edits -> encode(ExifData) -> tree'.
type ExifData struct {
	Data []Datum
}

// Len and Get support lookup by fully qualified key without
// requiring callers to walk the underlying slice themselves.
func (e *ExifData) Len() int { return len(e.Data) }

func (e *ExifData) Get(key string) (Datum, bool) {
	for _, d := range e.Data {
		if d.Key() == key {
			return d, true
		}
	}
	return Datum{}, false
}

func (e *ExifData) add(d Datum) {
	e.Data = append(e.Data, d)
}
