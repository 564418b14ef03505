// =============================================================================
// MISMO Anonymizer - Record Abstraction
// =============================================================================
//
// A MISMO credit report arrives in one of two serialized encodings:
//   - JSON: a tree of keyed objects, attributes prefixed with "@"
//   - XML:  a tag/attribute tree
//
// and in one of two generations of the data model:
//   - schema-2: values carried as prefixed attributes (@_AccountIdentifier)
//   - schema-3: values carried as nested named elements
//
// The Record interface presents all four combinations as one uniform,
// read-only view: named fields with possibly-missing values, and
// child-lookup by name. Everything downstream of this package is written
// once against Record and never inspects the source encoding.
//
// =============================================================================

package mismoparser

// Record is a read-only view over one node of a decoded credit report.
type Record interface {
	// Attr returns the value of the named field and whether it is present.
	// Lookup is convention-tolerant: the attribute spelling of the field
	// is tried first, then the nested-element spelling.
	Attr(name string) (string, bool)

	// Children returns the child records with the given name, in report
	// order. A single child and an array-of-one are indistinguishable to
	// the caller.
	Children(name string) []Record
}

// AttrOr returns the named field's value, or fallback when absent.
func AttrOr(r Record, name, fallback string) string {
	if v, ok := r.Attr(name); ok && v != "" {
		return v
	}
	return fallback
}

// FirstChild returns the first child record with the given name, or nil.
func FirstChild(r Record, name string) Record {
	children := r.Children(name)
	if len(children) == 0 {
		return nil
	}
	return children[0]
}
