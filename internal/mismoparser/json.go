// =============================================================================
// MISMO Anonymizer - JSON Record Adapter
// =============================================================================
//
// The attribute-keyed Record variant. A JSON report keys attributes with a
// leading "@" ("@_AccountIdentifier") and nests child records as object or
// array members ("CREDIT_COMMENT"). An array with one element and a plain
// object are equivalent shapes for the same child, and both occur in the
// wild, so Children flattens them transparently.
//
// =============================================================================

package mismoparser

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ObjectRecord adapts one decoded JSON object.
type ObjectRecord struct {
	data map[string]any
}

// NewObjectRecord wraps a decoded JSON object as a Record.
func NewObjectRecord(data map[string]any) ObjectRecord {
	return ObjectRecord{data: data}
}

// Attr resolves a field by the schema-2 attribute key ("@" + name), then by
// the schema-3 nested-element spellings (the name itself, and the name
// without its underscore prefix).
func (r ObjectRecord) Attr(name string) (string, bool) {
	if v, ok := r.data["@"+name]; ok {
		if s, ok := scalarValue(v); ok {
			return s, true
		}
	}

	for _, key := range elementSpellings(name) {
		if v, ok := r.data[key]; ok {
			if s, ok := scalarValue(v); ok {
				return s, true
			}
		}
	}

	return "", false
}

// Children returns the named member as a list of records, whether the
// member is a single object or an array.
func (r ObjectRecord) Children(name string) []Record {
	v, ok := r.data[name]
	if !ok {
		return nil
	}

	switch t := v.(type) {
	case map[string]any:
		return []Record{ObjectRecord{data: t}}
	case []any:
		var records []Record
		for _, item := range t {
			if obj, ok := item.(map[string]any); ok {
				records = append(records, ObjectRecord{data: obj})
			}
		}
		return records
	default:
		return nil
	}
}

// elementSpellings lists the nested-element keys a field may hide under.
// Schema-3 drops the underscore prefix of schema-2 attribute names.
func elementSpellings(name string) []string {
	trimmed := strings.TrimPrefix(name, "_")
	if trimmed == name {
		return []string{name}
	}
	return []string{name, trimmed}
}

// scalarValue converts a leaf JSON value to its string form. Objects and
// arrays are not scalars; numbers keep their source formatting.
func scalarValue(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case json.Number:
		return t.String(), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(t), true
	case nil:
		return "", false
	default:
		return "", false
	}
}

// decodeJSON decodes raw JSON report bytes into the root record.
func decodeJSON(data []byte) (Record, error) {
	decoder := json.NewDecoder(strings.NewReader(string(data)))
	decoder.UseNumber()

	var root map[string]any
	if err := decoder.Decode(&root); err != nil {
		return nil, fmt.Errorf("malformed JSON report: %w", err)
	}

	return ObjectRecord{data: root}, nil
}
