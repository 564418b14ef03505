// =============================================================================
// MISMO Anonymizer - XML Record Adapter
// =============================================================================
//
// The element-keyed Record variant. The raw XML is tokenized into a generic
// element tree (name, attributes, children, character data); the adapter
// resolves fields against that tree. Schema-2 carries values as element
// attributes; schema-3 carries them as the character data of nested named
// elements. Both resolve through the same Attr call.
//
// =============================================================================

package mismoparser

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// =============================================================================
// ELEMENT TREE
// =============================================================================

// xmlElement is one node of the decoded tag/attribute tree.
type xmlElement struct {
	name     string
	attrs    map[string]string
	children []*xmlElement
	text     string
}

// parseXMLTree tokenizes an XML document into an element tree.
func parseXMLTree(data []byte) (*xmlElement, error) {
	decoder := xml.NewDecoder(bytes.NewReader(data))

	var root *xmlElement
	var stack []*xmlElement

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("malformed XML report: %w", err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			element := &xmlElement{
				name:  t.Name.Local,
				attrs: make(map[string]string, len(t.Attr)),
			}
			for _, attr := range t.Attr {
				element.attrs[attr.Name.Local] = attr.Value
			}

			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("malformed XML report: multiple root elements")
				}
				root = element
			} else {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, element)
			}
			stack = append(stack, element)

		case xml.EndElement:
			if len(stack) == 0 {
				return nil, fmt.Errorf("malformed XML report: unbalanced end tag </%s>", t.Name.Local)
			}
			stack = stack[:len(stack)-1]

		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].text += string(t)
			}
		}
	}

	if root == nil {
		return nil, fmt.Errorf("malformed XML report: no root element")
	}
	if len(stack) != 0 {
		return nil, fmt.Errorf("malformed XML report: unclosed element <%s>", stack[len(stack)-1].name)
	}

	return root, nil
}

// =============================================================================
// RECORD ADAPTER
// =============================================================================

// ElementRecord adapts one XML element node.
type ElementRecord struct {
	node *xmlElement
}

// Attr resolves a field by XML attribute (schema-2), then by the character
// data of a nested element with the same or underscore-stripped name
// (schema-3).
func (r ElementRecord) Attr(name string) (string, bool) {
	if v, ok := r.node.attrs[name]; ok {
		return v, true
	}

	for _, spelling := range elementSpellings(name) {
		for _, child := range r.node.children {
			if child.name != spelling || len(child.children) > 0 {
				continue
			}
			if text := strings.TrimSpace(child.text); text != "" {
				return text, true
			}
		}
	}

	return "", false
}

// Children returns child elements with the given tag name, in document order.
func (r ElementRecord) Children(name string) []Record {
	var records []Record
	for _, child := range r.node.children {
		if child.name == name {
			records = append(records, ElementRecord{node: child})
		}
	}
	return records
}

// decodeXML decodes raw XML report bytes into a synthetic document record
// whose single child is the document root. The wrapper lets callers locate
// the root by name the same way they locate any other element.
func decodeXML(data []byte) (Record, error) {
	root, err := parseXMLTree(data)
	if err != nil {
		return nil, err
	}

	document := &xmlElement{children: []*xmlElement{root}}
	return ElementRecord{node: document}, nil
}
