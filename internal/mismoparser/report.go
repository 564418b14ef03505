// =============================================================================
// MISMO Anonymizer - Report Decoding
// =============================================================================
//
// Entry points for turning raw report bytes into the CREDIT_RESPONSE record
// that the extraction pipelines consume. Decode errors are fatal for the
// report: a document we cannot fully decode produces no partial output.
//
// =============================================================================

package mismoparser

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies the serialized encoding of a report file.
type Format string

const (
	FormatAuto Format = "auto"
	FormatJSON Format = "json"
	FormatXML  Format = "xml"
)

// responseGroupPath is the element path from an XML document root down to
// the credit response in a full bureau response envelope.
var responseGroupPath = []string{"RESPONSE_GROUP", "RESPONSE", "RESPONSE_DATA", "CREDIT_RESPONSE"}

// DetectFormat determines the report encoding from the file extension,
// falling back to sniffing the first non-space byte.
func DetectFormat(path string, data []byte) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".xml":
		return FormatXML, nil
	}

	for _, b := range data {
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		case '<':
			return FormatXML, nil
		case '{':
			return FormatJSON, nil
		default:
			return "", fmt.Errorf("unrecognized report format in %s", filepath.Base(path))
		}
	}

	return "", fmt.Errorf("empty report file: %s", filepath.Base(path))
}

// Decode parses raw report bytes and returns the CREDIT_RESPONSE record.
func Decode(data []byte, format Format) (Record, error) {
	switch format {
	case FormatJSON:
		doc, err := decodeJSON(data)
		if err != nil {
			return nil, err
		}
		// A bare report is its own credit response.
		if response := FirstChild(doc, "CREDIT_RESPONSE"); response != nil {
			return response, nil
		}
		return doc, nil

	case FormatXML:
		doc, err := decodeXML(data)
		if err != nil {
			return nil, err
		}
		if response := FirstChild(doc, "CREDIT_RESPONSE"); response != nil {
			return response, nil
		}

		current := doc
		for _, tag := range responseGroupPath {
			current = FirstChild(current, tag)
			if current == nil {
				return nil, fmt.Errorf("report has no %s element", tag)
			}
		}
		return current, nil

	default:
		return nil, fmt.Errorf("unsupported report format: %q", format)
	}
}

// Liabilities returns the CREDIT_LIABILITY records of a credit response in
// report order.
func Liabilities(response Record) []Record {
	return response.Children("CREDIT_LIABILITY")
}
