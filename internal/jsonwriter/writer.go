// =============================================================================
// MISMO Anonymizer - JSON Writer Module
// =============================================================================
//
// Serializes a normalized document for the downstream debt-optimization
// engine. The output shape is:
//
//   {
//     "debts": [ ... ],
//     "creditScores": [ ... ],
//     "creditSummaryAttributes": [ ... ]
//   }
//
// Empty collections are emitted as empty arrays, never null; the
// consumer treats the three top-level keys as always present.
//
// =============================================================================

package jsonwriter

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Solve-Finance/mismo-anonymizer/internal/types"
)

// =============================================================================
// GENERATION OPTIONS
// =============================================================================

// GenerateOptions contains options for JSON generation.
type GenerateOptions struct {
	// Pretty enables indented output.
	// Default: true
	Pretty bool

	// Indent is the string used for indentation when Pretty is set.
	// Default: "  " (two spaces)
	Indent string
}

// DefaultGenerateOptions returns the default generation options.
func DefaultGenerateOptions() GenerateOptions {
	return GenerateOptions{
		Pretty: true,
		Indent: "  ",
	}
}

// =============================================================================
// WRITER
// =============================================================================

// Writer generates JSON output for normalized documents.
type Writer struct {
	options GenerateOptions
}

// NewWriter creates a Writer with the given options. Zero-value option
// fields fall back to the defaults.
func NewWriter(options GenerateOptions) *Writer {
	if options.Indent == "" {
		options.Indent = "  "
	}
	return &Writer{options: options}
}

// Generate serializes the document to JSON.
func (w *Writer) Generate(doc *types.Document) ([]byte, error) {
	out := *doc
	if out.Debts == nil {
		out.Debts = []types.Debt{}
	}
	if out.CreditScores == nil {
		out.CreditScores = []types.CreditScore{}
	}
	if out.CreditSummaryAttributes == nil {
		out.CreditSummaryAttributes = []types.CreditSummaryAttribute{}
	}

	var (
		data []byte
		err  error
	)
	if w.options.Pretty {
		data, err = json.MarshalIndent(out, "", w.options.Indent)
	} else {
		data, err = json.Marshal(out)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to serialize document: %w", err)
	}

	return append(data, '\n'), nil
}

// WriteToFile serializes the document and writes it to outputPath.
func (w *Writer) WriteToFile(doc *types.Document, outputPath string) error {
	data, err := w.Generate(doc)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", outputPath, err)
	}
	return nil
}
