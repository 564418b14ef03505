// =============================================================================
// MISMO Anonymizer - File Processor
// =============================================================================
//
// This module runs the full pipeline for a single credit-report file:
//
//   1. Read the raw report (JSON or XML encoding, either schema generation)
//   2. Decode it into the unified record tree
//   3. Extract and consolidate the debt tradelines
//   4. Extract the credit scores and summary attributes
//   5. Validate the normalized document
//   6. Write the JSON output (plus the optional XLSX summary)
//   7. Archive the input and output files
//
// Each processed file yields a Result; the batch command aggregates them.
//
// =============================================================================

package processor

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Solve-Finance/mismo-anonymizer/internal/config"
	"github.com/Solve-Finance/mismo-anonymizer/internal/consolidator"
	"github.com/Solve-Finance/mismo-anonymizer/internal/creditscore"
	"github.com/Solve-Finance/mismo-anonymizer/internal/jsonwriter"
	"github.com/Solve-Finance/mismo-anonymizer/internal/mismoparser"
	"github.com/Solve-Finance/mismo-anonymizer/internal/types"
	"github.com/Solve-Finance/mismo-anonymizer/internal/validation"
	"github.com/Solve-Finance/mismo-anonymizer/internal/xlsxwriter"
	"github.com/Solve-Finance/mismo-anonymizer/pkg/utils"
)

// =============================================================================
// RESULT TYPES
// =============================================================================

// Result holds the outcome of processing one report file.
type Result struct {
	// FilePath is the path to the input file that was processed.
	FilePath string

	// OutputFile is the path to the generated JSON file.
	// This is empty if processing failed.
	OutputFile string

	// Success indicates whether the processing was successful.
	Success bool

	// Error contains the error if processing failed.
	// This is nil if processing was successful.
	Error error

	// Stats contains processing statistics.
	Stats ProcessingStats
}

// ProcessingStats contains statistics about the processing.
type ProcessingStats struct {
	// LiabilitiesSeen is the number of raw liability records in the report.
	LiabilitiesSeen int

	// DebtsExtracted is the number of consolidated debts in the output.
	DebtsExtracted int

	// ScoresExtracted is the number of bureau scores in the output.
	ScoresExtracted int

	// SummaryAttributes is the number of summary attributes in the output.
	SummaryAttributes int

	// ValidationErrors is the number of fatal validation errors.
	// If ContinueOnError is true, processing continues despite these.
	ValidationErrors int

	// ValidationWarnings is the number of non-fatal validation findings.
	ValidationWarnings int

	// ProcessingTime is the time taken to process the file.
	ProcessingTime time.Duration
}

// =============================================================================
// PROCESSOR STRUCTURE
// =============================================================================

// Processor handles the normalization of a single credit-report file.
type Processor struct {
	// filePath is the path to the input report file.
	filePath string

	// cfg is the main application configuration.
	cfg *config.MainConfig

	// engine runs the debt consolidation pipeline.
	engine *consolidator.Engine

	// fileManager handles output naming and archival. Nil disables
	// archival (used by --dry-run and by tests).
	fileManager *utils.FileManager

	// format forces the input format. FormatAuto detects per file.
	format mismoparser.Format

	// dryRun skips output writing and archival.
	dryRun bool

	// logger is used for logging.
	logger Logger
}

// Logger is the logging interface the processor writes to.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
}

// New creates a Processor for one input file.
func New(filePath string, cfg *config.MainConfig, fm *utils.FileManager) *Processor {
	return &Processor{
		filePath:    filePath,
		cfg:         cfg,
		engine:      consolidator.New(cfg.Policy),
		format:      mismoparser.FormatAuto,
		fileManager: fm,
		logger:      &defaultLogger{level: cfg.LogLevel},
	}
}

// SetLogger replaces the default logger.
func (p *Processor) SetLogger(logger Logger) {
	p.logger = logger
}

// SetFormat forces the input format instead of detecting it per file.
func (p *Processor) SetFormat(format mismoparser.Format) {
	if format != "" {
		p.format = format
	}
}

// SetDryRun toggles dry-run mode: the pipeline runs end to end but no
// output is written and nothing is archived.
func (p *Processor) SetDryRun(dryRun bool) {
	p.dryRun = dryRun
}

// SetEngine replaces the consolidation engine. Used by tests that need a
// deterministic reference source.
func (p *Processor) SetEngine(engine *consolidator.Engine) {
	p.engine = engine
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// Run executes the normalization pipeline for the file.
func (p *Processor) Run() Result {
	startTime := time.Now()
	result := Result{
		FilePath: p.filePath,
		Success:  false,
	}

	p.logger.Info("Processing file: %s", p.filePath)

	// =========================================================================
	// STEP 1: READ AND DECODE
	// =========================================================================

	data, err := os.ReadFile(p.filePath)
	if err != nil {
		result.Error = fmt.Errorf("failed to read input file: %w", err)
		return result
	}

	format := p.format
	if format == mismoparser.FormatAuto {
		format, err = mismoparser.DetectFormat(p.filePath, data)
		if err != nil {
			result.Error = fmt.Errorf("failed to detect report format: %w", err)
			return result
		}
	}
	p.logger.Debug("Report format: %s", format)

	response, err := mismoparser.Decode(data, format)
	if err != nil {
		result.Error = fmt.Errorf("failed to decode report: %w", err)
		return result
	}

	result.Stats.LiabilitiesSeen = len(mismoparser.Liabilities(response))
	p.logger.Debug("Report carries %d liability records", result.Stats.LiabilitiesSeen)

	// =========================================================================
	// STEP 2: EXTRACT AND CONSOLIDATE
	// =========================================================================

	doc := &types.Document{
		Debts:                   p.engine.Extract(response),
		CreditScores:            creditscore.Scores(response, p.cfg.Policy.ScoreBureau),
		CreditSummaryAttributes: creditscore.Summaries(response),
	}

	result.Stats.DebtsExtracted = len(doc.Debts)
	result.Stats.ScoresExtracted = len(doc.CreditScores)
	result.Stats.SummaryAttributes = len(doc.CreditSummaryAttributes)
	p.logger.Debug("Extracted %d debts, %d scores, %d summary attributes",
		len(doc.Debts), len(doc.CreditScores), len(doc.CreditSummaryAttributes))

	// =========================================================================
	// STEP 3: VALIDATE
	// =========================================================================

	vr := validation.ValidateDocument(doc)
	result.Stats.ValidationErrors = vr.ErrorCount
	result.Stats.ValidationWarnings = vr.WarningCount

	for _, e := range vr.Errors {
		if e.Severity == "warning" {
			p.logger.Warn("%s", e.Error())
		} else {
			p.logger.Error("%s", e.Error())
		}
	}

	if !vr.IsValid && !p.continueOnError() {
		result.Error = fmt.Errorf("validation failed with %d errors", vr.ErrorCount)
		return result
	}

	// =========================================================================
	// STEP 4: WRITE OUTPUT
	// =========================================================================

	if p.dryRun {
		result.Success = true
		result.Stats.ProcessingTime = time.Since(startTime)
		p.logger.Info("Dry run: %s would produce %d debts", filepath.Base(p.filePath), len(doc.Debts))
		return result
	}

	outputPath, err := p.writeOutput(doc)
	if err != nil {
		result.Error = err
		return result
	}
	result.OutputFile = outputPath

	if p.cfg.XLSXSummary {
		summaryPath := strings.TrimSuffix(outputPath, filepath.Ext(outputPath)) + ".xlsx"
		if err := xlsxwriter.WriteSummary(doc, summaryPath); err != nil {
			// The workbook is a convenience; its failure never fails the run.
			p.logger.Warn("Failed to write XLSX summary: %v", err)
		} else {
			p.logger.Debug("Wrote XLSX summary: %s", summaryPath)
		}
	}

	// =========================================================================
	// STEP 5: ARCHIVE
	// =========================================================================

	if p.fileManager != nil {
		if _, err := p.fileManager.ArchiveInputFile(p.filePath); err != nil {
			p.logger.Warn("Failed to archive input file: %v", err)
		}
		if _, err := p.fileManager.ArchiveOutputFile(outputPath); err != nil {
			p.logger.Warn("Failed to archive output file: %v", err)
		}
	}

	result.Success = true
	result.Stats.ProcessingTime = time.Since(startTime)
	p.logger.Info("Completed %s in %v (%d debts)",
		filepath.Base(p.filePath), result.Stats.ProcessingTime, result.Stats.DebtsExtracted)

	return result
}

// writeOutput serializes the document into the configured output
// directory under the configured name format.
func (p *Processor) writeOutput(doc *types.Document) (string, error) {
	stem := strings.TrimSuffix(filepath.Base(p.filePath), filepath.Ext(p.filePath))
	name := utils.GenerateOutputFileName(p.cfg.OutputNameFormat, map[string]string{
		"stem": stem,
	})
	outputPath := filepath.Join(p.cfg.OutputDir, name)

	writer := jsonwriter.NewWriter(jsonwriter.GenerateOptions{
		Pretty: p.prettyOutput(),
	})
	if err := writer.WriteToFile(doc, outputPath); err != nil {
		return "", err
	}

	p.logger.Debug("Wrote output: %s", outputPath)
	return outputPath, nil
}

func (p *Processor) continueOnError() bool {
	return p.cfg.ContinueOnError == nil || *p.cfg.ContinueOnError
}

func (p *Processor) prettyOutput() bool {
	return p.cfg.PrettyOutput == nil || *p.cfg.PrettyOutput
}

// =============================================================================
// DEFAULT LOGGER
// =============================================================================

// defaultLogger is a simple logger that prints to stdout.
type defaultLogger struct {
	level string
}

func (l *defaultLogger) Debug(msg string, args ...interface{}) {
	if l.level == "debug" {
		fmt.Printf("[DEBUG] "+msg+"\n", args...)
	}
}

func (l *defaultLogger) Info(msg string, args ...interface{}) {
	if l.level != "error" {
		fmt.Printf("[INFO] "+msg+"\n", args...)
	}
}

func (l *defaultLogger) Warn(msg string, args ...interface{}) {
	if l.level != "error" {
		fmt.Printf("[WARN] "+msg+"\n", args...)
	}
}

func (l *defaultLogger) Error(msg string, args ...interface{}) {
	fmt.Printf("[ERROR] "+msg+"\n", args...)
}
