// =============================================================================
// MISMO Anonymizer - Process Command
// =============================================================================
//
// This file defines the 'process' command, which runs the normalization
// pipeline over the credit-report files in the input directory.
//
// COMMAND USAGE:
//   mismo-anonymizer process [flags]
//
// FLAGS:
//   --dry-run : Run the pipeline without writing output files
//   --single  : Process only a single file (specify with --file)
//   --file    : Path to a specific report to process (used with --single)
//   --format  : Force the input format ("json" or "xml") instead of detecting
//
// PROCESSING PIPELINE:
//   1. Load configuration
//   2. Discover report files in the input directory
//   3. For each file (concurrently, bounded by max_concurrency):
//      a. Decode the report into the unified record tree
//      b. Consolidate the debt tradelines
//      c. Extract scores and summary attributes
//      d. Validate and write the normalized JSON
//   4. Archive processed files
//   5. Generate summary and error logs
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/Solve-Finance/mismo-anonymizer/internal/config"
	"github.com/Solve-Finance/mismo-anonymizer/internal/mismoparser"
	"github.com/Solve-Finance/mismo-anonymizer/internal/processor"
	"github.com/Solve-Finance/mismo-anonymizer/pkg/utils"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// dryRun runs the pipeline without writing output files.
var dryRun bool

// singleFile indicates whether to process only a single file.
var singleFile bool

// filePath is the path to a specific file to process (used with --single).
var filePath string

// forceFormat forces the input format instead of detecting it.
var forceFormat string

// =============================================================================
// PROCESS COMMAND DEFINITION
// =============================================================================

// processCmd represents the 'process' command.
var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Normalize credit-report files into anonymized debt records",
	Long: `The process command scans the input directory for MISMO credit-report
files (JSON or XML) and runs each one through the normalization pipeline.

Files are processed concurrently, bounded by the max_concurrency setting.
Each file is processed independently; errors in one file do not affect the
processing of others.

On successful processing:
  - The normalized JSON is placed in the output directory
  - The original report is moved to the input archive
  - A summary report is generated

On error:
  - An error log is created in the output directory
  - The original report remains in the input directory
  - Processing continues for other files`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runProcess()
	},
}

func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().BoolVar(
		&dryRun,
		"dry-run",
		false,
		"Run the pipeline without writing output files",
	)

	processCmd.Flags().BoolVar(
		&singleFile,
		"single",
		false,
		"Process only a single file (use with --file)",
	)

	processCmd.Flags().StringVar(
		&filePath,
		"file",
		"",
		"Path to a specific report to process (used with --single)",
	)

	processCmd.Flags().StringVar(
		&forceFormat,
		"format",
		"",
		"Force the input format: json or xml (default: detect)",
	)
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// runProcess orchestrates the batch run.
func runProcess() error {
	startTime := time.Now()

	fmt.Println("=== MISMO Anonymizer ===")
	fmt.Println("Loading configuration...")

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if verbose {
		cfg.LogLevel = "debug"
	}
	if forceFormat != "" && forceFormat != "json" && forceFormat != "xml" {
		return fmt.Errorf("unknown format %q: expected json or xml", forceFormat)
	}

	// =========================================================================
	// STEP 1: DISCOVER INPUT FILES
	// =========================================================================

	var fm *utils.FileManager
	var inputFiles []string

	if singleFile {
		if filePath == "" {
			return fmt.Errorf("--single requires --file")
		}
		if !utils.FileExists(filePath) {
			return fmt.Errorf("input file does not exist: %s", filePath)
		}
		inputFiles = []string{filePath}
	} else {
		fm = utils.NewFileManager(cfg.InputDir, cfg.OutputDir, cfg.InputArchiveDir, cfg.OutputArchiveDir)
		if err := fm.EnsureDirectories(); err != nil {
			return fmt.Errorf("failed to prepare directories: %w", err)
		}

		inputFiles, err = fm.DiscoverInputFiles()
		if err != nil {
			return fmt.Errorf("failed to discover input files: %w", err)
		}
	}

	if len(inputFiles) == 0 {
		fmt.Println("No report files found in the input directory.")
		return nil
	}

	fmt.Printf("Found %d file(s) to process\n", len(inputFiles))

	// =========================================================================
	// STEP 2: PROCESS FILES CONCURRENTLY
	// =========================================================================
	// A buffered channel collects the per-file results; a semaphore bounds
	// the number of in-flight files to cfg.MaxConcurrency.

	fmt.Println("Processing files...")

	archiveManager := fm
	if dryRun {
		archiveManager = nil
	}

	var wg sync.WaitGroup
	results := make(chan processor.Result, len(inputFiles))
	semaphore := make(chan struct{}, cfg.MaxConcurrency)

	for _, file := range inputFiles {
		wg.Add(1)

		go func(reportPath string) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			proc := processor.New(reportPath, cfg, archiveManager)
			proc.SetFormat(mismoparser.Format(forceFormat))
			proc.SetDryRun(dryRun)
			results <- proc.Run()
		}(file)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	// =========================================================================
	// STEP 3: COLLECT RESULTS
	// =========================================================================

	summary := utils.ProcessingSummary{
		StartTime:  startTime,
		TotalFiles: len(inputFiles),
	}
	var errorEntries []utils.ErrorLogEntry

	for result := range results {
		summary.TotalLiabilities += result.Stats.LiabilitiesSeen
		summary.TotalDebts += result.Stats.DebtsExtracted
		summary.TotalScores += result.Stats.ScoresExtracted
		summary.ValidationErrors += result.Stats.ValidationErrors

		if result.Success {
			summary.SuccessfulFiles++
			summary.ProcessedFiles = append(summary.ProcessedFiles, utils.ProcessedFileInfo{
				InputFile:   result.FilePath,
				OutputFile:  result.OutputFile,
				Liabilities: result.Stats.LiabilitiesSeen,
				Debts:       result.Stats.DebtsExtracted,
				Scores:      result.Stats.ScoresExtracted,
				ProcessTime: result.Stats.ProcessingTime,
			})
			fmt.Printf("  + %s -> %s\n", filepath.Base(result.FilePath), result.OutputFile)
		} else {
			summary.FailedFiles++
			summary.FailedFilesList = append(summary.FailedFilesList, utils.FailedFileInfo{
				InputFile:    result.FilePath,
				ErrorMessage: result.Error.Error(),
			})
			errorEntries = append(errorEntries, utils.ErrorLogEntry{
				Timestamp:    time.Now(),
				FileName:     filepath.Base(result.FilePath),
				ErrorType:    "processing",
				ErrorMessage: result.Error.Error(),
			})
			fmt.Printf("  ! %s: %v\n", filepath.Base(result.FilePath), result.Error)
		}
	}

	summary.EndTime = time.Now()

	// =========================================================================
	// STEP 4: PRINT SUMMARY AND WRITE LOGS
	// =========================================================================

	fmt.Println("\n=== Processing Complete ===")
	fmt.Printf("Total files:     %d\n", summary.TotalFiles)
	fmt.Printf("Successful:      %d\n", summary.SuccessfulFiles)
	fmt.Printf("Errors:          %d\n", summary.FailedFiles)
	fmt.Printf("Debts extracted: %d\n", summary.TotalDebts)
	fmt.Printf("Time elapsed:    %s\n", time.Since(startTime))

	if dryRun {
		return nil
	}

	if logPath, err := utils.WriteErrorLog(errorEntries, cfg.OutputDir); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write error log: %v\n", err)
	} else if logPath != "" {
		fmt.Printf("\nError log: %s\n", logPath)
	}

	if summaryPath, err := utils.WriteSummaryLog(summary, cfg.OutputDir); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write summary log: %v\n", err)
	} else {
		fmt.Printf("Summary:   %s\n", summaryPath)
	}

	if summary.FailedFiles > 0 {
		return fmt.Errorf("%d of %d file(s) failed", summary.FailedFiles, summary.TotalFiles)
	}
	return nil
}
