// =============================================================================
// MISMO Anonymizer - Configuration Module
// =============================================================================
//
// This module loads and manages the application configuration. There are two
// parts to it:
//   1. MainConfig: directories, logging, output naming, concurrency
//   2. Policy: business policy knobs for the consolidation engine
//
// The matching tolerances and the reference policy live in configuration
// rather than as inline literals: they encode business policy that is
// subject to change without a code release.
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// MAIN CONFIGURATION STRUCTURE
// =============================================================================

// MainConfig holds the global application configuration.
// This is loaded from the main config.yaml file.
type MainConfig struct {
	// =========================================================================
	// DIRECTORY SETTINGS
	// =========================================================================

	// InputDir is the directory scanned for credit report files (.json, .xml).
	// Default: "./input"
	InputDir string `yaml:"input_dir"`

	// OutputDir is the directory where normalized JSON documents are placed.
	// Default: "./output"
	OutputDir string `yaml:"output_dir"`

	// InputArchiveDir is where report files are moved after successful
	// processing. Files are only moved here once the output is written.
	// Default: "./input_archive"
	InputArchiveDir string `yaml:"input_archive_dir"`

	// OutputArchiveDir is where generated documents are archived for
	// long-term storage.
	// Default: "./output_archive"
	OutputArchiveDir string `yaml:"output_archive_dir"`

	// =========================================================================
	// LOGGING SETTINGS
	// =========================================================================

	// LogLevel controls the verbosity of logging.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "info"
	LogLevel string `yaml:"log_level"`

	// =========================================================================
	// OUTPUT SETTINGS
	// =========================================================================

	// OutputNameFormat defines the format for output file names.
	// Placeholders:
	//   {uuid}      - A random UUID
	//   {timestamp} - Current timestamp (YYYYMMDD_HHMMSS)
	//   {stem}      - Input file name without its extension
	// Default: "{stem}.{timestamp}.json"
	OutputNameFormat string `yaml:"output_name_format"`

	// PrettyOutput indents the generated JSON for human review.
	// Default: true
	PrettyOutput *bool `yaml:"pretty_output"`

	// XLSXSummary also writes an XLSX workbook of the debt inventory next
	// to each JSON document.
	// Default: false
	XLSXSummary bool `yaml:"xlsx_summary"`

	// =========================================================================
	// PROCESSING SETTINGS
	// =========================================================================

	// MaxConcurrency is the maximum number of report files processed
	// concurrently. Set to 1 for sequential processing.
	// Default: 4
	MaxConcurrency int `yaml:"max_concurrency"`

	// ContinueOnError determines whether validation findings on the
	// normalized output are fatal for the file or only logged.
	// Decode errors are always fatal for the file they occur in.
	// Default: true
	ContinueOnError *bool `yaml:"continue_on_error"`

	// Policy holds the consolidation-engine policy knobs.
	Policy Policy `yaml:"policy"`
}

// =============================================================================
// CONSOLIDATION POLICY
// =============================================================================

// ReferencePolicy selects how the opaque external reference of a Debt is
// generated.
type ReferencePolicy string

const (
	// ReferenceRandom generates a fresh UUID per debt per run. This is the
	// default: the emitted document cannot be correlated with the bureau
	// account identifiers or with a previous run.
	ReferenceRandom ReferencePolicy = "random"

	// ReferenceStable reuses the consolidated working account identifier.
	ReferenceStable ReferencePolicy = "stable"
)

// Policy holds business policy for debt consolidation.
type Policy struct {
	// ReferencePolicy is "random" or "stable". Default: "random".
	ReferencePolicy ReferencePolicy `yaml:"reference_policy"`

	// PaymentTolerance is the relative tolerance applied to the scheduled
	// monthly payment when confidence-matching two installment records.
	// Zero demands exact agreement. Default: 0.05 (5%).
	PaymentTolerance *float64 `yaml:"payment_tolerance"`

	// BalanceTolerance is the relative tolerance applied to the unpaid
	// balance when confidence-matching two installment records.
	// Zero demands exact agreement. Default: 0.025 (2.5%).
	BalanceTolerance *float64 `yaml:"balance_tolerance"`

	// RevolvingBureau is the bureau treated as authoritative for revolving
	// tradeline metadata. Default: "Equifax".
	RevolvingBureau string `yaml:"revolving_bureau"`

	// ScoreBureau optionally filters credit scores to a single bureau
	// (TransUnion, Equifax or Experian). When the filter would remove
	// every score, the unfiltered set is kept. Empty means no filter.
	ScoreBureau string `yaml:"score_bureau"`
}

// =============================================================================
// CONFIGURATION LOADING
// =============================================================================

// Load reads the main configuration from a YAML file, applies defaults and
// validates it. A missing file is not an error: the defaults are used, so
// the tool runs with no configuration at all.
func Load(configPath string) (*MainConfig, error) {
	var cfg MainConfig

	data, err := os.ReadFile(configPath)
	switch {
	case os.IsNotExist(err):
		// Fall through to defaults.
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Default returns the configuration used when no config file is present.
func Default() *MainConfig {
	var cfg MainConfig
	applyDefaults(&cfg)
	return &cfg
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(cfg *MainConfig) {
	if cfg.InputDir == "" {
		cfg.InputDir = "./input"
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "./output"
	}
	if cfg.InputArchiveDir == "" {
		cfg.InputArchiveDir = "./input_archive"
	}
	if cfg.OutputArchiveDir == "" {
		cfg.OutputArchiveDir = "./output_archive"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.OutputNameFormat == "" {
		cfg.OutputNameFormat = "{stem}.{timestamp}.json"
	}
	if cfg.PrettyOutput == nil {
		t := true
		cfg.PrettyOutput = &t
	}
	if cfg.MaxConcurrency == 0 {
		cfg.MaxConcurrency = 4
	}
	if cfg.ContinueOnError == nil {
		t := true
		cfg.ContinueOnError = &t
	}

	if cfg.Policy.ReferencePolicy == "" {
		cfg.Policy.ReferencePolicy = ReferenceRandom
	}
	if cfg.Policy.PaymentTolerance == nil {
		v := 0.05
		cfg.Policy.PaymentTolerance = &v
	}
	if cfg.Policy.BalanceTolerance == nil {
		v := 0.025
		cfg.Policy.BalanceTolerance = &v
	}
	if cfg.Policy.RevolvingBureau == "" {
		cfg.Policy.RevolvingBureau = "Equifax"
	}
}

// validate rejects configurations the pipeline cannot honor.
func validate(cfg *MainConfig) error {
	switch cfg.Policy.ReferencePolicy {
	case ReferenceRandom, ReferenceStable:
	default:
		return fmt.Errorf("unknown reference_policy: %q", cfg.Policy.ReferencePolicy)
	}

	if *cfg.Policy.PaymentTolerance < 0 || *cfg.Policy.PaymentTolerance >= 1 {
		return fmt.Errorf("payment_tolerance must be in [0, 1): %v", *cfg.Policy.PaymentTolerance)
	}
	if *cfg.Policy.BalanceTolerance < 0 || *cfg.Policy.BalanceTolerance >= 1 {
		return fmt.Errorf("balance_tolerance must be in [0, 1): %v", *cfg.Policy.BalanceTolerance)
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level: %q", cfg.LogLevel)
	}

	if cfg.MaxConcurrency < 1 {
		return fmt.Errorf("max_concurrency must be at least 1: %d", cfg.MaxConcurrency)
	}

	return nil
}
