// =============================================================================
// MISMO Anonymizer - Root Command
// =============================================================================
//
// Defines the root CLI command and the global flags shared by every
// subcommand.
//
// GLOBAL FLAGS:
//   --config   : Path to the configuration file (default: ./config.yaml)
//   --verbose  : Enable debug-level logging
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// cfgFile is the path to the configuration file.
var cfgFile string

// verbose enables debug-level logging.
var verbose bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "mismo-anonymizer",

	Short: "MISMO Anonymizer - Normalize bureau credit reports into anonymized debt records",

	Long: `mismo-anonymizer ingests consumer credit reports in the MISMO interchange
format (JSON or XML encoding, schema generation 2 or 3) and emits a single
normalized record set per report: consolidated debt tradelines, bureau credit
scores, and credit-summary attributes.

Duplicate tradelines reported by multiple bureaus are merged into one debt,
classified into the debt-group taxonomy used by the downstream optimization
engine, and assigned fresh external references so the output carries no
bureau account identifiers.`,
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"./config.yaml",
		"Path to the configuration file",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable debug-level logging",
	)
}
