// =============================================================================
// MISMO Anonymizer - Main Entry Point
// =============================================================================
//
// This is the main entry point for the MISMO Anonymizer CLI application.
// It initializes the Cobra CLI framework and delegates command execution to
// the cmd package.
//
// USAGE:
//   mismo-anonymizer process    - Normalize all report files in the input directory
//   mismo-anonymizer version    - Display the application version
//
// ARCHITECTURE:
//   This application follows a modular design where:
//   - cmd/           : Contains all CLI command definitions (Cobra)
//   - internal/      : Contains core business logic (not for external import)
//   - pkg/           : Contains shared utilities
//
// =============================================================================

package main

import (
	"github.com/Solve-Finance/mismo-anonymizer/cmd"
)

// main is the entry point of the application.
// It simply calls the Execute function from the cmd package, which
// initializes and runs the Cobra CLI.
func main() {
	cmd.Execute()
}
