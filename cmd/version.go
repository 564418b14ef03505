// =============================================================================
// MISMO Anonymizer - Version Command
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the application version, overridden at build time:
//
//	go build -ldflags "-X github.com/Solve-Finance/mismo-anonymizer/cmd.Version=1.2.3"
var Version = "1.0.0"

// BuildDate is the build timestamp, overridden at build time.
var BuildDate = "unknown"

// versionCmd represents the 'version' command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display the application version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("mismo-anonymizer version %s (built %s)\n", Version, BuildDate)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
