// internal/cli/summary.go
package crossboard

import (
	"github.com/spf13/cobra"
)

// summaryCmd implements 'summary', which prints one row per run.
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print a terminal table of runs (name, time, graphs, score)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSummary(cmd.Context(), configOrDefaults(), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}
