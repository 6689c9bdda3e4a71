// internal/cli/plan.go
package crossboard

import (
	"github.com/spf13/cobra"
)

type planOptionsFlags struct {
	outputPath string
}

var planOpts planOptionsFlags

// planCmd implements 'plan', which prints the resolved render plan as JSON.
var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Print the resolved render plan (summaries, categories, chart option) as JSON",
	Long: `Print the render plan derived from the leaderboard: the summary block
texts, the run and graph categories, and the complete chart option. Any
charting backend that accepts an ECharts-style option can consume it.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlan(cmd.Context(), configOrDefaults(), cmd.OutOrStdout(), planOpts.outputPath, DebugEnabled())
	},
}

func init() {
	planCmd.Flags().StringVarP(&planOpts.outputPath, "output", "o", "", "write the plan JSON to this file instead of stdout")

	rootCmd.AddCommand(planCmd)
}
