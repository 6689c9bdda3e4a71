// internal/cli/validate.go
package crossboard

import (
	"github.com/spf13/cobra"
)

var validateStrict bool

// validateCmd implements 'validate', which checks the document and reports
// data-integrity findings without writing anything.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the leaderboard document and report data problems",
	Long: `Load the leaderboard with schema validation enabled and report duplicate
run names, runs without a timestamp, and heatmap cells that cannot be
placed. Exits non-zero when the document cannot be loaded, or with
--strict when any finding is reported.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := *configOrDefaults()
		cfg.ValidateSchema = true
		return runValidate(cmd.Context(), &cfg, cmd.OutOrStdout(), validateStrict || cfg.Strict)
	},
}

func init() {
	validateCmd.Flags().BoolVar(&validateStrict, "strict", false, "treat data warnings as failures")

	rootCmd.AddCommand(validateCmd)
}
