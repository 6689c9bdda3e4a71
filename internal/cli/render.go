// internal/cli/render.go
package crossboard

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/crossboard/internal/appconfig"
)

// renderCmd implements 'render', which writes the dashboard HTML page.
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the leaderboard dashboard to a self-contained HTML page",
	Long: `Load the leaderboard document, build one summary block per run plus the
four-panel chart, and write the page to --output. When the document is
missing or unreadable a fallback page with a single message is written
instead; pass --strict to make that a failure.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRender(cmd.Context(), configOrDefaults(), cmd.OutOrStdout())
	},
}

func init() {
	defaults := appconfig.Defaults()

	renderCmd.Flags().StringP("output", "o", defaults.Output, "destination HTML file")
	renderCmd.Flags().String("title", defaults.Title, "page title")
	renderCmd.Flags().String("template", "", "custom page template (html/template)")
	renderCmd.Flags().Bool("strict", false, "exit non-zero when the leaderboard cannot be loaded")

	_ = viper.BindPFlag("output", renderCmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("title", renderCmd.Flags().Lookup("title"))
	_ = viper.BindPFlag("templatePath", renderCmd.Flags().Lookup("template"))
	_ = viper.BindPFlag("strict", renderCmd.Flags().Lookup("strict"))

	rootCmd.AddCommand(renderCmd)
}
