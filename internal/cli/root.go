// internal/cli/root.go
package crossboard

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/crossboard/internal/appconfig"
	"github.com/mwiater/crossboard/internal/logging"
)

var (
	cfgFile       string
	currentConfig *appconfig.Config
)

var rootCmd = &cobra.Command{
	Use:   "crossboard",
	Short: "crossboard — static dashboard for edge-crossing benchmark leaderboards",
	Long: `crossboard reads the leaderboard JSON written by a benchmarking run (or a
directory of per-team stats CSV files) and renders a self-contained HTML
dashboard: one summary block per run and a four-panel chart with a
timestamp/score scatter and a run/graph heatmap of max edge crossings.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// 1) Load config (file or defaults)
		if err := ensureConfigLoaded(); err != nil {
			return err
		}

		// 2) If user did NOT set a flag, copy the config value into the flag so
		//    both pflags and viper reflect the same, final value.
		for _, name := range []string{"debug"} {
			if f := cmd.Flags().Lookup(name); f != nil && !f.Changed {
				_ = cmd.Flags().Set(name, strconv.FormatBool(viper.GetBool(name)))
			}
		}

		// 3) Materialize the fully merged configuration into currentConfig
		//    (flags > config > defaults). This gives other packages a stable snapshot.
		cfg := appconfig.Defaults()
		if err := viper.Unmarshal(&cfg); err != nil {
			return fmt.Errorf("unmarshal config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		cfg.ConfigPath = viper.ConfigFileUsed()
		currentConfig = &cfg

		if err := logging.Init(cfg.LogFile); err != nil {
			return fmt.Errorf("init logging: %w", err)
		}
		if cfg.Debug {
			logging.LogEvent("[CONFIG] source=%s output=%s order=%s", cfg.Source(), cfg.Output, cfg.InstanceOrder)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return logging.Close()
	},
}

// Execute runs the root command and exits non-zero on failure. An interrupt
// cancels any in-flight leaderboard fetch.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		printFailure(rootCmd.ErrOrStderr(), "%v", err)
		stop()
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	defaults := appconfig.Defaults()

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", appconfig.DefaultConfigPath, "config file (e.g., config/config.json)")

	// Persistent flags available to all commands
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().String("log-file", "", "append log output to this file")
	rootCmd.PersistentFlags().StringP("input", "i", defaults.Input, "leaderboard JSON path or http(s) URL")
	rootCmd.PersistentFlags().String("stats-dir", "", "directory of per-team stats CSV files (overrides --input)")
	rootCmd.PersistentFlags().String("instance-order", defaults.InstanceOrder, "instance axis order: first-seen or natural")
	rootCmd.PersistentFlags().String("instance-filter", "", "only chart instances whose name contains this text")
	rootCmd.PersistentFlags().Int("fetch-timeout", defaults.FetchTimeoutSeconds, "seconds to wait for the leaderboard document")
	rootCmd.PersistentFlags().Bool("validate-schema", defaults.ValidateSchema, "validate the document against the leaderboard schema")

	// Bind flags to Viper keys (flags override config)
	for key, flag := range map[string]string{
		"debug":          "debug",
		"logFile":        "log-file",
		"input":          "input",
		"statsDir":       "stats-dir",
		"instanceOrder":  "instance-order",
		"instanceFilter": "instance-filter",
		"fetchTimeout":   "fetch-timeout",
		"validateSchema": "validate-schema",
	} {
		_ = viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag))
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
}

// ensureConfigLoaded reads the config and sets safe defaults.
func ensureConfigLoaded() error {
	defaults := appconfig.Defaults()
	viper.SetDefault("input", defaults.Input)
	viper.SetDefault("output", defaults.Output)
	viper.SetDefault("title", defaults.Title)
	viper.SetDefault("width", defaults.Width)
	viper.SetDefault("height", defaults.Height)
	viper.SetDefault("echartsURL", defaults.EChartsURL)
	viper.SetDefault("chartElementID", defaults.ChartElementID)
	viper.SetDefault("regenerateCommand", defaults.RegenerateCommand)
	viper.SetDefault("fetchTimeout", defaults.FetchTimeoutSeconds)
	viper.SetDefault("instanceOrder", defaults.InstanceOrder)
	viper.SetDefault("validateSchema", defaults.ValidateSchema)
	viper.SetDefault("debug", false)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			// No file: fine, we'll use defaults/flags
			return nil
		}
		return fmt.Errorf("failed to load config: %w", err)
	}
	return nil
}

// GetConfig returns the loaded application configuration.
func GetConfig() *appconfig.Config {
	return currentConfig
}

// DebugEnabled reflects the merged Viper state.
func DebugEnabled() bool { return viper.GetBool("debug") }
