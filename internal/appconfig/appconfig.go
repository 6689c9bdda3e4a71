// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// DefaultInput is where the benchmarking tool writes the leaderboard document.
	DefaultInput = "leaderboard/leaderboard.json"
	// DefaultOutput is where the rendered dashboard page is written.
	DefaultOutput = "leaderboard/index.html"
	// DefaultChartElementID names the page element the chart is bound to.
	DefaultChartElementID = "chart"
	// DefaultRegenerateCommand is suggested to the operator when the document is missing.
	DefaultRegenerateCommand = "cargo run plots"
	// DefaultEChartsURL is the charting library script the page loads.
	DefaultEChartsURL = "https://cdn.jsdelivr.net/npm/echarts@5.5.0/dist/echarts.min.js"

	defaultTitle        = "Leaderboard"
	defaultWidth        = 1000
	defaultHeight       = 800
	defaultFetchTimeout = 30 * time.Second
)

// Instance ordering policies for the heatmap's instance axis.
const (
	InstanceOrderFirstSeen = "first-seen"
	InstanceOrderNatural   = "natural"
)

// Config represents the top-level application configuration.
type Config struct {
	Input               string `json:"input" mapstructure:"input"`
	StatsDir            string `json:"statsDir,omitempty" mapstructure:"statsDir"`
	Output              string `json:"output" mapstructure:"output"`
	Title               string `json:"title,omitempty" mapstructure:"title"`
	Width               int    `json:"width,omitempty" mapstructure:"width"`
	Height              int    `json:"height,omitempty" mapstructure:"height"`
	EChartsURL          string `json:"echartsURL,omitempty" mapstructure:"echartsURL"`
	ChartElementID      string `json:"chartElementID,omitempty" mapstructure:"chartElementID"`
	TemplatePath        string `json:"templatePath,omitempty" mapstructure:"templatePath"`
	RegenerateCommand   string `json:"regenerateCommand,omitempty" mapstructure:"regenerateCommand"`
	FetchTimeoutSeconds int    `json:"fetchTimeout,omitempty" mapstructure:"fetchTimeout"`
	InstanceOrder       string `json:"instanceOrder,omitempty" mapstructure:"instanceOrder"`
	InstanceFilter      string `json:"instanceFilter,omitempty" mapstructure:"instanceFilter"`
	ValidateSchema      bool   `json:"validateSchema" mapstructure:"validateSchema"`
	Strict              bool   `json:"strict" mapstructure:"strict"`
	LogFile             string `json:"logFile,omitempty" mapstructure:"logFile"`
	Debug               bool   `json:"debug" mapstructure:"debug"`
	ConfigPath          string `json:"-" mapstructure:"-"`
}

// Defaults returns a configuration with every optional field populated.
func Defaults() Config {
	return Config{
		Input:               DefaultInput,
		Output:              DefaultOutput,
		Title:               defaultTitle,
		Width:               defaultWidth,
		Height:              defaultHeight,
		EChartsURL:          DefaultEChartsURL,
		ChartElementID:      DefaultChartElementID,
		RegenerateCommand:   DefaultRegenerateCommand,
		FetchTimeoutSeconds: int(defaultFetchTimeout.Seconds()),
		InstanceOrder:       InstanceOrderFirstSeen,
		ValidateSchema:      true,
	}
}

// FetchTimeout returns the timeout for loading the leaderboard document,
// falling back to the default if not specified.
func (c Config) FetchTimeout() time.Duration {
	if c.FetchTimeoutSeconds <= 0 {
		return defaultFetchTimeout
	}
	return time.Duration(c.FetchTimeoutSeconds) * time.Second
}

// PageTitle returns the document title, applying a default if not set.
func (c Config) PageTitle() string {
	if title := strings.TrimSpace(c.Title); title != "" {
		return title
	}
	return defaultTitle
}

// CanvasSize returns the chart element dimensions in pixels.
func (c Config) CanvasSize() (int, int) {
	width, height := c.Width, c.Height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	return width, height
}

// ElementID returns the id of the element hosting the chart.
func (c Config) ElementID() string {
	if id := strings.TrimSpace(c.ChartElementID); id != "" {
		return id
	}
	return DefaultChartElementID
}

// Regenerate returns the command suggested when the leaderboard is missing.
func (c Config) Regenerate() string {
	if cmd := strings.TrimSpace(c.RegenerateCommand); cmd != "" {
		return cmd
	}
	return DefaultRegenerateCommand
}

// Source returns the location the leaderboard is loaded from. A stats
// directory takes precedence over the JSON input.
func (c Config) Source() string {
	if dir := strings.TrimSpace(c.StatsDir); dir != "" {
		return dir
	}
	if input := strings.TrimSpace(c.Input); input != "" {
		return input
	}
	return DefaultInput
}

// Validate reports configuration values that cannot be acted on.
func (c Config) Validate() error {
	switch c.InstanceOrder {
	case "", InstanceOrderFirstSeen, InstanceOrderNatural:
	default:
		return fmt.Errorf("unknown instanceOrder %q (want %q or %q)", c.InstanceOrder, InstanceOrderFirstSeen, InstanceOrderNatural)
	}
	if c.Width < 0 || c.Height < 0 {
		return errors.New("width and height must not be negative")
	}
	return nil
}

// Load reads the application configuration from the specified path. Fields
// the file omits keep their defaults.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}

	config, err := loadFromPath(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("no configuration file found at %q", path)
		}
		return Config{}, fmt.Errorf("could not read config file %q: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config file %q: %w", path, err)
	}
	config.ConfigPath = path
	return config, nil
}

// loadFromPath is a helper function that loads the configuration from a specific file path.
func loadFromPath(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer file.Close()

	config := Defaults()
	if err := json.NewDecoder(file).Decode(&config); err != nil {
		return Config{}, err
	}
	if config.FetchTimeoutSeconds <= 0 {
		config.FetchTimeoutSeconds = int(defaultFetchTimeout.Seconds())
	}

	return config, nil
}
