package appconfig

import (
	"fmt"
	"io"
)

// ShowConfig prints the current configuration summary.
func ShowConfig(out io.Writer, file string, cfg *Config) {
	if file == "" {
		fmt.Fprintln(out, "No config file loaded (using defaults).")
	} else {
		fmt.Fprintf(out, "Config file: %s\n\n", file)
	}

	if cfg == nil {
		fallback := Defaults()
		cfg = &fallback
	}

	width, height := cfg.CanvasSize()
	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintf(out, "  Debug:            %v\n", cfg.Debug)
	fmt.Fprintf(out, "  Source:           %s\n", cfg.Source())
	fmt.Fprintf(out, "  Output:           %s\n", cfg.Output)
	fmt.Fprintf(out, "  Title:            %s\n", cfg.PageTitle())
	fmt.Fprintf(out, "  Canvas:           %dx%d\n", width, height)
	fmt.Fprintf(out, "  Chart Element:    #%s\n", cfg.ElementID())
	fmt.Fprintf(out, "  ECharts URL:      %s\n", cfg.EChartsURL)
	fmt.Fprintf(out, "  Fetch Timeout:    %s\n", cfg.FetchTimeout())
	fmt.Fprintf(out, "  Instance Order:   %s\n", cfg.InstanceOrder)
	fmt.Fprintf(out, "  Validate Schema:  %v\n", cfg.ValidateSchema)
	fmt.Fprintf(out, "  Regenerate With:  %s\n", cfg.Regenerate())
	if cfg.InstanceFilter != "" {
		fmt.Fprintf(out, "  Instance Filter:  %s\n", cfg.InstanceFilter)
	}
	if cfg.TemplatePath != "" {
		fmt.Fprintf(out, "  Template:         %s\n", cfg.TemplatePath)
	}
	if cfg.LogFile != "" {
		fmt.Fprintf(out, "  Log File:         %s\n", cfg.LogFile)
	}
}
