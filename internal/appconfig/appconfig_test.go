// internal/appconfig/appconfig_test.go
package appconfig

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// TestLoad checks that a partial config file keeps defaults for the fields it
// omits, and that invalid JSON, unknown instance orders and missing files are
// reported as errors.
func TestLoad(t *testing.T) {
	dir := t.TempDir()

	validConfig := `{
        "input": "https://example.com/leaderboard.json",
        "title": "Crossings",
        "instanceOrder": "natural"
    }`
	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, []byte(validConfig), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() with valid config failed: %v", err)
	}
	if cfg.Input != "https://example.com/leaderboard.json" {
		t.Fatalf("expected input from file, got %q", cfg.Input)
	}
	if cfg.Output != DefaultOutput {
		t.Fatalf("expected default output, got %q", cfg.Output)
	}
	if cfg.FetchTimeout() != 30*time.Second {
		t.Fatalf("expected default fetch timeout of 30s, got %v", cfg.FetchTimeout())
	}
	if !cfg.ValidateSchema {
		t.Fatal("expected schema validation to default on")
	}
	if cfg.ConfigPath != path {
		t.Fatalf("expected ConfigPath %q, got %q", path, cfg.ConfigPath)
	}

	invalidJSON := filepath.Join(dir, "invalid.json")
	if err := os.WriteFile(invalidJSON, []byte(`{ "input": `), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(invalidJSON); err == nil {
		t.Fatal("Load() with invalid JSON should have failed")
	}

	badOrder := filepath.Join(dir, "order.json")
	if err := os.WriteFile(badOrder, []byte(`{ "instanceOrder": "random" }`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(badOrder); err == nil {
		t.Fatal("Load() with unknown instanceOrder should have failed")
	}

	if _, err := Load(filepath.Join(dir, "nonexistent.json")); err == nil {
		t.Fatal("Load() with nonexistent file should have failed")
	}
}

func TestAccessorFallbacks(t *testing.T) {
	var cfg Config
	if got := cfg.PageTitle(); got != "Leaderboard" {
		t.Fatalf("expected default title, got %q", got)
	}
	if w, h := cfg.CanvasSize(); w != 1000 || h != 800 {
		t.Fatalf("expected 1000x800 canvas, got %dx%d", w, h)
	}
	if got := cfg.ElementID(); got != "chart" {
		t.Fatalf("expected chart element id, got %q", got)
	}
	if got := cfg.Regenerate(); got != "cargo run plots" {
		t.Fatalf("expected default regenerate command, got %q", got)
	}
	if got := cfg.Source(); got != DefaultInput {
		t.Fatalf("expected default input source, got %q", got)
	}

	cfg.Input = "runs.json"
	cfg.StatsDir = "stats"
	if got := cfg.Source(); got != "stats" {
		t.Fatalf("expected stats dir to win, got %q", got)
	}
}

func TestShowConfig(t *testing.T) {
	var buf bytes.Buffer
	ShowConfig(&buf, "", nil)
	out := buf.String()
	if !strings.Contains(out, "No config file loaded") {
		t.Fatalf("expected defaults banner, got: %s", out)
	}
	if !strings.Contains(out, "Chart Element:    #chart") {
		t.Fatalf("expected chart element line, got: %s", out)
	}

	buf.Reset()
	cfg := Defaults()
	cfg.InstanceFilter = "planar"
	ShowConfig(&buf, "config/config.json", &cfg)
	out = buf.String()
	if !strings.Contains(out, "Config file: config/config.json") {
		t.Fatalf("expected config file line, got: %s", out)
	}
	if !strings.Contains(out, "Instance Filter:  planar") {
		t.Fatalf("expected filter line, got: %s", out)
	}
}
