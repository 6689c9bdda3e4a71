// internal/cli/load.go
package crossboard

import (
	"context"
	"errors"

	"github.com/mwiater/crossboard/internal/appconfig"
	"github.com/mwiater/crossboard/internal/category"
	"github.com/mwiater/crossboard/internal/leaderboard"
	"github.com/mwiater/crossboard/internal/plan"
)

// loadDocument reads the leaderboard from the configured source.
func loadDocument(ctx context.Context, cfg *appconfig.Config) (*leaderboard.Document, error) {
	loader := leaderboard.NewLoader(cfg.FetchTimeout(), cfg.ValidateSchema)
	return loader.Load(ctx, cfg.Source())
}

// planOptions maps the configuration onto plan.Options. warn may be nil.
func planOptions(cfg *appconfig.Config, warn func(string, ...any)) (plan.Options, error) {
	order, err := category.ParseOrder(cfg.InstanceOrder)
	if err != nil {
		return plan.Options{}, err
	}
	return plan.Options{
		InstanceOrder:  order,
		InstanceFilter: cfg.InstanceFilter,
		Warn:           warn,
	}, nil
}

// buildPlan loads the document and derives its render plan.
func buildPlan(ctx context.Context, cfg *appconfig.Config, warn func(string, ...any)) (*plan.RenderPlan, error) {
	opts, err := planOptions(cfg, warn)
	if err != nil {
		return nil, err
	}
	doc, err := loadDocument(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return plan.Build(doc, opts)
}

// configOrDefaults returns the merged configuration. When the root command
// has not run it reads the config file directly, then falls back to defaults.
func configOrDefaults() *appconfig.Config {
	if cfg := GetConfig(); cfg != nil {
		return cfg
	}
	if cfg, err := appconfig.Load(cfgFile); err == nil {
		return &cfg
	}
	cfg := appconfig.Defaults()
	return &cfg
}

func isLoadError(err error) bool {
	var loadErr *leaderboard.LoadError
	return errors.As(err, &loadErr)
}
