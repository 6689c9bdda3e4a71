package crossboard

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mwiater/crossboard/internal/appconfig"
	"github.com/mwiater/crossboard/internal/leaderboard"
	"github.com/mwiater/crossboard/internal/logging"
	"github.com/mwiater/crossboard/internal/page"
	"github.com/mwiater/crossboard/internal/util"
)

// runRender writes the dashboard for cfg. Load failures produce the
// fallback page; a page without its chart element is never written.
func runRender(ctx context.Context, cfg *appconfig.Config, status io.Writer) error {
	output := strings.TrimSpace(cfg.Output)
	if output == "" {
		output = appconfig.DefaultOutput
	}

	p, err := buildPlan(ctx, cfg, nil)
	if err != nil {
		if !isLoadError(err) {
			return err
		}
		logging.LogWarning("%v", err)
		if werr := writeFallback(cfg, output); werr != nil {
			return werr
		}
		printWarning(status, "Leaderboard unavailable; fallback page written to %s", output)
		if cfg.Strict {
			return err
		}
		return nil
	}

	opts := pageOptions(cfg)
	if cfg.TemplatePath != "" {
		tmpl, err := page.LoadTemplate(cfg.TemplatePath)
		if err != nil {
			return err
		}
		opts.Template = tmpl
	}

	var buf bytes.Buffer
	if err := page.NewHost(opts).Bind(&buf, p); err != nil {
		if errors.Is(err, page.ErrHostElementMissing) {
			logging.LogEvent("[FATAL] %v", err)
		}
		return fmt.Errorf("render dashboard: %w", err)
	}
	if err := util.WriteFile(output, buf.Bytes()); err != nil {
		return fmt.Errorf("unable to write dashboard %s: %w", output, err)
	}

	logging.LogEvent("[RENDER] runs=%d instances=%d dropped=%d output=%s",
		len(p.RunCategories), len(p.InstanceCategories), len(p.Dropped), output)
	printSuccess(status, "Dashboard written to %s (%d runs, %d graphs)", output, len(p.RunCategories), len(p.InstanceCategories))
	if n := len(p.Warnings); n > 0 {
		printWarning(status, "%d data warning(s); run 'crossboard validate' for details", n)
	}
	return nil
}

func pageOptions(cfg *appconfig.Config) page.Options {
	width, height := cfg.CanvasSize()
	return page.Options{
		Title:      cfg.PageTitle(),
		ElementID:  cfg.ElementID(),
		Width:      width,
		Height:     height,
		EChartsURL: cfg.EChartsURL,
	}
}

func writeFallback(cfg *appconfig.Config, output string) error {
	var buf bytes.Buffer
	if err := page.WriteFallback(&buf, cfg.PageTitle(), leaderboard.FallbackMessage(cfg.Regenerate())); err != nil {
		return fmt.Errorf("render fallback page: %w", err)
	}
	if err := util.WriteFile(output, buf.Bytes()); err != nil {
		return fmt.Errorf("unable to write fallback page %s: %w", output, err)
	}
	return nil
}
