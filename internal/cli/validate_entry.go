package crossboard

import (
	"context"
	"fmt"
	"io"

	"github.com/mwiater/crossboard/internal/appconfig"
)

// runValidate reports findings to out. Warnings are collected rather than
// logged so they are printed once.
func runValidate(ctx context.Context, cfg *appconfig.Config, out io.Writer, strict bool) error {
	p, err := buildPlan(ctx, cfg, func(string, ...any) {})
	if err != nil {
		printFailure(out, "Invalid leaderboard: %v", err)
		return err
	}

	fmt.Fprintf(out, "Source:    %s\n", cfg.Source())
	fmt.Fprintf(out, "Runs:      %d\n", len(p.RunCategories))
	fmt.Fprintf(out, "Graphs:    %d\n", len(p.InstanceCategories))
	fmt.Fprintf(out, "No data:   %d cell(s)\n", p.NoData)

	for _, w := range p.Warnings {
		printWarning(out, "  - %s", w)
	}

	if len(p.Warnings) == 0 {
		printSuccess(out, "Leaderboard is valid")
		return nil
	}
	if strict {
		return fmt.Errorf("%d data warning(s)", len(p.Warnings))
	}
	printWarning(out, "Leaderboard is usable with %d warning(s)", len(p.Warnings))
	return nil
}
