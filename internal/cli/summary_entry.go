package crossboard

import (
	"context"
	"io"

	"github.com/mwiater/crossboard/internal/appconfig"
	"github.com/mwiater/crossboard/internal/summary"
)

func runSummary(ctx context.Context, cfg *appconfig.Config, out io.Writer) error {
	p, err := buildPlan(ctx, cfg, nil)
	if err != nil {
		return err
	}
	return summary.RenderTerminal(out, cfg.PageTitle(), p.Rows)
}
