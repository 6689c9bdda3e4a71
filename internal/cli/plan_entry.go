package crossboard

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/k0kubun/pp"

	"github.com/mwiater/crossboard/internal/appconfig"
	"github.com/mwiater/crossboard/internal/util"
)

// runPlan writes the render plan as indented JSON to out, or to path when
// set. With debug enabled the plan is dumped with pp instead.
func runPlan(ctx context.Context, cfg *appconfig.Config, out io.Writer, path string, debug bool) error {
	p, err := buildPlan(ctx, cfg, nil)
	if err != nil {
		return err
	}

	if debug {
		_, err := pp.Fprintln(out, p)
		return err
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("unable to marshal render plan: %w", err)
	}
	data = append(data, '\n')

	if path == "" {
		_, err = out.Write(data)
		return err
	}
	if err := util.WriteFile(path, data); err != nil {
		return fmt.Errorf("unable to write render plan %s: %w", path, err)
	}
	printSuccess(out, "Render plan written to %s", path)
	return nil
}
