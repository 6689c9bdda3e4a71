// internal/plan/plan.go
// Package plan turns a leaderboard document into everything the dashboard
// shows, without touching any output.
package plan

import (
	"fmt"
	"strings"

	"github.com/mwiater/crossboard/internal/category"
	"github.com/mwiater/crossboard/internal/chart"
	"github.com/mwiater/crossboard/internal/leaderboard"
	"github.com/mwiater/crossboard/internal/logging"
	"github.com/mwiater/crossboard/internal/summary"
)

// Options controls how a plan is derived.
type Options struct {
	InstanceOrder category.Order
	// InstanceFilter keeps only instances whose name contains it.
	InstanceFilter string
	// Warn receives data-integrity warnings. Defaults to logging.LogWarning.
	Warn func(format string, args ...any)
}

// RenderPlan is the summary blocks and the chart option for one document.
type RenderPlan struct {
	Summaries          []summary.Block `json:"summaries"`
	RunCategories      []string        `json:"runCategories"`
	InstanceCategories []string        `json:"instanceCategories"`
	Chart              chart.Option    `json:"chart"`

	Rows     []summary.Row   `json:"-"`
	Dropped  []chart.Dropped `json:"-"`
	NoData   int             `json:"-"`
	Warnings []string        `json:"-"`
}

// Build derives the plan. A nil document is treated as an empty one.
func Build(doc *leaderboard.Document, opts Options) (*RenderPlan, error) {
	p := &RenderPlan{}
	warn := func(format string, args ...any) {
		p.Warnings = append(p.Warnings, fmt.Sprintf(format, args...))
		if opts.Warn != nil {
			opts.Warn(format, args...)
		} else {
			logging.LogWarning(format, args...)
		}
	}

	var runs []leaderboard.Run
	if doc != nil {
		runs = filterInstances(doc.AllRuns, opts.InstanceFilter)
	}

	cats := category.Build(runs, category.Options{InstanceOrder: opts.InstanceOrder, Warn: warn})
	best := bestValues(runs)

	var (
		scatter []chart.Point
		cells   []chart.Cell
	)
	p.Rows = make([]summary.Row, 0, len(runs))
	for i, run := range runs {
		label := cats.RunLabels[i]
		row := summary.Row{Label: label, Timestamp: run.Timestamp}

		for _, m := range run.Measurements {
			cells = append(cells, chart.Cell{Run: label, Instance: m.Instance, Value: m.Value})
			row.Instances++
			if !m.Value.Valid {
				row.NoData++
			}
			if m.DurationMs.Valid {
				row.DurationMs += m.DurationMs.Value
			}
		}

		row.Score = score(run, best)
		switch {
		case !run.Timestamp.Valid:
			warn("run %q has no timestamp; left out of the scatter panel", label)
		case row.Score.Valid:
			scatter = append(scatter, chart.Point{run.Timestamp.Value, row.Score.Value})
		}
		p.Rows = append(p.Rows, row)
	}

	res, err := chart.Builder{Warn: warn}.Build(chart.Input{
		RunCategories:      cats.Runs,
		InstanceCategories: cats.Instances,
		Scatter:            scatter,
		Cells:              cells,
	})
	if err != nil {
		return nil, err
	}

	p.Summaries = summary.Build(runs)
	p.RunCategories = cats.Runs.Values()
	p.InstanceCategories = cats.Instances.Values()
	p.Chart = res.Option
	p.Dropped = res.Dropped
	p.NoData = res.NoData
	return p, nil
}

func filterInstances(runs []leaderboard.Run, filter string) []leaderboard.Run {
	if filter == "" {
		return runs
	}
	out := make([]leaderboard.Run, len(runs))
	for i, run := range runs {
		kept := make([]leaderboard.Measurement, 0, len(run.Measurements))
		for _, m := range run.Measurements {
			if strings.Contains(m.Instance, filter) {
				kept = append(kept, m)
			}
		}
		run.Measurements = kept
		out[i] = run
	}
	return out
}
