// internal/summary/summary.go
// Package summary produces the per-run display blocks shown above the chart
// and the equivalent terminal table.
package summary

import (
	"strings"

	"github.com/mwiater/crossboard/internal/leaderboard"
)

const (
	// ResultsHeading is the fixed sub-heading of every block.
	ResultsHeading = "Results"
	// UnnamedRun stands in for a run without a name.
	UnnamedRun = "(unnamed run)"
)

// Block is one run's heading pair on the dashboard page.
type Block struct {
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Placeholder bool   `json:"placeholder,omitempty"`
}

// Build returns exactly one block per run, in document order.
func Build(runs []leaderboard.Run) []Block {
	blocks := make([]Block, 0, len(runs))
	for _, run := range runs {
		block := Block{Title: strings.TrimSpace(run.Name), Subtitle: ResultsHeading}
		if block.Title == "" {
			block.Title = UnnamedRun
			block.Placeholder = true
		}
		blocks = append(blocks, block)
	}
	return blocks
}
