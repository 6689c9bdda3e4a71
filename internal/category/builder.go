package category

import (
	"fmt"
	"strings"

	"github.com/mwiater/crossboard/internal/leaderboard"
)

// Order is the policy used to arrange instance categories.
type Order int

const (
	// FirstSeen keeps instances in the order they first appear in the document.
	FirstSeen Order = iota
	// Natural sorts instances with numeric-aware collation.
	Natural
)

// ParseOrder maps a configuration value onto an Order.
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "first-seen":
		return FirstSeen, nil
	case "natural":
		return Natural, nil
	default:
		return FirstSeen, fmt.Errorf("unknown instance order %q", s)
	}
}

func (o Order) String() string {
	if o == Natural {
		return "natural"
	}
	return "first-seen"
}

// Options controls category derivation.
type Options struct {
	InstanceOrder Order
	// Warn receives duplicate-label notices. Nil discards them.
	Warn func(format string, args ...any)
}

// Categories are the axis domains derived from one document.
type Categories struct {
	Runs      *Index
	Instances *Index
	// RunLabels[i] is the run category of runs[i].
	RunLabels []string
}

// Build derives run and instance categories from runs. Every run gets its
// own run category even when names collide; instances with an empty name
// are not indexed.
func Build(runs []leaderboard.Run, opts Options) Categories {
	labels := RunLabels(runs, opts.Warn)
	cats := Categories{
		Runs:      NewIndex(labels...),
		Instances: BuildInstances(runs, opts.InstanceOrder),
		RunLabels: labels,
	}
	return cats
}

// BuildInstances indexes every non-empty instance name referenced by runs.
func BuildInstances(runs []leaderboard.Run, order Order) *Index {
	ix := NewIndex()
	for _, run := range runs {
		for _, m := range run.Measurements {
			if m.Instance == "" {
				continue
			}
			ix.Add(m.Instance)
		}
	}
	if order == Natural {
		return ix.naturalSorted()
	}
	return ix
}

// RunLabels returns one distinct label per run, in document order. A run is
// labelled by its name, falling back to its id and then its position. When a
// label is already taken the later run is disambiguated by id or by a
// counter and warn is told about it.
func RunLabels(runs []leaderboard.Run, warn func(format string, args ...any)) []string {
	labels := make([]string, len(runs))
	taken := make(map[string]bool, len(runs))

	for i, run := range runs {
		base := strings.TrimSpace(run.Name)
		if base == "" {
			base = strings.TrimSpace(run.ID)
		}
		if base == "" {
			base = fmt.Sprintf("run %d", i)
		}

		label := base
		if taken[label] {
			if id := strings.TrimSpace(run.ID); id != "" && id != base {
				label = fmt.Sprintf("%s (%s)", base, id)
			}
			for n := 2; taken[label]; n++ {
				label = fmt.Sprintf("%s (%d)", base, n)
			}
			if warn != nil {
				warn("duplicate run name %q at position %d labelled %q", base, i, label)
			}
		}
		taken[label] = true
		labels[i] = label
	}
	return labels
}
