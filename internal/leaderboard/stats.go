package leaderboard

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"

	"github.com/mwiater/crossboard/internal/logging"
)

const statsPattern = "**/*.csv"

// maxStatsWorkers bounds how many stats files are parsed at once.
const maxStatsWorkers = 4

// Column names in a per-team stats file.
const (
	colOptimizer = "optimizer"
	colGraph     = "graph"
	colMaxEdge   = "max_per_edge"
	colDuration  = "duration_ms"
	colTimestamp = "unix_timestamp"
)

// LoadStatsDir builds a document from a directory of per-team stats files.
// Each file is one team; each distinct unix_timestamp inside it is one run.
// Teams are ordered by name and runs by first appearance in their file.
func LoadStatsDir(ctx context.Context, dir string) (*Document, error) {
	return loadStatsFS(ctx, os.DirFS(dir))
}

func loadStatsFS(ctx context.Context, fsys fs.FS) (*Document, error) {
	matches, err := doublestar.Glob(fsys, statsPattern)
	if err != nil {
		return nil, fmt.Errorf("glob stats files: %w", err)
	}
	sort.SliceStable(matches, func(i, j int) bool {
		ti, tj := teamName(matches[i]), teamName(matches[j])
		if ti != tj {
			return ti < tj
		}
		return matches[i] < matches[j]
	})

	perFile := make([][]Run, len(matches))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxStatsWorkers)
	for i, name := range matches {
		i, name := i, name
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			f, err := fsys.Open(name)
			if err != nil {
				return err
			}
			defer f.Close()

			runs, err := parseStats(f, teamName(name))
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			perFile[i] = runs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	doc := &Document{AllRuns: []Run{}}
	for _, runs := range perFile {
		doc.AllRuns = append(doc.AllRuns, runs...)
	}
	return doc, nil
}

// parseStats reads one team's stats file. Rows with an unreadable timestamp
// are skipped; an unreadable crossing count becomes "no data".
func parseStats(r io.Reader, team string) ([]Run, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{colGraph, colMaxEdge, colTimestamp} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("%w: stats header missing %q", ErrMalformed, required)
		}
	}

	var runs []Run
	byTimestamp := make(map[uint64]int)
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line++

		ts, err := strconv.ParseUint(field(record, cols, colTimestamp), 10, 64)
		if err != nil {
			logging.LogWarning("stats %s line %d: unreadable unix_timestamp, row skipped", team, line)
			continue
		}

		idx, ok := byTimestamp[ts]
		if !ok {
			idx = len(runs)
			byTimestamp[ts] = idx
			runs = append(runs, Run{
				ID:        fmt.Sprintf("%s@%d", team, ts),
				Name:      team,
				Timestamp: Num(float64(ts)),
			})
		}
		run := &runs[idx]
		if run.Optimizer == "" {
			run.Optimizer = field(record, cols, colOptimizer)
		}

		value := Number{}
		if v, err := strconv.ParseFloat(field(record, cols, colMaxEdge), 64); err == nil {
			value = Num(v)
		}
		duration := Number{}
		if v, err := strconv.ParseFloat(field(record, cols, colDuration), 64); err == nil {
			duration = Num(v)
		}
		run.Measurements = append(run.Measurements, Measurement{
			Instance:   field(record, cols, colGraph),
			Value:      value,
			DurationMs: duration,
		})
	}
	return runs, nil
}

func field(record []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func teamName(name string) string {
	base := path.Base(name)
	return strings.TrimSuffix(base, path.Ext(base))
}
