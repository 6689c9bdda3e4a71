package plan

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwiater/crossboard/internal/category"
	"github.com/mwiater/crossboard/internal/chart"
	"github.com/mwiater/crossboard/internal/leaderboard"
)

func quiet(string, ...any) {}

func mustParse(t *testing.T, raw string) *leaderboard.Document {
	t.Helper()
	doc, err := leaderboard.Parse([]byte(raw))
	require.NoError(t, err)
	return doc
}

func TestBuildSampleDocument(t *testing.T) {
	doc := mustParse(t, `{"all_runs":[{"name":"run-A","timestamp":1744622856,"measurements":[{"instance":"g1.json","value":49}]}]}`)

	p, err := Build(doc, Options{Warn: quiet})
	require.NoError(t, err)

	require.Len(t, p.Summaries, 1)
	assert.Equal(t, "run-A", p.Summaries[0].Title)
	assert.Equal(t, "Results", p.Summaries[0].Subtitle)
	assert.Equal(t, []string{"run-A"}, p.RunCategories)
	assert.Equal(t, []string{"g1.json"}, p.InstanceCategories)
	assert.Equal(t, []chart.Point{{1744622856, 1}}, p.Chart.Series[0].Data)
	assert.Equal(t, []chart.Point{{0, 0, 49}}, p.Chart.Series[1].Data)
	assert.Empty(t, p.Warnings)
}

func TestBuildEmptyDocument(t *testing.T) {
	for name, doc := range map[string]*leaderboard.Document{
		"empty runs": mustParse(t, `{"all_runs":[]}`),
		"nil":        nil,
	} {
		t.Run(name, func(t *testing.T) {
			p, err := Build(doc, Options{Warn: quiet})
			require.NoError(t, err)
			assert.Empty(t, p.Summaries)
			assert.Empty(t, p.RunCategories)
			assert.Empty(t, p.InstanceCategories)
			assert.Len(t, p.Chart.Grid, 4)
			assert.Len(t, p.Chart.XAxis, 4)
			assert.Len(t, p.Chart.YAxis, 4)
			for _, s := range p.Chart.Series {
				assert.Empty(t, s.Data)
			}
			assert.NoError(t, p.Chart.Validate())
		})
	}
}

func TestBuildSummaryPerRun(t *testing.T) {
	doc := &leaderboard.Document{}
	for i := 0; i < 25; i++ {
		doc.AllRuns = append(doc.AllRuns, leaderboard.Run{Name: fmt.Sprintf("run-%02d", i%7), Timestamp: leaderboard.Num(float64(i))})
	}

	p, err := Build(doc, Options{Warn: quiet})
	require.NoError(t, err)
	require.Len(t, p.Summaries, len(doc.AllRuns))
	for i, block := range p.Summaries {
		assert.Equal(t, doc.AllRuns[i].Name, block.Title)
	}
	assert.Len(t, p.RunCategories, len(doc.AllRuns))
}

func TestBuildHeatmapCellsMatchCategories(t *testing.T) {
	doc := mustParse(t, `{"all_runs":[
		{"name":"r1","timestamp":1,"measurements":[{"instance":"/b.json","value":3},{"instance":"/a.json","value":5}]},
		{"name":"r2","timestamp":2,"measurements":[{"instance":"/a.json","value":4},{"instance":"/c.json","value":"oops"}]},
		{"name":"r3","timestamp":3,"measurements":[{"instance":"/c.json","value":8}]}
	]}`)

	p, err := Build(doc, Options{Warn: quiet})
	require.NoError(t, err)

	assert.Equal(t, []string{"r1", "r2", "r3"}, p.RunCategories)
	assert.Equal(t, []string{"/b.json", "/a.json", "/c.json"}, p.InstanceCategories)

	want := map[[2]string]float64{
		{"r1", "/b.json"}: 3,
		{"r1", "/a.json"}: 5,
		{"r2", "/a.json"}: 4,
		{"r3", "/c.json"}: 8,
	}
	heatmap := p.Chart.Series[1].Data
	require.Len(t, heatmap, len(want))
	for _, cell := range heatmap {
		key := [2]string{p.RunCategories[int(cell[0])], p.InstanceCategories[int(cell[1])]}
		value, ok := want[key]
		require.True(t, ok, "unexpected cell %v", key)
		assert.Equal(t, value, cell[2])
	}
	assert.Equal(t, 1, p.NoData)
	assert.Equal(t, 1, p.Rows[1].NoData)
}

func TestBuildScores(t *testing.T) {
	doc := mustParse(t, `{"all_runs":[
		{"name":"a","timestamp":10,"measurements":[{"instance":"g1","value":10},{"instance":"g2","value":0}]},
		{"name":"b","timestamp":20,"measurements":[{"instance":"g1","value":20},{"instance":"g2","value":3}]},
		{"name":"c","timestamp":30,"score":0.5,"measurements":[]},
		{"name":"d","measurements":[{"instance":"g1","value":10}]}
	]}`)

	var warnings []string
	p, err := Build(doc, Options{Warn: func(format string, args ...any) {
		warnings = append(warnings, fmt.Sprintf(format, args...))
	}})
	require.NoError(t, err)

	assert.Equal(t, []chart.Point{{10, 1}, {20, 3}, {30, 0.5}}, p.Chart.Series[0].Data)
	assert.Equal(t, leaderboard.Num(1), p.Rows[3].Score)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], `run "d" has no timestamp`)
	assert.Equal(t, warnings, p.Warnings)
}

func TestBuildDuplicateRunNames(t *testing.T) {
	doc := mustParse(t, `{"all_runs":[
		{"name":"greedy","timestamp":1,"measurements":[{"instance":"g","value":4}]},
		{"name":"greedy","timestamp":2,"measurements":[{"instance":"g","value":2}]}
	]}`)

	p, err := Build(doc, Options{Warn: quiet})
	require.NoError(t, err)
	assert.Equal(t, []string{"greedy", "greedy (2)"}, p.RunCategories)
	assert.Equal(t, []chart.Point{{0, 0, 4}, {1, 0, 2}}, p.Chart.Series[1].Data)
	assert.Equal(t, "greedy", p.Summaries[1].Title)
	assert.Len(t, p.Warnings, 1)
}

func TestBuildDropsEmptyInstance(t *testing.T) {
	doc := mustParse(t, `{"all_runs":[{"name":"r","timestamp":1,"measurements":[{"value":4},{"instance":"g","value":2}]}]}`)

	p, err := Build(doc, Options{Warn: quiet})
	require.NoError(t, err)
	assert.Equal(t, []chart.Point{{0, 0, 2}}, p.Chart.Series[1].Data)
	require.Len(t, p.Dropped, 1)
	assert.Equal(t, "instance not in categories", p.Dropped[0].Reason)
}

func TestBuildInstanceFilterAndOrder(t *testing.T) {
	doc := mustParse(t, `{"all_runs":[{"name":"r","timestamp":1,"measurements":[
		{"instance":"/planar-10.json","value":1},
		{"instance":"/dense-1.json","value":2},
		{"instance":"/planar-9.json","value":3}
	]}]}`)

	p, err := Build(doc, Options{Warn: quiet, InstanceFilter: "planar", InstanceOrder: category.Natural})
	require.NoError(t, err)
	assert.Equal(t, []string{"/planar-9.json", "/planar-10.json"}, p.InstanceCategories)
	assert.Equal(t, []chart.Point{{0, 1, 1}, {0, 0, 3}}, p.Chart.Series[1].Data)
	assert.Empty(t, p.Dropped)

	assert.Len(t, doc.AllRuns[0].Measurements, 3)
}

func TestBuildIsDeterministic(t *testing.T) {
	doc := mustParse(t, `{"all_runs":[
		{"name":"r1","timestamp":1,"measurements":[{"instance":"x","value":1},{"instance":"y","value":2}]},
		{"name":"r2","timestamp":2,"measurements":[{"instance":"y","value":3},{"instance":"z","value":4}]}
	]}`)

	first, err := Build(doc, Options{Warn: quiet})
	require.NoError(t, err)
	second, err := Build(doc, Options{Warn: quiet})
	require.NoError(t, err)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.JSONEq(t, string(a), string(b))
}
