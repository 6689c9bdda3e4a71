package chart

import (
	"encoding/json"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwiater/crossboard/internal/category"
	"github.com/mwiater/crossboard/internal/leaderboard"
)

type warnings []string

func (w *warnings) add(format string, args ...any) {
	*w = append(*w, fmt.Sprintf(format, args...))
}

func TestBuildSample(t *testing.T) {
	res, err := Builder{}.Build(Input{
		RunCategories:      category.NewIndex("run-A"),
		InstanceCategories: category.NewIndex("g1.json"),
		Scatter:            []Point{{1744622856, 1}},
		Cells:              []Cell{{Run: "run-A", Instance: "g1.json", Value: leaderboard.Num(49)}},
	})
	require.NoError(t, err)

	opt := res.Option
	require.Len(t, opt.Grid, 4)
	require.Len(t, opt.XAxis, 4)
	require.Len(t, opt.YAxis, 4)
	require.Len(t, opt.Series, 2)

	assert.Equal(t, []Point{{1744622856, 1}}, opt.Series[0].Data)
	assert.Equal(t, SeriesHeatmap, opt.Series[1].Type)
	assert.Equal(t, []Point{{0, 0, 49}}, opt.Series[1].Data)
	assert.Equal(t, []string{"run-A"}, opt.XAxis[PanelHeatmap].Data)
	assert.Equal(t, []string{"g1.json"}, opt.YAxis[PanelHeatmap].Data)
	assert.Empty(t, res.Dropped)
	assert.Equal(t, &VisualMap{Min: 49, Max: 49, SeriesIndex: 1}, opt.VisualMap)
}

func TestBuildCellsAlignWithCategories(t *testing.T) {
	runs := category.NewIndex("r0", "r1", "r2")
	instances := category.NewIndex("b", "a", "c")
	var cells []Cell
	for _, r := range runs.Values() {
		for _, inst := range instances.Values() {
			cells = append(cells, Cell{Run: r, Instance: inst, Value: leaderboard.Num(float64(len(cells)))})
		}
	}

	res, err := Builder{}.Build(Input{RunCategories: runs, InstanceCategories: instances, Cells: cells})
	require.NoError(t, err)

	heatmap := res.Option.Series[1].Data
	require.Len(t, heatmap, len(cells))
	for i, p := range heatmap {
		x, y := int(p[0]), int(p[1])
		assert.Equal(t, cells[i].Run, res.Option.XAxis[PanelHeatmap].Data[x])
		assert.Equal(t, cells[i].Instance, res.Option.YAxis[PanelHeatmap].Data[y])
		assert.Equal(t, cells[i].Value.Value, p[2])
	}
}

func TestBuildDropsUnindexedCells(t *testing.T) {
	var warned warnings
	res, err := Builder{Warn: warned.add}.Build(Input{
		RunCategories:      category.NewIndex("r1"),
		InstanceCategories: category.NewIndex("g1"),
		Cells: []Cell{
			{Run: "ghost", Instance: "g1", Value: leaderboard.Num(3)},
			{Run: "r1", Instance: "ghost.json", Value: leaderboard.Num(4)},
			{Run: "r1", Instance: "g1", Value: leaderboard.Num(5)},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, []Point{{0, 0, 5}}, res.Option.Series[1].Data)
	require.Len(t, res.Dropped, 2)
	assert.Equal(t, "run not in categories", res.Dropped[0].Reason)
	assert.Equal(t, "instance not in categories", res.Dropped[1].Reason)
	assert.Len(t, warned, 2)
}

func TestBuildOmitsMissingValues(t *testing.T) {
	var warned warnings
	res, err := Builder{Warn: warned.add}.Build(Input{
		RunCategories:      category.NewIndex("r1"),
		InstanceCategories: category.NewIndex("g1", "g2"),
		Cells: []Cell{
			{Run: "r1", Instance: "g1"},
			{Run: "r1", Instance: "g2", Value: leaderboard.Num(0)},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, []Point{{0, 1, 0}}, res.Option.Series[1].Data)
	assert.Equal(t, 1, res.NoData)
	assert.Empty(t, res.Dropped)
	assert.Empty(t, warned)
}

func TestBuildKeepsLowerDuplicate(t *testing.T) {
	var warned warnings
	res, err := Builder{Warn: warned.add}.Build(Input{
		RunCategories:      category.NewIndex("r1"),
		InstanceCategories: category.NewIndex("g1"),
		Cells: []Cell{
			{Run: "r1", Instance: "g1", Value: leaderboard.Num(9)},
			{Run: "r1", Instance: "g1", Value: leaderboard.Num(4)},
			{Run: "r1", Instance: "g1", Value: leaderboard.Num(6)},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, []Point{{0, 0, 4}}, res.Option.Series[1].Data)
	assert.Len(t, warned, 2)
}

func TestBuildEmpty(t *testing.T) {
	res, err := Builder{}.Build(Input{})
	require.NoError(t, err)

	opt := res.Option
	assert.Len(t, opt.Grid, 4)
	assert.Len(t, opt.XAxis, 4)
	assert.Len(t, opt.YAxis, 4)
	for _, s := range opt.Series {
		assert.NotNil(t, s.Data)
		assert.Empty(t, s.Data)
	}

	raw, err := json.Marshal(opt)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"data":[]`)
	assert.NotContains(t, string(raw), `"data":null`)
}

func TestBuildRejectsNonFiniteScatter(t *testing.T) {
	_, err := Builder{}.Build(Input{Scatter: []Point{{1, math.NaN()}}})
	assert.ErrorIs(t, err, ErrInvalidOption)
}

func TestLayoutIsNotShared(t *testing.T) {
	res, err := Builder{}.Build(Input{})
	require.NoError(t, err)
	res.Option.Grid[0].Left = "1%"
	assert.Equal(t, "", layout[PanelScatter].Left)
}

func TestOptionJSONShape(t *testing.T) {
	res, err := Builder{}.Build(Input{
		RunCategories:      category.NewIndex("run-A"),
		InstanceCategories: category.NewIndex("g1.json"),
		Cells:              []Cell{{Run: "run-A", Instance: "g1.json", Value: leaderboard.Num(49)}},
	})
	require.NoError(t, err)

	raw, err := json.Marshal(res.Option)
	require.NoError(t, err)

	var generic map[string]any
	require.NoError(t, json.Unmarshal(raw, &generic))
	assert.Equal(t, map[string]any{"left": "center", "feature": map[string]any{"dataZoom": map[string]any{}}}, generic["toolbox"])

	xAxis := generic["xAxis"].([]any)
	heatX := xAxis[2].(map[string]any)
	assert.Equal(t, "category", heatX["type"])
	assert.Equal(t, float64(2), heatX["gridIndex"])
	assert.Equal(t, []any{"run-A"}, heatX["data"])

	series := generic["series"].([]any)
	heat := series[1].(map[string]any)
	assert.Equal(t, "Max crossings", heat["name"])
	assert.Equal(t, map[string]any{"show": true}, heat["label"])
}
