// internal/chart/builder.go
package chart

import (
	"fmt"

	"github.com/mwiater/crossboard/internal/category"
	"github.com/mwiater/crossboard/internal/leaderboard"
)

// Panel identifies one of the four grids sharing the canvas.
type Panel int

const (
	PanelScatter Panel = iota
	PanelReservedTop
	PanelHeatmap
	PanelReservedBottom
	panelCount
)

// Series positions inside Option.Series.
const (
	scatterSeriesIndex = 0
	heatmapSeriesIndex = 1
)

// Axis and series names shown on the dashboard.
const (
	TimestampAxisName = "Timestamp of run"
	ScoreAxisName     = "Max Edge Crossings"
	UnusedAxisName    = "Unused"
	RunAxisName       = "Run #"
	InstanceAxisName  = "Graph Name"
	HeatmapSeriesName = "Max crossings"

	instanceLabelFontSize = 8
)

// layout is the fixed 2x2 arrangement: scatter top-left, heatmap
// bottom-left, reserved panels on the right.
var layout = [panelCount]Grid{
	PanelScatter:        {Right: "57%", Bottom: "57%"},
	PanelReservedTop:    {Left: "57%", Bottom: "57%"},
	PanelHeatmap:        {Right: "57%", Top: "57%"},
	PanelReservedBottom: {Left: "57%", Top: "57%"},
}

// Cell is one measurement addressed by category value.
type Cell struct {
	Run      string
	Instance string
	Value    leaderboard.Number
}

// Input is everything the chart is derived from.
type Input struct {
	RunCategories      *category.Index
	InstanceCategories *category.Index
	// Scatter holds one [timestamp, score] pair per run that has both.
	Scatter []Point
	Cells   []Cell
}

// Dropped is a cell that could not be placed on the heatmap.
type Dropped struct {
	Cell   Cell
	Reason string
}

// Result is a built option plus what was left out of it.
type Result struct {
	Option  Option
	Dropped []Dropped
	// NoData counts cells omitted because their value was missing or
	// non-numeric.
	NoData int
}

// Builder assembles the four-panel option.
type Builder struct {
	// Warn is told about every dropped cell. Nil discards warnings.
	Warn func(format string, args ...any)
}

// Build resolves every cell against the category indices and returns a
// validated option. A cell whose run or instance is not indexed is dropped
// and reported; it is never placed at a default position.
func (b Builder) Build(in Input) (Result, error) {
	var res Result

	heatmap := make([]Point, 0, len(in.Cells))
	slots := make(map[[2]int]int, len(in.Cells))
	for _, cell := range in.Cells {
		runPos, ok := in.RunCategories.Position(cell.Run)
		if !ok {
			res.Dropped = append(res.Dropped, b.drop(cell, "run not in categories"))
			continue
		}
		instPos, ok := in.InstanceCategories.Position(cell.Instance)
		if !ok {
			res.Dropped = append(res.Dropped, b.drop(cell, "instance not in categories"))
			continue
		}
		if !cell.Value.Valid {
			res.NoData++
			continue
		}

		key := [2]int{runPos, instPos}
		if slot, seen := slots[key]; seen {
			b.warn("run %q instance %q measured twice; keeping the lower value", cell.Run, cell.Instance)
			if cell.Value.Value < heatmap[slot][2] {
				heatmap[slot][2] = cell.Value.Value
			}
			continue
		}
		slots[key] = len(heatmap)
		heatmap = append(heatmap, Point{float64(runPos), float64(instPos), cell.Value.Value})
	}

	scatter := make([]Point, 0, len(in.Scatter))
	for _, p := range in.Scatter {
		scatter = append(scatter, append(Point(nil), p...))
	}

	res.Option = Option{
		Toolbox: Toolbox{
			Left:    "center",
			Feature: ToolboxFeature{DataZoom: &DataZoom{}},
		},
		VisualMap: heatmapVisualMap(heatmap),
		Grid:      append([]Grid(nil), layout[:]...),
		XAxis: []Axis{
			{GridIndex: int(PanelScatter), Name: TimestampAxisName, Scale: true},
			{GridIndex: int(PanelReservedTop), Name: UnusedAxisName, Scale: true},
			{
				Type:      AxisCategory,
				GridIndex: int(PanelHeatmap),
				Name:      RunAxisName,
				SplitArea: &SplitArea{Show: true},
				Data:      in.RunCategories.Values(),
			},
			{GridIndex: int(PanelReservedBottom), Name: UnusedAxisName, Scale: true},
		},
		YAxis: []Axis{
			{GridIndex: int(PanelScatter), Name: ScoreAxisName, Scale: true},
			{GridIndex: int(PanelReservedTop), Name: UnusedAxisName, Scale: true},
			{
				Type:      AxisCategory,
				GridIndex: int(PanelHeatmap),
				Name:      InstanceAxisName,
				AxisLabel: &AxisLabel{FontSize: instanceLabelFontSize},
				SplitArea: &SplitArea{Show: true},
				Data:      in.InstanceCategories.Values(),
			},
			{GridIndex: int(PanelReservedBottom), Name: UnusedAxisName, Scale: true},
		},
		Series: []Series{
			scatterSeriesIndex: {
				Type:       SeriesScatter,
				XAxisIndex: int(PanelScatter),
				YAxisIndex: int(PanelScatter),
				Data:       scatter,
			},
			heatmapSeriesIndex: {
				Type:       SeriesHeatmap,
				Name:       HeatmapSeriesName,
				XAxisIndex: int(PanelHeatmap),
				YAxisIndex: int(PanelHeatmap),
				Label:      &Label{Show: true},
				Data:       heatmap,
			},
		},
	}

	if err := res.Option.Validate(); err != nil {
		return Result{}, fmt.Errorf("build chart option: %w", err)
	}
	return res, nil
}

func (b Builder) drop(cell Cell, reason string) Dropped {
	b.warn("dropping heatmap cell run=%q instance=%q: %s", cell.Run, cell.Instance, reason)
	return Dropped{Cell: cell, Reason: reason}
}

func (b Builder) warn(format string, args ...any) {
	if b.Warn != nil {
		b.Warn(format, args...)
	}
}

func heatmapVisualMap(cells []Point) *VisualMap {
	vm := &VisualMap{SeriesIndex: heatmapSeriesIndex}
	for i, c := range cells {
		v := c[2]
		if i == 0 || v < vm.Min {
			vm.Min = v
		}
		if i == 0 || v > vm.Max {
			vm.Max = v
		}
	}
	return vm
}
