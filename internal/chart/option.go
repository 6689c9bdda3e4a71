// internal/chart/option.go
// Package chart describes the dashboard chart as a typed ECharts option and
// builds it from category indices and per-run values.
package chart

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidOption is returned when an Option violates its own structure,
// e.g. a series pointing at an axis that does not exist.
var ErrInvalidOption = errors.New("invalid chart option")

type AxisType string

const (
	AxisValue    AxisType = "value"
	AxisCategory AxisType = "category"
)

type SeriesType string

const (
	SeriesScatter SeriesType = "scatter"
	SeriesHeatmap SeriesType = "heatmap"
)

// Option is the complete configuration handed to the charting library.
// It is built once per document and not modified afterwards.
type Option struct {
	Tooltip   Tooltip    `json:"tooltip"`
	Legend    Legend     `json:"legend"`
	Toolbox   Toolbox    `json:"toolbox"`
	VisualMap *VisualMap `json:"visualMap,omitempty"`
	Grid      []Grid     `json:"grid"`
	XAxis     []Axis     `json:"xAxis"`
	YAxis     []Axis     `json:"yAxis"`
	Series    []Series   `json:"series"`
}

type Tooltip struct{}

type Legend struct{}

type Toolbox struct {
	Left    string         `json:"left,omitempty"`
	Feature ToolboxFeature `json:"feature"`
}

type ToolboxFeature struct {
	DataZoom *DataZoom `json:"dataZoom,omitempty"`
}

type DataZoom struct{}

// VisualMap maps heatmap values onto colours.
type VisualMap struct {
	Show        bool    `json:"show"`
	Min         float64 `json:"min"`
	Max         float64 `json:"max"`
	SeriesIndex int     `json:"seriesIndex"`
}

// Grid positions one panel on the canvas using percentage offsets.
type Grid struct {
	Left   string `json:"left,omitempty"`
	Right  string `json:"right,omitempty"`
	Top    string `json:"top,omitempty"`
	Bottom string `json:"bottom,omitempty"`
}

type Axis struct {
	Type      AxisType   `json:"type,omitempty"`
	GridIndex int        `json:"gridIndex"`
	Name      string     `json:"name,omitempty"`
	Scale     bool       `json:"scale,omitempty"`
	SplitArea *SplitArea `json:"splitArea,omitempty"`
	AxisLabel *AxisLabel `json:"axisLabel,omitempty"`
	Data      []string   `json:"data,omitempty"`
}

type SplitArea struct {
	Show bool `json:"show"`
}

type AxisLabel struct {
	FontSize float64 `json:"fontSize,omitempty"`
}

type Label struct {
	Show bool `json:"show"`
}

type Series struct {
	Type       SeriesType `json:"type"`
	Name       string     `json:"name,omitempty"`
	XAxisIndex int        `json:"xAxisIndex"`
	YAxisIndex int        `json:"yAxisIndex"`
	Label      *Label     `json:"label,omitempty"`
	Data       []Point    `json:"data"`
}

// Point is one data item: [x, y] for scatter, [x, y, value] for heatmap.
type Point []float64

func (a Axis) isCategory() bool { return a.Type == AxisCategory }

// Validate checks every cross reference inside the option: axes point at
// existing grids, series point at an axis pair on the same grid, values are
// finite, and heatmap cells sit inside their category axes.
func (o Option) Validate() error {
	if len(o.Grid) == 0 {
		return fmt.Errorf("%w: no grids", ErrInvalidOption)
	}
	for _, set := range []struct {
		name string
		axes []Axis
	}{{"xAxis", o.XAxis}, {"yAxis", o.YAxis}} {
		name := set.name
		for i, axis := range set.axes {
			if axis.GridIndex < 0 || axis.GridIndex >= len(o.Grid) {
				return fmt.Errorf("%w: %s[%d] references grid %d of %d", ErrInvalidOption, name, i, axis.GridIndex, len(o.Grid))
			}
			if axis.isCategory() && axis.Scale {
				return fmt.Errorf("%w: %s[%d] is categorical and scaled", ErrInvalidOption, name, i)
			}
		}
	}

	for i, s := range o.Series {
		if s.XAxisIndex < 0 || s.XAxisIndex >= len(o.XAxis) || s.YAxisIndex < 0 || s.YAxisIndex >= len(o.YAxis) {
			return fmt.Errorf("%w: series[%d] references missing axis", ErrInvalidOption, i)
		}
		x, y := o.XAxis[s.XAxisIndex], o.YAxis[s.YAxisIndex]
		if x.GridIndex != y.GridIndex {
			return fmt.Errorf("%w: series[%d] axes on grids %d and %d", ErrInvalidOption, i, x.GridIndex, y.GridIndex)
		}
		if s.Data == nil {
			return fmt.Errorf("%w: series[%d] has nil data", ErrInvalidOption, i)
		}

		switch s.Type {
		case SeriesScatter:
			for j, p := range s.Data {
				if len(p) != 2 || !finite(p...) {
					return fmt.Errorf("%w: series[%d] point %d is not a finite [x, y]", ErrInvalidOption, i, j)
				}
			}
		case SeriesHeatmap:
			if !x.isCategory() || !y.isCategory() {
				return fmt.Errorf("%w: heatmap series[%d] needs categorical axes", ErrInvalidOption, i)
			}
			for j, p := range s.Data {
				if len(p) != 3 || !finite(p...) {
					return fmt.Errorf("%w: series[%d] cell %d is not a finite [x, y, value]", ErrInvalidOption, i, j)
				}
				if !inCategory(p[0], len(x.Data)) || !inCategory(p[1], len(y.Data)) {
					return fmt.Errorf("%w: series[%d] cell %d outside category axes", ErrInvalidOption, i, j)
				}
			}
		default:
			return fmt.Errorf("%w: series[%d] has unknown type %q", ErrInvalidOption, i, s.Type)
		}
	}
	return nil
}

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func inCategory(v float64, n int) bool {
	return v >= 0 && v < float64(n) && v == math.Trunc(v)
}
