package crossfilter

import (
	"math"
	"strings"

	"github.com/andareed/siftly-crossfilter/dataset"
)

// Point is one row as drawn in one view.
type Point struct {
	Row         dataset.RowID
	X, Y        float64
	Highlighted bool
}

// Axis describes one axis of a view. Min and Max span the finite values;
// both are NaN when there are none. Categories is set for categorical
// columns, whose values are indices into it.
type Axis struct {
	Column     string
	Label      string
	Mode       Mode
	Min, Max   float64
	Categories []string
}

// RenderDescriptor is everything a renderer needs to draw one view.
type RenderDescriptor struct {
	View        int
	Points      []Point // dataset order
	X, Y        Axis
	Height      int
	Highlighted int
}

// AxisLabel renders a column name for display: underscores become spaces
// and percentile axes get a " %" suffix.
func AxisLabel(column string, mode Mode) string {
	label := strings.ReplaceAll(column, "_", " ")
	if mode == ModePercentile {
		label += " %"
	}
	return label
}

// Build produces the descriptor for one view. Its output depends only on its
// arguments, so equal inputs give equal descriptors.
func Build(ds *dataset.Dataset, view int, vs ViewState, hs HighlightSet, cfg DisplayConfig) (RenderDescriptor, error) {
	return build(nil, ds, view, vs, hs, cfg)
}

func build(cache *transformCache, ds *dataset.Dataset, view int, vs ViewState, hs HighlightSet, cfg DisplayConfig) (RenderDescriptor, error) {
	if ds == nil || ds.NumColumns() == 0 {
		return RenderDescriptor{}, ErrNoData
	}
	if vs.X == "" || vs.Y == "" {
		return RenderDescriptor{}, ErrNoColumns
	}
	xs, err := cache.get(ds, vs.X, vs.Mode)
	if err != nil {
		return RenderDescriptor{}, err
	}
	ys, err := cache.get(ds, vs.Y, vs.Mode)
	if err != nil {
		return RenderDescriptor{}, err
	}

	d := RenderDescriptor{
		View:   view,
		Points: make([]Point, ds.Len()),
		X:      newAxis(vs.X, vs.Mode, xs),
		Y:      newAxis(vs.Y, vs.Mode, ys),
		Height: cfg.FigureHeight,
	}
	for i := range d.Points {
		id := dataset.RowID(i)
		lit := hs.Contains(id)
		d.Points[i] = Point{Row: id, X: xs.values[i], Y: ys.values[i], Highlighted: lit}
		if lit {
			d.Highlighted++
		}
	}
	return d, nil
}

func newAxis(column string, mode Mode, av axisValues) Axis {
	a := Axis{
		Column:     column,
		Label:      AxisLabel(column, mode),
		Mode:       mode,
		Min:        math.NaN(),
		Max:        math.NaN(),
		Categories: av.categories,
	}
	for _, v := range av.values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if math.IsNaN(a.Min) || v < a.Min {
			a.Min = v
		}
		if math.IsNaN(a.Max) || v > a.Max {
			a.Max = v
		}
	}
	return a
}
