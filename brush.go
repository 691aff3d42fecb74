package main

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-crossfilter/crossfilter"
	"github.com/andareed/siftly-crossfilter/dataset"
	"github.com/andareed/siftly-crossfilter/logging"
)

const (
	brushStepDefault = 0.05
	brushStepMin     = 0.0125
	brushStepMax     = 0.4
)

// axisRange is a closed interval in axis units (raw values, category codes
// or percentile fractions).
type axisRange struct {
	lo, hi float64
}

func (r axisRange) width() float64 { return r.hi - r.lo }

func (r axisRange) contains(v float64) bool {
	return v >= r.lo && v <= r.hi
}

// brushState is a rectangle being drawn over one view. It is only turned
// into a selection when applied.
type brushState struct {
	open     bool
	view     int
	x, y     axisRange
	xFull    axisRange
	yFull    axisRange
	step     float64 // fraction of the full range moved per key press
	errorMsg string
}

// axisExtent is the drawable range of an axis. A degenerate axis is widened
// so that its single value sits in the middle.
func axisExtent(a crossfilter.Axis) (axisRange, bool) {
	if math.IsNaN(a.Min) || math.IsNaN(a.Max) {
		return axisRange{}, false
	}
	if a.Min == a.Max {
		return axisRange{lo: a.Min - 0.5, hi: a.Max + 0.5}, true
	}
	return axisRange{lo: a.Min, hi: a.Max}, true
}

// newBrush starts a brush over the middle half of the view.
func newBrush(view int, d crossfilter.RenderDescriptor) (brushState, error) {
	xFull, okX := axisExtent(d.X)
	yFull, okY := axisExtent(d.Y)
	if !okX || !okY {
		return brushState{}, fmt.Errorf("view %d has no finite values to brush", view+1)
	}
	b := brushState{
		open:  true,
		view:  view,
		xFull: xFull,
		yFull: yFull,
		step:  brushStepDefault,
	}
	b.x = axisRange{lo: xFull.lo + xFull.width()/4, hi: xFull.hi - xFull.width()/4}
	b.y = axisRange{lo: yFull.lo + yFull.width()/4, hi: yFull.hi - yFull.width()/4}
	return b, nil
}

func (b *brushState) stepFor(full axisRange) float64 {
	return full.width() * b.clampedStep()
}

func (b *brushState) clampedStep() float64 {
	step := b.step
	if step <= 0 {
		return brushStepDefault
	}
	return max(brushStepMin, min(brushStepMax, step))
}

func (b *brushState) adjustStep(increase bool) {
	step := b.clampedStep()
	if increase {
		step *= 2
	} else {
		step /= 2
	}
	b.step = max(brushStepMin, min(brushStepMax, step))
}

// move shifts the rectangle by dx, dy steps without leaving the axes.
func (b *brushState) move(dx, dy int) {
	b.x = shiftRange(b.x, b.xFull, float64(dx)*b.stepFor(b.xFull))
	b.y = shiftRange(b.y, b.yFull, float64(dy)*b.stepFor(b.yFull))
}

// resize grows (positive) or shrinks (negative) the rectangle around its
// centre by dx, dy steps.
func (b *brushState) resize(dx, dy int) {
	b.x = growRange(b.x, b.xFull, float64(dx)*b.stepFor(b.xFull))
	b.y = growRange(b.y, b.yFull, float64(dy)*b.stepFor(b.yFull))
}

func (b *brushState) reset() {
	b.x = b.xFull
	b.y = b.yFull
	b.errorMsg = ""
}

func shiftRange(r, full axisRange, delta float64) axisRange {
	if delta == 0 {
		return r
	}
	w := r.width()
	if w >= full.width() {
		return full
	}
	next := axisRange{lo: r.lo + delta, hi: r.hi + delta}
	if next.lo < full.lo {
		next = axisRange{lo: full.lo, hi: full.lo + w}
	}
	if next.hi > full.hi {
		next = axisRange{lo: full.hi - w, hi: full.hi}
	}
	return next
}

func growRange(r, full axisRange, delta float64) axisRange {
	if delta == 0 {
		return r
	}
	centre := (r.lo + r.hi) / 2
	half := max(0, r.width()/2+delta/2)
	return axisRange{lo: max(full.lo, centre-half), hi: min(full.hi, centre+half)}
}

// brushSelection returns every row whose point lies inside the rectangle.
// A rectangle that catches nothing is still an active, empty selection.
func brushSelection(d crossfilter.RenderDescriptor, b brushState) crossfilter.Selection {
	var ids []dataset.RowID
	for _, p := range d.Points {
		if b.x.contains(p.X) && b.y.contains(p.Y) {
			ids = append(ids, p.Row)
		}
	}
	return crossfilter.Select(ids...)
}

// --- model glue -------------------------------------------------------------

func (m *model) openBrush() tea.Cmd {
	view := m.ui.activeView
	fig := m.result.Figures[view]
	if fig.Err != nil {
		return m.startNotice(fmt.Sprintf("View %d: %v", view+1, fig.Err), noticeWarn, noticeDuration)
	}
	b, err := newBrush(view, fig.Descriptor)
	if err != nil {
		return m.startNotice(err.Error(), noticeWarn, noticeDuration)
	}
	m.ui.brush = b
	m.ui.mode = modeBrush
	logging.Debugf("brush: opened on view %d x=%v y=%v", view+1, b.x, b.y)
	return nil
}

func (m *model) closeBrush() {
	m.ui.brush = brushState{}
	m.ui.mode = modeView
}

func (m *model) applyBrush() tea.Cmd {
	b := m.ui.brush
	fig := m.result.Figures[b.view]
	sel := brushSelection(fig.Descriptor, b)
	m.closeBrush()
	return m.dispatch(crossfilter.SetSelection{View: b.view, Selection: sel, Revision: m.result.Revision},
		fmt.Sprintf("View %d: selected %s", b.view+1, sel))
}

func (m *model) handleBrushKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	b := &m.ui.brush
	b.errorMsg = ""

	switch {
	case key.Matches(msg, BrushKeys.Cancel):
		m.closeBrush()
		return m, nil
	case key.Matches(msg, BrushKeys.Apply):
		return m, m.applyBrush()
	case key.Matches(msg, BrushKeys.Reset):
		b.reset()
		return m, nil
	case key.Matches(msg, BrushKeys.Step):
		b.adjustStep(msg.String() != "-")
		return m, nil
	}

	switch msg.String() {
	case "left", "h":
		b.move(-1, 0)
	case "right", "l":
		b.move(1, 0)
	case "down", "j":
		b.move(0, -1)
	case "up", "k":
		b.move(0, 1)
	case "shift+left", "H":
		b.resize(-1, 0)
	case "shift+right", "L":
		b.resize(1, 0)
	case "shift+down", "J":
		b.resize(0, -1)
	case "shift+up", "K":
		b.resize(0, 1)
	}
	return m, nil
}
