package crossfilter

import (
	"slices"

	"github.com/andareed/siftly-crossfilter/logging"
)

// NumViews is the number of linked scatterplots.
const NumViews = 3

// ViewState is one view's configuration plus its latest brushed selection.
type ViewState struct {
	X         string
	Y         string
	Mode      Mode
	Selection Selection
}

// DefaultAxes picks the starting columns for a view. The first view shows
// columns 0 and 1; the other two show columns 2 and 3 when there are at
// least four, otherwise they share the first view's pair. With a single
// column both axes use it.
func DefaultAxes(view int, selectable []string) (x, y string) {
	switch len(selectable) {
	case 0:
		return "", ""
	case 1:
		return selectable[0], selectable[0]
	}
	if view > 0 && len(selectable) >= 4 {
		return selectable[2], selectable[3]
	}
	return selectable[0], selectable[1]
}

// DefaultViewState is a fresh view: default axes, raw mode, no selection.
func DefaultViewState(view int, selectable []string) ViewState {
	x, y := DefaultAxes(view, selectable)
	return ViewState{X: x, Y: y, Mode: ModeRaw}
}

// Reconcile replaces any axis that is not in selectable with that axis'
// default. It reports an UnknownColumnError for the first replaced column so
// callers can log it; the returned state is always usable.
func (v ViewState) Reconcile(view int, selectable []string) (ViewState, error) {
	dx, dy := DefaultAxes(view, selectable)
	var err error
	if !slices.Contains(selectable, v.X) {
		if v.X != "" {
			err = &UnknownColumnError{Column: v.X}
		}
		v.X = dx
	}
	if !slices.Contains(selectable, v.Y) {
		if v.Y != "" && err == nil {
			err = &UnknownColumnError{Column: v.Y}
		}
		v.Y = dy
	}
	if err != nil {
		logging.Warnf("view %d: %v, falling back to %s/%s", view+1, err, v.X, v.Y)
	}
	return v, err
}

// WithSelection replaces the selection outright.
func (v ViewState) WithSelection(sel Selection) ViewState {
	v.Selection = sel
	return v
}
