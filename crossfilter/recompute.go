package crossfilter

import (
	"golang.org/x/sync/errgroup"

	"github.com/andareed/siftly-crossfilter/dataset"
)

// Snapshot is every input the derived outputs depend on.
type Snapshot struct {
	Dataset *dataset.Dataset
	Views   [NumViews]ViewState
	Display DisplayConfig
}

// Figure is one view's output: a descriptor, or the reason it cannot be drawn.
type Figure struct {
	Descriptor RenderDescriptor
	Err        error
}

// Result is everything derived from one Snapshot.
type Result struct {
	Revision    uint64
	Highlighted HighlightSet
	Figures     [NumViews]Figure
}

// Selections returns the three views' selections in view order.
func (s Snapshot) Selections() []Selection {
	sels := make([]Selection, NumViews)
	for i, v := range s.Views {
		sels[i] = v.Selection
	}
	return sels
}

// Recompute derives the highlighted set and all three descriptors from snap.
// A view that cannot be built carries its error; the others are unaffected.
func Recompute(snap Snapshot) Result {
	return recompute(nil, snap)
}

func recompute(cache *transformCache, snap Snapshot) Result {
	ds := snap.Dataset
	if ds == nil {
		ds = dataset.Empty()
	}
	res := Result{
		Revision:    ds.Revision(),
		Highlighted: Intersect(ds.Len(), snap.Selections()...),
	}

	var g errgroup.Group
	for i := range snap.Views {
		g.Go(func() error {
			d, err := build(cache, ds, i, snap.Views[i], res.Highlighted, snap.Display)
			res.Figures[i] = Figure{Descriptor: d, Err: err}
			return nil
		})
	}
	g.Wait()
	return res
}
