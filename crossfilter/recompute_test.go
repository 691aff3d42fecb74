package crossfilter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecomputeWithoutDataset(t *testing.T) {
	res := Recompute(Snapshot{Display: DefaultDisplayConfig()})
	assert.Equal(t, uint64(0), res.Revision)
	assert.Equal(t, 0, res.Highlighted.Size())
	for i, f := range res.Figures {
		assert.ErrorIs(t, f.Err, ErrNoData, "view %d", i)
	}
}

func TestRecomputeMatchesBuild(t *testing.T) {
	ds := mustLoad(t, regionsTSV)
	snap := Snapshot{
		Dataset: ds,
		Views: [NumViews]ViewState{
			{X: "gc_content", Y: "depth", Selection: sel(0, 2)},
			{X: "mappability", Y: "copy_number", Selection: sel(0, 1)},
			{X: "mappability", Y: "copy_number", Mode: ModePercentile},
		},
		Display: DefaultDisplayConfig(),
	}

	res := Recompute(snap)
	assert.Equal(t, ds.Revision(), res.Revision)
	assert.Equal(t, ids(0), res.Highlighted.IDs())

	for i, f := range res.Figures {
		require.NoError(t, f.Err, "view %d", i)
		want, err := Build(ds, i, snap.Views[i], res.Highlighted, snap.Display)
		require.NoError(t, err)
		assert.Equal(t, want, f.Descriptor, "view %d", i)
		assert.Equal(t, 1, f.Descriptor.Highlighted)
	}

	assert.Equal(t, res, Recompute(snap), "same snapshot gives the same result")
}

func TestRecomputeIsolatesViewFailures(t *testing.T) {
	ds := mustLoad(t, regionsTSV)
	snap := Snapshot{
		Dataset: ds,
		Views: [NumViews]ViewState{
			{X: "gc_content", Y: "depth"},
			{X: "label", Y: "depth", Mode: ModePercentile},
			{X: "label", Y: "depth"},
		},
		Display: DefaultDisplayConfig(),
	}

	res := Recompute(snap)
	assert.NoError(t, res.Figures[0].Err)
	var nonNumeric *NonNumericTransformError
	assert.True(t, errors.As(res.Figures[1].Err, &nonNumeric))
	assert.NoError(t, res.Figures[2].Err)
	assert.Len(t, res.Figures[2].Descriptor.Points, 4)
}

func TestRecomputeWithCacheAgreesWithoutCache(t *testing.T) {
	ds := mustLoad(t, regionsTSV)
	snap := Snapshot{
		Dataset: ds,
		Views: [NumViews]ViewState{
			{X: "gc_content", Y: "depth", Mode: ModePercentile},
			{X: "depth", Y: "gc_content", Mode: ModePercentile, Selection: sel(1, 2, 3)},
			{X: "gc_content", Y: "depth"},
		},
		Display: DisplayConfig{FigureHeight: 700},
	}
	cache := newTransformCache()
	assert.Equal(t, Recompute(snap), recompute(cache, snap))
	assert.Equal(t, Recompute(snap), recompute(cache, snap))
}
