package crossfilter

import (
	"sort"

	"github.com/andareed/siftly-crossfilter/dataset"
)

// Selection is what one view contributes to the highlighted set. The zero
// value is None: the view places no constraint. A Selection made with Select
// is active even when it holds no rows, in which case it excludes every row.
type Selection struct {
	active bool
	ids    []dataset.RowID // sorted, unique
}

// None is the "no constraint" selection.
func None() Selection { return Selection{} }

// Select builds an active selection from ids. Duplicates are dropped.
func Select(ids ...dataset.RowID) Selection {
	sorted := append([]dataset.RowID(nil), ids...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	out := sorted[:0]
	for i, id := range sorted {
		if i > 0 && id == sorted[i-1] {
			continue
		}
		out = append(out, id)
	}
	return Selection{active: true, ids: out}
}

func (s Selection) IsNone() bool { return !s.active }

func (s Selection) Len() int { return len(s.ids) }

func (s Selection) Contains(id dataset.RowID) bool {
	i := sort.Search(len(s.ids), func(i int) bool { return s.ids[i] >= id })
	return i < len(s.ids) && s.ids[i] == id
}

// IDs returns the selected rows in ascending order, nil for None.
func (s Selection) IDs() []dataset.RowID {
	if !s.active {
		return nil
	}
	return append([]dataset.RowID{}, s.ids...)
}

func (s Selection) String() string {
	if !s.active {
		return "none"
	}
	return fmtCount(len(s.ids), "row")
}
