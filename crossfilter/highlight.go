package crossfilter

import (
	"fmt"

	"github.com/andareed/siftly-crossfilter/dataset"
)

// HighlightSet is the set of rows every active selection agrees on, over a
// dataset of a fixed size.
type HighlightSet struct {
	member []bool
	count  int
}

// Full returns the set holding every row of an n-row dataset.
func Full(n int) HighlightSet {
	member := make([]bool, n)
	for i := range member {
		member[i] = true
	}
	return HighlightSet{member: member, count: n}
}

// Intersect starts from the full range [0, n) and narrows it by every
// selection that is not None. Rows outside the range are ignored.
func Intersect(n int, sels ...Selection) HighlightSet {
	hs := Full(n)
	for _, sel := range sels {
		if sel.IsNone() {
			continue
		}
		keep := make([]bool, n)
		for _, id := range sel.ids {
			if id >= 0 && int(id) < n {
				keep[id] = true
			}
		}
		hs.count = 0
		for i := range hs.member {
			hs.member[i] = hs.member[i] && keep[i]
			if hs.member[i] {
				hs.count++
			}
		}
	}
	return hs
}

// Size is the number of rows in the underlying dataset.
func (h HighlightSet) Size() int { return len(h.member) }

// Len is the number of highlighted rows.
func (h HighlightSet) Len() int { return h.count }

func (h HighlightSet) Contains(id dataset.RowID) bool {
	return id >= 0 && int(id) < len(h.member) && h.member[id]
}

// IDs lists the highlighted rows in ascending order.
func (h HighlightSet) IDs() []dataset.RowID {
	out := make([]dataset.RowID, 0, h.count)
	for i, in := range h.member {
		if in {
			out = append(out, dataset.RowID(i))
		}
	}
	return out
}

func (h HighlightSet) String() string {
	return fmt.Sprintf("%d/%d highlighted", h.count, len(h.member))
}

func fmtCount(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
