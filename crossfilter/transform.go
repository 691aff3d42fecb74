package crossfilter

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/andareed/siftly-crossfilter/dataset"
)

type Mode int

const (
	ModeRaw Mode = iota
	ModePercentile
)

func (m Mode) String() string {
	switch m {
	case ModePercentile:
		return "percentile"
	default:
		return "raw"
	}
}

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "raw":
		return ModeRaw, nil
	case "percentile", "pct", "%":
		return ModePercentile, nil
	}
	return ModeRaw, fmt.Errorf("unknown transform mode %q (want raw or percentile)", s)
}

// Transform converts a numeric column to the given mode. The input is never
// modified.
func Transform(values []float64, mode Mode) []float64 {
	if mode == ModePercentile {
		return PercentileRanks(values)
	}
	return append([]float64(nil), values...)
}

// PercentileRanks maps every finite value to its zero-based average rank
// divided by n-1, so the smallest value is 0 and the largest is 1. Equal
// values share the mean of the ranks they span. NaN stays NaN and does not
// count towards n. A single value ranks 0.
func PercentileRanks(values []float64) []float64 {
	out := make([]float64, len(values))
	order := make([]int, 0, len(values))
	for i, v := range values {
		if math.IsNaN(v) {
			out[i] = math.NaN()
			continue
		}
		order = append(order, i)
	}
	n := len(order)
	if n == 0 {
		return out
	}
	sort.SliceStable(order, func(a, b int) bool { return values[order[a]] < values[order[b]] })

	denom := float64(n - 1)
	for start := 0; start < n; {
		end := start + 1
		for end < n && values[order[end]] == values[order[start]] {
			end++
		}
		// ranks start..end-1 tie; their mean is (start+end-1)/2
		rank := float64(start+end-1) / 2
		pct := 0.0
		if denom > 0 {
			pct = rank / denom
		}
		for _, idx := range order[start:end] {
			out[idx] = pct
		}
		start = end
	}
	return out
}

// NonNumericTransformError is returned when percentile ranks are requested
// for a column that does not hold numbers.
type NonNumericTransformError struct {
	Column string
}

func (e *NonNumericTransformError) Error() string {
	return fmt.Sprintf("column %q is not numeric: percentile mode needs numbers, pick raw mode or another column", e.Column)
}

// axisValues is one column rendered for one axis.
type axisValues struct {
	values     []float64
	categories []string // set when the column is categorical
}

// TransformColumn resolves a dataset column for plotting. Categorical columns
// are only valid in raw mode, where each distinct value becomes its index in
// first-appearance order.
func TransformColumn(ds *dataset.Dataset, name string, mode Mode) ([]float64, []string, error) {
	av, err := transformColumn(ds, name, mode)
	if err != nil {
		return nil, nil, err
	}
	return av.values, av.categories, nil
}

func transformColumn(ds *dataset.Dataset, name string, mode Mode) (axisValues, error) {
	col, ok := ds.Column(name)
	if !ok {
		return axisValues{}, &UnknownColumnError{Column: name}
	}
	if col.Numeric {
		nums, err := ds.Numbers(name)
		if err != nil {
			return axisValues{}, err
		}
		return axisValues{values: Transform(nums, mode)}, nil
	}
	if mode == ModePercentile {
		return axisValues{}, &NonNumericTransformError{Column: name}
	}
	strs, err := ds.Strings(name)
	if err != nil {
		return axisValues{}, err
	}
	codes := make([]float64, len(strs))
	index := map[string]int{}
	var cats []string
	for i, s := range strs {
		c, seen := index[s]
		if !seen {
			c = len(cats)
			index[s] = c
			cats = append(cats, s)
		}
		codes[i] = float64(c)
	}
	return axisValues{values: codes, categories: cats}, nil
}

type transformKey struct {
	revision uint64
	column   string
	mode     Mode
}

type transformResult struct {
	av  axisValues
	err error
}

// transformCache memoises resolved columns so a recompute only transforms
// columns whose (revision, column, mode) it has not seen. Entries of older
// revisions are dropped as soon as a newer revision is requested.
type transformCache struct {
	mu       sync.Mutex
	revision uint64
	entries  map[transformKey]transformResult
}

func newTransformCache() *transformCache {
	return &transformCache{entries: map[transformKey]transformResult{}}
}

func (c *transformCache) get(ds *dataset.Dataset, column string, mode Mode) (axisValues, error) {
	if c == nil {
		return transformColumn(ds, column, mode)
	}
	key := transformKey{revision: ds.Revision(), column: column, mode: mode}

	c.mu.Lock()
	if key.revision != c.revision {
		c.revision = key.revision
		c.entries = map[transformKey]transformResult{}
	}
	if r, ok := c.entries[key]; ok {
		c.mu.Unlock()
		return r.av, r.err
	}
	c.mu.Unlock()

	av, err := transformColumn(ds, column, mode)

	c.mu.Lock()
	if key.revision == c.revision {
		c.entries[key] = transformResult{av: av, err: err}
	}
	c.mu.Unlock()
	return av, err
}
