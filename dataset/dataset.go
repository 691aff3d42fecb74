package dataset

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Dataset is an immutable, fully parsed upload. It is replaced wholesale on
// every successful load and never patched.
type Dataset struct {
	revision uint64
	columns  []Column
	byName   map[string]int
	rows     []Row
	numbers  [][]float64 // per column, nil for non-numeric columns
}

// Empty returns a dataset with no columns and no rows at revision 0.
func Empty() *Dataset {
	return &Dataset{byName: map[string]int{}}
}

func newDataset(header []string, records [][]string) *Dataset {
	cols := make([]Column, len(header))
	byName := make(map[string]int, len(header))
	for i, raw := range header {
		name := strings.TrimSpace(raw)
		cols[i] = Column{
			Name:  name,
			Index: i,
			Role:  detectRole(name),
		}
		if _, dup := byName[name]; !dup {
			byName[name] = i
		}
	}

	rows := make([]Row, len(records))
	for i, rec := range records {
		rows[i] = Row{ID: RowID(i), cells: rec}
	}

	ds := &Dataset{
		columns: cols,
		byName:  byName,
		rows:    rows,
		numbers: make([][]float64, len(cols)),
	}
	for i := range cols {
		if vals, ok := ds.parseNumbers(i); ok {
			ds.numbers[i] = vals
			ds.columns[i].Numeric = true
		}
	}
	return ds
}

// parseNumbers converts column i to floats. A column with no parseable
// value at all is not numeric.
func (ds *Dataset) parseNumbers(i int) ([]float64, bool) {
	vals := make([]float64, len(ds.rows))
	seen := false
	for r, row := range ds.rows {
		cell := strings.TrimSpace(row.Cell(i))
		if isMissing(cell) {
			vals[r] = math.NaN()
			continue
		}
		f, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, false
		}
		vals[r] = f
		seen = true
	}
	return vals, seen || len(ds.rows) == 0
}

func (ds *Dataset) Revision() uint64 { return ds.revision }

func (ds *Dataset) Len() int { return len(ds.rows) }

func (ds *Dataset) NumColumns() int { return len(ds.columns) }

func (ds *Dataset) Columns() []Column {
	return append([]Column(nil), ds.columns...)
}

func (ds *Dataset) Column(name string) (Column, bool) {
	i, ok := ds.byName[name]
	if !ok {
		return Column{}, false
	}
	return ds.columns[i], true
}

func (ds *Dataset) HasColumn(name string) bool {
	_, ok := ds.byName[name]
	return ok
}

// MissingColumns returns the names not present in the header, in argument
// order.
func (ds *Dataset) MissingColumns(names ...string) []string {
	var missing []string
	for _, n := range names {
		if !ds.HasColumn(n) {
			missing = append(missing, n)
		}
	}
	return missing
}

func (ds *Dataset) Row(id RowID) (Row, bool) {
	if id < 0 || int(id) >= len(ds.rows) {
		return Row{}, false
	}
	return ds.rows[id], true
}

// Cell returns the raw text of a cell, or "" when either coordinate is out
// of range.
func (ds *Dataset) Cell(id RowID, name string) string {
	row, ok := ds.Row(id)
	if !ok {
		return ""
	}
	i, ok := ds.byName[name]
	if !ok {
		return ""
	}
	return row.Cell(i)
}

// Numbers returns the numeric values of a column in row order. The slice is
// shared with the dataset and must not be modified.
func (ds *Dataset) Numbers(name string) ([]float64, error) {
	i, ok := ds.byName[name]
	if !ok {
		return nil, fmt.Errorf("column %q not found", name)
	}
	if ds.numbers[i] == nil {
		return nil, fmt.Errorf("column %q is not numeric", name)
	}
	return ds.numbers[i], nil
}

// Strings returns the raw text of a column in row order.
func (ds *Dataset) Strings(name string) ([]string, error) {
	i, ok := ds.byName[name]
	if !ok {
		return nil, fmt.Errorf("column %q not found", name)
	}
	out := make([]string, len(ds.rows))
	for r, row := range ds.rows {
		out[r] = strings.TrimSpace(row.Cell(i))
	}
	return out, nil
}
