package dataset

import "strings"

// RowID is a row's position in the table at load time. It is only
// meaningful together with the revision of the Dataset it came from.
type RowID int

type Row struct {
	ID    RowID
	cells []string
}

func (r Row) Cell(i int) string {
	if i < 0 || i >= len(r.cells) {
		return ""
	}
	return r.cells[i]
}

func (r Row) Join(sep string) string {
	return strings.Join(r.cells, sep)
}

// String implements fmt.Stringer.
func (r Row) String() string {
	return r.Join("\t")
}
