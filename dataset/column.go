package dataset

import "strings"

type ColumnRole int

const (
	RoleMetric    ColumnRole = iota
	RolePosition             // chrom, start, stop
	RoleAuxiliary            // size, mid
)

const (
	ColChrom = "chrom"
	ColStart = "start"
	ColStop  = "stop"
	ColSize  = "size"
	ColMid   = "mid"
)

// PositionColumns are the columns a BED export needs, in output order.
var PositionColumns = []string{ColChrom, ColStart, ColStop}

type Column struct {
	Name    string
	Index   int
	Role    ColumnRole
	Numeric bool
}

// Selectable reports whether the column may be put on a plot axis.
func (c Column) Selectable() bool {
	return c.Role == RoleMetric
}

func detectRole(name string) ColumnRole {
	switch strings.TrimSpace(name) {
	case ColChrom, ColStart, ColStop:
		return RolePosition
	case ColSize, ColMid:
		return RoleAuxiliary
	default:
		return RoleMetric
	}
}

// SelectableColumns returns the names of every column that is not a fixed
// position or auxiliary column, in source order.
func SelectableColumns(ds *Dataset) []string {
	if ds == nil {
		return nil
	}
	var out []string
	for _, c := range ds.columns {
		if c.Selectable() {
			out = append(out, c.Name)
		}
	}
	return out
}

// missing cells become NaN in numeric columns
func isMissing(cell string) bool {
	switch cell {
	case "", "NA", "N/A", "NaN", "nan", "na":
		return true
	}
	return false
}
