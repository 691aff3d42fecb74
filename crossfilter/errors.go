package crossfilter

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoData is reported for a view when there is nothing to plot yet.
	ErrNoData = errors.New("no dataset loaded")
	// ErrNoColumns is reported for a view when the dataset has no selectable columns.
	ErrNoColumns = errors.New("dataset has no plottable columns")
)

// UnknownColumnError names a column a view asked for that the current
// dataset does not have. Sessions recover from it by falling back to the
// view's default axes.
type UnknownColumnError struct {
	Column string
}

func (e *UnknownColumnError) Error() string {
	return fmt.Sprintf("unknown column %q", e.Column)
}

// MissingColumnsError is returned by Export when the dataset lacks one or
// more of the BED position columns.
type MissingColumnsError struct {
	Missing []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("cannot export regions: dataset is missing column(s) %s", strings.Join(e.Missing, ", "))
}

// ViewError is returned by Dispatch for a view index outside 0..NumViews-1.
type ViewError struct {
	View int
}

func (e *ViewError) Error() string {
	return fmt.Sprintf("view %d out of range (have %d views)", e.View, NumViews)
}

// StaleSelectionError is returned by Dispatch for a selection whose row ids
// were taken from a dataset revision other than the current one.
type StaleSelectionError struct {
	View     int
	Revision uint64
	Current  uint64
}

func (e *StaleSelectionError) Error() string {
	return fmt.Sprintf("view %d: selection from dataset revision %d, current is %d", e.View+1, e.Revision, e.Current)
}
