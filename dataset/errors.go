package dataset

import (
	"errors"
	"fmt"
)

// ErrSuperseded is returned by Store.Load when a newer load started before
// this one finished. The parsed table is discarded.
var ErrSuperseded = errors.New("dataset load superseded by a newer upload")

// ParseError reports an upload that could not be decoded as a table. The
// store's current dataset is never touched when one is returned.
type ParseError struct {
	Line   int // 1-based, 0 when not tied to a line
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Line > 0 {
		msg = fmt.Sprintf("parse error on line %d", e.Line)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error { return e.Err }
