package dataset

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// MinColumns is the smallest header Parse accepts.
const MinColumns = 2

// how often Parse looks at its context
const cancelCheckEvery = 4096

// Parse decodes a tab-separated table with a header row. The returned
// dataset has revision 0; Store assigns revisions on commit.
func Parse(ctx context.Context, raw []byte) (*Dataset, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, &ParseError{Reason: "empty upload"}
	}
	if !utf8.Valid(raw) {
		return nil, &ParseError{Reason: "upload is not valid UTF-8"}
	}

	// BOMOverride drops a leading byte order mark and passes the rest through.
	dec := transform.NewReader(bytes.NewReader(raw), unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	r := csv.NewReader(dec)
	r.Comma = '\t'
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		return nil, asParseError(err)
	}
	if err := checkHeader(header); err != nil {
		return nil, err
	}
	r.FieldsPerRecord = len(header)

	var records [][]string
	for n := 0; ; n++ {
		if n%cancelCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, asParseError(err)
		}
		records = append(records, rec)
	}

	return newDataset(header, records), nil
}

func checkHeader(header []string) error {
	if len(header) < MinColumns {
		return &ParseError{Line: 1, Reason: "table needs at least 2 tab-separated columns"}
	}
	seen := make(map[string]bool, len(header))
	selectable := 0
	for _, raw := range header {
		name := strings.TrimSpace(raw)
		if name == "" {
			return &ParseError{Line: 1, Reason: "header has an empty column name"}
		}
		if seen[name] {
			return &ParseError{Line: 1, Reason: "duplicate column " + name}
		}
		seen[name] = true
		if detectRole(name) == RoleMetric {
			selectable++
		}
	}
	if selectable == 0 {
		return &ParseError{Line: 1, Reason: "no plottable columns besides chrom/start/stop/size/mid"}
	}
	return nil
}

func asParseError(err error) error {
	if err == io.EOF {
		return &ParseError{Reason: "missing header row"}
	}
	var csvErr *csv.ParseError
	if errors.As(err, &csvErr) {
		return &ParseError{Line: csvErr.StartLine, Err: csvErr.Err}
	}
	return &ParseError{Err: err}
}
