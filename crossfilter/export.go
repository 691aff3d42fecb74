package crossfilter

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/grailbio/base/tsv"

	"github.com/andareed/siftly-crossfilter/dataset"
)

// ExportFileName is the name offered for the exported regions.
const ExportFileName = "highlighted_region.bed"

// Export writes the chrom, start and stop of every highlighted row, one row
// per line in ascending row order, tab-separated and without a header. The
// fields are copied as they appeared in the upload.
func Export(ds *dataset.Dataset, hs HighlightSet) ([]byte, int, error) {
	if ds == nil {
		return nil, 0, ErrNoData
	}
	if missing := ds.MissingColumns(dataset.PositionColumns...); len(missing) > 0 {
		return nil, 0, &MissingColumnsError{Missing: missing}
	}

	var buf bytes.Buffer
	w := tsv.NewWriter(&buf)
	count := 0
	for _, id := range hs.IDs() {
		row, ok := ds.Row(id)
		if !ok {
			return nil, 0, fmt.Errorf("highlighted row %d not in dataset revision %d", id, ds.Revision())
		}
		for _, col := range dataset.PositionColumns {
			c, _ := ds.Column(col)
			w.WriteString(strings.TrimSpace(row.Cell(c.Index)))
		}
		if err := w.EndLine(); err != nil {
			return nil, 0, fmt.Errorf("write row %d: %w", id, err)
		}
		count++
	}
	if err := w.Flush(); err != nil {
		return nil, 0, fmt.Errorf("flush export: %w", err)
	}
	return buf.Bytes(), count, nil
}

// ExportMessage is the confirmation shown after an export.
func ExportMessage(count int) string {
	return fmt.Sprintf("Export %d regions", count)
}
