package crossfilter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExport(t *testing.T) {
	ds := mustParse(t, regionsTSV)
	hs := Intersect(ds.Len(), sel(2, 0, 1))

	payload, count, err := Export(ds, hs)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.Equal(t, "chr1\t0\t100\nchr1\t100\t200\nchr2\t0\t50\n", string(payload))
	assert.Equal(t, "Export 3 regions", ExportMessage(count))

	again, againCount, err := Export(ds, hs)
	require.NoError(t, err)
	assert.Equal(t, payload, again)
	assert.Equal(t, count, againCount)
}

func TestExportFullAndEmpty(t *testing.T) {
	ds := mustParse(t, regionsTSV)

	payload, count, err := Export(ds, Full(ds.Len()))
	require.NoError(t, err)
	assert.Equal(t, 4, count)
	assert.Equal(t, "chr1\t0\t100\nchr1\t100\t200\nchr2\t0\t50\nchr2\t50\t100\n", string(payload))

	payload, count, err = Export(ds, Intersect(ds.Len(), Select()))
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.Empty(t, payload)
	assert.Equal(t, "Export 0 regions", ExportMessage(count))
}

func TestExportKeepsFieldsVerbatim(t *testing.T) {
	ds := mustParse(t, "chrom\tstart\tstop\tscore\nchrX\t000100\t2e3\t1\n")
	payload, _, err := Export(ds, Full(1))
	require.NoError(t, err)
	assert.Equal(t, "chrX\t000100\t2e3\n", string(payload))
}

func TestExportMissingColumns(t *testing.T) {
	ds := mustParse(t, "chrom\tscore\nchr1\t1\n")
	payload, count, err := Export(ds, Full(1))

	var missing *MissingColumnsError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, []string{"start", "stop"}, missing.Missing)
	assert.Contains(t, err.Error(), "start, stop")
	assert.Nil(t, payload)
	assert.Zero(t, count)
}

func TestExportNoDataset(t *testing.T) {
	_, _, err := Export(nil, HighlightSet{})
	assert.ErrorIs(t, err, ErrNoData)
}
