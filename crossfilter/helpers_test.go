package crossfilter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/andareed/siftly-crossfilter/dataset"
)

const regionsTSV = "chrom\tstart\tstop\tgc_content\tdepth\tmappability\tcopy_number\tlabel\n" +
	"chr1\t0\t100\t0.41\t12\t0.9\t2\tpeak\n" +
	"chr1\t100\t200\t0.52\t20\t0.8\t3\tflank\n" +
	"chr2\t0\t50\t0.38\t30\t0.7\t2\tpeak\n" +
	"chr2\t50\t100\t0.60\t8\t0.95\t1\tgap\n"

func mustParse(t *testing.T, raw string) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.Parse(context.Background(), []byte(raw))
	require.NoError(t, err)
	return ds
}

func mustLoad(t *testing.T, raw string) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.NewStore().Load(context.Background(), []byte(raw))
	require.NoError(t, err)
	return ds
}

func ids(n ...int) []dataset.RowID {
	out := make([]dataset.RowID, len(n))
	for i, v := range n {
		out[i] = dataset.RowID(v)
	}
	return out
}

func sel(n ...int) Selection {
	return Select(ids(n...)...)
}
