package main

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/andareed/siftly-crossfilter/config"
	"github.com/andareed/siftly-crossfilter/crossfilter"
)

const regionsTSV = "chrom\tstart\tstop\tgc_content\tdepth\tmappability\tcopy_number\n" +
	"chr1\t0\t100\t0.41\t12\t0.9\t2\n" +
	"chr1\t100\t200\t0.52\t20\t0.8\t3\n" +
	"chr2\t0\t50\t0.38\t30\t0.7\t2\n" +
	"chr2\t50\t100\t0.60\t8\t0.95\t1\n"

func writeTSV(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "regions.tsv")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func testModel(t *testing.T) *model {
	t.Helper()
	session := crossfilter.NewSession(crossfilter.DefaultDisplayConfig())
	m := newModel(context.Background(), session, config.Default(), "")
	m.Update(tea.WindowSizeMsg{Width: 160, Height: 48})
	return m
}

// loadedModel runs a real background load of regionsTSV through Update.
func loadedModel(t *testing.T) *model {
	t.Helper()
	m := testModel(t)
	m.filePath = writeTSV(t, regionsTSV)
	msg := m.Init()()
	m.Update(msg)
	require.Equal(t, uint64(1), m.result.Revision)
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m *model, keys ...tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = m.Update(k)
	}
	return cmd
}

func nan() float64 { return math.NaN() }
