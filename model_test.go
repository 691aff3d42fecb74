package main

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andareed/siftly-crossfilter/crossfilter"
	"github.com/andareed/siftly-crossfilter/dataset"
	"github.com/andareed/siftly-crossfilter/dialogs"
)

func TestModelStartsEmpty(t *testing.T) {
	m := testModel(t)
	assert.Nil(t, m.Init())

	out := m.View()
	assert.Contains(t, out, "No dataset loaded")
	assert.Contains(t, out, "Highlighted 0/0")
}

func TestModelLoadsFile(t *testing.T) {
	m := loadedModel(t)

	assert.Equal(t, []string{"gc_content", "depth", "mappability", "copy_number"}, m.selectable)
	assert.Equal(t, noticeSuccess, m.ui.noticeKind)
	assert.Contains(t, m.ui.noticeMsg, "4 rows")

	out := m.View()
	assert.Contains(t, out, "1 gc content × depth")
	assert.Contains(t, out, "2 mappability × copy number")
	assert.Contains(t, out, "Highlighted 4/4")
	assert.Contains(t, out, "regions.tsv")
}

func TestModelLoadFailureShowsDialog(t *testing.T) {
	m := loadedModel(t)
	path := writeTSV(t, "chrom\n")

	m.Update(m.loadFileCmd(path)())
	require.NotNil(t, m.activeDialog)
	msg, ok := m.activeDialog.(*dialogs.Message)
	require.True(t, ok)
	assert.Contains(t, msg.Body(), "column")

	// the earlier dataset is still shown
	assert.Equal(t, uint64(1), m.result.Revision)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	m.Update(cmd())
	assert.Nil(t, m.activeDialog)
}

func TestModelIgnoresSupersededLoad(t *testing.T) {
	m := loadedModel(t)
	path := m.filePath

	m.Update(datasetLoadedMsg{path: "/tmp/older.tsv", err: fmt.Errorf("load: %w", dataset.ErrSuperseded)})
	assert.Nil(t, m.activeDialog)
	assert.Equal(t, path, m.filePath)
	assert.Equal(t, uint64(1), m.result.Revision)
}

func TestViewKeys(t *testing.T) {
	m := loadedModel(t)

	press(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 1, m.ui.activeView)
	press(m, tea.KeyMsg{Type: tea.KeyShiftTab}, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, 2, m.ui.activeView)
	press(m, runes("1"))
	assert.Equal(t, 0, m.ui.activeView)

	press(m, runes("]"))
	assert.Equal(t, "depth", m.session.Snapshot().Views[0].X)
	press(m, runes("["), runes("["))
	assert.Equal(t, "copy_number", m.session.Snapshot().Views[0].X)
	press(m, runes("}"))
	assert.Equal(t, "mappability", m.session.Snapshot().Views[0].Y)

	press(m, runes("p"))
	assert.Equal(t, crossfilter.ModePercentile, m.session.Snapshot().Views[0].Mode)
	press(m, runes("p"))
	assert.Equal(t, crossfilter.ModeRaw, m.session.Snapshot().Views[0].Mode)
}

func TestFigureHeightKeys(t *testing.T) {
	m := loadedModel(t)

	press(m, runes("+"))
	assert.Equal(t, 650, m.session.Snapshot().Display.FigureHeight)
	for range 10 {
		press(m, runes("+"))
	}
	assert.Equal(t, crossfilter.MaxFigureHeight, m.session.Snapshot().Display.FigureHeight)
	for range 10 {
		press(m, runes("-"))
	}
	assert.Equal(t, crossfilter.MinFigureHeight, m.session.Snapshot().Display.FigureHeight)
	assert.Contains(t, m.ui.noticeMsg, "stays")
}

func TestClearSelections(t *testing.T) {
	m := loadedModel(t)
	press(m, runes("b"), tea.KeyMsg{Type: tea.KeyEnter})
	press(m, runes("2"), runes("b"), runes("H"), tea.KeyMsg{Type: tea.KeyEnter})
	require.False(t, m.session.Snapshot().Views[1].Selection.IsNone())

	press(m, runes("c"))
	assert.True(t, m.session.Snapshot().Views[1].Selection.IsNone())
	assert.False(t, m.session.Snapshot().Views[0].Selection.IsNone())

	press(m, runes("C"))
	for _, v := range m.session.Snapshot().Views {
		assert.True(t, v.Selection.IsNone())
	}
	assert.Equal(t, 4, m.result.Highlighted.Len())
}

func TestExportWritesBED(t *testing.T) {
	m := loadedModel(t)
	press(m, runes("b"), tea.KeyMsg{Type: tea.KeyEnter})

	press(m, runes("e"))
	_, ok := m.activeDialog.(*dialogs.Export)
	require.True(t, ok)

	path := filepath.Join(t.TempDir(), "out.bed")
	m.Update(dialogs.ExportConfirmedMsg{Path: path})
	assert.Nil(t, m.activeDialog)

	msg := m.exportCmd(path)()
	ok2, isOK := msg.(dialogs.ExportOKMsg)
	require.True(t, isOK, "%#v", msg)
	assert.Equal(t, 1, ok2.Count)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "chr1\t100\t200\n", string(data))

	m.Update(msg)
	assert.Contains(t, m.ui.noticeMsg, "Export 1 regions")
}

func TestExportErrorShowsDialog(t *testing.T) {
	m := loadedModel(t)
	msg := m.exportCmd(filepath.Join(t.TempDir(), "missing", "out.bed"))()
	_, isErr := msg.(dialogs.ExportErrorMsg)
	require.True(t, isErr)

	m.Update(msg)
	_, ok := m.activeDialog.(*dialogs.Message)
	assert.True(t, ok)
}

func TestHelpDialog(t *testing.T) {
	m := loadedModel(t)
	press(m, runes("?"))
	_, ok := m.activeDialog.(*dialogs.Help)
	require.True(t, ok)
	assert.Contains(t, m.View(), "brush a selection")

	// keys go to the dialog, not the views
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	m.Update(cmd())
	assert.Nil(t, m.activeDialog)
}

func TestClearNotice(t *testing.T) {
	m := testModel(t)
	m.startNotice("first", noticeInfo, noticeDuration)
	stale := m.ui.noticeSeq
	m.startNotice("second", noticeInfo, noticeDuration)

	m.Update(clearNoticeMsg{id: stale})
	assert.Equal(t, "second", m.ui.noticeMsg)
	m.Update(clearNoticeMsg{id: m.ui.noticeSeq})
	assert.Empty(t, m.ui.noticeMsg)
}
