package dialogs

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func press(d Dialog, k string) (Dialog, tea.Msg) {
	var msg tea.KeyMsg
	switch k {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	d, cmd := d.Update(msg)
	if cmd == nil {
		return d, nil
	}
	return d, cmd()
}

// typeText feeds keystrokes without running the returned commands, which
// are only cursor blinks.
func typeText(d Dialog, s string) {
	for _, r := range s {
		d.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestExportDialogConfirmsDefaultName(t *testing.T) {
	d := NewExportDialog("highlighted_region.bed", "/tmp/out", 3)
	require.True(t, d.IsVisible())
	assert.Contains(t, d.View(), "3 highlighted regions")

	_, msg := press(d, "enter")
	require.IsType(t, ExportConfirmedMsg{}, msg)
	assert.Equal(t, filepath.Join("/tmp/out", "highlighted_region.bed"), msg.(ExportConfirmedMsg).Path)
}

func TestExportDialogKeepsExplicitDirectories(t *testing.T) {
	d := NewExportDialog("", "/tmp/out", 0)
	typeText(d, "/data/x.bed")
	_, msg := press(d, "enter")
	assert.Equal(t, ExportConfirmedMsg{Path: "/data/x.bed"}, msg)
}

func TestExportDialogBlankDoesNothing(t *testing.T) {
	d := NewExportDialog("", "", 0)
	_, msg := press(d, "enter")
	assert.Nil(t, msg)
}

func TestExportDialogCancel(t *testing.T) {
	_, msg := press(NewExportDialog("a.bed", "", 1), "esc")
	assert.Equal(t, ExportCanceledMsg{}, msg)
}

func TestOpenDialog(t *testing.T) {
	d := NewOpenDialog("regions.tsv", "/home/me")
	_, msg := press(d, "enter")
	assert.Equal(t, OpenConfirmedMsg{Path: filepath.Join("/home/me", "regions.tsv")}, msg)

	_, msg = press(NewOpenDialog("", ""), "esc")
	assert.Equal(t, OpenCanceledMsg{}, msg)
}

func TestOpenDialogExpandsHome(t *testing.T) {
	userHomeDir = func() (string, error) { return "/home/analyst", nil }
	t.Cleanup(func() { userHomeDir = defaultUserHomeDir })

	_, msg := press(NewOpenDialog("~/data/r.tsv", "/elsewhere"), "enter")
	assert.Equal(t, OpenConfirmedMsg{Path: "/home/analyst/data/r.tsv"}, msg)
}

func TestMessageDialog(t *testing.T) {
	d := NewMessageDialog("Export", "Export 3 regions")
	assert.Contains(t, d.View(), "Export 3 regions")

	d2, msg := press(d, "enter")
	assert.Equal(t, MessageDismissedMsg{}, msg)
	assert.False(t, d2.IsVisible())
	assert.Empty(t, d2.View())

	e := NewErrorDialog("Export failed", errors.New("missing column(s) stop"))
	assert.Equal(t, "missing column(s) stop", e.Body())
}

func TestHelpDialogSkipsDisabledBindings(t *testing.T) {
	on := key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export"))
	off := key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "hidden"), key.WithDisabled())
	d := NewHelpDialog([][]key.Binding{{on, off}})

	view := d.View()
	assert.Contains(t, view, "export")
	assert.NotContains(t, view, "hidden")

	d2, msg := press(d, "?")
	assert.Equal(t, HelpClosedMsg{}, msg)
	assert.False(t, d2.IsVisible())
}

func TestOverlayHidden(t *testing.T) {
	d := NewMessageDialog("t", "b")
	d.Hide()
	assert.Empty(t, Overlay(d, 80, 24))
	assert.Empty(t, Overlay(nil, 80, 24))
	d.Show()
	assert.Contains(t, Overlay(d, 80, 24), "b")
}
