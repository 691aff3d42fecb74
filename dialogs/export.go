package dialogs

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// --- Messages ---------------------------------------------------------------

type (
	ExportRequestedMsg struct{}
	ExportConfirmedMsg struct{ Path string }
	ExportCanceledMsg  struct{}
	ExportErrorMsg     struct{ Err error }
	ExportOKMsg        struct {
		Path  string
		Count int
	}
)

// Export asks where to write the highlighted regions as a BED file.
type Export struct {
	prompt pathPrompt
}

func NewExportDialog(defaultName, lastDir string, regions int) *Export {
	p := newPathPrompt("export", "Export as: ", defaultName, lastDir)
	p.hint = "enter to export • esc to cancel"
	p.detail = fmt.Sprintf("%d highlighted regions (chrom, start, stop)", regions)
	p.confirmed = func(path string) tea.Msg { return ExportConfirmedMsg{Path: path} }
	p.canceled = ExportCanceledMsg{}
	return &Export{prompt: p}
}

func (d *Export) Init() tea.Cmd { return d.prompt.input.Focus() }

func (d *Export) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	return d, d.prompt.update(msg)
}

func (d *Export) View() string    { return d.prompt.view() }
func (d *Export) Show()           { d.prompt.show() }
func (d *Export) Hide()           { d.prompt.hide() }
func (d *Export) Focus() tea.Cmd  { return d.prompt.input.Focus() }
func (d *Export) Blur()           { d.prompt.input.Blur() }
func (d *Export) IsVisible() bool { return d.prompt.visible }
