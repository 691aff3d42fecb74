package dialogs

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

// --- Messages ---------------------------------------------------------------

type (
	OpenRequestedMsg struct{}
	OpenConfirmedMsg struct{ Path string }
	OpenCanceledMsg  struct{}
)

var (
	defaultUserHomeDir = os.UserHomeDir
	userHomeDir        = defaultUserHomeDir
)

// Open asks for a tab-separated table to load. Loading replaces the
// current dataset and clears every selection.
type Open struct {
	prompt pathPrompt
}

func NewOpenDialog(lastPath, lastDir string) *Open {
	p := newPathPrompt("open", "Open TSV: ", lastPath, lastDir)
	p.hint = "enter to load (clears selections) • esc to cancel"
	p.confirmed = func(path string) tea.Msg { return OpenConfirmedMsg{Path: path} }
	p.canceled = OpenCanceledMsg{}
	return &Open{prompt: p}
}

func (d *Open) Init() tea.Cmd { return d.prompt.input.Focus() }

func (d *Open) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	return d, d.prompt.update(msg)
}

func (d *Open) View() string    { return d.prompt.view() }
func (d *Open) Show()           { d.prompt.show() }
func (d *Open) Hide()           { d.prompt.hide() }
func (d *Open) Focus() tea.Cmd  { return d.prompt.input.Focus() }
func (d *Open) Blur()           { d.prompt.input.Blur() }
func (d *Open) IsVisible() bool { return d.prompt.visible }
