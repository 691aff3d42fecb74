package dialogs

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// --- Messages ---------------------------------------------------------------

type (
	HelpRequestedMsg struct{}
	HelpClosedMsg    struct{}
)

// Help lists key bindings, one group per block, in the order given.
type Help struct {
	visible bool
	groups  [][]key.Binding
}

func (d *Help) Init() tea.Cmd { return nil }

// NewHelpDialog takes the same groups a help.KeyMap returns from FullHelp.
func NewHelpDialog(groups [][]key.Binding) *Help {
	return &Help{visible: true, groups: groups}
}

func (d *Help) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if m, ok := msg.(tea.KeyMsg); ok {
		switch m.String() {
		case "enter", "esc", "?", "q":
			d.visible = false
			return d, func() tea.Msg { return HelpClosedMsg{} }
		}
	}
	return d, nil
}

func (d *Help) View() string {
	if !d.visible {
		return ""
	}
	var blocks []string
	for _, group := range d.groups {
		var lines []string
		for _, b := range group {
			if !b.Enabled() {
				continue
			}
			h := b.Help()
			lines = append(lines, fmt.Sprintf("%-12s %s", h.Key, h.Desc))
		}
		if len(lines) > 0 {
			blocks = append(blocks, strings.Join(lines, "\n"))
		}
	}
	content := fmt.Sprintf("%s\n\n%s", strings.Join(blocks, "\n\n"), hintStyle().Render("enter/esc to return"))
	return boxStyle().Render(content)
}

func (d *Help) Show()           { d.visible = true }
func (d *Help) Hide()           { d.visible = false }
func (d *Help) Focus() tea.Cmd  { return nil }
func (d *Help) Blur()           {}
func (d *Help) IsVisible() bool { return d.visible }
