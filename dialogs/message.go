package dialogs

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type MessageDismissedMsg struct{}

// Message shows a short confirmation, such as the number of exported
// regions, until the user dismisses it.
type Message struct {
	visible bool
	title   string
	body    string
	isError bool
}

func NewMessageDialog(title, body string) *Message {
	return &Message{visible: true, title: title, body: body}
}

func NewErrorDialog(title string, err error) *Message {
	return &Message{visible: true, title: title, body: err.Error(), isError: true}
}

func (d *Message) Init() tea.Cmd { return nil }

func (d *Message) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if m, ok := msg.(tea.KeyMsg); ok {
		switch m.String() {
		case "enter", "esc", " ":
			d.visible = false
			return d, func() tea.Msg { return MessageDismissedMsg{} }
		}
	}
	return d, nil
}

func (d *Message) View() string {
	if !d.visible {
		return ""
	}
	title := lipgloss.NewStyle().Bold(true)
	if d.isError {
		title = title.Foreground(lipgloss.Color("203"))
	}
	content := fmt.Sprintf("%s\n\n%s\n\n%s", title.Render(d.title), d.body, hintStyle().Render("enter to close"))
	return boxStyle().Render(content)
}

func (d *Message) Body() string { return d.body }

func (d *Message) Show()           { d.visible = true }
func (d *Message) Hide()           { d.visible = false }
func (d *Message) Focus() tea.Cmd  { return nil }
func (d *Message) Blur()           {}
func (d *Message) IsVisible() bool { return d.visible }
