package dialogs

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-crossfilter/logging"
)

// pathPrompt is a one-line file path input shared by the Open and Export
// dialogs.
type pathPrompt struct {
	name    string
	input   textinput.Model
	visible bool
	lastDir string
	hint    string
	detail  string

	confirmed func(path string) tea.Msg
	canceled  tea.Msg
}

func newPathPrompt(name, prompt, defaultName, lastDir string) pathPrompt {
	ti := textinput.New()
	ti.Placeholder = defaultName
	ti.Prompt = prompt
	ti.CharLimit = 256
	ti.Width = 50
	if defaultName != "" {
		ti.SetValue(defaultName)
	}
	ti.Focus()
	return pathPrompt{name: name, input: ti, visible: true, lastDir: lastDir}
}

// resolve returns the path to act on: the typed value, else the
// placeholder. Bare names are placed in lastDir.
func (p *pathPrompt) resolve() string {
	val := strings.TrimSpace(p.input.Value())
	if val == "" {
		val = p.input.Placeholder
	}
	if val == "" {
		return ""
	}
	if strings.HasPrefix(val, "~/") {
		if home, err := userHomeDir(); err == nil {
			val = filepath.Join(home, val[2:])
		}
	}
	if p.lastDir != "" && !filepath.IsAbs(val) && filepath.Dir(val) == "." {
		val = filepath.Join(p.lastDir, filepath.Base(val))
	}
	return val
}

func (p *pathPrompt) update(msg tea.Msg) tea.Cmd {
	if !p.visible {
		return nil
	}
	if m, ok := msg.(tea.KeyMsg); ok {
		switch m.String() {
		case "enter":
			path := p.resolve()
			logging.Debugf("%s dialog: confirmed %q", p.name, path)
			if path == "" {
				return nil
			}
			return func() tea.Msg { return p.confirmed(path) }
		case "esc":
			logging.Debugf("%s dialog: canceled", p.name)
			canceled := p.canceled
			return func() tea.Msg { return canceled }
		}
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return cmd
}

func (p pathPrompt) view() string {
	if !p.visible {
		return ""
	}
	body := p.input.View()
	if p.detail != "" {
		body = p.detail + "\n\n" + body
	}
	return boxStyle().Render(fmt.Sprintf("%s\n\n%s", body, hintStyle().Render(p.hint)))
}

func (p *pathPrompt) show() {
	p.visible = true
	p.input.Focus()
}

func (p *pathPrompt) hide() {
	p.visible = false
	p.input.Blur()
}
