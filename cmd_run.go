package main

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-crossfilter/crossfilter"
)

func (m *model) runCommand() tea.Cmd {
	pc, err := parseCommandLine(m.ui.command.buf)
	if err != nil {
		return m.startNotice(err.Error(), noticeWarn, noticeDuration)
	}
	view := m.ui.activeView

	switch pc.verb {
	case "x", "y":
		col, err := matchColumn(m.selectable, pc.arg)
		if err != nil {
			return m.startNotice(err.Error(), noticeWarn, noticeDuration)
		}
		ev := crossfilter.SetAxes{View: view, X: col}
		if pc.verb == "y" {
			ev = crossfilter.SetAxes{View: view, Y: col}
		}
		return m.dispatch(ev, fmt.Sprintf("View %d: %s = %s", view+1, pc.verb, col))

	case "mode":
		md, err := crossfilter.ParseMode(pc.arg)
		if err != nil {
			return m.startNotice(err.Error(), noticeWarn, noticeDuration)
		}
		return m.dispatch(crossfilter.SetMode{View: view, Mode: md}, fmt.Sprintf("View %d: %s", view+1, md))

	case "height":
		h, err := strconv.Atoi(strings.TrimSuffix(pc.arg, "px"))
		if err != nil {
			return m.startNotice("Invalid height "+pc.arg, noticeWarn, noticeDuration)
		}
		return m.dispatch(crossfilter.SetFigureHeight{Height: h}, fmt.Sprintf("Figure height %d", h))

	case "view":
		n, err := strconv.Atoi(pc.arg)
		if err != nil || n < 1 || n > crossfilter.NumViews {
			return m.startNotice(fmt.Sprintf("View must be 1-%d", crossfilter.NumViews), noticeWarn, noticeDuration)
		}
		m.ui.activeView = n - 1
		return nil

	case "open":
		return m.loadFileCmd(expandHome(pc.arg))

	case "export":
		path := pc.arg
		if path == "" {
			path = m.cfg.Export.FileName
		}
		return m.exportCmd(expandHome(path))

	case "clear":
		return m.dispatch(crossfilter.SetSelection{View: view, Selection: crossfilter.None()}, fmt.Sprintf("View %d: selection cleared", view+1))

	case "clear-all":
		return m.clearAllSelections()

	case "quit":
		return tea.Quit
	}
	return nil
}

func (m *model) exitCommandMode() {
	m.ui.command = CommandInput{}
	m.ui.mode = modeView
}

func (m *model) handleCommandKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// universal cancel
	if msg.Type == tea.KeyEsc {
		m.exitCommandMode()
		return m, nil
	}

	// commit
	if msg.Type == tea.KeyEnter {
		cmd := m.runCommand()
		m.exitCommandMode()
		return m, cmd
	}

	// editing
	switch msg.Type {
	case tea.KeyBackspace:
		if r := []rune(m.ui.command.buf); len(r) > 0 {
			m.ui.command.buf = string(r[:len(r)-1])
		}
		return m, nil
	case tea.KeySpace:
		m.ui.command.buf += " "
		return m, nil
	}

	// append printable runes
	if msg.Type == tea.KeyRunes {
		m.ui.command.buf += string(msg.Runes)
	}
	return m, nil
}
