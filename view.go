package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/andareed/siftly-crossfilter/logging"
)

const (
	footerLines   = 2
	panelChrome   = 5 // border, title, x axis line, x ticks
	appMarginRows = 2
	appMarginCols = 4
)

// footerView renders the 2-line footer for the given width.
func (m *model) footerView(width int) string {
	logging.Debugf("footerView mode=%d cmd=%d", m.ui.mode, m.ui.command.cmd)

	snap := m.session.Snapshot()
	st := footerState{
		Mode:        modeLabel(m.ui.mode),
		ActiveView:  m.ui.activeView,
		ViewMode:    snap.Views[m.ui.activeView].Mode.String(),
		Height:      snap.Display.FigureHeight,
		Highlighted: m.result.Highlighted.Len(),
		TotalRows:   m.result.Highlighted.Size(),
		Legend:      "(" + m.help.ShortHelpView(m.keys.ShortHelp()) + ")",
	}
	if m.filePath != "" {
		st.FileName = filepath.Base(m.filePath)
	}
	if m.ui.mode == modeCommand {
		st.ModeInput = m.activeCommandLine()
		st.StatusMessage = m.commandHintsLine(m.ui.command.cmd)
	}
	if m.ui.noticeMsg != "" {
		st.StatusMessage = noticeText(m.ui.noticeMsg, m.ui.noticeKind)
		st.StatusAlert = m.ui.noticeKind >= noticeWarn
	}

	if logging.IsDebugMode() {
		st.Legend += fmt.Sprintf(" | dbg term=%dx%d rev=%d session=%s",
			m.terminalWidth, m.terminalHeight, m.result.Revision, m.session.ID())
	}

	return renderFooter(width, st, defaultFooterStyles())
}

func (m *model) View() string {
	if !m.ready {
		return "loading..."
	}

	if m.activeDialog != nil && m.activeDialog.IsVisible() {
		w, h := m.terminalWidth, m.terminalHeight
		return lipgloss.Place(
			w, h,
			lipgloss.Center, lipgloss.Center,
			m.activeDialog.View(),
			lipgloss.WithWhitespaceChars(" "),
			lipgloss.WithWhitespaceBackground(lipgloss.Color(overlayBGColor)),
		)
	}

	contentW := max(0, m.terminalWidth-appMarginCols)
	available := m.terminalHeight - appMarginRows - footerLines - panelChrome
	if m.ui.mode == modeBrush {
		available -= brushDrawerLines + 2
	}

	parts := []string{m.panelsView(contentW, available)}
	if m.ui.mode == modeBrush {
		parts = append(parts, m.brushDrawerView(contentW))
	}
	parts = append(parts, m.footerView(contentW)) // always
	return appstyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// panelsView lays the three views out side by side, or an empty state
// before any dataset has been loaded.
func (m *model) panelsView(width, available int) string {
	rows := plotRows(m.session.Snapshot().Display.FigureHeight, available)

	if m.result.Revision == 0 {
		msg := "No dataset loaded.\n\nPress o to open a TSV with chrom, start and stop columns."
		return emptyStateStyle.Width(width).Height(rows + panelChrome).Render(msg)
	}

	snap := m.session.Snapshot()
	panelW := width / 3
	panels := make([]string, 0, len(m.result.Figures))
	for i, fig := range m.result.Figures {
		pp := plotPanel{
			view:      i,
			fig:       fig,
			selection: snap.Views[i].Selection,
			active:    i == m.ui.activeView,
			width:     panelW,
			rows:      rows,
			palette:   m.palette,
		}
		if m.ui.mode == modeBrush && m.ui.brush.view == i {
			pp.brush = &m.ui.brush
		}
		panels = append(panels, pp.render())
	}
	return strings.TrimRight(lipgloss.JoinHorizontal(lipgloss.Top, panels...), " ")
}
