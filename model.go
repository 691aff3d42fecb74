package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/andareed/siftly-crossfilter/config"
	"github.com/andareed/siftly-crossfilter/crossfilter"
	"github.com/andareed/siftly-crossfilter/dialogs"
	"github.com/andareed/siftly-crossfilter/logging"
)

type model struct {
	ctx     context.Context
	session *crossfilter.Session
	cfg     config.Config
	palette palette

	// latest output of the session, refreshed after every dispatch
	result     crossfilter.Result
	selectable []string

	ui        uiState
	keys      Keymap
	help      help.Model
	brushHelp help.Model

	activeDialog dialogs.Dialog

	terminalWidth  int
	terminalHeight int
	ready          bool

	filePath string
	lastDir  string
}

func newModel(ctx context.Context, session *crossfilter.Session, cfg config.Config, path string) *model {
	// the footer and drawer measure help text as plain runes
	h := help.New()
	h.Styles = plainHelpStyles()
	h.ShortSeparator = " · "
	bh := help.New()
	bh.Styles = plainHelpStyles()
	bh.ShortSeparator = "  "

	m := &model{
		ctx:        ctx,
		session:    session,
		cfg:        cfg,
		palette:    newPalette(cfg.Colors),
		result:     session.Result(),
		selectable: session.SelectableColumns(),
		keys:       Keys,
		help:       h,
		brushHelp:  bh,
		filePath:   path,
	}
	if path != "" {
		m.lastDir = filepath.Dir(path)
	}
	return m
}

func plainHelpStyles() help.Styles {
	plain := lipgloss.NewStyle()
	return help.Styles{
		Ellipsis:       plain,
		ShortKey:       plain,
		ShortDesc:      plain,
		ShortSeparator: plain,
		FullKey:        plain,
		FullDesc:       plain,
		FullSeparator:  plain,
	}
}

func (m *model) Init() tea.Cmd {
	logging.Infof("siftly-crossfilter: session %s initialised", m.session.ID())
	if m.filePath == "" {
		return nil
	}
	return m.loadFileCmd(m.filePath)
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.terminalWidth = msg.Width
		m.terminalHeight = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		return m, nil

	case clearNoticeMsg:
		m.clearNotice(msg.id)
		return m, nil

	case datasetLoadedMsg:
		return m, m.handleDatasetLoaded(msg)

	case regionsCopiedMsg:
		if msg.err != nil {
			logging.Warnf("copy: %v", msg.err)
			return m, m.startNotice("Copy failed: "+msg.err.Error(), noticeError, noticeDuration)
		}
		return m, m.startNotice(fmt.Sprintf("Copied %d regions", msg.count), noticeSuccess, noticeDuration)

	// dialog results
	case dialogs.OpenConfirmedMsg:
		m.closeDialog()
		return m, m.loadFileCmd(msg.Path)
	case dialogs.ExportConfirmedMsg:
		m.closeDialog()
		m.lastDir = filepath.Dir(msg.Path)
		return m, m.exportCmd(msg.Path)
	case dialogs.ExportOKMsg:
		logging.Infof("export: %d regions written to %s", msg.Count, msg.Path)
		return m, m.startNotice(crossfilter.ExportMessage(msg.Count)+" to "+msg.Path, noticeSuccess, noticeDuration)
	case dialogs.ExportErrorMsg:
		logging.Errorf("export: %v", msg.Err)
		return m, m.showDialog(dialogs.NewErrorDialog("Export failed", msg.Err))
	case dialogs.OpenCanceledMsg, dialogs.ExportCanceledMsg, dialogs.HelpClosedMsg, dialogs.MessageDismissedMsg:
		m.closeDialog()
		return m, nil
	}

	// a visible dialog owns the keyboard
	if m.activeDialog != nil && m.activeDialog.IsVisible() {
		var cmd tea.Cmd
		m.activeDialog, cmd = m.activeDialog.Update(msg)
		return m, cmd
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.updateKey(msg)
	}
	return m, nil
}

func (m *model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.ui.mode {
	case modeBrush:
		return m.handleBrushKey(msg)
	case modeCommand:
		return m.handleCommandKey(msg)
	default:
		return m.handleViewModeKey(msg)
	}
}

func (m *model) handleViewModeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys
	view := m.ui.activeView

	switch {
	case key.Matches(msg, k.Quit):
		return m, tea.Quit
	case key.Matches(msg, k.NextView):
		m.ui.activeView = (view + 1) % crossfilter.NumViews
	case key.Matches(msg, k.PrevView):
		m.ui.activeView = (view + crossfilter.NumViews - 1) % crossfilter.NumViews
	case key.Matches(msg, k.PickView):
		m.ui.activeView = int(msg.Runes[0] - '1')

	case key.Matches(msg, k.Brush):
		return m, m.openBrush()
	case key.Matches(msg, k.ClearSelection):
		return m, m.dispatch(crossfilter.SetSelection{View: view, Selection: crossfilter.None()},
			fmt.Sprintf("View %d: selection cleared", view+1))
	case key.Matches(msg, k.ClearAll):
		return m, m.clearAllSelections()

	case key.Matches(msg, k.NextX):
		return m, m.cycleAxis(true, 1)
	case key.Matches(msg, k.PrevX):
		return m, m.cycleAxis(true, -1)
	case key.Matches(msg, k.NextY):
		return m, m.cycleAxis(false, 1)
	case key.Matches(msg, k.PrevY):
		return m, m.cycleAxis(false, -1)
	case key.Matches(msg, k.Percentile):
		return m, m.toggleMode()

	case key.Matches(msg, k.Taller):
		return m, m.nudgeHeight(crossfilter.FigureHeightStep)
	case key.Matches(msg, k.Shorter):
		return m, m.nudgeHeight(-crossfilter.FigureHeightStep)

	case key.Matches(msg, k.Command):
		m.ui.mode = modeCommand
		m.ui.command = CommandInput{cmd: CommandFromPrefix(':')}

	case key.Matches(msg, k.Open):
		return m, m.showDialog(dialogs.NewOpenDialog(m.filePath, m.lastDir))
	case key.Matches(msg, k.Export):
		return m, m.showDialog(dialogs.NewExportDialog(m.cfg.Export.FileName, m.lastDir, m.result.Highlighted.Len()))
	case key.Matches(msg, k.CopyRegions):
		return m, m.copyRegionsCmd()
	case key.Matches(msg, k.OpenHelp):
		groups := append(k.FullHelp(), BrushKeys.FullHelp()...)
		return m, m.showDialog(dialogs.NewHelpDialog(groups))
	}
	return m, nil
}

// dispatch sends ev to the session and adopts its result. notice is shown
// on success; a rejected event leaves everything as it was.
func (m *model) dispatch(ev crossfilter.Event, notice string) tea.Cmd {
	res, err := m.session.Dispatch(ev)
	var stale *crossfilter.StaleSelectionError
	if errors.As(err, &stale) {
		// a reload landed while the brush was open; its own message follows
		logging.Debugf("dispatch %T: %v", ev, err)
		return nil
	}
	if err != nil {
		logging.Warnf("dispatch %T: %v", ev, err)
		return m.startNotice(err.Error(), noticeError, noticeDuration)
	}
	m.result = res
	logging.Debugf("dispatch %T: %s", ev, res.Highlighted)
	if notice == "" {
		return nil
	}
	return m.startNotice(notice, noticeInfo, noticeDuration)
}

func (m *model) clearAllSelections() tea.Cmd {
	var cmds []tea.Cmd
	for v := range crossfilter.NumViews {
		if m.session.Snapshot().Views[v].Selection.IsNone() {
			continue
		}
		cmds = append(cmds, m.dispatch(crossfilter.SetSelection{View: v, Selection: crossfilter.None()}, ""))
	}
	cmds = append(cmds, m.startNotice("All selections cleared", noticeInfo, noticeDuration))
	return tea.Batch(cmds...)
}

// cycleAxis moves the focused view's x (or y) axis to the next selectable
// column, wrapping at either end.
func (m *model) cycleAxis(isX bool, delta int) tea.Cmd {
	if len(m.selectable) == 0 {
		return m.startNotice("No plottable columns", noticeWarn, noticeDuration)
	}
	view := m.ui.activeView
	vs := m.session.Snapshot().Views[view]
	cur := vs.Y
	if isX {
		cur = vs.X
	}
	i := slices.Index(m.selectable, cur)
	n := len(m.selectable)
	next := m.selectable[((i+delta)%n+n)%n]

	ev := crossfilter.SetAxes{View: view, Y: next}
	axis := "y"
	if isX {
		ev = crossfilter.SetAxes{View: view, X: next}
		axis = "x"
	}
	return m.dispatch(ev, fmt.Sprintf("View %d: %s = %s", view+1, axis, next))
}

func (m *model) toggleMode() tea.Cmd {
	view := m.ui.activeView
	md := crossfilter.ModePercentile
	if m.session.Snapshot().Views[view].Mode == crossfilter.ModePercentile {
		md = crossfilter.ModeRaw
	}
	return m.dispatch(crossfilter.SetMode{View: view, Mode: md}, fmt.Sprintf("View %d: %s", view+1, md))
}

func (m *model) nudgeHeight(delta int) tea.Cmd {
	cur := m.session.Snapshot().Display.FigureHeight
	h := crossfilter.ClampFigureHeight(cur + delta)
	if h == cur {
		return m.startNotice(fmt.Sprintf("Figure height stays %dpx", cur), noticeWarn, noticeDuration)
	}
	return m.dispatch(crossfilter.SetFigureHeight{Height: h}, fmt.Sprintf("Figure height %dpx", h))
}

// --- dialogs ----------------------------------------------------------------

func (m *model) showDialog(d dialogs.Dialog) tea.Cmd {
	m.activeDialog = d
	d.Show()
	return d.Init()
}

func (m *model) closeDialog() {
	if m.activeDialog != nil {
		m.activeDialog.Hide()
		m.activeDialog.Blur()
	}
	m.activeDialog = nil
}
