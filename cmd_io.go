package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-crossfilter/clipboard"
	"github.com/andareed/siftly-crossfilter/crossfilter"
	"github.com/andareed/siftly-crossfilter/dataset"
	"github.com/andareed/siftly-crossfilter/dialogs"
	"github.com/andareed/siftly-crossfilter/logging"
)

// datasetLoadedMsg reports the end of a background load.
type datasetLoadedMsg struct {
	path   string
	result crossfilter.Result
	err    error
}

type regionsCopiedMsg struct {
	count int
	err   error
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}

// loadFileCmd reads and parses path off the UI goroutine. Loads may overlap;
// the session keeps whichever was started last.
func (m *model) loadFileCmd(path string) tea.Cmd {
	session, ctx := m.session, m.ctx
	logging.Infof("load: reading %s", path)
	return func() tea.Msg {
		raw, err := os.ReadFile(path)
		if err != nil {
			return datasetLoadedMsg{path: path, err: fmt.Errorf("read %s: %w", path, err)}
		}
		res, err := session.Load(ctx, raw)
		return datasetLoadedMsg{path: path, result: res, err: err}
	}
}

func (m *model) handleDatasetLoaded(msg datasetLoadedMsg) tea.Cmd {
	if errors.Is(msg.err, dataset.ErrSuperseded) {
		logging.Debugf("load: %s superseded by a newer load", msg.path)
		return nil
	}
	if msg.err != nil {
		logging.Errorf("load: %v", msg.err)
		return m.showDialog(dialogs.NewErrorDialog("Could not load dataset", msg.err))
	}

	if m.ui.mode == modeBrush {
		m.closeBrush()
	}
	m.filePath = msg.path
	m.lastDir = filepath.Dir(msg.path)
	m.selectable = m.session.SelectableColumns()
	m.result = msg.result
	logging.Infof("load: %s revision %d, %d rows, %d selectable columns",
		msg.path, msg.result.Revision, msg.result.Highlighted.Size(), len(m.selectable))

	return m.startNotice(fmt.Sprintf("Loaded %s (%d rows)", filepath.Base(msg.path), msg.result.Highlighted.Size()), noticeSuccess, noticeDuration)
}

// exportCmd writes the highlighted regions to path.
func (m *model) exportCmd(path string) tea.Cmd {
	session := m.session
	return func() tea.Msg {
		res, err := session.Export()
		if err != nil {
			return dialogs.ExportErrorMsg{Err: err}
		}
		if err := os.WriteFile(path, res.Payload, 0o644); err != nil {
			return dialogs.ExportErrorMsg{Err: fmt.Errorf("write %s: %w", path, err)}
		}
		return dialogs.ExportOKMsg{Path: path, Count: res.Count}
	}
}

// copyRegionsCmd puts the BED payload on the clipboard instead of a file.
func (m *model) copyRegionsCmd() tea.Cmd {
	session := m.session
	return func() tea.Msg {
		res, err := session.Export()
		if err != nil {
			return regionsCopiedMsg{err: err}
		}
		if err := clipboard.Copy(string(res.Payload)); err != nil {
			return regionsCopiedMsg{err: err}
		}
		return regionsCopiedMsg{count: res.Count}
	}
}
