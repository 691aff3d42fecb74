package crossfilter

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/andareed/siftly-crossfilter/dataset"
	"github.com/andareed/siftly-crossfilter/logging"
)

// Session is one analyst's cross-filter state: a dataset store, three view
// states and the display config, together with the result derived from them.
// Every mutation recomputes the result before the lock is released, so a
// reader never sees descriptors built from an older highlighted set.
// Sessions share nothing with each other.
type Session struct {
	id    string
	store *dataset.Store
	cache *transformCache

	mu         sync.Mutex
	snap       Snapshot
	selectable []string
	result     Result
}

func NewSession(display DisplayConfig) *Session {
	if err := display.Validate(); err != nil {
		logging.Warnf("session: %v, using default height", err)
		display = DefaultDisplayConfig()
	}
	s := &Session{
		id:    uuid.NewString()[:12],
		store: dataset.NewStore(),
		cache: newTransformCache(),
	}
	s.snap = Snapshot{Dataset: s.store.Current(), Display: display}
	s.recomputeLocked()
	return s
}

func (s *Session) ID() string { return s.id }

// Snapshot returns a consistent copy of the current inputs.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap
}

// Result returns the outputs derived from the latest accepted inputs.
func (s *Session) Result() Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}

func (s *Session) SelectableColumns() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.selectable)
}

// Load parses raw as the session's new dataset. Parsing happens outside the
// session lock; a load overtaken by a newer one returns
// dataset.ErrSuperseded and changes nothing. On success every view's
// selection is reset to None, and axis choices are re-derived when the set
// of selectable columns changed.
func (s *Session) Load(ctx context.Context, raw []byte) (Result, error) {
	ds, err := s.store.Load(ctx, raw)
	if err != nil {
		return s.Result(), err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if cur := s.snap.Dataset; cur != nil && ds.Revision() <= cur.Revision() {
		return s.result, dataset.ErrSuperseded
	}

	selectable := dataset.SelectableColumns(ds)
	rederive := !slices.Equal(selectable, s.selectable)
	for i := range s.snap.Views {
		v := s.snap.Views[i]
		if rederive {
			fresh := DefaultViewState(i, selectable)
			fresh.Mode = v.Mode
			v = fresh
		} else {
			v, _ = v.Reconcile(i, selectable)
		}
		s.snap.Views[i] = v.WithSelection(None())
	}
	s.snap.Dataset = ds
	s.selectable = selectable
	s.recomputeLocked()
	logging.Infof("session %s: dataset revision %d loaded, %d selectable columns", s.id, ds.Revision(), len(selectable))
	return s.result, nil
}

// Event is one input change accepted by Dispatch.
type Event interface {
	apply(s *Session) error
}

// SetAxes picks the columns of a view. An empty name keeps that axis. A
// name the dataset does not have falls back to the view's default.
type SetAxes struct {
	View int
	X, Y string
}

// SetMode switches a view between raw values and percentile ranks.
type SetMode struct {
	View int
	Mode Mode
}

// SetSelection replaces a view's brushed selection. Pass None() to drop the
// view's constraint. Revision is the dataset revision the row ids were taken
// from; a selection of rows from any other revision is refused with a
// *StaleSelectionError. None() carries no row ids and is accepted regardless.
type SetSelection struct {
	View      int
	Selection Selection
	Revision  uint64
}

// SetFigureHeight changes the height of all three figures.
type SetFigureHeight struct {
	Height int
}

// Dispatch applies ev and recomputes. When ev is rejected the state and
// result are unchanged and the error says why.
func (s *Session) Dispatch(ev Event) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := ev.apply(s); err != nil {
		return s.result, err
	}
	s.recomputeLocked()
	return s.result, nil
}

func checkView(view int) error {
	if view < 0 || view >= NumViews {
		return &ViewError{View: view}
	}
	return nil
}

func (e SetAxes) apply(s *Session) error {
	if err := checkView(e.View); err != nil {
		return err
	}
	v := s.snap.Views[e.View]
	if e.X != "" {
		v.X = e.X
	}
	if e.Y != "" {
		v.Y = e.Y
	}
	// unknown columns are recovered here, never surfaced
	v, _ = v.Reconcile(e.View, s.selectable)
	s.snap.Views[e.View] = v
	return nil
}

func (e SetMode) apply(s *Session) error {
	if err := checkView(e.View); err != nil {
		return err
	}
	if e.Mode != ModeRaw && e.Mode != ModePercentile {
		return fmt.Errorf("invalid transform mode %d", e.Mode)
	}
	s.snap.Views[e.View].Mode = e.Mode
	return nil
}

func (e SetSelection) apply(s *Session) error {
	if err := checkView(e.View); err != nil {
		return err
	}
	if !e.Selection.IsNone() {
		var current uint64
		if s.snap.Dataset != nil {
			current = s.snap.Dataset.Revision()
		}
		if e.Revision != current {
			return &StaleSelectionError{View: e.View, Revision: e.Revision, Current: current}
		}
	}
	s.snap.Views[e.View] = s.snap.Views[e.View].WithSelection(e.Selection)
	logging.Debugf("session %s: view %d selection %s", s.id, e.View+1, e.Selection)
	return nil
}

func (e SetFigureHeight) apply(s *Session) error {
	cfg := DisplayConfig{FigureHeight: e.Height}
	if err := cfg.Validate(); err != nil {
		return err
	}
	s.snap.Display = cfg
	return nil
}

func (s *Session) recomputeLocked() {
	s.result = recompute(s.cache, s.snap)
	logging.Debugf("session %s: recomputed revision %d, %s", s.id, s.result.Revision, s.result.Highlighted)
}

// ExportResult is a ready-to-save BED payload.
type ExportResult struct {
	FileName string
	Payload  []byte
	Count    int
}

// Message is the confirmation shown to the user.
func (r ExportResult) Message() string { return ExportMessage(r.Count) }

// Export serialises the highlighted rows of the latest result. It does not
// change any state.
func (s *Session) Export() (ExportResult, error) {
	s.mu.Lock()
	ds, hs := s.snap.Dataset, s.result.Highlighted
	s.mu.Unlock()

	payload, count, err := Export(ds, hs)
	if err != nil {
		return ExportResult{}, err
	}
	return ExportResult{FileName: ExportFileName, Payload: payload, Count: count}, nil
}
