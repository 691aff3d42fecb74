package dataset

import (
	"context"
	"sync"

	"github.com/andareed/siftly-crossfilter/logging"
)

// Store holds the current dataset of one session. Loads are last-writer-wins:
// starting a load cancels any load still parsing, and a load that finishes
// after a newer one started is discarded.
type Store struct {
	mu       sync.Mutex
	current  *Dataset
	revision uint64
	ticket   uint64
	cancel   context.CancelFunc
}

func NewStore() *Store {
	return &Store{current: Empty()}
}

func (s *Store) Current() *Dataset {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Load parses raw and, if no newer load has started in the meantime, makes
// it the current dataset with a fresh revision. On any error the current
// dataset is left as it was.
func (s *Store) Load(ctx context.Context, raw []byte) (*Dataset, error) {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.ticket++
	ticket := s.ticket
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.mu.Unlock()
	defer cancel()

	ds, err := Parse(ctx, raw)

	s.mu.Lock()
	defer s.mu.Unlock()
	if ticket != s.ticket {
		logging.Debugf("dataset: load ticket %d superseded by %d", ticket, s.ticket)
		return nil, ErrSuperseded
	}
	s.cancel = nil
	if err != nil {
		logging.Warnf("dataset: load ticket %d failed: %v", ticket, err)
		return nil, err
	}
	s.revision++
	ds.revision = s.revision
	s.current = ds
	logging.Infof("dataset: revision %d committed (%d rows, %d columns)", ds.revision, ds.Len(), len(ds.columns))
	return ds, nil
}
