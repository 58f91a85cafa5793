package widget

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore keeps all surface state in a two-level map guarded by a
// store-level mutex for the map itself and a per-record mutex for fields.
// Widgets are independent, so cross-widget operations never contend.
type MemoryStore struct {
	mu       sync.RWMutex
	surfaces map[int]*surfaceRecord

	ledgerMu sync.Mutex
	ledger   []SavedQuote
}

type surfaceRecord struct {
	mu      sync.Mutex
	current *Quote
	next    *Quote
	saved   bool
	cfg     SurfaceConfig
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{surfaces: make(map[int]*surfaceRecord)}
}

func (s *MemoryStore) record(widgetID int) *surfaceRecord {
	s.mu.RLock()
	rec, ok := s.surfaces[widgetID]
	s.mu.RUnlock()
	if ok {
		return rec
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if rec, ok = s.surfaces[widgetID]; ok {
		return rec
	}
	rec = &surfaceRecord{cfg: DefaultConfig()}
	s.surfaces[widgetID] = rec
	return rec
}

func (s *MemoryStore) Get(_ context.Context, widgetID int) (SurfaceState, error) {
	rec := s.record(widgetID)
	rec.mu.Lock()
	defer rec.mu.Unlock()

	state := SurfaceState{
		WidgetID: widgetID,
		IsSaved:  rec.saved,
		Config:   rec.cfg,
	}
	if rec.current != nil {
		q := *rec.current
		state.Current = &q
	}
	if rec.next != nil {
		q := *rec.next
		state.Next = &q
	}
	return state, nil
}

func (s *MemoryStore) Surfaces(_ context.Context) ([]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]int, 0, len(s.surfaces))
	for id := range s.surfaces {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids, nil
}

func (s *MemoryStore) SetCurrentQuote(_ context.Context, widgetID int, q Quote) error {
	rec := s.record(widgetID)
	rec.mu.Lock()
	rec.current = &q
	rec.mu.Unlock()
	return nil
}

func (s *MemoryStore) SetNextQuote(_ context.Context, widgetID int, q Quote) error {
	rec := s.record(widgetID)
	rec.mu.Lock()
	rec.next = &q
	rec.mu.Unlock()
	return nil
}

func (s *MemoryStore) ClearNextQuote(_ context.Context, widgetID int) error {
	rec := s.record(widgetID)
	rec.mu.Lock()
	rec.next = nil
	rec.mu.Unlock()
	return nil
}

func (s *MemoryStore) SetSaved(_ context.Context, widgetID int, saved bool) error {
	rec := s.record(widgetID)
	rec.mu.Lock()
	rec.saved = saved
	rec.mu.Unlock()
	return nil
}

func (s *MemoryStore) SetConfig(_ context.Context, widgetID int, cfg SurfaceConfig) error {
	rec := s.record(widgetID)
	rec.mu.Lock()
	rec.cfg = cfg
	rec.mu.Unlock()
	return nil
}

func (s *MemoryStore) PromoteNext(_ context.Context, widgetID int) (Quote, bool, error) {
	rec := s.record(widgetID)
	rec.mu.Lock()
	defer rec.mu.Unlock()

	if rec.next == nil {
		return Quote{}, false, nil
	}
	q := *rec.next
	rec.current = &q
	rec.next = nil
	rec.saved = false
	return q, true, nil
}

func (s *MemoryStore) ToggleSaved(_ context.Context, widgetID int) (bool, error) {
	rec := s.record(widgetID)
	rec.mu.Lock()
	defer rec.mu.Unlock()

	if rec.saved {
		rec.saved = false
		return false, nil
	}

	if rec.current == nil || rec.current.Text == "" || rec.current.Reference == "" {
		return false, nil
	}

	rec.saved = true
	s.appendSaved(rec.current.Text, rec.current.Reference, rec.current.Theme)
	return true, nil
}

func (s *MemoryStore) appendSaved(quote, reference, theme string) int {
	s.ledgerMu.Lock()
	defer s.ledgerMu.Unlock()

	pos := len(s.ledger)
	s.ledger = append(s.ledger, SavedQuote{
		Quote:     quote,
		Reference: reference,
		Theme:     theme,
		Position:  pos,
	})
	return pos
}

func (s *MemoryStore) Remove(_ context.Context, widgetID int) error {
	s.mu.Lock()
	delete(s.surfaces, widgetID)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) SavedQuotes(_ context.Context) ([]SavedQuote, error) {
	s.ledgerMu.Lock()
	defer s.ledgerMu.Unlock()

	out := make([]SavedQuote, len(s.ledger))
	copy(out, s.ledger)
	return out, nil
}

func (s *MemoryStore) SavedQuoteAt(_ context.Context, position int) (SavedQuote, error) {
	s.ledgerMu.Lock()
	defer s.ledgerMu.Unlock()

	if position < 0 || position >= len(s.ledger) {
		return SavedQuote{}, ErrNotFound
	}
	return s.ledger[position], nil
}

func (s *MemoryStore) RemoveSavedAt(_ context.Context, position int) error {
	s.ledgerMu.Lock()
	defer s.ledgerMu.Unlock()

	if position < 0 || position >= len(s.ledger) {
		return ErrNotFound
	}

	s.ledger = append(s.ledger[:position], s.ledger[position+1:]...)
	for i := position; i < len(s.ledger); i++ {
		s.ledger[i].Position = i
	}
	return nil
}
