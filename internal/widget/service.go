package widget

import (
	"context"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/tundeakins/quote-widget-api/internal/catalog"
)

// QuoteSource is the remote fetch boundary. Implementations are
// best-effort; the resolver never blocks a display path on one.
type QuoteSource interface {
	FetchByTheme(ctx context.Context, theme string) (catalog.Quote, error)
}

// Service is the quote resolver: it decides synchronously what a widget
// shows now, warms the next quote in the background, and owns the
// surface lifecycle hooks.
type Service struct {
	store   Store
	catalog *catalog.Catalog
	source  QuoteSource
	log     zerolog.Logger

	scheduler *Scheduler

	jobs       chan warmJob
	inflightMu sync.Mutex
	inflight   map[int]struct{}

	stopOnce sync.Once
	done     chan struct{}
	wg       sync.WaitGroup
}

type warmJob struct {
	widgetID int
	theme    string
}

func NewService(store Store, cat *catalog.Catalog, source QuoteSource, log zerolog.Logger) *Service {
	return &Service{
		store:    store,
		catalog:  cat,
		source:   source,
		log:      log,
		jobs:     make(chan warmJob, 64),
		inflight: make(map[int]struct{}),
		done:     make(chan struct{}),
	}
}

// AttachScheduler wires the refresh scheduler in after construction; the
// scheduler needs UpdateAll, so the two are built in sequence.
func (s *Service) AttachScheduler(sched *Scheduler) {
	s.scheduler = sched
}

// Start launches the single warm worker. One worker is enough: at most one
// fetch per widget is outstanding per refresh cycle.
func (s *Service) Start() {
	s.wg.Add(1)
	go s.warmWorker()
}

// Stop shuts the warm worker down. Queued jobs are dropped; an in-flight
// fetch runs to completion (its own timeout bounds it).
func (s *Service) Stop() {
	s.stopOnce.Do(func() { close(s.done) })
	s.wg.Wait()
}

func (s *Service) warmWorker() {
	defer s.wg.Done()
	for {
		select {
		case <-s.done:
			return
		case job := <-s.jobs:
			s.warm(job)
		}
	}
}

func (s *Service) warm(job warmJob) {
	defer func() {
		s.inflightMu.Lock()
		delete(s.inflight, job.widgetID)
		s.inflightMu.Unlock()
	}()

	quote, err := s.source.FetchByTheme(context.Background(), job.theme)
	if err != nil {
		// Warm failures are silent: the catalog guarantees a displayable
		// quote regardless.
		s.log.Debug().Err(err).Int("widget_id", job.widgetID).Msg("warm fetch failed")
		return
	}

	if err := s.store.SetNextQuote(context.Background(), job.widgetID, quote); err != nil {
		s.log.Error().Err(err).Int("widget_id", job.widgetID).Msg("store next quote")
		return
	}
	s.log.Debug().Int("widget_id", job.widgetID).Str("reference", quote.Reference).Msg("warmed next quote")
}

// enqueueWarm schedules a background fetch for the widget unless one is
// already pending.
func (s *Service) enqueueWarm(widgetID int, theme string) {
	s.inflightMu.Lock()
	if _, busy := s.inflight[widgetID]; busy {
		s.inflightMu.Unlock()
		return
	}
	s.inflight[widgetID] = struct{}{}
	s.inflightMu.Unlock()

	select {
	case s.jobs <- warmJob{widgetID: widgetID, theme: theme}:
	default:
		// Queue full; drop the job, the next refresh cycle retries.
		s.inflightMu.Lock()
		delete(s.inflight, widgetID)
		s.inflightMu.Unlock()
	}
}

// Display resolves what the widget shows right now. Always synchronous and
// total: a cached quote is returned unchanged, otherwise a catalog quote is
// drawn and persisted. The network is only ever touched by the background
// warm this kicks off.
func (s *Service) Display(ctx context.Context, widgetID int) (DisplayPayload, error) {
	state, err := s.ensureSurface(ctx, widgetID)
	if err != nil {
		return DisplayPayload{}, err
	}

	if state.Current == nil {
		q := s.catalog.RandomQuote(state.Config.Theme)
		if err := s.store.SetCurrentQuote(ctx, widgetID, q); err != nil {
			return DisplayPayload{}, err
		}
		if err := s.store.SetSaved(ctx, widgetID, false); err != nil {
			return DisplayPayload{}, err
		}
		state.Current = &q
		state.IsSaved = false
	}

	s.enqueueWarm(widgetID, state.Config.Theme)

	return DisplayPayload{
		QuoteText:     state.Current.Text,
		ReferenceText: state.Current.Reference,
		ThemeLabel:    strings.ToUpper(state.Current.Theme),
		IsSaved:       state.IsSaved,
	}, nil
}

// Refresh promotes the warmed next quote into the current slot, or draws a
// fresh catalog quote when nothing was warmed, then re-arms the warm.
func (s *Service) Refresh(ctx context.Context, widgetID int) error {
	state, err := s.store.Get(ctx, widgetID)
	if err != nil {
		return err
	}

	if _, promoted, err := s.store.PromoteNext(ctx, widgetID); err != nil {
		return err
	} else if !promoted {
		q := s.catalog.RandomQuote(state.Config.Theme)
		if err := s.store.SetCurrentQuote(ctx, widgetID, q); err != nil {
			return err
		}
		if err := s.store.SetSaved(ctx, widgetID, false); err != nil {
			return err
		}
	}

	s.enqueueWarm(widgetID, state.Config.Theme)
	return nil
}

// UpdateAll refreshes every known widget. This is the scheduler's
// entrypoint; individual failures are logged and skipped so one widget
// cannot stall the rest.
func (s *Service) UpdateAll(ctx context.Context) {
	ids, err := s.store.Surfaces(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("list surfaces")
		return
	}

	s.log.Info().Int("widgets", len(ids)).Msg("refreshing all widgets")
	for _, id := range ids {
		if err := s.Refresh(ctx, id); err != nil {
			s.log.Error().Err(err).Int("widget_id", id).Msg("refresh widget")
		}
	}
}

// ToggleSaved flips the saved flag for the widget's current quote and
// returns the new value.
func (s *Service) ToggleSaved(ctx context.Context, widgetID int) (bool, error) {
	return s.store.ToggleSaved(ctx, widgetID)
}

// Config returns the widget's configuration, creating defaults when the
// widget is new.
func (s *Service) Config(ctx context.Context, widgetID int) (SurfaceConfig, error) {
	state, err := s.ensureSurface(ctx, widgetID)
	if err != nil {
		return SurfaceConfig{}, err
	}
	return state.Config, nil
}

// Configure writes new settings and immediately re-resolves the widget so
// the change takes effect without waiting for the next scheduled tick. A
// theme change invalidates any quote warmed for the old theme. When
// notifications transition to enabled the initial refresh is re-armed.
func (s *Service) Configure(ctx context.Context, widgetID int, cfg SurfaceConfig) error {
	prev, err := s.ensureSurface(ctx, widgetID)
	if err != nil {
		return err
	}

	if err := s.store.SetConfig(ctx, widgetID, cfg); err != nil {
		return err
	}

	if cfg.Theme != prev.Config.Theme {
		if err := s.store.ClearNextQuote(ctx, widgetID); err != nil {
			return err
		}
	}

	if err := s.Refresh(ctx, widgetID); err != nil {
		return err
	}

	if cfg.NotificationsEnabled && !prev.Config.NotificationsEnabled && s.scheduler != nil {
		s.scheduler.ScheduleInitial()
	}
	return nil
}

// RemoveSurface purges all state for a widget. When the last widget goes
// away the scheduler is disarmed.
func (s *Service) RemoveSurface(ctx context.Context, widgetID int) error {
	if err := s.store.Remove(ctx, widgetID); err != nil {
		return err
	}

	ids, err := s.store.Surfaces(ctx)
	if err != nil {
		return err
	}
	if len(ids) == 0 && s.scheduler != nil {
		s.scheduler.Cancel()
	}
	return nil
}

// ActiveSurfaces lists the ids of every known widget.
func (s *Service) ActiveSurfaces(ctx context.Context) ([]int, error) {
	return s.store.Surfaces(ctx)
}

// SavedQuotes lists the ledger in insertion order.
func (s *Service) SavedQuotes(ctx context.Context) ([]SavedQuote, error) {
	return s.store.SavedQuotes(ctx)
}

// RemoveSavedQuote deletes a ledger entry; later entries shift down.
func (s *Service) RemoveSavedQuote(ctx context.Context, position int) error {
	return s.store.RemoveSavedAt(ctx, position)
}

// ShareSavedQuote renders the entry at position as a share string.
func (s *Service) ShareSavedQuote(ctx context.Context, position int) (string, error) {
	entry, err := s.store.SavedQuoteAt(ctx, position)
	if err != nil {
		return "", err
	}
	return ShareText(entry), nil
}

// ensureSurface reads the widget state, creating a defaulted entry for new
// widgets. The first active widget arms the initial refresh.
func (s *Service) ensureSurface(ctx context.Context, widgetID int) (SurfaceState, error) {
	ids, err := s.store.Surfaces(ctx)
	if err != nil {
		return SurfaceState{}, err
	}

	state, err := s.store.Get(ctx, widgetID)
	if err != nil {
		return SurfaceState{}, err
	}

	if len(ids) == 0 && s.scheduler != nil {
		s.log.Info().Int("widget_id", widgetID).Msg("first widget activated")
		s.scheduler.ScheduleInitial()
	}
	return state, nil
}
