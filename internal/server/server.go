package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog"

	"github.com/tundeakins/quote-widget-api/internal/bibleapi"
	"github.com/tundeakins/quote-widget-api/internal/catalog"
	"github.com/tundeakins/quote-widget-api/internal/database"
	"github.com/tundeakins/quote-widget-api/internal/widget"
	"github.com/tundeakins/quote-widget-api/pkg/config"
)

type Server struct {
	port      string
	db        database.Service
	handler   http.Handler
	cfg       *config.Config
	log       zerolog.Logger
	service   *widget.Service
	scheduler *widget.Scheduler
}

// NewServer constructs the app server with all dependencies injected.
func NewServer(db database.Service, cfg *config.Config, log zerolog.Logger) (*Server, error) {
	stats := db.Health()
	if stats["status"] != "up" {
		return nil, fmt.Errorf("database connection failed: %s", stats["error"])
	}
	log.Info().Msg("database connection successful")

	store, err := widget.NewPostgresStore(db)
	if err != nil {
		return nil, fmt.Errorf("build widget store: %w", err)
	}

	cat := catalog.New()
	source := bibleapi.NewClient(cat, log,
		bibleapi.WithBaseURL(cfg.BibleAPIBaseURL),
		bibleapi.WithTranslation(cfg.BibleTranslation),
	)

	service := widget.NewService(store, cat, source, log)
	scheduler := widget.NewScheduler(widget.SchedulerConfig{
		InitialDelay: cfg.RefreshInitialDelay,
		JitterMin:    cfg.RefreshJitterMin,
		JitterMax:    cfg.RefreshJitterMax,
	}, service.UpdateAll, log)
	service.AttachScheduler(scheduler)

	s := &Server{
		port:      cfg.Port,
		db:        db,
		cfg:       cfg,
		log:       log,
		service:   service,
		scheduler: scheduler,
	}

	s.handler = s.RegisterRoutes()
	return s, nil
}

// HTTPServer returns the actual *http.Server instance
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf(":%s", s.port),
		Handler:      s.handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// StartBackgroundJobs launches the warm worker and, when widgets already
// exist from a previous run, re-arms the refresh schedule. Process timers
// do not survive restarts, so this covers missed ticks.
func (s *Server) StartBackgroundJobs() {
	s.service.Start()

	ids, err := s.service.ActiveSurfaces(context.Background())
	if err != nil {
		s.log.Error().Err(err).Msg("list surfaces on startup")
		return
	}
	if len(ids) > 0 {
		s.scheduler.ScheduleInitial()
		s.log.Info().Int("widgets", len(ids)).Msg("refresh schedule restored")
	}
}

func (s *Server) StopBackgroundJobs() {
	s.scheduler.Cancel()
	s.service.Stop()
	s.log.Info().Msg("background jobs stopped gracefully")
}
