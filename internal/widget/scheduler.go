package widget

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// SchedulerConfig bounds the jittered refresh interval. The jitter is a
// fresh uniform draw of min + n*step (n integral, up to max) every cycle,
// so many installations never refresh in lockstep against the remote API.
type SchedulerConfig struct {
	InitialDelay time.Duration
	JitterMin    time.Duration
	JitterMax    time.Duration
	// JitterStep is the granularity of the draw; zero means one hour,
	// matching the production 4-8h whole-hour range.
	JitterStep time.Duration
}

// Scheduler drives the periodic refresh with a single one-shot timer.
// Invariant: at most one timer is armed at any time. Fires may arrive
// arbitrarily late; the scheduler just runs the update and re-arms.
type Scheduler struct {
	mu        sync.Mutex
	timer     *time.Timer
	cancelled bool

	cfg       SchedulerConfig
	updateAll func(context.Context)
	log       zerolog.Logger
}

func NewScheduler(cfg SchedulerConfig, updateAll func(context.Context), log zerolog.Logger) *Scheduler {
	if cfg.JitterStep <= 0 {
		cfg.JitterStep = time.Hour
	}
	if cfg.JitterMax < cfg.JitterMin {
		cfg.JitterMax = cfg.JitterMin
	}
	return &Scheduler{cfg: cfg, updateAll: updateAll, log: log}
}

// ScheduleInitial arms a one-shot trigger a short fixed delay out, so a
// freshly added widget gets its first refresh promptly. Any pending
// trigger is replaced.
func (s *Scheduler) ScheduleInitial() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelled = false
	s.arm(s.cfg.InitialDelay)
	s.log.Info().Dur("delay", s.cfg.InitialDelay).Msg("initial refresh scheduled")
}

// Cancel disarms any pending trigger. Idempotent; safe when nothing is
// scheduled. An update already in flight is not interrupted, but it will
// not re-arm.
func (s *Scheduler) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelled = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
		s.log.Info().Msg("refresh schedule cancelled")
	}
}

// Armed reports whether a trigger is currently pending.
func (s *Scheduler) Armed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timer != nil
}

// arm replaces the pending timer. Caller holds s.mu.
func (s *Scheduler) arm(d time.Duration) {
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(d, s.fire)
}

func (s *Scheduler) fire() {
	s.mu.Lock()
	if s.cancelled {
		s.mu.Unlock()
		return
	}
	s.timer = nil
	s.mu.Unlock()

	s.updateAll(context.Background())

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancelled {
		return
	}
	next := s.jitter()
	s.arm(next)
	s.log.Info().Dur("next_in", next).Msg("next refresh scheduled")
}

func (s *Scheduler) jitter() time.Duration {
	steps := int((s.cfg.JitterMax - s.cfg.JitterMin) / s.cfg.JitterStep)
	return s.cfg.JitterMin + time.Duration(rand.Intn(steps+1))*s.cfg.JitterStep
}
