package widget

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func newTestScheduler(updateAll func(context.Context)) *Scheduler {
	return NewScheduler(SchedulerConfig{
		InitialDelay: 10 * time.Millisecond,
		JitterMin:    20 * time.Millisecond,
		JitterMax:    40 * time.Millisecond,
		JitterStep:   10 * time.Millisecond,
	}, updateAll, zerolog.Nop())
}

func TestSchedulerAtMostOneTriggerArmed(t *testing.T) {
	t.Parallel()

	s := longDelayScheduler()
	defer s.Cancel()

	s.ScheduleInitial()
	s.ScheduleInitial()
	s.ScheduleInitial()
	require.True(t, s.Armed())

	s.Cancel()
	require.False(t, s.Armed())

	// Cancel is idempotent and safe when nothing is scheduled.
	s.Cancel()
	require.False(t, s.Armed())
}

// longDelayScheduler cannot fire during a test, so arming behaviour can be
// asserted without races.
func longDelayScheduler() *Scheduler {
	return NewScheduler(SchedulerConfig{
		InitialDelay: time.Hour,
		JitterMin:    time.Hour,
		JitterMax:    time.Hour,
	}, func(context.Context) {}, zerolog.Nop())
}

func TestSchedulerFiresAndRearms(t *testing.T) {
	t.Parallel()

	var fires atomic.Int32
	s := newTestScheduler(func(context.Context) { fires.Add(1) })
	defer s.Cancel()

	s.ScheduleInitial()

	require.Eventually(t, func() bool {
		return fires.Load() >= 2
	}, 2*time.Second, 5*time.Millisecond, "scheduler must fire and re-arm with a fresh jitter draw")

	// Re-arming happens right after each fire; poll to avoid catching the
	// scheduler mid-fire.
	require.Eventually(t, s.Armed, time.Second, 5*time.Millisecond)
}

func TestSchedulerCancelPreventsFurtherUpdates(t *testing.T) {
	t.Parallel()

	var fires atomic.Int32
	s := newTestScheduler(func(context.Context) { fires.Add(1) })

	s.ScheduleInitial()
	s.Cancel()

	time.Sleep(100 * time.Millisecond)
	require.Equal(t, int32(0), fires.Load())
	require.False(t, s.Armed())
}

func TestSchedulerJitterStaysInRange(t *testing.T) {
	t.Parallel()

	s := newTestScheduler(func(context.Context) {})
	for i := 0; i < 100; i++ {
		d := s.jitter()
		require.GreaterOrEqual(t, d, 20*time.Millisecond)
		require.LessOrEqual(t, d, 40*time.Millisecond)
	}
}
