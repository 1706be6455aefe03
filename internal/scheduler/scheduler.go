// Package scheduler triggers the scrape cycle once at startup and then
// daily at a fixed local hour.
//
// Cycles are serialized: a guard skips the timer's trigger if a cycle is
// somehow still in flight, so two scrapes never overlap. A failed cycle
// is logged and deferred to the next trigger; it never stops the loop.
package scheduler

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/pfrederiksen/gridiron-ical/internal/logger"
)

// Cycle is one full scrape-parse-validate-publish run.
type Cycle func(ctx context.Context) error

// Scheduler runs a Cycle on a daily timer.
type Scheduler struct {
	hour     int
	cycle    Cycle
	inFlight atomic.Bool
}

// New creates a Scheduler firing at the given local hour (0-23).
func New(hour int, cycle Cycle) *Scheduler {
	return &Scheduler{hour: hour, cycle: cycle}
}

// Start runs one cycle immediately, then blocks firing daily until ctx
// is cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	s.runOnce(ctx)

	for {
		next := nextRun(time.Now(), s.hour)
		logger.Info("next scheduled refresh", logger.Fields{
			"at": next.Format("2006-01-02 15:04:05"),
		})

		select {
		case <-ctx.Done():
			logger.Info("scheduler stopped", nil)
			return
		case <-time.After(time.Until(next)):
			s.runOnce(ctx)
		}
	}
}

// TriggerNow runs a cycle outside the timer, honoring the same
// single-flight guard. It reports whether the cycle actually ran.
func (s *Scheduler) TriggerNow(ctx context.Context) bool {
	return s.runOnce(ctx)
}

func (s *Scheduler) runOnce(ctx context.Context) bool {
	if !s.inFlight.CompareAndSwap(false, true) {
		logger.Warn("cycle already in progress, skipping trigger", nil)
		return false
	}
	defer s.inFlight.Store(false)

	start := time.Now()
	if err := s.cycle(ctx); err != nil {
		logger.Error("refresh cycle failed", nil, err)
	}
	logger.RecordTiming("cycle", time.Since(start))
	return true
}

// nextRun returns the next occurrence of hour after now, today or
// tomorrow.
func nextRun(now time.Time, hour int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location())
	if !next.After(now) {
		next = next.Add(24 * time.Hour)
	}
	return next
}
