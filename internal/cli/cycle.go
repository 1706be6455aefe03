package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/pfrederiksen/gridiron-ical/internal/calendar"
	"github.com/pfrederiksen/gridiron-ical/internal/config"
	"github.com/pfrederiksen/gridiron-ical/internal/logger"
	"github.com/pfrederiksen/gridiron-ical/internal/schedule"
	"github.com/pfrederiksen/gridiron-ical/internal/scheduler"
	"github.com/pfrederiksen/gridiron-ical/internal/scraper"
	"github.com/pfrederiksen/gridiron-ical/internal/source"
	"github.com/pfrederiksen/gridiron-ical/internal/storage"
)

// newOrchestrator wires the scrape pipeline from config.
func newOrchestrator(cfg *config.Config) *source.Orchestrator {
	normalizer := schedule.NewNormalizer()
	normalizer.AssumePM = cfg.AssumePM

	validator := schedule.NewValidator()
	validator.MinGames = cfg.MinGames

	return source.New(scraper.NewClient(), normalizer, validator, cfg.ScheduleURLs, cfg.Team, cfg.BroadcastOverrides)
}

// Runner produces a validated schedule for a season.
type Runner interface {
	Run(ctx context.Context, seasonYear int) ([]*schedule.Game, error)
}

// NewCycle builds the refresh cycle: run the orchestrator, render the
// calendar, publish it atomically and save the games snapshot. When the
// run fails nothing is written, so the previously published calendar
// keeps serving.
func NewCycle(cfg *config.Config, store *storage.Store, runner Runner) scheduler.Cycle {
	return func(ctx context.Context) error {
		season := cfg.SeasonYear
		if season == 0 {
			season = schedule.SeasonForDate(time.Now())
		}

		games, err := runner.Run(ctx, season)
		if err != nil {
			return fmt.Errorf("refreshing schedule: %w", err)
		}

		if err := store.PublishCalendar(calendar.Build(games, cfg.Team)); err != nil {
			return fmt.Errorf("publishing calendar: %w", err)
		}
		if err := store.SaveSnapshot(games, season); err != nil {
			logger.Warn("saving games snapshot failed", logger.Fields{"error": err.Error()})
		}

		logger.Info("calendar published", logger.Fields{
			"games":  len(games),
			"season": season,
			"path":   store.CalendarPath(),
		})
		return nil
	}
}
