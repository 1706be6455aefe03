package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/gridiron-ical/internal/calendar"
	"github.com/pfrederiksen/gridiron-ical/internal/config"
	"github.com/pfrederiksen/gridiron-ical/internal/schedule"
	"github.com/pfrederiksen/gridiron-ical/internal/storage"
)

var (
	flagFormat  string
	flagPublish bool
)

func newScrapeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scrape",
		Short: "Run one scrape cycle and print the schedule",
		RunE:  runScrape,
	}

	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.Flags().BoolVar(&flagPublish, "publish", false, "Also publish the calendar and snapshot to the data directory")

	return cmd
}

func runScrape(cmd *cobra.Command, args []string) error {
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	season := cfg.SeasonYear
	if season == 0 {
		season = schedule.SeasonForDate(time.Now())
	}

	games, err := newOrchestrator(cfg).Run(cmd.Context(), season)
	if err != nil {
		return fmt.Errorf("scraping schedule: %w", err)
	}

	if flagPublish {
		store, err := storage.New(cfg.DataDir)
		if err != nil {
			return err
		}
		if err := store.PublishCalendar(calendar.Build(games, cfg.Team)); err != nil {
			return fmt.Errorf("publishing calendar: %w", err)
		}
		if err := store.SaveSnapshot(games, season); err != nil {
			return fmt.Errorf("saving snapshot: %w", err)
		}
	}

	result := &OutputResult{
		CheckedAt: time.Now().UTC(),
		Team:      cfg.Team,
		Season:    season,
		Games:     games,
		GameCount: len(games),
	}
	return WriteOutput(os.Stdout, result, format, flagVerbose)
}
