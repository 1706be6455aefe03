// Package source orchestrates schedule scraping across multiple sources.
//
// Sources are candidate schedule URLs tried strictly in order. For each
// one the orchestrator runs the extraction cascade, normalizes every raw
// record, and validates the whole batch; the first source producing an
// accepted batch wins and later sources are never touched. When every
// source fails the cycle produces nothing, so any previously published
// calendar stays as-is.
package source

import (
	"context"
	"fmt"

	"github.com/PuerkitoBio/goquery"

	"github.com/pfrederiksen/gridiron-ical/internal/logger"
	"github.com/pfrederiksen/gridiron-ical/internal/schedule"
	"github.com/pfrederiksen/gridiron-ical/internal/scraper"
)

// Fetcher retrieves a schedule page as a parsed document.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*goquery.Document, error)
}

// Orchestrator runs the scrape-normalize-validate pipeline per source.
type Orchestrator struct {
	fetcher    Fetcher
	normalizer *schedule.Normalizer
	validator  *schedule.Validator
	strategies []scraper.Strategy
	urls       []string
	team       string
	overrides  map[string]string
}

// New creates an Orchestrator. urls are tried in order; team names the
// school used in event titles; overrides fills broadcast networks by
// opponent when the source lists none.
func New(fetcher Fetcher, normalizer *schedule.Normalizer, validator *schedule.Validator, urls []string, team string, overrides map[string]string) *Orchestrator {
	return &Orchestrator{
		fetcher:    fetcher,
		normalizer: normalizer,
		validator:  validator,
		strategies: scraper.Strategies(),
		urls:       urls,
		team:       team,
		overrides:  overrides,
	}
}

// Run executes one full cycle and returns the first accepted batch. It
// returns an error only when every source fails; the caller then keeps
// whatever calendar is already published.
func (o *Orchestrator) Run(ctx context.Context, seasonYear int) ([]*schedule.Game, error) {
	for _, url := range o.urls {
		games, err := o.scrapeSource(ctx, url, seasonYear)
		if err != nil {
			logger.Error("source failed, trying next", logger.Fields{"url": url}, err)
			continue
		}

		verdict := o.validator.Validate(games, seasonYear)
		if !verdict.Accepted {
			logger.IncrCounter("validation.rejected")
			logger.Warn("schedule rejected by validator", logger.Fields{
				"url":     url,
				"games":   len(games),
				"reasons": verdict.Reasons,
			})
			continue
		}

		logger.IncrCounter("cycles.success")
		logger.Info("schedule accepted", logger.Fields{
			"url":    url,
			"games":  len(games),
			"season": seasonYear,
		})
		return games, nil
	}

	logger.IncrCounter("cycles.failed")
	return nil, fmt.Errorf("all %d sources failed", len(o.urls))
}

// scrapeSource fetches one URL and runs the extraction cascade, stopping
// at the first strategy that yields records.
func (o *Orchestrator) scrapeSource(ctx context.Context, url string, seasonYear int) ([]*schedule.Game, error) {
	doc, err := o.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	for _, strategy := range o.strategies {
		records := strategy.Extract(doc)
		if len(records) == 0 {
			continue
		}
		logger.Debug("extraction strategy matched", logger.Fields{
			"url":      url,
			"strategy": strategy.Name,
			"records":  len(records),
		})
		return o.normalize(records, seasonYear), nil
	}

	return nil, fmt.Errorf("no extraction strategy found games at %s", url)
}

// normalize converts raw records into games, dropping records the
// normalizer rejects. Sibling records are unaffected by a drop.
func (o *Orchestrator) normalize(records []schedule.RawGame, seasonYear int) []*schedule.Game {
	games := make([]*schedule.Game, 0, len(records))
	for _, raw := range records {
		start, err := o.normalizer.ParseKickoff(raw.DateText, raw.TimeText, seasonYear)
		if err != nil {
			logger.IncrCounter("records.dropped")
			logger.Warn("dropping unparseable record", logger.Fields{
				"date_text": raw.DateText,
				"time_text": raw.TimeText,
				"opponent":  raw.OpponentText,
			})
			continue
		}

		game := schedule.NewGame(raw, start, o.team)
		if game.Broadcast == "" {
			if network, ok := o.overrides[game.Opponent]; ok {
				game.Broadcast = network
			}
		}
		games = append(games, game)
	}
	return games
}
