package schedule

import (
	"fmt"
	"time"
)

// DefaultMinGames is the smallest schedule the validator will trust.
// College football seasons run about twelve games; fewer means a broken
// scrape, not a short season.
const DefaultMinGames = 10

// Validator sanity-checks a whole scraped batch before it is published.
// All checks judge the collection, not individual games: a single bad
// record indicates systemic extraction failure and rejects the batch.
type Validator struct {
	MinGames int
}

// Verdict is the validator's whole-batch decision. Reasons list every
// failed check in the order the checks run.
type Verdict struct {
	Accepted bool     `json:"accepted"`
	Reasons  []string `json:"reasons,omitempty"`
}

// NewValidator returns a Validator with the default minimum game count.
func NewValidator() *Validator {
	return &Validator{MinGames: DefaultMinGames}
}

// Validate decides whether a scraped batch can be trusted for publishing.
// On rejection the caller must not publish; it tries the next source or
// leaves the previously published calendar untouched.
func (v *Validator) Validate(games []*Game, seasonYear int) Verdict {
	if len(games) == 0 {
		return Verdict{Reasons: []string{"no games"}}
	}

	var reasons []string

	if len(games) < v.MinGames {
		reasons = append(reasons, fmt.Sprintf("only %d games, expected at least %d", len(games), v.MinGames))
	}

	for i, g := range games {
		switch {
		case g.Opponent == "" || g.Opponent == PlaceholderOpponent:
			reasons = append(reasons, fmt.Sprintf("game %d has no opponent (date %q)", i+1, g.RawDateText))
		case g.Title == "":
			reasons = append(reasons, fmt.Sprintf("game %d has no title", i+1))
		case g.Start.IsZero():
			reasons = append(reasons, fmt.Sprintf("game %d has no start time", i+1))
		}
	}

	reasons = append(reasons, v.checkDateDiversity(games)...)
	reasons = append(reasons, v.checkDateSpread(games)...)
	reasons = append(reasons, v.checkDefaultDateCluster(games, seasonYear)...)

	return Verdict{Accepted: len(reasons) == 0, Reasons: reasons}
}

// checkDateDiversity catches a parsing bug collapsing many records onto
// the same (wrong) date: at least 70% of games must fall on distinct
// calendar dates.
func (v *Validator) checkDateDiversity(games []*Game) []string {
	dates := make(map[string]int)
	for _, g := range games {
		dates[g.Start.Format("2006-01-02")]++
	}
	if float64(len(dates)) < 0.7*float64(len(games)) {
		return []string{fmt.Sprintf("only %d distinct dates across %d games", len(dates), len(games))}
	}
	return nil
}

// checkDateSpread rejects a season compressed into a short window. A real
// schedule spans months; anything under 30 days indicates systemic
// misparsing.
func (v *Validator) checkDateSpread(games []*Game) []string {
	if len(games) <= 3 {
		return nil
	}
	earliest, latest := games[0].Start, games[0].Start
	for _, g := range games[1:] {
		if g.Start.Before(earliest) {
			earliest = g.Start
		}
		if g.Start.After(latest) {
			latest = g.Start
		}
	}
	if latest.Sub(earliest) < 30*24*time.Hour {
		return []string{fmt.Sprintf("schedule spans only %d days", int(latest.Sub(earliest).Hours()/24))}
	}
	return nil
}

// checkDefaultDateCluster is a regression guard against the silent
// fallback-date bug class: early drafts of this scraper defaulted failed
// parses to September 1st, so a majority of games landing there is
// rejected explicitly even though diversity and spread checks usually
// catch it first.
func (v *Validator) checkDefaultDateCluster(games []*Game, seasonYear int) []string {
	count := 0
	for _, g := range games {
		if g.Start.Month() == time.September && g.Start.Day() == 1 && g.Start.Year() == seasonYear {
			count++
		}
	}
	if count*2 > len(games) {
		return []string{fmt.Sprintf("%d of %d games dated September 1, likely a default-date artifact", count, len(games))}
	}
	return nil
}
