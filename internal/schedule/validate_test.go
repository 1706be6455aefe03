package schedule

import (
	"strings"
	"testing"
	"time"
)

// seasonGames builds n well-formed games on distinct Saturdays starting
// August 30 of the season.
func seasonGames(n, seasonYear int) []*Game {
	games := make([]*Game, 0, n)
	start := time.Date(seasonYear, time.August, 30, 13, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		kickoff := start.AddDate(0, 0, 7*i)
		games = append(games, &Game{
			Title:    "Opponent at Penn State",
			Start:    kickoff,
			End:      kickoff.Add(GameDuration),
			Opponent: "Opponent",
		})
	}
	return games
}

func TestValidateAcceptsFullSeason(t *testing.T) {
	v := NewValidator()

	verdict := v.Validate(seasonGames(12, 2025), 2025)
	if !verdict.Accepted {
		t.Fatalf("expected full season to be accepted, got reasons: %v", verdict.Reasons)
	}
	if len(verdict.Reasons) != 0 {
		t.Errorf("accepted verdict should carry no reasons, got %v", verdict.Reasons)
	}
}

func TestValidateRejectsEmpty(t *testing.T) {
	v := NewValidator()

	verdict := v.Validate(nil, 2025)
	if verdict.Accepted {
		t.Fatal("expected empty schedule to be rejected")
	}
	if len(verdict.Reasons) != 1 || verdict.Reasons[0] != "no games" {
		t.Errorf("reasons = %v, want [no games]", verdict.Reasons)
	}
}

func TestValidateRejectsShortSchedule(t *testing.T) {
	v := NewValidator()

	verdict := v.Validate(seasonGames(4, 2025), 2025)
	if verdict.Accepted {
		t.Fatal("expected 4-game schedule to be rejected")
	}
	if !hasReasonContaining(verdict, "expected at least") {
		t.Errorf("reasons = %v, want a minimum-count reason", verdict.Reasons)
	}
}

func TestValidateMinGamesConfigurable(t *testing.T) {
	v := &Validator{MinGames: 3}

	verdict := v.Validate(seasonGames(4, 2025), 2025)
	if !verdict.Accepted {
		t.Fatalf("expected 4 games to pass with MinGames=3, got %v", verdict.Reasons)
	}
}

func TestValidateRejectsPlaceholderOpponent(t *testing.T) {
	v := NewValidator()

	games := seasonGames(12, 2025)
	games[5].Opponent = PlaceholderOpponent

	verdict := v.Validate(games, 2025)
	if verdict.Accepted {
		t.Fatal("expected placeholder opponent to reject the whole batch")
	}
	if !hasReasonContaining(verdict, "no opponent") {
		t.Errorf("reasons = %v, want an opponent reason", verdict.Reasons)
	}
}

func TestValidateRejectsMissingStart(t *testing.T) {
	v := NewValidator()

	games := seasonGames(12, 2025)
	games[0].Start = time.Time{}

	verdict := v.Validate(games, 2025)
	if verdict.Accepted {
		t.Fatal("expected zero start time to reject the batch")
	}
}

func TestValidateRejectsDateClustering(t *testing.T) {
	v := NewValidator()

	// Twelve games all collapsed onto September 1: the signature of a
	// fallback-date bug.
	games := make([]*Game, 0, 12)
	day := time.Date(2025, time.September, 1, 13, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		games = append(games, &Game{Title: "t", Start: day, Opponent: "Opponent"})
	}

	verdict := v.Validate(games, 2025)
	if verdict.Accepted {
		t.Fatal("expected clustered schedule to be rejected")
	}
	if !hasReasonContaining(verdict, "distinct dates") {
		t.Errorf("reasons = %v, want a diversity reason", verdict.Reasons)
	}
	if !hasReasonContaining(verdict, "September 1") {
		t.Errorf("reasons = %v, want the September 1 guard to fire", verdict.Reasons)
	}
}

func TestValidateRejectsCompressedSpan(t *testing.T) {
	v := NewValidator()

	// Twelve distinct dates inside two weeks: diverse but implausibly
	// compressed.
	games := make([]*Game, 0, 12)
	start := time.Date(2025, time.October, 1, 13, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		games = append(games, &Game{Title: "t", Start: start.AddDate(0, 0, i), Opponent: "Opponent"})
	}

	verdict := v.Validate(games, 2025)
	if verdict.Accepted {
		t.Fatal("expected compressed schedule to be rejected")
	}
	if !hasReasonContaining(verdict, "spans only") {
		t.Errorf("reasons = %v, want a spread reason", verdict.Reasons)
	}
}

func hasReasonContaining(v Verdict, substr string) bool {
	for _, r := range v.Reasons {
		if strings.Contains(r, substr) {
			return true
		}
	}
	return false
}
