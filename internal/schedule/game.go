package schedule

import (
	"fmt"
	"strings"
	"time"
)

// GameDuration is the fixed length of a published game event.
const GameDuration = 3*time.Hour + 30*time.Minute

// PlaceholderOpponent is the text some source layouts emit when the
// opponent cell is missing. A batch containing it never passes validation.
const PlaceholderOpponent = "Unknown Opponent"

// RawGame is one scraped schedule entry before normalization. Fields hold
// whatever text the extraction strategy found; nothing is trusted yet.
type RawGame struct {
	DateText      string
	TimeText      string
	OpponentText  string
	IsHome        bool
	LocationText  string
	BroadcastText string
}

// Game is a normalized schedule entry ready for publishing. Games are
// immutable after construction; each scrape cycle replaces the whole batch.
type Game struct {
	Title       string    `json:"title"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Location    string    `json:"location"`
	Broadcast   string    `json:"broadcast"`
	IsHome      bool      `json:"is_home"`
	Opponent    string    `json:"opponent"`
	RawDateText string    `json:"raw_date_text"`
	RawTimeText string    `json:"raw_time_text"`
}

// NewGame builds a Game from a raw record and its resolved kickoff time.
// team is the school the calendar is published for.
func NewGame(raw RawGame, start time.Time, team string) *Game {
	opponent := CleanOpponent(raw.OpponentText)

	var title string
	if raw.IsHome {
		title = fmt.Sprintf("%s at %s", opponent, team)
	} else {
		title = fmt.Sprintf("%s at %s", team, opponent)
	}

	return &Game{
		Title:       title,
		Start:       start,
		End:         start.Add(GameDuration),
		Location:    strings.TrimSpace(raw.LocationText),
		Broadcast:   strings.TrimSpace(raw.BroadcastText),
		IsHome:      raw.IsHome,
		Opponent:    opponent,
		RawDateText: strings.TrimSpace(raw.DateText),
		RawTimeText: strings.TrimSpace(raw.TimeText),
	}
}

// CleanOpponent strips "vs"/"at"/"@" prefixes and ranking noise from an
// opponent cell ("vs. #4 Ohio State" -> "#4 Ohio State" -> cleaned name).
func CleanOpponent(s string) string {
	s = strings.TrimSpace(s)
	for {
		lower := strings.ToLower(s)
		switch {
		case strings.HasPrefix(lower, "vs."):
			s = strings.TrimSpace(s[3:])
		case strings.HasPrefix(lower, "vs "):
			s = strings.TrimSpace(s[3:])
		case strings.HasPrefix(lower, "at "):
			s = strings.TrimSpace(s[3:])
		case strings.HasPrefix(s, "@"):
			s = strings.TrimSpace(s[1:])
		default:
			return s
		}
	}
}
