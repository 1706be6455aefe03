// Package calendar renders normalized games as an iCalendar feed.
//
// The whole feed is rebuilt from scratch on every successful scrape
// cycle; there are no incremental updates. Event UIDs are deterministic
// SHA1 digests of opponent and kickoff so subscribers' clients treat a
// re-published unchanged game as the same event.
package calendar

import (
	"crypto/sha1"
	"fmt"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/pfrederiksen/gridiron-ical/internal/schedule"
)

const prodID = "-//gridiron-ical//football schedule//EN"

// Build renders games into a single VCALENDAR document.
func Build(games []*schedule.Game, team string) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(prodID)

	now := time.Now()
	for _, g := range games {
		ev := cal.AddEvent(EventUID(g))
		ev.SetCreatedTime(now)
		ev.SetDtStampTime(now)
		ev.SetModifiedAt(now)
		ev.SetStartAt(g.Start)
		ev.SetEndAt(g.End)
		ev.SetSummary(g.Title)
		ev.SetLocation(g.Location)
		ev.SetDescription(Description(g))
		ev.SetStatus(ics.ObjectStatusConfirmed)
	}

	return cal.Serialize()
}

// EventUID returns a stable identifier for a game across republishes.
func EventUID(g *schedule.Game) string {
	h := sha1.New()
	fmt.Fprintf(h, "%s|%s", g.Opponent, g.Start.UTC().Format(time.RFC3339))
	return fmt.Sprintf("%x@gridiron-ical", h.Sum(nil))
}

// Description assembles the free-text event body: broadcast, home/away,
// and the raw schedule text the kickoff was derived from.
func Description(g *schedule.Game) string {
	var lines []string
	if g.Broadcast != "" {
		lines = append(lines, "Broadcast on: "+g.Broadcast)
	}
	if g.IsHome {
		lines = append(lines, "Home Game")
	} else {
		lines = append(lines, "Away Game")
	}
	lines = append(lines, fmt.Sprintf("Scheduled: %s %s (%s)",
		g.RawDateText, g.RawTimeText, g.Start.Location()))
	return strings.Join(lines, "\n")
}

// Event is one entry read back from a serialized calendar.
type Event struct {
	UID     string
	Summary string
	Start   time.Time
	End     time.Time
}

// Parse reads a serialized calendar back into events. Used by the debug
// surface and by round-trip verification; times come back in UTC.
func Parse(data string) ([]Event, error) {
	cal, err := ics.ParseCalendar(strings.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing calendar: %w", err)
	}

	events := make([]Event, 0, len(cal.Events()))
	for _, ve := range cal.Events() {
		start, err := ve.GetStartAt()
		if err != nil {
			return nil, fmt.Errorf("event %s: reading start: %w", ve.Id(), err)
		}
		end, err := ve.GetEndAt()
		if err != nil {
			return nil, fmt.Errorf("event %s: reading end: %w", ve.Id(), err)
		}

		evt := Event{UID: ve.Id(), Start: start, End: end}
		if p := ve.GetProperty(ics.ComponentPropertySummary); p != nil {
			evt.Summary = p.Value
		}
		events = append(events, evt)
	}
	return events, nil
}
