package scraper

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pfrederiksen/gridiron-ical/internal/schedule"
)

// Strategy is one independent way of locating game records in a schedule
// document. Strategies are pure over the document: no network, no state.
type Strategy struct {
	Name    string
	Extract func(doc *goquery.Document) []schedule.RawGame
}

// Strategies returns the extraction cascade in rank order: the
// SIDEARM-style game containers most athletics sites use, then generic
// schedule tables, then free-text lines. Callers use the first strategy
// that yields records.
func Strategies() []Strategy {
	return []Strategy{
		{Name: "sidearm", Extract: extractSidearm},
		{Name: "table", Extract: extractTable},
		{Name: "freetext", Extract: extractFreeText},
	}
}

func text(s *goquery.Selection, selector string) string {
	return strings.TrimSpace(s.Find(selector).First().Text())
}

// extractSidearm reads the SIDEARM schedule layout: one
// .sidearm-schedule-game container per game with well-known child
// classes for date, time, opponent, location, and network.
func extractSidearm(doc *goquery.Document) []schedule.RawGame {
	var records []schedule.RawGame

	doc.Find(".sidearm-schedule-game").Each(func(i int, s *goquery.Selection) {
		raw := schedule.RawGame{
			DateText:      text(s, ".sidearm-schedule-game-opponent-date"),
			TimeText:      text(s, ".sidearm-schedule-game-time"),
			OpponentText:  text(s, ".sidearm-schedule-game-opponent-name"),
			LocationText:  text(s, ".sidearm-schedule-game-location"),
			BroadcastText: text(s, ".sidearm-schedule-game-network"),
		}
		if raw.TimeText == "" {
			raw.TimeText = "TBA"
		}
		class, _ := s.Attr("class")
		raw.IsHome = strings.Contains(class, "home") || strings.Contains(raw.LocationText, "Home")

		if raw.DateText == "" && raw.OpponentText == "" {
			return
		}
		records = append(records, raw)
	})

	return records
}

// extractTable reads a conventional schedule table. The header row maps
// column positions to fields; rows missing a date or opponent cell are
// skipped.
func extractTable(doc *goquery.Document) []schedule.RawGame {
	var records []schedule.RawGame

	doc.Find("table").EachWithBreak(func(i int, table *goquery.Selection) bool {
		cols := headerColumns(table)
		if cols["date"] < 0 || cols["opponent"] < 0 {
			return true // not a schedule table, keep looking
		}

		table.Find("tbody tr").Each(func(j int, row *goquery.Selection) {
			cells := row.Find("td")
			cell := func(idx int) string {
				if idx < 0 || idx >= cells.Length() {
					return ""
				}
				return strings.TrimSpace(cells.Eq(idx).Text())
			}

			raw := schedule.RawGame{
				DateText:      cell(cols["date"]),
				TimeText:      cell(cols["time"]),
				OpponentText:  cell(cols["opponent"]),
				LocationText:  cell(cols["location"]),
				BroadcastText: cell(cols["tv"]),
			}
			if raw.DateText == "" || raw.OpponentText == "" {
				return
			}
			if raw.TimeText == "" {
				raw.TimeText = "TBA"
			}
			raw.IsHome = isHomeText(raw.OpponentText, raw.LocationText)
			records = append(records, raw)
		})
		return false // first schedule table wins
	})

	return records
}

// headerColumns maps schedule fields to column indexes from a table's
// header row. Missing fields map to -1.
func headerColumns(table *goquery.Selection) map[string]int {
	cols := map[string]int{"date": -1, "time": -1, "opponent": -1, "location": -1, "tv": -1}

	table.Find("thead th, tr th").Each(func(i int, th *goquery.Selection) {
		header := strings.ToLower(strings.TrimSpace(th.Text()))
		switch {
		case strings.Contains(header, "date"):
			setIfUnset(cols, "date", i)
		case strings.Contains(header, "time"):
			setIfUnset(cols, "time", i)
		case strings.Contains(header, "opponent"), strings.Contains(header, "matchup"):
			setIfUnset(cols, "opponent", i)
		case strings.Contains(header, "location"), strings.Contains(header, "site"):
			setIfUnset(cols, "location", i)
		case strings.Contains(header, "tv"), strings.Contains(header, "network"), strings.Contains(header, "watch"):
			setIfUnset(cols, "tv", i)
		}
	})
	return cols
}

// isHomeText infers home/away from an opponent cell's prefix, falling
// back to the location text.
func isHomeText(opponent, location string) bool {
	lower := strings.ToLower(strings.TrimSpace(opponent))
	if strings.HasPrefix(lower, "at ") || strings.HasPrefix(lower, "@") {
		return false
	}
	if strings.HasPrefix(lower, "vs") {
		return true
	}
	return strings.Contains(location, "Home")
}

func setIfUnset(cols map[string]int, key string, idx int) {
	if cols[key] < 0 {
		cols[key] = idx
	}
}

var freeTextLineRe = regexp.MustCompile(`(?i)^((?:(?:sun|mon|tues?|wed|thur?s?|fri|sat)[a-z]*[.,]?\s*)?(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z.]*\s+\d{1,2}(?:,?\s*20\d{2})?)\s*[-–—:]?\s*(vs\.?|at|@)\s+(.+)$`)

// extractFreeText scans visible text for lines shaped like
// "Sep 6 - vs Ohio State" or "Saturday, Nov 22 at Michigan". It is the
// lowest-confidence strategy and only runs when structured layouts fail.
func extractFreeText(doc *goquery.Document) []schedule.RawGame {
	var records []schedule.RawGame
	seen := make(map[string]bool)

	doc.Find("li, p, div").Each(func(i int, s *goquery.Selection) {
		// Only leaf-ish nodes; containers repeat their children's text.
		if s.Children().Length() > 2 {
			return
		}
		for _, line := range strings.Split(s.Text(), "\n") {
			line = strings.TrimSpace(line)
			if line == "" || seen[line] {
				continue
			}

			m := freeTextLineRe.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			seen[line] = true

			opponent, timeText := splitTrailingTime(m[3])
			marker := strings.ToLower(strings.TrimSuffix(m[2], "."))
			records = append(records, schedule.RawGame{
				DateText:     strings.TrimSpace(m[1]),
				TimeText:     timeText,
				OpponentText: opponent,
				IsHome:       marker == "vs",
			})
		}
	})

	return records
}

var trailingTimeRe = regexp.MustCompile(`(?i)[,\s]+((?:\d{1,2}(?::\d{2})?\s*(?:a\.?m\.?|p\.?m\.?))|noon|tba|tbd)\s*$`)

// splitTrailingTime peels a kickoff time off the end of a free-text
// opponent ("Ohio State 3:30 PM" -> "Ohio State", "3:30 PM").
func splitTrailingTime(s string) (opponent, timeText string) {
	s = strings.TrimSpace(s)
	if m := trailingTimeRe.FindStringSubmatchIndex(s); m != nil {
		return strings.TrimSpace(s[:m[0]]), strings.TrimSpace(s[m[2]:m[3]])
	}
	return s, "TBA"
}
