package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Default kickoff when the source lists no time ("TBA"/"TBD"/empty).
// 1 PM, not noon: most afternoon slates kick off at one.
const (
	defaultKickoffHour = 13
	noonHour           = 12
)

// ParseError reports date or time text the normalizer could not resolve.
// Callers must drop the record; there is no fallback date.
type ParseError struct {
	DateText string
	TimeText string
	Reason   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unparseable kickoff (date %q, time %q): %s", e.DateText, e.TimeText, e.Reason)
}

// Normalizer converts raw schedule text into timezone-aware kickoff times.
// The zero value is not usable; construct with NewNormalizer.
type Normalizer struct {
	// Location is the civil timezone games are published in.
	Location *time.Location
	// AssumePM treats a bare hour below 8 with no AM/PM marker as
	// afternoon ("4:00" -> 16:00). Kickoffs before 8 AM are rare.
	AssumePM bool
}

// NewNormalizer returns a Normalizer for US Eastern time with the
// afternoon bias enabled.
func NewNormalizer() *Normalizer {
	return &Normalizer{
		Location: easternTime(),
		AssumePM: true,
	}
}

// easternTime loads America/New_York, falling back to a fixed EST offset
// when the host has no zoneinfo database.
func easternTime() *time.Location {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		return time.FixedZone("EST", -5*60*60)
	}
	return loc
}

var (
	slashDateRe = regexp.MustCompile(`^\s*(\d{1,2})/(\d{1,2})(?:/(\d{2,4}))?\s*$`)
	isoDateRe   = regexp.MustCompile(`^\s*(\d{4})-(\d{1,2})-(\d{1,2})\s*$`)

	// Full names first so "SaturdayNov 22" strips the whole weekday even
	// when it is concatenated against the month token.
	weekdayRe = regexp.MustCompile(`(?i)^(sunday|monday|tuesday|wednesday|thursday|friday|saturday|sun|mon|tues|tue|wed|thurs|thur|thu|fri|sat)[.,\s]*`)

	monthRe = regexp.MustCompile(`(?i)(january|february|march|april|august|september|october|november|december|jan|feb|mar|apr|may|june|jun|july|jul|aug|sept|sep|oct|nov|dec)\.?`)

	dayTokenRe  = regexp.MustCompile(`\b(\d{1,2})\b`)
	yearTokenRe = regexp.MustCompile(`\b(20\d{2})\b`)

	clockRe = regexp.MustCompile(`(\d{1,2})(?::(\d{2}))?\s*(a\.?m\.?|p\.?m\.?)?`)
)

var monthNumbers = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// ParseKickoff resolves raw date and time text into a single point in time
// in the normalizer's timezone. seasonYear disambiguates dates that carry
// no explicit year. A date that cannot be resolved returns a *ParseError;
// time text that cannot be resolved falls back to the 1 PM default.
func (n *Normalizer) ParseKickoff(dateText, timeText string, seasonYear int) (time.Time, error) {
	trimmed := strings.TrimSpace(dateText)
	if trimmed == "" {
		return time.Time{}, &ParseError{dateText, timeText, "empty date text"}
	}

	year, month, day, perr := n.parseDate(trimmed, seasonYear)
	if perr != nil {
		perr.TimeText = timeText
		return time.Time{}, perr
	}

	hour, minute := n.parseClock(timeText)

	t := time.Date(year, month, day, hour, minute, 0, 0, n.Location)
	// time.Date normalizes out-of-range days (Feb 30 -> Mar 2); that is a
	// misparse here, not a real date.
	if t.Month() != month || t.Day() != day {
		return time.Time{}, &ParseError{dateText, timeText,
			fmt.Sprintf("day %d out of range for %s", day, month)}
	}
	return t, nil
}

// parseDate resolves the calendar date portion. Attempts are ordered:
// numeric slash form, ISO form, then month-name forms with an optional
// weekday prefix.
func (n *Normalizer) parseDate(text string, seasonYear int) (int, time.Month, int, *ParseError) {
	if m := slashDateRe.FindStringSubmatch(text); m != nil {
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		if month < 1 || month > 12 {
			return 0, 0, 0, &ParseError{DateText: text, Reason: fmt.Sprintf("month %d out of range", month)}
		}
		year := inferYear(time.Month(month), seasonYear)
		if m[3] != "" {
			year, _ = strconv.Atoi(m[3])
			if year < 100 {
				// Century threshold inherited from older schedule data.
				if year > 50 {
					year += 1900
				} else {
					year += 2000
				}
			}
		}
		return year, time.Month(month), day, nil
	}

	if m := isoDateRe.FindStringSubmatch(text); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		if month < 1 || month > 12 {
			return 0, 0, 0, &ParseError{DateText: text, Reason: fmt.Sprintf("month %d out of range", month)}
		}
		return year, time.Month(month), day, nil
	}

	// Weekday prefix is noise; strip it even when concatenated directly
	// against the month token ("SaturdayNov 22").
	stripped := weekdayRe.ReplaceAllString(text, "")

	loc := monthRe.FindStringIndex(stripped)
	if loc == nil {
		return 0, 0, 0, &ParseError{DateText: text, Reason: "no recognizable month"}
	}
	name := strings.ToLower(strings.TrimSuffix(stripped[loc[0]:loc[1]], "."))
	if len(name) > 3 {
		name = name[:3]
	}
	month, ok := monthNumbers[name]
	if !ok {
		return 0, 0, 0, &ParseError{DateText: text, Reason: "no recognizable month"}
	}

	// Day number: prefer a token after the month, fall back to one before.
	day := findDay(stripped[loc[1]:])
	if day == 0 {
		day = findDay(stripped[:loc[0]])
	}
	if day == 0 {
		return 0, 0, 0, &ParseError{DateText: text, Reason: "no day number"}
	}

	year := inferYear(month, seasonYear)
	if m := yearTokenRe.FindStringSubmatch(text); m != nil {
		year, _ = strconv.Atoi(m[1])
	}
	return year, month, day, nil
}

// findDay returns the first 1-2 digit token in s, or 0. Four-digit year
// tokens never match because of the word boundaries.
func findDay(s string) int {
	m := dayTokenRe.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	day, _ := strconv.Atoi(m[1])
	if day < 1 || day > 31 {
		return 0
	}
	return day
}

// inferYear maps a month with no explicit year onto a calendar year given
// the season label: Aug-Dec is the regular season, Jan-Apr covers bowl
// games and spring exhibitions the following year, May-Jul is treated as
// next season's early slate.
func inferYear(month time.Month, seasonYear int) int {
	if month >= time.August {
		return seasonYear
	}
	return seasonYear + 1
}

// parseClock resolves kickoff time text to (hour, minute). Missing,
// placeholder, or unintelligible text yields the 1 PM default; "noon"
// always means exactly 12:00. Slash-separated alternatives
// ("noon/3:30/4 p.m.") use only the first option.
func (n *Normalizer) parseClock(text string) (int, int) {
	t := strings.TrimSpace(text)
	if t == "" {
		return defaultKickoffHour, 0
	}
	if i := strings.IndexByte(t, '/'); i >= 0 {
		t = strings.TrimSpace(t[:i])
	}

	lower := strings.ToLower(t)
	if strings.Contains(lower, "tba") || strings.Contains(lower, "tbd") {
		return defaultKickoffHour, 0
	}
	if strings.Contains(lower, "noon") {
		return noonHour, 0
	}

	m := clockRe.FindStringSubmatch(lower)
	if m == nil {
		return defaultKickoffHour, 0
	}

	hour, _ := strconv.Atoi(m[1])
	minute := 0
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}

	switch strings.ReplaceAll(m[3], ".", "") {
	case "pm":
		if hour < 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	default:
		if n.AssumePM && hour < 8 {
			hour += 12
		}
	}

	if hour > 23 || minute > 59 {
		return defaultKickoffHour, 0
	}
	return hour, minute
}
