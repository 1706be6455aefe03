package schedule

import "time"

// SeasonForDate returns the season label for the given wall-clock date.
// College football seasons are named for the calendar year in which they
// begin: August through December belong to that year's season, January
// still belongs to the previous year's season (bowl games), and February
// through July count as preparation for the season starting next August.
func SeasonForDate(today time.Time) int {
	if today.Month() == time.January {
		return today.Year() - 1
	}
	return today.Year()
}
