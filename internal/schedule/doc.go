// Package schedule provides the core normalization pipeline for scraped
// football schedules.
//
// The schedule package turns raw text fields pulled off an athletics
// website (date text in a dozen inconsistent forms, kickoff times that may
// be "TBA", opponent names with "vs"/"at" prefixes) into timezone-aware
// calendar games, and sanity-checks a whole scraped batch before it is
// trusted for publishing. Season-year resolution handles the Aug-Jan span
// of a college football season so that dates without an explicit year land
// in the right calendar year.
package schedule
