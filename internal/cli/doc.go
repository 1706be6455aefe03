// Package cli implements the command-line interface for gridiron-ical.
//
// The cli package provides the Cobra-based CLI with two commands: serve,
// which runs the HTTP feed alongside the daily refresh scheduler, and
// scrape, which performs a single scrape cycle and prints the result
// (text/JSON). It coordinates the source, calendar, storage, server and
// scheduler packages around a shared refresh cycle.
package cli
