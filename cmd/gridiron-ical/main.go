package main

import (
	// Kickoff times live in America/New_York even when the host has no
	// zoneinfo database.
	_ "time/tzdata"

	"github.com/pfrederiksen/gridiron-ical/internal/cli"
)

func main() {
	cli.Execute()
}
