package main

import (
	"fmt"
	"os"
	"time"

	"github.com/pfrederiksen/gridiron-ical/internal/calendar"
	"github.com/pfrederiksen/gridiron-ical/internal/schedule"
)

func main() {
	eastern, err := time.LoadLocation("America/New_York")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading timezone: %v\n", err)
		os.Exit(1)
	}

	// Create a sample schedule
	games := []*schedule.Game{
		schedule.NewGame(schedule.RawGame{
			OpponentText:  "vs Nevada",
			IsHome:        true,
			DateText:      "Saturday, Aug 30",
			TimeText:      "3:30 PM",
			LocationText:  "University Park, Pa.",
			BroadcastText: "CBS",
		}, time.Date(2025, time.August, 30, 15, 30, 0, 0, eastern), "Penn State"),
		schedule.NewGame(schedule.RawGame{
			OpponentText: "at UCLA",
			DateText:     "Saturday, Oct 4",
			TimeText:     "TBA",
			LocationText: "Pasadena, Calif.",
		}, time.Date(2025, time.October, 4, 13, 0, 0, 0, eastern), "Penn State"),
	}

	// Generate .ics file
	icsContent := calendar.Build(games, "Penn State")

	// Write to file (owner read/write only for security)
	filename := "test-football-schedule.ics"
	if err := os.WriteFile(filename, []byte(icsContent), 0600); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Generated calendar file: %s\n\n", filename)
	fmt.Println("Test it by:")
	fmt.Println("1. Open the .ics file with your calendar app (double-click)")
	fmt.Println("2. Or import it into Google Calendar, Apple Calendar, or Outlook")
	fmt.Println("\nFile contents preview:")
	fmt.Println("---")
	fmt.Println(icsContent)
}
