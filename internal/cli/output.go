package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/pfrederiksen/gridiron-ical/internal/schedule"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// OutputResult contains data to be output
type OutputResult struct {
	CheckedAt time.Time        `json:"checked_at"`
	Team      string           `json:"team"`
	Season    int              `json:"season"`
	Games     []*schedule.Game `json:"games"`
	GameCount int              `json:"game_count"`
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat, verbose bool) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result, verbose)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func writeJSON(w io.Writer, result *OutputResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func writeText(w io.Writer, result *OutputResult, verbose bool) error {
	if result.GameCount == 0 {
		fmt.Fprintln(w, "No games found.")
		return nil
	}

	fmt.Fprintf(w, "%s %d season (%d games):\n\n", result.Team, result.Season, result.GameCount)

	for _, g := range result.Games {
		venue := "away"
		if g.IsHome {
			venue = "home"
		}

		fmt.Fprintf(w, "  %s  %s [%s]", g.Start.Format("Mon Jan 02 3:04 PM MST"), g.Title, venue)
		if g.Broadcast != "" {
			fmt.Fprintf(w, " on %s", g.Broadcast)
		}
		fmt.Fprintln(w)

		if verbose {
			if g.Location != "" {
				fmt.Fprintf(w, "       Location: %s\n", g.Location)
			}
			fmt.Fprintf(w, "       Scraped: %q / %q\n", g.RawDateText, g.RawTimeText)
		}
	}

	return nil
}
