package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/pfrederiksen/gridiron-ical/internal/schedule"
)

func sampleResult(t *testing.T) *OutputResult {
	t.Helper()
	return &OutputResult{
		CheckedAt: time.Date(2025, time.August, 30, 12, 0, 0, 0, time.UTC),
		Team:      "Penn State",
		Season:    2025,
		Games: []*schedule.Game{
			testGame(t, "Nevada", time.Date(2025, time.August, 30, 15, 30, 0, 0, time.UTC)),
			testGame(t, "Villanova", time.Date(2025, time.September, 6, 13, 0, 0, 0, time.UTC)),
		},
		GameCount: 2,
	}
}

func TestWriteTextOutput(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOutput(&buf, sampleResult(t), FormatText, false); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{"Penn State 2025 season (2 games)", "Nevada at Penn State", "[home]"} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Scraped:") {
		t.Error("non-verbose output includes raw scrape text")
	}
}

func TestWriteTextVerboseIncludesRawText(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOutput(&buf, sampleResult(t), FormatText, true); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "Scraped:") {
		t.Errorf("verbose output missing raw scrape text:\n%s", buf.String())
	}
}

func TestWriteTextEmpty(t *testing.T) {
	var buf bytes.Buffer
	result := &OutputResult{Team: "Penn State", Season: 2025}
	if err := WriteOutput(&buf, result, FormatText, false); err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(buf.String()); got != "No games found." {
		t.Errorf("empty output = %q", got)
	}
}

func TestWriteJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOutput(&buf, sampleResult(t), FormatJSON, false); err != nil {
		t.Fatal(err)
	}

	var decoded OutputResult
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.GameCount != 2 || len(decoded.Games) != 2 {
		t.Errorf("decoded %d games (count %d), want 2", len(decoded.Games), decoded.GameCount)
	}
	if decoded.Games[0].Opponent != "Nevada" {
		t.Errorf("first opponent = %q, want Nevada", decoded.Games[0].Opponent)
	}
}

func TestWriteOutputUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOutput(&buf, sampleResult(t), OutputFormat("yaml"), false); err == nil {
		t.Error("expected error for unknown format")
	}
}
