package storage

import (
	"testing"
	"time"

	"github.com/pfrederiksen/gridiron-ical/internal/schedule"
)

func TestPublishAndReadCalendar(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if s.HasCalendar() {
		t.Error("fresh store should have no calendar")
	}

	if err := s.PublishCalendar("BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n"); err != nil {
		t.Fatalf("PublishCalendar: %v", err)
	}
	if !s.HasCalendar() {
		t.Error("calendar should exist after publish")
	}

	got, err := s.Calendar()
	if err != nil {
		t.Fatalf("Calendar: %v", err)
	}
	if got != "BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n" {
		t.Errorf("Calendar = %q", got)
	}
}

func TestPublishReplacesWholeFile(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := s.PublishCalendar("first version with a longer body\n"); err != nil {
		t.Fatal(err)
	}
	if err := s.PublishCalendar("second\n"); err != nil {
		t.Fatal(err)
	}

	got, err := s.Calendar()
	if err != nil {
		t.Fatal(err)
	}
	if got != "second\n" {
		t.Errorf("Calendar = %q, want full replacement", got)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	start := time.Date(2025, time.September, 6, 13, 0, 0, 0, time.UTC)
	games := []*schedule.Game{
		schedule.NewGame(schedule.RawGame{
			DateText:     "Sep 6",
			TimeText:     "TBA",
			OpponentText: "vs FIU",
			IsHome:       true,
		}, start, "Penn State"),
	}

	if err := s.SaveSnapshot(games, 2025); err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}

	snap, err := s.LoadSnapshot()
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	if snap.SeasonYear != 2025 {
		t.Errorf("SeasonYear = %d", snap.SeasonYear)
	}
	if len(snap.Games) != 1 {
		t.Fatalf("got %d games", len(snap.Games))
	}
	g := snap.Games[0]
	if g.Opponent != "FIU" || g.RawDateText != "Sep 6" {
		t.Errorf("game did not survive round trip: %+v", g)
	}
	if !g.Start.Equal(start) {
		t.Errorf("Start = %v, want %v", g.Start, start)
	}
	if _, err := time.Parse(time.RFC3339, snap.UpdatedAt); err != nil {
		t.Errorf("UpdatedAt %q is not RFC3339", snap.UpdatedAt)
	}
}

func TestLoadSnapshotMissingIsEmpty(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	snap, err := s.LoadSnapshot()
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	if snap.Games == nil || len(snap.Games) != 0 {
		t.Errorf("expected empty snapshot, got %+v", snap)
	}
}
