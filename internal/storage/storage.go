// Package storage persists the published calendar and the parsed-games
// snapshot.
//
// The calendar file is the artifact subscribers read; it is replaced
// atomically (write-new-then-rename) and only ever by a whole successful
// cycle, so a failed scrape can never leave subscribers with a truncated
// or empty feed. The snapshot records what the normalizer produced on the
// last successful cycle and feeds the HTTP debug surface.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pfrederiksen/gridiron-ical/internal/schedule"
)

const (
	calendarFile = "football.ics"
	snapshotFile = "games.json"
)

// Store manages the data directory.
type Store struct {
	dataDir string
}

// Snapshot is the parsed-games record from the last successful cycle.
type Snapshot struct {
	Games      []*schedule.Game `json:"games"`
	SeasonYear int              `json:"season_year"`
	UpdatedAt  string           `json:"updated_at"` // RFC3339
}

// New creates a Store rooted at dataDir, creating the directory if
// needed. A leading ~/ expands to the home directory.
func New(dataDir string) (*Store, error) {
	if strings.HasPrefix(dataDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, dataDir[2:])
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	return &Store{dataDir: dataDir}, nil
}

// CalendarPath returns the location of the published calendar file.
func (s *Store) CalendarPath() string {
	return filepath.Join(s.dataDir, calendarFile)
}

// PublishCalendar atomically replaces the published calendar.
func (s *Store) PublishCalendar(data string) error {
	tmp, err := os.CreateTemp(s.dataDir, calendarFile+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp calendar: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing calendar: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing calendar: %w", err)
	}

	if err := os.Rename(tmpName, s.CalendarPath()); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("publishing calendar: %w", err)
	}
	return nil
}

// Calendar returns the published calendar contents.
func (s *Store) Calendar() (string, error) {
	data, err := os.ReadFile(s.CalendarPath())
	if err != nil {
		return "", fmt.Errorf("reading calendar: %w", err)
	}
	return string(data), nil
}

// HasCalendar reports whether a calendar has ever been published.
func (s *Store) HasCalendar() bool {
	_, err := os.Stat(s.CalendarPath())
	return err == nil
}

// SaveSnapshot records the parsed games from a successful cycle.
func (s *Store) SaveSnapshot(games []*schedule.Game, seasonYear int) error {
	snap := Snapshot{
		Games:      games,
		SeasonYear: seasonYear,
		UpdatedAt:  time.Now().UTC().Format(time.RFC3339),
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dataDir, snapshotFile), data, 0644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}

// LoadSnapshot returns the last saved snapshot, or an empty one when no
// cycle has succeeded yet.
func (s *Store) LoadSnapshot() (*Snapshot, error) {
	data, err := os.ReadFile(filepath.Join(s.dataDir, snapshotFile))
	if err != nil {
		if os.IsNotExist(err) {
			return &Snapshot{Games: []*schedule.Game{}}, nil
		}
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}
	if snap.Games == nil {
		snap.Games = []*schedule.Game{}
	}
	return &snap, nil
}
