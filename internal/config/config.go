// Package config provides file-based configuration for the scraper
// service.
//
// Configuration is a single JSON file; every field has a sensible default
// so the service runs with no file at all. The broadcast overrides table
// is the versioned replacement for the per-team constants older drafts of
// this scraper carried inline.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// Config holds all runtime settings.
type Config struct {
	// Team is the school name used in event titles.
	Team string `json:"team"`
	// ScheduleURLs are candidate schedule pages, tried in order.
	ScheduleURLs []string `json:"schedule_urls"`
	// SeasonYear overrides season derivation from the clock; 0 derives.
	SeasonYear int `json:"season_year"`
	// DataDir holds the published calendar and the games snapshot.
	DataDir string `json:"data_dir"`
	// ListenAddr is the HTTP bind address.
	ListenAddr string `json:"listen_addr"`
	// MinGames is the validator's minimum trusted schedule size.
	MinGames int `json:"min_games"`
	// AssumePM treats bare kickoff hours below 8 as afternoon.
	AssumePM bool `json:"assume_pm"`
	// RefreshHour is the local hour of the daily scrape (0-23).
	RefreshHour int `json:"refresh_hour"`
	// BroadcastOverrides fills in a network by opponent name when the
	// source lists none.
	BroadcastOverrides map[string]string `json:"broadcast_overrides,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Team: "Penn State",
		ScheduleURLs: []string{
			"https://gopsusports.com/sports/football/schedule",
			"https://gopsusports.com/sports/football/schedule/print",
		},
		DataDir:     "./data",
		ListenAddr:  ":5000",
		MinGames:    10,
		AssumePM:    true,
		RefreshHour: 3,
	}
}

// Load reads configuration from path, layering the file's values over the
// defaults and GRIDIRON_* environment variables over both. A missing file
// (or empty path) leaves the defaults in place.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// fall through to env
		case err != nil:
			return nil, fmt.Errorf("reading config: %w", err)
		default:
			if err := json.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config: %w", err)
			}
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv layers GRIDIRON_* variables over the loaded values. Only the
// deployment-varying knobs are exposed this way; the broadcast table and
// URL list stay file-only.
func (c *Config) applyEnv() error {
	if v := os.Getenv("GRIDIRON_TEAM"); v != "" {
		c.Team = v
	}
	if v := os.Getenv("GRIDIRON_DATA_DIR"); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv("GRIDIRON_LISTEN_ADDR"); v != "" {
		c.ListenAddr = v
	}
	if v := os.Getenv("GRIDIRON_SEASON_YEAR"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: GRIDIRON_SEASON_YEAR %q: %w", v, err)
		}
		c.SeasonYear = year
	}
	return nil
}

func (c *Config) validate() error {
	if c.Team == "" {
		return fmt.Errorf("config: team must not be empty")
	}
	if len(c.ScheduleURLs) == 0 {
		return fmt.Errorf("config: at least one schedule URL is required")
	}
	if c.RefreshHour < 0 || c.RefreshHour > 23 {
		return fmt.Errorf("config: refresh_hour %d out of range", c.RefreshHour)
	}
	if c.MinGames < 1 {
		return fmt.Errorf("config: min_games must be positive")
	}
	return nil
}
