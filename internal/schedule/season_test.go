package schedule

import (
	"testing"
	"time"
)

func TestSeasonForDate(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want int
	}{
		{
			name: "January belongs to previous season",
			date: time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC),
			want: 2024,
		},
		{
			name: "September is the current season",
			date: time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC),
			want: 2025,
		},
		{
			name: "May is preparation for the upcoming season",
			date: time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC),
			want: 2025,
		},
		{
			name: "August starts the season",
			date: time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC),
			want: 2025,
		},
		{
			name: "December is still the current season",
			date: time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC),
			want: 2025,
		},
		{
			name: "February counts toward the upcoming season",
			date: time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC),
			want: 2026,
		},
		{
			name: "July counts toward the upcoming season",
			date: time.Date(2026, time.July, 31, 0, 0, 0, 0, time.UTC),
			want: 2026,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SeasonForDate(tt.date); got != tt.want {
				t.Errorf("SeasonForDate(%v) = %d, want %d", tt.date, got, tt.want)
			}
		})
	}
}
