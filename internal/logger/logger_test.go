package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelWarn, &buf)

	l.Debug("debug message", nil)
	l.Info("info message", nil)
	l.Warn("warn message", nil)
	l.Error("error message", nil, errors.New("boom"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 entries at or above WARN, got %d: %q", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "warn message") {
		t.Errorf("first entry = %q, want warn message", lines[0])
	}
	if !strings.Contains(lines[1], "boom") {
		t.Errorf("error entry should carry the error text, got %q", lines[1])
	}
}

func TestLoggerJSONShape(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelInfo, &buf)

	l.Info("scrape complete", Fields{"games": 12, "source": "primary"})

	var e struct {
		Timestamp string                 `json:"timestamp"`
		Level     string                 `json:"level"`
		Message   string                 `json:"message"`
		Fields    map[string]interface{} `json:"fields"`
	}
	if err := json.Unmarshal(buf.Bytes(), &e); err != nil {
		t.Fatalf("entry is not valid JSON: %v", err)
	}
	if e.Level != "INFO" || e.Message != "scrape complete" {
		t.Errorf("entry = %+v", e)
	}
	if e.Fields["source"] != "primary" {
		t.Errorf("fields not carried: %+v", e.Fields)
	}
	if _, err := time.Parse(time.RFC3339, e.Timestamp); err != nil {
		t.Errorf("timestamp %q is not RFC3339", e.Timestamp)
	}
}

func TestMetricsSnapshot(t *testing.T) {
	m := NewMetrics()

	m.IncrCounter("cycles.success")
	m.IncrCounter("cycles.success")
	m.IncrCounter("records.dropped")
	m.RecordTiming("cycle", 100*time.Millisecond)
	m.RecordTiming("cycle", 300*time.Millisecond)

	snap := m.Snapshot()

	counters, ok := snap["counters"].(map[string]int64)
	if !ok {
		t.Fatalf("counters missing from snapshot: %+v", snap)
	}
	if counters["cycles.success"] != 2 || counters["records.dropped"] != 1 {
		t.Errorf("counters = %+v", counters)
	}

	timings, ok := snap["timings"].(map[string]map[string]interface{})
	if !ok {
		t.Fatalf("timings missing from snapshot: %+v", snap)
	}
	cycle := timings["cycle"]
	if cycle["count"] != 2 {
		t.Errorf("cycle count = %v, want 2", cycle["count"])
	}
	if cycle["average"] != "200ms" {
		t.Errorf("cycle average = %v, want 200ms", cycle["average"])
	}
}
