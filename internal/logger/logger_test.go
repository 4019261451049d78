package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestLogger_Log(t *testing.T) {
	tests := []struct {
		name    string
		level   Level
		message string
		fields  Fields
		err     error
		want    bool // should log
	}{
		{
			name:    "info message",
			level:   LevelInfo,
			message: "test message",
			fields:  Fields{"key": "value"},
			want:    true,
		},
		{
			name:    "debug below threshold",
			level:   LevelDebug,
			message: "debug message",
			want:    false, // won't log (below INFO)
		},
		{
			name:    "error with err",
			level:   LevelError,
			message: "error occurred",
			err:     errors.New("test error"),
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(LevelInfo, &buf)

			logger.log(tt.level, tt.message, tt.fields, tt.err)

			logged := buf.Len() > 0
			if logged != tt.want {
				t.Errorf("log() logged = %v, want %v", logged, tt.want)
			}

			if logged {
				var entry LogEntry
				if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
					t.Fatalf("log output is not valid JSON: %v", err)
				}
				if entry.Message != tt.message {
					t.Errorf("Message = %q, want %q", entry.Message, tt.message)
				}
				if tt.err != nil && entry.Error != tt.err.Error() {
					t.Errorf("Error = %q, want %q", entry.Error, tt.err.Error())
				}
			}
		})
	}
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name      string
		minLevel  Level
		logLevel  Level
		shouldLog bool
	}{
		{"debug logs at debug", LevelDebug, LevelDebug, true},
		{"info logs at debug", LevelDebug, LevelInfo, true},
		{"debug doesn't log at info", LevelInfo, LevelDebug, false},
		{"error always logs", LevelDebug, LevelError, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(tt.minLevel, &buf)

			logger.log(tt.logLevel, "test", nil, nil)

			logged := buf.Len() > 0
			if logged != tt.shouldLog {
				t.Errorf("shouldLog = %v, want %v", logged, tt.shouldLog)
			}
		})
	}
}

func TestLogger_OneLinePerEntry(t *testing.T) {
	var buf bytes.Buffer
	logger := New(LevelInfo, &buf)

	logger.Info("first", nil)
	logger.Info("second", Fields{"phase": "enrich"})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 log lines, got %d", len(lines))
	}
	for _, line := range lines {
		var entry LogEntry
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Errorf("line is not valid JSON: %v", err)
		}
	}
}

func TestMetrics_Counter(t *testing.T) {
	m := NewMetrics()

	m.IncrCounter("images.found")
	m.IncrCounter("images.found")
	m.IncrCounter("images.found")

	snapshot := m.GetSnapshot()
	counters := snapshot["counters"].(map[string]int64)

	if counters["images.found"] != 3 {
		t.Errorf("Counter = %v, want 3", counters["images.found"])
	}
}

func TestMetrics_Gauge(t *testing.T) {
	m := NewMetrics()

	m.SetGauge("events.upcoming", 12)
	m.SetGauge("events.upcoming", 15)

	snapshot := m.GetSnapshot()
	gauges := snapshot["gauges"].(map[string]float64)

	if gauges["events.upcoming"] != 15 {
		t.Errorf("Gauge = %v, want 15", gauges["events.upcoming"])
	}
}

func TestMetrics_Timing(t *testing.T) {
	m := NewMetrics()

	m.RecordTiming("phase.fetch", 100*time.Millisecond)
	m.RecordTiming("phase.fetch", 200*time.Millisecond)
	m.RecordTiming("phase.fetch", 150*time.Millisecond)

	snapshot := m.GetSnapshot()
	timings := snapshot["timings"].(map[string]map[string]interface{})

	fetchTiming := timings["phase.fetch"]
	if fetchTiming["count"].(int) != 3 {
		t.Errorf("Timing count = %v, want 3", fetchTiming["count"])
	}

	if fetchTiming["min"].(string) != "100ms" {
		t.Errorf("Min timing = %v, want 100ms", fetchTiming["min"])
	}

	if fetchTiming["max"].(string) != "200ms" {
		t.Errorf("Max timing = %v, want 200ms", fetchTiming["max"])
	}
}

func TestPackageLevelFunctions(t *testing.T) {
	// Test that package-level functions don't panic
	Info("test info", Fields{"key": "value"})
	Warn("test warning", nil)
	Error("test error", Fields{"component": "test"}, errors.New("test"))

	IncrCounter("test")
	SetGauge("test", 42.0)
	RecordTiming("test", time.Second)

	snapshot := GetMetricsSnapshot()
	if snapshot == nil {
		t.Error("GetMetricsSnapshot() returned nil")
	}
}
