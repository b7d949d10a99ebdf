package app

import (
	"strings"
	"testing"
)

func TestLoggerLevelFiltering(t *testing.T) {
	var buf strings.Builder
	log := NewLogger(&buf, LogLevelWarn)

	log.Debug("too quiet")
	log.Info("still too quiet")
	log.Warn("heard")
	log.Error("also heard")

	out := buf.String()
	if strings.Contains(out, "too quiet") {
		t.Errorf("suppressed levels leaked: %q", out)
	}
	if !strings.Contains(out, "[WARN] trawl: heard") {
		t.Errorf("missing warn line: %q", out)
	}
	if !strings.Contains(out, "[ERROR] trawl: also heard") {
		t.Errorf("missing error line: %q", out)
	}
}

func TestLoggerFields(t *testing.T) {
	var buf strings.Builder
	log := NewLogger(&buf, LogLevelInfo).WithField("dir", "/tmp").WithField("cmd", "enter")

	log.Info("executed")
	out := buf.String()
	// Fields print sorted so lines are stable.
	if !strings.Contains(out, "executed cmd=enter dir=/tmp") {
		t.Errorf("line = %q", out)
	}
}

func TestLoggerFormatting(t *testing.T) {
	var buf strings.Builder
	log := NewLogger(&buf, LogLevelInfo)
	log.Info("selected %d of %d", 3, 9)
	if !strings.Contains(buf.String(), "selected 3 of 9") {
		t.Errorf("line = %q", buf.String())
	}
}

func TestLoggerNilOutput(t *testing.T) {
	log := NewLogger(nil, LogLevelDebug)
	log.Info("goes nowhere") // must not panic
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LogLevelDebug},
		{"INFO", LogLevelInfo},
		{"warning", LogLevelWarn},
		{"error", LogLevelError},
		{"bogus", LogLevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLogLevel(tt.in); got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
