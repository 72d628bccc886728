package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func capture(t *testing.T, config Config, fn func()) string {
	t.Helper()
	Initialize(config)
	var buf bytes.Buffer
	SetOutput(&buf)
	fn()
	return buf.String()
}

func TestLevelString(t *testing.T) {
	cases := map[Level]string{
		TraceLevel: "TRACE",
		DebugLevel: "DEBUG",
		InfoLevel:  "INFO",
		WarnLevel:  "WARN",
		ErrorLevel: "ERROR",
		Level(99):  "UNKNOWN",
	}
	for level, want := range cases {
		if got := level.String(); got != want {
			t.Errorf("Level(%d).String() = %q, want %q", level, got, want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	if ParseLevel("debug") != DebugLevel {
		t.Error("expected debug level")
	}
	if ParseLevel("ERROR") != ErrorLevel {
		t.Error("expected error level, parsing is case insensitive")
	}
	if ParseLevel("bogus") != InfoLevel {
		t.Error("unknown names default to info")
	}
}

func TestLevelFiltering(t *testing.T) {
	out := capture(t, Config{Level: WarnLevel}, func() {
		Info("should be filtered")
		Warn("should appear")
	})
	if strings.Contains(out, "should be filtered") {
		t.Error("info message leaked through warn filter")
	}
	if !strings.Contains(out, "should appear") {
		t.Error("warn message missing")
	}
}

func TestPrettyOutput(t *testing.T) {
	out := capture(t, Config{Level: InfoLevel, Component: "zrc2020"}, func() {
		Info("validating", String("language", "english"), Int("files", 3))
	})
	for _, want := range []string{"[INFO]", "zrc2020:", "validating", "language=english", "files=3"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestJSONOutput(t *testing.T) {
	out := capture(t, Config{Level: InfoLevel, JSON: true, Component: "zrc2020"}, func() {
		Error("boom", Bool("fatal", false))
	})
	var entry Entry
	if err := json.Unmarshal([]byte(strings.TrimSpace(out)), &entry); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if entry.Level != "ERROR" || entry.Message != "boom" {
		t.Errorf("unexpected entry: %+v", entry)
	}
	if entry.Fields["fatal"] != false {
		t.Errorf("missing fatal field: %+v", entry.Fields)
	}
}

func TestColorOutput(t *testing.T) {
	out := capture(t, Config{Level: InfoLevel, UseColor: true}, func() {
		Info("tinted")
	})
	if !strings.Contains(out, "\033[32mINFO\033[0m") {
		t.Errorf("expected colored level, got %q", out)
	}
}
