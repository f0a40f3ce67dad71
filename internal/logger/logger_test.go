package logger

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected log.Level
	}{
		{name: "debug", input: "debug", expected: log.DebugLevel},
		{name: "warn", input: "warn", expected: log.WarnLevel},
		{name: "error", input: "error", expected: log.ErrorLevel},
		{name: "unknown falls back to info", input: "chatty", expected: log.InfoLevel},
		{name: "empty falls back to info", input: "", expected: log.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestEventHelpers(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithLevel(&buf, log.DebugLevel)

	l.RuleApplied("code-block", "pre")
	l.NodeDropped("markup.Comment")
	l.ContentRendered("abcd1234", 3, 2*time.Millisecond)
	l.ParseError("abcd1234", errors.New("boom"))

	out := buf.String()
	for _, want := range []string{
		"rule applied", "rule=code-block", "tag=pre",
		"node dropped",
		"content rendered", "render_id=abcd1234", "nodes=3",
		"parse failed", "error=boom",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestDebugSuppressedAtInfo(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithLevel(&buf, log.InfoLevel)

	l.RuleApplied("mention", "a")

	if buf.Len() != 0 {
		t.Errorf("expected no output at info level, got %q", buf.String())
	}
}

func TestNewFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "postrender.log")

	l, cleanup, err := NewFileLogger(path, log.InfoLevel)
	if err != nil {
		t.Fatalf("NewFileLogger() error = %v", err)
	}
	l.Info("hello")
	cleanup()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("log file missing message: %q", string(data))
	}
}
