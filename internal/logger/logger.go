package logger

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// Logger wraps charm/log for structured logging
type Logger struct {
	*log.Logger
}

// New creates a new logger with the given output
func New(w io.Writer) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})
	return &Logger{Logger: l}
}

// NewWithLevel creates a logger with a specific level
func NewWithLevel(w io.Writer, level log.Level) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
	})
	return &Logger{Logger: l}
}

// NewFileLogger creates a logger that appends to a file
func NewFileLogger(path string, level log.Level) (*Logger, func(), error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		f.Close()
	}

	return NewWithLevel(f, level), cleanup, nil
}

// Discard returns a logger that discards all output
func Discard() *Logger {
	return New(io.Discard)
}

// ParseLevel maps a config level name to a log level, defaulting to info
func ParseLevel(name string) log.Level {
	level, err := log.ParseLevel(name)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// ContentRendered logs the completion of a content render
func (l *Logger) ContentRendered(renderID string, nodes int, duration time.Duration) {
	l.Debug("content rendered",
		"render_id", renderID,
		"nodes", nodes,
		"duration", duration)
}

// RuleApplied logs a rewrite rule matching an element
func (l *Logger) RuleApplied(rule, tag string) {
	l.Debug("rule applied",
		"rule", rule,
		"tag", tag)
}

// NodeDropped logs an unrecognized node being dropped from the output
func (l *Logger) NodeDropped(kind string) {
	l.Debug("node dropped",
		"kind", kind)
}

// ParseError logs a failure of the upstream parser
func (l *Logger) ParseError(renderID string, err error) {
	l.Error("parse failed",
		"render_id", renderID,
		"error", err)
}

// ConfigLoaded logs successful config loading
func (l *Logger) ConfigLoaded(path, server string) {
	l.Debug("config loaded",
		"path", path,
		"current_server", server)
}
