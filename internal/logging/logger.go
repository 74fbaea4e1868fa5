// Package logging provides a leveled logger over the standard log package.
package logging

import (
	"io"
	"log"
	"os"
	"strings"
)

// Level represents logging verbosity.
type Level int

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
)

// ParseLevel parses ERROR, WARN, INFO or DEBUG (case-insensitive).
func ParseLevel(s string) (Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ERROR":
		return LevelError, true
	case "WARN", "WARNING":
		return LevelWarn, true
	case "INFO", "":
		return LevelInfo, true
	case "DEBUG":
		return LevelDebug, true
	default:
		return LevelInfo, false
	}
}

// Logger writes "[LEVEL] [component] message" lines at or below its level.
type Logger struct {
	level     Level
	component string
	std       *log.Logger
}

// New creates a logger writing to out.
func New(level Level, out io.Writer) *Logger {
	return &Logger{level: level, std: log.New(out, "", log.LstdFlags)}
}

// NewDefault creates a stderr logger with the level taken from LOG_LEVEL.
func NewDefault() *Logger {
	level, _ := ParseLevel(os.Getenv("LOG_LEVEL"))
	return New(level, os.Stderr)
}

// With returns a logger that tags messages with component.
func (l *Logger) With(component string) *Logger {
	if l == nil {
		return nil
	}
	c := *l
	c.component = component
	return &c
}

// Level returns the current log level.
func (l *Logger) Level() Level {
	if l == nil {
		return LevelError
	}
	return l.level
}

// Errorf logs error messages.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.logf(LevelError, "ERROR", format, args...)
}

// Warnf logs warning messages.
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.logf(LevelWarn, "WARN", format, args...)
}

// Infof logs info messages.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.logf(LevelInfo, "INFO", format, args...)
}

// Debugf logs debug messages.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.logf(LevelDebug, "DEBUG", format, args...)
}

func (l *Logger) logf(level Level, tag, format string, args ...interface{}) {
	if l == nil || l.level < level {
		return
	}
	prefix := "[" + tag + "] "
	if l.component != "" {
		prefix += "[" + l.component + "] "
	}
	l.std.Printf(prefix+format, args...)
}
