package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// Level is the severity of a log line.
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

// String returns the level name used in output.
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps a level name to a Level, defaulting to InfoLevel.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return DebugLevel
	case "warn", "warning":
		return WarnLevel
	case "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

// Logger writes timestamped, leveled log lines in text or JSON format.
// It is passed explicitly to the components that need it rather than kept
// as process-global state.
type Logger struct {
	mu        *sync.Mutex
	level     Level
	json      bool
	out       io.Writer
	component string
}

type entry struct {
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Component string `json:"component,omitempty"`
	Message   string `json:"message"`
}

// New creates a logger. format is "text" or "json"; anything else means text.
func New(level Level, format string, out io.Writer) *Logger {
	if out == nil {
		out = os.Stdout
	}
	return &Logger{
		mu:    &sync.Mutex{},
		level: level,
		json:  strings.EqualFold(format, "json"),
		out:   out,
	}
}

// NewDefault creates an info-level text logger writing to stdout.
func NewDefault() *Logger {
	return New(InfoLevel, "text", os.Stdout)
}

// WithComponent returns a copy of the logger tagged with a component name.
func (l *Logger) WithComponent(name string) *Logger {
	clone := *l
	clone.component = name
	return &clone
}

func (l *Logger) logf(level Level, format string, args ...interface{}) {
	if level < l.level {
		return
	}
	e := entry{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Level:     level.String(),
		Component: l.component,
		Message:   fmt.Sprintf(format, args...),
	}

	var line string
	if l.json {
		b, _ := json.Marshal(e)
		line = string(b) + "\n"
	} else if e.Component != "" {
		line = fmt.Sprintf("[%s] %s [%s] %s\n", e.Timestamp, e.Level, e.Component, e.Message)
	} else {
		line = fmt.Sprintf("[%s] %s %s\n", e.Timestamp, e.Level, e.Message)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.out.Write([]byte(line))
}

// Debugf logs a formatted debug message.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.logf(DebugLevel, format, args...)
}

// Infof logs a formatted info message.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.logf(InfoLevel, format, args...)
}

// Warnf logs a formatted warning message.
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.logf(WarnLevel, format, args...)
}

// Errorf logs a formatted error message.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.logf(ErrorLevel, format, args...)
}
