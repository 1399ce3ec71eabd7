package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"go.trai.ch/hackidx/internal/core/ports"
)

// messager describes an error that can report its own message without the
// chain. This matches the Message() method provided by zerr.Error
// (go.trai.ch/zerr v0.3.0+); other errors fall back to Error().
type messager interface {
	Message() string
}

var _ ports.Logger = (*Logger)(nil)

// Logger implements ports.Logger using log/slog.
type Logger struct {
	mu       sync.RWMutex
	logger   *slog.Logger
	output   io.Writer
	level    slog.Level
	jsonMode bool
}

// New creates a Logger writing pretty output to stderr at info level, or
// debug level when HACKIDX_DEBUG is set. HACKIDX_LOG_JSON switches the
// output to JSON lines for scripting.
func New() *Logger {
	level := slog.LevelInfo
	if os.Getenv("HACKIDX_DEBUG") != "" {
		level = slog.LevelDebug
	}
	l := NewWithOutput(os.Stderr, level)
	if os.Getenv("HACKIDX_LOG_JSON") != "" {
		l.SetJSON(true)
	}
	return l
}

// NewWithOutput creates a Logger writing to w at the given level.
func NewWithOutput(w io.Writer, level slog.Level) *Logger {
	handler := NewPrettyHandler(w, &slog.HandlerOptions{Level: level})
	return &Logger{logger: slog.New(handler), output: w, level: level}
}

// SetJSON switches between JSON and pretty logging. When enabled, records
// are emitted as JSON lines via slog's JSON handler. The output destination
// and level are preserved.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.jsonMode = enable

	var handler slog.Handler
	if enable {
		handler = slog.NewJSONHandler(l.output, &slog.HandlerOptions{Level: l.level})
	} else {
		handler = NewPrettyHandler(l.output, &slog.HandlerOptions{Level: l.level})
	}
	l.logger = slog.New(handler)
}

// Debug logs a debug message with slog-style key/value args.
func (l *Logger) Debug(msg string, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Debug(msg, args...)
}

// Info logs an informational message with slog-style key/value args.
func (l *Logger) Info(msg string, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg, args...)
}

// Warn logs a warning message with slog-style key/value args.
func (l *Logger) Warn(msg string, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg, args...)
}

// Error logs an error, rendering a zerr chain as a main message followed by
// its causes.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if err == nil {
		return
	}

	if l.jsonMode {
		l.logger.Error("operation failed", "error", err)
		return
	}

	// Collect messages by traversing the error chain programmatically.
	var messages []string
	current := err
	for current != nil {
		if m, ok := current.(messager); ok {
			messages = append(messages, m.Message())
			current = errors.Unwrap(current)
		} else {
			messages = append(messages, current.Error())
			break
		}
	}

	var lines []string
	for i, msg := range messages {
		switch i {
		case 0:
			lines = append(lines, "Error: "+msg)
		case 1:
			lines = append(lines, "", "  Caused by:", "    → "+msg)
		default:
			lines = append(lines, "    → "+msg)
		}
	}
	l.logger.Error(strings.Join(lines, "\n"))
}
