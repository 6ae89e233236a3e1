// Package log configures the structured logger shared by muv components.
//
// muv logs through github.com/rs/zerolog. While the terminal UI owns the
// screen, log output must not reach the terminal, so the CLI points the
// logger at a file, or discards it, before starting the app.
package log

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	mu     sync.RWMutex
	logger = New(os.Stderr, zerolog.InfoLevel)
)

// New creates a console logger writing to out at the given level.
func New(out io.Writer, level zerolog.Level) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    !isTerminal(out),
	}
	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}

// ParseLevel parses a level name ("debug", "info", "warn", "error",
// "disabled"). The empty string means info.
func ParseLevel(s string) (zerolog.Level, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return zerolog.InfoLevel, nil
	}
	return zerolog.ParseLevel(s)
}

// L returns the package logger.
func L() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Set replaces the package logger and returns the previous one so tests can
// restore it.
func Set(l zerolog.Logger) zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	prev := logger
	logger = l
	return prev
}

// Component returns the package logger tagged with a component name.
func Component(name string) zerolog.Logger {
	return L().With().Str("component", name).Logger()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
