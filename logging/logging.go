// Package logging routes zerolog and the stdlib logger to a rotated file
// The terminal belongs to the renderer, so nothing is ever written to stdout or stderr.
package logging

import (
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	logDir      = "logs"
	logFileName = "chaser.log"
	maxLogSize  = 10 * 1024 * 1024 // Rotate above 10 MiB
)

// Setup configures global logging in ./logs, returns the open file or nil when disabled
func Setup(enabled bool, level string) *os.File {
	return SetupDir(logDir, enabled, level)
}

// SetupDir is Setup with an explicit log directory
// Any failure leaves logging disabled rather than writing to the terminal.
func SetupDir(dir string, enabled bool, level string) *os.File {
	if !enabled {
		disable()
		return nil
	}

	f, err := openLogFile(dir)
	if err != nil {
		disable()
		return nil
	}

	zerolog.SetGlobalLevel(ParseLevel(level))
	zerolog.TimeFieldFormat = time.RFC3339Nano
	log.Logger = zerolog.New(f).With().Timestamp().Logger()

	stdlog.SetOutput(f)
	stdlog.SetFlags(stdlog.Ldate | stdlog.Ltime | stdlog.Lmicroseconds)
	return f
}

// ParseLevel maps a level name to a zerolog level, info when unknown or empty
func ParseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

func disable() {
	log.Logger = zerolog.Nop()
	stdlog.SetOutput(io.Discard)
}

func openLogFile(dir string) (*os.File, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	path := filepath.Join(dir, logFileName)
	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(dir, fmt.Sprintf("chaser-%s.log", time.Now().Format("20060102-150405")))
		if err := os.Rename(path, rotated); err != nil {
			return nil, fmt.Errorf("rotate log: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	return f, nil
}
