package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variable names
const (
	EnvConfig    = "CHASER_CONFIG"
	EnvRows      = "CHASER_ROWS"
	EnvCols      = "CHASER_COLS"
	EnvCellSize  = "CHASER_CELL_SIZE"
	EnvLineSize  = "CHASER_LINE_SIZE"
	EnvPlayerRow = "CHASER_PLAYER_ROW"
	EnvPlayerCol = "CHASER_PLAYER_COL"
	EnvChasers   = "CHASER_CHASERS"
	EnvSeed      = "CHASER_SEED"
	EnvTickMs    = "CHASER_TICK_MS"
	EnvHoldMs    = "CHASER_HOLD_MS"
	EnvMute      = "CHASER_MUTE"
	EnvDebug     = "CHASER_DEBUG"
	EnvLogLevel  = "CHASER_LOG_LEVEL"
	EnvDebugAddr = "CHASER_DEBUG_ADDR"
)

// LoadDotEnv loads a .env file into the process environment if it exists
// Variables already set are not overridden.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// LookupFunc matches os.LookupEnv
type LookupFunc func(key string) (string, bool)

// ApplyEnv overlays set environment variables onto c
func ApplyEnv(c *Config, lookup LookupFunc) error {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	ints := []struct {
		key string
		dst *int
	}{
		{EnvRows, &c.Rows},
		{EnvCols, &c.Cols},
		{EnvCellSize, &c.CellSize},
		{EnvLineSize, &c.LineSize},
		{EnvPlayerRow, &c.PlayerRow},
		{EnvPlayerCol, &c.PlayerCol},
		{EnvChasers, &c.Chasers},
		{EnvTickMs, &c.TickMs},
		{EnvHoldMs, &c.HoldMs},
	}
	for _, f := range ints {
		v, ok := lookup(f.key)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s must be an integer: %q", ErrInvalidConfig, f.key, v)
		}
		*f.dst = n
	}

	if v, ok := lookup(EnvSeed); ok && v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s must be an integer: %q", ErrInvalidConfig, EnvSeed, v)
		}
		c.Seed = n
	}

	bools := []struct {
		key string
		dst *bool
	}{
		{EnvMute, &c.Mute},
		{EnvDebug, &c.Debug},
	}
	for _, f := range bools {
		v, ok := lookup(f.key)
		if !ok || v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s must be a boolean: %q", ErrInvalidConfig, f.key, v)
		}
		*f.dst = b
	}

	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := lookup(EnvDebugAddr); ok {
		c.DebugAddr = v
	}
	return nil
}
