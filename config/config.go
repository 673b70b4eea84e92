// Package config merges startup settings from defaults, a TOML file, the
// environment and command line flags, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/chaser/core"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds every startup setting
type Config struct {
	Rows      int    `toml:"rows"`       // Grid rows
	Cols      int    `toml:"cols"`       // Grid columns
	CellSize  int    `toml:"cell_size"`  // Terminal rows per cell, columns per cell is twice that
	LineSize  int    `toml:"line_size"`  // Grid line thickness in terminal cells
	PlayerRow int    `toml:"player_row"` // Player spawn row
	PlayerCol int    `toml:"player_col"` // Player spawn column
	Chasers   int    `toml:"chasers"`    // Number of chasers
	Seed      int64  `toml:"seed"`       // 0 picks a time based seed
	TickMs    int    `toml:"tick_ms"`    // Tick interval
	HoldMs    int    `toml:"hold_ms"`    // Key hold timeout, 0 keeps direction until stop
	Mute      bool   `toml:"mute"`       // Disable audio cues
	Debug     bool   `toml:"debug"`      // Write log file
	LogLevel  string `toml:"log_level"`  // zerolog level name
	DebugAddr string `toml:"debug_addr"` // Debug HTTP listen address, empty disables

	Keys map[string]string `toml:"keys"` // Key name -> action overrides

	// Source is the config file that was loaded, empty when none
	Source string `toml:"-"`
}

func Default() Config {
	return Config{
		Rows:     21,
		Cols:     41,
		CellSize: 1,
		LineSize: 0,
		Chasers:  1,
		TickMs:   100,
		HoldMs:   200,
		LogLevel: "info",
	}
}

// Validate rejects geometry and timing the simulation cannot run with
func (c *Config) Validate() error {
	switch {
	case c.Rows < 1 || c.Cols < 1:
		return fmt.Errorf("%w: grid %dx%d must be at least 1x1", ErrInvalidConfig, c.Rows, c.Cols)
	case c.CellSize < 1:
		return fmt.Errorf("%w: cell size %d must be positive", ErrInvalidConfig, c.CellSize)
	case c.LineSize < 0:
		return fmt.Errorf("%w: line size %d must not be negative", ErrInvalidConfig, c.LineSize)
	case c.Chasers < 0:
		return fmt.Errorf("%w: chaser count %d must not be negative", ErrInvalidConfig, c.Chasers)
	case c.TickMs <= 0:
		return fmt.Errorf("%w: tick %dms must be positive", ErrInvalidConfig, c.TickMs)
	case c.HoldMs < 0:
		return fmt.Errorf("%w: hold %dms must not be negative", ErrInvalidConfig, c.HoldMs)
	case c.Seed < 0:
		return fmt.Errorf("%w: seed %d must not be negative", ErrInvalidConfig, c.Seed)
	case c.PlayerRow < 0 || c.PlayerRow >= c.Rows || c.PlayerCol < 0 || c.PlayerCol >= c.Cols:
		return fmt.Errorf("%w: player spawn %s outside %dx%d grid", ErrInvalidConfig, c.PlayerSpawn(), c.Rows, c.Cols)
	}
	return nil
}

func (c *Config) PlayerSpawn() core.Point {
	return core.Point{Row: c.PlayerRow, Col: c.PlayerCol}
}

func (c *Config) TickInterval() time.Duration {
	return time.Duration(c.TickMs) * time.Millisecond
}

func (c *Config) HoldDuration() time.Duration {
	return time.Duration(c.HoldMs) * time.Millisecond
}
