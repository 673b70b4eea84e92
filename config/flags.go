package config

import (
	"fmt"

	"github.com/akamensky/argparse"
)

// ParseArgs overlays command line flags onto c
// Flag defaults are the values already in c, so an absent flag keeps them.
// args includes the program name, as os.Args does.
func ParseArgs(c *Config, args []string) error {
	parser := argparse.NewParser("chaser", "Terminal maze pursuit simulation")

	rows := parser.Int("r", "rows", &argparse.Options{Default: c.Rows, Help: "Grid rows"})
	cols := parser.Int("c", "cols", &argparse.Options{Default: c.Cols, Help: "Grid columns"})
	cellSize := parser.Int("s", "cell-size", &argparse.Options{Default: c.CellSize, Help: "Terminal rows per cell"})
	lineSize := parser.Int("l", "line-size", &argparse.Options{Default: c.LineSize, Help: "Grid line thickness"})
	playerRow := parser.Int("y", "player-row", &argparse.Options{Default: c.PlayerRow, Help: "Player spawn row"})
	playerCol := parser.Int("x", "player-col", &argparse.Options{Default: c.PlayerCol, Help: "Player spawn column"})
	chasers := parser.Int("z", "chasers", &argparse.Options{Default: c.Chasers, Help: "Number of chasers"})
	seed := parser.Int("n", "seed", &argparse.Options{Default: int(c.Seed), Help: "Random seed, 0 for time based"})
	tickMs := parser.Int("t", "tick-ms", &argparse.Options{Default: c.TickMs, Help: "Tick interval in milliseconds"})
	holdMs := parser.Int("o", "hold-ms", &argparse.Options{Default: c.HoldMs, Help: "Key hold timeout in milliseconds, 0 for sticky"})
	mute := parser.Flag("m", "mute", &argparse.Options{Default: c.Mute, Help: "Disable audio cues"})
	debug := parser.Flag("d", "debug", &argparse.Options{Default: c.Debug, Help: "Write logs/chaser.log"})
	debugAddr := parser.String("a", "debug-addr", &argparse.Options{Default: c.DebugAddr, Help: "Debug HTTP address, e.g. 127.0.0.1:6060"})

	if err := parser.Parse(args); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, parser.Usage(err))
	}

	c.Rows = *rows
	c.Cols = *cols
	c.CellSize = *cellSize
	c.LineSize = *lineSize
	c.PlayerRow = *playerRow
	c.PlayerCol = *playerCol
	c.Chasers = *chasers
	c.Seed = int64(*seed)
	c.TickMs = *tickMs
	c.HoldMs = *holdMs
	c.Mute = *mute
	c.Debug = *debug
	c.DebugAddr = *debugAddr
	return nil
}
