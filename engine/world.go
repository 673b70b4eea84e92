package engine

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"github.com/lixenwraith/chaser/core"
	"github.com/lixenwraith/chaser/grid"
	"github.com/lixenwraith/chaser/maze"
)

// ErrNoSpawnCell is returned when a chaser has nowhere to spawn
var ErrNoSpawnCell = errors.New("no unoccupied cell for spawn")

// WorldConfig is the startup geometry
type WorldConfig struct {
	Rows    int
	Cols    int
	Player  core.Point
	Chasers int
}

// World is a freshly built grid ready for simulation
type World struct {
	Grid    *grid.Grid
	Maze    maze.Result
	Chasers []uuid.UUID
}

// BuildWorld carves a maze from the player spawn, places the player and spawns chasers
// Geometry errors are returned before the grid is touched.
// Chasers spawn uniformly over passable cells and may share a cell with the player or each other.
func BuildWorld(cfg WorldConfig, rng *rand.Rand) (*World, error) {
	g, err := grid.New(cfg.Rows, cfg.Cols)
	if err != nil {
		return nil, err
	}
	if !g.InBounds(cfg.Player) {
		return nil, fmt.Errorf("player spawn %s outside %dx%d grid: %w", cfg.Player, cfg.Rows, cfg.Cols, grid.ErrInvalidCoordinate)
	}
	if cfg.Chasers < 0 {
		return nil, fmt.Errorf("chaser count %d: %w", cfg.Chasers, grid.ErrInvalidDimensions)
	}
	if rng == nil {
		rng, _ = maze.NewRand(0)
	}

	res, err := maze.Generate(g, cfg.Player, rng)
	if err != nil {
		return nil, fmt.Errorf("generate maze: %w", err)
	}
	log.Info().
		Int("rows", cfg.Rows).
		Int("cols", cfg.Cols).
		Int("jumps", res.Jumps).
		Int("carved", res.Carved).
		Int("passable", res.Passable).
		Msg("Maze generated")

	if err := g.PlacePlayer(cfg.Player); err != nil {
		return nil, err
	}

	w := &World{Grid: g, Maze: res, Chasers: make([]uuid.UUID, 0, cfg.Chasers)}
	for i := 0; i < cfg.Chasers; i++ {
		p, ok := g.RandomUnoccupied(rng)
		if !ok {
			return nil, fmt.Errorf("chaser %d: %w", i, ErrNoSpawnCell)
		}
		id, err := g.AddChaser(p)
		if err != nil {
			return nil, err
		}
		w.Chasers = append(w.Chasers, id)
		log.Debug().Str("id", id.String()).Stringer("cell", p).Msg("Chaser spawned")
	}
	return w, nil
}
