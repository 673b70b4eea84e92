// Package grid holds the rectangular world: dimensions, wall cells, the player and the chasers.
//
// Walls are written once by the maze generator; agent positions are written by the movement
// package one agent at a time. The grid is not safe for concurrent use; readers on other
// goroutines work on a Clone.
package grid

import (
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"

	"github.com/lixenwraith/chaser/core"
)

var (
	ErrInvalidDimensions = errors.New("grid dimensions must be positive")
	ErrInvalidCoordinate = errors.New("coordinate out of bounds")
	ErrWallCell          = errors.New("cell is a wall")
	ErrOccupiedCell      = errors.New("cell is occupied by an agent")
	ErrUnknownChaser     = errors.New("unknown chaser")
	ErrNoPlayer          = errors.New("player not placed")
)

// Grid is the single shared world model
type Grid struct {
	rows, cols int
	walls      []bool // Flat index row*cols+col

	player    core.Point
	hasPlayer bool

	chasers map[uuid.UUID]core.Point
	order   []uuid.UUID // Spawn order, keeps iteration deterministic
}

// New creates an empty grid with no walls and no agents
func New(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}
	return &Grid{
		rows:    rows,
		cols:    cols,
		walls:   make([]bool, rows*cols),
		chasers: make(map[uuid.UUID]core.Point),
	}, nil
}

func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether p lies inside the grid
func (g *Grid) InBounds(p core.Point) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// IsWall reports whether p is a wall cell; out-of-bounds cells are not walls
func (g *Grid) IsWall(p core.Point) bool {
	if !g.InBounds(p) {
		return false
	}
	return g.walls[g.index(p)]
}

// IsPassable reports whether an agent may occupy p
func (g *Grid) IsPassable(p core.Point) bool {
	return g.InBounds(p) && !g.walls[g.index(p)]
}

// SetWall marks p as a wall
func (g *Grid) SetWall(p core.Point) error {
	if !g.InBounds(p) {
		return fmt.Errorf("set wall %s: %w", p, ErrInvalidCoordinate)
	}
	if g.occupied(p) {
		return fmt.Errorf("set wall %s: %w", p, ErrOccupiedCell)
	}
	g.walls[g.index(p)] = true
	return nil
}

// ClearWall marks p as passable
func (g *Grid) ClearWall(p core.Point) error {
	if !g.InBounds(p) {
		return fmt.Errorf("clear wall %s: %w", p, ErrInvalidCoordinate)
	}
	g.walls[g.index(p)] = false
	return nil
}

// FillWalls turns every cell into a wall
// Fails with ErrOccupiedCell if any agent has already been placed
func (g *Grid) FillWalls() error {
	if g.hasPlayer || len(g.order) > 0 {
		return fmt.Errorf("fill walls: %w", ErrOccupiedCell)
	}
	for i := range g.walls {
		g.walls[i] = true
	}
	return nil
}

// WallCount returns the number of wall cells
func (g *Grid) WallCount() int {
	n := 0
	for _, w := range g.walls {
		if w {
			n++
		}
	}
	return n
}

// Walls returns every wall cell in row-major order
func (g *Grid) Walls() []core.Point {
	out := make([]core.Point, 0, g.WallCount())
	for i, w := range g.walls {
		if w {
			out = append(out, g.point(i))
		}
	}
	return out
}

// UnoccupiedCells returns every in-bounds non-wall cell in row-major order
func (g *Grid) UnoccupiedCells() []core.Point {
	out := make([]core.Point, 0, len(g.walls))
	for i, w := range g.walls {
		if !w {
			out = append(out, g.point(i))
		}
	}
	return out
}

// RandomUnoccupied picks a cell uniformly from UnoccupiedCells
// ok is false when every cell is a wall
func (g *Grid) RandomUnoccupied(rng *rand.Rand) (core.Point, bool) {
	cells := g.UnoccupiedCells()
	if len(cells) == 0 {
		return core.Point{}, false
	}
	return cells[rng.Intn(len(cells))], true
}

// --- Agents ---

// Player returns the player cell; ok is false before PlacePlayer
func (g *Grid) Player() (core.Point, bool) {
	return g.player, g.hasPlayer
}

// PlacePlayer puts the player on p
func (g *Grid) PlacePlayer(p core.Point) error {
	if err := g.checkAgentCell(p); err != nil {
		return fmt.Errorf("place player: %w", err)
	}
	g.player = p
	g.hasPlayer = true
	return nil
}

// AddChaser spawns a new chaser on p and returns its identifier
func (g *Grid) AddChaser(p core.Point) (uuid.UUID, error) {
	if err := g.checkAgentCell(p); err != nil {
		return uuid.Nil, fmt.Errorf("add chaser: %w", err)
	}
	id := uuid.New()
	g.chasers[id] = p
	g.order = append(g.order, id)
	return id, nil
}

// Chaser returns the cell of chaser id
func (g *Grid) Chaser(id uuid.UUID) (core.Point, bool) {
	p, ok := g.chasers[id]
	return p, ok
}

// PlaceChaser moves chaser id to p
func (g *Grid) PlaceChaser(id uuid.UUID, p core.Point) error {
	if _, ok := g.chasers[id]; !ok {
		return fmt.Errorf("place chaser %s: %w", id, ErrUnknownChaser)
	}
	if err := g.checkAgentCell(p); err != nil {
		return fmt.Errorf("place chaser %s: %w", id, err)
	}
	g.chasers[id] = p
	return nil
}

// ChaserIDs returns chaser identifiers in spawn order
func (g *Grid) ChaserIDs() []uuid.UUID {
	return slices.Clone(g.order)
}

// ChaserCount returns the number of chasers
func (g *Grid) ChaserCount() int {
	return len(g.order)
}

// KindAt reports what is drawn at p: a chaser over the player over a wall
func (g *Grid) KindAt(p core.Point) core.Kind {
	if !g.InBounds(p) {
		return core.KindEmpty
	}
	for _, id := range g.order {
		if g.chasers[id] == p {
			return core.KindChaser
		}
	}
	if g.hasPlayer && g.player == p {
		return core.KindPlayer
	}
	if g.walls[g.index(p)] {
		return core.KindWall
	}
	return core.KindEmpty
}

// Clone returns a deep copy that shares nothing with g
// Chaser identifiers are preserved
func (g *Grid) Clone() *Grid {
	c := &Grid{
		rows:      g.rows,
		cols:      g.cols,
		walls:     slices.Clone(g.walls),
		player:    g.player,
		hasPlayer: g.hasPlayer,
		chasers:   make(map[uuid.UUID]core.Point, len(g.chasers)),
		order:     slices.Clone(g.order),
	}
	for id, p := range g.chasers {
		c.chasers[id] = p
	}
	return c
}

// --- Helpers ---

func (g *Grid) index(p core.Point) int {
	return p.Row*g.cols + p.Col
}

func (g *Grid) point(idx int) core.Point {
	return core.Point{Row: idx / g.cols, Col: idx % g.cols}
}

func (g *Grid) checkAgentCell(p core.Point) error {
	if !g.InBounds(p) {
		return fmt.Errorf("%s: %w", p, ErrInvalidCoordinate)
	}
	if g.walls[g.index(p)] {
		return fmt.Errorf("%s: %w", p, ErrWallCell)
	}
	return nil
}

func (g *Grid) occupied(p core.Point) bool {
	if g.hasPlayer && g.player == p {
		return true
	}
	for _, c := range g.chasers {
		if c == p {
			return true
		}
	}
	return false
}
