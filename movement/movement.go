// Package movement applies single discrete steps to agents on a grid
// A step into a wall or past the edge is a no-op, never an error.
package movement

import (
	"github.com/google/uuid"

	"github.com/lixenwraith/chaser/core"
	"github.com/lixenwraith/chaser/grid"
)

// Step returns the cell an agent at from reaches by moving one unit in d
// Returns from unchanged when the candidate cell is out of bounds or a wall
func Step(g *grid.Grid, from core.Point, d core.Direction) core.Point {
	if !d.Valid() {
		return from
	}
	candidate := from.Add(d)
	if !g.IsPassable(candidate) {
		return from
	}
	return candidate
}

// MovePlayer steps the player in d, reports whether the player moved
func MovePlayer(g *grid.Grid, d core.Direction) bool {
	from, ok := g.Player()
	if !ok {
		return false
	}
	to := Step(g, from, d)
	if to == from {
		return false
	}
	// Step guarantees a passable in-bounds cell
	return g.PlacePlayer(to) == nil
}

// MoveChaser steps chaser id in d, reports whether the chaser moved
func MoveChaser(g *grid.Grid, id uuid.UUID, d core.Direction) bool {
	from, ok := g.Chaser(id)
	if !ok {
		return false
	}
	to := Step(g, from, d)
	if to == from {
		return false
	}
	return g.PlaceChaser(id, to) == nil
}
