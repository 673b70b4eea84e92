// Package maze carves a perfect maze into a grid with a randomized stride-2 depth-first backtracker.
//
// Every cell starts as a wall. Carving jumps two cells at a time and clears the cell in between,
// so passages are one cell wide and, because a cell is entered only while it is still a wall,
// the passable cells form a spanning tree rooted at the start cell.
package maze

import (
	"fmt"
	"time"

	"golang.org/x/exp/rand"

	"github.com/lixenwraith/chaser/core"
	"github.com/lixenwraith/chaser/grid"
)

// Result summarises one carving run
type Result struct {
	Start    core.Point
	Jumps    int // Stride-2 moves taken
	Carved   int // Cells removed from the wall set after the start cell
	Passable int
}

// candidate is one stride-2 carve option from the current cell
type candidate struct {
	between core.Point
	next    core.Point
}

// NewRand returns a generator for the given seed and the seed actually used
// Seed 0 picks a time-based seed so each run differs
func NewRand(seed uint64) (*rand.Rand, uint64) {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed)), seed
}

// Generate fills g with walls and carves a perfect maze starting at start
// Existing walls are discarded. Agents must not be placed yet.
func Generate(g *grid.Grid, start core.Point, rng *rand.Rand) (Result, error) {
	if !g.InBounds(start) {
		return Result{}, fmt.Errorf("maze start %s: %w", start, grid.ErrInvalidCoordinate)
	}
	if rng == nil {
		rng, _ = NewRand(0)
	}

	if err := g.FillWalls(); err != nil {
		return Result{}, fmt.Errorf("maze fill: %w", err)
	}

	res := Result{Start: start}
	if err := g.ClearWall(start); err != nil {
		return Result{}, err
	}

	stack := []core.Point{start}
	candidates := make([]candidate, 0, len(core.Directions))

	for len(stack) > 0 {
		curr := stack[len(stack)-1]

		candidates = candidates[:0]
		for _, d := range core.Directions {
			between := curr.Add(d)
			next := curr.Shift(d, 2)
			if g.InBounds(between) && g.InBounds(next) && g.IsWall(next) {
				candidates = append(candidates, candidate{between: between, next: next})
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		c := candidates[rng.Intn(len(candidates))]
		if err := g.ClearWall(c.between); err != nil {
			return Result{}, err
		}
		if err := g.ClearWall(c.next); err != nil {
			return Result{}, err
		}
		res.Jumps++
		res.Carved += 2

		stack = append(stack, c.next)
	}

	res.Passable = res.Carved + 1
	return res, nil
}
