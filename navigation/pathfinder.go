package navigation

import (
	"errors"
	"fmt"
	"slices"

	"github.com/lixenwraith/chaser/core"
	"github.com/lixenwraith/chaser/grid"
)

// ErrUnreachable is returned when no passable route joins source and target
var ErrUnreachable = errors.New("target unreachable")

// Unreached marks cells with no route in a distance map
const Unreached = -1

// Path is an ordered walk from a source cell to a target cell
type Path []core.Direction

// Cells expands the walk into the visited cells, excluding the source
func (p Path) Cells(source core.Point) []core.Point {
	out := make([]core.Point, 0, len(p))
	curr := source
	for _, d := range p {
		curr = curr.Add(d)
		out = append(out, curr)
	}
	return out
}

// ShortestPath returns a minimum-length walk from source to target over passable cells
// Ties are broken by expanding neighbours in North, South, East, West order.
// Holds no state between calls; callers re-plan every turn.
func ShortestPath(g *grid.Grid, source, target core.Point) (Path, error) {
	if !g.InBounds(source) || !g.InBounds(target) {
		return nil, fmt.Errorf("path %s -> %s: %w", source, target, grid.ErrInvalidCoordinate)
	}
	if g.IsWall(source) || g.IsWall(target) {
		return nil, fmt.Errorf("path %s -> %s: %w", source, target, ErrUnreachable)
	}
	if source == target {
		return Path{}, nil
	}

	w := g.Cols()
	size := g.Rows() * w
	sourceIdx := source.Row*w + source.Col
	targetIdx := target.Row*w + target.Col

	// prev[i] is the flat index cell i was discovered from, -1 when undiscovered
	prev := make([]int, size)
	for i := range prev {
		prev[i] = -1
	}
	prev[sourceIdx] = sourceIdx

	queue := make([]int, 0, size/4+1)
	queue = append(queue, sourceIdx)

	found := false
search:
	for head := 0; head < len(queue); head++ {
		currIdx := queue[head]
		curr := core.Point{Row: currIdx / w, Col: currIdx % w}

		for _, d := range core.Directions {
			next := curr.Add(d)
			if !g.IsPassable(next) {
				continue
			}
			nextIdx := next.Row*w + next.Col
			if prev[nextIdx] != -1 {
				continue
			}
			prev[nextIdx] = currIdx
			if nextIdx == targetIdx {
				found = true
				break search
			}
			queue = append(queue, nextIdx)
		}
	}

	if !found {
		return nil, fmt.Errorf("path %s -> %s: %w", source, target, ErrUnreachable)
	}

	// Walk predecessors back from target, then reverse into source->target order
	var path Path
	for idx := targetIdx; idx != sourceIdx; idx = prev[idx] {
		from := core.Point{Row: prev[idx] / w, Col: prev[idx] % w}
		to := core.Point{Row: idx / w, Col: idx % w}
		d, ok := from.DirectionTo(to)
		if !ok {
			return nil, fmt.Errorf("path %s -> %s: broken predecessor chain at %s", source, target, to)
		}
		path = append(path, d)
	}
	slices.Reverse(path)
	return path, nil
}

// NextStep returns the first direction of the shortest path
// ok is false when source equals target or no route exists
func NextStep(g *grid.Grid, source, target core.Point) (core.Direction, bool) {
	path, err := ShortestPath(g, source, target)
	if err != nil || len(path) == 0 {
		return 0, false
	}
	return path[0], true
}
