package navigation

import (
	"fmt"

	"github.com/lixenwraith/chaser/core"
	"github.com/lixenwraith/chaser/grid"
)

// DistanceMap holds unit-step distances from one source, flat indexed row*cols+col
type DistanceMap struct {
	Source core.Point
	Cols   int
	Dist   []int
}

// At returns the distance to p, Unreached when there is no route
func (m *DistanceMap) At(p core.Point) int {
	if p.Row < 0 || p.Col < 0 || p.Col >= m.Cols {
		return Unreached
	}
	idx := p.Row*m.Cols + p.Col
	if idx >= len(m.Dist) {
		return Unreached
	}
	return m.Dist[idx]
}

// Farthest returns the reachable cell with the largest distance
// Ties resolve to the first cell in row-major order
func (m *DistanceMap) Farthest() (core.Point, int) {
	best, bestDist := m.Source, 0
	for i, d := range m.Dist {
		if d > bestDist {
			best = core.Point{Row: i / m.Cols, Col: i % m.Cols}
			bestDist = d
		}
	}
	return best, bestDist
}

// Distances runs a full breadth-first flood from source over passable cells
func Distances(g *grid.Grid, source core.Point) (*DistanceMap, error) {
	if !g.InBounds(source) {
		return nil, fmt.Errorf("distances from %s: %w", source, grid.ErrInvalidCoordinate)
	}

	w := g.Cols()
	m := &DistanceMap{
		Source: source,
		Cols:   w,
		Dist:   make([]int, g.Rows()*w),
	}
	for i := range m.Dist {
		m.Dist[i] = Unreached
	}
	if g.IsWall(source) {
		return m, nil
	}

	m.Dist[source.Row*w+source.Col] = 0
	queue := []core.Point{source}
	for head := 0; head < len(queue); head++ {
		curr := queue[head]
		base := m.Dist[curr.Row*w+curr.Col]
		for _, d := range core.Directions {
			next := curr.Add(d)
			if !g.IsPassable(next) {
				continue
			}
			idx := next.Row*w + next.Col
			if m.Dist[idx] != Unreached {
				continue
			}
			m.Dist[idx] = base + 1
			queue = append(queue, next)
		}
	}
	return m, nil
}
