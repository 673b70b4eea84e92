package grid

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/chaser/core"
)

// String renders the grid one glyph per cell, rows separated by newlines
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			sb.WriteRune(g.KindAt(core.Point{Row: r, Col: c}).Glyph())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Parse builds a grid from glyph rows as produced by String
// '#' wall, '@' player, 'Z' chaser, anything else passable
func Parse(rows ...string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, ErrInvalidDimensions
	}
	cols := len([]rune(rows[0]))
	g, err := New(len(rows), cols)
	if err != nil {
		return nil, err
	}

	var chasers []core.Point
	for r, line := range rows {
		runes := []rune(line)
		if len(runes) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidDimensions, r, len(runes), cols)
		}
		for c, ch := range runes {
			p := core.Point{Row: r, Col: c}
			switch ch {
			case core.KindWall.Glyph():
				g.walls[g.index(p)] = true
			case core.KindPlayer.Glyph():
				g.player = p
				g.hasPlayer = true
			case core.KindChaser.Glyph():
				chasers = append(chasers, p)
			}
		}
	}

	for _, p := range chasers {
		if _, err := g.AddChaser(p); err != nil {
			return nil, err
		}
	}
	return g, nil
}
