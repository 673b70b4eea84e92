package render

import "github.com/lixenwraith/chaser/core"

// Layout maps grid cells to terminal cell rectangles
// Grid lines of LineSize surround every cell, so the origin cell starts at (LineSize, LineSize).
type Layout struct {
	CellWidth  int
	CellHeight int
	LineSize   int
}

// NewLayout sizes cells roughly square: terminal glyphs are about twice as tall as wide
func NewLayout(cellSize, lineSize int) Layout {
	return Layout{
		CellWidth:  2 * cellSize,
		CellHeight: cellSize,
		LineSize:   lineSize,
	}
}

// ToScreen returns the top-left terminal cell of grid cell p
func (l Layout) ToScreen(p core.Point) (x, y int) {
	x = l.LineSize + p.Col*(l.CellWidth+l.LineSize)
	y = l.LineSize + p.Row*(l.CellHeight+l.LineSize)
	return x, y
}

// FromScreen returns the grid cell covering terminal cell (x, y)
// ok is false on grid lines and before the origin; callers bound-check against the grid
func (l Layout) FromScreen(x, y int) (core.Point, bool) {
	col, okX := axisFromScreen(x, l.CellWidth, l.LineSize)
	row, okY := axisFromScreen(y, l.CellHeight, l.LineSize)
	if !okX || !okY {
		return core.Point{}, false
	}
	return core.Point{Row: row, Col: col}, true
}

func axisFromScreen(v, cell, line int) (int, bool) {
	v -= line
	if v < 0 || cell <= 0 {
		return 0, false
	}
	stride := cell + line
	if v%stride >= cell {
		return 0, false
	}
	return v / stride, true
}

// Size returns the terminal width and height needed for a rows x cols grid
func (l Layout) Size(rows, cols int) (width, height int) {
	width = cols*l.CellWidth + (cols+1)*l.LineSize
	height = rows*l.CellHeight + (rows+1)*l.LineSize
	return width, height
}
