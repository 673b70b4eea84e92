package render

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/exp/rand"

	"github.com/lixenwraith/chaser/core"
	"github.com/lixenwraith/chaser/engine"
)

// ErrScreenTooSmall is returned by Prepare when the grid does not fit the terminal
var ErrScreenTooSmall = errors.New("terminal too small for grid")

var _ engine.Canvas = (*TerminalRenderer)(nil)

// TerminalRenderer paints grid cells as solid blocks on a tcell screen
type TerminalRenderer struct {
	screen tcell.Screen
	layout Layout
	rng    *rand.Rand

	rows, cols int
	wallGreen  []int // Per-cell shade, flat indexed, chosen once in Prepare
}

// NewTerminalRenderer creates a renderer; rng seeds the wall shades
func NewTerminalRenderer(screen tcell.Screen, layout Layout, rng *rand.Rand) *TerminalRenderer {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &TerminalRenderer{
		screen: screen,
		layout: layout,
		rng:    rng,
	}
}

// Prepare checks the terminal size, picks wall shades and draws the grid lines
func (r *TerminalRenderer) Prepare(rows, cols int) error {
	needW, needH := r.layout.Size(rows, cols)
	w, h := r.screen.Size()
	if w < needW || h < needH {
		return fmt.Errorf("%w: need %dx%d, have %dx%d", ErrScreenTooSmall, needW, needH, w, h)
	}

	r.rows, r.cols = rows, cols
	r.wallGreen = make([]int, rows*cols)
	for i := range r.wallGreen {
		r.wallGreen[i] = WallGreenMin + r.rng.Intn(WallGreenMax-WallGreenMin)
	}

	r.screen.Clear()
	r.drawGridLines(needW, needH)
	return nil
}

func (r *TerminalRenderer) drawGridLines(width, height int) {
	line := r.layout.LineSize
	if line <= 0 {
		return
	}
	style := tcell.StyleDefault.Background(RgbGridLine)

	// Horizontal bands
	for row := 0; row <= r.rows; row++ {
		y0 := row * (r.layout.CellHeight + line)
		for y := y0; y < y0+line; y++ {
			for x := 0; x < width; x++ {
				r.screen.SetContent(x, y, ' ', nil, style)
			}
		}
	}
	// Vertical bands
	for col := 0; col <= r.cols; col++ {
		x0 := col * (r.layout.CellWidth + line)
		for x := x0; x < x0+line; x++ {
			for y := 0; y < height; y++ {
				r.screen.SetContent(x, y, ' ', nil, style)
			}
		}
	}
}

// Fill paints p in the colour of kind
func (r *TerminalRenderer) Fill(p core.Point, kind core.Kind) {
	r.paint(p, r.colorAt(p, kind))
}

// Clear paints p in the background colour
func (r *TerminalRenderer) Clear(p core.Point) {
	r.paint(p, RgbBackground)
}

func (r *TerminalRenderer) Show() {
	r.screen.Show()
}

// colorAt resolves the per-cell wall shade, falling back to the kind colour
func (r *TerminalRenderer) colorAt(p core.Point, kind core.Kind) tcell.Color {
	if kind != core.KindWall || !r.inBounds(p) {
		return KindColor(kind)
	}
	return WallColor(r.wallGreen[p.Row*r.cols+p.Col])
}

func (r *TerminalRenderer) inBounds(p core.Point) bool {
	return p.Row >= 0 && p.Row < r.rows && p.Col >= 0 && p.Col < r.cols
}

func (r *TerminalRenderer) paint(p core.Point, color tcell.Color) {
	if !r.inBounds(p) {
		return
	}
	x0, y0 := r.layout.ToScreen(p)
	style := tcell.StyleDefault.Background(color).Foreground(color)
	for y := y0; y < y0+r.layout.CellHeight; y++ {
		for x := x0; x < x0+r.layout.CellWidth; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}
