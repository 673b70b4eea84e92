package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/chaser/core"
)

// Palette
var (
	RgbPlayer     = tcell.NewRGBColor(0, 0, 255)     // Blue
	RgbChaser     = tcell.NewRGBColor(0, 255, 0)     // Green
	RgbBackground = tcell.NewRGBColor(0, 0, 0)       // Black
	RgbGridLine   = tcell.NewRGBColor(255, 255, 255) // White
)

// Wall shades are orange with a per-cell green channel in [WallGreenMin, WallGreenMax)
const (
	WallRed      = 255
	WallBlue     = 0
	WallGreenMin = 100
	WallGreenMax = 200
)

// WallColor returns the wall shade for green channel g
func WallColor(g int) tcell.Color {
	return tcell.NewRGBColor(WallRed, int32(g), WallBlue)
}

// KindColor returns the fixed colour of an agent kind
// Walls vary per cell and are resolved by the renderer.
func KindColor(k core.Kind) tcell.Color {
	switch k {
	case core.KindPlayer:
		return RgbPlayer
	case core.KindChaser:
		return RgbChaser
	case core.KindWall:
		return WallColor(WallGreenMin)
	default:
		return RgbBackground
	}
}
