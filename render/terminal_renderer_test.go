package render

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/lixenwraith/chaser/core"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func bgAt(screen tcell.Screen, x, y int) tcell.Color {
	_, _, style, _ := screen.GetContent(x, y)
	_, bg, _ := style.Decompose()
	return bg
}

func TestRendererTooSmall(t *testing.T) {
	screen := newScreen(t, 10, 5)
	r := NewTerminalRenderer(screen, NewLayout(1, 1), nil)

	err := r.Prepare(3, 4)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrScreenTooSmall))
}

func TestRendererPaintsCells(t *testing.T) {
	screen := newScreen(t, 80, 24)
	r := NewTerminalRenderer(screen, NewLayout(1, 1), rand.New(rand.NewSource(5)))
	require.NoError(t, r.Prepare(3, 4))

	assert.Equal(t, RgbGridLine, bgAt(screen, 0, 0))
	assert.Equal(t, RgbGridLine, bgAt(screen, 3, 1))

	r.Fill(core.Point{}, core.KindPlayer)
	r.Fill(core.Point{Row: 2, Col: 3}, core.KindChaser)
	r.Show()

	assert.Equal(t, RgbPlayer, bgAt(screen, 1, 1))
	assert.Equal(t, RgbPlayer, bgAt(screen, 2, 1))
	assert.Equal(t, RgbChaser, bgAt(screen, 10, 5))
	assert.Equal(t, RgbChaser, bgAt(screen, 11, 5))

	r.Clear(core.Point{})
	assert.Equal(t, RgbBackground, bgAt(screen, 1, 1))

	// Out of grid requests are ignored
	r.Fill(core.Point{Row: 9, Col: 9}, core.KindPlayer)
}

func TestRendererWallShades(t *testing.T) {
	shadeOf := func(seed uint64) []tcell.Color {
		screen := newScreen(t, 80, 24)
		r := NewTerminalRenderer(screen, NewLayout(1, 0), rand.New(rand.NewSource(seed)))
		require.NoError(t, r.Prepare(4, 4))

		var out []tcell.Color
		for row := 0; row < 4; row++ {
			for col := 0; col < 4; col++ {
				p := core.Point{Row: row, Col: col}
				r.Fill(p, core.KindWall)
				x, y := r.layout.ToScreen(p)
				out = append(out, bgAt(screen, x, y))
			}
		}
		return out
	}

	first := shadeOf(11)
	assert.Equal(t, first, shadeOf(11))

	for _, c := range first {
		red, green, blue := c.RGB()
		assert.Equal(t, int32(WallRed), red)
		assert.Equal(t, int32(WallBlue), blue)
		assert.GreaterOrEqual(t, green, int32(WallGreenMin))
		assert.Less(t, green, int32(WallGreenMax))
	}
}

func TestKindColor(t *testing.T) {
	assert.Equal(t, RgbPlayer, KindColor(core.KindPlayer))
	assert.Equal(t, RgbChaser, KindColor(core.KindChaser))
	assert.Equal(t, RgbBackground, KindColor(core.KindEmpty))
}
