package engine

import "github.com/lixenwraith/chaser/core"

// Intent is what the input collaborator reports for one tick
type Intent struct {
	Direction core.Direction
	Held      bool // Direction is meaningful only when Held
	Quit      bool
}

// InputSource is polled once per tick
type InputSource interface {
	Poll() Intent
}

// Canvas receives draw requests in grid coordinates
// Pixel/cell geometry stays on the canvas side.
type Canvas interface {
	Prepare(rows, cols int) error
	Fill(p core.Point, kind core.Kind)
	Clear(p core.Point)
	Show()
}

// Cues are fire-and-forget notifications, typically audio
type Cues interface {
	Bump()
	Contact()
}

type nopCues struct{}

func (nopCues) Bump()    {}
func (nopCues) Contact() {}

// IdleInput never holds a direction and never quits
type IdleInput struct{}

func (IdleInput) Poll() Intent { return Intent{} }
