package input

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/chaser/core"
	"github.com/lixenwraith/chaser/engine"
)

var _ engine.InputSource = (*Handler)(nil)

// Handler turns terminal key events into per-tick intents
// Terminals report no key release, so a press holds its direction for the
// hold duration, refreshed by key repeat. A zero hold keeps the direction
// until stop or another direction.
type Handler struct {
	mu    sync.Mutex
	table *KeyTable
	clock engine.Clock
	hold  time.Duration

	dir       core.Direction
	held      bool
	pressedAt time.Time
	quit      bool
}

// NewHandler creates a handler; nil table uses the defaults
func NewHandler(table *KeyTable, clock engine.Clock, hold time.Duration) *Handler {
	if table == nil {
		table = DefaultKeyTable()
	}
	if clock == nil {
		clock = engine.NewTimeProvider()
	}
	return &Handler{
		table: table,
		clock: clock,
		hold:  hold,
	}
}

// HandleEvent applies one terminal event, returns false once quit was requested
func (h *Handler) HandleEvent(ev tcell.Event) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		action := h.table.Lookup(ev)
		if d, ok := action.Direction(); ok {
			h.dir = d
			h.held = true
			h.pressedAt = h.clock.Now()
			break
		}
		switch action {
		case ActionStop:
			h.held = false
		case ActionQuit:
			h.quit = true
		}

	case *tcell.EventResize:
		// Layout is fixed at startup
	}
	return !h.quit
}

// Poll reports the held direction for this tick
func (h *Handler) Poll() engine.Intent {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.quit {
		return engine.Intent{Quit: true}
	}
	if h.held && h.hold > 0 && h.clock.Now().Sub(h.pressedAt) >= h.hold {
		h.held = false
	}
	return engine.Intent{Direction: h.dir, Held: h.held}
}

// RequestQuit makes the next Poll report quit
func (h *Handler) RequestQuit() {
	h.mu.Lock()
	h.quit = true
	h.mu.Unlock()
}

// Listen pumps screen events into h until quit or the screen is finalized
// Runs on its own goroutine; PollEvent returns nil after Fini.
func Listen(screen tcell.Screen, h *Handler) {
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			if !h.HandleEvent(ev) {
				log.Debug().Msg("Input listener done")
				return
			}
		}
	})
}
