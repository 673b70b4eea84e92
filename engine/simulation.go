package engine

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/chaser/core"
	"github.com/lixenwraith/chaser/grid"
	"github.com/lixenwraith/chaser/movement"
	"github.com/lixenwraith/chaser/navigation"
)

// DefaultTickInterval matches one player step per 100ms
const DefaultTickInterval = 100 * time.Millisecond

// Simulation drives the player and chasers over a shared grid
// The loop goroutine is the only writer of the grid; other goroutines
// read published snapshots.
type Simulation struct {
	grid     *grid.Grid
	input    InputSource
	canvas   Canvas
	cues     Cues
	interval time.Duration

	state atomic.Uint32
	tick  atomic.Uint64

	// chaserTurn is toggled before use, so the first tick moves chasers
	chaserTurn bool

	// drawn holds the kind last sent to the canvas per cell, nil until Prepare
	drawn []core.Kind

	// contact tracks which chasers shared the player's cell after the previous tick
	contact map[uuid.UUID]bool

	observers []Observer

	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewSimulation wires a simulation over g; canvas and cues may be nil
func NewSimulation(g *grid.Grid, input InputSource, canvas Canvas, cues Cues, interval time.Duration) *Simulation {
	if input == nil {
		input = IdleInput{}
	}
	if cues == nil {
		cues = nopCues{}
	}
	if interval <= 0 {
		interval = DefaultTickInterval
	}

	s := &Simulation{
		grid:     g,
		input:    input,
		canvas:   canvas,
		cues:     cues,
		interval: interval,
		contact:  make(map[uuid.UUID]bool, g.ChaserCount()),
		stopCh:   make(chan struct{}),
	}
	s.state.Store(uint32(Running))

	player, hasPlayer := g.Player()
	for _, id := range g.ChaserIDs() {
		c, _ := g.Chaser(id)
		s.contact[id] = hasPlayer && c == player
	}
	return s
}

// Observe registers fn to receive a snapshot after every tick, call before Run
func (s *Simulation) Observe(fn Observer) {
	s.observers = append(s.observers, fn)
}

func (s *Simulation) State() State {
	return State(s.state.Load())
}

// Tick returns the number of completed ticks
func (s *Simulation) Tick() uint64 {
	return s.tick.Load()
}

// Stop moves the loop to Stopped; safe from any goroutine, idempotent
func (s *Simulation) Stop() {
	s.stopOnce.Do(func() {
		s.state.Store(uint32(Stopped))
		close(s.stopCh)
		log.Info().Uint64("tick", s.tick.Load()).Msg("Simulation stopped")
	})
}

// Prepare sizes the canvas and draws every cell once
func (s *Simulation) Prepare() error {
	if s.canvas == nil {
		return nil
	}
	rows, cols := s.grid.Rows(), s.grid.Cols()
	if err := s.canvas.Prepare(rows, cols); err != nil {
		return err
	}

	s.drawn = make([]core.Kind, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			p := core.Point{Row: r, Col: c}
			k := s.grid.KindAt(p)
			s.drawn[r*cols+c] = k
			if k == core.KindEmpty {
				s.canvas.Clear(p)
			} else {
				s.canvas.Fill(p, k)
			}
		}
	}
	s.canvas.Show()
	return nil
}

// Run prepares the canvas, then ticks at the configured interval until
// Stop, a quit intent, or ctx cancellation
func (s *Simulation) Run(ctx context.Context) error {
	if err := s.Prepare(); err != nil {
		return err
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for s.Step() {
		select {
		case <-ctx.Done():
			s.Stop()
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}
			return ctx.Err()
		case <-s.stopCh:
			return nil
		case <-ticker.C:
		}
	}
	return nil
}

// Step runs a single tick synchronously, returns false once the loop is stopped
// Player moves first so chasers react to its post-move cell.
func (s *Simulation) Step() bool {
	if s.State() == Stopped {
		return false
	}

	intent := s.input.Poll()
	if intent.Quit {
		log.Info().Msg("Quit requested")
		s.Stop()
		return false
	}

	dirty := s.agentCells(nil)

	if intent.Held {
		if !movement.MovePlayer(s.grid, intent.Direction) {
			s.cues.Bump()
		}
	}

	s.chaserTurn = !s.chaserTurn
	if s.chaserTurn {
		s.moveChasers()
	}

	s.detectContact()
	s.tick.Add(1)

	s.redraw(s.agentCells(dirty))
	s.publish()
	return true
}

func (s *Simulation) moveChasers() {
	player, ok := s.grid.Player()
	if !ok {
		return
	}
	for _, id := range s.grid.ChaserIDs() {
		c, _ := s.grid.Chaser(id)
		if c == player {
			continue
		}
		path, err := navigation.ShortestPath(s.grid, c, player)
		if err != nil {
			log.Debug().Err(err).Str("id", id.String()).Msg("Chaser holds position")
			continue
		}
		if len(path) == 0 {
			continue
		}
		movement.MoveChaser(s.grid, id, path[0])
	}
}

func (s *Simulation) detectContact() {
	player, ok := s.grid.Player()
	if !ok {
		return
	}
	for _, id := range s.grid.ChaserIDs() {
		c, _ := s.grid.Chaser(id)
		on := c == player
		if on && !s.contact[id] {
			log.Info().
				Str("id", id.String()).
				Stringer("cell", c).
				Uint64("tick", s.tick.Load()+1).
				Msg("Chaser reached player")
			s.cues.Contact()
		}
		s.contact[id] = on
	}
}

// agentCells appends the current player and chaser cells to dst
func (s *Simulation) agentCells(dst []core.Point) []core.Point {
	if p, ok := s.grid.Player(); ok {
		dst = append(dst, p)
	}
	for _, id := range s.grid.ChaserIDs() {
		c, _ := s.grid.Chaser(id)
		dst = append(dst, c)
	}
	return dst
}

// redraw sends draw requests only for cells whose kind changed, then presents the frame
func (s *Simulation) redraw(cells []core.Point) {
	if s.canvas == nil || s.drawn == nil {
		return
	}
	cols := s.grid.Cols()
	for _, p := range cells {
		idx := p.Row*cols + p.Col
		k := s.grid.KindAt(p)
		if s.drawn[idx] == k {
			continue
		}
		s.drawn[idx] = k
		if k == core.KindEmpty {
			s.canvas.Clear(p)
		} else {
			s.canvas.Fill(p, k)
		}
	}
	s.canvas.Show()
}

func (s *Simulation) publish() {
	if len(s.observers) == 0 {
		return
	}
	snap := Snapshot{
		Tick:       s.tick.Load(),
		State:      s.State(),
		ChaserTurn: s.chaserTurn,
		Grid:       s.grid.Clone(),
	}
	for _, fn := range s.observers {
		fn(snap)
	}
}
