package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/chaser/core"
	"github.com/lixenwraith/chaser/grid"
)

type scriptInput struct {
	intents []Intent
	next    int
}

func (s *scriptInput) Poll() Intent {
	if s.next >= len(s.intents) {
		return Intent{}
	}
	it := s.intents[s.next]
	s.next++
	return it
}

type holdInput struct{ dir core.Direction }

func (h holdInput) Poll() Intent { return Intent{Direction: h.dir, Held: true} }

type countCues struct{ bumps, contacts int }

func (c *countCues) Bump()    { c.bumps++ }
func (c *countCues) Contact() { c.contacts++ }

type drawOp struct {
	p     core.Point
	kind  core.Kind
	clear bool
}

type recordCanvas struct {
	rows, cols int
	ops        []drawOp
	shows      int
}

func (r *recordCanvas) Prepare(rows, cols int) error {
	r.rows, r.cols = rows, cols
	return nil
}
func (r *recordCanvas) Fill(p core.Point, k core.Kind) { r.ops = append(r.ops, drawOp{p: p, kind: k}) }
func (r *recordCanvas) Clear(p core.Point)             { r.ops = append(r.ops, drawOp{p: p, clear: true}) }
func (r *recordCanvas) Show()                          { r.shows++ }

func chaserAt(t *testing.T, g *grid.Grid, i int) core.Point {
	t.Helper()
	ids := g.ChaserIDs()
	require.Greater(t, len(ids), i)
	p, ok := g.Chaser(ids[i])
	require.True(t, ok)
	return p
}

func TestChasersMoveEveryOtherTick(t *testing.T) {
	g, err := grid.Parse("Z.....@")
	require.NoError(t, err)
	sim := NewSimulation(g, nil, nil, nil, time.Millisecond)

	want := []int{1, 1, 2, 2, 3, 3}
	for i, col := range want {
		require.True(t, sim.Step())
		assert.Equal(t, core.Point{Row: 0, Col: col}, chaserAt(t, g, 0), "after tick %d", i+1)
	}
	assert.Equal(t, uint64(6), sim.Tick())
}

func TestPlayerMovesBeforeChasers(t *testing.T) {
	g, err := grid.Parse(
		"Z.@",
		"...",
	)
	require.NoError(t, err)
	sim := NewSimulation(g, holdInput{dir: core.South}, nil, nil, time.Millisecond)

	require.True(t, sim.Step())
	p, _ := g.Player()
	assert.Equal(t, core.Point{Row: 1, Col: 2}, p)
	// Heading for (1,2) the first step is South; heading for (0,2) it would be East
	assert.Equal(t, core.Point{Row: 1, Col: 0}, chaserAt(t, g, 0))
}

func TestChaserOnPlayerStays(t *testing.T) {
	g, err := grid.New(1, 3)
	require.NoError(t, err)
	spot := core.Point{Row: 0, Col: 1}
	require.NoError(t, g.PlacePlayer(spot))
	_, err = g.AddChaser(spot)
	require.NoError(t, err)

	cues := &countCues{}
	sim := NewSimulation(g, nil, nil, cues, time.Millisecond)
	for i := 0; i < 3; i++ {
		require.True(t, sim.Step())
		assert.Equal(t, spot, chaserAt(t, g, 0))
	}
	assert.Zero(t, cues.contacts, "spawn overlap is not a new contact")
}

func TestUnreachableChaserHolds(t *testing.T) {
	g, err := grid.Parse("Z#@")
	require.NoError(t, err)
	sim := NewSimulation(g, nil, nil, nil, time.Millisecond)

	for i := 0; i < 4; i++ {
		require.True(t, sim.Step())
	}
	assert.Equal(t, core.Point{}, chaserAt(t, g, 0))
	assert.Equal(t, Running, sim.State())
}

func TestBumpAndContactCues(t *testing.T) {
	g, err := grid.Parse("Z.@")
	require.NoError(t, err)
	cues := &countCues{}
	sim := NewSimulation(g, holdInput{dir: core.East}, nil, cues, time.Millisecond)

	require.True(t, sim.Step())
	assert.Equal(t, 1, cues.bumps)
	assert.Zero(t, cues.contacts)

	require.True(t, sim.Step())
	require.True(t, sim.Step())
	assert.Equal(t, 3, cues.bumps)
	assert.Equal(t, 1, cues.contacts)

	// Contact persists without re-cueing
	require.True(t, sim.Step())
	require.True(t, sim.Step())
	assert.Equal(t, 1, cues.contacts)
}

func TestQuitStopsLoop(t *testing.T) {
	g, err := grid.Parse("@..")
	require.NoError(t, err)
	in := &scriptInput{intents: []Intent{
		{Direction: core.East, Held: true},
		{Quit: true},
		{Direction: core.East, Held: true},
	}}
	sim := NewSimulation(g, in, nil, nil, time.Millisecond)

	assert.True(t, sim.Step())
	assert.False(t, sim.Step())
	assert.False(t, sim.Step())
	assert.Equal(t, Stopped, sim.State())
	assert.Equal(t, uint64(1), sim.Tick())

	p, _ := g.Player()
	assert.Equal(t, core.Point{Row: 0, Col: 1}, p)
}

func TestRunReturnsOnQuit(t *testing.T) {
	g, err := grid.Parse("@..")
	require.NoError(t, err)
	in := &scriptInput{intents: []Intent{{}, {}, {Quit: true}}}
	sim := NewSimulation(g, in, nil, nil, time.Millisecond)

	require.NoError(t, sim.Run(context.Background()))
	assert.Equal(t, Stopped, sim.State())
	assert.Equal(t, uint64(2), sim.Tick())
}

func TestRunReturnsOnCancel(t *testing.T) {
	g, err := grid.Parse("@..")
	require.NoError(t, err)
	sim := NewSimulation(g, nil, nil, nil, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, sim.Run(ctx))
	assert.Equal(t, Stopped, sim.State())
}

func TestStopFromOtherGoroutine(t *testing.T) {
	g, err := grid.Parse("@..")
	require.NoError(t, err)
	sim := NewSimulation(g, nil, nil, nil, time.Millisecond)

	done := make(chan error, 1)
	go func() { done <- sim.Run(context.Background()) }()

	require.Eventually(t, func() bool { return sim.Tick() >= 3 }, time.Second, time.Millisecond)
	sim.Stop()
	sim.Stop()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after Stop")
	}
}

func TestRedrawOnlyChangedCells(t *testing.T) {
	g, err := grid.Parse(
		"@..",
		"##.",
		"Z..",
	)
	require.NoError(t, err)
	canvas := &recordCanvas{}
	sim := NewSimulation(g, holdInput{dir: core.East}, canvas, nil, time.Millisecond)

	require.NoError(t, sim.Prepare())
	assert.Equal(t, 3, canvas.rows)
	assert.Equal(t, 3, canvas.cols)
	assert.Len(t, canvas.ops, 9)
	assert.Equal(t, 1, canvas.shows)

	canvas.ops = nil
	require.True(t, sim.Step())

	// Player (0,0)->(0,1), chaser (2,0)->(2,1)
	assert.ElementsMatch(t, []drawOp{
		{p: core.Point{Row: 0, Col: 0}, clear: true},
		{p: core.Point{Row: 2, Col: 0}, clear: true},
		{p: core.Point{Row: 0, Col: 1}, kind: core.KindPlayer},
		{p: core.Point{Row: 2, Col: 1}, kind: core.KindChaser},
	}, canvas.ops)
	assert.Equal(t, 2, canvas.shows)

	// Chaser rests on the off tick; only the player cells change
	canvas.ops = nil
	require.True(t, sim.Step())
	assert.ElementsMatch(t, []drawOp{
		{p: core.Point{Row: 0, Col: 1}, clear: true},
		{p: core.Point{Row: 0, Col: 2}, kind: core.KindPlayer},
	}, canvas.ops)
}

func TestObserversReceiveClones(t *testing.T) {
	g, err := grid.Parse("@.Z")
	require.NoError(t, err)
	sim := NewSimulation(g, holdInput{dir: core.East}, nil, nil, time.Millisecond)

	var snaps []Snapshot
	sim.Observe(func(s Snapshot) { snaps = append(snaps, s) })

	require.True(t, sim.Step())
	require.True(t, sim.Step())
	require.Len(t, snaps, 2)

	assert.Equal(t, uint64(1), snaps[0].Tick)
	assert.True(t, snaps[0].ChaserTurn)
	assert.False(t, snaps[1].ChaserTurn)
	assert.Equal(t, Running, snaps[1].State)

	p0, _ := snaps[0].Grid.Player()
	p1, _ := snaps[1].Grid.Player()
	assert.NotSame(t, g, snaps[0].Grid)
	// The first snapshot is not affected by the second tick
	assert.Equal(t, core.Point{Row: 0, Col: 1}, p0)
	assert.Equal(t, core.Point{Row: 0, Col: 2}, p1)

	c0, _ := snaps[0].Grid.Chaser(g.ChaserIDs()[0])
	assert.Equal(t, core.Point{Row: 0, Col: 1}, c0)
}
