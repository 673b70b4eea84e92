package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/akamensky/argparse"

	"github.com/lixenwraith/chaser/core"
	"github.com/lixenwraith/chaser/grid"
	"github.com/lixenwraith/chaser/maze"
	"github.com/lixenwraith/chaser/navigation"
)

func main() {
	parser := argparse.NewParser("maze-generator", "Carve a maze and show its longest path from the start")
	rows := parser.Int("r", "rows", &argparse.Options{Default: 19, Help: "Grid rows"})
	cols := parser.Int("c", "cols", &argparse.Options{Default: 35, Help: "Grid columns"})
	seed := parser.Int("n", "seed", &argparse.Options{Default: 0, Help: "Random seed, 0 for time based"})
	startRow := parser.Int("y", "start-row", &argparse.Options{Default: 0, Help: "Start row"})
	startCol := parser.Int("x", "start-col", &argparse.Options{Default: 0, Help: "Start column"})

	if err := parser.Parse(os.Args); err != nil {
		fmt.Fprint(os.Stderr, parser.Usage(err))
		os.Exit(1)
	}

	if err := generate(os.Stdout, *rows, *cols, uint64(*seed), core.Point{Row: *startRow, Col: *startCol}); err != nil {
		fmt.Fprintf(os.Stderr, "maze-generator: %v\n", err)
		os.Exit(1)
	}
}

func generate(w io.Writer, rows, cols int, seed uint64, start core.Point) error {
	g, err := grid.New(rows, cols)
	if err != nil {
		return err
	}
	rng, used := maze.NewRand(seed)

	t0 := time.Now()
	res, err := maze.Generate(g, start, rng)
	if err != nil {
		return err
	}
	dur := time.Since(t0)

	dm, err := navigation.Distances(g, start)
	if err != nil {
		return err
	}
	end, _ := dm.Farthest()
	path, err := navigation.ShortestPath(g, start, end)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Seed: %d\n", used)
	fmt.Fprintf(w, "Grid: %dx%d, carved %d cells in %d jumps (%v)\n", rows, cols, res.Carved, res.Jumps, dur)
	fmt.Fprintf(w, "Longest path from %s: %s, %d steps\n", start, end, len(path))
	draw(w, g, start, end, path.Cells(start))
	return nil
}

func draw(w io.Writer, g *grid.Grid, start, end core.Point, path []core.Point) {
	onPath := make(map[core.Point]bool, len(path))
	for _, p := range path {
		onPath[p] = true
	}

	var sb strings.Builder
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			p := core.Point{Row: r, Col: c}
			switch {
			case p == start:
				sb.WriteRune('S')
			case p == end:
				sb.WriteRune('E')
			case g.IsWall(p):
				sb.WriteRune('█')
			case onPath[p]:
				sb.WriteRune('•')
			default:
				sb.WriteRune(' ')
			}
		}
		sb.WriteByte('\n')
	}
	fmt.Fprint(w, sb.String())
}
