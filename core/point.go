package core

import "fmt"

// Point is a grid cell addressed by row and column
type Point struct {
	Row, Col int
}

// Add returns the point shifted by one unit step in direction d
func (p Point) Add(d Direction) Point {
	dr, dc := d.Delta()
	return Point{Row: p.Row + dr, Col: p.Col + dc}
}

// Shift returns the point shifted by n unit steps in direction d
func (p Point) Shift(d Direction, n int) Point {
	dr, dc := d.Delta()
	return Point{Row: p.Row + n*dr, Col: p.Col + n*dc}
}

// DirectionTo returns the direction of a unit step from p to q
// ok is false when q is not orthogonally adjacent to p
func (p Point) DirectionTo(q Point) (Direction, bool) {
	for _, d := range Directions {
		if p.Add(d) == q {
			return d, true
		}
	}
	return 0, false
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}
