package core

import "fmt"

// Direction is one of the four cardinal unit steps
type Direction uint8

const (
	North Direction = iota
	South
	East
	West
)

// Directions lists every direction in neighbour expansion order
// The order decides which of several equal-length shortest paths wins
var Directions = [4]Direction{North, South, East, West}

var directionDeltas = [4][2]int{
	North: {-1, 0},
	South: {1, 0},
	East:  {0, 1},
	West:  {0, -1},
}

var directionNames = [4]string{
	North: "north",
	South: "south",
	East:  "east",
	West:  "west",
}

// Delta returns the row and column offset of a single step
func (d Direction) Delta() (int, int) {
	if d > West {
		return 0, 0
	}
	delta := directionDeltas[d]
	return delta[0], delta[1]
}

// Opposite returns the reverse direction
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default:
		return East
	}
}

// Valid reports whether d is one of the four cardinal directions
func (d Direction) Valid() bool {
	return d <= West
}

func (d Direction) String() string {
	if d > West {
		return fmt.Sprintf("direction(%d)", uint8(d))
	}
	return directionNames[d]
}

// ParseDirection resolves a direction name, case-sensitive lower case
func ParseDirection(s string) (Direction, error) {
	for i, name := range directionNames {
		if name == s {
			return Direction(i), nil
		}
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

// MarshalText encodes the direction by name
func (d Direction) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("invalid direction %d", uint8(d))
	}
	return []byte(directionNames[d]), nil
}

func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
