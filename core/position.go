package core

import "fmt"

// Position is a cell coordinate on the board
// X grows to the right, Y grows downward
type Position struct {
	X, Y int
}

// Pos is a shorthand constructor for Position
func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

// Add returns p moved by d, wrapped onto a size x size torus
func (p Position) Add(d Direction, size int) Position {
	return Position{
		X: wrap(p.X+d.X, size),
		Y: wrap(p.Y+d.Y, size),
	}
}

// InBounds reports whether p lies inside a size x size board
func (p Position) InBounds(size int) bool {
	return p.X >= 0 && p.X < size && p.Y >= 0 && p.Y < size
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// wrap maps v into [0, size) for any sign of v
func wrap(v, size int) int {
	v %= size
	if v < 0 {
		v += size
	}
	return v
}

// Direction is a unit step expressed as a position delta
type Direction struct {
	X, Y int
}

var (
	Up    = Direction{X: 0, Y: -1}
	Down  = Direction{X: 0, Y: 1}
	Left  = Direction{X: -1, Y: 0}
	Right = Direction{X: 1, Y: 0}
)

// Directions lists the four legal directions in display order
var Directions = [4]Direction{Up, Down, Left, Right}

// Reverse returns the opposite direction
func (d Direction) Reverse() Direction {
	return Direction{X: -d.X, Y: -d.Y}
}

// IsReverseOf reports whether d points exactly opposite to o
func (d Direction) IsReverseOf(o Direction) bool {
	return d == o.Reverse()
}

// Valid reports whether d is one of the four unit directions
func (d Direction) Valid() bool {
	for _, v := range Directions {
		if d == v {
			return true
		}
	}
	return false
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("(%d,%d)", d.X, d.Y)
}
