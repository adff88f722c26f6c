package game

import "fmt"

// Point is a 1-indexed cell on the board. A zero coordinate means the
// coordinate was never set.
type Point struct {
	Row int32
	Col int32
}

// Complete reports whether both coordinates are set.
func (p Point) Complete() bool {
	return p.Row != 0 && p.Col != 0
}

// Equal checks if 2 points are the same row,col coordinate
func (p Point) Equal(other Point) bool {
	return p.Row == other.Row && p.Col == other.Col
}

// Step returns the point one unit away in the given direction.
func (p Point) Step(d Direction) Point {
	switch d {
	case Up:
		return Point{Row: p.Row - 1, Col: p.Col}
	case Down:
		return Point{Row: p.Row + 1, Col: p.Col}
	case Left:
		return Point{Row: p.Row, Col: p.Col - 1}
	case Right:
		return Point{Row: p.Row, Col: p.Col + 1}
	}
	return p
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}
