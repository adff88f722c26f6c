package rules

import "github.com/battlesnakeio/snake/game"

// Rand is the source of randomness used for placement. *math/rand.Rand
// satisfies it.
type Rand interface {
	Int31n(n int32) int32
}

// RandomCoordinate returns a uniform coordinate in [1, size].
func RandomCoordinate(rng Rand, size int32) int32 {
	return rng.Int31n(size) + 1
}

// RandomPoint returns a point with independently drawn row and col.
func RandomPoint(rng Rand, size int32) game.Point {
	row := RandomCoordinate(rng, size)
	col := RandomCoordinate(rng, size)
	return game.Point{Row: row, Col: col}
}

// IsOutOfBounds checks if p lies outside [1, size] on either axis. An unset
// coordinate is always out of bounds.
func IsOutOfBounds(p game.Point, size int32) bool {
	return p.Row < 1 || p.Col < 1 || p.Row > size || p.Col > size
}
