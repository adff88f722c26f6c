package rules

import (
	"math/rand"

	"github.com/battlesnakeio/snake/game"
)

// seqRand replays values, each reduced modulo the requested bound.
type seqRand struct {
	values []int32
	next   int
}

func (s *seqRand) Int31n(n int32) int32 {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v % n
}

func newRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func snakeAt(points ...game.Point) *game.Snake {
	s := &game.Snake{}
	for _, p := range points {
		s.Body = append(s.Body, &game.Segment{Point: p})
	}
	return s
}

func pt(row, col int32) game.Point {
	return game.Point{Row: row, Col: col}
}

func steeringTowards(directions ...game.Direction) *Steering {
	s := &Steering{}
	for _, d := range directions {
		s.Request(d)
	}
	return s
}
