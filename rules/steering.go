package rules

import "github.com/battlesnakeio/snake/game"

// SteerResult is the outcome of a direction request.
type SteerResult int

const (
	// SteerRejected means the request left the steering untouched.
	SteerRejected SteerResult = iota
	// SteerAccepted means the direction is pending for the next tick.
	SteerAccepted
	// SteerStarted means this was the first direction ever accepted.
	SteerStarted
)

// Steering holds the committed direction the snake is travelling in and the
// pending direction requested since the last tick. The zero value is idle.
type Steering struct {
	current game.Direction
	pending game.Direction
}

// Idle reports whether no direction was ever accepted.
func (s *Steering) Idle() bool {
	return s.current == ""
}

// Current returns the committed direction.
func (s *Steering) Current() game.Direction {
	return s.current
}

// Pending returns the direction the next tick will move in.
func (s *Steering) Pending() game.Direction {
	return s.pending
}

// Request asks to turn the snake. A reversal of the committed direction is
// rejected. Requests are checked against the committed direction, not the
// pending one.
func (s *Steering) Request(d game.Direction) SteerResult {
	if !d.Valid() {
		return SteerRejected
	}
	if s.Idle() {
		s.current = d
		s.pending = d
		return SteerStarted
	}
	if d.IsOppositeOf(s.current) {
		return SteerRejected
	}
	s.pending = d
	return SteerAccepted
}

// Commit makes the pending direction the committed one and returns it.
func (s *Steering) Commit() game.Direction {
	s.current = s.pending
	return s.current
}

// Reset returns the steering to idle.
func (s *Steering) Reset() {
	s.current = ""
	s.pending = ""
}
