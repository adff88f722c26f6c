package rules

import (
	"fmt"

	"github.com/battlesnakeio/snake/game"
	log "github.com/sirupsen/logrus"
)

// TickResult describes what a single tick did to the frame.
type TickResult struct {
	// Advanced is false when no direction was ever set and nothing moved.
	Advanced  bool
	Turn      int64
	Direction game.Direction
	// Ate is set when the head reached the food. Grown is the new tail
	// segment; it carries the consumed food's handle.
	Ate   bool
	Grown *game.Segment
	// Over is set when the tick ended the game, Cause says why.
	Over  bool
	Cause string
}

// Tick advances the frame by one step: the body follows the head, the head
// moves in the pending direction, then walls, the body and food are checked
// in that order. A game ending collision always wins over eating.
func Tick(frame *game.Frame, steering *Steering, rng Rand) (*TickResult, error) {
	if frame == nil || frame.Snake.Len() == 0 {
		return nil, fmt.Errorf("rules: invalid state, frame has no snake")
	}
	if steering == nil || steering.Idle() {
		return &TickResult{Turn: frame.Turn}, nil
	}

	direction := steering.Commit()
	vacated := frame.Snake.Move(direction)
	frame.Turn++

	result := &TickResult{
		Advanced:  true,
		Turn:      frame.Turn,
		Direction: direction,
	}

	if cause, dead := checkForDeath(frame); dead {
		log.WithFields(log.Fields{
			"Turn":  frame.Turn,
			"Head":  frame.Snake.Head().Point,
			"Cause": cause,
		}).Debug("snake died")
		result.Over = true
		result.Cause = cause
		return result, nil
	}

	if frame.Food == nil || !frame.Snake.Head().Equal(frame.Food.Point) {
		return result, nil
	}

	log.WithFields(log.Fields{
		"Turn": frame.Turn,
		"Food": frame.Food.Point,
	}).Debug("snake ate")

	grown := &game.Segment{Point: vacated, Handle: frame.Food.Handle}
	frame.Snake.Grow(grown)
	result.Ate = true
	result.Grown = grown

	p, err := PlaceFood(rng, frame.Snake, frame.Size)
	if err == ErrBoardFull {
		frame.Food = nil
		result.Over = true
		result.Cause = DeathCauseBoardFull
		return result, nil
	}
	if err != nil {
		return result, err
	}
	frame.Food = &game.Food{Point: p}
	return result, nil
}
