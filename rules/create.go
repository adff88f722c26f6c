package rules

import (
	"fmt"

	"github.com/battlesnakeio/snake/game"
)

// MinGridSize is the smallest board that leaves room for a snake and food.
const MinGridSize = 2

// CreateInitialFrame builds a turn zero frame: a single segment snake at a
// random cell and food on a free cell.
func CreateInitialFrame(rng Rand, size int32) (*game.Frame, error) {
	if size < MinGridSize {
		return nil, fmt.Errorf("rules: grid size %d is below the minimum of %d", size, MinGridSize)
	}

	snake := game.NewSnake(RandomPoint(rng, size))
	p, err := PlaceFood(rng, snake, size)
	if err != nil {
		return nil, err
	}

	return &game.Frame{
		Turn:  0,
		Size:  size,
		Snake: snake,
		Food:  &game.Food{Point: p},
	}, nil
}
