package rules

import (
	"errors"

	"github.com/battlesnakeio/snake/game"
)

// MaxPlacementAttempts is how many random cells are tried before food
// placement falls back to scanning the board for free cells.
var MaxPlacementAttempts = 64

var (
	// ErrMissingCoordinate is returned when a point without both coordinates
	// is used in an occupancy query.
	ErrMissingCoordinate = errors.New("rules: missing coordinate")
	// ErrBoardFull is returned when there is no unoccupied cell left.
	ErrBoardFull = errors.New("rules: no unoccupied cell left on the board")
)

// IsOccupied checks if any snake segment sits on p.
func IsOccupied(p game.Point, snake *game.Snake) (bool, error) {
	if !p.Complete() {
		return false, ErrMissingCoordinate
	}
	if snake == nil {
		return false, nil
	}
	for _, seg := range snake.Body {
		if seg.Equal(p) {
			return true, nil
		}
	}
	return false, nil
}

// PlaceFood picks a random cell not covered by the snake. It samples up to
// MaxPlacementAttempts cells and then chooses among the remaining free cells,
// returning ErrBoardFull when there are none.
func PlaceFood(rng Rand, snake *game.Snake, size int32) (game.Point, error) {
	if snake.Len() >= int(size)*int(size) {
		return game.Point{}, ErrBoardFull
	}

	for i := 0; i < MaxPlacementAttempts; i++ {
		p := RandomPoint(rng, size)
		occupied, err := IsOccupied(p, snake)
		if err != nil {
			return game.Point{}, err
		}
		if !occupied {
			return p, nil
		}
	}

	openPoints := getUnoccupiedPoints(snake, size)
	if len(openPoints) == 0 {
		return game.Point{}, ErrBoardFull
	}
	return openPoints[rng.Int31n(int32(len(openPoints)))], nil
}

func getUnoccupiedPoints(snake *game.Snake, size int32) []game.Point {
	occupied := map[game.Point]struct{}{}
	for _, p := range snake.Points() {
		occupied[p] = struct{}{}
	}

	candidatePoints := make([]game.Point, 0, int(size)*int(size)-len(occupied))
	for row := int32(1); row <= size; row++ {
		for col := int32(1); col <= size; col++ {
			p := game.Point{Row: row, Col: col}
			if _, ok := occupied[p]; !ok {
				candidatePoints = append(candidatePoints, p)
			}
		}
	}
	return candidatePoints
}
