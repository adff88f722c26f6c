package rules

import (
	"testing"

	"github.com/battlesnakeio/snake/game"
	"github.com/stretchr/testify/require"
)

func TestIsOccupied(t *testing.T) {
	snake := snakeAt(pt(2, 2), pt(2, 1), pt(1, 1))

	for _, p := range snake.Points() {
		occupied, err := IsOccupied(p, snake)
		require.NoError(t, err)
		require.True(t, occupied, "point %s", p)
	}

	occupied, err := IsOccupied(pt(3, 3), snake)
	require.NoError(t, err)
	require.False(t, occupied)

	occupied, err = IsOccupied(pt(1, 1), nil)
	require.NoError(t, err)
	require.False(t, occupied)
}

func TestIsOccupiedMissingCoordinate(t *testing.T) {
	snake := snakeAt(pt(2, 2))
	for _, p := range []game.Point{{Row: 2}, {Col: 2}, {}} {
		_, err := IsOccupied(p, snake)
		require.Equal(t, ErrMissingCoordinate, err)
	}
}

func TestPlaceFoodNeverOnSnake(t *testing.T) {
	rng := newRand()
	snake := snakeAt(pt(1, 1), pt(1, 2), pt(1, 3), pt(2, 3), pt(3, 3))
	for i := 0; i < 200; i++ {
		p, err := PlaceFood(rng, snake, 3)
		require.NoError(t, err)
		require.False(t, IsOutOfBounds(p, 3))
		occupied, err := IsOccupied(p, snake)
		require.NoError(t, err)
		require.False(t, occupied, "food placed on snake at %s", p)
	}
}

func TestPlaceFoodFallsBackToFreeCells(t *testing.T) {
	// Always draws (1,1), which is taken, so sampling can never succeed.
	rng := &seqRand{values: []int32{0}}
	snake := snakeAt(pt(1, 1), pt(1, 2), pt(2, 2))

	p, err := PlaceFood(rng, snake, 2)
	require.NoError(t, err)
	require.Equal(t, pt(2, 1), p)
}

func TestPlaceFoodBoardFull(t *testing.T) {
	snake := snakeAt(pt(1, 1), pt(1, 2), pt(2, 2), pt(2, 1))
	_, err := PlaceFood(newRand(), snake, 2)
	require.Equal(t, ErrBoardFull, err)
}

func TestGetUnoccupiedPoints(t *testing.T) {
	snake := snakeAt(pt(1, 1), pt(2, 2))
	open := getUnoccupiedPoints(snake, 2)
	require.Equal(t, []game.Point{pt(1, 2), pt(2, 1)}, open)
}
