package rules

import (
	"math/rand"
	"testing"

	"github.com/battlesnakeio/snake/game"
	"github.com/stretchr/testify/require"
)

func TestTickIdleDoesNothing(t *testing.T) {
	frame := &game.Frame{
		Size:  5,
		Snake: snakeAt(pt(3, 3)),
		Food:  &game.Food{Point: pt(3, 4)},
	}
	result, err := Tick(frame, &Steering{}, newRand())
	require.NoError(t, err)
	require.False(t, result.Advanced)
	require.Equal(t, int64(0), frame.Turn)
	require.Equal(t, pt(3, 3), frame.Snake.Head().Point)
}

func TestTickInvalidFrame(t *testing.T) {
	_, err := Tick(nil, &Steering{}, newRand())
	require.Error(t, err)

	_, err = Tick(&game.Frame{Size: 5, Snake: &game.Snake{}}, &Steering{}, newRand())
	require.Error(t, err)
}

func TestTickSnakeEats(t *testing.T) {
	frame := &game.Frame{
		Size:  5,
		Snake: snakeAt(pt(3, 3)),
		Food:  &game.Food{Point: pt(3, 4), Handle: 9},
	}

	result, err := Tick(frame, steeringTowards(game.Right), newRand())
	require.NoError(t, err)
	require.True(t, result.Advanced)
	require.True(t, result.Ate)
	require.False(t, result.Over)
	require.Equal(t, int64(1), result.Turn)

	require.Equal(t, []game.Point{pt(3, 4), pt(3, 3)}, frame.Snake.Points())
	require.Equal(t, game.Handle(9), result.Grown.Handle)
	require.Equal(t, frame.Snake.Tail(), result.Grown)

	require.NotNil(t, frame.Food)
	require.Equal(t, game.Handle(0), frame.Food.Handle)
	require.False(t, frame.Food.Equal(pt(3, 4)))
	occupied, err := IsOccupied(frame.Food.Point, frame.Snake)
	require.NoError(t, err)
	require.False(t, occupied)
}

func TestTickBodyFollowsHead(t *testing.T) {
	frame := &game.Frame{
		Size:  10,
		Snake: snakeAt(pt(2, 2), pt(2, 1), pt(1, 1)),
		Food:  &game.Food{Point: pt(9, 9)},
	}

	steering := steeringTowards(game.Right)
	require.Equal(t, SteerAccepted, steering.Request(game.Down))

	result, err := Tick(frame, steering, newRand())
	require.NoError(t, err)
	require.False(t, result.Over)
	require.False(t, result.Ate)
	require.Equal(t, game.Down, steering.Current())
	require.Equal(t, []game.Point{pt(3, 2), pt(2, 2), pt(2, 1)}, frame.Snake.Points())
}

func TestTickWallCollision(t *testing.T) {
	tests := []struct {
		Head      game.Point
		Direction game.Direction
		Expected  game.Point
	}{
		{Head: pt(1, 1), Direction: game.Left, Expected: pt(1, 0)},
		{Head: pt(1, 3), Direction: game.Up, Expected: pt(0, 3)},
		{Head: pt(5, 3), Direction: game.Down, Expected: pt(6, 3)},
		{Head: pt(3, 5), Direction: game.Right, Expected: pt(3, 6)},
	}

	for _, test := range tests {
		frame := &game.Frame{
			Size:  5,
			Snake: snakeAt(test.Head),
			Food:  &game.Food{Point: pt(3, 3)},
		}
		result, err := Tick(frame, steeringTowards(test.Direction), newRand())
		require.NoError(t, err)
		require.True(t, result.Over, "head %s moving %s", test.Head, test.Direction)
		require.Equal(t, DeathCauseWallCollision, result.Cause)
		require.Equal(t, test.Expected, frame.Snake.Head().Point)
	}
}

func TestTickSelfCollision(t *testing.T) {
	frame := &game.Frame{
		Size:  10,
		Snake: snakeAt(pt(2, 2), pt(2, 3), pt(3, 3), pt(3, 2), pt(3, 1)),
		Food:  &game.Food{Point: pt(9, 9)},
	}

	steering := steeringTowards(game.Left)
	require.Equal(t, SteerAccepted, steering.Request(game.Down))

	result, err := Tick(frame, steering, newRand())
	require.NoError(t, err)
	require.True(t, result.Over)
	require.Equal(t, DeathCauseSnakeSelfCollision, result.Cause)
}

func TestTickHeadNotComparedWithOwnOldPosition(t *testing.T) {
	frame := &game.Frame{
		Size:  10,
		Snake: snakeAt(pt(5, 5), pt(5, 6)),
		Food:  &game.Food{Point: pt(9, 9)},
	}
	steering := steeringTowards(game.Left)
	for i := 0; i < 3; i++ {
		result, err := Tick(frame, steering, newRand())
		require.NoError(t, err)
		require.False(t, result.Over)
	}
	require.Equal(t, []game.Point{pt(5, 2), pt(5, 3)}, frame.Snake.Points())
}

func TestTickBoardFull(t *testing.T) {
	frame := &game.Frame{
		Size:  2,
		Snake: snakeAt(pt(1, 2), pt(1, 1), pt(2, 1)),
		Food:  &game.Food{Point: pt(2, 2), Handle: 4},
	}

	result, err := Tick(frame, steeringTowards(game.Down), newRand())
	require.NoError(t, err)
	require.True(t, result.Ate)
	require.True(t, result.Over)
	require.Equal(t, DeathCauseBoardFull, result.Cause)
	require.Nil(t, frame.Food)
	require.Equal(t, 4, frame.Snake.Len())
	require.Equal(t, []game.Point{pt(2, 2), pt(1, 2), pt(1, 1), pt(2, 1)}, frame.Snake.Points())
}

func TestTickLengthGrowsOnlyWhenEating(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	directions := []game.Direction{game.Up, game.Down, game.Left, game.Right}

	for round := 0; round < 20; round++ {
		frame, err := CreateInitialFrame(rng, 8)
		require.NoError(t, err)
		steering := &Steering{}

		for turn := 0; turn < 200; turn++ {
			steering.Request(directions[rng.Intn(len(directions))])

			before := frame.Snake.Len()
			food := frame.Food.Point
			next := frame.Snake.Head().Step(steering.Pending())

			result, err := Tick(frame, steering, rng)
			require.NoError(t, err)

			if next.Equal(food) {
				require.Equal(t, before+1, frame.Snake.Len())
				require.True(t, result.Ate)
			} else {
				require.Equal(t, before, frame.Snake.Len())
				require.False(t, result.Ate)
			}
			if result.Over {
				break
			}

			occupied, err := IsOccupied(frame.Food.Point, frame.Snake)
			require.NoError(t, err)
			require.False(t, occupied)
		}
	}
}
