package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSnake_Move(t *testing.T) {
	tests := []struct {
		Direction Direction
		Expected  Point
	}{
		{
			Direction: Up,
			Expected:  Point{Row: 4, Col: 5},
		},
		{
			Direction: Down,
			Expected:  Point{Row: 6, Col: 5},
		},
		{
			Direction: Left,
			Expected:  Point{Row: 5, Col: 4},
		},
		{
			Direction: Right,
			Expected:  Point{Row: 5, Col: 6},
		},
		{
			Direction: "",
			Expected:  Point{Row: 5, Col: 5},
		},
	}

	for _, test := range tests {
		s := NewSnake(Point{Row: 5, Col: 5})
		s.Move(test.Direction)
		require.Equal(t, test.Expected, s.Head().Point, "Direction: %s", test.Direction)
	}
}

func TestSnake_MoveBodyFollowsHead(t *testing.T) {
	s := &Snake{
		Body: []*Segment{
			{Point: Point{Row: 2, Col: 2}},
			{Point: Point{Row: 2, Col: 1}},
			{Point: Point{Row: 1, Col: 1}},
		},
	}

	vacated := s.Move(Down)

	require.Equal(t, Point{Row: 1, Col: 1}, vacated)
	require.Equal(t, []Point{
		{Row: 3, Col: 2},
		{Row: 2, Col: 2},
		{Row: 2, Col: 1},
	}, s.Points())
}

func TestSnake_MoveKeepsHandles(t *testing.T) {
	s := &Snake{
		Body: []*Segment{
			{Point: Point{Row: 2, Col: 2}, Handle: 1},
			{Point: Point{Row: 2, Col: 1}, Handle: 2},
		},
	}
	s.Move(Right)
	require.Equal(t, Handle(1), s.Head().Handle)
	require.Equal(t, Handle(2), s.Tail().Handle)
}

func TestSnake_HeadTailEmpty(t *testing.T) {
	s := &Snake{}
	require.Nil(t, s.Head())
	require.Nil(t, s.Tail())
	require.Equal(t, Point{}, s.Move(Up))

	var nilSnake *Snake
	require.Equal(t, 0, nilSnake.Len())
	require.Empty(t, nilSnake.Points())
}

func TestSnake_Tail(t *testing.T) {
	s := &Snake{
		Body: []*Segment{
			{Point: Point{Row: 5, Col: 5}},
			{Point: Point{Row: 4, Col: 5}},
		},
	}

	require.Equal(t, Point{Row: 4, Col: 5}, s.Tail().Point)
}

func TestFrame_Handles(t *testing.T) {
	f := &Frame{
		Size: 5,
		Snake: &Snake{Body: []*Segment{
			{Point: Point{Row: 1, Col: 1}, Handle: 3},
			{Point: Point{Row: 1, Col: 2}},
		}},
		Food: &Food{Point: Point{Row: 3, Col: 3}, Handle: 7},
	}
	require.Equal(t, []Handle{3, 7}, f.Handles())
	require.Equal(t, 25, f.Cells())
}
