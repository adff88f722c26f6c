package render

import "github.com/battlesnakeio/snake/game"

const (
	boardLeft = 1
	boardTop  = 3
	// cellWidth is how many terminal columns one board cell spans.
	cellWidth = 2
)

// layout maps board cells to terminal coordinates for a board of size
// cells per side.
type layout struct {
	size    int
	buttons []button
}

type button struct {
	label string
	key   string
	x, y  int
	width int
}

func newLayout(size int32) layout {
	l := layout{size: int(size)}

	// Direction pad under the board, the terminal counterpart of the
	// on-screen arrow buttons.
	padTop := l.bottom() + 2
	padLeft := boardLeft
	l.buttons = []button{
		{label: "[ ↑ ]", key: game.KeyUp, x: padLeft + 5, y: padTop, width: 5},
		{label: "[ ← ]", key: game.KeyLeft, x: padLeft, y: padTop + 1, width: 5},
		{label: "[ ↓ ]", key: game.KeyDown, x: padLeft + 5, y: padTop + 1, width: 5},
		{label: "[ → ]", key: game.KeyRight, x: padLeft + 10, y: padTop + 1, width: 5},
		{label: "[pause]", key: game.KeyPause, x: padLeft + 17, y: padTop + 1, width: 7},
	}
	return l
}

// cell returns the terminal column and row of the left half of a board cell.
func (l layout) cell(p game.Point) (int, int, bool) {
	if p.Row < 1 || p.Col < 1 || int(p.Row) > l.size || int(p.Col) > l.size {
		return 0, 0, false
	}
	x := boardLeft + 1 + (int(p.Col)-1)*cellWidth
	y := boardTop + int(p.Row)
	return x, y, true
}

// right is the column of the right border.
func (l layout) right() int {
	return boardLeft + 1 + l.size*cellWidth
}

// bottom is the row of the bottom border.
func (l layout) bottom() int {
	return boardTop + l.size + 1
}

// buttonAt returns the key of the direction pad button under x,y.
func (l layout) buttonAt(x, y int) (string, bool) {
	for _, b := range l.buttons {
		if y == b.y && x >= b.x && x < b.x+b.width {
			return b.key, true
		}
	}
	return "", false
}
