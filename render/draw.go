package render

import (
	"github.com/mattn/go-runewidth"
	termbox "github.com/nsf/termbox-go"
)

func (t *Terminal) renderBoard() {
	var (
		top    = boardTop
		bottom = t.layout.bottom()
		left   = boardLeft
		right  = t.layout.right()
	)

	for i := top + 1; i < bottom; i++ {
		t.screen.SetCell(left, i, '│', defaultColor, bgColor)
		t.screen.SetCell(right, i, '│', defaultColor, bgColor)
	}

	t.screen.SetCell(left, top, '┌', defaultColor, bgColor)
	t.screen.SetCell(left, bottom, '└', defaultColor, bgColor)
	t.screen.SetCell(right, top, '┐', defaultColor, bgColor)
	t.screen.SetCell(right, bottom, '┘', defaultColor, bgColor)

	t.fill(left+1, top, right-left-1, 1, termbox.Cell{Ch: '─'})
	t.fill(left+1, bottom, right-left-1, 1, termbox.Cell{Ch: '─'})
}

func (t *Terminal) fill(x, y, w, h int, cell termbox.Cell) {
	for ly := 0; ly < h; ly++ {
		for lx := 0; lx < w; lx++ {
			t.screen.SetCell(x+lx, y+ly, cell.Ch, cell.Fg, cell.Bg)
		}
	}
}

func (t *Terminal) print(x, y int, fg, bg termbox.Attribute, msg string) {
	for _, c := range msg {
		t.screen.SetCell(x, y, c, fg, bg)
		x += runewidth.RuneWidth(c)
	}
}

func textWidth(msg string) int {
	return runewidth.StringWidth(msg)
}
