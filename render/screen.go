package render

import termbox "github.com/nsf/termbox-go"

// Screen is the cell grid the terminal renderer draws on.
type Screen interface {
	SetCell(x, y int, ch rune, fg, bg termbox.Attribute)
	Clear(fg, bg termbox.Attribute) error
	Flush() error
}

type termboxScreen struct{}

// TermboxScreen draws on the terminal through termbox. termbox.Init must
// have been called.
func TermboxScreen() Screen { return termboxScreen{} }

func (termboxScreen) SetCell(x, y int, ch rune, fg, bg termbox.Attribute) {
	termbox.SetCell(x, y, ch, fg, bg)
}

func (termboxScreen) Clear(fg, bg termbox.Attribute) error { return termbox.Clear(fg, bg) }

func (termboxScreen) Flush() error { return termbox.Flush() }
