package render

import termbox "github.com/nsf/termbox-go"

var defaultColors = []termbox.Attribute{
	termbox.ColorGreen,
	termbox.ColorCyan,
	termbox.ColorMagenta,
	termbox.ColorYellow,
	termbox.ColorBlue,
	termbox.ColorRed,
}

// palette hands out snake colours round robin, one per session.
type palette struct {
	colors []termbox.Attribute
	index  int
}

func newPalette(colors []termbox.Attribute) *palette {
	if len(colors) == 0 {
		colors = defaultColors
	}
	return &palette{colors: colors}
}

func (p *palette) next() termbox.Attribute {
	current := p.colors[p.index]
	p.index = (p.index + 1) % len(p.colors)
	return current
}

var foods = []rune{
	'🍒',
	'🍍',
	'🍑',
	'🍇',
	'🍏',
	'🍌',
	'🍫',
	'🍭',
	'🍕',
	'🍩',
	'🍗',
	'🍖',
	'🍬',
	'🍤',
	'🍪',
}

func foodEmoji(n int) rune {
	if n < 0 {
		n = -n
	}
	return foods[n%len(foods)]
}
