package render

import (
	"testing"

	"github.com/battlesnakeio/snake/game"
	termbox "github.com/nsf/termbox-go"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestTranslate(t *testing.T) {
	term := NewTerminal(newFakeScreen(), 10, rate.Inf)
	up := term.layout.buttons[0]

	tests := []struct {
		Event    termbox.Event
		Expected Input
	}{
		{
			Event:    termbox.Event{Type: termbox.EventKey, Key: termbox.KeyArrowUp},
			Expected: Input{Action: ActionKey, Key: game.KeyUp},
		},
		{
			Event:    termbox.Event{Type: termbox.EventKey, Key: termbox.KeyArrowLeft},
			Expected: Input{Action: ActionKey, Key: game.KeyLeft},
		},
		{
			Event:    termbox.Event{Type: termbox.EventKey, Key: termbox.KeySpace},
			Expected: Input{Action: ActionKey, Key: game.KeyPause},
		},
		{
			Event:    termbox.Event{Type: termbox.EventKey, Ch: 'q'},
			Expected: Input{Action: ActionQuit},
		},
		{
			Event:    termbox.Event{Type: termbox.EventKey, Key: termbox.KeyEsc},
			Expected: Input{Action: ActionQuit},
		},
		{
			Event:    termbox.Event{Type: termbox.EventKey, Ch: 'r'},
			Expected: Input{Action: ActionRestart},
		},
		{
			Event:    termbox.Event{Type: termbox.EventKey, Ch: 'x'},
			Expected: Input{Action: ActionKey, Key: "x"},
		},
		{
			Event:    termbox.Event{Type: termbox.EventMouse, Key: termbox.MouseLeft, MouseX: up.x, MouseY: up.y},
			Expected: Input{Action: ActionKey, Key: game.KeyUp},
		},
		{
			Event:    termbox.Event{Type: termbox.EventMouse, Key: termbox.MouseRight, MouseX: up.x, MouseY: up.y},
			Expected: Input{},
		},
		{
			Event:    termbox.Event{Type: termbox.EventMouse, Key: termbox.MouseLeft, MouseX: 0, MouseY: 0},
			Expected: Input{},
		},
		{
			Event:    termbox.Event{Type: termbox.EventResize},
			Expected: Input{Action: ActionRedraw},
		},
	}

	for i, test := range tests {
		require.Equal(t, test.Expected, term.Translate(test.Event), "case %d", i)
	}
}
