package render

import (
	"context"

	"github.com/battlesnakeio/snake/game"
	termbox "github.com/nsf/termbox-go"
)

// Action is what an input event asks the front end to do.
type Action int

const (
	// ActionNone is an event the game does not care about.
	ActionNone Action = iota
	// ActionKey forwards Input.Key to the session.
	ActionKey
	// ActionRestart resets a finished session.
	ActionRestart
	// ActionRedraw repaints the screen.
	ActionRedraw
	// ActionQuit leaves the game.
	ActionQuit
)

// Input is one translated terminal event.
type Input struct {
	Action Action
	Key    string
}

var arrowKeys = map[termbox.Key]string{
	termbox.KeyArrowUp:    game.KeyUp,
	termbox.KeyArrowDown:  game.KeyDown,
	termbox.KeyArrowLeft:  game.KeyLeft,
	termbox.KeyArrowRight: game.KeyRight,
	termbox.KeySpace:      game.KeyPause,
}

// Translate turns a termbox event into game input. Clicks on the direction
// pad become the same keys as the arrow keys.
func (t *Terminal) Translate(ev termbox.Event) Input {
	switch ev.Type {
	case termbox.EventKey:
		if key, ok := arrowKeys[ev.Key]; ok {
			return Input{Action: ActionKey, Key: key}
		}
		switch {
		case ev.Key == termbox.KeyEsc, ev.Key == termbox.KeyCtrlC, ev.Ch == 'q':
			return Input{Action: ActionQuit}
		case ev.Ch == 'r':
			return Input{Action: ActionRestart}
		case ev.Ch == ' ':
			return Input{Action: ActionKey, Key: game.KeyPause}
		case ev.Ch != 0:
			return Input{Action: ActionKey, Key: string(ev.Ch)}
		}
	case termbox.EventMouse:
		if ev.Key != termbox.MouseLeft {
			return Input{}
		}
		if key, ok := t.ButtonAt(ev.MouseX, ev.MouseY); ok {
			return Input{Action: ActionKey, Key: key}
		}
	case termbox.EventResize:
		return Input{Action: ActionRedraw}
	case termbox.EventInterrupt:
		return Input{Action: ActionQuit}
	}
	return Input{}
}

// Inputs polls termbox for events until ctx is done or the player quits.
// The channel is closed afterwards.
func (t *Terminal) Inputs(ctx context.Context) <-chan Input {
	out := make(chan Input)
	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			termbox.Interrupt()
		case <-done:
		}
	}()
	go func() {
		defer close(out)
		defer close(done)
		for {
			in := t.Translate(termbox.PollEvent())
			if in.Action == ActionNone {
				continue
			}
			select {
			case out <- in:
			case <-ctx.Done():
				return
			}
			if in.Action == ActionQuit {
				return
			}
		}
	}()
	return out
}
