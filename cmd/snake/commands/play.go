package commands

import (
	"context"

	"github.com/battlesnakeio/snake/render"
	"github.com/battlesnakeio/snake/session"
	"github.com/battlesnakeio/snake/store"
	termbox "github.com/nsf/termbox-go"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// loopBacklog is how many input events may wait for the game loop.
const loopBacklog = 64

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "plays a game in the terminal, arrow keys steer and space pauses",
	RunE: func(c *cobra.Command, args []string) error {
		hs, err := openStore(cfg.Backend, cfg.BackendArgs, cfg.HighScoreKey)
		if err != nil {
			return err
		}
		defer closeStore(hs)

		if err := termbox.Init(); err != nil {
			return errors.Wrap(err, "unable to start the terminal")
		}
		defer termbox.Close()
		termbox.SetInputMode(termbox.InputEsc | termbox.InputMouse)

		return play(hs)
	},
}

func play(hs store.HighScoreStore) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	term := render.NewTerminal(render.TermboxScreen(), int32(cfg.GridSize), cfg.RedrawRate)
	loop := session.NewLoop(loopBacklog)
	s, err := session.New(ctx, session.Config{
		GridSize:     int32(cfg.GridSize),
		TickInterval: cfg.TickInterval,
	}, session.Deps{
		Renderer:  term,
		Store:     hs,
		Scheduler: loop,
	})
	if err != nil {
		return err
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		loop.Run(ctx) // nolint: errcheck
	}()

	for in := range term.Inputs(ctx) {
		dispatch(loop, term, s, in, cancel)
	}
	cancel()
	<-done

	log.WithField("SessionID", s.ID).Info("player quit")
	return nil
}

type poster interface {
	Post(fn func()) bool
}

type redrawer interface {
	Redraw()
}

// dispatch hands one input to the game loop. Restart only applies once the
// game is over.
func dispatch(loop poster, screen redrawer, s *session.Session, in render.Input, quit func()) {
	switch in.Action {
	case render.ActionQuit:
		quit()
	case render.ActionKey:
		key := in.Key
		loop.Post(func() { s.HandleInput(key) })
	case render.ActionRestart:
		loop.Post(func() {
			if !s.Status().IsOver() {
				return
			}
			if err := s.Reset(); err != nil {
				log.WithError(err).Error("unable to restart")
			}
		})
	case render.ActionRedraw:
		loop.Post(screen.Redraw)
	}
}
