// Package render draws a session on the terminal with termbox and turns
// keyboard and mouse events into game input.
package render

import (
	"fmt"

	"github.com/battlesnakeio/snake/game"
	"github.com/battlesnakeio/snake/rules"
	"github.com/battlesnakeio/snake/session"
	termbox "github.com/nsf/termbox-go"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const (
	defaultColor = termbox.ColorDefault
	bgColor      = termbox.ColorDefault
	headColor    = termbox.ColorWhite
)

type entity struct {
	class  session.Class
	point  game.Point
	placed bool
}

// Terminal is a session.Renderer that keeps the entities it was handed and
// redraws the whole screen on every update.
type Terminal struct {
	screen   Screen
	layout   layout
	palette  *palette
	limiter  *rate.Limiter
	entities map[game.Handle]*entity
	lastID   game.Handle

	snakeColor termbox.Attribute
	score      session.ScoreUpdate
	status     rules.GameStatus
	outcome    *session.Outcome
}

// NewTerminal creates a renderer for a board of size cells per side.
// Redraws not caused by the game, such as a terminal resize, are limited to
// redrawRate per second.
func NewTerminal(screen Screen, size int32, redrawRate rate.Limit) *Terminal {
	return &Terminal{
		screen:   screen,
		layout:   newLayout(size),
		palette:  newPalette(nil),
		limiter:  rate.NewLimiter(redrawRate, 1),
		entities: map[game.Handle]*entity{},
	}
}

// ButtonAt returns the input key of the on-screen button at x,y.
func (t *Terminal) ButtonAt(x, y int) (string, bool) {
	return t.layout.buttonAt(x, y)
}

// Create registers an entity. A new head means a new session, which gets
// the next snake colour.
func (t *Terminal) Create(class session.Class) game.Handle {
	t.lastID++
	t.entities[t.lastID] = &entity{class: class}
	if class == session.ClassHead {
		t.snakeColor = t.palette.next()
		t.outcome = nil
	}
	return t.lastID
}

// Place moves entities and redraws.
func (t *Terminal) Place(placements []session.Placement) {
	for _, p := range placements {
		e, ok := t.entities[p.Handle]
		if !ok {
			continue
		}
		e.point = p.Point
		e.placed = true
	}
	t.draw()
}

// SetClass changes how an entity is drawn.
func (t *Terminal) SetClass(h game.Handle, class session.Class) {
	if e, ok := t.entities[h]; ok {
		e.class = class
	}
}

// Remove forgets an entity.
func (t *Terminal) Remove(h game.Handle) {
	delete(t.entities, h)
}

// ShowScore updates the score line.
func (t *Terminal) ShowScore(u session.ScoreUpdate) {
	t.score = u
	t.draw()
}

// ShowStatus updates the status shown in the title.
func (t *Terminal) ShowStatus(s rules.GameStatus) {
	t.status = s
	t.draw()
}

// ShowGameOver shows the game over banner until the next session.
func (t *Terminal) ShowGameOver(o session.Outcome) {
	t.outcome = &o
	t.draw()
}

// Redraw repaints the screen unless redraws are coming in too fast.
func (t *Terminal) Redraw() {
	if !t.limiter.Allow() {
		return
	}
	t.draw()
}

func (t *Terminal) draw() {
	if err := t.render(); err != nil {
		log.WithError(err).Error("unable to draw")
	}
}

func (t *Terminal) render() error {
	if err := t.screen.Clear(defaultColor, bgColor); err != nil {
		return err
	}

	t.renderTitle()
	t.renderBoard()
	// Food goes first so segments cover it.
	for h, e := range t.entities {
		if e.placed && e.class == session.ClassFood {
			t.renderFood(h, e.point)
		}
	}
	for _, e := range t.entities {
		if e.placed && e.class != session.ClassFood {
			t.renderSegment(e)
		}
	}
	t.renderPad()
	if t.outcome != nil {
		t.renderGameOver()
	}

	return t.screen.Flush()
}

func (t *Terminal) renderTitle() {
	title := "Snake!"
	switch t.status {
	case rules.GameStatusNotStarted:
		title += " - press an arrow key to start"
	case rules.GameStatusPaused:
		title += " - paused"
	case rules.GameStatusOver:
		title += " - game over"
	}
	t.print(boardLeft, 0, defaultColor, defaultColor, title)
	t.print(boardLeft, 1, defaultColor, defaultColor,
		fmt.Sprintf("Score: %d   High score: %d", t.score.Score, t.score.HighScore))
}

func (t *Terminal) renderSegment(e *entity) {
	x, y, ok := t.layout.cell(e.point)
	if !ok {
		return
	}
	color := t.snakeColor
	if e.class == session.ClassHead {
		color = headColor
	}
	t.screen.SetCell(x, y, ' ', color, color)
	t.screen.SetCell(x+1, y, ' ', color, color)
}

func (t *Terminal) renderFood(h game.Handle, p game.Point) {
	x, y, ok := t.layout.cell(p)
	if !ok {
		return
	}
	t.screen.SetCell(x, y, foodEmoji(int(h)), defaultColor, bgColor)
}

func (t *Terminal) renderPad() {
	for _, b := range t.layout.buttons {
		t.print(b.x, b.y, defaultColor, defaultColor, b.label)
	}
	t.print(boardLeft, t.layout.bottom()+4, defaultColor, defaultColor, "space: pause   r: restart   q: quit")
}

func (t *Terminal) renderGameOver() {
	msg := fmt.Sprintf(" Game Over (%s) ", t.outcome.Cause)
	if t.outcome.Won() {
		msg = " You filled the board! "
	}
	detail := fmt.Sprintf(" Score %d ", t.outcome.Score)
	if t.outcome.NewHigh {
		detail = fmt.Sprintf(" New high score %d! ", t.outcome.Score)
	}

	midY := boardTop + t.layout.size/2
	for i, line := range []string{msg, detail, " r: restart  q: quit "} {
		x := boardLeft + 1 + (t.layout.right()-boardLeft-1-textWidth(line))/2
		if x < boardLeft+1 {
			x = boardLeft + 1
		}
		t.print(x, midY+i, termbox.ColorBlack, termbox.ColorWhite, line)
	}
}
