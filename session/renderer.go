package session

import (
	"github.com/battlesnakeio/snake/game"
	"github.com/battlesnakeio/snake/rules"
)

// Class is the visual category of a drawable entity.
type Class string

// Entity classes.
const (
	ClassHead Class = "head"
	ClassBody Class = "body"
	ClassFood Class = "food"
)

// Placement puts the entity behind Handle on a board cell.
type Placement struct {
	Handle game.Handle
	Point  game.Point
}

// Renderer draws the game. It only receives updates; the session never reads
// layout state back from it.
type Renderer interface {
	// Create registers a new entity and returns its handle.
	Create(class Class) game.Handle
	Place(placements []Placement)
	SetClass(h game.Handle, class Class)
	Remove(h game.Handle)
	ShowScore(ScoreUpdate)
	ShowStatus(rules.GameStatus)
	ShowGameOver(Outcome)
}

// Outcome is what the player is told when a session ends.
type Outcome struct {
	Cause     string
	Turn      int64
	Score     int
	HighScore int
	NewHigh   bool
}

// Won reports whether the snake filled the board.
func (o Outcome) Won() bool {
	return o.Cause == rules.DeathCauseBoardFull
}

type nopRenderer struct{}

func (nopRenderer) Create(Class) game.Handle { return 0 }
func (nopRenderer) Place([]Placement) {}
func (nopRenderer) SetClass(game.Handle, Class) {}
func (nopRenderer) Remove(game.Handle) {}
func (nopRenderer) ShowScore(ScoreUpdate) {}
func (nopRenderer) ShowStatus(rules.GameStatus) {}
func (nopRenderer) ShowGameOver(Outcome) {}
