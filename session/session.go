// Package session drives a single game: it owns the frame, turns input into
// steering, runs the tick on a schedule and keeps the score.
package session

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/battlesnakeio/snake/game"
	"github.com/battlesnakeio/snake/rules"
	"github.com/battlesnakeio/snake/store"
	uuid "github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"
)

// StoreTimeout bounds every call the session makes to the high score store.
var StoreTimeout = 2 * time.Second

// Config is the startup configuration of a session.
type Config struct {
	GridSize     int32
	TickInterval time.Duration
}

// Validate checks the config can produce a playable board.
func (c Config) Validate() error {
	if c.GridSize < rules.MinGridSize {
		return fmt.Errorf("session: grid size %d is below the minimum of %d", c.GridSize, rules.MinGridSize)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("session: tick interval must be positive, got %s", c.TickInterval)
	}
	return nil
}

// Deps are the collaborators a session talks to. A nil Renderer draws
// nothing, a nil Store keeps the high score in memory and a nil Rand is
// seeded from the clock. Scheduler is required.
type Deps struct {
	Renderer  Renderer
	Store     store.HighScoreStore
	Scheduler Scheduler
	Rand      rules.Rand
}

// ScoreEvent is a single food consumption.
type ScoreEvent struct {
	Turn int64
	Food game.Point
}

// ScoreUpdate is the score after a change.
type ScoreUpdate struct {
	Score     int
	HighScore int
	NewHigh   bool
}

// Session is one game from the first direction to game over. It is not safe
// for concurrent use; every call must come from the same goroutine, normally
// a Loop.
type Session struct {
	ID string

	ctx       context.Context
	cfg       Config
	renderer  Renderer
	store     store.HighScoreStore
	scheduler Scheduler
	rng       rules.Rand

	frame     *game.Frame
	steering  rules.Steering
	status    rules.GameStatus
	score     int
	highScore int
	timer     TimerHandle
	outcome   *Outcome

	log *log.Entry
}

// New creates a session waiting for its first direction. The high score is
// loaded from the store once, here; ctx bounds the store calls the session
// makes for its whole life.
func New(ctx context.Context, cfg Config, deps Deps) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if deps.Scheduler == nil {
		return nil, fmt.Errorf("session: a scheduler is required")
	}
	if deps.Renderer == nil {
		deps.Renderer = nopRenderer{}
	}
	if deps.Store == nil {
		deps.Store = store.InMemStore()
	}
	if deps.Rand == nil {
		deps.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	s := &Session{
		ctx:       ctx,
		cfg:       cfg,
		renderer:  deps.Renderer,
		store:     deps.Store,
		scheduler: deps.Scheduler,
		rng:       deps.Rand,
	}
	s.highScore = s.loadHighScore()
	if err := s.setup(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) setup() error {
	frame, err := rules.CreateInitialFrame(s.rng, s.cfg.GridSize)
	if err != nil {
		return err
	}

	s.ID = uuid.NewV4().String()
	s.log = log.WithField("SessionID", s.ID)
	s.frame = frame
	s.steering.Reset()
	s.status = rules.GameStatusNotStarted
	s.score = 0
	s.timer = 0
	s.outcome = nil

	frame.Snake.Head().Handle = s.renderer.Create(ClassHead)
	frame.Food.Handle = s.renderer.Create(ClassFood)
	s.draw()
	s.renderer.ShowScore(s.Score())
	s.renderer.ShowStatus(s.status)

	s.log.WithFields(log.Fields{
		"GridSize": s.cfg.GridSize,
		"Head":     frame.Snake.Head().Point,
		"Food":     frame.Food.Point,
	}).Info("session created")
	return nil
}

// Reset throws the current game away and sets up a fresh one with a new
// snake and food. The high score is kept.
func (s *Session) Reset() error {
	s.stopTimer()
	for _, h := range s.frame.Handles() {
		s.renderer.Remove(h)
	}
	return s.setup()
}

// Status returns the lifecycle state.
func (s *Session) Status() rules.GameStatus {
	return s.status
}

// Score returns the current score and high score.
func (s *Session) Score() ScoreUpdate {
	return ScoreUpdate{Score: s.score, HighScore: s.highScore}
}

// Frame returns the live game state. Callers must not modify it.
func (s *Session) Frame() *game.Frame {
	return s.frame
}

// Direction returns the committed direction, empty before the first input.
func (s *Session) Direction() game.Direction {
	return s.steering.Current()
}

// Outcome returns how the session ended, nil while it is still going.
func (s *Session) Outcome() *Outcome {
	return s.outcome
}

// HandleInput routes a raw key to pause or steering. Unknown keys are
// ignored.
func (s *Session) HandleInput(key string) {
	if game.IsPauseInput(key) {
		s.HandlePauseInput()
		return
	}
	s.HandleDirectionInput(key)
}

// HandleDirectionInput steers the snake. The first accepted direction starts
// the session. It reports whether the direction was accepted.
func (s *Session) HandleDirectionInput(key string) bool {
	if s.status.IsOver() {
		return false
	}
	d, ok := game.DirectionFromInput(key)
	if !ok {
		return false
	}

	switch s.steering.Request(d) {
	case rules.SteerStarted:
		s.Start()
		return true
	case rules.SteerAccepted:
		return true
	}
	s.log.WithFields(log.Fields{
		"Direction": d,
		"Current":   s.steering.Current(),
	}).Debug("reversal rejected")
	return false
}

// HandlePauseInput toggles pause.
func (s *Session) HandlePauseInput() {
	s.TogglePause()
}

// Start begins ticking. It does nothing unless the session has not started.
func (s *Session) Start() {
	if s.status != rules.GameStatusNotStarted {
		return
	}
	s.status = rules.GameStatusRunning
	s.timer = s.scheduler.Schedule(s.Tick, s.cfg.TickInterval)
	s.renderer.ShowStatus(s.status)
	s.log.WithField("Interval", s.cfg.TickInterval).Info("session started")
}

// TogglePause flips between running and paused. It has no effect before the
// session started or after it ended.
func (s *Session) TogglePause() {
	switch s.status {
	case rules.GameStatusRunning:
		s.status = rules.GameStatusPaused
	case rules.GameStatusPaused:
		s.status = rules.GameStatusRunning
	default:
		return
	}
	s.renderer.ShowStatus(s.status)
	s.log.WithField("Status", s.status).Debug("pause toggled")
}

// End finishes a running or paused session. The schedule is cancelled, so no
// tick runs after this returns.
func (s *Session) End(cause string) {
	if s.status != rules.GameStatusRunning && s.status != rules.GameStatusPaused {
		return
	}
	s.stopTimer()
	s.status = rules.GameStatusOver
	s.outcome = &Outcome{
		Cause:     cause,
		Turn:      s.frame.Turn,
		Score:     s.score,
		HighScore: s.highScore,
		NewHigh:   s.score > 0 && s.score == s.highScore,
	}
	gamesOver.WithLabelValues(cause).Inc()

	s.renderer.ShowStatus(s.status)
	s.renderer.ShowGameOver(*s.outcome)
	s.log.WithFields(log.Fields{
		"Turn":  s.frame.Turn,
		"Cause": cause,
		"Score": s.score,
	}).Info("game over")
}

// Tick advances the game one step. It is the scheduled callback and does
// nothing unless the session is running.
func (s *Session) Tick() {
	if s.status != rules.GameStatusRunning {
		return
	}

	result, err := rules.Tick(s.frame, &s.steering, s.rng)
	if err != nil {
		s.log.WithError(err).WithField("Turn", s.frame.Turn).Error("tick failed")
		return
	}
	if !result.Advanced {
		return
	}
	ticksTotal.Inc()

	if result.Over && !result.Ate {
		s.End(result.Cause)
		return
	}

	if result.Ate {
		s.eat(result)
	}
	s.draw()

	if result.Over {
		s.End(result.Cause)
	}
}

// eat turns the consumed food marker into the new tail segment and registers
// the replacement food.
func (s *Session) eat(result *rules.TickResult) {
	foodEaten.Inc()

	if result.Grown.Handle == 0 {
		result.Grown.Handle = s.renderer.Create(ClassBody)
	} else {
		s.renderer.SetClass(result.Grown.Handle, ClassBody)
	}
	if s.frame.Food != nil {
		s.frame.Food.Handle = s.renderer.Create(ClassFood)
	}

	update := s.RecordScore(ScoreEvent{Turn: result.Turn, Food: s.frame.Snake.Head().Point})
	s.renderer.ShowScore(update)
	if update.NewHigh {
		s.persistHighScore(update.HighScore)
	}
}

// RecordScore applies a food event and returns the new score. The caller is
// responsible for showing and persisting it.
func (s *Session) RecordScore(ev ScoreEvent) ScoreUpdate {
	s.score++
	update := ScoreUpdate{Score: s.score, HighScore: s.highScore}
	if s.score > s.highScore {
		s.highScore = s.score
		update.HighScore = s.score
		update.NewHigh = true
	}
	s.log.WithFields(log.Fields{
		"Turn":  ev.Turn,
		"Food":  ev.Food,
		"Score": update.Score,
	}).Debug("score recorded")
	return update
}

func (s *Session) draw() {
	placements := make([]Placement, 0, s.frame.Snake.Len()+1)
	for _, seg := range s.frame.Snake.Body {
		placements = append(placements, Placement{Handle: seg.Handle, Point: seg.Point})
	}
	if s.frame.Food != nil {
		placements = append(placements, Placement{Handle: s.frame.Food.Handle, Point: s.frame.Food.Point})
	}
	s.renderer.Place(placements)
}

func (s *Session) stopTimer() {
	if s.timer == 0 {
		return
	}
	s.scheduler.Cancel(s.timer)
	s.timer = 0
}

func (s *Session) loadHighScore() int {
	ctx, cancel := context.WithTimeout(s.ctx, StoreTimeout)
	defer cancel()

	score, err := s.store.GetHighScore(ctx)
	if err != nil {
		log.WithError(err).Warn("unable to load high score, starting from zero")
		return 0
	}
	if score < 0 {
		return 0
	}
	return score
}

func (s *Session) persistHighScore(score int) {
	ctx, cancel := context.WithTimeout(s.ctx, StoreTimeout)
	defer cancel()

	if err := s.store.SetHighScore(ctx, score); err != nil {
		s.log.WithError(err).WithField("HighScore", score).Error("unable to persist high score")
	}
}
