package session

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
)

// TimerHandle identifies a scheduled callback. The zero TimerHandle is never
// issued.
type TimerHandle uint64

// Scheduler runs a callback periodically until cancelled.
type Scheduler interface {
	Schedule(fn func(), period time.Duration) TimerHandle
	Cancel(TimerHandle)
}

// Loop is the single execution context of a game. Input handlers and
// scheduled callbacks are queued onto it and run one at a time on the
// goroutine calling Run, so game state needs no locking.
//
// Schedule and Cancel must be called from inside the loop (from a posted
// function or a callback).
type Loop struct {
	events  chan func()
	timers  map[TimerHandle]*loopTimer
	lastID  TimerHandle
	stopped chan struct{}
}

type loopTimer struct {
	fn     func()
	ticker *time.Ticker
	done   chan struct{}
}

// NewLoop creates a loop with room for backlog queued events.
func NewLoop(backlog int) *Loop {
	return &Loop{
		events:  make(chan func(), backlog),
		timers:  map[TimerHandle]*loopTimer{},
		stopped: make(chan struct{}),
	}
}

// Post queues fn to run on the loop. It returns false once the loop stopped.
func (l *Loop) Post(fn func()) bool {
	select {
	case <-l.stopped:
		return false
	default:
	}
	select {
	case l.events <- fn:
		return true
	case <-l.stopped:
		return false
	}
}

// Run executes queued events until ctx is done, then stops every timer.
func (l *Loop) Run(ctx context.Context) error {
	defer func() {
		for id := range l.timers {
			l.Cancel(id)
		}
		close(l.stopped)
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-l.events:
			fn()
		}
	}
}

// Schedule starts a ticker whose ticks are posted to the loop.
func (l *Loop) Schedule(fn func(), period time.Duration) TimerHandle {
	l.lastID++
	id := l.lastID
	t := &loopTimer{
		fn:     fn,
		ticker: time.NewTicker(period),
		done:   make(chan struct{}),
	}
	l.timers[id] = t

	go func() {
		for {
			select {
			case <-t.ticker.C:
				l.Post(func() { l.fire(id) })
			case <-t.done:
				return
			}
		}
	}()

	log.WithFields(log.Fields{
		"Timer":  id,
		"Period": period,
	}).Debug("timer scheduled")
	return id
}

// fire runs the callback if the timer is still live. Ticks queued before a
// Cancel are dropped here.
func (l *Loop) fire(id TimerHandle) {
	if t, ok := l.timers[id]; ok {
		t.fn()
	}
}

// Cancel stops the timer. No callback of a cancelled timer runs afterwards.
func (l *Loop) Cancel(id TimerHandle) {
	t, ok := l.timers[id]
	if !ok {
		return
	}
	t.ticker.Stop()
	close(t.done)
	delete(l.timers, id)
	log.WithField("Timer", id).Debug("timer cancelled")
}

// ManualScheduler is a Scheduler driven by Step, for deterministic tests and
// headless runs.
type ManualScheduler struct {
	lastID TimerHandle
	order  []TimerHandle
	timers map[TimerHandle]func()
}

// NewManualScheduler returns an empty ManualScheduler.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{timers: map[TimerHandle]func(){}}
}

// Schedule registers fn, the period is ignored.
func (m *ManualScheduler) Schedule(fn func(), period time.Duration) TimerHandle {
	m.lastID++
	m.timers[m.lastID] = fn
	m.order = append(m.order, m.lastID)
	return m.lastID
}

// Cancel removes the timer.
func (m *ManualScheduler) Cancel(id TimerHandle) {
	delete(m.timers, id)
}

// Active returns the number of live timers.
func (m *ManualScheduler) Active() int {
	return len(m.timers)
}

// Step fires every live timer once, in the order they were scheduled. A
// timer cancelled by an earlier callback in the same step does not fire.
func (m *ManualScheduler) Step() {
	for _, id := range m.order {
		if fn, ok := m.timers[id]; ok {
			fn()
		}
	}
}
