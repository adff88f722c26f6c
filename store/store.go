// Package store persists the high score between sessions. Every backend
// implements HighScoreStore; an absent score reads as zero.
package store

import (
	"context"
	"sync"
)

// DefaultKey is the key the high score is stored under when none is given.
const DefaultKey = "highScore"

// HighScoreStore is the interface to the backend store.
type HighScoreStore interface {
	GetHighScore(ctx context.Context) (int, error)
	SetHighScore(ctx context.Context, score int) error
}

// InMemStore returns an in memory implementation of the HighScoreStore
// interface.
func InMemStore() HighScoreStore {
	return &inmem{}
}

type inmem struct {
	score int
	lock  sync.Mutex
}

func (in *inmem) GetHighScore(ctx context.Context) (int, error) {
	in.lock.Lock()
	defer in.lock.Unlock()

	return in.score, nil
}

func (in *inmem) SetHighScore(ctx context.Context, score int) error {
	in.lock.Lock()
	defer in.lock.Unlock()

	in.score = score
	return nil
}
