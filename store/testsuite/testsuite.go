// Package testsuite runs the behaviour every HighScoreStore must share.
package testsuite

import (
	"context"
	"sync"
	"testing"

	"github.com/battlesnakeio/snake/store"
	"github.com/stretchr/testify/require"
)

func testStoreEmpty(t *testing.T, s store.HighScoreStore) {
	score, err := s.GetHighScore(context.Background())
	require.NoError(t, err)
	require.Equal(t, 0, score)
}

func testStoreSetGet(t *testing.T, s store.HighScoreStore) {
	ctx := context.Background()

	require.NoError(t, s.SetHighScore(ctx, 3))
	score, err := s.GetHighScore(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, score)

	// Later writes win.
	require.NoError(t, s.SetHighScore(ctx, 12))
	score, err = s.GetHighScore(ctx)
	require.NoError(t, err)
	require.Equal(t, 12, score)
}

func testStoreReset(t *testing.T, s store.HighScoreStore) {
	ctx := context.Background()

	require.NoError(t, s.SetHighScore(ctx, 8))
	require.NoError(t, s.SetHighScore(ctx, 0))
	score, err := s.GetHighScore(ctx)
	require.NoError(t, err)
	require.Equal(t, 0, score)
}

func testStoreConcurrentWrites(t *testing.T, s store.HighScoreStore) {
	ctx := context.Background()

	wg := sync.WaitGroup{}
	for i := 1; i <= 10; i++ {
		wg.Add(1)
		go func(score int) {
			defer wg.Done()
			require.NoError(t, s.SetHighScore(ctx, score))
		}(i)
	}
	wg.Wait()

	score, err := s.GetHighScore(ctx)
	require.NoError(t, err)
	require.True(t, score >= 1 && score <= 10, "score %d", score)
}

// Suite runs the store test suite, reset is called before each test so the
// store starts empty.
func Suite(t *testing.T, s store.HighScoreStore, reset func()) {
	tests := []struct {
		name string
		f    func(*testing.T, store.HighScoreStore)
	}{
		{"testStoreEmpty", testStoreEmpty},
		{"testStoreSetGet", testStoreSetGet},
		{"testStoreReset", testStoreReset},
		{"testStoreConcurrentWrites", testStoreConcurrentWrites},
	}
	for _, test := range tests {
		reset()
		t.Run(test.name, func(t *testing.T) { test.f(t, s) })
	}
}
