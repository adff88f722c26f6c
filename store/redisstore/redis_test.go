package redisstore

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/battlesnakeio/snake/store/testsuite"
	"github.com/dlsteuer/miniredis"
	"github.com/stretchr/testify/require"
)

var server *miniredis.Miniredis

func TestMain(m *testing.M) {
	var err error
	server, err = miniredis.Run()
	if err != nil {
		fmt.Println("unable to start miniredis", err)
		os.Exit(1)
	}
	code := m.Run()
	server.Close()
	os.Exit(code)
}

func newTestStore(t *testing.T, key string) *Store {
	s, err := NewStore(fmt.Sprintf("redis://%s", server.Addr()), key)
	require.NoError(t, err)
	return s
}

func TestRedisStore(t *testing.T) {
	s := newTestStore(t, "suite")
	defer s.Close()

	testsuite.Suite(t, s, func() {
		server.FlushAll()
	})
}

func TestKeyIsPrefixed(t *testing.T) {
	s := newTestStore(t, "")
	defer s.Close()

	require.NoError(t, s.SetHighScore(context.Background(), 21))
	v, err := server.Get("snake:highScore")
	require.NoError(t, err)
	require.Equal(t, "21", v)
}

func TestGetHighScoreNotANumber(t *testing.T) {
	s := newTestStore(t, "garbage")
	defer s.Close()

	require.NoError(t, server.Set("snake:garbage", "lots"))
	_, err := s.GetHighScore(context.Background())
	require.Error(t, err)
}

func TestNewStoreBadURL(t *testing.T) {
	_, err := NewStore("not-a-url://", "")
	require.Error(t, err)
}
