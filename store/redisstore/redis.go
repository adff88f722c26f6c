package redisstore

import (
	"context"

	"github.com/battlesnakeio/snake/store"
	"github.com/go-redis/redis"
	"github.com/pkg/errors"
)

const keyPrefix = "snake:"

// Store keeps the high score in a single redis string key.
type Store struct {
	client *redis.Client
	key    string
}

// NewStore will create a new instance of an underlying redis client, so it should not be re-created across "threads"
// - connectURL see: github.com/go-redis/redis/options.go for URL specifics
// The underlying redis client will be immediately tested for connectivity, so don't call this until you know redis can connect.
// Returns a new instance OR an error if unable (meaning an issue connecting to your redis URL)
func NewStore(connectURL, key string) (*Store, error) {
	o, err := redis.ParseURL(connectURL)
	if err != nil {
		return nil, errors.Wrap(err, "unable to parse redis URL")
	}

	client := redis.NewClient(o)

	// Validate it's connected
	err = client.Ping().Err()
	if err != nil {
		return nil, errors.Wrap(err, "unable to connect")
	}

	if key == "" {
		key = store.DefaultKey
	}
	return &Store{client: client, key: keyPrefix + key}, nil
}

// GetHighScore reads the stored score, a missing key reads as zero.
func (rs *Store) GetHighScore(ctx context.Context) (int, error) {
	score, err := rs.client.Get(rs.key).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, errors.Wrap(err, "unable to get high score")
	}
	return int(score), nil
}

// SetHighScore overwrites the stored score.
func (rs *Store) SetHighScore(ctx context.Context, score int) error {
	err := rs.client.Set(rs.key, score, 0).Err()
	return errors.Wrap(err, "unable to set high score")
}

// Close closes the underlying redis client.
func (rs *Store) Close() error {
	return rs.client.Close()
}
