package sqlstore

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/lib/pq" // Import pq driver.
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/battlesnakeio/snake/store"
)

const migrations = `
CREATE TABLE IF NOT EXISTS high_scores (
	key VARCHAR(255) PRIMARY KEY,
	score INTEGER NOT NULL,
	updated TIMESTAMP NOT NULL
);
CREATE TABLE IF NOT EXISTS high_score_history (
	key VARCHAR(255) NOT NULL,
	score INTEGER NOT NULL,
	recorded TIMESTAMP NOT NULL
);
`

// NewSQLStore returns a new store using a postgres database.
func NewSQLStore(url, key string) (*Store, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	db.SetMaxOpenConns(2)
	db.SetMaxIdleConns(1)

	if err = db.PingContext(ctx); err != nil {
		return nil, errors.Wrap(err, "unable to connect")
	}

	_, err = db.ExecContext(ctx, migrations)
	if err != nil {
		return nil, errors.Wrap(err, "unable to migrate")
	}

	if key == "" {
		key = store.DefaultKey
	}
	return &Store{db: db, key: key}, nil
}

// Store represents an SQL store.
type Store struct {
	db  *sql.DB
	key string
}

// transact is a transaction wrapper, helps avoid failed to close connections.
func (s *Store) transact(
	ctx context.Context, txFunc func(*sql.Tx) error) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return
	}
	defer func() {
		if p := recover(); p != nil {
			if rErr := tx.Rollback(); rErr != nil {
				log.WithError(rErr).Error("rollback failed")
			}
			panic(p) // re-throw panic after Rollback
		} else if err != nil {
			// err is non-nil; don't change it
			if rErr := tx.Rollback(); rErr != nil {
				log.WithError(rErr).Error("rollback failed")
			}
		} else {
			err = tx.Commit() // err is nil; if Commit returns error update err
		}
	}()
	err = txFunc(tx)
	return err
}

// GetHighScore reads the stored score, a missing row reads as zero.
func (s *Store) GetHighScore(ctx context.Context) (int, error) {
	r := s.db.QueryRowContext(ctx, `SELECT score FROM high_scores WHERE key=$1`, s.key)

	var score int
	if err := r.Scan(&score); err != nil {
		if err == sql.ErrNoRows {
			return 0, nil
		}
		return 0, errors.Wrap(err, "unable to get high score")
	}
	return score, nil
}

// SetHighScore upserts the score and records it in the history table.
func (s *Store) SetHighScore(ctx context.Context, score int) error {
	now := time.Now().UTC()
	return s.transact(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
		INSERT INTO high_scores (key, score, updated) VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET score=$2, updated=$3`,
			s.key, score, now,
		); err != nil {
			return errors.Wrap(err, "unable to set high score")
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO high_score_history (key, score, recorded) VALUES ($1, $2, $3)`,
			s.key, score, now,
		)
		return errors.Wrap(err, "unable to record high score history")
	})
}

// Close closes the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
