package commands

import (
	"fmt"
	"io"

	"github.com/battlesnakeio/snake/store"
	"github.com/battlesnakeio/snake/store/filestore"
	"github.com/battlesnakeio/snake/store/redisstore"
	"github.com/battlesnakeio/snake/store/sqlstore"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// openStore creates the high score store for backend. Stores holding a
// connection must be released with closeStore.
func openStore(backend, args, key string) (store.HighScoreStore, error) {
	var s store.HighScoreStore
	var err error
	switch backend {
	case "inmem":
		s = store.InMemStore()
	case "file":
		s = filestore.NewFileStore(args, key)
	case "redis":
		s, err = redisstore.NewStore(args, key)
	case "sql":
		s, err = sqlstore.NewSQLStore(args, key)
	default:
		return nil, fmt.Errorf("invalid backend %q, expected one of: [inmem, file, redis, sql]", backend)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "unable to start up %s backend", backend)
	}

	log.WithField("backend", backend).Debug("high score store ready")
	return store.InstrumentStore(s), nil
}

func closeStore(s store.HighScoreStore) {
	c, ok := s.(io.Closer)
	if !ok {
		return
	}
	if err := c.Close(); err != nil {
		log.WithError(err).Error("unable to close store")
	}
}
