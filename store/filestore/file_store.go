package filestore

import (
	"context"
	"os"
	"os/user"
	"path"
	"sync"
	"time"

	"github.com/battlesnakeio/snake/store"
	"github.com/pkg/errors"
)

func defaultDir() string {
	return path.Join(homeDir(), ".snake")
}

func homeDir() string {
	usr, err := user.Current()
	if err != nil {
		return "."
	}
	return usr.HomeDir
}

// NewFileStore returns a file based store. Every high score is appended to
// <directory>/<key>.jsonl and the last record is the current high score.
func NewFileStore(directory, key string) store.HighScoreStore {
	if directory == "" {
		directory = defaultDir()
	}
	if key == "" {
		key = store.DefaultKey
	}

	return &fileStore{
		directory: directory,
		key:       key,
		now:       time.Now,
	}
}

type fileStore struct {
	lock      sync.Mutex
	directory string
	key       string
	now       func() time.Time
}

func (fs *fileStore) path() string {
	return path.Join(fs.directory, fs.key+".jsonl")
}

func (fs *fileStore) GetHighScore(ctx context.Context) (int, error) {
	fs.lock.Lock()
	defer fs.lock.Unlock()

	r, err := openFileReader(fs.path())
	if os.IsNotExist(errors.Cause(err)) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	defer r.Close()

	rec, found, err := readLastRecord(r)
	if err != nil {
		return 0, errors.Wrapf(err, "unable to read %s", fs.path())
	}
	if !found {
		return 0, nil
	}
	return rec.Score, nil
}

func (fs *fileStore) SetHighScore(ctx context.Context, score int) error {
	fs.lock.Lock()
	defer fs.lock.Unlock()

	w, err := openFileWriter(fs.directory, fs.path())
	if err != nil {
		return err
	}

	err = writeLine(w, record{Score: score, Recorded: fs.now().UTC()})
	if closeErr := w.Close(); err == nil {
		err = closeErr
	}
	return err
}
