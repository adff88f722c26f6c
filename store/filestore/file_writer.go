package filestore

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

var openFileWriter = appendOnlyFileWriter

type writer interface {
	WriteString(s string) (int, error)
	Close() error
}

type record struct {
	Score    int       `json:"score"`
	Recorded time.Time `json:"recorded"`
}

func writeLine(w writer, data interface{}) error {
	j, err := json.Marshal(data)
	if err != nil {
		return err
	}
	_, err = w.WriteString(string(j) + "\n")
	return err
}

func appendOnlyFileWriter(dir, filename string) (writer, error) {
	if err := os.MkdirAll(dir, 0775); err != nil {
		return nil, errors.Wrapf(err, "unable to create %s", dir)
	}

	f, err := os.OpenFile(filename, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open %s", filename)
	}
	return f, nil
}
