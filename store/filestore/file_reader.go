package filestore

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"os"
)

var openFileReader = fileReader

type reader interface {
	Read(p []byte) (int, error)
	Close() error
}

func fileReader(filename string) (reader, error) {
	return os.OpenFile(filename, os.O_RDONLY, 0644)
}

func readLine(r *bufio.Reader, out interface{}) (bool, bool, error) {
	line, err := r.ReadBytes('\n')
	eof := err == io.EOF

	if err != nil && !eof {
		return false, false, err
	}

	line = bytes.TrimSpace(line)
	if len(line) == 0 {
		return false, !eof, nil
	}

	if err = json.Unmarshal(line, out); err != nil {
		return false, !eof, err
	}

	return true, !eof, nil
}

// readLastRecord walks every line and keeps the last record. A torn final
// line, left by a crash mid write, is skipped.
func readLastRecord(r io.Reader) (record, bool, error) {
	reader := bufio.NewReader(r)

	var (
		last  record
		found bool
	)
	for more := true; more; {
		rec := record{}
		ok, next, err := readLine(reader, &rec)
		if err != nil {
			if _, isSyntax := err.(*json.SyntaxError); isSyntax && !next {
				break
			}
			return record{}, false, err
		}
		if ok {
			last = rec
			found = true
		}
		more = next
	}
	return last, found, nil
}
