package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Friendship records that two members became friends at Timestamp,
// expressed in milliseconds.
type Friendship struct {
	Timestamp int64 `json:"ts"`
	First     int   `json:"first"`
	Second    int   `json:"second"`
}

// LogReader iterates over a friendship log. Each line holds a timestamp
// and two member ids separated by blanks. Empty lines and lines starting
// with '#' are ignored.
type LogReader struct {
	fp      io.Closer
	scanner *bufio.Scanner
	line    int
	entry   Friendship
	err     error
}

func NewLogReader(r io.Reader) *LogReader {
	return &LogReader{
		scanner: bufio.NewScanner(r),
	}
}

func OpenLogReader(path string) (*LogReader, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	r := NewLogReader(fp)
	r.fp = fp
	return r, nil
}

func (r *LogReader) Close() error {
	if r.fp != nil {
		return r.fp.Close()
	}
	return nil
}

func parseId(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid member id: %q", s)
	}
	if id < 0 {
		return 0, fmt.Errorf("negative member id: %d", id)
	}
	return id, nil
}

func parseFriendship(line string) (Friendship, error) {
	f := Friendship{}
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return f, fmt.Errorf("expected 3 fields, got %d", len(fields))
	}
	ts, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return f, fmt.Errorf("invalid timestamp: %q", fields[0])
	}
	if ts < 0 {
		return f, fmt.Errorf("negative timestamp: %d", ts)
	}
	f.Timestamp = ts
	f.First, err = parseId(fields[1])
	if err != nil {
		return f, err
	}
	f.Second, err = parseId(fields[2])
	return f, err
}

func (r *LogReader) Next() bool {
	if r.err != nil {
		return false
	}
	for r.scanner.Scan() {
		r.line++
		line := strings.TrimSpace(r.scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		f, err := parseFriendship(line)
		if err != nil {
			r.err = fmt.Errorf("line %d: %s", r.line, err)
			return false
		}
		r.entry = f
		return true
	}
	r.err = r.scanner.Err()
	return false
}

func (r *LogReader) Err() error {
	return r.err
}

// Entry returns the current friendship. It is overwritten by Next.
func (r *LogReader) Entry() *Friendship {
	return &r.entry
}

// ForEach calls fn on every remaining entry, in file order.
func (r *LogReader) ForEach(fn func(f *Friendship) error) error {
	for r.Next() {
		err := fn(r.Entry())
		if err == ErrStop {
			return nil
		}
		if err != nil {
			return err
		}
	}
	return r.Err()
}
