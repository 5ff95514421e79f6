// Package history keeps an append-only audit trail of mutating pip
// operations. It stores one JSON entry per line. The trail is for the
// user's reference only; the dashboard never rebuilds table state from
// it — a fresh listing is always the source of truth on startup.
package history

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const (
	defaultFileMode = 0644
	defaultDirMode  = 0755
)

// Entry records one completed mutating operation.
type Entry struct {
	At      time.Time `json:"at"`
	Command string    `json:"command"`
	Success bool      `json:"success"`
	Detail  string    `json:"detail,omitempty"`
}

// Log is a durable append-only history file guarded by a mutex so
// worker goroutines can append concurrently.
type Log struct {
	mu   sync.Mutex
	path string
	file *os.File
}

// Open creates or opens the history file at path.
func Open(path string) (*Log, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("history: path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), defaultDirMode); err != nil {
		return nil, fmt.Errorf("history: mkdir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, defaultFileMode)
	if err != nil {
		return nil, fmt.Errorf("history: open: %w", err)
	}
	return &Log{path: path, file: f}, nil
}

// Append persists one entry.
func (l *Log) Append(e Entry) error {
	if e.At.IsZero() {
		e.At = time.Now()
	}

	line, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("history: marshal entry: %w", err)
	}
	line = append(line, '\n')

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return errors.New("history: log is closed")
	}
	if _, err := l.file.Write(line); err != nil {
		return fmt.Errorf("history: write entry: %w", err)
	}
	return nil
}

// Recent returns up to n entries, newest last. Malformed lines and a
// partially written trailing line are skipped.
func (l *Log) Recent(n int) ([]Entry, error) {
	l.mu.Lock()
	path := l.path
	l.mu.Unlock()

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("history: open for read: %w", err)
	}
	defer f.Close()

	var entries []Entry
	reader := bufio.NewReader(f)
	for {
		line, err := reader.ReadBytes('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("history: read: %w", err)
		}
		if len(line) > 0 && strings.HasSuffix(string(line), "\n") {
			var e Entry
			if uerr := json.Unmarshal(line, &e); uerr == nil {
				entries = append(entries, e)
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
	}

	if n > 0 && len(entries) > n {
		entries = entries[len(entries)-n:]
	}
	return entries, nil
}

// Close closes the underlying file.
func (l *Log) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}
