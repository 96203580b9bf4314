// Package records keeps the best completion time of every level in a YAML file.
package records

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/setanarut/bike"
	"gopkg.in/yaml.v3"
)

// Record is the history of one level.
type Record struct {
	Name        string         `yaml:"name,omitempty"`
	Best        bike.LevelTime `yaml:"best"`
	Attempts    int            `yaml:"attempts"`
	Completions int            `yaml:"completions"`
	LastAttempt time.Time      `yaml:"last_attempt,omitempty"`
}

// Store maps level fingerprints to records. It is safe for concurrent use.
type Store struct {
	path string

	mu      sync.Mutex
	records map[string]*Record
}

// Key returns the record key of a level.
func Key(level *bike.Level) string {
	return fmt.Sprintf("%016x", level.Fingerprint())
}

// Open reads the store at path. A missing file gives an empty store.
func Open(path string) (*Store, error) {
	s := &Store{path: path, records: make(map[string]*Record)}
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open records: %w", err)
	}
	if err := yaml.Unmarshal(b, &s.records); err != nil {
		return nil, fmt.Errorf("parse records %s: %w", path, err)
	}
	if s.records == nil {
		s.records = make(map[string]*Record)
	}
	return s, nil
}

func (s *Store) get(level *bike.Level) *Record {
	key := Key(level)
	r, ok := s.records[key]
	if !ok {
		r = &Record{Best: bike.InvalidLevelTime}
		s.records[key] = r
	}
	if level.Name() != "" {
		r.Name = level.Name()
	}
	return r
}

// Best returns the best time of level, or bike.InvalidLevelTime.
func (s *Store) Best(level *bike.Level) bike.LevelTime {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r, ok := s.records[Key(level)]; ok {
		return r.Best
	}
	return bike.InvalidLevelTime
}

// Record returns a copy of the record of level.
func (s *Store) Record(level *bike.Level) (Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.records[Key(level)]
	if !ok {
		return Record{}, false
	}
	return *r, true
}

// RecordAttempt counts a started attempt.
func (s *Store) RecordAttempt(level *bike.Level, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.get(level)
	r.Attempts++
	r.LastAttempt = at.UTC()
}

// Submit records a completion and reports whether t is a new best time.
func (s *Store) Submit(level *bike.Level, t bike.LevelTime) bool {
	if !t.Valid() {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.get(level)
	r.Completions++
	if t >= r.Best {
		return false
	}
	r.Best = t
	return true
}

// Save writes the store back to its file.
func (s *Store) Save() error {
	s.mu.Lock()
	b, err := yaml.Marshal(s.records)
	s.mu.Unlock()
	if err != nil {
		return fmt.Errorf("encode records: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("save records: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".records-*.yaml")
	if err != nil {
		return fmt.Errorf("save records: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return fmt.Errorf("save records: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("save records: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("save records: %w", err)
	}
	return nil
}
