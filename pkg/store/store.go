package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
)

// File names inside the data directory, one per concern.
const (
	workoutsFile     = "workouts.json"
	goalsFile        = "goals.json"
	measurementsFile = "measurements.json"
	sessionFile      = "session.json"
	templatesFile    = "templates.json"
)

// Store manages the filesystem-backed fitness data. All lists are persisted
// wholesale as JSON files under Root; the last write for a file wins.
type Store struct {
	Root string // e.g. ~/.local/share/fittrack

	log *logrus.Logger

	mu          sync.Mutex
	subscribers map[int]func()
	nextSubID   int
}

// NewStore creates a Store rooted at the given directory, creating it if
// needed.
func NewStore(root string) (*Store, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	return &Store{
		Root:        root,
		log:         logrus.StandardLogger(),
		subscribers: make(map[int]func()),
	}, nil
}

// SetLogger replaces the logger used for swallowed storage errors.
func (s *Store) SetLogger(log *logrus.Logger) {
	if log != nil {
		s.log = log
	}
}

// Subscribe registers a callback fired after every successful write. The
// returned function removes the subscription.
func (s *Store) Subscribe(fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
	}
}

// notify invokes all subscribers synchronously, preserving the store's
// write-then-notify contract.
func (s *Store) notify() {
	s.mu.Lock()
	fns := make([]func(), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		fns = append(fns, fn)
	}
	s.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

func (s *Store) path(name string) string {
	return filepath.Join(s.Root, name)
}

// readList unmarshals a JSON list file into out. A missing or corrupt file
// reads as empty: the read path never fails, it logs and moves on.
func (s *Store) readList(name string, out any) {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.WithError(err).WithField("file", name).Error("reading store file")
		}
		return
	}
	if err := json.Unmarshal(data, out); err != nil {
		s.log.WithError(err).WithField("file", name).Error("malformed store file, treating as empty")
	}
}

// writeList persists v as JSON. Failures are logged and reported via the
// return value so callers can decide whether to notify, but are never
// surfaced to the user beyond the log.
func (s *Store) writeList(name string, v any) bool {
	data, err := json.Marshal(v)
	if err != nil {
		s.log.WithError(err).WithField("file", name).Error("serializing store file")
		return false
	}
	if err := os.WriteFile(s.path(name), data, 0644); err != nil {
		s.log.WithError(err).WithField("file", name).Error("writing store file")
		return false
	}
	return true
}

// ClearAll removes every persisted file and notifies subscribers.
func (s *Store) ClearAll() {
	for _, name := range []string{workoutsFile, goalsFile, measurementsFile, sessionFile, templatesFile} {
		if err := os.Remove(s.path(name)); err != nil && !os.IsNotExist(err) {
			s.log.WithError(err).WithField("file", name).Error("removing store file")
		}
	}
	s.notify()
}
