// Package memory is the local-ephemeral storage variant. It keeps users, tasks
// and time entries in process memory and is selected with storage.driver=memory.
// State is lost on restart.
package memory

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/weektrack-backend/internal/domain"
)

// Store owns all in-memory state. Repositories are views onto one Store.
type Store struct {
	mu      sync.Mutex
	users   map[string]domain.User           // external id -> user
	tasks   map[uuid.UUID]domain.Task        // task id -> task
	entries map[uuid.UUID][]domain.TimeEntry // task id -> entries, oldest first
	now     func() time.Time
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		users:   make(map[string]domain.User),
		tasks:   make(map[uuid.UUID]domain.Task),
		entries: make(map[uuid.UUID][]domain.TimeEntry),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Users returns the user repository view.
func (s *Store) Users() *UserRepo { return &UserRepo{s: s} }

// Tasks returns the task repository view.
func (s *Store) Tasks() *TaskRepo { return &TaskRepo{s: s} }

// Entries returns the time entry repository view.
func (s *Store) Entries() *EntryRepo { return &EntryRepo{s: s} }

// Ping always succeeds; it lets the store stand in for a database in readiness checks.
func (s *Store) Ping(context.Context) error { return nil }

type txKey struct{}

// RunInTx runs fn with the store locked. If fn fails or panics, every change
// made through the store inside fn is undone.
func (s *Store) RunInTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if s.inTx(ctx) {
		return fn(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.snapshot()
	defer func() {
		if r := recover(); r != nil {
			s.restore(snap)
			panic(r)
		}
	}()

	if err := fn(context.WithValue(ctx, txKey{}, s)); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

func (s *Store) inTx(ctx context.Context) bool {
	owner, _ := ctx.Value(txKey{}).(*Store)
	return owner == s
}

// lock takes the store mutex unless ctx already runs inside RunInTx.
func (s *Store) lock(ctx context.Context) func() {
	if s.inTx(ctx) {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

type snapshot struct {
	users   map[string]domain.User
	tasks   map[uuid.UUID]domain.Task
	entries map[uuid.UUID][]domain.TimeEntry
}

func (s *Store) snapshot() snapshot {
	entries := make(map[uuid.UUID][]domain.TimeEntry, len(s.entries))
	for k, v := range s.entries {
		entries[k] = slices.Clone(v)
	}
	return snapshot{
		users:   maps.Clone(s.users),
		tasks:   maps.Clone(s.tasks),
		entries: entries,
	}
}

func (s *Store) restore(snap snapshot) {
	s.users = snap.users
	s.tasks = snap.tasks
	s.entries = snap.entries
}
