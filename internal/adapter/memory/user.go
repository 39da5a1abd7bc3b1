package memory

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/weektrack-backend/internal/domain"
)

// UserRepo stores users keyed by external id.
type UserRepo struct {
	s *Store
}

// Upsert creates the user or refreshes its handle when one is given.
func (r *UserRepo) Upsert(ctx context.Context, externalID string, handle *string) (*domain.User, error) {
	defer r.s.lock(ctx)()

	now := r.s.now()
	u, ok := r.s.users[externalID]
	if !ok {
		u = domain.User{
			ID:         uuid.New(),
			ExternalID: externalID,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
	}
	if handle != nil && (u.Handle == nil || *u.Handle != *handle) {
		h := *handle
		u.Handle = &h
		u.UpdatedAt = now
	}
	r.s.users[externalID] = u
	return &u, nil
}

// GetByExternalID returns the user with the given platform id.
func (r *UserRepo) GetByExternalID(ctx context.Context, externalID string) (*domain.User, error) {
	defer r.s.lock(ctx)()

	u, ok := r.s.users[externalID]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", externalID, domain.ErrNotFound)
	}
	return &u, nil
}

// Delete removes the user together with its tasks and their entries.
func (r *UserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	defer r.s.lock(ctx)()

	for ext, u := range r.s.users {
		if u.ID != id {
			continue
		}
		delete(r.s.users, ext)
		r.s.deleteTasksOf(id)
		return nil
	}
	return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
}

// hasUser reports whether a user with the internal id exists. Callers hold the lock.
func (s *Store) hasUser(id uuid.UUID) bool {
	for _, u := range s.users {
		if u.ID == id {
			return true
		}
	}
	return false
}
