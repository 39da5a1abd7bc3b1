package memory

import (
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/heartmarshall/weektrack-backend/internal/domain"
)

// EntryRepo stores append-only time entries per task.
type EntryRepo struct {
	s *Store
}

// Append records e against its task.
func (r *EntryRepo) Append(ctx context.Context, e *domain.TimeEntry) (*domain.TimeEntry, error) {
	defer r.s.lock(ctx)()

	if _, ok := r.s.tasks[e.TaskID]; !ok {
		return nil, fmt.Errorf("time_entry %s: %w", e.ID, domain.ErrNotFound)
	}
	if e.Minutes < -domain.LogMinutesLimit || e.Minutes > domain.LogMinutesLimit {
		return nil, domain.NewValidationError("time_entry", "minutes out of range")
	}
	r.s.entries[e.TaskID] = append(r.s.entries[e.TaskID], *e)
	out := *e
	return &out, nil
}

// ListByTask returns the task's entries oldest first.
func (r *EntryRepo) ListByTask(ctx context.Context, taskID uuid.UUID) ([]domain.TimeEntry, error) {
	defer r.s.lock(ctx)()

	out := slices.Clone(r.s.entries[taskID])
	if out == nil {
		out = make([]domain.TimeEntry, 0)
	}
	return out, nil
}
