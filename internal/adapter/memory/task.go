package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/heartmarshall/weektrack-backend/internal/domain"
)

// TaskRepo stores tasks. Lookups by id also match on owner.
type TaskRepo struct {
	s *Store
}

// List returns the user's tasks for weekStart, newest first.
func (r *TaskRepo) List(ctx context.Context, userID uuid.UUID, weekStart string) ([]domain.Task, error) {
	defer r.s.lock(ctx)()

	out := make([]domain.Task, 0)
	for _, t := range r.s.tasks {
		if t.UserID == userID && t.WeekStart == weekStart {
			out = append(out, t)
		}
	}
	slices.SortFunc(out, func(a, b domain.Task) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID.String(), a.ID.String())
	})
	return out, nil
}

// Get returns the task if it exists and belongs to userID.
func (r *TaskRepo) Get(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error) {
	defer r.s.lock(ctx)()
	return r.s.ownedTask(userID, taskID)
}

// GetForUpdate is Get; RunInTx already serialises writers.
func (r *TaskRepo) GetForUpdate(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error) {
	return r.Get(ctx, userID, taskID)
}

// Create stores t. The owner must exist, mirroring the users foreign key.
func (r *TaskRepo) Create(ctx context.Context, t *domain.Task) (*domain.Task, error) {
	defer r.s.lock(ctx)()

	if !r.s.hasUser(t.UserID) {
		return nil, fmt.Errorf("user %s: %w", t.UserID, domain.ErrNotFound)
	}
	if _, exists := r.s.tasks[t.ID]; exists {
		return nil, fmt.Errorf("task %s: %w", t.ID, domain.ErrAlreadyExists)
	}
	r.s.tasks[t.ID] = *t
	out := *t
	return &out, nil
}

// Update sets the non-nil fields on the user's task.
func (r *TaskRepo) Update(ctx context.Context, userID, taskID uuid.UUID, title *string, targetMinutes *int) (*domain.Task, error) {
	defer r.s.lock(ctx)()

	t, err := r.s.ownedTask(userID, taskID)
	if err != nil {
		return nil, err
	}
	if title == nil && targetMinutes == nil {
		return t, nil
	}
	if title != nil {
		t.Title = *title
	}
	if targetMinutes != nil {
		t.TargetMinutes = *targetMinutes
	}
	t.UpdatedAt = r.s.now()
	r.s.tasks[taskID] = *t
	return t, nil
}

// SetTotal overwrites the accumulated total on the user's task.
func (r *TaskRepo) SetTotal(ctx context.Context, userID, taskID uuid.UUID, total int) (*domain.Task, error) {
	defer r.s.lock(ctx)()

	if total < 0 {
		return nil, domain.NewValidationError("task", "total must not be negative")
	}
	t, err := r.s.ownedTask(userID, taskID)
	if err != nil {
		return nil, err
	}
	t.TotalLogged = total
	t.UpdatedAt = r.s.now()
	r.s.tasks[taskID] = *t
	return t, nil
}

// Delete removes the user's task and its entries.
func (r *TaskRepo) Delete(ctx context.Context, userID, taskID uuid.UUID) error {
	defer r.s.lock(ctx)()

	if _, err := r.s.ownedTask(userID, taskID); err != nil {
		return err
	}
	delete(r.s.tasks, taskID)
	delete(r.s.entries, taskID)
	return nil
}

// DeleteByUser removes every task the user owns and returns how many were removed.
func (r *TaskRepo) DeleteByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	defer r.s.lock(ctx)()
	return r.s.deleteTasksOf(userID), nil
}

// ownedTask must be called with the store locked.
func (s *Store) ownedTask(userID, taskID uuid.UUID) (*domain.Task, error) {
	t, ok := s.tasks[taskID]
	if !ok || t.UserID != userID {
		return nil, fmt.Errorf("task %s: %w", taskID, domain.ErrNotFound)
	}
	return &t, nil
}

// deleteTasksOf must be called with the store locked.
func (s *Store) deleteTasksOf(userID uuid.UUID) int {
	n := 0
	for id, t := range s.tasks {
		if t.UserID == userID {
			delete(s.tasks, id)
			delete(s.entries, id)
			n++
		}
	}
	return n
}
