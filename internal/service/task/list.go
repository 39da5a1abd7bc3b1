package task

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/weektrack-backend/internal/domain"
)

// List returns the caller's tasks for the given week, newest first.
func (s *Service) List(ctx context.Context, weekStart string) ([]domain.Task, error) {
	if !domain.ValidWeekStart(weekStart) {
		return nil, domain.NewValidationError("weekStart", "must be a date in YYYY-MM-DD format")
	}

	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	tasks, err := s.tasks.List(ctx, userID, weekStart)
	if err != nil {
		return nil, fmt.Errorf("task.List: %w", err)
	}
	return tasks, nil
}

// Entries returns the time entries of an owned task, oldest first.
func (s *Service) Entries(ctx context.Context, taskID uuid.UUID) ([]domain.TimeEntry, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := s.tasks.Get(ctx, userID, taskID); err != nil {
		return nil, fmt.Errorf("task.Entries: %w", err)
	}

	entries, err := s.entries.ListByTask(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("task.Entries: %w", err)
	}
	return entries, nil
}
