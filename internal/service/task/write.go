package task

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/weektrack-backend/internal/domain"
)

// Create stores a new task for the caller with a zero total.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Task, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	t, err := s.tasks.Create(ctx, &domain.Task{
		ID:            uuid.New(),
		UserID:        userID,
		Title:         strings.TrimSpace(input.Title),
		TargetMinutes: input.TargetMinutes,
		WeekStart:     input.WeekStart,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	if err != nil {
		return nil, fmt.Errorf("task.Create: %w", err)
	}

	s.log.InfoContext(ctx, "task created",
		slog.String("user_id", userID.String()),
		slog.String("task_id", t.ID.String()),
		slog.String("week_start", t.WeekStart))

	return t, nil
}

// Patch applies the provided fields to an owned task.
func (s *Service) Patch(ctx context.Context, taskID uuid.UUID, input PatchInput) (*domain.Task, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	var title *string
	if input.Title != nil {
		trimmed := strings.TrimSpace(*input.Title)
		title = &trimmed
	}

	t, err := s.tasks.Update(ctx, userID, taskID, title, input.TargetMinutes)
	if err != nil {
		return nil, fmt.Errorf("task.Patch: %w", err)
	}
	return t, nil
}

// LogTime appends a time entry with the raw delta and moves the task total by
// that delta, never below zero. Both writes commit together.
func (s *Service) LogTime(ctx context.Context, taskID uuid.UUID, input LogInput) (*domain.Task, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	delta := *input.Minutes

	var updated *domain.Task
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		cur, err := s.tasks.GetForUpdate(ctx, userID, taskID)
		if err != nil {
			return err
		}

		if _, err := s.entries.Append(ctx, &domain.TimeEntry{
			ID:        uuid.New(),
			TaskID:    cur.ID,
			Minutes:   delta,
			CreatedAt: time.Now().UTC(),
		}); err != nil {
			return fmt.Errorf("append entry: %w", err)
		}

		updated, err = s.tasks.SetTotal(ctx, userID, taskID, domain.ClampTotal(cur.TotalLogged, delta))
		if err != nil {
			return fmt.Errorf("set total: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("task.LogTime: %w", err)
	}

	s.log.InfoContext(ctx, "time logged",
		slog.String("user_id", userID.String()),
		slog.String("task_id", taskID.String()),
		slog.Int("minutes", delta),
		slog.Int("total", updated.TotalLogged))

	return updated, nil
}

// Delete removes an owned task together with its entries.
func (s *Service) Delete(ctx context.Context, taskID uuid.UUID) error {
	userID, err := currentUser(ctx)
	if err != nil {
		return err
	}

	if err := s.tasks.Delete(ctx, userID, taskID); err != nil {
		return fmt.Errorf("task.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "task deleted",
		slog.String("user_id", userID.String()),
		slog.String("task_id", taskID.String()))

	return nil
}
