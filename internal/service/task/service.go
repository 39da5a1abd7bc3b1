// Package task implements the weekly task ledger: task CRUD and time logging
// scoped to the authenticated user.
package task

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/weektrack-backend/internal/domain"
	"github.com/heartmarshall/weektrack-backend/pkg/ctxutil"
)

type taskRepo interface {
	List(ctx context.Context, userID uuid.UUID, weekStart string) ([]domain.Task, error)
	Get(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error)
	GetForUpdate(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error)
	Create(ctx context.Context, t *domain.Task) (*domain.Task, error)
	Update(ctx context.Context, userID, taskID uuid.UUID, title *string, targetMinutes *int) (*domain.Task, error)
	SetTotal(ctx context.Context, userID, taskID uuid.UUID, total int) (*domain.Task, error)
	Delete(ctx context.Context, userID, taskID uuid.UUID) error
}

type entryRepo interface {
	Append(ctx context.Context, e *domain.TimeEntry) (*domain.TimeEntry, error)
	ListByTask(ctx context.Context, taskID uuid.UUID) ([]domain.TimeEntry, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides task ledger operations.
type Service struct {
	log     *slog.Logger
	tasks   taskRepo
	entries entryRepo
	tx      txManager
}

// NewService creates a new task service.
func NewService(
	logger *slog.Logger,
	tasks taskRepo,
	entries entryRepo,
	tx txManager,
) *Service {
	return &Service{
		log:     logger.With("service", "task"),
		tasks:   tasks,
		entries: entries,
		tx:      tx,
	}
}

// currentUser resolves the caller. Call it after input validation and outside
// any transaction: resolution may upsert the user row.
func currentUser(ctx context.Context) (uuid.UUID, error) {
	id, err := ctxutil.ResolveUserID(ctx)
	if errors.Is(err, ctxutil.ErrNoUser) {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return id, err
}
