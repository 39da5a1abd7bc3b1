package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/weektrack-backend/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	Upsert(ctx context.Context, externalID string, handle *string) (*domain.User, error)
	GetByExternalID(ctx context.Context, externalID string) (*domain.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// taskRepo is the slice of the task repository used for account removal.
type taskRepo interface {
	DeleteByUser(ctx context.Context, userID uuid.UUID) (int, error)
}

// txManager defines the transaction manager interface needed by user service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service resolves platform identities to local users and removes accounts.
type Service struct {
	log   *slog.Logger
	users userRepo
	tasks taskRepo
	tx    txManager
}

// NewService creates a new user service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	tasks taskRepo,
	tx txManager,
) *Service {
	return &Service{
		log:   logger.With("service", "user"),
		users: users,
		tasks: tasks,
		tx:    tx,
	}
}
