package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/weektrack-backend/internal/adapter/memory"
	"github.com/heartmarshall/weektrack-backend/internal/adapter/postgres"
	taskrepo "github.com/heartmarshall/weektrack-backend/internal/adapter/postgres/task"
	"github.com/heartmarshall/weektrack-backend/internal/adapter/postgres/timeentry"
	userrepo "github.com/heartmarshall/weektrack-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/weektrack-backend/internal/config"
	"github.com/heartmarshall/weektrack-backend/internal/domain"
)

type userStore interface {
	Upsert(ctx context.Context, externalID string, handle *string) (*domain.User, error)
	GetByExternalID(ctx context.Context, externalID string) (*domain.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type taskStore interface {
	List(ctx context.Context, userID uuid.UUID, weekStart string) ([]domain.Task, error)
	Get(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error)
	GetForUpdate(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error)
	Create(ctx context.Context, t *domain.Task) (*domain.Task, error)
	Update(ctx context.Context, userID, taskID uuid.UUID, title *string, targetMinutes *int) (*domain.Task, error)
	SetTotal(ctx context.Context, userID, taskID uuid.UUID, total int) (*domain.Task, error)
	Delete(ctx context.Context, userID, taskID uuid.UUID) error
	DeleteByUser(ctx context.Context, userID uuid.UUID) (int, error)
}

type entryStore interface {
	Append(ctx context.Context, e *domain.TimeEntry) (*domain.TimeEntry, error)
	ListByTask(ctx context.Context, taskID uuid.UUID) ([]domain.TimeEntry, error)
}

type txRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type pinger interface {
	Ping(ctx context.Context) error
}

// storage is one selected persistence backend.
type storage struct {
	users   userStore
	tasks   taskStore
	entries entryStore
	tx      txRunner
	health  pinger
	close   func()
}

// openStorage builds the backend named by cfg.Storage.Driver.
func openStorage(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*storage, error) {
	switch cfg.Storage.Driver {
	case config.DriverMemory:
		logger.Warn("using in-memory storage; data is lost on restart")
		s := memory.New()
		return &storage{
			users:   s.Users(),
			tasks:   s.Tasks(),
			entries: s.Entries(),
			tx:      s,
			health:  s,
			close:   func() {},
		}, nil

	case config.DriverPostgres:
		if cfg.Database.AutoMigrate {
			if err := postgres.Migrate(ctx, cfg.Database.DSN, logger); err != nil {
				return nil, fmt.Errorf("migrate: %w", err)
			}
		}

		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("connect to database: %w", err)
		}
		logger.Info("connected to database",
			slog.Int("max_conns", int(cfg.Database.MaxConns)))

		return &storage{
			users:   userrepo.New(pool),
			tasks:   taskrepo.New(pool),
			entries: timeentry.New(pool),
			tx:      postgres.NewTxManager(pool),
			health:  pool,
			close:   pool.Close,
		}, nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
