package testhelper

import (
	"context"
	"encoding/binary"
	"strconv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/weektrack-backend/internal/domain"
)

// uniqueExternalID returns a platform-like numeric id unlikely to collide between tests.
func uniqueExternalID() string {
	id := uuid.New()
	return strconv.FormatUint(binary.BigEndian.Uint64(id[:8])>>8, 10)
}

// SeedUser inserts a user with a fresh external id and a handle.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	handle := "user_" + uuid.New().String()[:8]
	u := domain.User{
		ID:         uuid.New(),
		ExternalID: uniqueExternalID(),
		Handle:     &handle,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, external_id, handle, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`,
		u.ID, u.ExternalID, handle, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}
	return u
}

// SeedTask inserts a task for userID in weekStart with a zero total.
func SeedTask(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, weekStart string) domain.Task {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	task := domain.Task{
		ID:            uuid.New(),
		UserID:        userID,
		Title:         "Task " + uuid.New().String()[:8],
		TargetMinutes: 120,
		WeekStart:     weekStart,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO tasks (id, user_id, title, target_minutes, week_start, total_logged, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, 0, $6, $7)`,
		task.ID, task.UserID, task.Title, task.TargetMinutes, task.WeekStart, task.CreatedAt, task.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTask: %v", err)
	}
	return task
}
