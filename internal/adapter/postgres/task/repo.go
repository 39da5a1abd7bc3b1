// Package task implements the Task repository using PostgreSQL.
// Every statement that addresses a task by id is also filtered by its owner.
package task

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/weektrack-backend/internal/adapter/postgres"
	"github.com/heartmarshall/weektrack-backend/internal/domain"
)

const (
	table   = "tasks"
	columns = "id, user_id, title, target_minutes, week_start, total_logged, created_at, updated_at"
)

// Repo provides task persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new task repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns the user's tasks for weekStart, newest first.
// Returns an empty slice when there are none.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, weekStart string) ([]domain.Task, error) {
	query, args, err := postgres.Builder.
		Select(columns).
		From(table).
		Where(squirrel.Eq{"user_id": userID, "week_start": weekStart}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list tasks: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	tasks := make([]domain.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// Get returns the task if it exists and belongs to userID.
func (r *Repo) Get(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error) {
	return r.get(ctx, userID, taskID, false)
}

// GetForUpdate is Get with a row lock held until the surrounding transaction ends.
func (r *Repo) GetForUpdate(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error) {
	return r.get(ctx, userID, taskID, true)
}

func (r *Repo) get(ctx context.Context, userID, taskID uuid.UUID, lock bool) (*domain.Task, error) {
	b := postgres.Builder.
		Select(columns).
		From(table).
		Where(squirrel.Eq{"id": taskID, "user_id": userID})
	if lock {
		b = b.Suffix("FOR UPDATE")
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get task: %w", err)
	}

	t, err := scanTask(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "task", taskID)
	}
	return t, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts t and returns the persisted row.
func (r *Repo) Create(ctx context.Context, t *domain.Task) (*domain.Task, error) {
	query, args, err := postgres.Builder.
		Insert(table).
		Columns("id", "user_id", "title", "target_minutes", "week_start", "total_logged", "created_at", "updated_at").
		Values(t.ID, t.UserID, t.Title, t.TargetMinutes, t.WeekStart, t.TotalLogged, t.CreatedAt, t.UpdatedAt).
		Suffix("RETURNING " + columns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create task: %w", err)
	}

	created, err := scanTask(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "task", t.ID)
	}
	return created, nil
}

// Update sets the non-nil fields on the user's task and returns the new row.
// With both fields nil it behaves like Get.
func (r *Repo) Update(ctx context.Context, userID, taskID uuid.UUID, title *string, targetMinutes *int) (*domain.Task, error) {
	if title == nil && targetMinutes == nil {
		return r.Get(ctx, userID, taskID)
	}

	b := postgres.Builder.
		Update(table).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": taskID, "user_id": userID}).
		Suffix("RETURNING " + columns)
	if title != nil {
		b = b.Set("title", *title)
	}
	if targetMinutes != nil {
		b = b.Set("target_minutes", *targetMinutes)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update task: %w", err)
	}

	t, err := scanTask(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "task", taskID)
	}
	return t, nil
}

// SetTotal overwrites total_logged on the user's task and returns the new row.
func (r *Repo) SetTotal(ctx context.Context, userID, taskID uuid.UUID, total int) (*domain.Task, error) {
	query, args, err := postgres.Builder.
		Update(table).
		Set("total_logged", total).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": taskID, "user_id": userID}).
		Suffix("RETURNING " + columns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build set total: %w", err)
	}

	t, err := scanTask(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "task", taskID)
	}
	return t, nil
}

// Delete removes the user's task. Its time entries go with it via FK cascade.
// Returns domain.ErrNotFound if the task does not exist or belongs to another user.
func (r *Repo) Delete(ctx context.Context, userID, taskID uuid.UUID) error {
	query, args, err := postgres.Builder.
		Delete(table).
		Where(squirrel.Eq{"id": taskID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete task: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "task", taskID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("task %s: %w", taskID, domain.ErrNotFound)
	}
	return nil
}

// DeleteByUser removes every task the user owns and returns how many were removed.
func (r *Repo) DeleteByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	query, args, err := postgres.Builder.
		Delete(table).
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete tasks: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete tasks of user %s: %w", userID, err)
	}
	return int(tag.RowsAffected()), nil
}

func scanTask(row pgx.Row) (*domain.Task, error) {
	var t domain.Task
	err := row.Scan(
		&t.ID, &t.UserID, &t.Title, &t.TargetMinutes, &t.WeekStart,
		&t.TotalLogged, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
