// Package timeentry implements the append-only TimeEntry repository using PostgreSQL.
package timeentry

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
	table   = "time_entries"
	columns = "id, task_id, minutes, created_at"
)

// Repo provides time entry persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new time entry repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Append records e and returns the persisted row.
func (r *Repo) Append(ctx context.Context, e *domain.TimeEntry) (*domain.TimeEntry, error) {
	query, args, err := postgres.Builder.
		Insert(table).
		Columns("id", "task_id", "minutes", "created_at").
		Values(e.ID, e.TaskID, e.Minutes, e.CreatedAt).
		Suffix("RETURNING " + columns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build append time entry: %w", err)
	}

	out, err := scanEntry(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "time_entry", e.ID)
	}
	return out, nil
}

// ListByTask returns the task's entries oldest first.
// Ownership of the task must be checked by the caller.
func (r *Repo) ListByTask(ctx context.Context, taskID uuid.UUID) ([]domain.TimeEntry, error) {
	query, args, err := postgres.Builder.
		Select(columns).
		From(table).
		Where(squirrel.Eq{"task_id": taskID}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list time entries: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list time entries: %w", err)
	}
	defer rows.Close()

	entries := make([]domain.TimeEntry, 0)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan time entry: %w", err)
		}
		entries = append(entries, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list time entries: %w", err)
	}
	return entries, nil
}

func scanEntry(row pgx.Row) (*domain.TimeEntry, error) {
	var e domain.TimeEntry
	if err := row.Scan(&e.ID, &e.TaskID, &e.Minutes, &e.CreatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}
