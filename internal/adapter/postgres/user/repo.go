// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	postgres "github.com/heartmarshall/weektrack-backend/internal/adapter/postgres"
	"github.com/heartmarshall/weektrack-backend/internal/domain"
)

const (
	table   = "users"
	columns = "id, external_id, handle, created_at, updated_at"
)

// upsertSuffix refreshes the handle only when the new claim carries one.
const upsertSuffix = `ON CONFLICT (external_id) DO UPDATE SET
	handle = COALESCE(EXCLUDED.handle, users.handle),
	updated_at = CASE
		WHEN EXCLUDED.handle IS NOT NULL AND EXCLUDED.handle IS DISTINCT FROM users.handle THEN now()
		ELSE users.updated_at
	END
RETURNING ` + columns

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Upsert inserts the user keyed by externalID or refreshes its handle.
func (r *Repo) Upsert(ctx context.Context, externalID string, handle *string) (*domain.User, error) {
	query, args, err := postgres.Builder.
		Insert(table).
		Columns("id", "external_id", "handle").
		Values(uuid.New(), externalID, textFromPtr(handle)).
		Suffix(upsertSuffix).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build upsert user: %w", err)
	}

	u, err := scanUser(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", externalID)
	}
	return u, nil
}

// GetByExternalID returns the user with the given platform id.
func (r *Repo) GetByExternalID(ctx context.Context, externalID string) (*domain.User, error) {
	query, args, err := postgres.Builder.
		Select(columns).
		From(table).
		Where(squirrel.Eq{"external_id": externalID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get user: %w", err)
	}

	u, err := scanUser(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", externalID)
	}
	return u, nil
}

// Delete removes the user; tasks and time entries go with it via FK cascade.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := postgres.Builder.
		Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete user: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "user", id)
	}
	return nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		u      domain.User
		handle pgtype.Text
	)
	if err := row.Scan(&u.ID, &u.ExternalID, &handle, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	if handle.Valid {
		h := handle.String
		u.Handle = &h
	}
	return &u, nil
}

func textFromPtr(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}
