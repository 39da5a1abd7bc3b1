package user

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/weektrack-backend/internal/auth"
	"github.com/heartmarshall/weektrack-backend/internal/domain"
)

//go:generate moq -out user_repo_mock_test.go -pkg user . userRepo
//go:generate moq -out task_repo_mock_test.go -pkg user . taskRepo
//go:generate moq -out tx_manager_mock_test.go -pkg user . txManager

// ---------------------------------------------------------------------------
// Test helpers
// ---------------------------------------------------------------------------

func newTestService(users userRepo, tasks taskRepo, tx txManager) *Service {
	return NewService(slog.New(slog.DiscardHandler), users, tasks, tx)
}

func ptr[T any](v T) *T { return &v }

func passthroughTx() *txManagerMock {
	return &txManagerMock{
		RunInTxFunc: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
	}
}

func testUser(externalID string, handle *string) *domain.User {
	now := time.Now().UTC()
	return &domain.User{
		ID:         uuid.New(),
		ExternalID: externalID,
		Handle:     handle,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// ---------------------------------------------------------------------------
// Resolve
// ---------------------------------------------------------------------------

func TestService_Resolve_Success(t *testing.T) {
	t.Parallel()

	expected := testUser("42", ptr("alice"))
	users := &userRepoMock{
		UpsertFunc: func(ctx context.Context, externalID string, handle *string) (*domain.User, error) {
			assert.Equal(t, "42", externalID)
			require.NotNil(t, handle)
			assert.Equal(t, "alice", *handle)
			return expected, nil
		},
	}

	svc := newTestService(users, nil, nil)
	u, err := svc.Resolve(context.Background(), auth.Claim{ExternalID: "42", Handle: ptr("alice")})

	require.NoError(t, err)
	assert.Equal(t, expected, u)
	assert.Len(t, users.UpsertCalls(), 1)
}

func TestService_Resolve_NilHandlePassedThrough(t *testing.T) {
	t.Parallel()

	users := &userRepoMock{
		UpsertFunc: func(ctx context.Context, externalID string, handle *string) (*domain.User, error) {
			assert.Nil(t, handle)
			return testUser(externalID, ptr("kept")), nil
		},
	}

	u, err := newTestService(users, nil, nil).Resolve(context.Background(), auth.Claim{ExternalID: "42"})

	require.NoError(t, err)
	assert.Equal(t, "kept", *u.Handle)
}

func TestService_Resolve_EmptyExternalID(t *testing.T) {
	t.Parallel()

	users := &userRepoMock{}
	_, err := newTestService(users, nil, nil).Resolve(context.Background(), auth.Claim{ExternalID: "  "})

	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "external_id", ve.Errors[0].Field)
	assert.Empty(t, users.UpsertCalls())
}

func TestService_Resolve_RaceFallsBackToLookup(t *testing.T) {
	t.Parallel()

	winner := testUser("42", nil)
	users := &userRepoMock{
		UpsertFunc: func(ctx context.Context, externalID string, handle *string) (*domain.User, error) {
			return nil, domain.ErrAlreadyExists
		},
		GetByExternalIDFunc: func(ctx context.Context, externalID string) (*domain.User, error) {
			return winner, nil
		},
	}

	u, err := newTestService(users, nil, nil).Resolve(context.Background(), auth.Claim{ExternalID: "42"})

	require.NoError(t, err)
	assert.Equal(t, winner.ID, u.ID)
	assert.Len(t, users.GetByExternalIDCalls(), 1)
}

func TestService_Resolve_RepoError(t *testing.T) {
	t.Parallel()

	dbErr := errors.New("connection refused")
	users := &userRepoMock{
		UpsertFunc: func(ctx context.Context, externalID string, handle *string) (*domain.User, error) {
			return nil, dbErr
		},
	}

	_, err := newTestService(users, nil, nil).Resolve(context.Background(), auth.Claim{ExternalID: "42"})

	require.ErrorIs(t, err, dbErr)
	assert.Empty(t, users.GetByExternalIDCalls())
}

// ---------------------------------------------------------------------------
// Me
// ---------------------------------------------------------------------------

func TestService_Me(t *testing.T) {
	t.Parallel()

	svc := newTestService(nil, nil, nil)

	p := svc.Me(auth.Claim{ExternalID: "7", Handle: ptr("bob")})
	assert.Equal(t, "7", p.ExternalID)
	require.NotNil(t, p.Handle)
	assert.Equal(t, "bob", *p.Handle)

	p = svc.Me(auth.Claim{ExternalID: "8"})
	assert.Nil(t, p.Handle)
}

// ---------------------------------------------------------------------------
// DeleteAccount
// ---------------------------------------------------------------------------

func TestService_DeleteAccount_Success(t *testing.T) {
	t.Parallel()

	u := testUser("42", nil)
	users := &userRepoMock{
		GetByExternalIDFunc: func(ctx context.Context, externalID string) (*domain.User, error) {
			return u, nil
		},
		DeleteFunc: func(ctx context.Context, id uuid.UUID) error {
			assert.Equal(t, u.ID, id)
			return nil
		},
	}
	tasks := &taskRepoMock{
		DeleteByUserFunc: func(ctx context.Context, userID uuid.UUID) (int, error) {
			assert.Equal(t, u.ID, userID)
			return 3, nil
		},
	}
	tx := passthroughTx()

	err := newTestService(users, tasks, tx).DeleteAccount(context.Background(), "42")

	require.NoError(t, err)
	assert.Len(t, tx.RunInTxCalls(), 1)
	assert.Len(t, tasks.DeleteByUserCalls(), 1)
	assert.Len(t, users.DeleteCalls(), 1)
}

func TestService_DeleteAccount_AbsentIsNoop(t *testing.T) {
	t.Parallel()

	users := &userRepoMock{
		GetByExternalIDFunc: func(ctx context.Context, externalID string) (*domain.User, error) {
			return nil, domain.ErrNotFound
		},
	}
	tasks := &taskRepoMock{}

	svc := newTestService(users, tasks, passthroughTx())

	require.NoError(t, svc.DeleteAccount(context.Background(), "42"))
	require.NoError(t, svc.DeleteAccount(context.Background(), "42"))
	assert.Empty(t, tasks.DeleteByUserCalls())
	assert.Empty(t, users.DeleteCalls())
}

func TestService_DeleteAccount_TaskDeleteFails(t *testing.T) {
	t.Parallel()

	dbErr := errors.New("disk full")
	users := &userRepoMock{
		GetByExternalIDFunc: func(ctx context.Context, externalID string) (*domain.User, error) {
			return testUser(externalID, nil), nil
		},
	}
	tasks := &taskRepoMock{
		DeleteByUserFunc: func(ctx context.Context, userID uuid.UUID) (int, error) {
			return 0, dbErr
		},
	}

	err := newTestService(users, tasks, passthroughTx()).DeleteAccount(context.Background(), "42")

	require.ErrorIs(t, err, dbErr)
	assert.Empty(t, users.DeleteCalls())
}

func TestService_DeleteAccount_TxError(t *testing.T) {
	t.Parallel()

	txErr := errors.New("begin failed")
	tx := &txManagerMock{
		RunInTxFunc: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return txErr
		},
	}

	err := newTestService(&userRepoMock{}, &taskRepoMock{}, tx).DeleteAccount(context.Background(), "42")

	require.ErrorIs(t, err, txErr)
}
