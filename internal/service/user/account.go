package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/weektrack-backend/internal/domain"
)

// DeleteAccount removes the user identified by externalID with all of its
// tasks and time entries. Deleting an unknown user is a no-op.
func (s *Service) DeleteAccount(ctx context.Context, externalID string) error {
	var removed int
	found := true

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		u, err := s.users.GetByExternalID(ctx, externalID)
		if errors.Is(err, domain.ErrNotFound) {
			found = false
			return nil
		}
		if err != nil {
			return fmt.Errorf("get user: %w", err)
		}

		removed, err = s.tasks.DeleteByUser(ctx, u.ID)
		if err != nil {
			return fmt.Errorf("delete tasks: %w", err)
		}

		if err := s.users.Delete(ctx, u.ID); err != nil && !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("delete user: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("user.DeleteAccount: %w", err)
	}

	if !found {
		s.log.InfoContext(ctx, "account already absent",
			slog.String("external_id", externalID))
		return nil
	}

	s.log.InfoContext(ctx, "account deleted",
		slog.String("external_id", externalID),
		slog.Int("tasks_removed", removed))

	return nil
}
