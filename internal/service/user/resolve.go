package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/weektrack-backend/internal/auth"
	"github.com/heartmarshall/weektrack-backend/internal/domain"
)

// Profile is the identity echoed back to the client.
type Profile struct {
	ExternalID string
	Handle     *string
}

// Resolve returns the local user for a verified claim, creating it on first
// sight. A non-empty handle on the claim replaces the stored one.
func (s *Service) Resolve(ctx context.Context, claim auth.Claim) (*domain.User, error) {
	if strings.TrimSpace(claim.ExternalID) == "" {
		return nil, domain.NewValidationError("external_id", "required")
	}

	u, err := s.users.Upsert(ctx, claim.ExternalID, claim.Handle)
	if errors.Is(err, domain.ErrAlreadyExists) {
		// Lost a first-insert race; the winner's row is the user.
		u, err = s.users.GetByExternalID(ctx, claim.ExternalID)
	}
	if err != nil {
		return nil, fmt.Errorf("user.Resolve: %w", err)
	}

	s.log.DebugContext(ctx, "user resolved",
		slog.String("user_id", u.ID.String()),
		slog.String("external_id", u.ExternalID))

	return u, nil
}

// Me projects the claim into a profile. It does not touch storage.
func (s *Service) Me(claim auth.Claim) Profile {
	return Profile{ExternalID: claim.ExternalID, Handle: claim.Handle}
}
