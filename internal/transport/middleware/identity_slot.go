package middleware

import (
	"context"

	"github.com/google/uuid"
)

// requestIdentity lets Identity report the resolved user back to Logger,
// which sits outside it and never sees the inner request context.
type requestIdentity struct {
	userID uuid.UUID
}

type identitySlotKey struct{}

func withIdentitySlot(ctx context.Context, ids *requestIdentity) context.Context {
	return context.WithValue(ctx, identitySlotKey{}, ids)
}

func recordUserID(ctx context.Context, id uuid.UUID) {
	if ids, ok := ctx.Value(identitySlotKey{}).(*requestIdentity); ok {
		ids.userID = id
	}
}
