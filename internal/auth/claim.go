package auth

import (
	"context"
	"time"

	"github.com/heartmarshall/weektrack-backend/internal/config"
)

// Claim is the identity carried by a verified launch payload.
type Claim struct {
	ExternalID string
	Handle     *string
	// AuthDate is zero when the payload has no auth_date field.
	AuthDate time.Time
}

// DevClaim returns the fixed identity used by the development bypass.
func DevClaim(cfg config.TelegramConfig) Claim {
	c := Claim{ExternalID: cfg.DevExternalID}
	if cfg.DevHandle != "" {
		h := cfg.DevHandle
		c.Handle = &h
	}
	return c
}

type claimKey struct{}

// WithClaim stores the verified claim in the context.
func WithClaim(ctx context.Context, c Claim) context.Context {
	return context.WithValue(ctx, claimKey{}, c)
}

// ClaimFromCtx returns the claim stored by WithClaim.
// Returns false when there is none or its external id is empty.
func ClaimFromCtx(ctx context.Context) (Claim, bool) {
	c, ok := ctx.Value(claimKey{}).(Claim)
	if !ok || c.ExternalID == "" {
		return Claim{}, false
	}
	return c, true
}
