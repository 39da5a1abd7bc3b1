package middleware

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/weektrack-backend/internal/auth"
	"github.com/heartmarshall/weektrack-backend/internal/config"
	"github.com/heartmarshall/weektrack-backend/internal/domain"
	"github.com/heartmarshall/weektrack-backend/pkg/ctxutil"
)

type claimVerifier interface {
	Verify(initData string) (auth.Claim, error)
}

type identityResolver interface {
	Resolve(ctx context.Context, claim auth.Claim) (*domain.User, error)
}

// Gate authenticates the request from the launch payload header and stores
// the claim in the context. Every failure is a bare 401; the reason is only
// logged. When devBypass is set a request without the header is admitted as
// the configured development user.
func Gate(verifier claimVerifier, cfg config.TelegramConfig, devBypass bool, logger *slog.Logger) Middleware {
	header := cfg.InitDataHeader
	devClaim := auth.DevClaim(cfg)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get(header)

			var claim auth.Claim
			switch {
			case raw == "" && devBypass:
				claim = devClaim
			default:
				c, err := verifier.Verify(raw)
				if err != nil {
					logger.DebugContext(r.Context(), "init data rejected",
						ctxutil.RequestIDAttr(r.Context()),
						slog.String("reason", err.Error()))
					writeJSONError(w, http.StatusUnauthorized, "unauthorized")
					return
				}
				claim = c
			}

			next.ServeHTTP(w, r.WithContext(auth.WithClaim(r.Context(), claim)))
		})
	}
}

// Identity maps the claim left by Gate to a local user. Resolution is
// deferred: the handler triggers it through ctxutil.ResolveUserID once its
// input has validated, so rejected requests never write the user row. The
// result is memoized per request. It must run after Gate.
func Identity(resolver identityResolver, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claim, ok := auth.ClaimFromCtx(r.Context())
			if !ok {
				writeJSONError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			ctx := r.Context()
			resolve := sync.OnceValues(func() (uuid.UUID, error) {
				u, err := resolver.Resolve(ctx, claim)
				if err != nil {
					if errors.Is(err, domain.ErrValidation) {
						logger.DebugContext(ctx, "identity rejected",
							ctxutil.RequestIDAttr(ctx),
							slog.String("reason", err.Error()))
						return uuid.Nil, fmt.Errorf("resolve identity: %w", domain.ErrUnauthorized)
					}
					return uuid.Nil, fmt.Errorf("resolve identity: %w", err)
				}
				recordUserID(ctx, u.ID)
				return u.ID, nil
			})

			next.ServeHTTP(w, r.WithContext(ctxutil.WithUserIDFunc(ctx, resolve)))
		})
	}
}
