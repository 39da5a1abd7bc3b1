package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/weektrack-backend/internal/auth"
	"github.com/heartmarshall/weektrack-backend/internal/service/user"
)

// accountService defines the minimal interface needed by AccountHandler.
type accountService interface {
	Me(claim auth.Claim) user.Profile
	DeleteAccount(ctx context.Context, externalID string) error
}

// AccountHandler serves identity and account removal endpoints. Both only
// need the verified claim, not a resolved user.
type AccountHandler struct {
	svc accountService
	log *slog.Logger
}

// NewAccountHandler creates an AccountHandler.
func NewAccountHandler(svc accountService, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{svc: svc, log: logger.With("handler", "account")}
}

type meResponse struct {
	ExternalID string  `json:"externalId"`
	Handle     *string `json:"handle"`
}

// Me handles GET /me.
func (h *AccountHandler) Me(w http.ResponseWriter, r *http.Request) {
	claim, ok := auth.ClaimFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	p := h.svc.Me(claim)
	writeJSON(w, http.StatusOK, meResponse{ExternalID: p.ExternalID, Handle: p.Handle})
}

// DeleteAccount handles POST /danger/delete-account. It succeeds even when
// there is nothing to delete.
func (h *AccountHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	claim, ok := auth.ClaimFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := h.svc.DeleteAccount(r.Context(), claim.ExternalID); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, okResponse{OK: true})
}
