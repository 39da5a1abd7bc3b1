// Package ctxutil carries request-scoped values through context.Context.
package ctxutil

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
)

type (
	userIDKey     struct{}
	userIDFuncKey struct{}
	requestIDKey  struct{}
)

// ErrNoUser is returned by ResolveUserID when the context carries neither a
// user id nor a way to resolve one.
var ErrNoUser = errors.New("no user in context")

// UserIDFunc resolves the caller's user id on demand.
type UserIDFunc func() (uuid.UUID, error)

// WithUserID stores the resolved internal user id.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey{}, id)
}

// UserIDFromCtx returns the user id and false when it is missing or uuid.Nil.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey{}).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithUserIDFunc stores a deferred user resolver.
func WithUserIDFunc(ctx context.Context, fn UserIDFunc) context.Context {
	return context.WithValue(ctx, userIDFuncKey{}, fn)
}

// ResolveUserID returns the id stored by WithUserID, falling back to the
// resolver stored by WithUserIDFunc.
func ResolveUserID(ctx context.Context) (uuid.UUID, error) {
	if id, ok := UserIDFromCtx(ctx); ok {
		return id, nil
	}
	fn, ok := ctx.Value(userIDFuncKey{}).(UserIDFunc)
	if !ok || fn == nil {
		return uuid.Nil, ErrNoUser
	}
	id, err := fn()
	if err != nil {
		return uuid.Nil, err
	}
	if id == uuid.Nil {
		return uuid.Nil, ErrNoUser
	}
	return id, nil
}

// WithRequestID stores the request correlation id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromCtx returns the request id, or "" if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// RequestIDAttr is the request id as a log attribute.
func RequestIDAttr(ctx context.Context) slog.Attr {
	return slog.String("request_id", RequestIDFromCtx(ctx))
}
