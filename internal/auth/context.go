// Package auth carries the authenticated identity through request contexts.
package auth

import (
	"context"

	"github.com/dukerupert/gazette/internal/model"
)

type contextKey struct{}

// Identity is the authenticated account attached to a request by the
// permission guard.
type Identity struct {
	Username   string
	Permission model.Permission
}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(contextKey{}).(Identity)
	return id, ok
}

// Username returns the authenticated username, or "" for anonymous requests.
func Username(ctx context.Context) string {
	id, ok := FromContext(ctx)
	if !ok {
		return ""
	}
	return id.Username
}
