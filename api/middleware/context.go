package middleware

import (
	"context"

	"github.com/ramosvitor/tibiaset-backend/internal/accounts"
)

type contextKey string

const ctxIdentity contextKey = "identity"

// IdentityFromContext returns the authenticated caller seeded by Auth.
func IdentityFromContext(ctx context.Context) (accounts.Identity, bool) {
	if ctx == nil {
		return accounts.Identity{}, false
	}
	identity, ok := ctx.Value(ctxIdentity).(accounts.Identity)
	return identity, ok
}

// WithIdentity injects the authenticated caller into the context.
func WithIdentity(ctx context.Context, identity accounts.Identity) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxIdentity, identity)
}
