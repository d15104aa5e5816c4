package auth

import "context"

// Identity is the resolved caller placed in request context by the auth
// middleware. Every entry operation is scoped to UserID.
type Identity struct {
	UserID   int
	Username string
}

type contextKey string

const identityKey = contextKey("identity")

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}
