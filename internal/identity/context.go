package identity

import "context"

type ctxKey string

const userKey ctxKey = "actor"

// ContextWithUser returns a context carrying the acting user.
func ContextWithUser(ctx context.Context, u *User) context.Context {
	return context.WithValue(ctx, userKey, u)
}

// UserFromContext returns the acting user stored in context.
func UserFromContext(ctx context.Context) (*User, bool) {
	u, ok := ctx.Value(userKey).(*User)
	return u, ok && u != nil
}
