package middleware

import (
	"net/http"

	"github.com/curricuforge/curricuforge/internal/identity"
	"github.com/curricuforge/curricuforge/pkg/logger"
)

// ActorContext injects the session's current user into the request
// context. There is no token verification here: the workspace trusts the
// declared identity, and services treat a missing actor as
// unauthenticated.
func ActorContext(session *identity.Session) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if user := session.Current(); user != nil {
				ctx = identity.ContextWithUser(ctx, user)
				ctx = logger.With(ctx, "actor", user.Name, "role", user.Role)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
