package middleware

import (
	"net/http"

	"github.com/dukerupert/gazette/internal/auth"
	"github.com/dukerupert/gazette/internal/model"
	"github.com/dukerupert/gazette/internal/session"
	"github.com/dukerupert/gazette/internal/store"
)

const sessionCookieName = "gazette_session"

// RequirePermission returns middleware that admits a request only when its
// session cookie resolves to an account holding exactly the required
// permission. Admitted requests reach the wrapped handler with the identity
// in the request context and the response passed through untouched.
//
// Everything else (no cookie, dead session, unknown account, wrong role) is
// answered by the reject handler. The same page for every reason: the guard
// does not reveal which check failed.
func RequirePermission(sessions *session.Store, accounts *store.AccountStore, required model.Permission, reject http.Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(sessionCookieName)
			if err != nil || cookie.Value == "" {
				reject.ServeHTTP(w, r)
				return
			}

			username, ok := sessions.TouchAndValidate(cookie.Value)
			if !ok {
				reject.ServeHTTP(w, r)
				return
			}

			perm, ok := accounts.Permission(username)
			if !ok || perm != required {
				reject.ServeHTTP(w, r)
				return
			}

			ctx := auth.WithIdentity(r.Context(), auth.Identity{Username: username, Permission: perm})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
