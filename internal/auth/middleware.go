package auth

import (
	"net/http"

	"github.com/noren-ops/noren/internal/shared"
)

// RequireAuth gates the dashboard surface. Unauthenticated requests
// are redirected to the login route.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := shared.SessionFromContext(r.Context())
		if sess == nil || sess.User() == "" {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}
