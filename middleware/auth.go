package middleware

import (
	"net/http"
	"net/url"

	"github.com/footyhub/footyhub/userctx"
)

// RequireAuth ensures the request carries an identity.
// If not, redirects to /login and passes the intended destination along.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if userctx.GetUser(r.Context()) == nil {
			redirectToLogin(w, r)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireAdmin ensures the request carries an admin identity.
// Anonymous requests go to /login; non-admins get the forbidden handler.
func RequireAdmin(forbidden http.Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := userctx.GetUser(r.Context())
			if user == nil {
				redirectToLogin(w, r)
				return
			}

			if !user.IsAdmin {
				forbidden.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func redirectToLogin(w http.ResponseWriter, r *http.Request) {
	target := "/login"
	if r.Method == http.MethodGet && r.URL.Path != "/" {
		target += "?" + url.Values{"next": {r.URL.RequestURI()}}.Encode()
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
