package middleware

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/footyhub/footyhub/services"
	"github.com/footyhub/footyhub/userctx"
)

// ResolveIdentity stores the client address and the user bound to it (if any) in the request context
func ResolveIdentity(identity services.IdentityService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			address := ClientAddress(r)
			ctx := userctx.SetAddress(r.Context(), address)

			user, err := identity.Resolve(ctx, address)
			if err != nil {
				log.Error().
					Err(err).
					Str("address", address).
					Str("request_id", GetRequestID(ctx)).
					Msg("failed to resolve identity")
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}

			if user != nil {
				ctx = userctx.SetUser(ctx, user)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
