package http

import (
	"net/http"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
)

// auth is an HTTP middleware that enforces bearer token authentication.
//
// It extracts the token from the "Authorization: Bearer <token>" header,
// resolves it to a stored user via [service.AuthService.ResolveCurrentUser]
// and stores that user in the request context under [utils.UserCtxKey].
//
// Requests are rejected with 401 and a "WWW-Authenticate: Bearer" challenge
// when the header is absent or malformed, the token is invalid or expired, or
// the token names a user that no longer exists.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Debug().Err(ErrEmptyAuthorizationHeader).Send()
			writeError(w, r, utils.ErrInvalidAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			writeError(w, r, err)
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.ResolveCurrentUser(ctx, tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUser(ctx, user)))
	})
}
