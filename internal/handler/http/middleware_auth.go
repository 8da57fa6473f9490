package http

import (
	"net/http"

	"github.com/MKhiriev/shopman/internal/logger"
	"github.com/MKhiriev/shopman/internal/utils"
)

// withAccessToken is an HTTP middleware that reads an optional list access
// token from the "Authorization: Bearer" header.
//
// Whether a list operation needs a token is decided by the services, so the
// middleware never rejects a request. Valid claims are stored in the request
// context via [utils.WithAccess]. A malformed header, an expired token or a
// token signed by someone else leaves the request anonymous, and the
// services answer 403 where the list demands a password.
func (h *Handler) withAccessToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Debug().Err(err).Msg("malformed authorization header ignored")
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		claims, err := h.services.ListService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Debug().Err(err).Msg("access token ignored")
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithAccess(ctx, claims)))
	})
}
