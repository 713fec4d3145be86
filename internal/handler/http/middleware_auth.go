package http

import (
	"net/http"

	"github.com/MKhiriev/rhsm-sync/internal/logger"
	"github.com/MKhiriev/rhsm-sync/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header, validates it
// against the configured sign key and issuer and, on success, stores the
// token subject in the request context under [utils.SubjectCtxKey].
//
// Requests are rejected with HTTP 401 when the header is absent, is not a
// bearer header, or carries a token that fails validation.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteError(w, r, http.StatusUnauthorized, ErrEmptyAuthorizationHeader.Error())
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			utils.WriteError(w, r, http.StatusUnauthorized, ErrInvalidAuthorizationHeader.Error())
			return
		}

		subject, err := utils.ValidateAndParseJWTToken(tokenString, h.tokenSignKey, h.tokenIssuer)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			utils.WriteError(w, r, http.StatusUnauthorized, ErrInvalidToken.Error())
			return
		}

		log.Debug().Str("subject", subject).Msg("request authorized")
		next.ServeHTTP(w, r.WithContext(utils.WithSubject(r.Context(), subject)))
	})
}
