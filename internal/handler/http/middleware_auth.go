package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/press-pay/internal/logger"
	"github.com/MKhiriev/press-pay/internal/service"
	"github.com/MKhiriev/press-pay/internal/utils"
	"github.com/MKhiriev/press-pay/models"
)

const bearerPrefix = "Bearer "

// auth is an HTTP middleware that enforces bearer-token authentication.
//
// It reads the "Authorization" header, requires the "Bearer " prefix,
// validates the token via [service.AuthService.ParseToken] and stores the
// token's identity in the request context with [utils.WithIdentity].
// Every rejection is a 401 with the "unauthorized" code.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Debug().Err(ErrEmptyAuthorizationHeader).Send()
			respondError(w, r, ErrEmptyAuthorizationHeader, "request rejected")
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			respondError(w, r, err, "request rejected")
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			respondError(w, r, service.ErrTokenIsExpiredOrInvalid, "error occurred during parsing token")
			return
		}

		userLogger := log.With().Int64("user_id", token.Identity.ID).Logger()
		ctx = userLogger.WithContext(utils.WithIdentity(ctx, token.Identity))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// vendorOnly rejects callers whose identity is not a vendor with 403.
// It must run after auth.
func (h *Handler) vendorOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := utils.GetIdentityFromContext(r.Context())
		if !ok {
			respondError(w, r, ErrNoIdentity, "vendor check without identity")
			return
		}

		if identity.Role != models.RoleVendor {
			respondError(w, r, service.ErrForbidden, "vendor role required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// getTokenFromAuthHeader extracts the token from a raw
// "Authorization: Bearer <token>" header value. The scheme is matched
// case-sensitively and surrounding whitespace of the token is trimmed.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	tokenString, found := strings.CutPrefix(authHeader, bearerPrefix)
	if !found {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
