package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/Alianda23/art-exhibit-hub-72/internal/logger"
	"github.com/Alianda23/art-exhibit-hub-72/internal/utils"
	"github.com/Alianda23/art-exhibit-hub-72/models"
)

// requireAuth is an HTTP middleware that enforces token-based
// authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer
// token, verifies it via the auth service, and on success stores the
// verified token in the request context under [utils.TokenCtxKey] before
// delegating to the next handler.
//
// Every failure — absent header, wrong scheme, malformed token, bad
// signature, expired token — is rejected with the same generic 401
// response so that the reason cannot be probed from outside. The specific
// cause is still logged.
func (h *Handler) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := getTokenFromAuthHeader(r.Header.Get("Authorization"))
		if err != nil {
			log.Err(err).Msg("authorization header rejected")
			writeUnauthorized(w)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("token rejected")
			writeUnauthorized(w)
			return
		}

		// Downstream handlers read the verified identity from the context
		// instead of re-parsing the token.
		ctx = context.WithValue(ctx, utils.TokenCtxKey, token)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireAdmin allows the request through only when the verified token in
// the context carries admin privileges. It must be chained after
// requireAuth; a missing token counts as an authentication failure (401),
// an authenticated non-admin is a privilege failure (403).
func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		token, ok := utils.GetTokenFromContext(r.Context())
		if !ok {
			log.Error().Msg("admin route reached without a verified token")
			writeUnauthorized(w)
			return
		}

		if !token.IsAdmin {
			log.Error().Int64("user_id", token.UserID).Msg("admin privileges required")
			utils.WriteJSON(w, models.ErrorResponse{Error: "admin privileges required"}, http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func writeUnauthorized(w http.ResponseWriter) {
	utils.WriteJSON(w, models.ErrorResponse{Error: "invalid or missing token"}, http.StatusUnauthorized)
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value.
//
// The header must follow "Bearer <token>"; the scheme keyword is matched
// case-insensitively. Returns:
//   - [ErrEmptyAuthorizationHeader] — no header value at all.
//   - [ErrInvalidAuthorizationHeader] — value is not two space-separated
//     parts with a Bearer scheme.
//   - [ErrEmptyToken] — Bearer scheme present but the token is empty.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	parts := strings.Fields(authHeader)
	if len(parts) < 2 || !strings.EqualFold(parts[0], "Bearer") {
		if len(parts) == 1 && strings.EqualFold(parts[0], "Bearer") {
			return "", ErrEmptyToken
		}
		return "", ErrInvalidAuthorizationHeader
	}

	return parts[1], nil
}
