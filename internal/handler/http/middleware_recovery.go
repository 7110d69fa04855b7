package http

import (
	"net/http"

	"github.com/Alianda23/art-exhibit-hub-72/internal/logger"
	"github.com/Alianda23/art-exhibit-hub-72/internal/utils"
	"github.com/Alianda23/art-exhibit-hub-72/models"
)

// withRecovery converts a downstream panic into a logged JSON 500 instead
// of tearing down the connection. Nothing about the panic is exposed to
// the client.
func (h *Handler) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				logger.FromRequest(r).Error().
					Any("panic", rec).
					Str("uri", r.RequestURI).
					Msg("panic recovered in handler")

				utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
