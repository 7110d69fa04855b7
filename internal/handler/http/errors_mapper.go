package http

import (
	"errors"
	"net/http"

	"github.com/Alianda23/art-exhibit-hub-72/internal/adapter"
	"github.com/Alianda23/art-exhibit-hub-72/internal/form"
	"github.com/Alianda23/art-exhibit-hub-72/internal/service"
	"github.com/Alianda23/art-exhibit-hub-72/internal/store"
	"github.com/Alianda23/art-exhibit-hub-72/internal/utils"
	"github.com/Alianda23/art-exhibit-hub-72/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidStatus:  http.StatusBadRequest,
	service.ErrInvalidNumber:  http.StatusBadRequest,
	service.ErrInvalidDataURI: http.StatusBadRequest,
	service.ErrWrongPassword:  http.StatusUnauthorized,
	// admin-login rejects non-admin accounts as a credential failure, not
	// a privilege one
	service.ErrNotAdmin: http.StatusUnauthorized,

	form.ErrInvalidJSON:     http.StatusBadRequest,
	form.ErrMissingBoundary: http.StatusBadRequest,
	form.ErrNoFileUploaded:  http.StatusBadRequest,

	store.ErrEmailAlreadyExists: http.StatusBadRequest,
	store.ErrNoUserWasFound:     http.StatusUnauthorized,
	store.ErrArtworkNotFound:    http.StatusNotFound,
	store.ErrExhibitionNotFound: http.StatusNotFound,
	store.ErrMessageNotFound:    http.StatusNotFound,

	adapter.ErrPaymentUnauthorized: http.StatusBadGateway,
	adapter.ErrPaymentRejected:     http.StatusBadGateway,

	ErrInvalidResourceID: http.StatusBadRequest,
}

// statusFromError maps a service or store error chain to an HTTP status
// code. Validation errors map to 400; anything unrecognized is an internal
// error.
func statusFromError(err error) int {
	var vErr *service.ValidationError
	if errors.As(err, &vErr) {
		return http.StatusBadRequest
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError sends the standard {"error": msg} envelope for err. Internal
// errors are reported generically so details never leak to the client.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)

	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = http.StatusText(http.StatusInternalServerError)
	}

	utils.WriteJSON(w, models.ErrorResponse{Error: msg}, status)
}
