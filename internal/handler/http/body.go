package http

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Alianda23/art-exhibit-hub-72/internal/form"
)

// parseRequestForm reads the request body and decodes it into a field map
// according to the declared Content-Type.
//
// When the client declares a Content-Length the body is read to exactly
// that many bytes; otherwise it is drained in full. A zero-length body
// yields an empty form.
func parseRequestForm(r *http.Request) (*form.Form, error) {
	body, err := readBody(r)
	if err != nil {
		return nil, err
	}

	return form.Parse(r.Header.Get("Content-Type"), body)
}

func readBody(r *http.Request) ([]byte, error) {
	if r.ContentLength == 0 {
		return nil, nil
	}

	if r.ContentLength > 0 {
		body := make([]byte, r.ContentLength)
		if _, err := io.ReadFull(r.Body, body); err != nil {
			return nil, fmt.Errorf("error reading request body: %w", err)
		}
		return body, nil
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading request body: %w", err)
	}
	return body, nil
}

// idParam extracts the {id} URL parameter as a positive int64.
func idParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidResourceID
	}

	return id, nil
}
