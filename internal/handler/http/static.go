package http

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Alianda23/art-exhibit-hub-72/internal/logger"
	"github.com/Alianda23/art-exhibit-hub-72/internal/utils"
	"github.com/Alianda23/art-exhibit-hub-72/models"
)

// contentTypeByExt maps the known image extensions to their media types;
// anything else is served as an opaque byte stream.
var contentTypeByExt = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
}

// serveStatic serves a file from the static root. The path relative to
// /static/ is cleaned and confined to the root; anything that escapes it
// or does not exist answers 404.
func (h *Handler) serveStatic(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	rel := filepath.Clean(chi.URLParam(r, "*"))
	if rel == "." || rel == string(filepath.Separator) || strings.Contains(rel, "..") {
		writeStaticNotFound(w)
		return
	}

	data, err := os.ReadFile(filepath.Join(h.staticDir, rel))
	if err != nil {
		log.Err(err).Str("path", rel).Msg("static file not served")
		writeStaticNotFound(w)
		return
	}

	contentType, ok := contentTypeByExt[strings.ToLower(filepath.Ext(rel))]
	if !ok {
		contentType = "application/octet-stream"
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func writeStaticNotFound(w http.ResponseWriter) {
	utils.WriteJSON(w, models.ErrorResponse{Error: "file not found"}, http.StatusNotFound)
}
