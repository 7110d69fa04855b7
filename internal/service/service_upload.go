package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Alianda23/art-exhibit-hub-72/internal/config"
	"github.com/Alianda23/art-exhibit-hub-72/internal/logger"
)

// uploadService writes image payloads into the "uploads" subdirectory of
// the static root. Stored names are {timestamp}_artwork{ext} so repeated
// uploads never collide within a second and sort chronologically.
type uploadService struct {
	staticDir string

	// now is injectable for deterministic file names in tests.
	now func() time.Time

	logger *logger.Logger
}

// NewUploadService constructs an UploadService rooted at cfg.StaticDir.
func NewUploadService(cfg config.Files, logger *logger.Logger) UploadService {
	return &uploadService{
		staticDir: cfg.StaticDir,
		now:       time.Now,
		logger:    logger,
	}
}

// SaveUpload persists raw file bytes under the uploads directory and
// returns the public URL ("/static/uploads/{name}"). The extension is
// taken from the client-supplied filename, defaulting to ".jpg".
func (u *uploadService) SaveUpload(ctx context.Context, filename string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		ext = ".jpg"
	}

	return u.write(ctx, ext, data)
}

// SaveDataURI decodes a base64 "data:image/...;base64,..." URI and
// persists the decoded bytes like SaveUpload. Returns ErrInvalidDataURI
// when the URI does not follow that shape or the payload is not valid
// base64.
func (u *uploadService) SaveDataURI(ctx context.Context, uri string) (string, error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return "", ErrInvalidDataURI
	}

	meta, payload, ok := strings.Cut(rest, ",")
	if !ok || !strings.HasSuffix(meta, ";base64") {
		return "", ErrInvalidDataURI
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidDataURI, err)
	}

	return u.write(ctx, extFromMediaType(strings.TrimSuffix(meta, ";base64")), data)
}

func (u *uploadService) write(ctx context.Context, ext string, data []byte) (string, error) {
	log := logger.FromContext(ctx)

	dir := filepath.Join(u.staticDir, "uploads")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("error creating uploads directory: %w", err)
	}

	name := u.now().Format("20060102150405") + "_artwork" + ext
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		log.Err(err).Str("name", name).Msg("error writing uploaded file")
		return "", fmt.Errorf("error writing uploaded file: %w", err)
	}

	log.Debug().Str("name", name).Int("size", len(data)).Msg("uploaded file stored")

	return "/static/uploads/" + name, nil
}

// extFromMediaType maps a data-URI media type to a file extension.
func extFromMediaType(mediaType string) string {
	switch mediaType {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	default:
		return ".jpg"
	}
}
