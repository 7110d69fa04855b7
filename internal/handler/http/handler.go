// Package http implements the HTTP transport layer of the gallery API:
// routing, middleware, request-body decoding, and the mapping of service
// errors to response status codes. Requests are decoded into a uniform
// field map before being forwarded to the service layer.
package http

import (
	"github.com/Alianda23/art-exhibit-hub-72/internal/logger"
	"github.com/Alianda23/art-exhibit-hub-72/internal/service"
)

type Handler struct {
	services *service.Services

	// staticDir is the filesystem root served under /static/**.
	staticDir string

	logger *logger.Logger
}

func NewHandler(services *service.Services, staticDir string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		staticDir: staticDir,
		logger:    logger,
	}
}
