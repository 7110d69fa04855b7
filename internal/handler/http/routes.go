package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Alianda23/art-exhibit-hub-72/internal/utils"
	"github.com/Alianda23/art-exhibit-hub-72/models"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, h.withCORS, h.withRecovery)

	router.Get("/", h.index)
	router.Get("/static/*", h.serveStatic)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/artworks", h.listArtworks)
		r.Get("/artworks/{id}", h.getArtwork)
		r.Get("/exhibitions", h.listExhibitions)
		r.Get("/exhibitions/{id}", h.getExhibition)
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Post("/admin-login", h.adminLogin)
		r.Post("/contact", h.submitContact)
	})

	// routes for authenticated users
	router.Group(func(r chi.Router) {
		r.Use(h.requireAuth)
		r.Post("/payments", h.initiatePayment)
	})

	// routes for administrators
	router.Group(func(r chi.Router) {
		r.Use(h.requireAuth, h.requireAdmin)
		r.Post("/artworks", h.createArtwork)
		r.Put("/artworks/{id}", h.updateArtwork)
		r.Delete("/artworks/{id}", h.deleteArtwork)
		r.Post("/exhibitions", h.createExhibition)
		r.Put("/exhibitions/{id}", h.updateExhibition)
		r.Delete("/exhibitions/{id}", h.deleteExhibition)
		r.Get("/messages", h.listMessages)
		r.Post("/messages/status", h.updateMessageStatus)
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, models.ErrorResponse{Error: "not found"}, http.StatusNotFound)
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, models.ErrorResponse{Error: "method not allowed"}, http.StatusMethodNotAllowed)
	})

	return router
}
