package http

import (
	"net/http"

	"github.com/Alianda23/art-exhibit-hub-72/internal/logger"
	"github.com/Alianda23/art-exhibit-hub-72/internal/utils"
	"github.com/Alianda23/art-exhibit-hub-72/models"
)

func (h *Handler) listArtworks(w http.ResponseWriter, r *http.Request) {
	artworks, err := h.services.ArtworkService.ListArtworks(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("artwork listing failed")
		writeError(w, err)
		return
	}

	if artworks == nil {
		artworks = []models.Artwork{}
	}

	utils.WriteJSON(w, artworks, http.StatusOK)
}

func (h *Handler) getArtwork(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := idParam(r)
	if err != nil {
		writeError(w, err)
		return
	}

	artwork, err := h.services.ArtworkService.GetArtwork(r.Context(), id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("artwork lookup failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, artwork, http.StatusOK)
}

func (h *Handler) createArtwork(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	f, err := parseRequestForm(r)
	if err != nil {
		log.Err(err).Msg("error decoding artwork body")
		writeError(w, err)
		return
	}

	created, err := h.services.ArtworkService.CreateArtwork(r.Context(), f)
	if err != nil {
		log.Err(err).Msg("artwork creation failed")
		writeError(w, err)
		return
	}

	log.Debug().Int64("id", created.ID).Str("title", created.Title).Msg("artwork created")

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateArtwork(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := idParam(r)
	if err != nil {
		writeError(w, err)
		return
	}

	f, err := parseRequestForm(r)
	if err != nil {
		log.Err(err).Msg("error decoding artwork body")
		writeError(w, err)
		return
	}

	updated, err := h.services.ArtworkService.UpdateArtwork(r.Context(), id, f)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("artwork update failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteArtwork(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := idParam(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.services.ArtworkService.DeleteArtwork(r.Context(), id); err != nil {
		log.Err(err).Int64("id", id).Msg("artwork deletion failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.StatusResponse{
		Status:  "success",
		Message: "Artwork deleted successfully",
	}, http.StatusOK)
}
