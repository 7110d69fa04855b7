package http

import (
	"net/http"

	"github.com/Alianda23/art-exhibit-hub-72/internal/logger"
	"github.com/Alianda23/art-exhibit-hub-72/internal/utils"
	"github.com/Alianda23/art-exhibit-hub-72/models"
)

func (h *Handler) listExhibitions(w http.ResponseWriter, r *http.Request) {
	exhibitions, err := h.services.ExhibitionService.ListExhibitions(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("exhibition listing failed")
		writeError(w, err)
		return
	}

	if exhibitions == nil {
		exhibitions = []models.Exhibition{}
	}

	utils.WriteJSON(w, exhibitions, http.StatusOK)
}

func (h *Handler) getExhibition(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := idParam(r)
	if err != nil {
		writeError(w, err)
		return
	}

	exhibition, err := h.services.ExhibitionService.GetExhibition(r.Context(), id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("exhibition lookup failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, exhibition, http.StatusOK)
}

func (h *Handler) createExhibition(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	f, err := parseRequestForm(r)
	if err != nil {
		log.Err(err).Msg("error decoding exhibition body")
		writeError(w, err)
		return
	}

	created, err := h.services.ExhibitionService.CreateExhibition(r.Context(), f)
	if err != nil {
		log.Err(err).Msg("exhibition creation failed")
		writeError(w, err)
		return
	}

	log.Debug().Int64("id", created.ID).Str("title", created.Title).Msg("exhibition created")

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateExhibition(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := idParam(r)
	if err != nil {
		writeError(w, err)
		return
	}

	f, err := parseRequestForm(r)
	if err != nil {
		log.Err(err).Msg("error decoding exhibition body")
		writeError(w, err)
		return
	}

	updated, err := h.services.ExhibitionService.UpdateExhibition(r.Context(), id, f)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("exhibition update failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteExhibition(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := idParam(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.services.ExhibitionService.DeleteExhibition(r.Context(), id); err != nil {
		log.Err(err).Int64("id", id).Msg("exhibition deletion failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.StatusResponse{
		Status:  "success",
		Message: "Exhibition deleted successfully",
	}, http.StatusOK)
}
