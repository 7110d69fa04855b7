package http

import (
	"net/http"

	"github.com/Alianda23/art-exhibit-hub-72/internal/logger"
	"github.com/Alianda23/art-exhibit-hub-72/internal/utils"
	"github.com/Alianda23/art-exhibit-hub-72/models"
)

func (h *Handler) submitContact(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	f, err := parseRequestForm(r)
	if err != nil {
		log.Err(err).Msg("error decoding contact body")
		writeError(w, err)
		return
	}

	created, err := h.services.ContactService.SubmitMessage(r.Context(), f)
	if err != nil {
		log.Err(err).Msg("contact submission failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.StatusResponse{
		Status:  "success",
		Message: "Message sent successfully",
		ID:      created.ID,
	}, http.StatusCreated)
}

func (h *Handler) listMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.services.ContactService.ListMessages(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("message listing failed")
		writeError(w, err)
		return
	}

	if messages == nil {
		messages = []models.ContactMessage{}
	}

	utils.WriteJSON(w, messages, http.StatusOK)
}

func (h *Handler) updateMessageStatus(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	f, err := parseRequestForm(r)
	if err != nil {
		log.Err(err).Msg("error decoding status body")
		writeError(w, err)
		return
	}

	if err := h.services.ContactService.UpdateMessageStatus(r.Context(), f); err != nil {
		log.Err(err).Msg("message status update failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.StatusResponse{
		Status:  "success",
		Message: "Message status updated",
	}, http.StatusOK)
}
