package http

import (
	"net/http"

	"github.com/Alianda23/art-exhibit-hub-72/internal/logger"
	"github.com/Alianda23/art-exhibit-hub-72/internal/utils"
)

func (h *Handler) initiatePayment(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	f, err := parseRequestForm(r)
	if err != nil {
		log.Err(err).Msg("error decoding payment body")
		writeError(w, err)
		return
	}

	resp, err := h.services.PaymentService.InitiatePayment(r.Context(), f)
	if err != nil {
		log.Err(err).Msg("payment initiation failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}
