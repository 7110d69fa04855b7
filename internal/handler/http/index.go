package http

import (
	"net/http"

	"github.com/Alianda23/art-exhibit-hub-72/internal/utils"
	"github.com/Alianda23/art-exhibit-hub-72/models"
)

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.StatusResponse{
		Status:  "ok",
		Message: "Welcome to the Art Gallery API",
	}, http.StatusOK)
}
