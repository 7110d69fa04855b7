package http

import (
	"context"
	"net/http"

	"github.com/Alianda23/art-exhibit-hub-72/internal/form"
	"github.com/Alianda23/art-exhibit-hub-72/internal/logger"
	"github.com/Alianda23/art-exhibit-hub-72/internal/utils"
	"github.com/Alianda23/art-exhibit-hub-72/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	f, err := parseRequestForm(r)
	if err != nil {
		log.Err(err).Msg("error decoding registration body")
		writeError(w, err)
		return
	}

	registeredUser, err := h.services.AuthService.Register(ctx, f)
	if err != nil {
		log.Err(err).Msg("user registration failed")
		writeError(w, err)
		return
	}

	log.Debug().Int64("id", registeredUser.ID).Str("email", registeredUser.Email).Msg("user registered")

	utils.WriteJSON(w, models.StatusResponse{
		Status:  "success",
		Message: "User registered successfully",
		ID:      registeredUser.ID,
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	h.handleLogin(w, r, h.services.AuthService.Login)
}

func (h *Handler) adminLogin(w http.ResponseWriter, r *http.Request) {
	h.handleLogin(w, r, h.services.AuthService.AdminLogin)
}

// handleLogin runs the shared login flow: decode body, authenticate via
// the given check, issue a token, and return the login envelope.
func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request, check func(context.Context, *form.Form) (models.User, error)) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	f, err := parseRequestForm(r)
	if err != nil {
		log.Err(err).Msg("error decoding login body")
		writeError(w, err)
		return
	}

	foundUser, err := check(ctx, f)
	if err != nil {
		log.Err(err).Msg("login failed")
		writeError(w, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeError(w, err)
		return
	}

	log.Debug().Int64("id", foundUser.ID).Bool("is_admin", foundUser.IsAdmin).Msg("user logged in")

	utils.WriteJSON(w, models.LoginResponse{
		Status:  "success",
		Message: "Login successful",
		Token:   token.SignedString,
		User:    foundUser,
	}, http.StatusOK)
}
