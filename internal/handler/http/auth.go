package http

import (
	"net/http"

	"github.com/MKhiriev/press-pay/internal/logger"
	"github.com/MKhiriev/press-pay/internal/utils"
	"github.com/MKhiriev/press-pay/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if err := decodeJSON(r, &request); err != nil {
		respondError(w, r, err, "invalid JSON was passed")
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, request)
	if err != nil {
		respondError(w, r, err, "user registration failed")
		return
	}

	log.Debug().Int64("id", registeredUser.ID).Msg("user successfully registered")
	h.writeToken(w, r, registeredUser, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := decodeJSON(r, &request); err != nil {
		respondError(w, r, err, "invalid JSON was passed")
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, request)
	if err != nil {
		respondError(w, r, err, "user login failed")
		return
	}

	log.Debug().Int64("id", foundUser.ID).Msg("user successfully logged in")
	h.writeToken(w, r, foundUser, http.StatusOK)
}

// writeToken issues a token for user and writes the auth envelope.
func (h *Handler) writeToken(w http.ResponseWriter, r *http.Request, user models.User, status int) {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		respondError(w, r, err, "creation of token failed")
		return
	}

	_, _ = utils.WriteJSON(w, models.AuthResponse{
		OK:    true,
		Token: token.SignedString,
		Role:  user.Role,
		Name:  user.Name,
	}, status)
}

// me echoes the identity carried by the caller's token.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		respondError(w, r, ErrNoIdentity, "identity missing")
		return
	}

	_, _ = utils.WriteJSON(w, models.IdentityResponse{OK: true, User: identity}, http.StatusOK)
}
