package http

import (
	"net/http"

	"github.com/MKhiriev/go-course-keeper/internal/logger"
	"github.com/MKhiriev/go-course-keeper/models"
)

// login godoc
// @Summary     Log in
// @Description Verifies email and password and issues a bearer token.
// @Tags        sessions
// @Accept      json
// @Produce     json
// @Param       request body models.LoginRequest true "Credentials"
// @Success     200 {object} models.LoginResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     503 {object} models.ErrorResponse
// @Router      /sessions [post]
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.LoginRequest
	if err := h.decodeAndValidate(w, r, &credentials); err != nil {
		writeError(w, r, err)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("id", foundUser.ID).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeError(w, r, err)
		return
	}

	h.respond(w, r, models.LoginResponse{Token: token.SignedString}, http.StatusOK)
}
