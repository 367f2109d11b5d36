package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-course-keeper/internal/logger"
	"github.com/MKhiriev/go-course-keeper/internal/store"
	"github.com/MKhiriev/go-course-keeper/models"
)

// createUser godoc
// @Summary     Sign up
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       request body models.CreateUserRequest true "New user"
// @Success     201 {object} models.CreateUserResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     409 {object} models.ErrorResponse
// @Failure     503 {object} models.ErrorResponse
// @Router      /users [post]
func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var request models.CreateUserRequest
	if err := h.decodeAndValidate(w, r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.CreateUser(r.Context(), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("id", user.ID).Str("role", user.Role.String()).Msg("user created")

	h.respond(w, r, models.CreateUserResponse{UserID: user.ID}, http.StatusCreated)
}

// listUsers godoc
// @Summary     List users
// @Tags        users
// @Produce     json
// @Param       search  query string false "Case-insensitive name filter"
// @Param       orderBy query string false "Sort column" Enums(id, name)
// @Param       page    query int    false "1-based page number" minimum(1) maximum(1000000)
// @Success     200 {object} models.UserListResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     403 {object} models.ErrorResponse
// @Failure     503 {object} models.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users [get]
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	query, err := h.userListQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	users, total, err := h.services.UserService.ListUsers(r.Context(), query)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if users == nil {
		users = []models.User{}
	}

	h.respond(w, r, models.UserListResponse{Users: users, Total: total}, http.StatusOK)
}

// getUser godoc
// @Summary     Get a user
// @Tags        users
// @Produce     json
// @Param       id path string true "User id" format(uuid)
// @Success     200 {object} models.UserResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     404
// @Security    ApiKeyAuth
// @Router      /users/{id} [get]
func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, err := h.idFromPath(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.GetUser(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.respond(w, r, models.UserResponse{User: user}, http.StatusOK)
}
