package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/MKhiriev/go-course-keeper/internal/utils"
	"github.com/MKhiriev/go-course-keeper/internal/validators"
	"github.com/MKhiriev/go-course-keeper/models"
	"github.com/go-chi/chi/v5"
)

var errMalformedBody = errors.New("request body is not valid JSON")

// decodeAndValidate reads the JSON body into dst and checks its schema.
func (h *Handler) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) error {
	if err := utils.DecodeJSON(w, r, dst); err != nil {
		if errors.Is(err, utils.ErrEmptyBody) {
			return err
		}
		return fmt.Errorf("%w: %w", errMalformedBody, err)
	}

	return h.validator.Validate(r.Context(), dst)
}

// idFromPath returns the validated {id} path parameter.
func (h *Handler) idFromPath(r *http.Request) (string, error) {
	param := models.IDParam{ID: chi.URLParam(r, "id")}
	if err := h.validator.Validate(r.Context(), param); err != nil {
		return "", err
	}
	return param.ID, nil
}

func (h *Handler) userListQuery(r *http.Request) (models.ListQuery, error) {
	values := r.URL.Query()

	page, err := pageFromQuery(values)
	if err != nil {
		return models.ListQuery{}, err
	}

	params := models.UserListParams{
		Search:  values.Get("search"),
		OrderBy: values.Get("orderBy"),
		Page:    page,
	}
	if err = h.validator.Validate(r.Context(), params); err != nil {
		return models.ListQuery{}, err
	}

	return models.ListQuery{Search: params.Search, OrderBy: params.OrderBy, Page: params.Page}, nil
}

func (h *Handler) courseListQuery(r *http.Request) (models.ListQuery, error) {
	values := r.URL.Query()

	page, err := pageFromQuery(values)
	if err != nil {
		return models.ListQuery{}, err
	}

	params := models.CourseListParams{
		Search:  values.Get("search"),
		OrderBy: values.Get("orderBy"),
		Page:    page,
	}
	if err = h.validator.Validate(r.Context(), params); err != nil {
		return models.ListQuery{}, err
	}

	return models.ListQuery{Search: params.Search, OrderBy: params.OrderBy, Page: params.Page}, nil
}

// pageFromQuery reads the 1-based page number, defaulting to 1.
func pageFromQuery(values url.Values) (int, error) {
	raw := values.Get("page")
	if raw == "" {
		return 1, nil
	}

	page, err := strconv.Atoi(raw)
	if err != nil {
		return 0, validators.NewValidationError("page", "number", "")
	}
	return page, nil
}
