package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-course-keeper/internal/logger"
	"github.com/MKhiriev/go-course-keeper/internal/utils"
)

// respond writes body as JSON. Outside production the body is first checked
// against its schema and a violation is answered with 500.
func (h *Handler) respond(w http.ResponseWriter, r *http.Request, body any, status int) {
	log := logger.FromRequest(r)

	if h.settings.ValidateResponses {
		if err := h.validator.Validate(r.Context(), body); err != nil {
			log.Err(err).Str("type", fmt.Sprintf("%T", body)).Msg("response failed schema validation")
			writeError(w, r, errInvalidResponse)
			return
		}
	}

	if _, err := utils.WriteJSON(w, body, status); err != nil {
		log.Err(err).Msg("error writing response")
	}
}
