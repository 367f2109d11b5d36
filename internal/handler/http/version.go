package http

import (
	"net/http"

	"github.com/MKhiriev/go-course-keeper/models"
)

const (
	healthStatusOK          = "ok"
	healthStatusUnavailable = "unavailable"
)

// getServerVersion godoc
// @Summary     Build information
// @Tags        service
// @Produce     json
// @Success     200 {object} models.VersionResponse
// @Router      /version [get]
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	buildInfo := h.services.AppInfoService.GetAppVersion(r.Context())

	h.respond(w, r, buildInfo.Response(), http.StatusOK)
}

// health godoc
// @Summary     Liveness and database reachability
// @Tags        service
// @Produce     json
// @Success     200 {object} models.HealthResponse
// @Failure     503 {object} models.HealthResponse
// @Router      /health [get]
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if err := h.services.AppInfoService.CheckHealth(r.Context()); err != nil {
		h.respond(w, r, models.HealthResponse{Status: healthStatusUnavailable}, http.StatusServiceUnavailable)
		return
	}

	h.respond(w, r, models.HealthResponse{Status: healthStatusOK}, http.StatusOK)
}
