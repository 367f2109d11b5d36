package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-course-keeper/internal/logger"
	"github.com/MKhiriev/go-course-keeper/internal/service"
	"github.com/MKhiriev/go-course-keeper/internal/utils"
	"github.com/MKhiriev/go-course-keeper/models"
)

// requireRole returns a middleware admitting only callers whose role is
// required. It must be chained after [Handler.auth]; without claims in the
// context the request fails with 500.
func (h *Handler) requireRole(required models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := utils.GetClaimsFromContext(r.Context())
			if !ok {
				logger.FromRequest(r).Error().Err(errMissingClaims).Str("required_role", required.String()).Msg("role check without authentication")
				writeError(w, r, errMissingClaims)
				return
			}

			if !required.Allows(claims.Role) {
				writeError(w, r, fmt.Errorf("%w: %s required, caller is %s", service.ErrForbidden, required, claims.Role))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
