package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-course-keeper/internal/app"
	"github.com/MKhiriev/go-course-keeper/internal/logger"
	"github.com/MKhiriev/go-course-keeper/internal/service"
	"github.com/MKhiriev/go-course-keeper/internal/store"
	"github.com/MKhiriev/go-course-keeper/internal/utils"
	"github.com/MKhiriev/go-course-keeper/internal/validators"
	"github.com/MKhiriev/go-course-keeper/models"
)

// Error kinds reported in the "kind" field of error bodies.
const (
	KindValidation          = "ValidationError"
	KindUnauthorized        = "Unauthorized"
	KindForbidden           = "Forbidden"
	KindNotFound            = "NotFound"
	KindConstraintViolation = "ConstraintViolation"
	KindStoreUnavailable    = "StoreUnavailable"
	KindInternal            = "Internal"
)

type errorStatus struct {
	kind   string
	status int
	// message is shown to the client.
	message string
}

// errorStatusMap is consulted in order; the first target matching err wins.
// Specific errors therefore precede the ones they wrap.
var errorStatusMap = []struct {
	target error
	errorStatus
}{
	{validators.ErrValidation, errorStatus{KindValidation, http.StatusBadRequest, app.MsgValidationFailed}},
	{service.ErrInvalidDataProvided, errorStatus{KindValidation, http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{utils.ErrEmptyBody, errorStatus{KindValidation, http.StatusBadRequest, app.MsgEmptyBody}},
	{errMalformedBody, errorStatus{KindValidation, http.StatusBadRequest, app.MsgMalformedBody}},

	{service.ErrWrongCredentials, errorStatus{KindUnauthorized, http.StatusUnauthorized, app.MsgInvalidEmailPassword}},
	{service.ErrTokenIsExpired, errorStatus{KindUnauthorized, http.StatusUnauthorized, app.MsgTokenIsExpired}},
	{service.ErrTokenIsExpiredOrInvalid, errorStatus{KindUnauthorized, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid}},
	{ErrEmptyAuthorizationHeader, errorStatus{KindUnauthorized, http.StatusUnauthorized, app.MsgMissingToken}},
	{ErrInvalidAuthorizationHeader, errorStatus{KindUnauthorized, http.StatusUnauthorized, app.MsgMissingToken}},
	{ErrEmptyToken, errorStatus{KindUnauthorized, http.StatusUnauthorized, app.MsgMissingToken}},

	{service.ErrForbidden, errorStatus{KindForbidden, http.StatusForbidden, app.MsgAccessDenied}},

	{store.ErrNotFound, errorStatus{KindNotFound, http.StatusNotFound, app.MsgNotFound}},

	{store.ErrEmailAlreadyExists, errorStatus{KindConstraintViolation, http.StatusConflict, app.MsgEmailAlreadyExists}},
	{store.ErrCourseTitleAlreadyExists, errorStatus{KindConstraintViolation, http.StatusConflict, app.MsgCourseTitleAlreadyExists}},
	{store.ErrConstraintViolation, errorStatus{KindConstraintViolation, http.StatusConflict, app.MsgConflict}},

	{store.ErrStoreUnavailable, errorStatus{KindStoreUnavailable, http.StatusServiceUnavailable, app.MsgServiceUnavailable}},
}

var internalError = errorStatus{KindInternal, http.StatusInternalServerError, app.MsgInternalServerError}

// statusFromError classifies err into an error kind, HTTP status and client message.
func statusFromError(err error) errorStatus {
	for _, entry := range errorStatusMap {
		if errors.Is(err, entry.target) {
			return entry.errorStatus
		}
	}
	return internalError
}

// writeError answers the request with the JSON error body for err.
// Server-side failures are logged with the full error; the client only sees
// the kind and a fixed message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	mapped := statusFromError(err)

	if mapped.status >= http.StatusInternalServerError {
		log.Err(err).Str("kind", mapped.kind).Int("status", mapped.status).Msg("request failed")
	} else {
		log.Debug().Err(err).Str("kind", mapped.kind).Int("status", mapped.status).Msg("request rejected")
	}

	body := models.ErrorResponse{Kind: mapped.kind, Message: mapped.message}

	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		body.Details = validationErr.Details
	}

	if _, writeErr := utils.WriteJSON(w, body, mapped.status); writeErr != nil {
		log.Err(writeErr).Msg("error writing error response")
	}
}
