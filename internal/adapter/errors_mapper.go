package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-course-keeper/models"
	"github.com/go-resty/resty/v2"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusServiceUnavailable:  ErrServiceUnavailable,
	http.StatusInternalServerError: ErrInternalServerError,
}

// APIError is a non-2xx answer of the course API. It matches the sentinel
// for its status under errors.Is; the decoded error body is kept for callers
// that need the failed fields.
type APIError struct {
	Status int
	Body   models.ErrorResponse

	sentinel error
	raw      string
}

func (e *APIError) Error() string {
	detail := e.raw
	if e.Body.Kind != "" {
		detail = e.Body.Kind + ": " + e.Body.Message
	}
	if detail == "" {
		detail = http.StatusText(e.Status)
	}

	if e.sentinel != nil {
		return fmt.Sprintf("%s: %s", e.sentinel, detail)
	}
	return fmt.Sprintf("http %d: %s", e.Status, detail)
}

func (e *APIError) Unwrap() error {
	return e.sentinel
}

// mapHTTPError returns nil for 2xx responses and an *APIError otherwise.
func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	apiErr := &APIError{
		Status:   resp.StatusCode(),
		sentinel: statusErrors[resp.StatusCode()],
	}
	if err := json.Unmarshal(resp.Body(), &apiErr.Body); err != nil {
		apiErr.Body = models.ErrorResponse{}
		apiErr.raw = strings.TrimSpace(string(resp.Body()))
	}

	return apiErr
}
