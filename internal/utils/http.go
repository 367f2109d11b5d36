package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// MaxRequestBodySize caps JSON request bodies accepted by [DecodeJSON].
const MaxRequestBodySize = 1 << 20

// ErrEmptyBody is returned by [DecodeJSON] when the request has no body.
var ErrEmptyBody = errors.New("request body is empty")

// WriteJSON serializes the given data to JSON and writes it to the HTTP response
// with the "Content-Type: application/json" header and the given status code.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
//	WriteJSON(w, models.CreateCourseResponse{CourseID: id}, http.StatusCreated)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// DecodeJSON reads a single JSON document from the request body into dst.
// Bodies larger than [MaxRequestBodySize] are rejected.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	if r.Body == nil || r.Body == http.NoBody {
		return ErrEmptyBody
	}

	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxRequestBodySize))
	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return fmt.Errorf("error decoding JSON body: %w", err)
	}

	if decoder.More() {
		return errors.New("error decoding JSON body: unexpected data after the document")
	}

	return nil
}
