package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-note-keeper/models"
)

var (
	// ErrEmptyBody is returned by DecodeJSON when the request carries no body.
	ErrEmptyBody = errors.New("request body is empty")
	// ErrBodyTooLarge is returned when reading the body hits the limit set
	// with http.MaxBytesReader.
	ErrBodyTooLarge = errors.New("request body too large")
)

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and writes
// the provided HTTP status code before sending the response body.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Parameters:
//
//	w          - the HTTP response writer to write the response to
//	data       - any value to be serialized as JSON (struct, map, slice, nil, etc.)
//	statusCode - HTTP status code to set in the response (e.g. http.StatusOK)
//
// Returns:
//
//	int   - number of bytes written to the response body
//	error - non-nil if JSON marshaling fails
//
// Example usage:
//
//	WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
//	WriteJSON(w, map[string]string{"error": "not found"}, http.StatusNotFound)
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

// WriteError writes a JSON error body of the form {"detail": "..."} with
// the given status code.
func WriteError(w http.ResponseWriter, detail string, statusCode int) {
	WriteJSON(w, models.ErrorResponse{Detail: detail}, statusCode)
}

// WriteMessage writes a JSON body of the form {"message": "..."}.
func WriteMessage(w http.ResponseWriter, message string, statusCode int) {
	WriteJSON(w, models.MessageResponse{Message: message}, statusCode)
}

// DecodeJSON decodes the request body into v. Trailing data after the first
// JSON value is rejected.
func DecodeJSON(r *http.Request, v any) error {
	if r.Body == nil || r.Body == http.NoBody {
		return ErrEmptyBody
	}

	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return fmt.Errorf("error decoding request body: %w", bodyError(err))
	}

	if decoder.More() {
		return errors.New("error decoding request body: unexpected trailing data")
	}

	return nil
}

// ParseForm is r.ParseForm with an oversized body reported as ErrBodyTooLarge.
func ParseForm(r *http.Request) error {
	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("error parsing form: %w", bodyError(err))
	}
	return nil
}

func bodyError(err error) error {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return fmt.Errorf("%w: %w", ErrBodyTooLarge, err)
	}
	return err
}
