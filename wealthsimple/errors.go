package wealthsimple

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrAuthentication is returned when login credentials are missing
	// or rejected by the trade service.
	ErrAuthentication = errors.New("authentication failed")

	// ErrNotFound is returned when a requested account has no match.
	ErrNotFound = errors.New("record not found")
)

// APIError is a non-success response from the trade service. The body
// is surfaced as parsed by the service, typically containing an
// "error" field; no recovery is attempted.
type APIError struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int
	// Body is the parsed JSON response body, nil if the body was empty
	// or not JSON.
	Body map[string]any
}

func newAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode}
	// Best effort: keep whatever JSON the service returned.
	var parsed map[string]any
	if err := json.Unmarshal(body, &parsed); err == nil {
		apiErr.Body = parsed
	}
	return apiErr
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if msg := e.Message(); msg != "" {
		return fmt.Sprintf("trade service: %s (status %d)", msg, e.StatusCode)
	}
	return fmt.Sprintf("trade service: request failed with status %d", e.StatusCode)
}

// Message returns the "error" field of the response body, if any.
func (e *APIError) Message() string {
	msg, _ := e.Body["error"].(string)
	return msg
}

// IsAuthentication checks if an error is an authentication error.
func IsAuthentication(err error) bool {
	return errors.Is(err, ErrAuthentication)
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
