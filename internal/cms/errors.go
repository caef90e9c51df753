package cms

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("cms: content not found")
	// ErrMissingCredentials is returned by NewState under the fail policy.
	ErrMissingCredentials = errors.New("cms: service domain and api key are required")
)

// APIError is a non-2xx response from the CMS.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("cms: status %d", e.StatusCode)
	}
	return fmt.Sprintf("cms: status %d: %s", e.StatusCode, e.Message)
}

// Unwrap maps a 404 onto ErrNotFound so callers can use errors.Is.
func (e *APIError) Unwrap() error {
	if e.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	return nil
}
