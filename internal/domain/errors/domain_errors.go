package errors

import (
	"errors"
	"fmt"
)

var (
	// Session errors
	ErrSessionRequired = errors.New("no session token held")
	ErrSessionExpired  = errors.New("session expired")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials or unauthorized account")

	// Override workflow errors
	ErrSubmissionInFlight = errors.New("another submission is already in flight")
	ErrNothingCommitted   = errors.New("override rejected, nothing committed")

	// Upstream errors
	ErrUpstreamUnavailable = errors.New("analytics backend unavailable")
	ErrMalformedPayload    = errors.New("malformed payload from analytics backend")
)

// UpstreamError carries the status and raw body of a failed backend call so
// the operator-facing message can quote the server verbatim.
type UpstreamError struct {
	Status int
	Body   []byte
	Err    error
}

func (e *UpstreamError) Error() string {
	if len(e.Body) > 0 {
		return fmt.Sprintf("backend returned status %d: %s", e.Status, string(e.Body))
	}
	if e.Err != nil {
		return fmt.Sprintf("backend request failed: %v", e.Err)
	}
	return fmt.Sprintf("backend returned status %d", e.Status)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// IsUnauthorized reports whether the backend rejected the session
func (e *UpstreamError) IsUnauthorized() bool {
	return e.Status == 401
}
