package resilience

import (
	"errors"
	"fmt"
	"net/http"
)

// RateLimitedError marks a backend response that asked the caller to slow down.
type RateLimitedError struct {
	Backend    string
	StatusCode int
	Err        error
}

func (e *RateLimitedError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: rate limited (status %d)", e.Backend, e.StatusCode)
	}
	return fmt.Sprintf("%s: rate limited (status %d): %v", e.Backend, e.StatusCode, e.Err)
}

func (e *RateLimitedError) Unwrap() error {
	return e.Err
}

// NewRateLimitedError wraps err as a rate-limit signal from backend.
func NewRateLimitedError(backend string, statusCode int, err error) *RateLimitedError {
	return &RateLimitedError{Backend: backend, StatusCode: statusCode, Err: err}
}

// IsRateLimited reports whether err (or any error in its chain) is a RateLimitedError.
func IsRateLimited(err error) bool {
	if err == nil {
		return false
	}
	var rl *RateLimitedError
	return errors.As(err, &rl)
}

// IsRateLimitStatus reports whether an HTTP status code is a rate-limit signal.
func IsRateLimitStatus(statusCode int) bool {
	return statusCode == http.StatusTooManyRequests
}
