package types

import (
	"errors"
	"time"
)

const (
	// DefaultBaseURL is the default YNAB API base URL
	DefaultBaseURL = "https://api.ynab.com/v1"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second

	// UserAgent is the user agent string
	UserAgent = "ynab-go/1.0.0"
)

// Common errors
var (
	// ErrUnauthorized is returned when the API key is missing or invalid
	ErrUnauthorized = errors.New("unauthorized: invalid or missing API key")

	// ErrForbidden is returned when the API key lacks access to the resource
	ErrForbidden = errors.New("access forbidden")

	// ErrNotFound is returned when resource not found
	ErrNotFound = errors.New("resource not found")

	// ErrRateLimited is returned when rate limited
	ErrRateLimited = errors.New("rate limited")

	// ErrTimeout is returned on timeout
	ErrTimeout = errors.New("request timeout")

	// ErrServerError is returned for server errors
	ErrServerError = errors.New("server error")
)
