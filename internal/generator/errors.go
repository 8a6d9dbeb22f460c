package generator

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strings"
	"syscall"

	"github.com/muurk/wordfinder/internal/puzzle"
)

// ErrorType represents the category of error that occurred
type ErrorType int

const (
	// ErrTypeNetwork indicates a network-level error
	ErrTypeNetwork ErrorType = iota
	// ErrTypeTimeout indicates a request timeout
	ErrTypeTimeout
	// ErrTypeConnectionRefused indicates nothing is listening on the endpoint
	ErrTypeConnectionRefused
	// ErrTypeDNS indicates a DNS resolution failure
	ErrTypeDNS
	// ErrTypeHTTP indicates a non-2xx status code
	ErrTypeHTTP
	// ErrTypeParse indicates a malformed response body
	ErrTypeParse
	// ErrTypeCanceled indicates the caller canceled the request
	ErrTypeCanceled
	// ErrTypeUnknown indicates an unknown or unexpected error
	ErrTypeUnknown
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeNetwork:
		return "Network Error"
	case ErrTypeTimeout:
		return "Timeout"
	case ErrTypeConnectionRefused:
		return "Connection Refused"
	case ErrTypeDNS:
		return "DNS Error"
	case ErrTypeHTTP:
		return "HTTP Error"
	case ErrTypeParse:
		return "Parse Error"
	case ErrTypeCanceled:
		return "Canceled"
	case ErrTypeUnknown:
		return "Unknown Error"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// Error is returned by Client for every failed generation.
type Error struct {
	Type       ErrorType // Category of error
	Message    string    // Human-readable error message
	StatusCode int       // HTTP status code (if applicable)
	Body       string    // Start of the response body for HTTP errors
	Err        error     // Underlying error (if any)
	Endpoint   string    // Endpoint the request was sent to
	Retryable  bool      // Whether retrying the same request can succeed
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *Error) Unwrap() error {
	return e.Err
}

// ClassifyNetworkError analyzes a transport error and returns a typed Error
func ClassifyNetworkError(err error, endpoint string) *Error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.Canceled) {
		return &Error{
			Type:     ErrTypeCanceled,
			Message:  "Request canceled",
			Err:      err,
			Endpoint: endpoint,
		}
	}

	if os.IsTimeout(err) || errors.Is(err, context.DeadlineExceeded) {
		return &Error{
			Type:      ErrTypeTimeout,
			Message:   "Request timed out",
			Err:       err,
			Endpoint:  endpoint,
			Retryable: true,
		}
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return &Error{
			Type:      ErrTypeDNS,
			Message:   fmt.Sprintf("DNS resolution failed for %s", dnsErr.Name),
			Err:       err,
			Endpoint:  endpoint,
			Retryable: false,
		}
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		switch {
		case errors.Is(opErr.Err, syscall.ECONNREFUSED):
			return &Error{
				Type:      ErrTypeConnectionRefused,
				Message:   "Generation service refused connection",
				Err:       err,
				Endpoint:  endpoint,
				Retryable: true,
			}
		case errors.Is(opErr.Err, syscall.EHOSTUNREACH):
			return &Error{
				Type:      ErrTypeNetwork,
				Message:   "Host unreachable",
				Err:       err,
				Endpoint:  endpoint,
				Retryable: true,
			}
		case errors.Is(opErr.Err, syscall.ENETUNREACH):
			return &Error{
				Type:      ErrTypeNetwork,
				Message:   "Network unreachable",
				Err:       err,
				Endpoint:  endpoint,
				Retryable: true,
			}
		}
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		return ClassifyNetworkError(urlErr.Err, endpoint)
	}

	return &Error{
		Type:      ErrTypeNetwork,
		Message:   "Network error occurred",
		Err:       err,
		Endpoint:  endpoint,
		Retryable: true,
	}
}

// NewNetworkError creates a network-level error with automatic classification
func NewNetworkError(message string, err error, endpoint string) *Error {
	classified := ClassifyNetworkError(err, endpoint)
	if classified != nil {
		if classified.Type == ErrTypeNetwork {
			classified.Message = message
		}
		return classified
	}
	return &Error{
		Type:      ErrTypeNetwork,
		Message:   message,
		Endpoint:  endpoint,
		Retryable: true,
	}
}

// NewHTTPError creates an HTTP-level error
func NewHTTPError(statusCode int, body string, endpoint string) *Error {
	return &Error{
		Type:       ErrTypeHTTP,
		Message:    fmt.Sprintf("unexpected status code: %d", statusCode),
		StatusCode: statusCode,
		Body:       body,
		Endpoint:   endpoint,
		Retryable:  statusCode >= 500 || statusCode == 429,
	}
}

// NewParseError creates a parsing error
func NewParseError(message string, err error, endpoint string) *Error {
	return &Error{
		Type:      ErrTypeParse,
		Message:   message,
		Err:       err,
		Endpoint:  endpoint,
		Retryable: false,
	}
}

func asError(err error) (*Error, bool) {
	var genErr *Error
	ok := errors.As(err, &genErr)
	return genErr, ok
}

// IsNetworkError checks if an error is a transport error (including timeout, connection refused, DNS)
func IsNetworkError(err error) bool {
	if genErr, ok := asError(err); ok {
		return genErr.Type == ErrTypeNetwork ||
			genErr.Type == ErrTypeTimeout ||
			genErr.Type == ErrTypeConnectionRefused ||
			genErr.Type == ErrTypeDNS
	}
	return false
}

// IsHTTPError checks if an error is an HTTP error
func IsHTTPError(err error) bool {
	if genErr, ok := asError(err); ok {
		return genErr.Type == ErrTypeHTTP
	}
	return false
}

// IsParseError checks if an error is a parse error
func IsParseError(err error) bool {
	if genErr, ok := asError(err); ok {
		return genErr.Type == ErrTypeParse
	}
	return false
}

// IsRetryable checks if an error should be retried
func IsRetryable(err error) bool {
	if genErr, ok := asError(err); ok {
		return genErr.Retryable
	}
	return false
}

// ShortMessage returns a concise, user-friendly error message
func ShortMessage(err error) string {
	genErr, ok := asError(err)
	if !ok {
		return err.Error()
	}

	switch genErr.Type {
	case ErrTypeTimeout:
		return "Generation service not responding (timeout)"
	case ErrTypeConnectionRefused:
		return "Generation service refused connection - is it running?"
	case ErrTypeDNS:
		return "Cannot resolve generation service hostname"
	case ErrTypeNetwork:
		return "Network error - check connection"
	case ErrTypeHTTP:
		return fmt.Sprintf("Generation service error (HTTP %d)", genErr.StatusCode)
	case ErrTypeParse:
		return "Generation service sent a malformed puzzle"
	case ErrTypeCanceled:
		return "Generation canceled"
	default:
		return genErr.Message
	}
}

// TroubleshootingHint returns user-friendly troubleshooting advice for an error
func TroubleshootingHint(err error) string {
	genErr, ok := asError(err)
	if !ok {
		return "An unexpected error occurred. Please try again."
	}

	switch genErr.Type {
	case ErrTypeTimeout:
		return strings.Join([]string{
			"The generation service did not respond in time.",
			"Troubleshooting:",
			"  • Large grids with many words take longer - try fewer words",
			"  • Increase the timeout with --timeout",
		}, "\n")

	case ErrTypeConnectionRefused:
		return strings.Join([]string{
			"Nothing is listening at " + genErr.Endpoint + ".",
			"Troubleshooting:",
			"  • Start the generation service",
			"  • For local testing run: wordfinder-stub serve",
			"  • Point the client elsewhere with --endpoint or --discover",
		}, "\n")

	case ErrTypeDNS:
		return strings.Join([]string{
			"Could not resolve the generation service hostname.",
			"Troubleshooting:",
			"  • Check the --endpoint URL for typos",
			"  • Use an IP address instead of a hostname",
		}, "\n")

	case ErrTypeHTTP:
		if genErr.StatusCode == 404 || genErr.StatusCode == 405 {
			return "The endpoint exists but does not accept puzzle requests. Check the URL path (default /wordfinder)."
		}
		if genErr.StatusCode >= 500 {
			return strings.Join([]string{
				fmt.Sprintf("The generation service failed (HTTP %d).", genErr.StatusCode),
				"The word list may not fit the grid - try fewer or shorter words,",
				"or a larger grid.",
			}, "\n")
		}
		return fmt.Sprintf("The generation service rejected the request (HTTP %d). Check rows, columns and words.", genErr.StatusCode)

	case ErrTypeParse:
		return strings.Join([]string{
			"The response could not be read as a puzzle.",
			"Expected theGrid (a JSON-encoded 2-D array) and placedWords.",
		}, "\n")

	case ErrTypeNetwork:
		return strings.Join([]string{
			"Network communication failed.",
			"Troubleshooting:",
			"  • Check your network connection",
			"  • Verify the generation service host is reachable",
		}, "\n")

	default:
		return "An error occurred. Please check the error message for details."
	}
}

// parseFailure wraps a puzzle decode error.
func parseFailure(err error, endpoint string) *Error {
	switch {
	case errors.Is(err, puzzle.ErrMissingGrid):
		return NewParseError("response is missing theGrid", err, endpoint)
	case errors.Is(err, puzzle.ErrMissingPlacedWords):
		return NewParseError("response is missing placedWords", err, endpoint)
	default:
		return NewParseError("failed to parse response", err, endpoint)
	}
}
