package errs

import (
	"errors"
	"fmt"
)

// Kind categorizes application errors for HTTP status mapping.
type Kind int

const (
	// Unknown represents an unclassified error.
	Unknown Kind = iota
	// MissingInput indicates the request did not carry a target URL (HTTP 400).
	MissingInput
	// FetchTransport indicates the target could not be fetched (HTTP 500).
	FetchTransport
	// Timeout indicates the target took too long to respond (HTTP 500).
	Timeout
	// UpstreamUnavailable indicates the proxy itself could not be reached.
	UpstreamUnavailable
	// FetchFailed indicates the proxy answered with an error or no markup.
	FetchFailed
)

func (k Kind) String() string {
	switch k {
	case MissingInput:
		return "missing_input"
	case FetchTransport:
		return "fetch_transport"
	case Timeout:
		return "timeout"
	case UpstreamUnavailable:
		return "upstream_unavailable"
	case FetchFailed:
		return "fetch_failed"
	default:
		return "unknown"
	}
}

// AppError carries a category, user message, and original cause.
type AppError struct {
	Kind           Kind
	UpstreamStatus int // HTTP status code returned by the proxy, caller side only
	Message        string
	Cause          error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// KindOf reports the Kind of err, or Unknown if err is not an *AppError.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return Unknown
}
