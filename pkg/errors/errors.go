// Package errors defines the error types returned by the Lolz API wrapper.
//
// A failed call surfaces as exactly one of:
//   - *RequestError when the request never produced a response (connection, timeout, cancellation)
//   - *APIError when the server answered with a non-2xx status
//   - *ParseError when a 2xx response body could not be decoded
//
// *ConfigError and *ClientError are reported before anything is sent.
package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// maxBodyPreview bounds how much of a response body is echoed by Error().
const maxBodyPreview = 256

// ConfigError indicates a problem with the client configuration or with a
// caller supplied argument.
type ConfigError struct {
	// Field contains the name of the configuration field or argument that caused the error
	Field string
	// Message contains the detailed error message
	Message string
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config error in field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("config error: %s", e.Message)
}

// RequestError indicates a transport failure: the request was sent (or was
// about to be) but no HTTP response came back.
type RequestError struct {
	// Operation is the name of the API operation that failed
	Operation string
	// Method is the HTTP verb of the failed request
	Method string
	// URL is the URL that was being accessed
	URL string
	// Err contains the underlying transport error
	Err error
}

func (e *RequestError) Error() string {
	msg := "unknown failure"
	if e.Err != nil {
		msg = e.Err.Error()
	}

	target := strings.TrimSpace(e.Method + " " + e.URL)
	switch {
	case e.Operation != "" && target != "":
		return fmt.Sprintf("request error during %s (%s): %s", e.Operation, target, msg)
	case e.Operation != "":
		return fmt.Sprintf("request error during %s: %s", e.Operation, msg)
	case target != "":
		return fmt.Sprintf("request error (%s): %s", target, msg)
	}
	return fmt.Sprintf("request error: %s", msg)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// APIError represents a non-2xx response from the Lolz API. The body is kept
// verbatim; its shape is defined by the server.
type APIError struct {
	// StatusCode is the HTTP status code
	StatusCode int
	// Status is the HTTP status line text, e.g. "404 Not Found"
	Status string
	// Method is the HTTP verb of the request
	Method string
	// URL is the request URL
	URL string
	// Body is the raw response body
	Body []byte
}

func (e *APIError) Error() string {
	status := e.Status
	if status == "" {
		status = fmt.Sprintf("%d", e.StatusCode)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "API request failed with status %s", status)
	if e.Method != "" || e.URL != "" {
		fmt.Fprintf(&sb, " (%s)", strings.TrimSpace(e.Method+" "+e.URL))
	}
	if len(e.Body) > 0 {
		fmt.Fprintf(&sb, ": %s", preview(e.Body))
	}
	return sb.String()
}

// ParseError indicates that a successful response could not be decoded.
type ParseError struct {
	// Operation is the name of the API operation where parsing failed
	Operation string
	// Message contains the detailed error message
	Message string
	// Body is the raw response body that failed to decode
	Body []byte
	// Err contains the underlying decoder error if available
	Err error
}

func (e *ParseError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}

	if e.Operation != "" {
		return fmt.Sprintf("parse error during %s: %s", e.Operation, msg)
	}
	return fmt.Sprintf("parse error: %s", msg)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ClientError indicates a failure while building a request, before it reaches
// the transport.
type ClientError struct {
	// Operation describes what the client was trying to do
	Operation string
	// Message contains the detailed error message
	Message string
	// Err contains the underlying error if available
	Err error
}

func (e *ClientError) Error() string {
	if e.Err != nil && e.Operation == "" && e.Message == "" {
		return e.Err.Error()
	}
	if e.Err != nil {
		if e.Operation != "" {
			return fmt.Sprintf("client error during %s: %v", e.Operation, e.Err)
		}
		return fmt.Sprintf("client error: %v", e.Err)
	}
	if e.Operation != "" && e.Message != "" {
		return fmt.Sprintf("client error during %s: %s", e.Operation, e.Message)
	}
	if e.Operation != "" {
		return fmt.Sprintf("client error during %s", e.Operation)
	}
	if e.Message != "" {
		return fmt.Sprintf("client error: %s", e.Message)
	}
	return "client error"
}

func (e *ClientError) Unwrap() error {
	return e.Err
}

// IsStatus reports whether err carries an APIError with the given status code.
func IsStatus(err error, code int) bool {
	var apiErr *APIError
	if !stderrors.As(err, &apiErr) {
		return false
	}
	return apiErr.StatusCode == code
}

func preview(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > maxBodyPreview {
		return s[:maxBodyPreview] + "..."
	}
	return s
}
