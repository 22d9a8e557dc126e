package deepgram

import (
	"errors"
	"fmt"
)

// ErrorCode classifies Deepgram client errors.
type ErrorCode int

const (
	// CodeUpstream indicates a non-2xx provider response.
	CodeUpstream ErrorCode = iota
	// CodePermission indicates a 403 from the provider.
	CodePermission
	// CodeNotFound indicates a 404 for a request id lookup.
	CodeNotFound
	// CodeNotConfigured indicates the credential sees zero projects and no
	// explicit project id was configured.
	CodeNotConfigured
)

// String returns the error code name.
func (c ErrorCode) String() string {
	switch c {
	case CodeUpstream:
		return "upstream"
	case CodePermission:
		return "permission"
	case CodeNotFound:
		return "not_found"
	case CodeNotConfigured:
		return "not_configured"
	default:
		return "unknown"
	}
}

// Error is a structured Deepgram client error.
type Error struct {
	// Code classifies the error.
	Code ErrorCode
	// StatusCode is the provider's HTTP status (0 when not applicable).
	StatusCode int
	// Message is a human-readable description, including remediation
	// guidance for permission and configuration errors.
	Message string
	// Body is the provider's response body, passed through verbatim.
	Body []byte
	// RequestID identifies the missing request for CodeNotFound.
	RequestID string
	// ProjectID identifies the project scope for CodeNotFound.
	ProjectID string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("deepgram: %s (HTTP %d): %s", e.Code, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("deepgram: %s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error { return e.Err }

// NewUpstreamError creates an error carrying the provider's status and body verbatim.
func NewUpstreamError(statusCode int, body []byte, err error) *Error {
	return &Error{
		Code:       CodeUpstream,
		StatusCode: statusCode,
		Message:    fmt.Sprintf("Deepgram returned HTTP %d: %s", statusCode, string(body)),
		Body:       body,
		Err:        err,
	}
}

// NewPermissionError creates a 403 error with role-upgrade guidance.
func NewPermissionError(operation string, err error) *Error {
	return &Error{
		Code:       CodePermission,
		StatusCode: 403,
		Message: fmt.Sprintf(
			"403 Forbidden: your API key does not have permission to %s. "+
				"Provide project_id in configuration, or create an API key with Member role or higher at https://console.deepgram.com.",
			operation),
		Err: err,
	}
}

// NewNotFoundError creates a 404 error identifying the request and its project scope.
func NewNotFoundError(requestID, projectID string, err error) *Error {
	return &Error{
		Code:       CodeNotFound,
		StatusCode: 404,
		Message: fmt.Sprintf(
			"request %q not found: verify the request_id is correct and belongs to project %q",
			requestID, projectID),
		RequestID: requestID,
		ProjectID: projectID,
		Err:       err,
	}
}

// NewNotConfiguredError creates an error for a credential with no visible projects.
func NewNotConfiguredError() *Error {
	return &Error{
		Code:    CodeNotConfigured,
		Message: "no projects found for this API key: provide project_id in configuration",
	}
}

// IsUpstream checks if an error is a provider passthrough error.
func IsUpstream(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == CodeUpstream
}

// IsPermission checks if an error is a 403 permission error.
func IsPermission(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == CodePermission
}

// IsNotFound checks if an error is a request-not-found error.
func IsNotFound(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == CodeNotFound
}

// IsNotConfigured checks if an error is a missing-project configuration error.
func IsNotConfigured(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == CodeNotConfigured
}
