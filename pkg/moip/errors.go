package moip

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// APIError is one entry of the structured error list returned with 4xx responses.
type APIError struct {
	Code        string `json:"code"           yaml:"code"`
	Path        string `json:"path,omitempty" yaml:"path,omitempty"`
	Description string `json:"description"    yaml:"description"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s (path: %s)", e.Code, e.Description, e.Path)
	}

	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// ResponseError is the error document sent by the API.
type ResponseError struct {
	Errors []APIError `json:"errors"`
}

// Sentinel errors.
var (
	ErrUnauthorized        = errors.New("moip: unauthorized")
	ErrConfigRequired      = errors.New("config is required")
	ErrEndpointRequired    = errors.New("API endpoint is required")
	ErrIDRequired          = errors.New("resource id is required")
	ErrRequestRequired     = errors.New("request body is required")
	ErrTaxDocumentMissing  = errors.New("tax document is required")
	ErrRefreshTokenMissing = errors.New("refresh token is required")
)

// UnauthorizedError is returned when the API answers 401. The response body is never read.
type UnauthorizedError struct {
	Status string
}

// Error implements the error interface.
func (e *UnauthorizedError) Error() string {
	return ErrUnauthorized.Error()
}

// Is reports whether target is ErrUnauthorized.
func (e *UnauthorizedError) Is(target error) bool {
	return target == ErrUnauthorized
}

// ValidationError is returned for statuses in [400, 498] other than 401.
type ValidationError struct {
	StatusCode int
	Status     string
	Errors     []APIError
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return fmt.Sprintf("moip: validation failed (HTTP %d %s)", e.StatusCode, e.Status)
	}

	details := make([]string, 0, len(e.Errors))
	for i := range e.Errors {
		details = append(details, e.Errors[i].Error())
	}

	return fmt.Sprintf("moip: validation failed (HTTP %d %s): %s", e.StatusCode, e.Status, strings.Join(details, "; "))
}

// FirstError returns the first structured error or nil.
func (e *ValidationError) FirstError() *APIError {
	if len(e.Errors) > 0 {
		return &e.Errors[0]
	}

	return nil
}

// HasCode reports whether any structured error carries code.
func (e *ValidationError) HasCode(code string) bool {
	for _, apiErr := range e.Errors {
		if apiErr.Code == code {
			return true
		}
	}

	return false
}

// UnexpectedError is returned for server errors and for statuses the client does not handle.
type UnexpectedError struct {
	StatusCode int
	Status     string
}

// Error implements the error interface.
func (e *UnexpectedError) Error() string {
	return fmt.Sprintf("moip: unexpected response (HTTP %d %s)", e.StatusCode, e.Status)
}

// TransportError wraps connection, DNS, TLS and I/O failures.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("moip: error connecting to API (%s %s): %v", e.Method, e.URL, e.Err)
}

// Unwrap returns the underlying cause.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError is returned when a success body cannot be decoded into the target type.
type DecodeError struct {
	Err error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("moip: decoding response: %v", e.Err)
}

// Unwrap returns the underlying cause.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsUnauthorized checks if the error is an unauthorized error.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// IsValidation checks if the error is a validation error.
func IsValidation(err error) bool {
	_, ok := AsValidation(err)

	return ok
}

// AsValidation returns the validation error wrapped in err, if any.
func AsValidation(err error) (*ValidationError, bool) {
	validationErr := &ValidationError{}
	if errors.As(err, &validationErr) {
		return validationErr, true
	}

	return nil, false
}

// IsNotFound checks if the error is a validation error carrying HTTP 404.
func IsNotFound(err error) bool {
	validationErr, ok := AsValidation(err)

	return ok && validationErr.StatusCode == 404
}

// IsUnexpected checks if the error is an unexpected server response.
func IsUnexpected(err error) bool {
	unexpectedErr := &UnexpectedError{}

	return errors.As(err, &unexpectedErr)
}

// IsTransport checks if the error is a transport failure.
func IsTransport(err error) bool {
	transportErr := &TransportError{}

	return errors.As(err, &transportErr)
}

// IsDecode checks if the error is a decode failure.
func IsDecode(err error) bool {
	decodeErr := &DecodeError{}

	return errors.As(err, &decodeErr)
}

// ParseResponseError parses an error response from JSON.
func ParseResponseError(data []byte) (*ResponseError, error) {
	var errResp ResponseError

	err := json.Unmarshal(data, &errResp)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal response error: %w", err)
	}

	return &errResp, nil
}

// ParseErrors extracts the structured error list from an error body.
// Malformed or empty bodies yield an empty list.
func ParseErrors(data []byte) []APIError {
	errResp, err := ParseResponseError(data)
	if err != nil || errResp.Errors == nil {
		return []APIError{}
	}

	return errResp.Errors
}
