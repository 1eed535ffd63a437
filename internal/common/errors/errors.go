// internal/common/errors/errors.go
package errors

import (
	"fmt"
	"net/http"
	"time"
)

// ErrorCode represents standardized error codes across the service
type ErrorCode string

const (
	// Listing errors
	ErrorCodeListingNotFound    ErrorCode = "LISTING_NOT_FOUND"
	ErrorCodeListingFetchFailed ErrorCode = "LISTING_FETCH_FAILED"
	ErrorCodeSearchQueryFailed  ErrorCode = "SEARCH_QUERY_FAILED"

	// Validation errors
	ErrorCodeInvalidRequest     ErrorCode = "INVALID_REQUEST"
	ErrorCodeAssumptionsInvalid ErrorCode = "ASSUMPTIONS_INVALID"

	// Infrastructure errors
	ErrorCodeDatabaseConnection ErrorCode = "DATABASE_CONNECTION_FAILED"
	ErrorCodeQueryExecution     ErrorCode = "QUERY_EXECUTION_FAILED"
	ErrorCodeCacheRead          ErrorCode = "CACHE_READ_FAILED"
	ErrorCodeCacheWrite         ErrorCode = "CACHE_WRITE_FAILED"
	ErrorCodeAlertDelivery      ErrorCode = "ALERT_DELIVERY_FAILED"
)

// StandardError is the error type carried across package boundaries
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   map[string]interface{} `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Timestamp time.Time              `json:"timestamp"`
	cause     error
}

func (e *StandardError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *StandardError) Unwrap() error {
	return e.cause
}

// WithDetail attaches a key/value pair to the error details
func (e *StandardError) WithDetail(key string, value interface{}) *StandardError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// New creates a StandardError with the given code and message
func New(code ErrorCode, message string) *StandardError {
	return &StandardError{
		Code:      code,
		Message:   message,
		Retryable: isRetryable(code),
		Timestamp: time.Now().UTC(),
	}
}

// Wrap creates a StandardError wrapping an underlying cause
func Wrap(code ErrorCode, message string, cause error) *StandardError {
	err := New(code, message)
	err.cause = cause
	return err
}

func isRetryable(code ErrorCode) bool {
	switch code {
	case ErrorCodeDatabaseConnection,
		ErrorCodeQueryExecution,
		ErrorCodeCacheRead,
		ErrorCodeCacheWrite,
		ErrorCodeSearchQueryFailed,
		ErrorCodeAlertDelivery:
		return true
	default:
		return false
	}
}

// HTTPStatus maps an error code to its HTTP response status
func HTTPStatus(code ErrorCode) int {
	switch code {
	case ErrorCodeListingNotFound:
		return http.StatusNotFound
	case ErrorCodeInvalidRequest, ErrorCodeAssumptionsInvalid:
		return http.StatusBadRequest
	case ErrorCodeSearchQueryFailed, ErrorCodeCacheRead, ErrorCodeCacheWrite,
		ErrorCodeDatabaseConnection, ErrorCodeQueryExecution:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
