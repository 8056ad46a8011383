package apperr

import (
	"fmt"
)

// ValidationError reports a request parameter that failed type or range checks.
type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Message: msg, Err: err}
}

// NotFoundError is returned when a named resource (theme, city, company) does not exist.
// Message is user-facing.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func NewNotFound(msg string) *NotFoundError {
	return &NotFoundError{Message: msg}
}

var (
	ErrThemeNotFound   = NewNotFound("Theme not found.")
	ErrCityNotFound    = NewNotFound("City not found.")
	ErrCompanyNotFound = NewNotFound("Company not found.")
)

type IndexNotFoundError struct {
	Index string
}

func (e *IndexNotFoundError) Error() string {
	return fmt.Sprintf("search index %q does not exist", e.Index)
}

// BackendUnavailableError means the backend could not be reached in time.
type BackendUnavailableError struct {
	Backend string
	Err     error
}

func (e *BackendUnavailableError) Error() string {
	return fmt.Sprintf("%s unavailable: %v", e.Backend, e.Err)
}

func (e *BackendUnavailableError) Unwrap() error {
	return e.Err
}

// BackendError carries a non-2xx answer from an upstream service.
type BackendError struct {
	Backend string
	Status  int
	Reason  string
}

func (e *BackendError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s responded with status %d: %s", e.Backend, e.Status, e.Reason)
	}
	return fmt.Sprintf("%s responded with status %d", e.Backend, e.Status)
}

// CorruptHitError is raised when a search hit cannot be hydrated into a result record.
type CorruptHitError struct {
	ID  string
	Err error
}

func (e *CorruptHitError) Error() string {
	return fmt.Sprintf("corrupt hit %q: %v", e.ID, e.Err)
}

func (e *CorruptHitError) Unwrap() error {
	return e.Err
}

// ConfigurationError aborts startup.
type ConfigurationError struct {
	Message string
	Err     error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return "configuration error: " + e.Message + ": " + e.Err.Error()
	}
	return "configuration error: " + e.Message
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

func NewConfiguration(msg string) *ConfigurationError {
	return &ConfigurationError{Message: msg}
}

func NewConfigurationWrap(msg string, err error) *ConfigurationError {
	return &ConfigurationError{Message: msg, Err: err}
}
