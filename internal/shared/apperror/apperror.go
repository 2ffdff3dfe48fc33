package apperror

import (
	"errors"
	"fmt"
)

// Error codes surfaced to API clients in the GraphQL extensions map.
const (
	CodeValidation      = "VALIDATION_ERROR"
	CodeNotFound        = "NOT_FOUND"
	CodeUnavailable     = "STORE_UNAVAILABLE"
	CodeUnauthenticated = "UNAUTHENTICATED"
	CodeInternal        = "INTERNAL_ERROR"
)

// Error is the application error type carried across the service and
// resolver layers. It implements the gqlerrors ExtendedError contract so
// the code (and field, when present) show up under "extensions" in the
// GraphQL response.
type Error struct {
	Code    string
	Message string
	Field   string // offending input field, validation errors only
	Err     error  // wrapped cause, connectivity errors only
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Extensions implements gqlerrors.ExtendedError.
func (e *Error) Extensions() map[string]interface{} {
	ext := map[string]interface{}{"code": e.Code}
	if e.Field != "" {
		ext["field"] = e.Field
	}
	return ext
}

// Validation reports a caller fault on a specific input field.
func Validation(field, format string, args ...interface{}) *Error {
	return &Error{
		Code:    CodeValidation,
		Message: fmt.Sprintf(format, args...),
		Field:   field,
	}
}

// FromValidation converts an ozzo-validation error (a field→error map)
// into a single validation Error. Non-validation errors pass through
// unchanged.
func FromValidation(err error) error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return &Error{
		Code:    CodeValidation,
		Message: err.Error(),
	}
}

// NotFound reports that an identifier did not resolve to an existing
// entity for an update or delete.
func NotFound(entity string) *Error {
	return &Error{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s not found", entity),
	}
}

// Unavailable reports a store connectivity or timeout failure attributed
// to a single field or operation.
func Unavailable(store string, err error) *Error {
	return &Error{
		Code:    CodeUnavailable,
		Message: fmt.Sprintf("%s store unavailable", store),
		Err:     err,
	}
}

// Unauthenticated reports a missing or unusable caller identity.
func Unauthenticated(message string) *Error {
	return &Error{
		Code:    CodeUnauthenticated,
		Message: message,
	}
}

// IsNotFound checks whether err carries the NOT_FOUND code.
func IsNotFound(err error) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Code == CodeNotFound
}

// IsValidation checks whether err carries the VALIDATION_ERROR code.
func IsValidation(err error) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Code == CodeValidation
}
