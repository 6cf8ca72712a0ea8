// Package apperror defines the coded error type shared by the operation
// layer so handlers can map failures to HTTP statuses without inspecting
// driver errors.
package apperror

import "errors"

type Code string

const (
	CodeValidation Code = "validation"
	CodeNotFound   Code = "not_found"
	CodeForbidden  Code = "forbidden"
	CodeConflict   Code = "conflict"
	CodeInternal   Code = "internal"
)

type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// GetCode extracts the code from err, defaulting to CodeInternal for
// anything that is not an *Error.
func GetCode(err error) Code {
	if err == nil {
		return ""
	}

	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}

	return CodeInternal
}
