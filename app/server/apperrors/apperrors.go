// Package apperrors carries the error taxonomy the request layer translates
// into responses: every Error holds the HTTP status code it maps to.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

type Error struct {
	code  int
	msg   string
	cause error
}

func (e *Error) Error() string {
	if e.cause == nil {
		return e.msg
	}

	return fmt.Sprintf("%s: %v", e.msg, e.cause)
}

func (e *Error) Code() int {
	return e.code
}

func (e *Error) Message() string {
	return e.msg
}

func (e *Error) Unwrap() error {
	return e.cause
}

func New(msg string, code int) *Error {
	return &Error{code: code, msg: msg}
}

// Wrap keeps cause reachable through errors.Is / errors.As while attaching a
// code and user-facing message.
func Wrap(cause error, msg string, code int) *Error {
	return &Error{code: code, msg: msg, cause: cause}
}

var (
	ErrNotFound  = New("not found", http.StatusNotFound)
	ErrForbidden = New("forbidden", http.StatusForbidden)

	// ErrDuplicate is the store-level unique constraint violation; services
	// narrow it to the field that collided.
	ErrDuplicate = New("duplicate value", http.StatusConflict)

	ErrDuplicateEmail = New("you've already signed up with that email, log in instead", http.StatusConflict)
	ErrDuplicateTitle = New("that title is already taken", http.StatusConflict)

	ErrUnknownEmail    = New("that email does not exist, please try again", http.StatusUnauthorized)
	ErrInvalidPassword = New("password incorrect, please try again", http.StatusUnauthorized)

	// ErrValidation is the cause of every field-level validation failure.
	ErrValidation = New("validation failed", http.StatusBadRequest)
)

// Validation reports a malformed or missing field. errors.Is(err,
// ErrValidation) matches it.
func Validation(field, reason string) *Error {
	return Wrap(ErrValidation, fmt.Sprintf("%s: %s", field, reason), http.StatusBadRequest)
}

// CodeOf extracts the carried status code, defaulting to 500 for plain errors
// (store unavailability and other unclassified faults).
func CodeOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.code
	}

	return http.StatusInternalServerError
}

// MessageOf extracts the user-facing message, hiding internals behind the
// generic status text for unclassified errors.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.msg
	}

	return http.StatusText(http.StatusInternalServerError)
}
