package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestCodeOf(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{ErrNotFound, http.StatusNotFound},
		{ErrForbidden, http.StatusForbidden},
		{ErrDuplicateEmail, http.StatusConflict},
		{ErrDuplicateTitle, http.StatusConflict},
		{ErrUnknownEmail, http.StatusUnauthorized},
		{ErrInvalidPassword, http.StatusUnauthorized},
		{Validation("git_url", "must be a well-formed URL"), http.StatusBadRequest},
		{errors.New("database gone"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		if got := CodeOf(tc.err); got != tc.code {
			t.Errorf("CodeOf(%v) = %d, want %d", tc.err, got, tc.code)
		}
	}
}

func TestCodeOf_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("creating sheet: %w", ErrDuplicateTitle)
	if got := CodeOf(wrapped); got != http.StatusConflict {
		t.Fatalf("CodeOf(wrapped) = %d, want %d", got, http.StatusConflict)
	}
}

func TestValidation_Matching(t *testing.T) {
	err := Validation("title", "required")

	if !errors.Is(err, ErrValidation) {
		t.Fatalf("validation error must match ErrValidation")
	}
	if err.Message() != "title: required" {
		t.Fatalf("unexpected message: %q", err.Message())
	}
}

func TestMessageOf(t *testing.T) {
	if got := MessageOf(ErrUnknownEmail); got != "that email does not exist, please try again" {
		t.Fatalf("unexpected message: %q", got)
	}

	// unclassified errors never leak internals
	if got := MessageOf(errors.New("pq: connection refused")); got != http.StatusText(http.StatusInternalServerError) {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(cause, "saving record", http.StatusInternalServerError)

	if !errors.Is(err, cause) {
		t.Fatalf("wrapped cause must be reachable")
	}
	if err.Error() != "saving record: boom" {
		t.Fatalf("unexpected error string: %q", err.Error())
	}
}
