package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", New(ErrCodeValidation, "bad input"), http.StatusBadRequest},
		{"unauthorized", New(ErrCodeUnauthorized, "no token"), http.StatusUnauthorized},
		{"invalid token", New(ErrCodeInvalidToken, "bad token"), http.StatusUnauthorized},
		{"invalid credentials", New(ErrCodeInvalidCredentials, "nope"), http.StatusUnauthorized},
		{"not found", New(ErrCodeNotFound, "missing"), http.StatusNotFound},
		{"internal", New(ErrCodeInternalError, "boom"), http.StatusInternalServerError},
		{"plain error", stderrors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HTTPStatus(tt.err); got != tt.want {
				t.Errorf("HTTPStatus() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCodeOfUnwrapsWrappedErrors(t *testing.T) {
	base := New(ErrCodeNotFound, "missing")
	wrapped := fmt.Errorf("while handling request: %w", base)

	if CodeOf(wrapped) != ErrCodeNotFound {
		t.Errorf("CodeOf(wrapped) = %q, want NOT_FOUND", CodeOf(wrapped))
	}
	if !IsNotFound(wrapped) {
		t.Error("IsNotFound(wrapped) = false")
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("disk full")
	err := Wrap(ErrCodeInternalError, "failed to save", cause)

	if !stderrors.Is(err, cause) {
		t.Error("wrapped cause not reachable through errors.Is")
	}
	if err.Error() == "" || err.Message != "failed to save" {
		t.Errorf("unexpected error shape: %v", err)
	}
}

func TestIsUnauthorized(t *testing.T) {
	for _, code := range []ErrorCode{ErrCodeUnauthorized, ErrCodeInvalidToken, ErrCodeInvalidCredentials} {
		if !IsUnauthorized(New(code, "x")) {
			t.Errorf("IsUnauthorized(%s) = false", code)
		}
	}
	if IsUnauthorized(New(ErrCodeValidation, "x")) {
		t.Error("IsUnauthorized(validation) = true")
	}
}
