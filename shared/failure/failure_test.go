package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"chrono/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestPredefinedFailures(t *testing.T) {
	tests := []struct {
		name    string
		failure *failure.Failure
		code    int
		message string
	}{
		{
			name:    "InvalidTimezoneParam",
			failure: failure.InvalidTimezoneParam,
			code:    http.StatusBadRequest,
			message: "invalid timezone parameter",
		},
		{
			name:    "InvalidDateTimeParam",
			failure: failure.InvalidDateTimeParam,
			code:    http.StatusBadRequest,
			message: "invalid datetime parameter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.failure.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, tt.failure.Code)
			}
			if tt.failure.Message != tt.message {
				t.Errorf("expected message to be %s, got %s", tt.message, tt.failure.Message)
			}
		})
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{
			name: "BadRequest wraps error",
			err:  failure.BadRequest(errors.New("bad input")),
			code: http.StatusBadRequest,
		},
		{
			name: "BadRequestFromString",
			err:  failure.BadRequestFromString("bad input"),
			code: http.StatusBadRequest,
		},
		{
			name: "Unauthorized",
			err:  failure.Unauthorized("no key"),
			code: http.StatusUnauthorized,
		},
		{
			name: "InternalError",
			err:  failure.InternalError(errors.New("boom")),
			code: http.StatusInternalServerError,
		},
		{
			name: "NotFound",
			err:  failure.NotFound("zone not found"),
			code: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err == nil {
				t.Fatal("expected a failure, got nil")
			}
			if failure.GetCode(tt.err) != tt.code {
				t.Errorf("expected code %d, got %d", tt.code, failure.GetCode(tt.err))
			}
		})
	}
}

func TestConstructorsWithNilError(t *testing.T) {
	if failure.BadRequest(nil) != nil {
		t.Error("expected BadRequest(nil) to be nil")
	}
	if failure.InternalError(nil) != nil {
		t.Error("expected InternalError(nil) to be nil")
	}
}

func TestGetCode(t *testing.T) {
	if code := failure.GetCode(errors.New("plain error")); code != http.StatusInternalServerError {
		t.Errorf("expected plain errors to map to 500, got %d", code)
	}

	wrapped := fmt.Errorf("context: %w", failure.NotFound("missing"))
	if code := failure.GetCode(wrapped); code != http.StatusNotFound {
		t.Errorf("expected wrapped failure to keep its code, got %d", code)
	}
}
