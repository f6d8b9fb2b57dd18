// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/arthur-debert/crosskit/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "not_found_error",
			code:    errors.ErrNotFound,
			message: "file not found",
			wantStr: "[NOT_FOUND] file not found",
		},
		{
			name:    "command_spawn_error",
			code:    errors.ErrCommandSpawn,
			message: "unable to start git",
			wantStr: "[COMMAND_SPAWN] unable to start git",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	underlying := fmt.Errorf("permission denied")
	err := errors.Wrap(underlying, errors.ErrSymlinkCreate, "could not create link")

	if !stderrors.Is(err, underlying) {
		t.Error("Wrap() should preserve the wrapped error for errors.Is")
	}

	wantStr := "[SYMLINK_CREATE] could not create link: permission denied"
	if got := err.Error(); got != wantStr {
		t.Errorf("Error() = %q, want %q", got, wantStr)
	}

	if errors.Wrap(nil, errors.ErrInternal, "ignored") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

func TestWrapf(t *testing.T) {
	underlying := fmt.Errorf("exit status 2")
	err := errors.Wrapf(underlying, errors.ErrCommandExit, "command %s failed", "git")

	if err.Message != "command git failed" {
		t.Errorf("Wrapf() message = %q", err.Message)
	}
	if stderrors.Unwrap(err) != underlying {
		t.Error("Wrapf() should wrap the underlying error")
	}
}

func TestIsErrorCode(t *testing.T) {
	err := errors.New(errors.ErrCommandSpawn, "tool not found")

	if !errors.IsErrorCode(err, errors.ErrCommandSpawn) {
		t.Error("IsErrorCode() should match the error's own code")
	}
	if errors.IsErrorCode(err, errors.ErrCommandExit) {
		t.Error("IsErrorCode() should not match a different code")
	}
	if errors.IsErrorCode(fmt.Errorf("plain"), errors.ErrCommandSpawn) {
		t.Error("IsErrorCode() should not match a plain error")
	}

	// Wrapped CrosskitErrors are still found through errors.As
	wrapped := fmt.Errorf("outer: %w", err)
	if !errors.IsErrorCode(wrapped, errors.ErrCommandSpawn) {
		t.Error("IsErrorCode() should see through fmt.Errorf wrapping")
	}
}

func TestGetErrorCode(t *testing.T) {
	if got := errors.GetErrorCode(errors.New(errors.ErrFileRead, "boom")); got != errors.ErrFileRead {
		t.Errorf("GetErrorCode() = %v, want %v", got, errors.ErrFileRead)
	}
	if got := errors.GetErrorCode(fmt.Errorf("plain")); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode() = %v, want %v", got, errors.ErrUnknown)
	}
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrCommandExit, "nonzero exit").
		WithDetail("command", "rustup").
		WithDetail("code", 1)

	if err.Details["command"] != "rustup" {
		t.Errorf("WithDetail() command = %v", err.Details["command"])
	}
	if err.Details["code"] != 1 {
		t.Errorf("WithDetail() code = %v", err.Details["code"])
	}
}
