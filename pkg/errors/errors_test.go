// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and code lookup

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/simenv/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "profile_not_found",
			code:    errors.ErrProfileNotFound,
			message: "no profile named harmonic",
			wantStr: "[PROFILE_NOT_FOUND] no profile named harmonic",
		},
		{
			name:    "invalid_input",
			code:    errors.ErrInvalidInput,
			message: "missing command",
			wantStr: "[INVALID_INPUT] missing command",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
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

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrShellUnsupported, "unsupported shell %q", "tcsh")
	if err.Message != `unsupported shell "tcsh"` {
		t.Errorf("Newf() message = %q", err.Message)
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrConfigLoad, "cannot load config")

		wantStr := "[CONFIG_LOAD] cannot load config: base error"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
		if !stderrors.Is(err, baseErr) {
			t.Error("Wrap() should preserve wrapped error")
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		if err := errors.Wrap(nil, errors.ErrInternal, "internal error"); err != nil {
			t.Error("Wrap(nil) should return nil")
		}
		if err := errors.Wrapf(nil, errors.ErrInternal, "internal %d", 1); err != nil {
			t.Error("Wrapf(nil) should return nil")
		}
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrConfigValid, "bad step").
		WithDetail("profile", "gazebo-garden").
		WithDetail("step", 3)

	if err.Details["profile"] != "gazebo-garden" {
		t.Errorf("WithDetail() profile = %v", err.Details["profile"])
	}
	if got := errors.GetErrorDetails(err)["step"]; got != 3 {
		t.Errorf("GetErrorDetails() step = %v", got)
	}
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrExecFailed, "error 1")
	err2 := errors.New(errors.ErrExecFailed, "error 2")
	err3 := errors.New(errors.ErrInternal, "error 3")

	if !stderrors.Is(err1, err2) {
		t.Error("errors.Is() should match on code")
	}
	if err1.Is(err3) {
		t.Error("Is() should return false for different codes")
	}
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{"matching_code", errors.New(errors.ErrConfigParse, "x"), errors.ErrConfigParse, true},
		{"different_code", errors.New(errors.ErrConfigParse, "x"), errors.ErrInternal, false},
		{"wrapped_error", errors.Wrap(stderrors.New("base"), errors.ErrFileWrite, "denied"), errors.ErrFileWrite, true},
		{"standard_error", stderrors.New("standard error"), errors.ErrConfigParse, false},
		{"nil_error", nil, errors.ErrConfigParse, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.IsErrorCode(tt.err, tt.code); got != tt.expected {
				t.Errorf("IsErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	if got := errors.GetErrorCode(errors.New(errors.ErrAlreadyExists, "exists")); got != errors.ErrAlreadyExists {
		t.Errorf("GetErrorCode() = %v", got)
	}
	if got := errors.GetErrorCode(stderrors.New("plain")); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode() = %v, want UNKNOWN", got)
	}
	if got := errors.GetErrorCode(nil); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode(nil) = %v, want UNKNOWN", got)
	}
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("root cause")
	parseErr := errors.Wrap(rootCause, errors.ErrConfigParse, "cannot parse config.toml")
	loadErr := errors.Wrap(parseErr, errors.ErrConfigLoad, "failed to load config")

	if !errors.IsErrorCode(loadErr, errors.ErrConfigLoad) {
		t.Error("top level should have CONFIG_LOAD code")
	}

	var se *errors.SimenvError
	if stderrors.As(stderrors.Unwrap(loadErr), &se) && se.Code != errors.ErrConfigParse {
		t.Errorf("middle error code = %v, want CONFIG_PARSE", se.Code)
	}

	if !stderrors.Is(loadErr, rootCause) {
		t.Error("should find root cause with errors.Is")
	}
}
