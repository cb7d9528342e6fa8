package wire

import (
	"errors"
	"strings"
	"testing"
)

func TestFieldError(t *testing.T) {
	tests := []struct {
		name         string
		buildError   func() error
		expectedPath string
		expectedMsg  string
	}{
		{
			name: "single field",
			buildError: func() error {
				return wrapWithField(ErrUnexpectedWireType, 2)
			},
			expectedPath: "2",
			expectedMsg:  "unexpected wire type",
		},
		{
			name: "nested path builds outermost first",
			buildError: func() error {
				err := wrapWithField(ErrInvalidString, 1)
				err = wrapWithField(err, 3)
				err = wrapWithField(err, 5)
				return err
			},
			expectedPath: "5.3.1",
			expectedMsg:  "invalid string",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.buildError()

			var fe *FieldError
			if !errors.As(err, &fe) {
				t.Fatalf("expected FieldError, got %T", err)
			}

			msg := err.Error()
			if !strings.Contains(msg, tt.expectedPath) {
				t.Errorf("error message should contain path %q, got: %s", tt.expectedPath, msg)
			}
			if !strings.Contains(msg, tt.expectedMsg) {
				t.Errorf("error message should contain %q, got: %s", tt.expectedMsg, msg)
			}

			// The path must not repeat: wrapping merges into one FieldError.
			if strings.Count(msg, "error at field path") != 1 {
				t.Errorf("path annotation repeated: %s", msg)
			}
		})
	}
}

func TestFieldError_PreservesSentinels(t *testing.T) {
	sentinels := []error{
		ErrInvalidVarint,
		ErrInvalidWireType,
		ErrUnexpectedEOF,
		ErrInvalidSize,
		ErrUnexpectedWireType,
		ErrInvalidString,
	}
	for _, sentinel := range sentinels {
		wrapped := wrapWithField(wrapWithField(sentinel, 1), 2)
		if !errors.Is(wrapped, sentinel) {
			t.Errorf("errors.Is lost %v through wrapping", sentinel)
		}
	}
}

func TestWrapWithField_Nil(t *testing.T) {
	if err := wrapWithField(nil, 1); err != nil {
		t.Errorf("wrapWithField(nil) = %v, want nil", err)
	}
}

func TestFieldError_EmptyPath(t *testing.T) {
	fe := &FieldError{Err: ErrUnexpectedEOF}
	if fe.Error() != ErrUnexpectedEOF.Error() {
		t.Errorf("Error() = %q, want %q", fe.Error(), ErrUnexpectedEOF.Error())
	}
}
