package wire

import (
	"errors"
	"fmt"
	"strings"
)

// Decode errors. Every failure mode of the decoder maps to exactly one of
// these sentinels; callers match them with errors.Is.
var (
	// ErrInvalidVarint reports a varint whose continuation bit never
	// clears within the supported length, or a buffer that ends mid-varint.
	ErrInvalidVarint = errors.New("invalid varint")

	// ErrInvalidWireType reports a tag whose low 3 bits are not a
	// supported wire type (0, 2 or 5).
	ErrInvalidWireType = errors.New("invalid wire type")

	// ErrUnexpectedEOF reports a declared field payload that exceeds the
	// remaining buffer.
	ErrUnexpectedEOF = errors.New("unexpected EOF")

	// ErrInvalidSize reports a length-delimited size that does not fit
	// the platform's int.
	ErrInvalidSize = errors.New("invalid size")

	// ErrUnexpectedWireType reports an accessor applied to a value of a
	// different wire type.
	ErrUnexpectedWireType = errors.New("unexpected wire type")

	// ErrInvalidString reports length-delimited bytes requested as a
	// string that are not valid UTF-8.
	ErrInvalidString = errors.New("invalid string: not valid UTF-8")
)

// FieldError annotates a decode error with the path of field numbers leading
// to it, outermost first. Unmarshal builds the path as errors propagate out
// of nested messages, so a failure three levels deep reads e.g.
// "error at field path 3.1: invalid string: not valid UTF-8".
type FieldError struct {
	FieldPath []FieldNumber
	Err       error // underlying error
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	if len(e.FieldPath) == 0 {
		return e.Err.Error()
	}

	parts := make([]string, len(e.FieldPath))
	for i, fn := range e.FieldPath {
		parts[i] = fmt.Sprintf("%d", fn)
	}
	return fmt.Sprintf("error at field path %s: %v", strings.Join(parts, "."), e.Err)
}

// Unwrap returns the underlying error, keeping errors.Is/errors.As working
// across the path annotation.
func (e *FieldError) Unwrap() error {
	return e.Err
}

// wrapWithField prepends a field number to an error's path, merging with an
// existing FieldError instead of nesting.
func wrapWithField(err error, fieldNumber FieldNumber) error {
	if err == nil {
		return nil
	}

	var fe *FieldError
	if errors.As(err, &fe) {
		return &FieldError{
			FieldPath: append([]FieldNumber{fieldNumber}, fe.FieldPath...),
			Err:       fe.Err,
		}
	}

	return &FieldError{
		FieldPath: []FieldNumber{fieldNumber},
		Err:       err,
	}
}
