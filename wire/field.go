package wire

import (
	"fmt"
	"unicode/utf8"
)

// FieldValue is a decoded field payload, typed by its wire type. Values of
// type WireBytes borrow from the buffer they were decoded out of: the slice
// is valid only as long as that buffer is, and nothing is copied until an
// accessor asks for a string.
type FieldValue struct {
	wireType WireType
	varint   uint64
	fixed32  int32
	raw      []byte // aliases the decode input for WireBytes values
}

// VarintValue builds a WireVarint field value.
func VarintValue(v uint64) FieldValue {
	return FieldValue{wireType: WireVarint, varint: v}
}

// BytesValue builds a WireBytes field value borrowing data. The caller keeps
// ownership of the slice; it is not copied.
func BytesValue(data []byte) FieldValue {
	return FieldValue{wireType: WireBytes, raw: data}
}

// Fixed32Value builds a WireFixed32 field value.
func Fixed32Value(v int32) FieldValue {
	return FieldValue{wireType: WireFixed32, fixed32: v}
}

// WireType reports which variant this value holds.
func (v FieldValue) WireType() WireType {
	return v.wireType
}

// AsString interprets a WireBytes value as UTF-8 text. The bytes are copied
// into a new string here, on demand. Wrong variant fails with
// ErrUnexpectedWireType, non-UTF-8 data with ErrInvalidString.
func (v FieldValue) AsString() (string, error) {
	if v.wireType != WireBytes {
		return "", ErrUnexpectedWireType
	}
	if !utf8.Valid(v.raw) {
		return "", ErrInvalidString
	}
	return string(v.raw), nil
}

// AsBytes returns a WireBytes value's borrowed byte range unchanged, with no
// copy and no validation.
func (v FieldValue) AsBytes() ([]byte, error) {
	if v.wireType != WireBytes {
		return nil, ErrUnexpectedWireType
	}
	return v.raw, nil
}

// AsUint64 returns a WireVarint value.
func (v FieldValue) AsUint64() (uint64, error) {
	if v.wireType != WireVarint {
		return 0, ErrUnexpectedWireType
	}
	return v.varint, nil
}

// AsInt32 returns a WireFixed32 value.
func (v FieldValue) AsInt32() (int32, error) {
	if v.wireType != WireFixed32 {
		return 0, ErrUnexpectedWireType
	}
	return v.fixed32, nil
}

// String formats the value for diagnostics, e.g. in wiredump output.
func (v FieldValue) String() string {
	switch v.wireType {
	case WireVarint:
		return fmt.Sprintf("varint(%d)", v.varint)
	case WireBytes:
		return fmt.Sprintf("bytes(%d)", len(v.raw))
	case WireFixed32:
		return fmt.Sprintf("fixed32(%d)", v.fixed32)
	default:
		return "invalid"
	}
}

// Field pairs a field number with its decoded value.
type Field struct {
	Number FieldNumber
	Value  FieldValue
}
