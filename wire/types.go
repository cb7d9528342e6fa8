package wire

// ===== PROTOBUF WIRE FORMAT TYPES =====

// WireType represents the protobuf wire format types this package decodes.
// Fixed64 (1) and the deprecated group types (3, 4) are not supported.
type WireType int32

const (
	WireVarint  WireType = 0 // int32, int64, uint32, uint64, bool, enum
	WireBytes   WireType = 2 // string, bytes, embedded messages
	WireFixed32 WireType = 5 // sfixed32 and friends, little-endian
)

// String returns the lowercase name of the wire type, for diagnostics.
func (wt WireType) String() string {
	switch wt {
	case WireVarint:
		return "varint"
	case WireBytes:
		return "bytes"
	case WireFixed32:
		return "fixed32"
	default:
		return "invalid"
	}
}

// FieldNumber represents a protobuf field number. The wire format places no
// upper bound on it beyond the tag varint itself, so it is kept as uint64.
type FieldNumber uint64

// Tag represents a protobuf field tag (field number + wire type).
type Tag uint64

// MakeTag creates a tag from field number and wire type.
func MakeTag(fieldNumber FieldNumber, wireType WireType) Tag {
	return Tag(uint64(fieldNumber)<<3 | uint64(wireType))
}

// ParseTag splits a tag into field number and wire type. Low-3-bit patterns
// other than 0, 2 and 5 fail with ErrInvalidWireType.
func ParseTag(tag Tag) (FieldNumber, WireType, error) {
	switch wt := WireType(tag & 0x7); wt {
	case WireVarint, WireBytes, WireFixed32:
		return FieldNumber(tag >> 3), wt, nil
	default:
		return 0, 0, ErrInvalidWireType
	}
}
