package wire

import (
	"encoding/binary"
)

// Decoder handles low-level protobuf wire format decoding. It holds a
// cursor over an immutable input buffer and consumes it strictly
// left-to-right; it never copies or mutates the buffer, and length-delimited
// values it produces alias it.
type Decoder struct {
	buf []byte
	pos int
}

// NewDecoder creates a new wire format decoder over data.
func NewDecoder(data []byte) *Decoder {
	return &Decoder{
		buf: data,
		pos: 0,
	}
}

// Remaining reports how many undecoded bytes are left.
func (d *Decoder) Remaining() int {
	return len(d.buf) - d.pos
}

// DecodeField decodes one complete field from the current position: the tag
// varint, then the payload dictated by the tag's wire type. The cursor is
// left at the first byte after the field.
func (d *Decoder) DecodeField() (Field, error) {
	tag, err := d.DecodeVarint()
	if err != nil {
		return Field{}, err
	}

	fieldNumber, wireType, err := ParseTag(Tag(tag))
	if err != nil {
		return Field{}, err
	}

	switch wireType {
	case WireVarint:
		v, err := d.DecodeVarint()
		if err != nil {
			return Field{}, err
		}
		return Field{Number: fieldNumber, Value: VarintValue(v)}, nil

	case WireBytes:
		data, err := d.decodeBytes()
		if err != nil {
			return Field{}, err
		}
		return Field{Number: fieldNumber, Value: BytesValue(data)}, nil

	default: // WireFixed32, ParseTag admits nothing else
		v, err := d.decodeFixed32()
		if err != nil {
			return Field{}, err
		}
		return Field{Number: fieldNumber, Value: Fixed32Value(v)}, nil
	}
}

// decodeBytes decodes a length-delimited payload without copying: the
// returned slice shares the underlying input buffer.
func (d *Decoder) decodeBytes() ([]byte, error) {
	length, err := d.DecodeVarint()
	if err != nil {
		return nil, err
	}

	n := int(length)
	if n < 0 || uint64(n) != length {
		return nil, ErrInvalidSize
	}
	if d.pos+n > len(d.buf) {
		return nil, ErrUnexpectedEOF
	}

	data := d.buf[d.pos : d.pos+n]
	d.pos += n
	return data, nil
}

// decodeFixed32 decodes 4 little-endian bytes as a signed 32-bit integer.
func (d *Decoder) decodeFixed32() (int32, error) {
	if d.pos+4 > len(d.buf) {
		return 0, ErrUnexpectedEOF
	}

	v := int32(binary.LittleEndian.Uint32(d.buf[d.pos:]))
	d.pos += 4
	return v, nil
}
