package wire

// maxVarintBytes caps the varint scan at 7 bytes (49 bits of magnitude).
// The standard wire format allows up to 10, but every tag and length this
// decoder meets in practice fits well inside 7, and the cap keeps the
// failure mode simple: an eighth continuation byte is ErrInvalidVarint.
const maxVarintBytes = 7

// DecodeVarint decodes a base-128 varint from the current position and
// advances past it. Each byte contributes its low 7 bits, least-significant
// group first; the high bit is the continuation flag. Running out of buffer
// before the continuation bit clears, or scanning maxVarintBytes bytes
// without a terminator, fails with ErrInvalidVarint.
func (d *Decoder) DecodeVarint() (uint64, error) {
	var result uint64
	var shift uint

	for i := 0; i < maxVarintBytes; i++ {
		if d.pos >= len(d.buf) {
			return 0, ErrInvalidVarint
		}

		b := d.buf[d.pos]
		d.pos++

		result |= uint64(b&0x7f) << shift

		if b&0x80 == 0 {
			return result, nil
		}

		shift += 7
	}

	return 0, ErrInvalidVarint
}
