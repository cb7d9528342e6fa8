package wire

// Unmarshaler is the capability a record type implements to accept decoded
// fields. UnmarshalField must either apply the field to the receiver or
// silently ignore field numbers it does not recognize; it should return an
// error when a recognized field arrives with an unusable wire type. A field
// recognized as an embedded message extracts the value with AsBytes and
// calls Unmarshal recursively on a fresh instance of the nested type.
type Unmarshaler interface {
	UnmarshalField(f Field) error
}

// Unmarshal decodes an entire wire-format buffer into m, one field at a
// time. A fully successful decode consumes every byte; an empty buffer
// leaves m untouched. The first error — from field decoding or from m
// itself — aborts the decode and propagates, annotated with the offending
// field number. There is no partial-result recovery.
func Unmarshal(data []byte, m Unmarshaler) error {
	d := NewDecoder(data)

	for d.Remaining() > 0 {
		f, err := d.DecodeField()
		if err != nil {
			return err
		}
		if err := m.UnmarshalField(f); err != nil {
			return wrapWithField(err, f.Number)
		}
	}

	return nil
}
