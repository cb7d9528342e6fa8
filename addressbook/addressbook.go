// Package addressbook holds the example record types used throughout the
// repository: by the tests, the sample app, the conformance harness and the
// benchmarks. The field numbers follow the classic protobuf tutorial
// address book schema.
package addressbook

import (
	"github.com/anirudhraja/wirelite/wire"
)

// PhoneNumber is a nested message with two string fields.
type PhoneNumber struct {
	Number string // field 1
	Type   string // field 2
}

// UnmarshalField implements wire.Unmarshaler.
func (p *PhoneNumber) UnmarshalField(f wire.Field) error {
	switch f.Number {
	case 1:
		s, err := f.Value.AsString()
		if err != nil {
			return err
		}
		p.Number = s
	case 2:
		s, err := f.Value.AsString()
		if err != nil {
			return err
		}
		p.Type = s
	}
	return nil
}

// Person is the top-level message: a name, a numeric id and any number of
// phone entries.
type Person struct {
	Name   string         // field 1
	ID     uint64         // field 2
	Phones []*PhoneNumber // field 3, repeated
}

// UnmarshalField implements wire.Unmarshaler. Field 3 carries an embedded
// PhoneNumber message and is decoded recursively.
func (p *Person) UnmarshalField(f wire.Field) error {
	switch f.Number {
	case 1:
		s, err := f.Value.AsString()
		if err != nil {
			return err
		}
		p.Name = s
	case 2:
		id, err := f.Value.AsUint64()
		if err != nil {
			return err
		}
		p.ID = id
	case 3:
		data, err := f.Value.AsBytes()
		if err != nil {
			return err
		}
		var pn PhoneNumber
		if err := wire.Unmarshal(data, &pn); err != nil {
			return err
		}
		p.Phones = append(p.Phones, &pn)
	}
	return nil
}
