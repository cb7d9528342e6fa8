// Package schema defines field-number hint tables for rendering decoded
// wire data with names instead of bare numbers. Hints are declarative and
// optional: the decoder itself never consults them, only tooling such as
// cmd/wiredump does. Tables are written in TOML:
//
//	[[message]]
//	name = "Person"
//
//	  [[message.field]]
//	  name   = "name"
//	  number = 1
//	  kind   = "string"
//
//	  [[message.field]]
//	  name    = "phones"
//	  number  = 3
//	  kind    = "message"
//	  message = "PhoneNumber"
package schema

import (
	"github.com/anirudhraja/wirelite/wire"
)

// Kind names how a field's payload should be presented.
type Kind string

const (
	KindVarint  Kind = "varint"  // unsigned integer
	KindString  Kind = "string"  // UTF-8 text
	KindBytes   Kind = "bytes"   // opaque bytes
	KindFixed32 Kind = "fixed32" // signed 32-bit, little-endian
	KindMessage Kind = "message" // embedded message, rendered recursively
)

func (k Kind) valid() bool {
	switch k {
	case KindVarint, KindString, KindBytes, KindFixed32, KindMessage:
		return true
	}
	return false
}

// Hints is a set of message hint tables, keyed by message name after Load.
type Hints struct {
	Messages []*Message `toml:"message"`

	byName map[string]*Message
}

// Message names the fields of one message type.
type Message struct {
	Name   string   `toml:"name"`
	Fields []*Field `toml:"field"`

	byNumber map[wire.FieldNumber]*Field
}

// Field maps one field number to a name and presentation kind. Message-kind
// fields reference the nested message table by name.
type Field struct {
	Name    string `toml:"name"`
	Number  uint64 `toml:"number"`
	Kind    Kind   `toml:"kind"`
	Message string `toml:"message"`
}

// Message returns the hint table for the named message, or nil if the hints
// do not describe it.
func (h *Hints) Message(name string) *Message {
	return h.byName[name]
}

// Field returns the hint for a field number, or nil for numbers the table
// does not describe.
func (m *Message) Field(n wire.FieldNumber) *Field {
	return m.byNumber[n]
}
