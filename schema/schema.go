package schema

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/anirudhraja/wirelite/wire"
)

// LoadFile reads and validates a TOML hint table from path.
func LoadFile(path string) (*Hints, error) {
	var h Hints
	if _, err := toml.DecodeFile(path, &h); err != nil {
		return nil, fmt.Errorf("failed to parse hints file %s: %v", path, err)
	}
	if err := h.index(); err != nil {
		return nil, fmt.Errorf("invalid hints file %s: %v", path, err)
	}
	return &h, nil
}

// Load parses and validates a TOML hint table from a string.
func Load(data string) (*Hints, error) {
	var h Hints
	if _, err := toml.Decode(data, &h); err != nil {
		return nil, fmt.Errorf("failed to parse hints: %v", err)
	}
	if err := h.index(); err != nil {
		return nil, err
	}
	return &h, nil
}

// index builds the lookup maps and rejects malformed tables: duplicate
// message names or field numbers, unknown kinds, and message-kind fields
// whose reference is missing or dangling.
func (h *Hints) index() error {
	h.byName = make(map[string]*Message, len(h.Messages))
	for _, m := range h.Messages {
		if m.Name == "" {
			return fmt.Errorf("message with empty name")
		}
		if _, ok := h.byName[m.Name]; ok {
			return fmt.Errorf("duplicate message %q", m.Name)
		}
		h.byName[m.Name] = m

		m.byNumber = make(map[wire.FieldNumber]*Field, len(m.Fields))
		for _, f := range m.Fields {
			if f.Name == "" {
				return fmt.Errorf("message %q: field %d has no name", m.Name, f.Number)
			}
			if !f.Kind.valid() {
				return fmt.Errorf("message %q: field %q has unknown kind %q", m.Name, f.Name, f.Kind)
			}
			if f.Kind == KindMessage && f.Message == "" {
				return fmt.Errorf("message %q: field %q is message-kind but names no message", m.Name, f.Name)
			}
			if f.Kind != KindMessage && f.Message != "" {
				return fmt.Errorf("message %q: field %q is %s-kind but names message %q", m.Name, f.Name, f.Kind, f.Message)
			}
			n := wire.FieldNumber(f.Number)
			if _, ok := m.byNumber[n]; ok {
				return fmt.Errorf("message %q: duplicate field number %d", m.Name, f.Number)
			}
			m.byNumber[n] = f
		}
	}

	// Message references can only be checked once every table is indexed.
	for _, m := range h.Messages {
		for _, f := range m.Fields {
			if f.Kind == KindMessage {
				if _, ok := h.byName[f.Message]; !ok {
					return fmt.Errorf("message %q: field %q references unknown message %q", m.Name, f.Name, f.Message)
				}
			}
		}
	}
	return nil
}
