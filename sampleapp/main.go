package main

import (
	"fmt"
	"log"
	"strings"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/anirudhraja/wirelite"
	"github.com/anirudhraja/wirelite/addressbook"
)

// The sample app encodes an address book entry with the official protowire
// appenders (wirelite is decode-only) and then decodes it three different
// ways: through a typed record, through the reflection sink, and as a raw
// field listing.
func main() {
	payload := buildPerson()

	fmt.Println("wirelite sample app")
	fmt.Println(strings.Repeat("=", 50))
	fmt.Printf("payload: % x\n\n", payload)

	// 1. Typed record implementing wire.Unmarshaler.
	var person addressbook.Person
	if err := wirelite.Unmarshal(payload, &person); err != nil {
		log.Fatalf("Failed to decode person: %v", err)
	}
	fmt.Printf("typed decode:   name=%q id=%d\n", person.Name, person.ID)
	for i, pn := range person.Phones {
		fmt.Printf("  phone[%d]: %s (%s)\n", i, pn.Number, pn.Type)
	}

	// 2. Reflection over `wire` struct tags.
	type phone struct {
		Number string `wire:"1"`
		Type   string `wire:"2"`
	}
	type taggedPerson struct {
		Name   string  `wire:"1"`
		ID     uint64  `wire:"2"`
		Phones []phone `wire:"3"`
	}
	var tp taggedPerson
	if err := wirelite.UnmarshalStruct(payload, &tp); err != nil {
		log.Fatalf("Failed to decode tagged struct: %v", err)
	}
	fmt.Printf("\nreflect decode: %+v\n", tp)

	// 3. Schema-less raw fields.
	fields, err := wirelite.Parse(payload)
	if err != nil {
		log.Fatalf("Failed to parse raw fields: %v", err)
	}
	fmt.Println("\nraw fields:")
	for _, f := range fields {
		fmt.Printf("  %d: %s\n", f.Number, f.Value)
	}
}

func buildPerson() []byte {
	phone1 := protowire.AppendTag(nil, 1, protowire.BytesType)
	phone1 = protowire.AppendString(phone1, "+1202-555-1212")
	phone1 = protowire.AppendTag(phone1, 2, protowire.BytesType)
	phone1 = protowire.AppendString(phone1, "home")

	phone2 := protowire.AppendTag(nil, 1, protowire.BytesType)
	phone2 = protowire.AppendString(phone2, "+1800-867-5308")
	phone2 = protowire.AppendTag(phone2, 2, protowire.BytesType)
	phone2 = protowire.AppendString(phone2, "mobile")

	b := protowire.AppendTag(nil, 1, protowire.BytesType)
	b = protowire.AppendString(b, "maxwell")
	b = protowire.AppendTag(b, 2, protowire.VarintType)
	b = protowire.AppendVarint(b, 42)
	b = protowire.AppendTag(b, 3, protowire.BytesType)
	b = protowire.AppendBytes(b, phone1)
	b = protowire.AppendTag(b, 3, protowire.BytesType)
	b = protowire.AppendBytes(b, phone2)
	return b
}
