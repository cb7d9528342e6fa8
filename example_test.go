package wirelite_test

import (
	"fmt"
	"log"

	"github.com/anirudhraja/wirelite"
	"github.com/anirudhraja/wirelite/addressbook"
)

// The tutorial address book entry: name "maxwell", id 42, two phones.
var personData = []byte{
	0x0a, 0x07, 'm', 'a', 'x', 'w', 'e', 'l', 'l',
	0x10, 0x2a,
	0x1a, 0x16,
	0x0a, 0x0e, '+', '1', '2', '0', '2', '-', '5', '5', '5', '-', '1', '2', '1', '2',
	0x12, 0x04, 'h', 'o', 'm', 'e',
	0x1a, 0x18,
	0x0a, 0x0e, '+', '1', '8', '0', '0', '-', '8', '6', '7', '-', '5', '3', '0', '8',
	0x12, 0x06, 'm', 'o', 'b', 'i', 'l', 'e',
}

func ExampleUnmarshal() {
	var person addressbook.Person
	if err := wirelite.Unmarshal(personData, &person); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%s (#%d)\n", person.Name, person.ID)
	for _, pn := range person.Phones {
		fmt.Printf("%s: %s\n", pn.Type, pn.Number)
	}

	// Output:
	// maxwell (#42)
	// home: +1202-555-1212
	// mobile: +1800-867-5308
}

func ExampleParse() {
	fields, err := wirelite.Parse(personData)
	if err != nil {
		log.Fatal(err)
	}

	for _, f := range fields {
		fmt.Printf("%d: %s\n", f.Number, f.Value)
	}

	// Output:
	// 1: bytes(7)
	// 2: varint(42)
	// 3: bytes(22)
	// 3: bytes(24)
}

func ExampleUnmarshalStruct() {
	type PhoneNumber struct {
		Number string `wire:"1"`
		Type   string `wire:"2"`
	}
	type Person struct {
		Name   string        `wire:"1"`
		ID     uint64        `wire:"2"`
		Phones []PhoneNumber `wire:"3"`
	}

	var person Person
	if err := wirelite.UnmarshalStruct(personData, &person); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%s has %d phone numbers\n", person.Name, len(person.Phones))

	// Output:
	// maxwell has 2 phone numbers
}
