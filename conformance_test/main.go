// Conformance harness: encodes address book messages with the official
// protobuf runtime (dynamicpb over a descriptor built at startup), decodes
// the resulting bytes with wirelite, and compares field by field. Exits
// non-zero if any case disagrees.
//
//	go run ./conformance_test
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/dynamicpb"

	"github.com/anirudhraja/wirelite"
	"github.com/anirudhraja/wirelite/addressbook"
)

type phone struct {
	number string
	typ    string
}

type testCase struct {
	name   string
	person string
	id     uint64
	phones []phone
}

var cases = []testCase{
	{
		name:   "tutorial person",
		person: "maxwell",
		id:     42,
		phones: []phone{
			{"+1202-555-1212", "home"},
			{"+1800-867-5308", "mobile"},
		},
	},
	{
		name: "all defaults",
	},
	{
		name:   "unicode name",
		person: "mäxwell 🌐",
		id:     7,
	},
	{
		name:   "large id",
		id:     (1 << 48) + 12345, // stays inside the 7-byte varint cap
		person: "big",
	},
	{
		name:   "many phones",
		person: "operator",
		id:     1,
		phones: func() []phone {
			ps := make([]phone, 25)
			for i := range ps {
				ps[i] = phone{fmt.Sprintf("+1-555-%04d", i), "work"}
			}
			return ps
		}(),
	},
}

func main() {
	personDesc, err := buildDescriptor()
	if err != nil {
		log.Fatalf("conformance: failed to build descriptor: %v", err)
	}

	failures := 0
	for _, tc := range cases {
		payload, err := encodeReference(personDesc, tc)
		if err != nil {
			log.Fatalf("conformance: %s: reference encode failed: %v", tc.name, err)
		}

		if err := runCase(tc, payload); err != nil {
			log.Printf("FAIL %s: %v", tc.name, err)
			failures++
			continue
		}
		log.Printf("PASS %s (%d bytes)", tc.name, len(payload))
	}

	if failures > 0 {
		log.Printf("conformance: %d/%d cases failed", failures, len(cases))
		os.Exit(1)
	}
	log.Printf("conformance: all %d cases passed", len(cases))
}

// runCase decodes the reference payload with wirelite and diffs the result
// against the inputs. It also checks that decoding is idempotent.
func runCase(tc testCase, payload []byte) error {
	var got addressbook.Person
	if err := wirelite.Unmarshal(payload, &got); err != nil {
		return fmt.Errorf("decode: %v", err)
	}

	var diffs []string
	if got.Name != tc.person {
		diffs = append(diffs, fmt.Sprintf("name: got %q, want %q", got.Name, tc.person))
	}
	if got.ID != tc.id {
		diffs = append(diffs, fmt.Sprintf("id: got %d, want %d", got.ID, tc.id))
	}
	if len(got.Phones) != len(tc.phones) {
		diffs = append(diffs, fmt.Sprintf("phones: got %d entries, want %d", len(got.Phones), len(tc.phones)))
	} else {
		for i, want := range tc.phones {
			if got.Phones[i].Number != want.number || got.Phones[i].Type != want.typ {
				diffs = append(diffs, fmt.Sprintf("phones[%d]: got (%q,%q), want (%q,%q)",
					i, got.Phones[i].Number, got.Phones[i].Type, want.number, want.typ))
			}
		}
	}
	if len(diffs) > 0 {
		return fmt.Errorf("mismatch:\n  %s", strings.Join(diffs, "\n  "))
	}

	var again addressbook.Person
	if err := wirelite.Unmarshal(payload, &again); err != nil {
		return fmt.Errorf("second decode: %v", err)
	}
	if again.Name != got.Name || again.ID != got.ID || len(again.Phones) != len(got.Phones) {
		return fmt.Errorf("decode is not idempotent")
	}
	return nil
}

// encodeReference marshals a test case with dynamicpb + proto.Marshal.
func encodeReference(desc protoreflect.MessageDescriptor, tc testCase) ([]byte, error) {
	msg := dynamicpb.NewMessage(desc)
	fields := desc.Fields()

	if tc.person != "" {
		msg.Set(fields.ByName("name"), protoreflect.ValueOfString(tc.person))
	}
	if tc.id != 0 {
		msg.Set(fields.ByName("id"), protoreflect.ValueOfUint64(tc.id))
	}
	if len(tc.phones) > 0 {
		list := msg.Mutable(fields.ByName("phones")).List()
		phoneFields := fields.ByName("phones").Message().Fields()
		for _, p := range tc.phones {
			el := list.NewElement()
			pm := el.Message()
			pm.Set(phoneFields.ByName("number"), protoreflect.ValueOfString(p.number))
			pm.Set(phoneFields.ByName("type"), protoreflect.ValueOfString(p.typ))
			list.Append(el)
		}
	}

	return proto.Marshal(msg)
}

// buildDescriptor assembles the address book schema in memory; the repo
// deliberately ships no .proto files or generated code.
func buildDescriptor() (protoreflect.MessageDescriptor, error) {
	stringField := func(name string, number int32) *descriptorpb.FieldDescriptorProto {
		return &descriptorpb.FieldDescriptorProto{
			Name:     proto.String(name),
			Number:   proto.Int32(number),
			Type:     descriptorpb.FieldDescriptorProto_TYPE_STRING.Enum(),
			Label:    descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
			JsonName: proto.String(name),
		}
	}

	fdp := &descriptorpb.FileDescriptorProto{
		Name:    proto.String("addressbook.proto"),
		Package: proto.String("addressbook"),
		Syntax:  proto.String("proto3"),
		MessageType: []*descriptorpb.DescriptorProto{
			{
				Name: proto.String("PhoneNumber"),
				Field: []*descriptorpb.FieldDescriptorProto{
					stringField("number", 1),
					stringField("type", 2),
				},
			},
			{
				Name: proto.String("Person"),
				Field: []*descriptorpb.FieldDescriptorProto{
					stringField("name", 1),
					{
						Name:     proto.String("id"),
						Number:   proto.Int32(2),
						Type:     descriptorpb.FieldDescriptorProto_TYPE_UINT64.Enum(),
						Label:    descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
						JsonName: proto.String("id"),
					},
					{
						Name:     proto.String("phones"),
						Number:   proto.Int32(3),
						Type:     descriptorpb.FieldDescriptorProto_TYPE_MESSAGE.Enum(),
						Label:    descriptorpb.FieldDescriptorProto_LABEL_REPEATED.Enum(),
						TypeName: proto.String(".addressbook.PhoneNumber"),
						JsonName: proto.String("phones"),
					},
				},
			},
		},
	}

	fd, err := protodesc.NewFile(fdp, nil)
	if err != nil {
		return nil, err
	}
	return fd.Messages().ByName("Person"), nil
}
