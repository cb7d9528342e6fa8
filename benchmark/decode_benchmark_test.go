package benchmark

import (
	"fmt"
	"testing"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/anirudhraja/wirelite"
	"github.com/anirudhraja/wirelite/addressbook"
)

// Benchmark payloads, built once with the official protowire appenders.
var (
	// Small: one person, two phones (the tutorial fixture).
	smallPayload []byte

	// Large: one person with 200 phone entries.
	largePayload []byte
)

func init() {
	smallPayload = buildPerson("maxwell", 42, 2)
	largePayload = buildPerson("switchboard operator", 99, 200)
}

func buildPerson(name string, id uint64, phones int) []byte {
	b := protowire.AppendTag(nil, 1, protowire.BytesType)
	b = protowire.AppendString(b, name)
	b = protowire.AppendTag(b, 2, protowire.VarintType)
	b = protowire.AppendVarint(b, id)
	for i := 0; i < phones; i++ {
		p := protowire.AppendTag(nil, 1, protowire.BytesType)
		p = protowire.AppendString(p, fmt.Sprintf("+1-555-%04d", i))
		p = protowire.AppendTag(p, 2, protowire.BytesType)
		p = protowire.AppendString(p, "work")
		b = protowire.AppendTag(b, 3, protowire.BytesType)
		b = protowire.AppendBytes(b, p)
	}
	return b
}

func benchmarkSink(b *testing.B, payload []byte) {
	b.ReportAllocs()
	b.SetBytes(int64(len(payload)))
	for i := 0; i < b.N; i++ {
		var p addressbook.Person
		if err := wirelite.Unmarshal(payload, &p); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUnmarshalSink_Small(b *testing.B) { benchmarkSink(b, smallPayload) }
func BenchmarkUnmarshalSink_Large(b *testing.B) { benchmarkSink(b, largePayload) }

func benchmarkParse(b *testing.B, payload []byte) {
	b.ReportAllocs()
	b.SetBytes(int64(len(payload)))
	for i := 0; i < b.N; i++ {
		if _, err := wirelite.Parse(payload); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParse_Small(b *testing.B) { benchmarkParse(b, smallPayload) }
func BenchmarkParse_Large(b *testing.B) { benchmarkParse(b, largePayload) }

func benchmarkStruct(b *testing.B, payload []byte) {
	type phone struct {
		Number string `wire:"1"`
		Type   string `wire:"2"`
	}
	type person struct {
		Name   string  `wire:"1"`
		ID     uint64  `wire:"2"`
		Phones []phone `wire:"3"`
	}

	b.ReportAllocs()
	b.SetBytes(int64(len(payload)))
	for i := 0; i < b.N; i++ {
		var p person
		if err := wirelite.UnmarshalStruct(payload, &p); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUnmarshalStruct_Small(b *testing.B) { benchmarkStruct(b, smallPayload) }
func BenchmarkUnmarshalStruct_Large(b *testing.B) { benchmarkStruct(b, largePayload) }

// benchmarkProtowire is the baseline: the official low-level consume loop
// with no field dispatch at all.
func benchmarkProtowire(b *testing.B, payload []byte) {
	b.ReportAllocs()
	b.SetBytes(int64(len(payload)))
	for i := 0; i < b.N; i++ {
		rest := payload
		for len(rest) > 0 {
			num, typ, n := protowire.ConsumeField(rest)
			if n < 0 {
				b.Fatalf("consume failed at field %d (%v)", num, typ)
			}
			rest = rest[n:]
		}
	}
}

func BenchmarkProtowireConsume_Small(b *testing.B) { benchmarkProtowire(b, smallPayload) }
func BenchmarkProtowireConsume_Large(b *testing.B) { benchmarkProtowire(b, largePayload) }
