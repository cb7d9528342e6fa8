// wiredump inspects protobuf wire-format files.
//
// With no options it lists raw fields in input order. With -schema and
// -message it renders fields using a TOML hint table, recursing into
// embedded messages. With -raw it prints a protoscope rendering of the
// undecoded bytes, which also covers wire types this decoder rejects.
//
//	wiredump -in person.bin
//	wiredump -in person.bin -schema addressbook.toml -message Person
//	wiredump -in person.bin -raw
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/protocolbuffers/protoscope"
	"github.com/rs/zerolog"

	"github.com/anirudhraja/wirelite"
	"github.com/anirudhraja/wirelite/schema"
)

func main() {
	var (
		in      = flag.String("in", "", "wire-format input file (required)")
		hints   = flag.String("schema", "", "TOML hint table for named output")
		message = flag.String("message", "", "top-level message name in the hint table")
		raw     = flag.Bool("raw", false, "print a protoscope rendering instead of decoding")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if !*verbose {
		log = log.Level(zerolog.InfoLevel)
	}

	if *in == "" {
		log.Fatal().Msg("missing -in flag")
	}

	data, err := os.ReadFile(*in)
	if err != nil {
		log.Fatal().Err(err).Str("file", *in).Msg("failed to read input")
	}
	log.Debug().Str("file", *in).Int("bytes", len(data)).Msg("read input")

	switch {
	case *raw:
		fmt.Print(protoscope.Write(data, protoscope.WriterOptions{}))

	case *hints != "":
		if *message == "" {
			log.Fatal().Msg("-schema requires -message")
		}
		h, err := schema.LoadFile(*hints)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load hint table")
		}
		m := h.Message(*message)
		if m == nil {
			log.Fatal().Str("message", *message).Msg("message not found in hint table")
		}
		if err := render(os.Stdout, data, h, m, 0); err != nil {
			log.Fatal().Err(err).Msg("decode failed")
		}

	default:
		fields, err := wirelite.Parse(data)
		if err != nil {
			log.Fatal().Err(err).Msg("decode failed")
		}
		for _, f := range fields {
			fmt.Printf("%d: %s\n", f.Number, f.Value)
		}
	}
}

// render prints one message level, looking every field number up in the hint
// table and recursing into message-kind fields.
func render(w io.Writer, data []byte, h *schema.Hints, m *schema.Message, depth int) error {
	fields, err := wirelite.Parse(data)
	if err != nil {
		return err
	}

	indent := strings.Repeat("  ", depth)
	for _, f := range fields {
		hint := m.Field(f.Number)
		if hint == nil {
			fmt.Fprintf(w, "%s%d: %s\n", indent, f.Number, f.Value)
			continue
		}

		switch hint.Kind {
		case schema.KindString:
			s, err := f.Value.AsString()
			if err != nil {
				return fmt.Errorf("field %s (%d): %w", hint.Name, f.Number, err)
			}
			fmt.Fprintf(w, "%s%s: %q\n", indent, hint.Name, s)

		case schema.KindBytes:
			b, err := f.Value.AsBytes()
			if err != nil {
				return fmt.Errorf("field %s (%d): %w", hint.Name, f.Number, err)
			}
			fmt.Fprintf(w, "%s%s: %x\n", indent, hint.Name, b)

		case schema.KindVarint:
			v, err := f.Value.AsUint64()
			if err != nil {
				return fmt.Errorf("field %s (%d): %w", hint.Name, f.Number, err)
			}
			fmt.Fprintf(w, "%s%s: %d\n", indent, hint.Name, v)

		case schema.KindFixed32:
			v, err := f.Value.AsInt32()
			if err != nil {
				return fmt.Errorf("field %s (%d): %w", hint.Name, f.Number, err)
			}
			fmt.Fprintf(w, "%s%s: %d\n", indent, hint.Name, v)

		case schema.KindMessage:
			b, err := f.Value.AsBytes()
			if err != nil {
				return fmt.Errorf("field %s (%d): %w", hint.Name, f.Number, err)
			}
			nested := h.Message(hint.Message)
			fmt.Fprintf(w, "%s%s: %s {\n", indent, hint.Name, hint.Message)
			if err := render(w, b, h, nested, depth+1); err != nil {
				return fmt.Errorf("field %s (%d): %w", hint.Name, f.Number, err)
			}
			fmt.Fprintf(w, "%s}\n", indent)
		}
	}

	return nil
}
