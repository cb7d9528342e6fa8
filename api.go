// Package wirelite decodes protobuf wire-format data without generated code.
// It supports the varint, length-delimited and fixed32 wire types, decoding
// into caller-defined record types through the wire.Unmarshaler interface.
// Length-delimited values borrow from the input buffer; decoded records must
// not outlive it unless they copy.
package wirelite

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/anirudhraja/wirelite/wire"
)

// Unmarshal decodes protobuf wire data into v, calling v.UnmarshalField for
// every field in the buffer.
func Unmarshal(data []byte, v wire.Unmarshaler) error {
	return wire.Unmarshal(data, v)
}

// Parse decodes protobuf wire data without a target type, returning the raw
// fields in input order. Length-delimited values alias data.
func Parse(data []byte) ([]wire.Field, error) {
	d := wire.NewDecoder(data)

	var fields []wire.Field
	for d.Remaining() > 0 {
		f, err := d.DecodeField()
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
	return fields, nil
}

// UnmarshalStruct decodes protobuf wire data into a struct using reflection.
// Struct fields opt in with a `wire:"N"` tag naming their field number:
//
//	type Person struct {
//		Name   string        `wire:"1"`
//		ID     uint64        `wire:"2"`
//		Phones []PhoneNumber `wire:"3"`
//	}
//
// Integer and bool fields decode from varints, string and []byte fields from
// length-delimited payloads, int32 fields also from fixed32, and struct (or
// pointer-to-struct) fields from length-delimited payloads as nested
// messages. A slice field appends one element per occurrence of its number.
// Wire fields with no matching tag are ignored.
func UnmarshalStruct(data []byte, v interface{}) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("unmarshal target must be a pointer to struct, got %T", v)
	}

	sink, err := newStructSink(rv.Elem())
	if err != nil {
		return err
	}
	return wire.Unmarshal(data, sink)
}

// structSink adapts a tagged struct to the wire.Unmarshaler interface.
type structSink struct {
	fields map[wire.FieldNumber]reflect.Value
}

func newStructSink(rv reflect.Value) (*structSink, error) {
	rt := rv.Type()
	sink := &structSink{fields: make(map[wire.FieldNumber]reflect.Value)}

	for i := 0; i < rt.NumField(); i++ {
		tag := rt.Field(i).Tag.Get("wire")
		if tag == "" || tag == "-" {
			continue
		}
		num, err := strconv.ParseUint(tag, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid wire tag %q on field %s.%s: %v", tag, rt.Name(), rt.Field(i).Name, err)
		}
		if !rv.Field(i).CanSet() {
			return nil, fmt.Errorf("wire-tagged field %s.%s is not settable", rt.Name(), rt.Field(i).Name)
		}
		sink.fields[wire.FieldNumber(num)] = rv.Field(i)
	}
	return sink, nil
}

func (s *structSink) UnmarshalField(f wire.Field) error {
	dst, ok := s.fields[f.Number]
	if !ok {
		return nil
	}
	return setFieldValue(dst, f.Value)
}

// setFieldValue applies one decoded value to a struct field, converting per
// the field's Go type.
func setFieldValue(dst reflect.Value, v wire.FieldValue) error {
	switch dst.Kind() {
	case reflect.String:
		s, err := v.AsString()
		if err != nil {
			return err
		}
		dst.SetString(s)
		return nil

	case reflect.Bool:
		u, err := v.AsUint64()
		if err != nil {
			return err
		}
		dst.SetBool(u != 0)
		return nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := v.AsUint64()
		if err != nil {
			return err
		}
		dst.SetUint(u)
		return nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if v.WireType() == wire.WireFixed32 {
			n, err := v.AsInt32()
			if err != nil {
				return err
			}
			dst.SetInt(int64(n))
			return nil
		}
		u, err := v.AsUint64()
		if err != nil {
			return err
		}
		dst.SetInt(int64(u))
		return nil

	case reflect.Slice:
		if dst.Type().Elem().Kind() == reflect.Uint8 {
			b, err := v.AsBytes()
			if err != nil {
				return err
			}
			dst.SetBytes(b)
			return nil
		}
		elem := reflect.New(dst.Type().Elem()).Elem()
		if err := setFieldValue(elem, v); err != nil {
			return err
		}
		dst.Set(reflect.Append(dst, elem))
		return nil

	case reflect.Ptr:
		if dst.IsNil() {
			dst.Set(reflect.New(dst.Type().Elem()))
		}
		return setFieldValue(dst.Elem(), v)

	case reflect.Struct:
		data, err := v.AsBytes()
		if err != nil {
			return err
		}
		nested, err := newStructSink(dst)
		if err != nil {
			return err
		}
		return wire.Unmarshal(data, nested)

	default:
		return fmt.Errorf("cannot decode %s value into %s", v.WireType(), dst.Type())
	}
}
