/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package uacodec

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"io"
	"strconv"
	"strings"

	"github.com/uagate/uatypes/pkg/typetree"
)

func (c *enumCodec) DataType() *typetree.DataType { return c.dt }

// Returns enumerated value with name
func (c *enumCodec) value(n int32) EnumValue {
	f, _ := c.def.Field(int64(n))
	return EnumValue{Value: n, Name: f.Name}
}

// Returns integer of enumerated value.
//
// Value is EnumValue, integer or name of enumeration field
func (c *enumCodec) number(v any) (int32, error) {
	if name, ok := v.(string); ok {
		f, ok := c.def.FieldByName(name)
		if !ok {
			return 0, ErrInvalidValue("%v has no field «%s»", c.dt, name)
		}
		v = f.Value
	}
	n, err := signed(v, 32)
	return int32(n), err
}

// Returns enumerated value of enum field. Codec is nil if enumeration is not known by manager
func enumValue(codec any, n int32) EnumValue {
	if c, ok := codec.(*enumCodec); ok {
		return c.value(n)
	}
	return EnumValue{Value: n}
}

func enumInt(codec any, v any) (int32, error) {
	if c, ok := codec.(*enumCodec); ok {
		return c.number(v)
	}
	n, err := signed(v, 32)
	return int32(n), err
}

// Parses XML text «Name_Value» or «Value»
func parseEnumText(codec any, s string) (EnumValue, error) {
	if i := strings.LastIndexByte(s, enumXMLSeparator); i >= 0 {
		s = s[i+1:]
	}
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return EnumValue{}, ErrMalformedData("enumerated value «%s»: %v", s, err)
	}
	return enumValue(codec, int32(n)), nil
}

func (c *enumCodec) EncodeBinary(_ context.Context, w io.Writer, v any) error {
	n, err := c.number(v)
	if err != nil {
		return err
	}
	return write(w, n)
}

func (c *enumCodec) DecodeBinary(_ context.Context, r io.Reader) (any, error) {
	n, err := read[int32](r)
	if err != nil {
		return nil, err
	}
	return c.value(n), nil
}

func (c *enumCodec) EncodeJSON(_ context.Context, v any) ([]byte, error) {
	n, err := c.number(v)
	if err != nil {
		return nil, err
	}
	return json.Marshal(n)
}

// Decodes integer or name of enumeration field
func (c *enumCodec) DecodeJSON(_ context.Context, data []byte) (any, error) {
	return decodeEnumJSON(c, data)
}

func decodeEnumJSON(codec any, data []byte) (EnumValue, error) {
	var n int32
	if err := json.Unmarshal(data, &n); err == nil {
		return enumValue(codec, n), nil
	}
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return EnumValue{}, ErrMalformedData("enumerated value %s: %v", data, err)
	}
	n, err := enumInt(codec, name)
	if err != nil {
		return EnumValue{}, err
	}
	return enumValue(codec, n), nil
}

func (c *enumCodec) EncodeXML(_ context.Context, e *xml.Encoder, start xml.StartElement, v any) error {
	n, err := c.number(v)
	if err != nil {
		return err
	}
	return writeTextElement(e, start, c.value(n).String())
}

func (c *enumCodec) DecodeXML(_ context.Context, d *xml.Decoder, start xml.StartElement) (any, error) {
	s, err := readTextElement(d, start)
	if err != nil {
		return nil, err
	}
	return parseEnumText(c, s)
}
