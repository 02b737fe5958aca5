/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package uacodec

import (
	"context"
	"encoding/xml"
	"strconv"

	"github.com/uagate/uatypes/pkg/dtmanager"
	"github.com/uagate/uatypes/pkg/ua"
)

func element(name string) xml.StartElement {
	return xml.StartElement{Name: xml.Name{Local: name}}
}

func writeTextElement(e *xml.Encoder, start xml.StartElement, text string) error {
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if text != "" {
		if err := e.EncodeToken(xml.CharData(text)); err != nil {
			return err
		}
	}
	return e.EncodeToken(start.End())
}

func readTextElement(d *xml.Decoder, start xml.StartElement) (string, error) {
	var s string
	if err := d.DecodeElement(&s, &start); err != nil {
		return "", ErrMalformedData("element «%s»: %v", start.Name.Local, err)
	}
	return s, nil
}

// Encodes structure as element per field. Absent optional fields and nil arrays are omitted.
//
// Union is encoded as «SwitchField» element followed by field element. Caller flushes encoder
func (c *structCodec) EncodeXML(ctx context.Context, e *xml.Encoder, start xml.StartElement, v any) error {
	s, err := c.asStruct(v)
	if err != nil {
		return err
	}
	fields, err := c.fieldCodecs(ctx)
	if err != nil {
		return err
	}
	if start.Name.Local == "" {
		start = element(c.dt.Name().Name)
	}
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	if c.def.StructureType.IsUnion() {
		idx, err := c.unionField(s)
		if err != nil {
			return err
		}
		if err := writeTextElement(e, element(name_SwitchField), strconv.Itoa(idx+1)); err != nil {
			return err
		}
		if idx >= 0 {
			if err := c.encodeFieldXML(ctx, e, fields[idx], s.Fields[0].Value); err != nil {
				return err
			}
		}
	} else {
		values, encode, _ := c.present(s, fields)
		for i, fc := range fields {
			if !encode[i] {
				continue
			}
			if err := c.encodeFieldXML(ctx, e, fc, values[i]); err != nil {
				return err
			}
		}
	}

	return e.EncodeToken(start.End())
}

// Returns element name of array items
func itemName(fc fieldCodec) string {
	switch {
	case fc.nested != nil:
		return fc.nested.DataType().Name().Name
	case fc.kind == fieldKind_Extension:
		return ua.BuiltinType_ExtensionObject.String()
	}
	return fc.builtin.String()
}

func (c *structCodec) encodeFieldXML(ctx context.Context, e *xml.Encoder, fc fieldCodec, v any) error {
	start := element(fc.field.Name)
	if !fc.field.IsArray() {
		return c.encodeValueXML(ctx, e, fc, start, v)
	}
	if v == nil {
		return nil
	}
	items, ok := v.([]any)
	if !ok {
		return ErrInvalidValue("%T is not array for field «%s» of %v", v, fc.field.Name, c.dt)
	}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	item := element(itemName(fc))
	for _, it := range items {
		if err := c.encodeValueXML(ctx, e, fc, item, it); err != nil {
			return err
		}
	}
	return e.EncodeToken(start.End())
}

func (c *structCodec) encodeValueXML(ctx context.Context, e *xml.Encoder, fc fieldCodec, start xml.StartElement, v any) error {
	switch fc.kind {
	case fieldKind_Enum:
		n, err := enumInt(fc.nested, v)
		if err != nil {
			return err
		}
		return writeTextElement(e, start, enumValue(fc.nested, n).String())
	case fieldKind_Struct:
		xc, ok := fc.nested.(dtmanager.IXMLCodec)
		if !ok {
			return dtmanager.ErrUnsupported("XML encoding of %v", fc.nested.DataType())
		}
		return xc.EncodeXML(ctx, e, start, v)
	case fieldKind_Extension:
		return c.encodeExtensionXML(ctx, e, start, v)
	}
	n, err := normalize(fc.builtin, v)
	if err != nil {
		return err
	}
	if lt, ok := n.(ua.LocalizedText); ok {
		return e.EncodeElement(lt, start)
	}
	return writeTextElement(e, start, builtinText(n))
}

// Encodes extension object as «TypeId/Identifier» and «Body» elements.
//
// Data type id is used if XML encoding id is unknown
func (c *structCodec) encodeExtensionXML(ctx context.Context, e *xml.Encoder, start xml.StartElement, v any) error {
	if v == nil {
		return writeTextElement(e, start, "")
	}
	xc, s, err := extensionCodec[dtmanager.IXMLCodec](ctx, c.m, v)
	if err != nil {
		return err
	}
	typeID := s.DataTypeID
	if encID, ok := c.m.XMLEncodingID(ctx, s.DataTypeID); ok {
		typeID = encID
	}

	typeIDElement, body := element(name_TypeID), element(name_Body)
	for _, tok := range []xml.Token{start, typeIDElement} {
		if err := e.EncodeToken(tok); err != nil {
			return err
		}
	}
	if err := writeTextElement(e, element(name_Identifier), typeID.String()); err != nil {
		return err
	}
	for _, tok := range []xml.Token{typeIDElement.End(), body} {
		if err := e.EncodeToken(tok); err != nil {
			return err
		}
	}
	if err := xc.EncodeXML(ctx, e, element(xc.DataType().Name().Name), s); err != nil {
		return err
	}
	if err := e.EncodeToken(body.End()); err != nil {
		return err
	}
	return e.EncodeToken(start.End())
}

func (c *structCodec) DecodeXML(ctx context.Context, d *xml.Decoder, start xml.StartElement) (any, error) {
	fields, err := c.fieldCodecs(ctx)
	if err != nil {
		return nil, err
	}
	values := make([]any, len(fields))
	found := make([]bool, len(fields))
	var sw uint64

	for {
		tok, err := d.Token()
		if err != nil {
			return nil, ErrMalformedData("%v: %v", c.dt, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if c.def.StructureType.IsUnion() && t.Name.Local == name_SwitchField {
				text, err := readTextElement(d, t)
				if err != nil {
					return nil, err
				}
				if sw, err = strconv.ParseUint(text, 10, 32); err != nil {
					return nil, ErrMalformedData("switch field of union %v: %v", c.dt, err)
				}
				continue
			}
			i := c.fieldIndex(t.Name.Local)
			if i < 0 {
				if err := d.Skip(); err != nil {
					return nil, ErrMalformedData("%v: %v", c.dt, err)
				}
				continue
			}
			if values[i], err = c.decodeFieldXML(ctx, d, t, fields[i]); err != nil {
				return nil, err
			}
			found[i] = true
		case xml.EndElement:
			return c.collectXML(fields, values, found, int(sw))
		}
	}
}

// Returns structure from decoded fields. Absent fields of plain structures get zero values
func (c *structCodec) collectXML(fields []fieldCodec, values []any, found []bool, sw int) (any, error) {
	s := &Struct{DataTypeID: c.dt.ID()}

	if c.def.StructureType.IsUnion() {
		if sw == 0 {
			return s, nil
		}
		if sw > len(fields) || !found[sw-1] {
			return nil, ErrMalformedData("switch field %d of union %v", sw, c.dt)
		}
		s.Fields = append(s.Fields, Field{Name: fields[sw-1].field.Name, Value: values[sw-1]})
		return s, nil
	}

	optional := c.def.StructureType.HasOptionalFields()
	for i, fc := range fields {
		if !found[i] {
			if optional && fc.field.IsOptional {
				continue
			}
			values[i] = zeroValue(fc)
		}
		s.Fields = append(s.Fields, Field{Name: fc.field.Name, Value: values[i]})
	}
	return s, nil
}

func zeroValue(fc fieldCodec) any {
	switch {
	case fc.field.IsArray():
		return nil
	case fc.kind == fieldKind_Enum:
		return enumValue(fc.nested, 0)
	case fc.kind == fieldKind_Builtin:
		v, _ := normalize(fc.builtin, nil)
		return v
	}
	return nil
}

func (c *structCodec) decodeFieldXML(ctx context.Context, d *xml.Decoder, start xml.StartElement, fc fieldCodec) (any, error) {
	if !fc.field.IsArray() {
		return c.decodeValueXML(ctx, d, start, fc)
	}
	items := []any{}
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, ErrMalformedData("array field «%s» of %v: %v", fc.field.Name, c.dt, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			v, err := c.decodeValueXML(ctx, d, t, fc)
			if err != nil {
				return nil, err
			}
			items = append(items, v)
		case xml.EndElement:
			return items, nil
		}
	}
}

func (c *structCodec) decodeValueXML(ctx context.Context, d *xml.Decoder, start xml.StartElement, fc fieldCodec) (any, error) {
	switch fc.kind {
	case fieldKind_Enum:
		text, err := readTextElement(d, start)
		if err != nil {
			return nil, err
		}
		return parseEnumText(fc.nested, text)
	case fieldKind_Struct:
		xc, ok := fc.nested.(dtmanager.IXMLCodec)
		if !ok {
			return nil, dtmanager.ErrUnsupported("XML encoding of %v", fc.nested.DataType())
		}
		return xc.DecodeXML(ctx, d, start)
	case fieldKind_Extension:
		return c.decodeExtensionXML(ctx, d)
	}
	if fc.builtin == ua.BuiltinType_LocalizedText {
		var lt ua.LocalizedText
		if err := d.DecodeElement(&lt, &start); err != nil {
			return nil, ErrMalformedData("element «%s»: %v", start.Name.Local, err)
		}
		return lt, nil
	}
	text, err := readTextElement(d, start)
	if err != nil {
		return nil, err
	}
	return parseBuiltinText(fc.builtin, text)
}

// Decodes extension object content. Empty element is nil
func (c *structCodec) decodeExtensionXML(ctx context.Context, d *xml.Decoder) (any, error) {
	var (
		typeID ua.NodeID
		res    any
	)
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, ErrMalformedData("extension object: %v", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case name_TypeID:
				var id struct {
					Identifier string
				}
				if err := d.DecodeElement(&id, &t); err != nil {
					return nil, ErrMalformedData("extension object type id: %v", err)
				}
				if typeID, err = ua.ParseNodeID(id.Identifier); err != nil {
					return nil, ErrMalformedData("extension object type id: %v", err)
				}
			case name_Body:
				xc, err := codecOf[dtmanager.IXMLCodec](ctx, c.m, typeID)
				if err != nil {
					return nil, err
				}
				if res, err = decodeBodyXML(ctx, d, xc); err != nil {
					return nil, err
				}
			default:
				if err := d.Skip(); err != nil {
					return nil, ErrMalformedData("extension object: %v", err)
				}
			}
		case xml.EndElement:
			return res, nil
		}
	}
}

// Decodes first element of extension object body
func decodeBodyXML(ctx context.Context, d *xml.Decoder, xc dtmanager.IXMLCodec) (any, error) {
	var res any
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, ErrMalformedData("extension object body: %v", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if res != nil {
				if err := d.Skip(); err != nil {
					return nil, ErrMalformedData("extension object body: %v", err)
				}
				continue
			}
			if res, err = xc.DecodeXML(ctx, d, t); err != nil {
				return nil, err
			}
		case xml.EndElement:
			return res, nil
		}
	}
}
