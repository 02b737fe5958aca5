/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package uacodec

import (
	"bytes"
	"context"
	"io"

	"github.com/uagate/uatypes/pkg/dtmanager"
	"github.com/uagate/uatypes/pkg/typetree"
	"github.com/uagate/uatypes/pkg/ua"
)

func (c *structCodec) DataType() *typetree.DataType { return c.dt }

// Checks value is structure of codec data type. Nil is empty structure
func (c *structCodec) asStruct(v any) (*Struct, error) {
	var s *Struct
	switch x := v.(type) {
	case nil:
		return &Struct{DataTypeID: c.dt.ID()}, nil
	case *Struct:
		s = x
	case Struct:
		s = &x
	default:
		return nil, ErrInvalidValue("%T is not structure %v", v, c.dt)
	}
	if !s.DataTypeID.IsNull() && s.DataTypeID != c.dt.ID() {
		return nil, ErrInvalidValue("structure %v is not %v", s.DataTypeID, c.dt)
	}
	for _, f := range s.Fields {
		if c.fieldIndex(f.Name) < 0 {
			return nil, ErrInvalidValue("%v has no field «%s»", c.dt, f.Name)
		}
	}
	return s, nil
}

func (c *structCodec) fieldIndex(name string) int {
	for i := range c.def.Fields {
		if c.def.Fields[i].Name == name {
			return i
		}
	}
	return -1
}

// Resolves how to encode every field
func (c *structCodec) fieldCodecs(ctx context.Context) ([]fieldCodec, error) {
	res := make([]fieldCodec, len(c.def.Fields))
	for i := range c.def.Fields {
		f := &c.def.Fields[i]
		fc := fieldCodec{field: f}
		switch {
		case c.m.IsEnumType(ctx, f.DataType):
			fc.kind, fc.builtin = fieldKind_Enum, ua.BuiltinType_Int32
			fc.nested, _ = c.m.Codec(ctx, f.DataType)
		default:
			bt, ok := c.m.BuiltinType(ctx, f.DataType)
			if !ok {
				return nil, dtmanager.ErrUnsupported("data type %v of field «%s» of %v is unknown", f.DataType, f.Name, c.dt)
			}
			fc.builtin = bt
			if bt == ua.BuiltinType_ExtensionObject {
				fc.kind = fieldKind_Extension
				if nested, ok := c.m.Codec(ctx, f.DataType); ok && !nested.DataType().IsAbstract() {
					fc.kind, fc.nested = fieldKind_Struct, nested
				}
			} else if !supportedBuiltin(bt) {
				return nil, dtmanager.ErrUnsupported("%v field «%s» of %v", bt, f.Name, c.dt)
			}
		}
		res[i] = fc
	}
	return res, nil
}

// Returns index of union field which value has. Returns -1 if value has no fields
func (c *structCodec) unionField(s *Struct) (int, error) {
	switch len(s.Fields) {
	case 0:
		return -1, nil
	case 1:
		return c.fieldIndex(s.Fields[0].Name), nil
	}
	return -1, ErrInvalidValue("union %v value has %d fields", c.dt, len(s.Fields))
}

// Returns values of fields to encode, absent optional fields are skipped.
//
// For structures with optional fields also returns encoding mask
func (c *structCodec) present(s *Struct, fields []fieldCodec) (values []any, encode []bool, mask uint32) {
	values = make([]any, len(fields))
	encode = make([]bool, len(fields))
	bit := 0
	for i, fc := range fields {
		v, ok := s.Get(fc.field.Name)
		values[i] = v
		encode[i] = true
		if fc.field.IsOptional && c.def.StructureType.HasOptionalFields() {
			encode[i] = ok && v != nil
			if encode[i] {
				mask |= 1 << bit
			}
			bit++
		}
	}
	return values, encode, mask
}

func (c *structCodec) EncodeBinary(ctx context.Context, w io.Writer, v any) error {
	s, err := c.asStruct(v)
	if err != nil {
		return err
	}
	fields, err := c.fieldCodecs(ctx)
	if err != nil {
		return err
	}

	if c.def.StructureType.IsUnion() {
		idx, err := c.unionField(s)
		if err != nil {
			return err
		}
		if err := write(w, uint32(idx+1)); err != nil {
			return err
		}
		if idx < 0 {
			return nil
		}
		return c.encodeFieldBinary(ctx, w, fields[idx], s.Fields[0].Value)
	}

	values, encode, mask := c.present(s, fields)
	if c.def.StructureType.HasOptionalFields() {
		if err := write(w, mask); err != nil {
			return err
		}
	}
	for i, fc := range fields {
		if !encode[i] {
			continue
		}
		if err := c.encodeFieldBinary(ctx, w, fc, values[i]); err != nil {
			return err
		}
	}
	return nil
}

func (c *structCodec) encodeFieldBinary(ctx context.Context, w io.Writer, fc fieldCodec, v any) error {
	if !fc.field.IsArray() {
		return c.encodeValueBinary(ctx, w, fc, v)
	}
	if v == nil {
		return write(w, int32(-1))
	}
	items, ok := v.([]any)
	if !ok {
		return ErrInvalidValue("%T is not array for field «%s» of %v", v, fc.field.Name, c.dt)
	}
	if err := write(w, int32(len(items))); err != nil {
		return err
	}
	for _, item := range items {
		if err := c.encodeValueBinary(ctx, w, fc, item); err != nil {
			return err
		}
	}
	return nil
}

func (c *structCodec) encodeValueBinary(ctx context.Context, w io.Writer, fc fieldCodec, v any) error {
	switch fc.kind {
	case fieldKind_Enum:
		n, err := enumInt(fc.nested, v)
		if err != nil {
			return err
		}
		return write(w, n)
	case fieldKind_Struct:
		bc, ok := fc.nested.(dtmanager.IBinaryCodec)
		if !ok {
			return dtmanager.ErrUnsupported("binary encoding of %v", fc.nested.DataType())
		}
		return bc.EncodeBinary(ctx, w, v)
	case fieldKind_Extension:
		return c.encodeExtensionBinary(ctx, w, v)
	}
	return writeBuiltin(w, fc.builtin, v)
}

// Writes encoding id, body encoding byte and length-prefixed body
func (c *structCodec) encodeExtensionBinary(ctx context.Context, w io.Writer, v any) error {
	if v == nil {
		if err := writeNodeID(w, ua.NullNodeID); err != nil {
			return err
		}
		return write(w, extensionBody_None)
	}
	bc, s, err := extensionCodec[dtmanager.IBinaryCodec](ctx, c.m, v)
	if err != nil {
		return err
	}
	encID, ok := c.m.BinaryEncodingID(ctx, s.DataTypeID)
	if !ok {
		return dtmanager.ErrUnsupported("binary encoding of %v is unknown", s.DataTypeID)
	}
	body := bytes.Buffer{}
	if err := bc.EncodeBinary(ctx, &body, s); err != nil {
		return err
	}
	if err := writeNodeID(w, encID); err != nil {
		return err
	}
	if err := write(w, extensionBody_Binary); err != nil {
		return err
	}
	return writeBytes(w, body.Bytes())
}

// Returns codec of extension object value
func extensionCodec[C dtmanager.ICodec](ctx context.Context, m dtmanager.IDataTypeManager, v any) (C, *Struct, error) {
	s, ok := v.(*Struct)
	if !ok {
		var codec C
		return codec, nil, ErrInvalidValue("%T is not structure", v)
	}
	codec, err := codecOf[C](ctx, m, s.DataTypeID)
	return codec, s, err
}

// Returns codec by encoding id or by data type id
func codecOf[C dtmanager.ICodec](ctx context.Context, m dtmanager.IDataTypeManager, id ua.NodeID) (C, error) {
	c, ok := m.Codec(ctx, id)
	if !ok {
		var codec C
		return codec, dtmanager.ErrUnsupported("codec of %v is unknown", id)
	}
	codec, ok := c.(C)
	if !ok {
		return codec, dtmanager.ErrUnsupported("codec of %v does not support required encoding", id)
	}
	return codec, nil
}

func (c *structCodec) DecodeBinary(ctx context.Context, r io.Reader) (any, error) {
	fields, err := c.fieldCodecs(ctx)
	if err != nil {
		return nil, err
	}
	s := &Struct{DataTypeID: c.dt.ID()}

	if c.def.StructureType.IsUnion() {
		sw, err := read[uint32](r)
		if err != nil {
			return nil, err
		}
		if sw == 0 {
			return s, nil
		}
		if int(sw) > len(fields) {
			return nil, ErrMalformedData("switch field %d of union %v", sw, c.dt)
		}
		fc := fields[sw-1]
		v, err := c.decodeFieldBinary(ctx, r, fc)
		if err != nil {
			return nil, err
		}
		s.Fields = append(s.Fields, Field{Name: fc.field.Name, Value: v})
		return s, nil
	}

	var mask uint32
	optional := c.def.StructureType.HasOptionalFields()
	if optional {
		if mask, err = read[uint32](r); err != nil {
			return nil, err
		}
	}
	bit := 0
	for _, fc := range fields {
		if optional && fc.field.IsOptional {
			present := mask&(1<<bit) != 0
			bit++
			if !present {
				continue
			}
		}
		v, err := c.decodeFieldBinary(ctx, r, fc)
		if err != nil {
			return nil, err
		}
		s.Fields = append(s.Fields, Field{Name: fc.field.Name, Value: v})
	}
	return s, nil
}

func (c *structCodec) decodeFieldBinary(ctx context.Context, r io.Reader, fc fieldCodec) (any, error) {
	if !fc.field.IsArray() {
		return c.decodeValueBinary(ctx, r, fc)
	}
	l, err := readLength(r, maxArrayLength)
	if err != nil || l < 0 {
		return nil, err
	}
	items := make([]any, l)
	for i := range items {
		if items[i], err = c.decodeValueBinary(ctx, r, fc); err != nil {
			return nil, err
		}
	}
	return items, nil
}

func (c *structCodec) decodeValueBinary(ctx context.Context, r io.Reader, fc fieldCodec) (any, error) {
	switch fc.kind {
	case fieldKind_Enum:
		n, err := read[int32](r)
		if err != nil {
			return nil, err
		}
		return enumValue(fc.nested, n), nil
	case fieldKind_Struct:
		bc, ok := fc.nested.(dtmanager.IBinaryCodec)
		if !ok {
			return nil, dtmanager.ErrUnsupported("binary encoding of %v", fc.nested.DataType())
		}
		return bc.DecodeBinary(ctx, r)
	case fieldKind_Extension:
		return c.decodeExtensionBinary(ctx, r)
	}
	return readBuiltin(r, fc.builtin)
}

func (c *structCodec) decodeExtensionBinary(ctx context.Context, r io.Reader) (any, error) {
	encID, err := readNodeID(r)
	if err != nil {
		return nil, err
	}
	enc, err := read[byte](r)
	if err != nil {
		return nil, err
	}
	switch enc {
	case extensionBody_None:
		return nil, nil
	case extensionBody_Binary:
	default:
		return nil, dtmanager.ErrUnsupported("extension object body encoding 0x%02X", enc)
	}
	body, err := readBytes(r)
	if err != nil {
		return nil, err
	}
	bc, err := codecOf[dtmanager.IBinaryCodec](ctx, c.m, encID)
	if err != nil {
		return nil, err
	}
	return bc.DecodeBinary(ctx, bytes.NewReader(body))
}
