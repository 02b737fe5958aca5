/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package uacodec

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"strconv"
	"time"

	"github.com/uagate/uatypes/pkg/dtmanager"
	"github.com/uagate/uatypes/pkg/ua"
)

var jsonNull = []byte("null")

func (c *structCodec) EncodeJSON(ctx context.Context, v any) ([]byte, error) {
	s, err := c.asStruct(v)
	if err != nil {
		return nil, err
	}
	fields, err := c.fieldCodecs(ctx)
	if err != nil {
		return nil, err
	}

	buf := bytes.Buffer{}
	buf.WriteByte('{')
	if c.def.StructureType.IsUnion() {
		idx, err := c.unionField(s)
		if err != nil {
			return nil, err
		}
		writeJSONKey(&buf, name_SwitchField)
		buf.WriteString(strconv.Itoa(idx + 1))
		if idx >= 0 {
			buf.WriteByte(',')
			writeJSONKey(&buf, name_Value)
			if err := c.encodeFieldJSON(ctx, &buf, fields[idx], s.Fields[0].Value); err != nil {
				return nil, err
			}
		}
	} else {
		values, encode, _ := c.present(s, fields)
		first := true
		for i, fc := range fields {
			if !encode[i] {
				continue
			}
			if !first {
				buf.WriteByte(',')
			}
			first = false
			writeJSONKey(&buf, fc.field.Name)
			if err := c.encodeFieldJSON(ctx, &buf, fc, values[i]); err != nil {
				return nil, err
			}
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeJSONKey(buf *bytes.Buffer, key string) {
	k, _ := json.Marshal(key)
	buf.Write(k)
	buf.WriteByte(':')
}

func (c *structCodec) encodeFieldJSON(ctx context.Context, buf *bytes.Buffer, fc fieldCodec, v any) error {
	if !fc.field.IsArray() {
		return c.encodeValueJSON(ctx, buf, fc, v)
	}
	if v == nil {
		buf.Write(jsonNull)
		return nil
	}
	items, ok := v.([]any)
	if !ok {
		return ErrInvalidValue("%T is not array for field «%s» of %v", v, fc.field.Name, c.dt)
	}
	buf.WriteByte('[')
	for i, item := range items {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := c.encodeValueJSON(ctx, buf, fc, item); err != nil {
			return err
		}
	}
	buf.WriteByte(']')
	return nil
}

func (c *structCodec) encodeValueJSON(ctx context.Context, buf *bytes.Buffer, fc fieldCodec, v any) (err error) {
	var data []byte
	switch fc.kind {
	case fieldKind_Enum:
		var n int32
		if n, err = enumInt(fc.nested, v); err == nil {
			data, err = json.Marshal(n)
		}
	case fieldKind_Struct:
		jc, ok := fc.nested.(dtmanager.IJSONCodec)
		if !ok {
			return dtmanager.ErrUnsupported("JSON encoding of %v", fc.nested.DataType())
		}
		data, err = jc.EncodeJSON(ctx, v)
	case fieldKind_Extension:
		data, err = c.encodeExtensionJSON(ctx, v)
	default:
		data, err = builtinJSON(fc.builtin, v)
	}
	if err != nil {
		return err
	}
	buf.Write(data)
	return nil
}

// Encodes extension object as {"TypeId": "<JSON encoding id>", "Body": {...}}.
//
// Data type id is used if JSON encoding id is unknown
func (c *structCodec) encodeExtensionJSON(ctx context.Context, v any) ([]byte, error) {
	if v == nil {
		return jsonNull, nil
	}
	jc, s, err := extensionCodec[dtmanager.IJSONCodec](ctx, c.m, v)
	if err != nil {
		return nil, err
	}
	ext := jsonExtension{TypeID: s.DataTypeID}
	if encID, ok := c.m.JSONEncodingID(ctx, s.DataTypeID); ok {
		ext.TypeID = encID
	}
	if ext.Body, err = jc.EncodeJSON(ctx, s); err != nil {
		return nil, err
	}
	return json.Marshal(ext)
}

func (c *structCodec) DecodeJSON(ctx context.Context, data []byte) (any, error) {
	fields, err := c.fieldCodecs(ctx)
	if err != nil {
		return nil, err
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, ErrMalformedData("%v: %v", c.dt, err)
	}
	if obj == nil {
		return nil, nil
	}
	s := &Struct{DataTypeID: c.dt.ID()}

	if c.def.StructureType.IsUnion() {
		var sw uint32
		if raw, ok := obj[name_SwitchField]; ok {
			if err := json.Unmarshal(raw, &sw); err != nil {
				return nil, ErrMalformedData("switch field of union %v: %v", c.dt, err)
			}
		}
		if sw == 0 {
			return s, nil
		}
		if int(sw) > len(fields) {
			return nil, ErrMalformedData("switch field %d of union %v", sw, c.dt)
		}
		fc := fields[sw-1]
		v, err := c.decodeFieldJSON(ctx, fc, obj[name_Value])
		if err != nil {
			return nil, err
		}
		s.Fields = append(s.Fields, Field{Name: fc.field.Name, Value: v})
		return s, nil
	}

	optional := c.def.StructureType.HasOptionalFields()
	for _, fc := range fields {
		raw, ok := obj[fc.field.Name]
		if optional && fc.field.IsOptional && (!ok || isJSONNull(raw)) {
			continue
		}
		v, err := c.decodeFieldJSON(ctx, fc, raw)
		if err != nil {
			return nil, err
		}
		s.Fields = append(s.Fields, Field{Name: fc.field.Name, Value: v})
	}
	return s, nil
}

func isJSONNull(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), jsonNull)
}

func (c *structCodec) decodeFieldJSON(ctx context.Context, fc fieldCodec, raw json.RawMessage) (any, error) {
	if !fc.field.IsArray() {
		return c.decodeValueJSON(ctx, fc, raw)
	}
	if isJSONNull(raw) {
		return nil, nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, ErrMalformedData("array field «%s» of %v: %v", fc.field.Name, c.dt, err)
	}
	res := make([]any, len(items))
	for i, item := range items {
		v, err := c.decodeValueJSON(ctx, fc, item)
		if err != nil {
			return nil, err
		}
		res[i] = v
	}
	return res, nil
}

func (c *structCodec) decodeValueJSON(ctx context.Context, fc fieldCodec, raw json.RawMessage) (any, error) {
	switch fc.kind {
	case fieldKind_Enum:
		if isJSONNull(raw) {
			return enumValue(fc.nested, 0), nil
		}
		return decodeEnumJSON(fc.nested, raw)
	case fieldKind_Struct:
		jc, ok := fc.nested.(dtmanager.IJSONCodec)
		if !ok {
			return nil, dtmanager.ErrUnsupported("JSON encoding of %v", fc.nested.DataType())
		}
		if isJSONNull(raw) {
			return nil, nil
		}
		return jc.DecodeJSON(ctx, raw)
	case fieldKind_Extension:
		if isJSONNull(raw) {
			return nil, nil
		}
		var ext jsonExtension
		if err := json.Unmarshal(raw, &ext); err != nil {
			return nil, ErrMalformedData("extension object field «%s» of %v: %v", fc.field.Name, c.dt, err)
		}
		jc, err := codecOf[dtmanager.IJSONCodec](ctx, c.m, ext.TypeID)
		if err != nil {
			return nil, err
		}
		return jc.DecodeJSON(ctx, ext.Body)
	}
	return builtinFromJSON(fc.builtin, raw)
}

// Encodes built-in value. 64-bit integers are strings, special floats are "NaN", "Infinity" and "-Infinity"
func builtinJSON(bt ua.BuiltinType, value any) ([]byte, error) {
	v, err := normalize(bt, value)
	if err != nil {
		return nil, err
	}
	switch x := v.(type) {
	case int64:
		v = strconv.FormatInt(x, 10)
	case uint64:
		v = strconv.FormatUint(x, 10)
	case float32:
		v = jsonFloat(float64(x), x)
	case float64:
		v = jsonFloat(x, x)
	case time.Time:
		v = x.UTC().Format(time.RFC3339Nano)
	case ua.StatusCode:
		v = uint32(x)
	}
	return json.Marshal(v)
}

func jsonFloat(f float64, v any) any {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	return v
}

func builtinFromJSON(bt ua.BuiltinType, raw json.RawMessage) (any, error) {
	if isJSONNull(raw) {
		return normalize(bt, nil)
	}
	var s string
	quoted := json.Unmarshal(raw, &s) == nil
	switch bt {
	case ua.BuiltinType_Boolean:
		var b bool
		if err := json.Unmarshal(raw, &b); err != nil {
			return nil, ErrMalformedData("%v %s: %v", bt, raw, err)
		}
		return b, nil
	case ua.BuiltinType_Float, ua.BuiltinType_Double:
		if quoted {
			switch s {
			case "NaN":
				return normalize(bt, math.NaN())
			case "Infinity":
				return normalize(bt, math.Inf(1))
			case "-Infinity":
				return normalize(bt, math.Inf(-1))
			}
		}
	case ua.BuiltinType_String, ua.BuiltinType_XmlElement:
		if !quoted {
			return nil, ErrMalformedData("%v %s", bt, raw)
		}
		return s, nil
	case ua.BuiltinType_LocalizedText:
		var lt ua.LocalizedText
		if err := json.Unmarshal(raw, &lt); err != nil {
			return nil, ErrMalformedData("%v: %v", bt, err)
		}
		return lt, nil
	case ua.BuiltinType_ByteString:
		var b []byte
		if err := json.Unmarshal(raw, &b); err != nil {
			return nil, ErrMalformedData("%v: %v", bt, err)
		}
		return b, nil
	}
	if quoted {
		return parseBuiltinText(bt, s)
	}
	return parseBuiltinText(bt, string(raw))
}
