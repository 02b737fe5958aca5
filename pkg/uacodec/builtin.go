/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package uacodec

import (
	"encoding/base64"
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/uagate/uatypes/pkg/dtmanager"
	"github.com/uagate/uatypes/pkg/ua"
)

// Returns is built-in type values can be encoded by codecs
func supportedBuiltin(bt ua.BuiltinType) bool {
	switch bt {
	case ua.BuiltinType_Boolean,
		ua.BuiltinType_SByte, ua.BuiltinType_Byte,
		ua.BuiltinType_Int16, ua.BuiltinType_UInt16,
		ua.BuiltinType_Int32, ua.BuiltinType_UInt32,
		ua.BuiltinType_Int64, ua.BuiltinType_UInt64,
		ua.BuiltinType_Float, ua.BuiltinType_Double,
		ua.BuiltinType_String, ua.BuiltinType_XmlElement,
		ua.BuiltinType_DateTime, ua.BuiltinType_Guid, ua.BuiltinType_ByteString,
		ua.BuiltinType_NodeId, ua.BuiltinType_StatusCode, ua.BuiltinType_QualifiedName,
		ua.BuiltinType_LocalizedText:
		return true
	}
	return false
}

// Converts value to Go type of built-in type.
//
// Nil is converted to zero value. Integers are range checked
func normalize(bt ua.BuiltinType, v any) (any, error) {
	switch bt {
	case ua.BuiltinType_Boolean:
		if v == nil {
			return false, nil
		}
		if b, ok := v.(bool); ok {
			return b, nil
		}
	case ua.BuiltinType_SByte:
		n, err := signed(v, 8)
		return int8(n), err
	case ua.BuiltinType_Int16:
		n, err := signed(v, 16)
		return int16(n), err
	case ua.BuiltinType_Int32:
		n, err := signed(v, 32)
		return int32(n), err
	case ua.BuiltinType_Int64:
		return signed(v, 64)
	case ua.BuiltinType_Byte:
		n, err := unsigned(v, 8)
		return uint8(n), err
	case ua.BuiltinType_UInt16:
		n, err := unsigned(v, 16)
		return uint16(n), err
	case ua.BuiltinType_UInt32:
		n, err := unsigned(v, 32)
		return uint32(n), err
	case ua.BuiltinType_UInt64:
		return unsigned(v, 64)
	case ua.BuiltinType_Float:
		f, err := float(v)
		return float32(f), err
	case ua.BuiltinType_Double:
		return float(v)
	case ua.BuiltinType_String, ua.BuiltinType_XmlElement:
		if v == nil {
			return "", nil
		}
		if s, ok := v.(string); ok {
			return s, nil
		}
	case ua.BuiltinType_DateTime:
		if v == nil {
			return time.Time{}, nil
		}
		if t, ok := v.(time.Time); ok {
			return t, nil
		}
	case ua.BuiltinType_Guid:
		switch g := v.(type) {
		case nil:
			return uuid.Nil, nil
		case uuid.UUID:
			return g, nil
		case string:
			id, err := uuid.Parse(g)
			if err != nil {
				return uuid.Nil, ErrInvalidValue("guid «%s»: %v", g, err)
			}
			return id, nil
		}
	case ua.BuiltinType_ByteString:
		switch b := v.(type) {
		case nil:
			return []byte(nil), nil
		case []byte:
			return b, nil
		}
	case ua.BuiltinType_NodeId:
		switch id := v.(type) {
		case nil:
			return ua.NullNodeID, nil
		case ua.NodeID:
			return id, nil
		case string:
			n, err := ua.ParseNodeID(id)
			if err != nil {
				return ua.NullNodeID, ErrInvalidValue("%v", err)
			}
			return n, nil
		}
	case ua.BuiltinType_StatusCode:
		if sc, ok := v.(ua.StatusCode); ok {
			return sc, nil
		}
		n, err := unsigned(v, 32)
		return ua.StatusCode(n), err
	case ua.BuiltinType_QualifiedName:
		switch qn := v.(type) {
		case nil:
			return ua.QualifiedName{}, nil
		case ua.QualifiedName:
			return qn, nil
		case string:
			q, err := ua.ParseQualifiedName(qn)
			if err != nil {
				return ua.QualifiedName{}, ErrInvalidValue("%v", err)
			}
			return q, nil
		}
	case ua.BuiltinType_LocalizedText:
		switch lt := v.(type) {
		case nil:
			return ua.LocalizedText{}, nil
		case ua.LocalizedText:
			return lt, nil
		case string:
			return ua.LocalizedText{Text: lt}, nil
		}
	default:
		return nil, dtmanager.ErrUnsupported("built-in type %v", bt)
	}
	return nil, ErrInvalidValue("%T is not %v", v, bt)
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case nil:
		return 0, true
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint:
		return int64(n), n <= math.MaxInt64
	case uint64:
		return int64(n), n <= math.MaxInt64
	case float64:
		return int64(n), n == math.Trunc(n) && n >= math.MinInt64 && n < math.MaxInt64
	case EnumValue:
		return int64(n.Value), true
	}
	return 0, false
}

// Returns signed integer which fits into bits
func signed(v any, bits uint) (int64, error) {
	n, ok := toInt64(v)
	if !ok {
		return 0, ErrInvalidValue("%T(%v) is not %d-bit integer", v, v, bits)
	}
	if bits < 64 {
		limit := int64(1) << (bits - 1)
		if n < -limit || n >= limit {
			return 0, ErrInvalidValue("%d overflows %d-bit integer", n, bits)
		}
	}
	return n, nil
}

// Returns unsigned integer which fits into bits
func unsigned(v any, bits uint) (uint64, error) {
	var n uint64
	switch u := v.(type) {
	case uint:
		n = uint64(u)
	case uint64:
		n = u
	default:
		i, ok := toInt64(v)
		if !ok || i < 0 {
			return 0, ErrInvalidValue("%T(%v) is not %d-bit unsigned integer", v, v, bits)
		}
		n = uint64(i)
	}
	if bits < 64 && n>>bits != 0 {
		return 0, ErrInvalidValue("%d overflows %d-bit unsigned integer", n, bits)
	}
	return n, nil
}

func float(v any) (float64, error) {
	switch f := v.(type) {
	case float32:
		return float64(f), nil
	case float64:
		return f, nil
	}
	if n, ok := toInt64(v); ok {
		return float64(n), nil
	}
	return 0, ErrInvalidValue("%T(%v) is not floating point number", v, v)
}

// Returns XML text of normalized value
func builtinText(v any) string {
	switch x := v.(type) {
	case bool:
		return strconv.FormatBool(x)
	case int8:
		return strconv.FormatInt(int64(x), 10)
	case int16:
		return strconv.FormatInt(int64(x), 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint8:
		return strconv.FormatUint(uint64(x), 10)
	case uint16:
		return strconv.FormatUint(uint64(x), 10)
	case uint32:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float32:
		return floatText(float64(x), 32)
	case float64:
		return floatText(x, 64)
	case string:
		return x
	case time.Time:
		return x.UTC().Format(time.RFC3339Nano)
	case uuid.UUID:
		return x.String()
	case []byte:
		return base64.StdEncoding.EncodeToString(x)
	case ua.NodeID:
		return x.String()
	case ua.StatusCode:
		return strconv.FormatUint(uint64(x), 10)
	case ua.QualifiedName:
		return x.String()
	}
	// notest: values are normalized
	panic(ErrInvalidValue("%T has no text", v))
}

func floatText(f float64, bits int) string {
	switch {
	case math.IsInf(f, 1):
		return "INF"
	case math.IsInf(f, -1):
		return "-INF"
	}
	return strconv.FormatFloat(f, 'g', -1, bits)
}

// Parses XML text of built-in type value
func parseBuiltinText(bt ua.BuiltinType, s string) (v any, err error) {
	switch bt {
	case ua.BuiltinType_Boolean:
		v, err = strconv.ParseBool(s)
	case ua.BuiltinType_SByte, ua.BuiltinType_Int16, ua.BuiltinType_Int32, ua.BuiltinType_Int64:
		var n int64
		if n, err = strconv.ParseInt(s, 10, 64); err == nil {
			return normalize(bt, n)
		}
	case ua.BuiltinType_Byte, ua.BuiltinType_UInt16, ua.BuiltinType_UInt32, ua.BuiltinType_UInt64, ua.BuiltinType_StatusCode:
		var n uint64
		if n, err = strconv.ParseUint(s, 10, 64); err == nil {
			return normalize(bt, n)
		}
	case ua.BuiltinType_Float, ua.BuiltinType_Double:
		var f float64
		if f, err = strconv.ParseFloat(s, 64); err == nil {
			return normalize(bt, f)
		}
	case ua.BuiltinType_String, ua.BuiltinType_XmlElement:
		return s, nil
	case ua.BuiltinType_QualifiedName:
		if s == "" {
			return ua.QualifiedName{}, nil
		}
		return normalize(bt, s)
	case ua.BuiltinType_DateTime:
		v, err = time.Parse(time.RFC3339Nano, s)
	case ua.BuiltinType_ByteString:
		var b []byte
		if b, err = base64.StdEncoding.DecodeString(s); err == nil && len(b) > 0 {
			return b, nil
		}
		return []byte(nil), err
	default:
		return normalize(bt, s)
	}
	if err != nil {
		return nil, ErrMalformedData("%v «%s»: %v", bt, s, err)
	}
	return v, nil
}
