/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package uacodec

import (
	"encoding/binary"
	"io"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/uagate/uatypes/pkg/dtmanager"
	"github.com/uagate/uatypes/pkg/ua"
)

// Writes fixed-size values in little-endian order
func write(w io.Writer, data ...any) error {
	for _, d := range data {
		if err := binary.Write(w, binary.LittleEndian, d); err != nil {
			return err
		}
	}
	return nil
}

// Reads fixed-size value in little-endian order
func read[T any](r io.Reader) (T, error) {
	var v T
	if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
		return v, ErrMalformedData("error read %T: %v", v, err)
	}
	return v, nil
}

// Reads length prefix. Returns -1 for null
func readLength(r io.Reader, max int) (int, error) {
	l, err := read[int32](r)
	if err != nil {
		return 0, err
	}
	if l < 0 {
		return -1, nil
	}
	if int(l) > max {
		return 0, ErrMalformedData("length %d exceeds %d", l, max)
	}
	return int(l), nil
}

func writeBytes(w io.Writer, b []byte) error {
	if b == nil {
		return write(w, int32(-1))
	}
	if err := write(w, int32(len(b))); err != nil {
		return err
	}
	_, err := w.Write(b)
	return err
}

func readBytes(r io.Reader) ([]byte, error) {
	l, err := readLength(r, maxStringLength)
	if err != nil || l < 0 {
		return nil, err
	}
	b := make([]byte, l)
	if _, err := io.ReadFull(r, b); err != nil {
		return nil, ErrMalformedData("error read %d bytes: %v", l, err)
	}
	return b, nil
}

func writeString(w io.Writer, s string) error {
	if err := write(w, int32(len(s))); err != nil {
		return err
	}
	_, err := io.WriteString(w, s)
	return err
}

func readString(r io.Reader) (string, error) {
	b, err := readBytes(r)
	return string(b), err
}

// Writes guid as Data1 (uint32), Data2 (uint16), Data3 (uint16), Data4 ([8]byte)
func writeGUID(w io.Writer, g uuid.UUID) error {
	var b [16]byte
	binary.LittleEndian.PutUint32(b[0:], binary.BigEndian.Uint32(g[0:4]))
	binary.LittleEndian.PutUint16(b[4:], binary.BigEndian.Uint16(g[4:6]))
	binary.LittleEndian.PutUint16(b[6:], binary.BigEndian.Uint16(g[6:8]))
	copy(b[8:], g[8:])
	_, err := w.Write(b[:])
	return err
}

func readGUID(r io.Reader) (uuid.UUID, error) {
	var b [16]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return uuid.Nil, ErrMalformedData("error read guid: %v", err)
	}
	var g uuid.UUID
	binary.BigEndian.PutUint32(g[0:], binary.LittleEndian.Uint32(b[0:4]))
	binary.BigEndian.PutUint16(g[4:], binary.LittleEndian.Uint16(b[4:6]))
	binary.BigEndian.PutUint16(g[6:], binary.LittleEndian.Uint16(b[6:8]))
	copy(g[8:], b[8:])
	return g, nil
}

// Writes node id in the most compact form
func writeNodeID(w io.Writer, id ua.NodeID) error {
	ns := id.Namespace()
	switch id.Type() {
	case ua.IDType_String:
		if err := write(w, nodeIDEncoding_String, ns); err != nil {
			return err
		}
		return writeString(w, id.StringID())
	case ua.IDType_GUID:
		if err := write(w, nodeIDEncoding_GUID, ns); err != nil {
			return err
		}
		return writeGUID(w, id.GUID())
	case ua.IDType_Opaque:
		if err := write(w, nodeIDEncoding_ByteString, ns); err != nil {
			return err
		}
		return writeBytes(w, id.Opaque())
	}
	n := id.Numeric()
	switch {
	case ns == 0 && n <= math.MaxUint8:
		return write(w, nodeIDEncoding_TwoByte, uint8(n))
	case ns <= math.MaxUint8 && n <= math.MaxUint16:
		return write(w, nodeIDEncoding_FourByte, uint8(ns), uint16(n))
	}
	return write(w, nodeIDEncoding_Numeric, ns, n)
}

func readNodeID(r io.Reader) (ua.NodeID, error) {
	enc, err := read[byte](r)
	if err != nil {
		return ua.NullNodeID, err
	}
	switch enc {
	case nodeIDEncoding_TwoByte:
		n, err := read[uint8](r)
		return ua.NS0(uint32(n)), err
	case nodeIDEncoding_FourByte:
		v, err := read[struct {
			NS uint8
			N  uint16
		}](r)
		return ua.NewNumericNodeID(uint16(v.NS), uint32(v.N)), err
	}
	ns, err := read[uint16](r)
	if err != nil {
		return ua.NullNodeID, err
	}
	switch enc {
	case nodeIDEncoding_Numeric:
		n, err := read[uint32](r)
		return ua.NewNumericNodeID(ns, n), err
	case nodeIDEncoding_String:
		s, err := readString(r)
		return ua.NewStringNodeID(ns, s), err
	case nodeIDEncoding_GUID:
		g, err := readGUID(r)
		return ua.NewGUIDNodeID(ns, g), err
	case nodeIDEncoding_ByteString:
		b, err := readBytes(r)
		return ua.NewOpaqueNodeID(ns, b), err
	}
	return ua.NullNodeID, ErrMalformedData("node id encoding 0x%02X", enc)
}

// Writes encoding mask followed by locale and text which are present in mask
func writeLocalizedText(w io.Writer, lt ua.LocalizedText) error {
	var mask byte
	if lt.Locale != "" {
		mask |= localizedText_Locale
	}
	if lt.Text != "" {
		mask |= localizedText_Text
	}
	if err := write(w, mask); err != nil {
		return err
	}
	if lt.Locale != "" {
		if err := writeString(w, lt.Locale); err != nil {
			return err
		}
	}
	if lt.Text != "" {
		return writeString(w, lt.Text)
	}
	return nil
}

func readLocalizedText(r io.Reader) (lt ua.LocalizedText, err error) {
	mask, err := read[byte](r)
	if err != nil {
		return lt, err
	}
	if mask&localizedText_Locale != 0 {
		if lt.Locale, err = readString(r); err != nil {
			return lt, err
		}
	}
	if mask&localizedText_Text != 0 {
		lt.Text, err = readString(r)
	}
	return lt, err
}

// Returns DateTime ticks. Zero time is encoded as zero
func timeTicks(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixNano()/100 + unixEpochTicks
}

func ticksTime(ticks int64) time.Time {
	if ticks == 0 {
		return time.Time{}
	}
	return time.Unix(0, (ticks-unixEpochTicks)*100).UTC()
}

func writeBuiltin(w io.Writer, bt ua.BuiltinType, value any) error {
	v, err := normalize(bt, value)
	if err != nil {
		return err
	}
	switch x := v.(type) {
	case string:
		if value == nil {
			return write(w, int32(-1))
		}
		return writeString(w, x)
	case time.Time:
		return write(w, timeTicks(x))
	case uuid.UUID:
		return writeGUID(w, x)
	case []byte:
		return writeBytes(w, x)
	case ua.NodeID:
		return writeNodeID(w, x)
	case ua.StatusCode:
		return write(w, uint32(x))
	case ua.QualifiedName:
		if err := write(w, x.NamespaceIndex); err != nil {
			return err
		}
		return writeString(w, x.Name)
	case ua.LocalizedText:
		return writeLocalizedText(w, x)
	}
	return write(w, v)
}

func readBuiltin(r io.Reader, bt ua.BuiltinType) (any, error) {
	switch bt {
	case ua.BuiltinType_Boolean:
		b, err := read[uint8](r)
		return b != 0, err
	case ua.BuiltinType_SByte:
		return read[int8](r)
	case ua.BuiltinType_Byte:
		return read[uint8](r)
	case ua.BuiltinType_Int16:
		return read[int16](r)
	case ua.BuiltinType_UInt16:
		return read[uint16](r)
	case ua.BuiltinType_Int32:
		return read[int32](r)
	case ua.BuiltinType_UInt32:
		return read[uint32](r)
	case ua.BuiltinType_Int64:
		return read[int64](r)
	case ua.BuiltinType_UInt64:
		return read[uint64](r)
	case ua.BuiltinType_Float:
		return read[float32](r)
	case ua.BuiltinType_Double:
		return read[float64](r)
	case ua.BuiltinType_String, ua.BuiltinType_XmlElement:
		return readString(r)
	case ua.BuiltinType_DateTime:
		ticks, err := read[int64](r)
		return ticksTime(ticks), err
	case ua.BuiltinType_Guid:
		return readGUID(r)
	case ua.BuiltinType_ByteString:
		return readBytes(r)
	case ua.BuiltinType_NodeId:
		return readNodeID(r)
	case ua.BuiltinType_StatusCode:
		sc, err := read[uint32](r)
		return ua.StatusCode(sc), err
	case ua.BuiltinType_QualifiedName:
		ns, err := read[uint16](r)
		if err != nil {
			return nil, err
		}
		name, err := readString(r)
		return ua.NewQualifiedName(ns, name), err
	case ua.BuiltinType_LocalizedText:
		return readLocalizedText(r)
	}
	return nil, dtmanager.ErrUnsupported("built-in type %v", bt)
}
