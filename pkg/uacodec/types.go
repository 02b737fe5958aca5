/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package uacodec

import (
	"encoding/json"

	"github.com/uagate/uatypes/pkg/dtmanager"
	"github.com/uagate/uatypes/pkg/typetree"
	"github.com/uagate/uatypes/pkg/ua"
)

// Named field of structure value
type Field struct {
	Name  string
	Value any
}

// # Struct
//
// Structure value. Fields are ordered as in data type definition.
//
// Absent optional fields are not listed, union has at most one field.
// Array field values are []any.
type Struct struct {
	DataTypeID ua.NodeID
	Fields     []Field
}

// Enumeration value. Name is empty if value is not defined by enumeration
type EnumValue struct {
	Value int32
	Name  string
}

type structCodec struct {
	dt  *typetree.DataType
	def *ua.StructureDefinition
	m   dtmanager.IDataTypeManager
}

type enumCodec struct {
	dt  *typetree.DataType
	def *ua.EnumDefinition
}

type fieldKind uint8

const (
	fieldKind_Builtin fieldKind = iota

	fieldKind_Enum

	// concrete structure, encoded in place
	fieldKind_Struct

	// abstract structure, encoded as extension object with encoding id
	fieldKind_Extension
)

// How to encode values of structure field
type fieldCodec struct {
	field   *ua.StructureField
	kind    fieldKind
	builtin ua.BuiltinType
	nested  dtmanager.ICodec // for structures and enumerations, may be nil for enumerations
}

// JSON form of extension object
type jsonExtension struct {
	TypeID ua.NodeID       `json:"TypeId"`
	Body   json.RawMessage `json:"Body"`
}
