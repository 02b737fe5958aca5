/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package ua

import "fmt"

// Kind of data type definition
type DefinitionKind uint8

const (
	DefinitionKind_None DefinitionKind = iota
	DefinitionKind_Structure
	DefinitionKind_Enum

	DefinitionKind_count
)

// # DataTypeDefinition
//
// Tagged variant: no definition, structure definition or enum definition.
//
// Zero value is DefinitionKind_None.
type DataTypeDefinition struct {
	kind      DefinitionKind
	structure *StructureDefinition
	enum      *EnumDefinition
}

// Definition without content
var NoDefinition = DataTypeDefinition{}

func NewStructureDefinition(def StructureDefinition) DataTypeDefinition {
	return DataTypeDefinition{kind: DefinitionKind_Structure, structure: &def}
}

func NewEnumDefinition(def EnumDefinition) DataTypeDefinition {
	return DataTypeDefinition{kind: DefinitionKind_Enum, enum: &def}
}

func (d DataTypeDefinition) Kind() DefinitionKind { return d.kind }

// Returns structure definition. Returns false if definition kind is not structure
func (d DataTypeDefinition) Structure() (*StructureDefinition, bool) {
	return d.structure, d.kind == DefinitionKind_Structure
}

// Returns enum definition. Returns false if definition kind is not enum
func (d DataTypeDefinition) Enum() (*EnumDefinition, bool) {
	return d.enum, d.kind == DefinitionKind_Enum
}

func (d DataTypeDefinition) String() string {
	switch d.kind {
	case DefinitionKind_Structure:
		return fmt.Sprintf("structure %v (%d fields)", d.structure.StructureType, len(d.structure.Fields))
	case DefinitionKind_Enum:
		return fmt.Sprintf("enum (%d fields)", len(d.enum.Fields))
	}
	return "none"
}

// Structure kind
type StructureType uint8

const (
	StructureType_Structure StructureType = iota
	StructureType_StructureWithOptionalFields
	StructureType_Union
	StructureType_StructureWithSubtypedValues
	StructureType_UnionWithSubtypedValues

	StructureType_count
)

func (t StructureType) String() string {
	switch t {
	case StructureType_Structure:
		return "Structure"
	case StructureType_StructureWithOptionalFields:
		return "StructureWithOptionalFields"
	case StructureType_Union:
		return "Union"
	case StructureType_StructureWithSubtypedValues:
		return "StructureWithSubtypedValues"
	case StructureType_UnionWithSubtypedValues:
		return "UnionWithSubtypedValues"
	}
	return fmt.Sprintf("StructureType(%d)", t)
}

// Returns is structure has optional fields mask in binary encoding
func (t StructureType) HasOptionalFields() bool {
	return t == StructureType_StructureWithOptionalFields
}

// Returns is structure is union, i.e. only one field is encoded after switch field
func (t StructureType) IsUnion() bool {
	return t == StructureType_Union || t == StructureType_UnionWithSubtypedValues
}

// Value rank constants
const (
	ValueRank_ScalarOrOneDimension int32 = -3
	ValueRank_Any                  int32 = -2
	ValueRank_Scalar               int32 = -1
	ValueRank_OneOrMoreDimensions  int32 = 0
	ValueRank_OneDimension         int32 = 1
)

type StructureDefinition struct {
	DefaultEncodingID NodeID
	BaseDataType      NodeID
	StructureType     StructureType
	Fields            []StructureField
}

type StructureField struct {
	Name            string
	Description     string
	DataType        NodeID
	ValueRank       int32
	ArrayDimensions []uint32
	MaxStringLength uint32
	IsOptional      bool
}

// Returns is field is array
func (f StructureField) IsArray() bool {
	return f.ValueRank >= ValueRank_OneDimension
}

type EnumDefinition struct {
	Fields []EnumField
}

type EnumField struct {
	Value       int64
	Name        string
	DisplayName string
	Description string
}

// Returns field by value. Returns false if value is not defined
func (d *EnumDefinition) Field(value int64) (EnumField, bool) {
	for _, f := range d.Fields {
		if f.Value == value {
			return f, true
		}
	}
	return EnumField{}, false
}

// Returns field by name. Returns false if name is not defined
func (d *EnumDefinition) FieldByName(name string) (EnumField, bool) {
	for _, f := range d.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return EnumField{}, false
}
