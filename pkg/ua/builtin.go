/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package ua

import "fmt"

// # BuiltinType
//
// OPC UA built-in type. Values are equal to numeric ids of namespace 0 data types.
type BuiltinType uint8

const (
	BuiltinType_Null BuiltinType = iota
	BuiltinType_Boolean
	BuiltinType_SByte
	BuiltinType_Byte
	BuiltinType_Int16
	BuiltinType_UInt16
	BuiltinType_Int32
	BuiltinType_UInt32
	BuiltinType_Int64
	BuiltinType_UInt64
	BuiltinType_Float
	BuiltinType_Double
	BuiltinType_String
	BuiltinType_DateTime
	BuiltinType_Guid
	BuiltinType_ByteString
	BuiltinType_XmlElement
	BuiltinType_NodeId
	BuiltinType_ExpandedNodeId
	BuiltinType_StatusCode
	BuiltinType_QualifiedName
	BuiltinType_LocalizedText
	BuiltinType_ExtensionObject
	BuiltinType_DataValue
	BuiltinType_Variant
	BuiltinType_DiagnosticInfo

	BuiltinType_count
)

var builtinTypeStr = [BuiltinType_count]string{
	BuiltinType_Null:            "Null",
	BuiltinType_Boolean:         "Boolean",
	BuiltinType_SByte:           "SByte",
	BuiltinType_Byte:            "Byte",
	BuiltinType_Int16:           "Int16",
	BuiltinType_UInt16:          "UInt16",
	BuiltinType_Int32:           "Int32",
	BuiltinType_UInt32:          "UInt32",
	BuiltinType_Int64:           "Int64",
	BuiltinType_UInt64:          "UInt64",
	BuiltinType_Float:           "Float",
	BuiltinType_Double:          "Double",
	BuiltinType_String:          "String",
	BuiltinType_DateTime:        "DateTime",
	BuiltinType_Guid:            "Guid",
	BuiltinType_ByteString:      "ByteString",
	BuiltinType_XmlElement:      "XmlElement",
	BuiltinType_NodeId:          "NodeId",
	BuiltinType_ExpandedNodeId:  "ExpandedNodeId",
	BuiltinType_StatusCode:      "StatusCode",
	BuiltinType_QualifiedName:   "QualifiedName",
	BuiltinType_LocalizedText:   "LocalizedText",
	BuiltinType_ExtensionObject: "ExtensionObject",
	BuiltinType_DataValue:       "DataValue",
	BuiltinType_Variant:         "Variant",
	BuiltinType_DiagnosticInfo:  "DiagnosticInfo",
}

func (t BuiltinType) String() string {
	if t < BuiltinType_count {
		return builtinTypeStr[t]
	}
	return fmt.Sprintf("BuiltinType(%d)", t)
}

// Returns built-in type by data type node id.
//
// Only namespace 0 numeric ids 1..25 are built-in types. Structure (22) is ExtensionObject and
// BaseDataType (24) is Variant.
func BuiltinTypeOf(id NodeID) (BuiltinType, bool) {
	if id.ns != 0 || id.idType != IDType_Numeric {
		return BuiltinType_Null, false
	}
	if id.num == 0 || id.num >= uint32(BuiltinType_count) {
		return BuiltinType_Null, false
	}
	return BuiltinType(id.num), true
}

// Returns data type node id of built-in type
func (t BuiltinType) NodeID() NodeID {
	return NS0(uint32(t))
}
