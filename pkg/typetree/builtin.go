/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package typetree

import "github.com/uagate/uatypes/pkg/ua"

type builtinType struct {
	parent ua.NodeID
	dt     *DataType
}

func builtinRoot() *DataType {
	return NewDataType(ua.NodeID_BaseDataType, ua.NewQualifiedName(0, "BaseDataType"), true, ua.NoDefinition, Encodings{})
}

func primitive(parent, id uint32, name string) builtinType {
	return builtinType{ua.NS0(parent), NewDataType(ua.NS0(id), ua.NewQualifiedName(0, name), false, ua.NoDefinition, Encodings{})}
}

func abstract(parent, id uint32, name string) builtinType {
	return builtinType{ua.NS0(parent), NewDataType(ua.NS0(id), ua.NewQualifiedName(0, name), true, ua.NoDefinition, Encodings{})}
}

func structure(id uint32, name string, binary, xml, json uint32, fields ...ua.StructureField) builtinType {
	def := ua.NewStructureDefinition(ua.StructureDefinition{
		DefaultEncodingID: ua.NS0(binary),
		BaseDataType:      ua.NodeID_Structure,
		StructureType:     ua.StructureType_Structure,
		Fields:            fields,
	})
	enc := Encodings{Binary: ua.NS0(binary), XML: ua.NS0(xml), JSON: ua.NS0(json)}
	return builtinType{ua.NodeID_Structure, NewDataType(ua.NS0(id), ua.NewQualifiedName(0, name), false, def, enc)}
}

func enumeration(id uint32, name string, fields ...ua.EnumField) builtinType {
	def := ua.NewEnumDefinition(ua.EnumDefinition{Fields: fields})
	return builtinType{ua.NodeID_Enumeration, NewDataType(ua.NS0(id), ua.NewQualifiedName(0, name), false, def, Encodings{})}
}

func field(name string, dataType uint32) ua.StructureField {
	return ua.StructureField{Name: name, DataType: ua.NS0(dataType), ValueRank: ua.ValueRank_Scalar}
}

func arrayField(name string, dataType uint32) ua.StructureField {
	return ua.StructureField{Name: name, DataType: ua.NS0(dataType), ValueRank: ua.ValueRank_OneDimension, ArrayDimensions: []uint32{0}}
}

func enumFields(names ...string) []ua.EnumField {
	res := make([]ua.EnumField, 0, len(names))
	for i, n := range names {
		res = append(res, ua.EnumField{Value: int64(i), Name: n, DisplayName: n})
	}
	return res
}

func enumField(value int64, name string) ua.EnumField {
	return ua.EnumField{Value: value, Name: name, DisplayName: name}
}

// Standard namespace data types in order parents first
var builtinTypes = []builtinType{
	primitive(ua.ID_BaseDataType, ua.ID_Boolean, "Boolean"),
	abstract(ua.ID_BaseDataType, ua.ID_Number, "Number"),
	abstract(ua.ID_Number, ua.ID_Integer, "Integer"),
	abstract(ua.ID_Number, ua.ID_UInteger, "UInteger"),
	primitive(ua.ID_Integer, ua.ID_SByte, "SByte"),
	primitive(ua.ID_Integer, ua.ID_Int16, "Int16"),
	primitive(ua.ID_Integer, ua.ID_Int32, "Int32"),
	primitive(ua.ID_Integer, ua.ID_Int64, "Int64"),
	primitive(ua.ID_UInteger, ua.ID_Byte, "Byte"),
	primitive(ua.ID_UInteger, ua.ID_UInt16, "UInt16"),
	primitive(ua.ID_UInteger, ua.ID_UInt32, "UInt32"),
	primitive(ua.ID_UInteger, ua.ID_UInt64, "UInt64"),
	primitive(ua.ID_Number, ua.ID_Float, "Float"),
	primitive(ua.ID_Number, ua.ID_Double, "Double"),
	primitive(ua.ID_Number, ua.ID_Decimal, "Decimal"),
	primitive(ua.ID_BaseDataType, ua.ID_String, "String"),
	primitive(ua.ID_BaseDataType, ua.ID_DateTime, "DateTime"),
	primitive(ua.ID_BaseDataType, ua.ID_Guid, "Guid"),
	primitive(ua.ID_BaseDataType, ua.ID_ByteString, "ByteString"),
	primitive(ua.ID_BaseDataType, ua.ID_XmlElement, "XmlElement"),
	primitive(ua.ID_BaseDataType, ua.ID_NodeId, "NodeId"),
	primitive(ua.ID_BaseDataType, ua.ID_ExpandedNodeId, "ExpandedNodeId"),
	primitive(ua.ID_BaseDataType, ua.ID_StatusCode, "StatusCode"),
	primitive(ua.ID_BaseDataType, ua.ID_QualifiedName, "QualifiedName"),
	primitive(ua.ID_BaseDataType, ua.ID_LocalizedText, "LocalizedText"),
	abstract(ua.ID_BaseDataType, ua.ID_Structure, "Structure"),
	primitive(ua.ID_BaseDataType, ua.ID_DataValue, "DataValue"),
	primitive(ua.ID_BaseDataType, ua.ID_DiagnosticInfo, "DiagnosticInfo"),
	abstract(ua.ID_BaseDataType, ua.ID_Enumeration, "Enumeration"),

	primitive(ua.ID_UInt32, ua.ID_IntegerId, "IntegerId"),
	primitive(ua.ID_UInt32, ua.ID_Counter, "Counter"),
	primitive(ua.ID_UInt32, ua.ID_Index, "Index"),
	primitive(ua.ID_Double, ua.ID_Duration, "Duration"),
	primitive(ua.ID_String, ua.ID_LocaleId, "LocaleId"),
	primitive(ua.ID_String, ua.ID_NumericRange, "NumericRange"),
	primitive(ua.ID_String, ua.ID_Time, "Time"),
	primitive(ua.ID_DateTime, ua.ID_UtcTime, "UtcTime"),
	primitive(ua.ID_DateTime, ua.ID_Date, "Date"),
	abstract(ua.ID_ByteString, ua.ID_Image, "Image"),
	primitive(ua.ID_Image, ua.ID_ImageBMP, "ImageBMP"),
	primitive(ua.ID_Image, ua.ID_ImageGIF, "ImageGIF"),
	primitive(ua.ID_Image, ua.ID_ImageJPG, "ImageJPG"),
	primitive(ua.ID_Image, ua.ID_ImagePNG, "ImagePNG"),

	structure(ua.ID_Argument, "Argument",
		ua.ID_Argument_Encoding_DefaultBinary, ua.ID_Argument_Encoding_DefaultXML, ua.ID_Argument_Encoding_DefaultJSON,
		field("Name", ua.ID_String),
		field("DataType", ua.ID_NodeId),
		field("ValueRank", ua.ID_Int32),
		arrayField("ArrayDimensions", ua.ID_UInt32),
		field("Description", ua.ID_LocalizedText),
	),
	structure(ua.ID_EnumValueType, "EnumValueType",
		ua.ID_EnumValueType_Encoding_DefaultBinary, ua.ID_EnumValueType_Encoding_DefaultXML, ua.ID_EnumValueType_Encoding_DefaultJSON,
		field("Value", ua.ID_Int64),
		field("DisplayName", ua.ID_LocalizedText),
		field("Description", ua.ID_LocalizedText),
	),
	structure(ua.ID_Range, "Range",
		ua.ID_Range_Encoding_DefaultBinary, ua.ID_Range_Encoding_DefaultXML, ua.ID_Range_Encoding_DefaultJSON,
		field("Low", ua.ID_Double),
		field("High", ua.ID_Double),
	),
	structure(ua.ID_EUInformation, "EUInformation",
		ua.ID_EUInformation_Encoding_DefaultBinary, ua.ID_EUInformation_Encoding_DefaultXML, ua.ID_EUInformation_Encoding_DefaultJSON,
		field("NamespaceUri", ua.ID_String),
		field("UnitId", ua.ID_Int32),
		field("DisplayName", ua.ID_LocalizedText),
		field("Description", ua.ID_LocalizedText),
	),
	structure(ua.ID_TimeZoneDataType, "TimeZoneDataType",
		ua.ID_TimeZoneDataType_Encoding_DefaultBinary, ua.ID_TimeZoneDataType_Encoding_DefaultXML, ua.ID_TimeZoneDataType_Encoding_DefaultJSON,
		field("Offset", ua.ID_Int16),
		field("DaylightSavingInOffset", ua.ID_Boolean),
	),

	enumeration(ua.ID_NodeClass, "NodeClass",
		enumField(0, "Unspecified"),
		enumField(1, "Object"),
		enumField(2, "Variable"),
		enumField(4, "Method"),
		enumField(8, "ObjectType"),
		enumField(16, "VariableType"),
		enumField(32, "ReferenceType"),
		enumField(64, "DataType"),
		enumField(128, "View"),
	),
	enumeration(ua.ID_StructureType, "StructureType",
		enumFields("Structure", "StructureWithOptionalFields", "Union", "StructureWithSubtypedValues", "UnionWithSubtypedValues")...),
	enumeration(ua.ID_BrowseDirection, "BrowseDirection",
		enumFields("Forward", "Inverse", "Both", "Invalid")...),
	enumeration(ua.ID_ServerState, "ServerState",
		enumFields("Running", "Failed", "NoConfiguration", "Suspended", "Shutdown", "Test", "CommunicationFault", "Unknown")...),
	enumeration(ua.ID_NamingRuleType, "NamingRuleType",
		enumField(1, "Mandatory"),
		enumField(2, "Optional"),
		enumField(3, "Constraint"),
	),
	enumeration(ua.ID_IdType, "IdType",
		enumFields("Numeric", "String", "Guid", "Opaque")...),
}
