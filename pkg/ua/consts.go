/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package ua

// Namespace URI of the OPC UA standard namespace, always at index 0
const NamespaceURI_UA = "http://opcfoundation.org/UA/"

// Browse names of the data type encoding objects
const (
	EncodingName_Binary = "Default Binary"
	EncodingName_XML    = "Default XML"
	EncodingName_JSON   = "Default JSON"
)

// Numeric identifiers of well-known namespace 0 nodes
const (
	ID_Boolean        uint32 = 1
	ID_SByte          uint32 = 2
	ID_Byte           uint32 = 3
	ID_Int16          uint32 = 4
	ID_UInt16         uint32 = 5
	ID_Int32          uint32 = 6
	ID_UInt32         uint32 = 7
	ID_Int64          uint32 = 8
	ID_UInt64         uint32 = 9
	ID_Float          uint32 = 10
	ID_Double         uint32 = 11
	ID_String         uint32 = 12
	ID_DateTime       uint32 = 13
	ID_Guid           uint32 = 14
	ID_ByteString     uint32 = 15
	ID_XmlElement     uint32 = 16
	ID_NodeId         uint32 = 17
	ID_ExpandedNodeId uint32 = 18
	ID_StatusCode     uint32 = 19
	ID_QualifiedName  uint32 = 20
	ID_LocalizedText  uint32 = 21
	ID_Structure      uint32 = 22
	ID_DataValue      uint32 = 23
	ID_BaseDataType   uint32 = 24
	ID_DiagnosticInfo uint32 = 25
	ID_Number         uint32 = 26
	ID_Integer        uint32 = 27
	ID_UInteger       uint32 = 28
	ID_Enumeration    uint32 = 29
	ID_Image          uint32 = 30
	ID_Decimal        uint32 = 50

	ID_HierarchicalReferences uint32 = 33
	ID_HasEncoding            uint32 = 38
	ID_HasTypeDefinition      uint32 = 40
	ID_HasSubtype             uint32 = 45
	ID_DataTypeEncodingType   uint32 = 76

	ID_Server_NamespaceArray uint32 = 2255
)

// Well-known namespace 0 node IDs
var (
	NodeID_BaseDataType = NS0(ID_BaseDataType)
	NodeID_Structure    = NS0(ID_Structure)
	NodeID_Enumeration  = NS0(ID_Enumeration)

	NodeID_HasSubtype  = NS0(ID_HasSubtype)
	NodeID_HasEncoding = NS0(ID_HasEncoding)

	NodeID_Server_NamespaceArray = NS0(ID_Server_NamespaceArray)
)

// Node attribute identifiers
type AttributeID uint32

const (
	AttributeID_NodeID             AttributeID = 1
	AttributeID_NodeClass          AttributeID = 2
	AttributeID_BrowseName         AttributeID = 3
	AttributeID_DisplayName        AttributeID = 4
	AttributeID_Description        AttributeID = 5
	AttributeID_IsAbstract         AttributeID = 8
	AttributeID_Value              AttributeID = 13
	AttributeID_DataTypeDefinition AttributeID = 23
)

// Node classes. Values are bits, so they can be combined in browse masks
type NodeClass uint32

const (
	NodeClass_Unspecified   NodeClass = 0
	NodeClass_Object        NodeClass = 1
	NodeClass_Variable      NodeClass = 2
	NodeClass_Method        NodeClass = 4
	NodeClass_ObjectType    NodeClass = 8
	NodeClass_VariableType  NodeClass = 16
	NodeClass_ReferenceType NodeClass = 32
	NodeClass_DataType      NodeClass = 64
	NodeClass_View          NodeClass = 128
)

// Browse direction
type BrowseDirection uint8

const (
	BrowseDirection_Forward BrowseDirection = iota
	BrowseDirection_Inverse
	BrowseDirection_Both
)

// Browse result mask bits
const (
	BrowseResultMask_None            uint32 = 0
	BrowseResultMask_ReferenceTypeID uint32 = 1
	BrowseResultMask_IsForward       uint32 = 2
	BrowseResultMask_NodeClass       uint32 = 4
	BrowseResultMask_BrowseName      uint32 = 8
	BrowseResultMask_DisplayName     uint32 = 16
	BrowseResultMask_TypeDefinition  uint32 = 32
	BrowseResultMask_All             uint32 = 63
)

// Numeric identifiers of well-known namespace 0 derived data types
const (
	ID_IntegerId    uint32 = 288
	ID_Counter      uint32 = 289
	ID_Duration     uint32 = 290
	ID_NumericRange uint32 = 291
	ID_Time         uint32 = 292
	ID_Date         uint32 = 293
	ID_UtcTime      uint32 = 294
	ID_LocaleId     uint32 = 295
	ID_ImageBMP     uint32 = 2000
	ID_ImageGIF     uint32 = 2001
	ID_ImageJPG     uint32 = 2002
	ID_ImagePNG     uint32 = 2003
	ID_Index        uint32 = 17588

	ID_Argument         uint32 = 296
	ID_EnumValueType    uint32 = 7594
	ID_Range            uint32 = 884
	ID_EUInformation    uint32 = 887
	ID_TimeZoneDataType uint32 = 8912

	ID_Argument_Encoding_DefaultXML            uint32 = 297
	ID_Argument_Encoding_DefaultBinary         uint32 = 298
	ID_Argument_Encoding_DefaultJSON           uint32 = 15081
	ID_EnumValueType_Encoding_DefaultXML       uint32 = 7616
	ID_EnumValueType_Encoding_DefaultBinary    uint32 = 8251
	ID_EnumValueType_Encoding_DefaultJSON      uint32 = 15082
	ID_Range_Encoding_DefaultXML               uint32 = 885
	ID_Range_Encoding_DefaultBinary            uint32 = 886
	ID_Range_Encoding_DefaultJSON              uint32 = 15375
	ID_EUInformation_Encoding_DefaultXML       uint32 = 888
	ID_EUInformation_Encoding_DefaultBinary    uint32 = 889
	ID_EUInformation_Encoding_DefaultJSON      uint32 = 15376
	ID_TimeZoneDataType_Encoding_DefaultXML    uint32 = 8913
	ID_TimeZoneDataType_Encoding_DefaultBinary uint32 = 8917
	ID_TimeZoneDataType_Encoding_DefaultJSON   uint32 = 15086

	ID_IdType          uint32 = 256
	ID_NodeClass       uint32 = 257
	ID_StructureType   uint32 = 98
	ID_NamingRuleType  uint32 = 120
	ID_BrowseDirection uint32 = 510
	ID_ServerState     uint32 = 852
)
