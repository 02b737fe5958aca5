/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package ua

// Request to browse references of one node
type BrowseDescription struct {
	NodeID          NodeID
	Direction       BrowseDirection
	ReferenceTypeID NodeID
	IncludeSubtypes bool
	NodeClassMask   NodeClass
	ResultMask      uint32
}

// Reference returned by browse
type ReferenceDescription struct {
	ReferenceTypeID NodeID
	IsForward       bool
	NodeID          ExpandedNodeID
	BrowseName      QualifiedName
	DisplayName     string
	NodeClass       NodeClass
	TypeDefinition  ExpandedNodeID
}

// Result of browse for one node.
//
// Not empty continuation point means that more references are available with BrowseNext
type BrowseResult struct {
	StatusCode        StatusCode
	ContinuationPoint []byte
	References        []ReferenceDescription
}

// Request to read one attribute of one node
type ReadValueID struct {
	NodeID      NodeID
	AttributeID AttributeID
}

// Attribute value with status.
//
// Value type depends on attribute:
//   - BrowseName: QualifiedName
//   - DisplayName, Description: string
//   - IsAbstract: bool
//   - NodeClass: NodeClass
//   - DataTypeDefinition: DataTypeDefinition
//   - Value of Server_NamespaceArray: []string
type DataValue struct {
	Value      any
	StatusCode StatusCode
}

// Returns good data value with specified value
func NewDataValue(v any) DataValue {
	return DataValue{Value: v, StatusCode: StatusGood}
}

// Returns bad data value with specified status
func NewBadDataValue(sc StatusCode) DataValue {
	return DataValue{StatusCode: sc}
}

// Returns browse description to find all subtypes of data type
func BrowseSubtypes(id NodeID) BrowseDescription {
	return BrowseDescription{
		NodeID:          id,
		Direction:       BrowseDirection_Forward,
		ReferenceTypeID: NodeID_HasSubtype,
		IncludeSubtypes: false,
		NodeClassMask:   NodeClass_DataType,
		ResultMask:      BrowseResultMask_All,
	}
}

// Returns browse description to find supertype of data type
func BrowseSupertype(id NodeID) BrowseDescription {
	return BrowseDescription{
		NodeID:          id,
		Direction:       BrowseDirection_Inverse,
		ReferenceTypeID: NodeID_HasSubtype,
		IncludeSubtypes: false,
		NodeClassMask:   NodeClass_DataType,
		ResultMask:      BrowseResultMask_All,
	}
}

// Returns browse description to find encodings of data type
func BrowseEncodings(id NodeID) BrowseDescription {
	return BrowseDescription{
		NodeID:          id,
		Direction:       BrowseDirection_Forward,
		ReferenceTypeID: NodeID_HasEncoding,
		IncludeSubtypes: false,
		NodeClassMask:   NodeClass_Object,
		ResultMask:      BrowseResultMask_All,
	}
}

// Returns browse description to find data type of encoding
func BrowseEncodedType(encodingID NodeID) BrowseDescription {
	return BrowseDescription{
		NodeID:          encodingID,
		Direction:       BrowseDirection_Inverse,
		ReferenceTypeID: NodeID_HasEncoding,
		IncludeSubtypes: false,
		NodeClassMask:   NodeClass_DataType,
		ResultMask:      BrowseResultMask_All,
	}
}

// Returns read requests for attributes of data type: browse name, is abstract and definition
func ReadDataTypeAttributes(id NodeID) []ReadValueID {
	return []ReadValueID{
		{NodeID: id, AttributeID: AttributeID_BrowseName},
		{NodeID: id, AttributeID: AttributeID_IsAbstract},
		{NodeID: id, AttributeID: AttributeID_DataTypeDefinition},
	}
}

// Count of attributes returned by ReadDataTypeAttributes
const DataTypeAttributesCount = 3
