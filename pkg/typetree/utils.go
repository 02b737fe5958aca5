/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package typetree

import (
	"github.com/uagate/uatypes/pkg/ua"
)

// Returns encoding ids from HasEncoding references of data type.
//
// Encodings are matched by browse names «Default Binary», «Default XML» and «Default JSON».
// Names from standard namespace are preferred, but names from any namespace are accepted as well.
// References to other servers or to unknown namespaces are ignored.
func MatchEncodings(refs []ua.ReferenceDescription, table ua.NamespaceTable) Encodings {
	enc := Encodings{}
	var exact [3]bool
	targets := [3]*ua.NodeID{&enc.Binary, &enc.XML, &enc.JSON}

	for _, ref := range refs {
		kind := encodingKind(ref.BrowseName.Name)
		if kind < 0 {
			continue
		}
		id, ok := ref.NodeID.ToNodeID(table)
		if !ok {
			continue
		}
		isExact := ref.BrowseName.NamespaceIndex == 0
		if exact[kind] || (!isExact && !targets[kind].IsNull()) {
			continue
		}
		*targets[kind] = id
		exact[kind] = isExact
	}
	return enc
}

func encodingKind(name string) int {
	switch name {
	case ua.EncodingName_Binary:
		return 0
	case ua.EncodingName_XML:
		return 1
	case ua.EncodingName_JSON:
		return 2
	}
	return -1
}

// Assembles data type descriptor from results of ua.ReadDataTypeAttributes() and ua.BrowseEncodings().
//
// Bad or unexpected attribute values are ignored: name falls back to specified one, data type is
// concrete and has no definition. Bad encodings result means no encodings.
func AssembleDataType(id ua.NodeID, name ua.QualifiedName, attrs []ua.DataValue, encodings ua.BrowseResult, table ua.NamespaceTable) *DataType {
	isAbstract := false
	def := ua.NoDefinition
	if len(attrs) == ua.DataTypeAttributesCount {
		if v, ok := goodValue[ua.QualifiedName](attrs[0]); ok && v.Name != "" {
			name = v
		}
		if v, ok := goodValue[bool](attrs[1]); ok {
			isAbstract = v
		}
		if v, ok := goodValue[ua.DataTypeDefinition](attrs[2]); ok {
			def = v
		}
	}
	enc := Encodings{}
	if encodings.StatusCode.IsGood() {
		enc = MatchEncodings(encodings.References, table)
	}
	return NewDataType(id, name, isAbstract, def, enc)
}

func goodValue[T any](dv ua.DataValue) (v T, ok bool) {
	if !dv.StatusCode.IsGood() {
		return v, false
	}
	v, ok = dv.Value.(T)
	return v, ok
}
