/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package typetree

import "github.com/uagate/uatypes/pkg/ua"

// Returns new tree with single root node
func New(root *DataType) *Tree {
	t := &Tree{
		nodes: make([]node, 0, defaultTreeCapacity),
		index: make(map[ua.NodeID]NodeHandle, defaultTreeCapacity),
	}
	t.add(root, NoNode)
	return t
}

// Returns new tree seeded with standard namespace data types
func NewBuiltin() *Tree {
	t := New(builtinRoot())
	for _, b := range builtinTypes {
		if _, err := t.AddChild(b.parent, b.dt); err != nil {
			// notest
			panic(err)
		}
	}
	return t
}

// Returns new data type descriptor.
//
// If binary encoding is absent and definition is structure with default encoding then
// default encoding is used as binary encoding.
func NewDataType(id ua.NodeID, name ua.QualifiedName, isAbstract bool, def ua.DataTypeDefinition, enc Encodings) *DataType {
	if enc.Binary.IsNull() {
		if sd, ok := def.Structure(); ok && !sd.DefaultEncodingID.IsNull() {
			enc.Binary = sd.DefaultEncodingID
		}
	}
	return &DataType{
		id:         id,
		name:       name,
		isAbstract: isAbstract,
		definition: def,
		encodings:  enc,
	}
}
