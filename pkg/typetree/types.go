/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package typetree

import (
	"fmt"

	"github.com/uagate/uatypes/pkg/ua"
)

// Handle of tree node. Handles are valid only for the tree that returned them and its clones
type NodeHandle int

// Handle of absent node
const NoNode NodeHandle = -1

// Encoding ids of data type. Null id means encoding is absent
type Encodings struct {
	Binary ua.NodeID
	XML    ua.NodeID
	JSON   ua.NodeID
}

// Returns all not null encoding ids
func (e Encodings) IDs() []ua.NodeID {
	ids := make([]ua.NodeID, 0, 3)
	for _, id := range []ua.NodeID{e.Binary, e.XML, e.JSON} {
		if !id.IsNull() {
			ids = append(ids, id)
		}
	}
	return ids
}

// # DataType
//
// Immutable descriptor of data type. Shared by pointer between trees and their clones.
type DataType struct {
	id         ua.NodeID
	name       ua.QualifiedName
	isAbstract bool
	definition ua.DataTypeDefinition
	encodings  Encodings
}

func (dt *DataType) ID() ua.NodeID { return dt.id }

func (dt *DataType) Name() ua.QualifiedName { return dt.name }

func (dt *DataType) IsAbstract() bool { return dt.isAbstract }

func (dt *DataType) Definition() ua.DataTypeDefinition { return dt.definition }

func (dt *DataType) Encodings() Encodings { return dt.encodings }

func (dt *DataType) BinaryEncodingID() (ua.NodeID, bool) {
	return dt.encodings.Binary, !dt.encodings.Binary.IsNull()
}

func (dt *DataType) XMLEncodingID() (ua.NodeID, bool) {
	return dt.encodings.XML, !dt.encodings.XML.IsNull()
}

func (dt *DataType) JSONEncodingID() (ua.NodeID, bool) {
	return dt.encodings.JSON, !dt.encodings.JSON.IsNull()
}

func (dt *DataType) String() string {
	return fmt.Sprintf("%s (%s)", dt.name, dt.id)
}

type node struct {
	dt       *DataType
	parent   NodeHandle
	children []NodeHandle
}

// # Tree
//
// Arena of data type nodes addressed by handles, plus index by node id.
//
// Tree is append-only. Tree is not safe for concurrent mutation.
type Tree struct {
	nodes []node
	index map[ua.NodeID]NodeHandle
}
