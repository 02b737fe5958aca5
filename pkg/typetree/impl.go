/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package typetree

import (
	"strings"

	"github.com/uagate/uatypes/pkg/ua"
)

func (t *Tree) add(dt *DataType, parent NodeHandle) NodeHandle {
	h := NodeHandle(len(t.nodes))
	t.nodes = append(t.nodes, node{dt: dt, parent: parent})
	t.index[dt.id] = h
	if parent != NoNode {
		t.nodes[parent].children = append(t.nodes[parent].children, h)
	}
	return h
}

// Adds data type as child of parent.
//
// Returns ErrNotFound if parent is absent, ErrAlreadyExists if data type id is already in tree
func (t *Tree) AddChild(parentID ua.NodeID, dt *DataType) (NodeHandle, error) {
	parent, ok := t.index[parentID]
	if !ok {
		return NoNode, ErrNotFound("parent data type %v of %v", parentID, dt)
	}
	if _, exists := t.index[dt.id]; exists {
		return NoNode, ErrAlreadyExists("data type %v", dt)
	}
	return t.add(dt, parent), nil
}

func (t *Tree) Root() NodeHandle { return 0 }

// Returns handle of node with specified data type id
func (t *Tree) Node(id ua.NodeID) (NodeHandle, bool) {
	h, ok := t.index[id]
	return h, ok
}

// Returns parent of node. Returns false for root
func (t *Tree) Parent(h NodeHandle) (NodeHandle, bool) {
	p := t.nodes[h].parent
	return p, p != NoNode
}

// Returns copy of node children handles in order of addition
func (t *Tree) Children(h NodeHandle) []NodeHandle {
	return append([]NodeHandle(nil), t.nodes[h].children...)
}

func (t *Tree) DataTypeAt(h NodeHandle) *DataType {
	return t.nodes[h].dt
}

func (t *Tree) Contains(id ua.NodeID) bool {
	_, ok := t.index[id]
	return ok
}

func (t *Tree) DataType(id ua.NodeID) (*DataType, bool) {
	if h, ok := t.index[id]; ok {
		return t.nodes[h].dt, true
	}
	return nil, false
}

// Returns is data type a descendant of ancestor. Data type is not subtype of itself
func (t *Tree) IsSubtypeOf(id, ancestorID ua.NodeID) bool {
	h, ok := t.index[id]
	if !ok {
		return false
	}
	for p := t.nodes[h].parent; p != NoNode; p = t.nodes[p].parent {
		if t.nodes[p].dt.id == ancestorID {
			return true
		}
	}
	return false
}

// Returns is data type a structure.
//
// Data type with structure definition is structure. Data type without definition is structure
// if it is subtype of Structure
func (t *Tree) IsStructType(id ua.NodeID) bool {
	return t.isKind(id, ua.DefinitionKind_Structure, ua.NodeID_Structure)
}

// Returns is data type an enumeration.
//
// Data type with enum definition is enumeration. Data type without definition is enumeration
// if it is subtype of Enumeration
func (t *Tree) IsEnumType(id ua.NodeID) bool {
	return t.isKind(id, ua.DefinitionKind_Enum, ua.NodeID_Enumeration)
}

func (t *Tree) isKind(id ua.NodeID, kind ua.DefinitionKind, ancestorID ua.NodeID) bool {
	dt, ok := t.DataType(id)
	if !ok {
		return false
	}
	if k := dt.definition.Kind(); k != ua.DefinitionKind_None {
		return k == kind
	}
	return t.IsSubtypeOf(id, ancestorID)
}

// Returns built-in type used to encode values of data type.
//
// Built-in type is found as nearest built-in ancestor (or data type itself).
// Enumerations are encoded as Int32. Returns false if data type is absent
func (t *Tree) BuiltinType(id ua.NodeID) (ua.BuiltinType, bool) {
	h, ok := t.index[id]
	if !ok {
		return ua.BuiltinType_Null, false
	}
	if id == ua.NodeID_Enumeration || t.IsEnumType(id) {
		return ua.BuiltinType_Int32, true
	}
	for ; h != NoNode; h = t.nodes[h].parent {
		if bt, ok := ua.BuiltinTypeOf(t.nodes[h].dt.id); ok {
			return bt, true
		}
	}
	return ua.BuiltinType_Variant, true
}

func (t *Tree) BinaryEncodingID(id ua.NodeID) (ua.NodeID, bool) {
	if dt, ok := t.DataType(id); ok {
		return dt.BinaryEncodingID()
	}
	return ua.NullNodeID, false
}

func (t *Tree) XMLEncodingID(id ua.NodeID) (ua.NodeID, bool) {
	if dt, ok := t.DataType(id); ok {
		return dt.XMLEncodingID()
	}
	return ua.NullNodeID, false
}

func (t *Tree) JSONEncodingID(id ua.NodeID) (ua.NodeID, bool) {
	if dt, ok := t.DataType(id); ok {
		return dt.JSONEncodingID()
	}
	return ua.NullNodeID, false
}

// Walks subtree from specified node in pre-order, children in order of addition.
//
// Walk stops if visit returns false
func (t *Tree) Walk(from NodeHandle, visit func(h NodeHandle, depth int) bool) {
	type item struct {
		h     NodeHandle
		depth int
	}
	stack := []item{{from, 0}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !visit(it.h, it.depth) {
			return
		}
		children := t.nodes[it.h].children
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, item{children[i], it.depth + 1})
		}
	}
}

// Returns deep copy of tree. Data type descriptors are shared
func (t *Tree) Clone() *Tree {
	c := &Tree{
		nodes: make([]node, len(t.nodes), cap(t.nodes)),
		index: make(map[ua.NodeID]NodeHandle, len(t.index)),
	}
	for i, n := range t.nodes {
		c.nodes[i] = node{
			dt:       n.dt,
			parent:   n.parent,
			children: append([]NodeHandle(nil), n.children...),
		}
	}
	for id, h := range t.index {
		c.index[id] = h
	}
	return c
}

// Returns count of nodes
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Returns indented dump of tree, one data type per line
func (t *Tree) String() string {
	b := strings.Builder{}
	t.Walk(t.Root(), func(h NodeHandle, depth int) bool {
		b.WriteString(strings.Repeat(dumpIndent, depth))
		b.WriteString(t.nodes[h].dt.String())
		b.WriteByte('\n')
		return true
	})
	return b.String()
}
