/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package ua

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Node identifier kind
type IDType uint8

const (
	IDType_Numeric IDType = iota
	IDType_String
	IDType_GUID
	IDType_Opaque

	IDType_count
)

var idTypePrefix = [IDType_count]string{
	IDType_Numeric: "i=",
	IDType_String:  "s=",
	IDType_GUID:    "g=",
	IDType_Opaque:  "b=",
}

func (t IDType) String() string {
	switch t {
	case IDType_Numeric:
		return "Numeric"
	case IDType_String:
		return "String"
	case IDType_GUID:
		return "Guid"
	case IDType_Opaque:
		return "Opaque"
	}
	return fmt.Sprintf("IDType(%d)", t)
}

// # NodeID
//
// Identifies a node inside one server: namespace index plus one identifier.
//
// NodeID is comparable and can be used as a map key. Zero value is the null node id «i=0».
type NodeID struct {
	ns     uint16
	idType IDType
	num    uint32
	str    string // string identifier or opaque bytes
	guid   uuid.UUID
}

var NullNodeID = NodeID{}

// Returns numeric node id
func NewNumericNodeID(ns uint16, id uint32) NodeID {
	return NodeID{ns: ns, idType: IDType_Numeric, num: id}
}

// Returns numeric node id in namespace 0
func NS0(id uint32) NodeID {
	return NewNumericNodeID(0, id)
}

// Returns string node id
func NewStringNodeID(ns uint16, id string) NodeID {
	return NodeID{ns: ns, idType: IDType_String, str: id}
}

// Returns GUID node id
func NewGUIDNodeID(ns uint16, id uuid.UUID) NodeID {
	return NodeID{ns: ns, idType: IDType_GUID, guid: id}
}

// Returns opaque node id. Bytes are copied
func NewOpaqueNodeID(ns uint16, id []byte) NodeID {
	return NodeID{ns: ns, idType: IDType_Opaque, str: string(id)}
}

func (id NodeID) Namespace() uint16 { return id.ns }

func (id NodeID) Type() IDType { return id.idType }

// Returns numeric identifier. Returns 0 if node id is not numeric
func (id NodeID) Numeric() uint32 { return id.num }

// Returns string identifier. Returns empty string if node id is not string
func (id NodeID) StringID() string {
	if id.idType != IDType_String {
		return ""
	}
	return id.str
}

// Returns GUID identifier. Returns uuid.Nil if node id is not GUID
func (id NodeID) GUID() uuid.UUID { return id.guid }

// Returns copy of opaque identifier. Returns nil if node id is not opaque
func (id NodeID) Opaque() []byte {
	if id.idType != IDType_Opaque {
		return nil
	}
	return []byte(id.str)
}

// Returns is node id null.
//
// Null node ids are in namespace 0 and have zero-valued identifier of any kind
func (id NodeID) IsNull() bool {
	if id.ns != 0 {
		return false
	}
	switch id.idType {
	case IDType_Numeric:
		return id.num == 0
	case IDType_GUID:
		return id.guid == uuid.Nil
	}
	return len(id.str) == 0
}

// Returns copy of node id moved to specified namespace
func (id NodeID) WithNamespace(ns uint16) NodeID {
	id.ns = ns
	return id
}

// Returns expanded node id with this node id and without namespace URI
func (id NodeID) Expanded() ExpandedNodeID {
	return ExpandedNodeID{nodeID: id}
}

// Returns identifier part of string representation, without namespace
func (id NodeID) identifier() string {
	var value string
	switch id.idType {
	case IDType_Numeric:
		value = fmt.Sprint(id.num)
	case IDType_String:
		value = id.str
	case IDType_GUID:
		value = id.guid.String()
	case IDType_Opaque:
		value = base64.StdEncoding.EncodeToString([]byte(id.str))
	}
	return idTypePrefix[id.idType] + value
}

// Returns string representation, like «ns=2;i=5001» or «s=Boiler»
func (id NodeID) String() string {
	if id.ns == 0 {
		return id.identifier()
	}
	b := strings.Builder{}
	fmt.Fprintf(&b, "ns=%d;", id.ns)
	b.WriteString(id.identifier())
	return b.String()
}

// Text marshaling allows node ids as YAML and JSON values and map keys
func (id NodeID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id *NodeID) UnmarshalText(text []byte) error {
	n, err := ParseNodeID(string(text))
	if err != nil {
		return err
	}
	*id = n
	return nil
}

// # ExpandedNodeID
//
// Node id that may address other servers or refer namespace by URI
type ExpandedNodeID struct {
	nodeID       NodeID
	namespaceURI string
	serverIndex  uint32
}

// Returns expanded node id which namespace is specified by URI.
//
// Namespace index of id is ignored then URI is not empty
func NewExpandedNodeID(id NodeID, namespaceURI string, serverIndex uint32) ExpandedNodeID {
	return ExpandedNodeID{nodeID: id, namespaceURI: namespaceURI, serverIndex: serverIndex}
}

// Returns node id part as is, namespace index is not resolved
func (id ExpandedNodeID) NodeID() NodeID { return id.nodeID }

func (id ExpandedNodeID) NamespaceURI() string { return id.namespaceURI }

func (id ExpandedNodeID) ServerIndex() uint32 { return id.serverIndex }

// Returns is node is on the local server
func (id ExpandedNodeID) IsLocal() bool { return id.serverIndex == 0 }

func (id ExpandedNodeID) IsNull() bool {
	return id.namespaceURI == "" && id.serverIndex == 0 && id.nodeID.IsNull()
}

// Converts to local node id.
//
// Returns false if node is on other server or if namespace URI is absent in table
func (id ExpandedNodeID) ToNodeID(table NamespaceTable) (NodeID, bool) {
	if !id.IsLocal() {
		return NullNodeID, false
	}
	if id.namespaceURI == "" {
		return id.nodeID, true
	}
	ns, ok := table.Index(id.namespaceURI)
	if !ok {
		return NullNodeID, false
	}
	return id.nodeID.WithNamespace(ns), true
}

// Returns string representation, like «svr=1;nsu=urn:x;i=5»
func (id ExpandedNodeID) String() string {
	b := strings.Builder{}
	if id.serverIndex != 0 {
		fmt.Fprintf(&b, "svr=%d;", id.serverIndex)
	}
	if id.namespaceURI != "" {
		fmt.Fprintf(&b, "nsu=%s;", id.namespaceURI)
		b.WriteString(id.nodeID.identifier())
		return b.String()
	}
	b.WriteString(id.nodeID.String())
	return b.String()
}
