/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package uaclientmem

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/uagate/uatypes/pkg/iuaclient"
	"github.com/uagate/uatypes/pkg/ua"
)

// Client operation
type Op uint8

const (
	Op_Browse Op = iota
	Op_BrowseNext
	Op_Read
	Op_OperationLimits
	Op_NamespaceTable

	Op_count
)

func (op Op) String() string {
	switch op {
	case Op_Browse:
		return "Browse"
	case Op_BrowseNext:
		return "BrowseNext"
	case Op_Read:
		return "Read"
	case Op_OperationLimits:
		return "OperationLimits"
	case Op_NamespaceTable:
		return "NamespaceTable"
	}
	return fmt.Sprintf("Op(%d)", op)
}

// Called before every client operation. Returned error is returned by operation as transport error.
//
// Hook is called without server lock, so it may block
type FaultHook func(ctx context.Context, op Op) error

type node struct {
	id         ua.NodeID
	class      ua.NodeClass
	name       ua.QualifiedName
	isAbstract bool
	definition ua.DataTypeDefinition
	value      any
}

type reference struct {
	refType ua.NodeID
	target  ua.ExpandedNodeID
	// target attributes for references to nodes which are not on this server
	name  ua.QualifiedName
	class ua.NodeClass
}

// # Server
//
// In-memory OPC UA address space of data types, implements iuaclient.IClient.
//
// Server honors operation limits and splits long browse results by continuation points.
// Server counts calls of every operation.
type Server struct {
	mu             sync.RWMutex
	namespaces     []string
	nodes          map[ua.NodeID]*node
	forward        map[ua.NodeID][]reference
	inverse        map[ua.NodeID][]reference
	limits         iuaclient.OperationLimits
	maxRefsPerNode int
	continuations  map[string][]ua.ReferenceDescription
	nextCP         uint64

	faultMu sync.RWMutex
	fault   FaultHook

	calls [Op_count]atomic.Int64
}
