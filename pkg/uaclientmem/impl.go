/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package uaclientmem

import (
	"context"
	"fmt"

	"github.com/uagate/uatypes/pkg/iuaclient"
	"github.com/uagate/uatypes/pkg/ua"
)

// Adds data type node. If parent is not null then HasSubtype reference from parent is added.
//
// Returns ErrAlreadyExists if node exists, ErrNotFound if parent is not null and absent
func (s *Server) AddDataType(parent, id ua.NodeID, name ua.QualifiedName, isAbstract bool, def ua.DataTypeDefinition) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.nodes[id]; exists {
		return ErrAlreadyExists("node %v", id)
	}
	if !parent.IsNull() {
		if _, ok := s.nodes[parent]; !ok {
			return ua.ErrNotFound("parent %v of data type %v", parent, id)
		}
	}
	s.nodes[id] = &node{id: id, class: ua.NodeClass_DataType, name: name, isAbstract: isAbstract, definition: def}
	if !parent.IsNull() {
		s.link(parent, ua.NodeID_HasSubtype, id)
	}
	return nil
}

// Adds data type encoding object and HasEncoding reference from data type to it
func (s *Server) AddEncoding(dataType, id ua.NodeID, name ua.QualifiedName) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.nodes[dataType]; !ok {
		return ua.ErrNotFound("data type %v of encoding %v", dataType, id)
	}
	if _, exists := s.nodes[id]; exists {
		return ErrAlreadyExists("node %v", id)
	}
	s.nodes[id] = &node{id: id, class: ua.NodeClass_Object, name: name}
	s.link(dataType, ua.NodeID_HasEncoding, id)
	return nil
}

// Adds object node
func (s *Server) AddObject(id ua.NodeID, name ua.QualifiedName) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.nodes[id]; exists {
		return ErrAlreadyExists("node %v", id)
	}
	s.nodes[id] = &node{id: id, class: ua.NodeClass_Object, name: name}
	return nil
}

// Adds reference between existing local nodes, inverse reference is added too
func (s *Server) AddReference(source, refType, target ua.NodeID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range []ua.NodeID{source, target} {
		if _, ok := s.nodes[id]; !ok {
			return ua.ErrNotFound("node %v", id)
		}
	}
	s.link(source, refType, target)
	return nil
}

// Adds forward reference from local node to node which may be not on this server.
//
// Target browse name and node class are returned as is by browse
func (s *Server) AddExternalReference(source, refType ua.NodeID, target ua.ExpandedNodeID, name ua.QualifiedName, class ua.NodeClass) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.nodes[source]; !ok {
		return ua.ErrNotFound("node %v", source)
	}
	s.forward[source] = append(s.forward[source], reference{refType: refType, target: target, name: name, class: class})
	return nil
}

func (s *Server) link(source, refType, target ua.NodeID) {
	s.forward[source] = append(s.forward[source], reference{refType: refType, target: target.Expanded()})
	s.inverse[target] = append(s.inverse[target], reference{refType: refType, target: source.Expanded()})
}

func (s *Server) SetOperationLimits(limits iuaclient.OperationLimits) {
	s.mu.Lock()
	s.limits = limits
	s.mu.Unlock()
}

// Sets maximum count of references returned by one Browse or BrowseNext result.
// Zero means unlimited
func (s *Server) SetMaxReferencesPerNode(limit int) {
	s.mu.Lock()
	s.maxRefsPerNode = limit
	s.mu.Unlock()
}

// Replaces namespace array. Standard namespace is kept at index 0
func (s *Server) SetNamespaces(namespaces ...string) {
	s.mu.Lock()
	s.namespaces = ua.NewNamespaceTable(namespaces...).URIs()
	s.mu.Unlock()
}

// Sets fault hook. Nil removes hook
func (s *Server) SetFaultHook(hook FaultHook) {
	s.faultMu.Lock()
	s.fault = hook
	s.faultMu.Unlock()
}

// Returns count of calls of operation
func (s *Server) Calls(op Op) int {
	return int(s.calls[op].Load())
}

func (s *Server) ResetCalls() {
	for i := range s.calls {
		s.calls[i].Store(0)
	}
}

func (s *Server) enter(ctx context.Context, op Op) error {
	s.calls[op].Add(1)

	s.faultMu.RLock()
	hook := s.fault
	s.faultMu.RUnlock()

	if hook != nil {
		if err := hook(ctx, op); err != nil {
			return err
		}
	}
	return ctx.Err()
}

func (s *Server) Browse(ctx context.Context, nodes []ua.BrowseDescription) ([]ua.BrowseResult, error) {
	if err := s.enter(ctx, Op_Browse); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if limit := s.limits.MaxNodesPerBrowse; limit > 0 && len(nodes) > limit {
		return nil, fmt.Errorf("browse %d nodes, limit %d: %w", len(nodes), limit, ua.StatusBadTooManyOperations)
	}
	res := make([]ua.BrowseResult, 0, len(nodes))
	for _, n := range nodes {
		res = append(res, s.browse(n))
	}
	return res, nil
}

func (s *Server) browse(bd ua.BrowseDescription) ua.BrowseResult {
	if _, ok := s.nodes[bd.NodeID]; !ok {
		return ua.BrowseResult{StatusCode: ua.StatusBadNodeIDUnknown}
	}
	if bd.Direction > ua.BrowseDirection_Both {
		return ua.BrowseResult{StatusCode: ua.StatusBadBrowseDirectionInvalid}
	}

	refs := []ua.ReferenceDescription{}
	if bd.Direction != ua.BrowseDirection_Inverse {
		refs = s.appendRefs(refs, s.forward[bd.NodeID], true, bd)
	}
	if bd.Direction != ua.BrowseDirection_Forward {
		refs = s.appendRefs(refs, s.inverse[bd.NodeID], false, bd)
	}
	return s.page(refs)
}

func (s *Server) appendRefs(res []ua.ReferenceDescription, refs []reference, isForward bool, bd ua.BrowseDescription) []ua.ReferenceDescription {
	for _, r := range refs {
		if !bd.ReferenceTypeID.IsNull() && r.refType != bd.ReferenceTypeID {
			continue
		}
		rd := ua.ReferenceDescription{
			ReferenceTypeID: r.refType,
			IsForward:       isForward,
			NodeID:          r.target,
			BrowseName:      r.name,
			DisplayName:     r.name.Name,
			NodeClass:       r.class,
		}
		if r.target.IsLocal() && r.target.NamespaceURI() == "" {
			if target, ok := s.nodes[r.target.NodeID()]; ok {
				rd.BrowseName = target.name
				rd.DisplayName = target.name.Name
				rd.NodeClass = target.class
			}
		}
		if bd.NodeClassMask != 0 && rd.NodeClass&bd.NodeClassMask == 0 {
			continue
		}
		res = append(res, rd)
	}
	return res
}

// Returns first page of references and stores the rest under new continuation point
func (s *Server) page(refs []ua.ReferenceDescription) ua.BrowseResult {
	limit := s.maxRefsPerNode
	if limit <= 0 || len(refs) <= limit {
		return ua.BrowseResult{References: refs}
	}
	s.nextCP++
	cp := fmt.Sprintf("%s%d", continuationPointPrefix, s.nextCP)
	s.continuations[cp] = refs[limit:]
	return ua.BrowseResult{References: refs[:limit:limit], ContinuationPoint: []byte(cp)}
}

func (s *Server) BrowseNext(ctx context.Context, continuationPoint []byte) (ua.BrowseResult, error) {
	if err := s.enter(ctx, Op_BrowseNext); err != nil {
		return ua.BrowseResult{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cp := string(continuationPoint)
	refs, ok := s.continuations[cp]
	if !ok {
		return ua.BrowseResult{StatusCode: ua.StatusBadContinuationPointInvalid}, nil
	}
	delete(s.continuations, cp)
	return s.page(refs), nil
}

func (s *Server) Read(ctx context.Context, nodes []ua.ReadValueID) ([]ua.DataValue, error) {
	if err := s.enter(ctx, Op_Read); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit := s.limits.MaxNodesPerRead; limit > 0 && len(nodes) > limit {
		return nil, fmt.Errorf("read %d nodes, limit %d: %w", len(nodes), limit, ua.StatusBadTooManyOperations)
	}
	res := make([]ua.DataValue, 0, len(nodes))
	for _, n := range nodes {
		res = append(res, s.read(n))
	}
	return res, nil
}

func (s *Server) read(rv ua.ReadValueID) ua.DataValue {
	n, ok := s.nodes[rv.NodeID]
	if !ok {
		return ua.NewBadDataValue(ua.StatusBadNodeIDUnknown)
	}
	switch rv.AttributeID {
	case ua.AttributeID_NodeID:
		return ua.NewDataValue(n.id)
	case ua.AttributeID_NodeClass:
		return ua.NewDataValue(n.class)
	case ua.AttributeID_BrowseName:
		return ua.NewDataValue(n.name)
	case ua.AttributeID_DisplayName:
		return ua.NewDataValue(n.name.Name)
	case ua.AttributeID_IsAbstract:
		if n.class == ua.NodeClass_DataType {
			return ua.NewDataValue(n.isAbstract)
		}
	case ua.AttributeID_DataTypeDefinition:
		if n.class == ua.NodeClass_DataType && n.definition.Kind() != ua.DefinitionKind_None {
			return ua.NewDataValue(n.definition)
		}
	case ua.AttributeID_Value:
		if n.id == ua.NodeID_Server_NamespaceArray {
			return ua.NewDataValue(append([]string(nil), s.namespaces...))
		}
		if n.value != nil {
			return ua.NewDataValue(n.value)
		}
	}
	return ua.NewBadDataValue(ua.StatusBadAttributeIDInvalid)
}

func (s *Server) OperationLimits(ctx context.Context) (iuaclient.OperationLimits, error) {
	if err := s.enter(ctx, Op_OperationLimits); err != nil {
		return iuaclient.OperationLimits{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.limits, nil
}

// Reads Server_NamespaceArray
func (s *Server) NamespaceTable(ctx context.Context) (ua.NamespaceTable, error) {
	if err := s.enter(ctx, Op_NamespaceTable); err != nil {
		return ua.NamespaceTable{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ua.NewNamespaceTable(s.namespaces...), nil
}
