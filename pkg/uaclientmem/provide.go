/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package uaclientmem

import (
	"github.com/uagate/uatypes/pkg/typetree"
	"github.com/uagate/uatypes/pkg/ua"
)

// Returns new server with specified namespaces.
//
// Standard namespace is always at index 0. Server contains all standard data types,
// their encodings and Server_NamespaceArray variable
func New(namespaces ...string) *Server {
	s := &Server{
		namespaces:    ua.NewNamespaceTable(namespaces...).URIs(),
		nodes:         make(map[ua.NodeID]*node),
		forward:       make(map[ua.NodeID][]reference),
		inverse:       make(map[ua.NodeID][]reference),
		continuations: make(map[string][]ua.ReferenceDescription),
	}
	s.seed()
	return s
}

func (s *Server) seed() {
	tree := typetree.NewBuiltin()
	tree.Walk(tree.Root(), func(h typetree.NodeHandle, _ int) bool {
		dt := tree.DataTypeAt(h)
		parent := ua.NullNodeID
		if p, ok := tree.Parent(h); ok {
			parent = tree.DataTypeAt(p).ID()
		}
		if err := s.AddDataType(parent, dt.ID(), dt.Name(), dt.IsAbstract(), dt.Definition()); err != nil {
			// notest
			panic(err)
		}
		enc := dt.Encodings()
		for name, id := range map[string]ua.NodeID{ua.EncodingName_Binary: enc.Binary, ua.EncodingName_XML: enc.XML, ua.EncodingName_JSON: enc.JSON} {
			if id.IsNull() {
				continue
			}
			if err := s.AddEncoding(dt.ID(), id, ua.NewQualifiedName(0, name)); err != nil {
				// notest
				panic(err)
			}
		}
		return true
	})
	s.nodes[ua.NodeID_Server_NamespaceArray] = &node{
		id:    ua.NodeID_Server_NamespaceArray,
		class: ua.NodeClass_Variable,
		name:  ua.NewQualifiedName(0, "NamespaceArray"),
	}
}
