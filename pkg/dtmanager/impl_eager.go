/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package dtmanager

import (
	"context"

	"github.com/uagate/uatypes/pkg/typetree"
	"github.com/uagate/uatypes/pkg/ua"
)

// Binds codecs of all structures and enumerations of tree. Must be called by constructor only
func (m *Manager) bindTree(table ua.NamespaceTable) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var err error
	m.tree.Walk(m.tree.Root(), func(h typetree.NodeHandle, _ int) bool {
		dt := m.tree.DataTypeAt(h)
		id := dt.ID()
		if id.Namespace() == 0 {
			return true
		}
		switch dt.Definition().Kind() {
		case ua.DefinitionKind_Structure:
			if !m.tree.IsSubtypeOf(id, ua.NodeID_Structure) {
				return true
			}
		case ua.DefinitionKind_Enum:
			if !m.tree.IsSubtypeOf(id, ua.NodeID_Enumeration) {
				return true
			}
		default:
			return true
		}
		if !table.Contains(id.Namespace()) {
			err = ErrNamespaceMissing(dt, id.Namespace())
			return false
		}
		_, err = m.bind(m, dt)
		return err == nil
	})
	return err
}

func (m *Manager) Codec(_ context.Context, id ua.NodeID) (ICodec, bool) {
	return m.codec(id)
}

func (m *Manager) BinaryEncodingID(_ context.Context, dataTypeID ua.NodeID) (ua.NodeID, bool) {
	if b, ok := m.binding(dataTypeID); ok {
		return b.Encodings.Binary, !b.Encodings.Binary.IsNull()
	}
	return m.tree.BinaryEncodingID(dataTypeID)
}

func (m *Manager) XMLEncodingID(_ context.Context, dataTypeID ua.NodeID) (ua.NodeID, bool) {
	if b, ok := m.binding(dataTypeID); ok {
		return b.Encodings.XML, !b.Encodings.XML.IsNull()
	}
	return m.tree.XMLEncodingID(dataTypeID)
}

func (m *Manager) JSONEncodingID(_ context.Context, dataTypeID ua.NodeID) (ua.NodeID, bool) {
	if b, ok := m.binding(dataTypeID); ok {
		return b.Encodings.JSON, !b.Encodings.JSON.IsNull()
	}
	return m.tree.JSONEncodingID(dataTypeID)
}

func (m *Manager) DataTypeID(_ context.Context, encodingID ua.NodeID) (ua.NodeID, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if b, ok := m.byEncoding[encodingID]; ok {
		return b.DataTypeID, true
	}
	return ua.NullNodeID, false
}

func (m *Manager) BuiltinType(_ context.Context, id ua.NodeID) (ua.BuiltinType, bool) {
	if bt, ok := m.tree.BuiltinType(id); ok {
		return bt, true
	}
	return ua.BuiltinTypeOf(id)
}

func (m *Manager) IsEnumType(_ context.Context, id ua.NodeID) bool {
	return m.tree.IsEnumType(id)
}

// Returns tree which manager is built on. Tree must not be modified
func (m *Manager) Tree() *typetree.Tree {
	return m.tree
}
