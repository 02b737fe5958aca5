/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package dtmanager

import (
	"context"
	"errors"

	"golang.org/x/exp/slices"

	"github.com/uagate/uatypes/pkg/goutils/logger"
	imetrics "github.com/uagate/uatypes/pkg/metrics"
	"github.com/uagate/uatypes/pkg/typetree"
	"github.com/uagate/uatypes/pkg/typetreelazy"
	"github.com/uagate/uatypes/pkg/ua"
)

var errNoEncodedType = errors.New("no data type is encoded by node")

// Returns codec by data type id or by encoding id, resolves it if necessary.
//
// Standard namespace codecs are never resolved, they are registered by constructor
func (m *LazyManager) Codec(ctx context.Context, id ua.NodeID) (ICodec, bool) {
	if c, ok := m.codec(id); ok {
		return c, true
	}
	if id.Namespace() == 0 {
		return nil, false
	}
	key := id.String()
	if _, failed := m.failed.Get(key); failed {
		return nil, false
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if b, ok := m.lookup(id); ok {
		return b.Codec, true
	}
	if _, failed := m.failed.Get(key); failed {
		return nil, false
	}
	m.failed.Put(key, struct{}{})

	c, err := m.resolve(ctx, id)
	if err != nil {
		m.metrics.Increase(imetrics.MetricResolutionFailuresTotal, m.session, 1)
		if logger.IsVerbose() {
			logger.VerboseCtx(logger.WithContextAttrs(ctx, logger.LogAttr_NodeID, key), "failed to resolve codec:", err)
		}
		return nil, false
	}
	m.failed.Delete(key)
	return c, true
}

// Resolves id as data type id, then as encoding id. Must be called under write lock
func (m *LazyManager) resolve(ctx context.Context, id ua.NodeID) (ICodec, error) {
	if dt, ok := m.tree.DataType(ctx, id); ok && dt.Definition().Kind() != ua.DefinitionKind_None {
		return m.bindResolved(ctx, dt)
	}

	dtID, err := m.encodedType(ctx, id)
	if err != nil {
		return nil, err
	}
	if b, ok := m.byType[dtID]; ok {
		// data type is bound already, encoding id is not standard one
		b.Extra = append(b.Extra, id)
		m.byEncoding[id] = b
		return b.Codec, nil
	}
	dt, ok := m.tree.DataType(ctx, dtID)
	if !ok {
		return nil, typetree.ErrNotFound("data type %v encoded by %v", dtID, id)
	}
	if slices.Contains(dt.Encodings().IDs(), id) {
		return m.bindResolved(ctx, dt)
	}
	return m.bindResolved(ctx, dt, id)
}

// Returns data type id from inverse HasEncoding reference of encoding id
func (m *LazyManager) encodedType(ctx context.Context, encodingID ua.NodeID) (ua.NodeID, error) {
	table, err := m.tree.NamespaceTable(ctx)
	if err != nil {
		return ua.NullNodeID, err
	}
	br := m.exec.Browse(ctx, []ua.BrowseDescription{ua.BrowseEncodedType(encodingID)})[0]
	if br.StatusCode.IsBad() {
		return ua.NullNodeID, br.StatusCode
	}
	for _, ref := range br.References {
		if ref.NodeClass != ua.NodeClass_DataType {
			continue
		}
		if id, ok := ref.NodeID.ToNodeID(table); ok {
			return id, nil
		}
	}
	return ua.NullNodeID, errNoEncodedType
}

// Checks data type and binds codec. Must be called under write lock
func (m *LazyManager) bindResolved(ctx context.Context, dt *typetree.DataType, extra ...ua.NodeID) (ICodec, error) {
	id := dt.ID()
	if dt.Definition().Kind() == ua.DefinitionKind_None {
		return nil, ErrUnsupported("data type %v has no definition", dt)
	}
	if !m.tree.IsStructType(ctx, id) && !m.tree.IsEnumType(ctx, id) {
		return nil, ErrUnsupported("data type %v is neither structure nor enumeration", dt)
	}
	table, err := m.tree.NamespaceTable(ctx)
	if err != nil {
		return nil, err
	}
	if !table.Contains(id.Namespace()) {
		return nil, ErrNamespaceMissing(dt, id.Namespace())
	}
	return m.bind(m, dt, extra...)
}

func (m *LazyManager) BinaryEncodingID(ctx context.Context, dataTypeID ua.NodeID) (ua.NodeID, bool) {
	if b, ok := m.resolvedBinding(ctx, dataTypeID); ok {
		return b.Encodings.Binary, !b.Encodings.Binary.IsNull()
	}
	return m.tree.BinaryEncodingID(ctx, dataTypeID)
}

func (m *LazyManager) XMLEncodingID(ctx context.Context, dataTypeID ua.NodeID) (ua.NodeID, bool) {
	if b, ok := m.resolvedBinding(ctx, dataTypeID); ok {
		return b.Encodings.XML, !b.Encodings.XML.IsNull()
	}
	return m.tree.XMLEncodingID(ctx, dataTypeID)
}

func (m *LazyManager) JSONEncodingID(ctx context.Context, dataTypeID ua.NodeID) (ua.NodeID, bool) {
	if b, ok := m.resolvedBinding(ctx, dataTypeID); ok {
		return b.Encodings.JSON, !b.Encodings.JSON.IsNull()
	}
	return m.tree.JSONEncodingID(ctx, dataTypeID)
}

func (m *LazyManager) resolvedBinding(ctx context.Context, dataTypeID ua.NodeID) (*Binding, bool) {
	if b, ok := m.binding(dataTypeID); ok {
		return b, true
	}
	if _, ok := m.Codec(ctx, dataTypeID); !ok {
		return nil, false
	}
	return m.binding(dataTypeID)
}

// Returns data type id by encoding id, resolves encoding if necessary
func (m *LazyManager) DataTypeID(ctx context.Context, encodingID ua.NodeID) (ua.NodeID, bool) {
	if id, ok := m.dataTypeID(encodingID); ok {
		return id, true
	}
	if _, ok := m.Codec(ctx, encodingID); !ok {
		return ua.NullNodeID, false
	}
	return m.dataTypeID(encodingID)
}

func (m *LazyManager) dataTypeID(encodingID ua.NodeID) (ua.NodeID, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if b, ok := m.byEncoding[encodingID]; ok {
		return b.DataTypeID, true
	}
	return ua.NullNodeID, false
}

func (m *LazyManager) BuiltinType(ctx context.Context, id ua.NodeID) (ua.BuiltinType, bool) {
	if bt, ok := m.tree.BuiltinType(ctx, id); ok {
		return bt, true
	}
	return ua.BuiltinTypeOf(id)
}

func (m *LazyManager) IsEnumType(ctx context.Context, id ua.NodeID) bool {
	return m.tree.IsEnumType(ctx, id)
}

// Forgets failed codec resolutions and failed data type resolutions of tree
func (m *LazyManager) ClearFailedResolutions() {
	m.failed.Purge()
	m.tree.ClearFailedResolutions()
}

// Returns lazy tree which manager resolves data types with
func (m *LazyManager) Tree() *typetreelazy.Tree {
	return m.tree
}
