/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package typetreelazy

import (
	"context"

	"github.com/uagate/uatypes/pkg/goutils/logger"
	imetrics "github.com/uagate/uatypes/pkg/metrics"
	"github.com/uagate/uatypes/pkg/typetree"
	"github.com/uagate/uatypes/pkg/ua"
)

// Returns data type, resolves it if necessary
func (t *Tree) Resolve(ctx context.Context, id ua.NodeID) (*typetree.DataType, bool) {
	if v, ok := t.resolved.Load(id); ok {
		return v.(*typetree.DataType), true
	}
	key := id.String()
	if _, failed := t.failed.Get(key); failed {
		return nil, false
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if dt, ok := t.tree.DataType(id); ok {
		return dt, true
	}
	if _, failed := t.failed.Get(key); failed {
		return nil, false
	}
	t.failed.Put(key, struct{}{})

	dt, err := t.resolve(ctx, id)
	if err != nil {
		t.metrics.Increase(imetrics.MetricResolutionFailuresTotal, t.params.Executor.Session, 1)
		if logger.IsVerbose() {
			logger.VerboseCtx(logger.WithContextAttrs(ctx, logger.LogAttr_NodeID, id.String()), "failed to resolve data type:", err)
		}
		return nil, false
	}
	t.failed.Delete(key)
	t.metrics.Increase(imetrics.MetricResolutionsTotal, t.params.Executor.Session, 1)
	return dt, true
}

// Resolves data type and its unknown supertypes. Must be called under write lock
func (t *Tree) resolve(ctx context.Context, id ua.NodeID) (*typetree.DataType, error) {
	table, err := t.NamespaceTable(ctx)
	if err != nil {
		return nil, err
	}

	path, names, anchor, err := t.supertypes(ctx, id, table)
	if err != nil {
		return nil, err
	}

	dts, err := t.describe(ctx, path, names, table)
	if err != nil {
		return nil, err
	}

	parent := anchor
	for i := len(path) - 1; i >= 0; i-- {
		if _, err := t.tree.AddChild(parent, dts[i]); err != nil {
			// notest: path ids are checked against tree
			return nil, err
		}
		t.resolved.Store(path[i], dts[i])
		parent = path[i]
	}
	if logger.IsTrace() {
		logger.TraceCtx(ctx, "resolved", id, "with", len(path)-1, "unknown supertypes below", anchor)
	}
	return dts[0], nil
}

// Walks supertypes from id up to first known data type.
//
// Returns path of unknown data types starting with id, their browse names and known ancestor
func (t *Tree) supertypes(ctx context.Context, id ua.NodeID, table ua.NamespaceTable) (path []ua.NodeID, names []ua.QualifiedName, anchor ua.NodeID, err error) {
	path = []ua.NodeID{id}
	names = []ua.QualifiedName{{Name: id.String()}}
	visited := map[ua.NodeID]bool{id: true}

	for cur := id; ; {
		if t.params.MaxDepth > 0 && len(path) > t.params.MaxDepth {
			return nil, nil, ua.NullNodeID, errTooDeep
		}
		br := t.exec.Browse(ctx, []ua.BrowseDescription{ua.BrowseSupertype(cur)})[0]
		if br.StatusCode.IsBad() {
			return nil, nil, ua.NullNodeID, br.StatusCode
		}
		super, name, ok := supertype(br.References, table)
		if !ok {
			return nil, nil, ua.NullNodeID, errNoSupertype
		}
		if t.tree.Contains(super) {
			return path, names, super, nil
		}
		if visited[super] {
			return nil, nil, ua.NullNodeID, errCycle
		}
		visited[super] = true
		path = append(path, super)
		names = append(names, name)
		cur = super
	}
}

// Returns first local data type from inverse HasSubtype references
func supertype(refs []ua.ReferenceDescription, table ua.NamespaceTable) (ua.NodeID, ua.QualifiedName, bool) {
	for _, ref := range refs {
		if ref.NodeClass != ua.NodeClass_DataType {
			continue
		}
		if id, ok := ref.NodeID.ToNodeID(table); ok {
			return id, ref.BrowseName, true
		}
	}
	return ua.NullNodeID, ua.QualifiedName{}, false
}

// Reads attributes and browses encodings of all path data types with one call each.
//
// Returns error if some attribute or encodings were not delivered by transport
func (t *Tree) describe(ctx context.Context, ids []ua.NodeID, names []ua.QualifiedName, table ua.NamespaceTable) ([]*typetree.DataType, error) {
	reads := make([]ua.ReadValueID, 0, len(ids)*ua.DataTypeAttributesCount)
	browses := make([]ua.BrowseDescription, 0, len(ids))
	for _, id := range ids {
		reads = append(reads, ua.ReadDataTypeAttributes(id)...)
		browses = append(browses, ua.BrowseEncodings(id))
	}

	attrs := t.exec.Read(ctx, reads)
	encodings := t.exec.Browse(ctx, browses)

	for _, dv := range attrs {
		if dv.StatusCode.IsTransportFailure() {
			return nil, dv.StatusCode
		}
	}
	for _, br := range encodings {
		if br.StatusCode.IsTransportFailure() {
			return nil, br.StatusCode
		}
	}

	res := make([]*typetree.DataType, 0, len(ids))
	for i, id := range ids {
		a := attrs[i*ua.DataTypeAttributesCount : (i+1)*ua.DataTypeAttributesCount]
		res = append(res, typetree.AssembleDataType(id, names[i], a, encodings[i], table))
	}
	return res, nil
}

func (t *Tree) Contains(ctx context.Context, id ua.NodeID) bool {
	_, ok := t.Resolve(ctx, id)
	return ok
}

func (t *Tree) DataType(ctx context.Context, id ua.NodeID) (*typetree.DataType, bool) {
	return t.Resolve(ctx, id)
}

// Returns is data type a descendant of ancestor, see typetree.Tree.IsSubtypeOf()
func (t *Tree) IsSubtypeOf(ctx context.Context, id, ancestorID ua.NodeID) bool {
	if !t.Contains(ctx, id) {
		return false
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.tree.IsSubtypeOf(id, ancestorID)
}

// See typetree.Tree.IsStructType()
func (t *Tree) IsStructType(ctx context.Context, id ua.NodeID) bool {
	if !t.Contains(ctx, id) {
		return false
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.tree.IsStructType(id)
}

// See typetree.Tree.IsEnumType()
func (t *Tree) IsEnumType(ctx context.Context, id ua.NodeID) bool {
	if !t.Contains(ctx, id) {
		return false
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.tree.IsEnumType(id)
}

// See typetree.Tree.BuiltinType()
func (t *Tree) BuiltinType(ctx context.Context, id ua.NodeID) (ua.BuiltinType, bool) {
	if !t.Contains(ctx, id) {
		return ua.BuiltinType_Null, false
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.tree.BuiltinType(id)
}

func (t *Tree) BinaryEncodingID(ctx context.Context, id ua.NodeID) (ua.NodeID, bool) {
	if dt, ok := t.Resolve(ctx, id); ok {
		return dt.BinaryEncodingID()
	}
	return ua.NullNodeID, false
}

func (t *Tree) XMLEncodingID(ctx context.Context, id ua.NodeID) (ua.NodeID, bool) {
	if dt, ok := t.Resolve(ctx, id); ok {
		return dt.XMLEncodingID()
	}
	return ua.NullNodeID, false
}

func (t *Tree) JSONEncodingID(ctx context.Context, id ua.NodeID) (ua.NodeID, bool) {
	if dt, ok := t.Resolve(ctx, id); ok {
		return dt.JSONEncodingID()
	}
	return ua.NullNodeID, false
}

// Forgets failed resolutions, so next queries will try to resolve them again
func (t *Tree) ClearFailedResolutions() {
	t.failed.Purge()
}

// Returns point-in-time copy of resolved tree
func (t *Tree) Snapshot() *typetree.Tree {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.tree.Clone()
}

// Returns count of resolved data types
func (t *Tree) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.tree.Len()
}

// Returns namespace table, reads it from server on first call
func (t *Tree) NamespaceTable(ctx context.Context) (ua.NamespaceTable, error) {
	if p := t.ns.Load(); p != nil {
		return *p, nil
	}

	t.nsMu.Lock()
	defer t.nsMu.Unlock()

	if p := t.ns.Load(); p != nil {
		return *p, nil
	}
	return t.fetchNamespaceTable(ctx)
}

// Forgets namespace table, next call of NamespaceTable() reads it from server
func (t *Tree) InvalidateNamespaceTable() {
	t.ns.Store(nil)
}

// Reads namespace table from server. Previous table is kept if read fails
func (t *Tree) RefreshNamespaceTable(ctx context.Context) error {
	t.nsMu.Lock()
	defer t.nsMu.Unlock()

	_, err := t.fetchNamespaceTable(ctx)
	return err
}

func (t *Tree) fetchNamespaceTable(ctx context.Context) (ua.NamespaceTable, error) {
	table, err := t.client.NamespaceTable(ctx)
	if err != nil {
		return ua.NamespaceTable{}, ErrNamespaceTable(err)
	}
	t.ns.Store(&table)
	return table, nil
}
