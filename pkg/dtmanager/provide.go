/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package dtmanager

import (
	"github.com/uagate/uatypes/pkg/iuaclient"
	imetrics "github.com/uagate/uatypes/pkg/metrics"
	"github.com/uagate/uatypes/pkg/objcache"
	"github.com/uagate/uatypes/pkg/operations"
	"github.com/uagate/uatypes/pkg/typetree"
	"github.com/uagate/uatypes/pkg/typetreelazy"
	"github.com/uagate/uatypes/pkg/ua"
)

func NewDefaultParams() Params {
	return Params{
		NegativeCacheSize:     DefaultNegativeCacheSize,
		NegativeCacheProvider: DefaultNegativeCacheProvider,
		Executor:              operations.NewDefaultParams(),
	}
}

// Returns manager with codecs of all structures and enumerations of tree.
//
// Tree must not be modified after manager is created.
// Returns ErrMalformedPeerError if namespace of some data type is absent in namespace table.
// Returns ErrCodecFactoryError if factory fails for some data type
func NewEager(tree *typetree.Tree, table ua.NamespaceTable, factory CodecFactory, metrics imetrics.IMetrics) (*Manager, error) {
	m := &Manager{tree: tree}
	m.init(factory, metrics, "")
	if err := m.bindBuiltin(m, true); err != nil {
		return nil, err
	}
	if err := m.bindTree(table); err != nil {
		return nil, err
	}
	return m, nil
}

// Returns manager which resolves codecs on demand.
//
// If tree is nil then new lazy tree over client is used.
// Standard namespace codecs which factory fails for are skipped.
// Panics if params.NegativeCacheSize is not positive
func NewLazy(client iuaclient.IClient, tree *typetreelazy.Tree, factory CodecFactory, params Params, metrics imetrics.IMetrics) *LazyManager {
	if metrics == nil {
		metrics = imetrics.Provide()
	}
	if tree == nil {
		tp := typetreelazy.NewDefaultParams()
		tp.Executor = params.Executor
		tree = typetreelazy.New(client, nil, tp, metrics)
	}
	m := &LazyManager{
		tree:   tree,
		exec:   operations.New(client, params.Executor, metrics),
		failed: objcache.NewProvider[string, struct{}](params.NegativeCacheProvider, params.NegativeCacheSize, nil),
	}
	m.init(factory, metrics, params.Executor.Session)
	_ = m.bindBuiltin(m, false)
	return m
}
