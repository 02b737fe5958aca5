/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package typetreelazy

import (
	"github.com/uagate/uatypes/pkg/iuaclient"
	imetrics "github.com/uagate/uatypes/pkg/metrics"
	"github.com/uagate/uatypes/pkg/objcache"
	"github.com/uagate/uatypes/pkg/operations"
	"github.com/uagate/uatypes/pkg/typetree"
)

func NewDefaultParams() Params {
	return Params{
		MaxDepth:              DefaultMaxDepth,
		NegativeCacheSize:     DefaultNegativeCacheSize,
		NegativeCacheProvider: DefaultNegativeCacheProvider,
		Executor:              operations.NewDefaultParams(),
	}
}

// Returns new lazy tree over client.
//
// Seed is copied, if seed is nil then typetree.NewBuiltin() is used.
// Panics if params.NegativeCacheSize is not positive
func New(client iuaclient.IClient, seed *typetree.Tree, params Params, metrics imetrics.IMetrics) *Tree {
	if metrics == nil {
		metrics = imetrics.Provide()
	}
	if seed == nil {
		seed = typetree.NewBuiltin()
	} else {
		seed = seed.Clone()
	}
	t := &Tree{
		client:  client,
		exec:    operations.New(client, params.Executor, metrics),
		params:  params,
		metrics: metrics,
		tree:    seed,
		failed:  objcache.NewProvider[string, struct{}](params.NegativeCacheProvider, params.NegativeCacheSize, nil),
	}
	seed.Walk(seed.Root(), func(h typetree.NodeHandle, _ int) bool {
		dt := seed.DataTypeAt(h)
		t.resolved.Store(dt.ID(), dt)
		return true
	})
	return t
}
