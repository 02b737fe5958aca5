/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package typetreebuilder

import (
	"context"

	"github.com/uagate/uatypes/pkg/iuaclient"
	imetrics "github.com/uagate/uatypes/pkg/metrics"
	"github.com/uagate/uatypes/pkg/operations"
	"github.com/uagate/uatypes/pkg/typetree"
	"github.com/uagate/uatypes/pkg/ua"
)

func NewDefaultParams() Params {
	return Params{
		MaxDepth: DefaultMaxDepth,
		Executor: operations.NewDefaultParams(),
	}
}

// Builds tree of all data types below root, level by level.
//
// Every level is explored with one batched subtype browse, one batched encoding browse and
// one batched attribute read. Only failure to read namespace table is returned as error,
// other failures leave affected data types without subtypes.
func Build(ctx context.Context, client iuaclient.IClient, root ua.NodeID, params Params, metrics imetrics.IMetrics) (*typetree.Tree, error) {
	if metrics == nil {
		metrics = imetrics.Provide()
	}
	table, err := client.NamespaceTable(ctx)
	if err != nil {
		return nil, ErrNamespaceTable(err)
	}
	b := &builder{
		exec:    operations.New(client, params.Executor, metrics),
		table:   table,
		params:  params,
		metrics: metrics,
	}
	return b.build(ctx, root), nil
}

// Builds tree of all data types, see Build()
func BuildDataTypeTree(ctx context.Context, client iuaclient.IClient, params Params, metrics imetrics.IMetrics) (*typetree.Tree, error) {
	return Build(ctx, client, ua.NodeID_BaseDataType, params, metrics)
}

// Runs Build() with runner and returns future of result.
//
// If runner is nil then build runs in new goroutine
func BuildAsync(ctx context.Context, client iuaclient.IClient, root ua.NodeID, params Params, metrics imetrics.IMetrics, runner Runner) *Future {
	if runner == nil {
		runner = func(f func()) { go f() }
	}
	f := &Future{done: make(chan struct{})}
	runner(func() {
		defer close(f.done)
		f.tree, f.err = Build(ctx, client, root, params, metrics)
	})
	return f
}

// Returns channel which is closed when build is finished
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Waits build is finished and returns result
func (f *Future) Get() (*typetree.Tree, error) {
	<-f.done
	return f.tree, f.err
}
