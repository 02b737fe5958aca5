/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import (
	"context"

	"github.com/uagate/uatypes/pkg/dtmanager"
	"github.com/uagate/uatypes/pkg/goutils/logger"
	"github.com/uagate/uatypes/pkg/typetree"
	"github.com/uagate/uatypes/pkg/typetreebuilder"
	"github.com/uagate/uatypes/pkg/typetreelazy"
	"github.com/uagate/uatypes/pkg/ua"
)

// Returns ctx with session log attribute if session is specified
func (p WiredPeer) logContext(ctx context.Context) context.Context {
	if s := p.CodecParams.Executor.Session; s != "" {
		return logger.WithContextAttrs(ctx, logger.LogAttr_Session, s)
	}
	return ctx
}

// Builds tree below root on separate goroutine, returns ctx.Err() if ctx is done before build finished
func (p WiredPeer) buildTree(ctx context.Context, root ua.NodeID) (*typetree.Tree, error) {
	f := typetreebuilder.BuildAsync(ctx, p.Client, root, p.BuildParams, p.Metrics, nil)
	select {
	case <-f.Done():
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	tree, err := f.Get()
	if err == nil {
		logger.VerboseCtx(ctx, "tree built:", tree.Len(), "data types")
	}
	return tree, err
}

func (p WiredPeer) eagerManager(ctx context.Context) (*dtmanager.Manager, error) {
	tree, err := p.buildTree(ctx, ua.NodeID_BaseDataType)
	if err != nil {
		return nil, err
	}
	table, err := p.Client.NamespaceTable(ctx)
	if err != nil {
		return nil, err
	}
	return dtmanager.NewEager(tree, table, p.Factory, p.Metrics)
}

func (p WiredPeer) lazyManager() *dtmanager.LazyManager {
	tree := typetreelazy.New(p.Client, nil, p.LazyParams, p.Metrics)
	return dtmanager.NewLazy(p.Client, tree, p.Factory, p.CodecParams, p.Metrics)
}

func parseNodeIDs(args []string) ([]ua.NodeID, error) {
	ids := make([]ua.NodeID, 0, len(args))
	for _, a := range args {
		id, err := ua.ParseNodeID(a)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
