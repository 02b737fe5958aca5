/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package typetreebuilder

import (
	"context"

	"github.com/uagate/uatypes/pkg/goutils/logger"
	imetrics "github.com/uagate/uatypes/pkg/metrics"
	"github.com/uagate/uatypes/pkg/operations"
	"github.com/uagate/uatypes/pkg/typetree"
	"github.com/uagate/uatypes/pkg/ua"
)

type builder struct {
	exec    operations.IExecutor
	table   ua.NamespaceTable
	params  Params
	metrics imetrics.IMetrics
}

func (b *builder) build(ctx context.Context, root ua.NodeID) *typetree.Tree {
	rootDT := b.describe(ctx, []candidate{{id: root, name: ua.QualifiedName{Name: root.String()}}})[0]
	tree := typetree.New(rootDT)

	frontier := []ua.NodeID{root}
	for depth := 1; len(frontier) > 0; depth++ {
		if b.params.MaxDepth > 0 && depth > b.params.MaxDepth {
			if logger.IsVerbose() {
				logger.Verbose("max depth", b.params.MaxDepth, "reached,", len(frontier), "data types are left without subtypes")
			}
			break
		}
		level := b.subtypes(ctx, tree, frontier)
		if len(level) == 0 {
			break
		}
		frontier = frontier[:0]
		for i, dt := range b.describe(ctx, level) {
			if _, err := tree.AddChild(level[i].parent, dt); err != nil {
				// notest: candidates are filtered by tree
				logger.Error(err)
				continue
			}
			frontier = append(frontier, dt.ID())
		}
		b.metrics.Increase(imetrics.MetricResolutionsTotal, b.params.Executor.Session, float64(len(frontier)))
		if logger.IsTrace() {
			logger.Trace("level", depth, ":", len(frontier), "data types")
		}
	}
	return tree
}

// Returns subtypes of frontier data types which are not in tree yet
func (b *builder) subtypes(ctx context.Context, tree *typetree.Tree, frontier []ua.NodeID) []candidate {
	nodes := make([]ua.BrowseDescription, 0, len(frontier))
	for _, id := range frontier {
		nodes = append(nodes, ua.BrowseSubtypes(id))
	}

	res := make([]candidate, 0, len(frontier))
	seen := make(map[ua.NodeID]bool)
	for i, br := range b.exec.Browse(ctx, nodes) {
		parent := frontier[i]
		if br.StatusCode.IsBad() {
			b.metrics.Increase(imetrics.MetricResolutionFailuresTotal, b.params.Executor.Session, 1)
			if logger.IsVerbose() {
				logger.Verbose("failed to browse subtypes of", parent, ":", br.StatusCode)
			}
			continue
		}
		for _, ref := range br.References {
			id, ok := b.subtype(parent, ref)
			if !ok {
				continue
			}
			if tree.Contains(id) || seen[id] {
				if logger.IsVerbose() {
					logger.Verbose("data type", id, "is already placed, skipped as subtype of", parent)
				}
				continue
			}
			seen[id] = true
			res = append(res, candidate{parent: parent, id: id, name: ref.BrowseName})
		}
	}
	return res
}

// Returns local id of referenced subtype. Returns false if reference should be skipped
func (b *builder) subtype(parent ua.NodeID, ref ua.ReferenceDescription) (ua.NodeID, bool) {
	if ref.NodeClass != ua.NodeClass_DataType {
		if logger.IsVerbose() {
			logger.Verbose("subtype", ref.NodeID, "of", parent, "is not a data type, skipped")
		}
		return ua.NullNodeID, false
	}
	id, ok := ref.NodeID.ToNodeID(b.table)
	if !ok {
		if logger.IsVerbose() {
			logger.Verbose("subtype", ref.NodeID, "of", parent, "is remote or in unknown namespace, skipped")
		}
		return ua.NullNodeID, false
	}
	return id, true
}

// Reads attributes and browses encodings of data types, returns descriptors in the same order
func (b *builder) describe(ctx context.Context, cc []candidate) []*typetree.DataType {
	reads := make([]ua.ReadValueID, 0, len(cc)*ua.DataTypeAttributesCount)
	browses := make([]ua.BrowseDescription, 0, len(cc))
	for _, c := range cc {
		reads = append(reads, ua.ReadDataTypeAttributes(c.id)...)
		browses = append(browses, ua.BrowseEncodings(c.id))
	}

	encodings := b.exec.Browse(ctx, browses)
	attrs := b.exec.Read(ctx, reads)

	res := make([]*typetree.DataType, 0, len(cc))
	for i, c := range cc {
		a := attrs[i*ua.DataTypeAttributesCount : (i+1)*ua.DataTypeAttributesCount]
		if logger.IsVerbose() && a[0].StatusCode.IsBad() {
			logger.Verbose("failed to read attributes of", c.id, ":", a[0].StatusCode)
		}
		res = append(res, typetree.AssembleDataType(c.id, c.name, a, encodings[i], b.table))
	}
	return res
}
