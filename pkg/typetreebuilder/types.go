/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package typetreebuilder

import (
	"github.com/uagate/uatypes/pkg/operations"
	"github.com/uagate/uatypes/pkg/typetree"
	"github.com/uagate/uatypes/pkg/ua"
)

type Params struct {
	// Maximum count of levels below root. Non-positive means unlimited
	MaxDepth int

	Executor operations.Params
}

// Runs function. Used by BuildAsync to run build
type Runner func(func())

// Result of asynchronous build
type Future struct {
	done chan struct{}
	tree *typetree.Tree
	err  error
}

// Subtype discovered on current level
type candidate struct {
	parent ua.NodeID
	id     ua.NodeID
	name   ua.QualifiedName
}
