/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package iuaclient

import (
	"context"

	"github.com/uagate/uatypes/pkg/ua"
)

// Request/response channel to OPC UA server.
//
// Transport errors are returned as errors. Per-item failures are returned as bad status codes in results.
//
// Implementations must be safe for concurrent use.
type IClient interface {
	// Browses references of nodes. Returns one result per description
	Browse(ctx context.Context, nodes []ua.BrowseDescription) ([]ua.BrowseResult, error)

	// Continues browse with continuation point returned by Browse or previous BrowseNext
	BrowseNext(ctx context.Context, continuationPoint []byte) (ua.BrowseResult, error)

	// Reads attributes. Returns one data value per request
	Read(ctx context.Context, nodes []ua.ReadValueID) ([]ua.DataValue, error)

	// Returns server operation limits
	OperationLimits(ctx context.Context) (OperationLimits, error)

	// Returns server namespace table
	NamespaceTable(ctx context.Context) (ua.NamespaceTable, error)
}
