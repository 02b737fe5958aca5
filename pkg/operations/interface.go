/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package operations

import (
	"context"

	"github.com/uagate/uatypes/pkg/ua"
)

// Executes browse and read requests of any size, respecting server operation limits.
//
// Results are never errors: transport failures are reported as bad status codes of items.
//
// @ConcurrentAccess
type IExecutor interface {
	// Browses nodes and returns one result per description, in the same order.
	//
	// Continuation points are drained, returned results have no continuation point.
	Browse(ctx context.Context, nodes []ua.BrowseDescription) []ua.BrowseResult

	// Reads attributes and returns one data value per request, in the same order.
	Read(ctx context.Context, nodes []ua.ReadValueID) []ua.DataValue
}
