/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package operations

// Zero means server limits are used
const (
	DefaultMaxNodesPerBrowse = 0
	DefaultMaxNodesPerRead   = 0
)
