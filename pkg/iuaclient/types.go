/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package iuaclient

// Server operation limits. Zero means unbounded
type OperationLimits struct {
	MaxNodesPerBrowse int
	MaxNodesPerRead   int
}
