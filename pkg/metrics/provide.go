/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package imetrics

// Provide s.e.
func Provide() IMetrics {
	return newMetrics()
}
