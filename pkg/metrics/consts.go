/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package imetrics

const bitSize = 64

// Metric names
const (
	MetricBrowseTotal             = "uatypes_browse_total"
	MetricBrowseNextTotal         = "uatypes_browsenext_total"
	MetricReadTotal               = "uatypes_read_total"
	MetricFailedChunksTotal       = "uatypes_failed_chunks_total"
	MetricResolutionsTotal        = "uatypes_resolutions_total"
	MetricResolutionFailuresTotal = "uatypes_resolution_failures_total"
	MetricCodecsRegisteredTotal   = "uatypes_codecs_registered_total"
)
