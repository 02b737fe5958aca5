/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package operations

import (
	"github.com/uagate/uatypes/pkg/iuaclient"
	imetrics "github.com/uagate/uatypes/pkg/metrics"
)

func NewDefaultParams() Params {
	return Params{
		MaxNodesPerBrowse: DefaultMaxNodesPerBrowse,
		MaxNodesPerRead:   DefaultMaxNodesPerRead,
	}
}

// Returns new executor over client.
//
// Server operation limits are fetched on first request and cached.
// If metrics is nil then private metrics are used
func New(client iuaclient.IClient, params Params, metrics imetrics.IMetrics) IExecutor {
	if metrics == nil {
		metrics = imetrics.Provide()
	}
	return &executor{
		client:  client,
		params:  params,
		metrics: metrics,
	}
}
