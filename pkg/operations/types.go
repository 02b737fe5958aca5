/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package operations

import (
	"sync"

	"github.com/uagate/uatypes/pkg/iuaclient"
	imetrics "github.com/uagate/uatypes/pkg/metrics"
)

type Params struct {
	// Overrides server MaxNodesPerBrowse if positive
	MaxNodesPerBrowse int

	// Overrides server MaxNodesPerRead if positive
	MaxNodesPerRead int

	// Session label of metrics
	Session string
}

type executor struct {
	client  iuaclient.IClient
	params  Params
	metrics imetrics.IMetrics

	limitsMu sync.Mutex
	limits   *iuaclient.OperationLimits // nil until fetched
}
