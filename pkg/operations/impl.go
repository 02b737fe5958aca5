/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package operations

import (
	"context"

	"github.com/uagate/uatypes/pkg/goutils/logger"
	"github.com/uagate/uatypes/pkg/iuaclient"
	imetrics "github.com/uagate/uatypes/pkg/metrics"
	"github.com/uagate/uatypes/pkg/ua"
)

func (e *executor) Browse(ctx context.Context, nodes []ua.BrowseDescription) []ua.BrowseResult {
	results := make([]ua.BrowseResult, 0, len(nodes))
	if len(nodes) == 0 {
		return results
	}

	limit := e.operationLimits(ctx).MaxNodesPerBrowse
	for _, chunk := range Partition(nodes, limit) {
		e.metrics.Increase(imetrics.MetricBrowseTotal, e.params.Session, 1)
		res, err := e.client.Browse(ctx, chunk)
		if err == nil && len(res) != len(chunk) {
			err = ErrUnexpectedResponse("browse returns %d results for %d nodes", len(res), len(chunk))
		}
		if err != nil {
			e.chunkFailed(ctx, "browse", len(chunk), err)
			sc := failureStatus(err)
			for range chunk {
				results = append(results, ua.BrowseResult{StatusCode: sc})
			}
			continue
		}
		for i := range res {
			if len(res[i].ContinuationPoint) > 0 {
				res[i] = e.browseNext(ctx, chunk[i].NodeID, res[i])
			}
		}
		results = append(results, res...)
	}
	return results
}

func (e *executor) Read(ctx context.Context, nodes []ua.ReadValueID) []ua.DataValue {
	results := make([]ua.DataValue, 0, len(nodes))
	if len(nodes) == 0 {
		return results
	}

	limit := e.operationLimits(ctx).MaxNodesPerRead
	for _, chunk := range Partition(nodes, limit) {
		e.metrics.Increase(imetrics.MetricReadTotal, e.params.Session, 1)
		res, err := e.client.Read(ctx, chunk)
		if err == nil && len(res) != len(chunk) {
			err = ErrUnexpectedResponse("read returns %d values for %d nodes", len(res), len(chunk))
		}
		if err != nil {
			e.chunkFailed(ctx, "read", len(chunk), err)
			sc := failureStatus(err)
			for range chunk {
				results = append(results, ua.NewBadDataValue(sc))
			}
			continue
		}
		results = append(results, res...)
	}
	return results
}

// Drains continuation point of result. Failed BrowseNext stops draining,
// references received so far are returned with original status
func (e *executor) browseNext(ctx context.Context, id ua.NodeID, res ua.BrowseResult) ua.BrowseResult {
	refs := append([]ua.ReferenceDescription(nil), res.References...)
	cp := res.ContinuationPoint
	for len(cp) > 0 {
		e.metrics.Increase(imetrics.MetricBrowseNextTotal, e.params.Session, 1)
		next, err := e.client.BrowseNext(ctx, cp)
		if err == nil && next.StatusCode.IsBad() {
			err = next.StatusCode
		}
		if err != nil {
			if logger.IsVerbose() {
				logger.VerboseCtx(logger.WithContextAttrs(ctx, logger.LogAttr_NodeID, id.String()),
					"browse next failed, partial result with", len(refs), "references returned:", err)
			}
			break
		}
		refs = append(refs, next.References...)
		cp = next.ContinuationPoint
	}
	res.References = refs
	res.ContinuationPoint = nil
	return res
}

func (e *executor) chunkFailed(ctx context.Context, op string, size int, err error) {
	e.metrics.Increase(imetrics.MetricFailedChunksTotal, e.params.Session, 1)
	logger.WarningCtx(logger.WithContextAttrs(ctx, logger.LogAttr_Op, op), op, "of", size, "items failed:", err)
}

// Returns effective limits: server limits overridden by params.
//
// Server limits are fetched once. Failed fetch means unbounded limits for this call only
func (e *executor) operationLimits(ctx context.Context) iuaclient.OperationLimits {
	limits := e.serverLimits(ctx)
	if e.params.MaxNodesPerBrowse > 0 {
		limits.MaxNodesPerBrowse = e.params.MaxNodesPerBrowse
	}
	if e.params.MaxNodesPerRead > 0 {
		limits.MaxNodesPerRead = e.params.MaxNodesPerRead
	}
	return limits
}

func (e *executor) serverLimits(ctx context.Context) iuaclient.OperationLimits {
	e.limitsMu.Lock()
	defer e.limitsMu.Unlock()

	if e.limits != nil {
		return *e.limits
	}
	limits, err := e.client.OperationLimits(ctx)
	if err != nil {
		logger.WarningCtx(ctx, "failed to fetch operation limits, requests are not partitioned:", err)
		return iuaclient.OperationLimits{}
	}
	e.limits = &limits
	if logger.IsVerbose() {
		logger.VerboseCtx(ctx, "operation limits: browse", limits.MaxNodesPerBrowse, "read", limits.MaxNodesPerRead)
	}
	return limits
}
