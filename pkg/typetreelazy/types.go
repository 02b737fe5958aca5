/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package typetreelazy

import (
	"sync"
	"sync/atomic"

	"github.com/uagate/uatypes/pkg/iuaclient"
	imetrics "github.com/uagate/uatypes/pkg/metrics"
	"github.com/uagate/uatypes/pkg/objcache"
	"github.com/uagate/uatypes/pkg/operations"
	"github.com/uagate/uatypes/pkg/typetree"
	"github.com/uagate/uatypes/pkg/ua"
)

type Params struct {
	// Maximum count of supertypes between unknown data type and known ancestor
	MaxDepth int // 64

	// Maximum count of remembered failed resolutions
	NegativeCacheSize int // 100_000

	NegativeCacheProvider objcache.CacheProvider

	Executor operations.Params
}

// # Tree
//
// Data type tree which resolves unknown data types on demand.
//
// Every query resolves data type if it is absent: supertypes are browsed up to known
// ancestor, then the whole path is described with one batched read and one batched browse
// and attached to tree. Failed resolution is remembered and is not retried until
// ClearFailedResolutions() is called.
//
// @ConcurrentAccess
type Tree struct {
	client  iuaclient.IClient
	exec    operations.IExecutor
	params  Params
	metrics imetrics.IMetrics

	// Lock-free fast path, ua.NodeID -> *typetree.DataType
	resolved sync.Map

	mu     sync.RWMutex
	tree   *typetree.Tree
	failed objcache.ICache[string, struct{}] // keyed by ua.NodeID.String()

	nsMu sync.Mutex
	ns   atomic.Pointer[ua.NamespaceTable]
}
