/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package dtmanager

import (
	"sync"

	imetrics "github.com/uagate/uatypes/pkg/metrics"
	"github.com/uagate/uatypes/pkg/objcache"
	"github.com/uagate/uatypes/pkg/operations"
	"github.com/uagate/uatypes/pkg/typetree"
	"github.com/uagate/uatypes/pkg/typetreelazy"
	"github.com/uagate/uatypes/pkg/ua"
)

type Params struct {
	// Maximum count of remembered failed resolutions
	NegativeCacheSize int // 100_000

	NegativeCacheProvider objcache.CacheProvider

	Executor operations.Params
}

// Codec binding: data type, its encodings and codec
type Binding struct {
	DataTypeID ua.NodeID
	Encodings  typetree.Encodings

	// Encoding ids which are bound to data type by server but are not named as standard encodings
	Extra []ua.NodeID

	Codec ICodec
}

// Codec bindings by data type id and by encoding id
type registry struct {
	mu         sync.RWMutex
	byType     map[ua.NodeID]*Binding
	byEncoding map[ua.NodeID]*Binding
	factory    CodecFactory
	metrics    imetrics.IMetrics
	session    string
}

// # Manager
//
// Codec manager over eagerly built tree. All codecs are created by constructor.
type Manager struct {
	registry
	tree *typetree.Tree
}

// # LazyManager
//
// Codec manager over lazy tree. Codecs are created on first request.
type LazyManager struct {
	registry
	tree   *typetreelazy.Tree
	exec   operations.IExecutor
	failed objcache.ICache[string, struct{}] // keyed by ua.NodeID.String()
}
