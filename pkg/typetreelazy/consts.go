/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package typetreelazy

import "github.com/uagate/uatypes/pkg/objcache"

const (
	DefaultMaxDepth              = 64
	DefaultNegativeCacheSize     = 100_000
	DefaultNegativeCacheProvider = objcache.Hashicorp
)
