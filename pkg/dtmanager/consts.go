/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package dtmanager

import "github.com/uagate/uatypes/pkg/objcache"

const (
	DefaultNegativeCacheSize     = 100_000
	DefaultNegativeCacheProvider = objcache.Hashicorp
)
