/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package objcache

import "fmt"

// Cache implementation provider
type CacheProvider uint8

const (
	Hashicorp CacheProvider = iota
	Theine
	Imcache

	CacheProvider_count
)

var cacheProviderStr = map[CacheProvider]string{
	Hashicorp: "hashicorp",
	Theine:    "theine",
	Imcache:   "imcache",
}

func (p CacheProvider) String() string {
	if s, ok := cacheProviderStr[p]; ok {
		return s
	}
	return fmt.Sprintf("CacheProvider(%d)", p)
}

// Returns cache provider by name. Returns false if name is unknown
func CacheProviderByName(name string) (CacheProvider, bool) {
	for p, s := range cacheProviderStr {
		if s == name {
			return p, true
		}
	}
	return Hashicorp, false
}
