/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 *
 * Modifications copyright (c) 2026-present unTill Software Development Group B.V.
 */

package objcache

import (
	"fmt"

	"github.com/uagate/uatypes/pkg/objcache/internal/hashicorp"
	"github.com/uagate/uatypes/pkg/objcache/internal/imcache"
	"github.com/uagate/uatypes/pkg/objcache/internal/theine"
)

// Creates and return new LRU object cache with K key type and V value type.
//
// Maximum cache size is limited by size param. Optional onEvicted cb is called then some value evicted from cache.
func New[K comparable, V any](size int, onEvicted func(K, V)) ICache[K, V] {
	return NewProvider[K, V](Hashicorp, size, onEvicted)
}

// Creates and return new object cache implemented by specified provider.
//
// Panics if size is not positive or provider is unknown.
func NewProvider[K comparable, V any](p CacheProvider, size int, onEvicted func(K, V)) ICache[K, V] {
	if size <= 0 {
		panic(fmt.Errorf("%w: cache size %d", ErrInvalidSize, size))
	}
	switch p {
	case Hashicorp:
		return hashicorp.New[K, V](size, onEvicted)
	case Theine:
		return theine.New[K, V](size, onEvicted)
	case Imcache:
		return imcache.New[K, V](size, onEvicted)
	}
	panic(fmt.Errorf("%w: %v", ErrUnknownProvider, p))
}
