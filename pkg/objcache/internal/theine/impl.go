/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 *
 * Modifications copyright (c) 2026-present unTill Software Development Group B.V.
 */

package theine

import (
	"sync"

	theine "github.com/Yiling-J/theine-go"
)

// Cache implemented by theine-go hybrid cache.
//
// theine has no purge operation, so Purge() replaces the underlying cache.
type Cache[K comparable, V any] struct {
	mu        sync.RWMutex
	c         *theine.Cache[K, V]
	size      int
	onEvicted func(K, V)
}

func New[K comparable, V any](size int, onEvicted func(K, V)) *Cache[K, V] {
	c := &Cache[K, V]{size: size, onEvicted: onEvicted}
	c.c = c.build()
	return c
}

func (c *Cache[K, V]) build() *theine.Cache[K, V] {
	bld := theine.NewBuilder[K, V](int64(c.size))
	if c.onEvicted != nil {
		bld.RemovalListener(func(key K, value V, _ theine.RemoveReason) { c.onEvicted(key, value) })
	}
	cache, err := bld.Build()
	if err != nil {
		// notest
		panic(err)
	}
	return cache
}

func (c *Cache[K, V]) Get(key K) (value V, ok bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.c.Get(key)
}

func (c *Cache[K, V]) Put(key K, value V) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_ = c.c.Set(key, value, 1)
}

func (c *Cache[K, V]) Delete(key K) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	c.c.Delete(key)
}

func (c *Cache[K, V]) Purge() {
	fresh := c.build()
	c.mu.Lock()
	old := c.c
	c.c = fresh
	c.mu.Unlock()
	old.Close()
}

func (c *Cache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.c.Len()
}
