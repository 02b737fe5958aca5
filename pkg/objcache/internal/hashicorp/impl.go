/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 *
 * Modifications copyright (c) 2026-present unTill Software Development Group B.V.
 */

package hashicorp

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// LRU cache implemented by hashicorp LRU cache
type Cache[K comparable, V any] struct {
	lru *lru.Cache[K, V]
}

func New[K comparable, V any](size int, onEvicted func(K, V)) *Cache[K, V] {
	var err error
	c := &Cache[K, V]{}
	c.lru, err = lru.NewWithEvict[K, V](size, onEvicted)
	if err != nil {
		// notest
		panic(err)
	}
	return c
}

func (c *Cache[K, V]) Get(key K) (value V, ok bool) {
	return c.lru.Get(key)
}

func (c *Cache[K, V]) Put(key K, value V) {
	c.lru.Add(key, value)
}

func (c *Cache[K, V]) Delete(key K) {
	c.lru.Remove(key)
}

func (c *Cache[K, V]) Purge() {
	c.lru.Purge()
}

func (c *Cache[K, V]) Len() int {
	return c.lru.Len()
}
