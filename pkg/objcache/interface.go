/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 *
 * Modifications copyright (c) 2026-present unTill Software Development Group B.V.
 */

package objcache

// Objects cache
//
// All implementations are safe for concurrent use.
type ICache[K comparable, V any] interface {
	// Gets value by key. Returns true and value if key exists, false and zero value overwise
	Get(K) (value V, ok bool)

	// Puts value with key. Least recently used values are evicted if cache is full
	Put(K, V)

	// Deletes value by key. Does nothing if key is absent
	Delete(K)

	// Deletes all values
	Purge()

	// Returns number of cached values
	Len() int
}
