/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package operations

// Splits items into consecutive chunks with no more than limit items.
//
// Non-positive limit means unbounded: all items are returned as one chunk.
// Returns nil if items is empty. Chunks share memory with items
func Partition[T any](items []T, limit int) [][]T {
	if len(items) == 0 {
		return nil
	}
	if limit <= 0 || limit >= len(items) {
		return [][]T{items}
	}
	chunks := make([][]T, 0, (len(items)+limit-1)/limit)
	for len(items) > limit {
		chunks = append(chunks, items[:limit:limit])
		items = items[limit:]
	}
	return append(chunks, items)
}
