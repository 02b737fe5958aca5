/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package objcache_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/uagate/uatypes/pkg/objcache"
)

func TestCacheProviders(t *testing.T) {
	for p := objcache.CacheProvider(0); p < objcache.CacheProvider_count; p++ {
		t.Run(p.String(), func(t *testing.T) {
			require := require.New(t)

			c := objcache.NewProvider[string, int](p, 100, nil)

			_, ok := c.Get("a")
			require.False(ok)

			c.Put("a", 1)
			c.Put("b", 2)
			v, ok := c.Get("a")
			require.True(ok)
			require.Equal(1, v)

			c.Put("a", 3)
			v, ok = c.Get("a")
			require.True(ok)
			require.Equal(3, v)

			c.Delete("a")
			_, ok = c.Get("a")
			require.False(ok)

			c.Delete("unknown")

			c.Purge()
			_, ok = c.Get("b")
			require.False(ok)

			c.Put("c", 4)
			v, ok = c.Get("c")
			require.True(ok)
			require.Equal(4, v)
		})
	}
}

func TestCacheEviction(t *testing.T) {
	t.Run("hashicorp evicts least recently used", func(t *testing.T) {
		require := require.New(t)

		evicted := map[int]string{}
		c := objcache.New[int, string](2, func(k int, v string) { evicted[k] = v })

		c.Put(1, "one")
		c.Put(2, "two")
		_, _ = c.Get(1)
		c.Put(3, "three")

		require.Equal(2, c.Len())
		require.Equal(map[int]string{2: "two"}, evicted)

		_, ok := c.Get(1)
		require.True(ok)
		_, ok = c.Get(3)
		require.True(ok)
	})

	t.Run("imcache keeps entries limit", func(t *testing.T) {
		require := require.New(t)

		c := objcache.NewProvider[int, string](objcache.Imcache, 2, nil)
		c.Put(1, "one")
		c.Put(2, "two")
		c.Put(3, "three")

		require.Equal(2, c.Len())
		_, ok := c.Get(3)
		require.True(ok)
	})
}

func TestCacheConcurrentAccess(t *testing.T) {
	for p := objcache.CacheProvider(0); p < objcache.CacheProvider_count; p++ {
		t.Run(p.String(), func(t *testing.T) {
			c := objcache.NewProvider[int, int](p, 1000, nil)
			wg := sync.WaitGroup{}
			for g := 0; g < 8; g++ {
				wg.Add(1)
				go func(g int) {
					defer wg.Done()
					for i := 0; i < 100; i++ {
						c.Put(g*100+i, i)
						_, _ = c.Get(g*100 + i)
					}
				}(g)
			}
			wg.Wait()
			require.LessOrEqual(t, c.Len(), 800)
		})
	}
}

func TestNewProviderPanics(t *testing.T) {
	require := require.New(t)

	require.Panics(func() { objcache.New[int, int](0, nil) })
	require.Panics(func() { objcache.NewProvider[int, int](objcache.CacheProvider_count, 1, nil) })
}

func TestCacheProviderByName(t *testing.T) {
	require := require.New(t)

	for p := objcache.CacheProvider(0); p < objcache.CacheProvider_count; p++ {
		found, ok := objcache.CacheProviderByName(p.String())
		require.True(ok)
		require.Equal(p, found)
	}

	_, ok := objcache.CacheProviderByName("floatdrop")
	require.False(ok)
	require.Equal("CacheProvider(3)", fmt.Sprint(objcache.CacheProvider_count))
}
