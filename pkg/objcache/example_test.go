/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 *
 * This source code is licensed under the MIT license found in the
 * LICENSE file in the root directory of this source tree.
 *
 * Modifications copyright (c) 2026-present unTill Software Development Group B.V.
 */

package objcache_test

import (
	"fmt"

	"github.com/uagate/uatypes/pkg/objcache"
)

func Example() {
	// Create cache with size 1 to demonstrate cache value eviction
	cache := objcache.New[string, int](1, func(k string, v int) {
		fmt.Printf("evicted        : %s=%d\n", k, v)
	})

	cache.Put("ns=1;i=3001", 1)
	v, ok := cache.Get("ns=1;i=3001")
	fmt.Println("found          :", v, ok)

	cache.Put("ns=1;i=3002", 2)
	_, ok = cache.Get("ns=1;i=3001")
	fmt.Println("found after put:", ok)

	// Output:
	// found          : 1 true
	// evicted        : ns=1;i=3001=1
	// found after put: false
}
