package algonrrd

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// TableCache shares weight tables between contexts. Two axis passes with the
// same kernel, parameters, sizes, ranges, centering, policy and precision
// use one table. Tables are immutable, so a cached table may be used by any
// number of contexts at once.
//
// A TableCache is safe for concurrent use.
type TableCache struct {
	c *cache.Cache
}

// NewTableCache creates a cache whose entries expire after expiration.
// A non-positive expiration keeps entries until Clear; a non-positive
// cleanup interval disables the background sweep of expired entries.
func NewTableCache(expiration, cleanupInterval time.Duration) *TableCache {
	if expiration <= 0 {
		expiration = cache.NoExpiration
	}

	return &TableCache{c: cache.New(expiration, cleanupInterval)}
}

// Len returns the number of cached tables, including expired ones not yet
// swept.
func (tc *TableCache) Len() int {
	if tc == nil {
		return 0
	}

	return tc.c.ItemCount()
}

// Clear removes every table.
func (tc *TableCache) Clear() {
	if tc != nil {
		tc.c.Flush()
	}
}

func cachedTable[T Float](tc *TableCache, key string) (*weightTable[T], bool) {
	if tc == nil {
		return nil, false
	}

	v, ok := tc.c.Get(key)
	if !ok {
		return nil, false
	}

	t, ok := v.(*weightTable[T])

	return t, ok
}

func storeTable[T Float](tc *TableCache, key string, t *weightTable[T]) {
	if tc != nil {
		tc.c.SetDefault(key, t)
	}
}
