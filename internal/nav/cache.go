package nav

import (
	"sync"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// DefaultCacheSize bounds the search result cache.
const DefaultCacheSize = 50

// resultCache maps normalized query strings to prior result sets, bounded
// by insertion-order eviction: when full, the oldest-inserted entry is
// removed regardless of how recently it was read. Lookups never mutate
// eviction order.
type resultCache struct {
	mu  sync.Mutex
	max int
	om  *orderedmap.OrderedMap[string, []SearchResult]
}

func newResultCache(max int) *resultCache {
	if max <= 0 {
		max = DefaultCacheSize
	}
	return &resultCache{
		max: max,
		om:  orderedmap.New[string, []SearchResult](),
	}
}

func (c *resultCache) get(key string) ([]SearchResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.om.Get(key)
}

func (c *resultCache) put(key string, results []SearchResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.om.Get(key); !exists && c.om.Len() >= c.max {
		if oldest := c.om.Oldest(); oldest != nil {
			c.om.Delete(oldest.Key)
		}
	}
	c.om.Set(key, results)
}

// clear empties the cache. Called on every data reload: cached results
// reference nodes of the tree that was current when they were computed.
func (c *resultCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.om = orderedmap.New[string, []SearchResult]()
}

func (c *resultCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.om.Len()
}
