package nav

import (
	"fmt"
	"testing"
)

func TestCacheBound(t *testing.T) {
	c := newResultCache(50)
	for i := 0; i < 60; i++ {
		c.put(fmt.Sprintf("q%d", i), nil)
	}
	if got := c.len(); got != 50 {
		t.Errorf("expected 50 entries, got %d", got)
	}
	// The ten oldest-inserted keys were evicted.
	for i := 0; i < 10; i++ {
		if _, ok := c.get(fmt.Sprintf("q%d", i)); ok {
			t.Errorf("q%d should have been evicted", i)
		}
	}
	if _, ok := c.get("q59"); !ok {
		t.Error("newest entry missing")
	}
}

func TestCacheInsertionOrderEviction(t *testing.T) {
	c := newResultCache(2)
	c.put("a", nil)
	c.put("b", nil)

	// Reading "a" must not protect it: eviction is insertion-order, not LRU.
	if _, ok := c.get("a"); !ok {
		t.Fatal("a missing before eviction")
	}
	c.put("c", nil)

	if _, ok := c.get("a"); ok {
		t.Error("a should have been evicted despite the recent read")
	}
	if _, ok := c.get("b"); !ok {
		t.Error("b should have survived")
	}
	if _, ok := c.get("c"); !ok {
		t.Error("c should be present")
	}
}

func TestCacheOverwriteExistingKey(t *testing.T) {
	c := newResultCache(2)
	c.put("a", nil)
	c.put("b", nil)
	// Overwriting a present key must not evict anything.
	c.put("a", []SearchResult{{}})

	if _, ok := c.get("b"); !ok {
		t.Error("b evicted by an overwrite")
	}
	if results, ok := c.get("a"); !ok || len(results) != 1 {
		t.Error("overwrite did not take effect")
	}
}

func TestCacheClear(t *testing.T) {
	c := newResultCache(10)
	c.put("a", nil)
	c.put("b", nil)
	c.clear()
	if got := c.len(); got != 0 {
		t.Errorf("expected empty cache, got %d entries", got)
	}
	if _, ok := c.get("a"); ok {
		t.Error("entry survived clear")
	}
}
