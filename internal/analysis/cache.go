package analysis

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/fenwick-labs/craftgraph/internal/domain"
	"github.com/fenwick-labs/craftgraph/internal/metrics"
)

// ingredientCache memoizes transitive-ingredient walks per root item. The
// underlying database never changes, so the TTL only bounds memory held for
// items nobody asks about anymore.
type ingredientCache struct {
	lru *expirable.LRU[domain.ItemID, []domain.ItemID]
}

func newIngredientCache(size int, ttl time.Duration) *ingredientCache {
	return &ingredientCache{
		lru: expirable.NewLRU[domain.ItemID, []domain.ItemID](size, nil, ttl),
	}
}

func (c *ingredientCache) Get(itemID domain.ItemID) ([]domain.ItemID, bool) {
	ids, found := c.lru.Get(itemID)
	if found {
		metrics.AnalysisCacheHits.Inc()
	} else {
		metrics.AnalysisCacheMisses.Inc()
	}
	return ids, found
}

func (c *ingredientCache) Set(itemID domain.ItemID, ids []domain.ItemID) {
	c.lru.Add(itemID, ids)
}
