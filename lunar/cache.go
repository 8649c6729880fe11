package lunar

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// YearCache memoizes YearLayout construction keyed by integer civil year,
// per spec §5: building a year costs 25 qi solves plus 15 shuo solves, so
// repeated lookups for the same year (e.g. serving every day of a
// calendar view) should not redo that work. Capacity defaults to 100
// years, matching the spec's suggested size for a typical long-lived
// process.
type YearCache struct {
	cache *lru.Cache[int, *YearLayout]
	hits  int64
	miss  int64
}

// NewYearCache creates a YearCache with the given capacity (number of
// distinct years to retain).
func NewYearCache(capacity int) *YearCache {
	c, _ := lru.New[int, *YearLayout](capacity)
	return &YearCache{cache: c}
}

// Get returns the YearLayout for the lunar year containing the given
// civil year's approximate winter solstice, building and caching it on a
// miss.
func (c *YearCache) Get(civilYear int) *YearLayout {
	if layout, ok := c.cache.Get(civilYear); ok {
		c.hits++
		return layout
	}
	c.miss++
	layout := BuildYear(jd2000ForYear(float64(civilYear)))
	c.cache.Add(civilYear, layout)
	return layout
}

// Stats reports cumulative hit/miss counts for diagnostics.
func (c *YearCache) Stats() (hits, misses int64) {
	return c.hits, c.miss
}

// Len returns the number of years currently cached.
func (c *YearCache) Len() int {
	return c.cache.Len()
}
