package feasibility

import (
	lru "github.com/opencoff/golang-lru"
	"golang.org/x/sync/singleflight"
)

// ViabilityCacheSize bounds the memoization cache below. Cross-seat
// combinations repeat heavily across attempts within a board (the selector
// re-rolls only every SUBPROFILE_REROLL_INTERVAL attempts), so a modest
// cache absorbs most of the repeat work.
const ViabilityCacheSize = 4096

// ViabilityCache memoizes CrossSeatViable results keyed by the caller's
// encoding of the chosen subprofile indices (see selector.indexKey). A
// singleflight group collapses concurrent recomputation of the same key,
// should callers ever invoke this from more than one goroutine.
type ViabilityCache struct {
	cache *lru.Cache
	group singleflight.Group
}

// NewViabilityCache builds a cache holding up to size entries.
func NewViabilityCache(size int) *ViabilityCache {
	c, err := lru.New(size)
	if err != nil {
		// size <= 0 is a programmer error, not a runtime condition to
		// recover from.
		panic(err)
	}
	return &ViabilityCache{cache: c}
}

// viabilityResult is the cached (bool, string) pair, boxed because the LRU
// cache stores interface{} values.
type viabilityResult struct {
	ok     bool
	reason string
}

// Check returns the memoized result for key, computing it via compute on a
// miss.
func (c *ViabilityCache) Check(key string, compute func() (bool, string)) (bool, string) {
	if v, ok := c.cache.Get(key); ok {
		r := v.(viabilityResult)
		return r.ok, r.reason
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		ok, reason := compute()
		return viabilityResult{ok: ok, reason: reason}, nil
	})
	if err != nil {
		return false, "viability cache error"
	}

	r := v.(viabilityResult)
	c.cache.Add(key, r)
	return r.ok, r.reason
}
