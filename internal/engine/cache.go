package engine

import (
	"time"

	"github.com/dshills/codescore/internal/analysis"
	"github.com/dshills/codescore/internal/source"
	"github.com/shaj13/libcache"
	_ "github.com/shaj13/libcache/lru"
)

const (
	DefaultCacheSize = 256
	DefaultCacheTTL  = 10 * time.Minute
)

// Cache memoizes analysis results by content hash. Results are
// deterministic, so a hit is indistinguishable from a fresh run.
type Cache struct {
	store libcache.Cache
}

// NewCache creates an LRU cache holding up to size results. A zero ttl
// keeps entries until they are evicted.
func NewCache(size int, ttl time.Duration) *Cache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	store := libcache.LRU.New(size)
	if ttl > 0 {
		store.SetTTL(ttl)
	}
	return &Cache{store: store}
}

// CacheKey identifies one analysis input.
func CacheKey(code, fileName string, lang analysis.Language) string {
	return source.Hash([]byte(string(lang) + "\x00" + fileName + "\x00" + code))
}

// Get returns a private copy of the cached result for key.
func (c *Cache) Get(key string) (*analysis.Result, bool) {
	v, ok := c.store.Load(key)
	if !ok {
		return nil, false
	}
	r, ok := v.(*analysis.Result)
	if !ok {
		return nil, false
	}
	return clone(r), true
}

// Put stores a private copy of r under key.
func (c *Cache) Put(key string, r *analysis.Result) {
	c.store.Store(key, clone(r))
}

// Len reports the number of cached results.
func (c *Cache) Len() int {
	return c.store.Len()
}

func clone(r *analysis.Result) *analysis.Result {
	cp := *r
	cp.Recommendations = append([]string(nil), r.Recommendations...)
	return &cp
}
