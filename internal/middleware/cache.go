package middleware

import "github.com/gin-gonic/gin"

// CacheHeader reports whether a response was served from cache.
const CacheHeader = "X-Cache"

const cacheHitKey = "cache_hit"

// SetCacheHit records the cache outcome on the context and response headers.
func SetCacheHit(c *gin.Context, hit bool) {
	c.Set(cacheHitKey, hit)
	if hit {
		c.Header(CacheHeader, "HIT")
		return
	}
	c.Header(CacheHeader, "MISS")
}

// CacheHit reports the outcome recorded by SetCacheHit.
func CacheHit(c *gin.Context) bool {
	return c.GetBool(cacheHitKey)
}
