package middleware

import (
	"bytes"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"net/http"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Shaon99/ota-backend/internal/domain/services"
)

// cacheEntry holds a cached response body
type cacheEntry struct {
	Content    []byte
	Expiration time.Time
}

// memoryCache is the fallback store when Redis is unavailable
type memoryCache struct {
	sync.RWMutex
	items map[string]cacheEntry
}

var memCache = &memoryCache{
	items: make(map[string]cacheEntry),
}

// cacheStore is the Redis-backed store; nil or unreachable falls back to
// memCache.
var cacheStore services.InterfaceRedisService

// InitCacheMiddleware wires the Redis store into the response cache
func InitCacheMiddleware(redisService services.InterfaceRedisService) {
	cacheStore = redisService
}

// cacheGeneration namespaces every cache key. Bumping it orphans all cached
// responses at once; orphaned entries age out through their TTL.
var cacheGeneration uint64

// InvalidateCache drops every cached response. Mutating handlers call it so a
// write is never followed by a stale read.
func InvalidateCache() {
	atomic.AddUint64(&cacheGeneration, 1)
}

// CacheConfig configures the response cache middleware
type CacheConfig struct {
	Expiration time.Duration
}

// cacheKey derives a stable key from the request path and sorted query
func cacheKey(c *gin.Context) string {
	path := c.Request.URL.Path

	queryParams := c.Request.URL.Query()
	var queryKeys []string
	for key := range queryParams {
		queryKeys = append(queryKeys, key)
	}
	sort.Strings(queryKeys)

	var queryString string
	for _, key := range queryKeys {
		values := queryParams[key]
		sort.Strings(values)
		for _, value := range values {
			queryString += key + "=" + value + "&"
		}
	}

	hasher := md5.New()
	hasher.Write([]byte(path + "?" + queryString))
	return fmt.Sprintf("respcache:%d:%s", atomic.LoadUint64(&cacheGeneration), hex.EncodeToString(hasher.Sum(nil)))
}

func cacheGet(key string) ([]byte, bool) {
	if cacheStore != nil {
		if content, err := cacheStore.GetRaw(key); err == nil {
			return content, true
		}
	}

	memCache.RLock()
	entry, found := memCache.items[key]
	memCache.RUnlock()
	if found && entry.Expiration.After(time.Now()) {
		return entry.Content, true
	}
	return nil, false
}

func cacheSet(key string, content []byte, expiration time.Duration) {
	if cacheStore != nil {
		if err := cacheStore.SetRaw(key, content, expiration); err == nil {
			return
		}
	}

	memCache.Lock()
	memCache.items[key] = cacheEntry{
		Content:    content,
		Expiration: time.Now().Add(expiration),
	}
	memCache.Unlock()
}

// Cache serves repeated GET requests from the response cache
func Cache(cfg CacheConfig) gin.HandlerFunc {
	if cfg.Expiration <= 0 {
		cfg.Expiration = 5 * time.Minute
	}

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := cacheKey(c)

		if content, found := cacheGet(key); found {
			c.Data(http.StatusOK, "application/json; charset=utf-8", content)
			c.Abort()
			return
		}

		writer := &responseWriter{
			ResponseWriter: c.Writer,
			body:           &bytes.Buffer{},
		}
		c.Writer = writer

		c.Next()

		if c.Writer.Status() == http.StatusOK {
			cacheSet(key, writer.body.Bytes(), cfg.Expiration)
		}
	}
}

// responseWriter captures the response body while it is being written
type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *responseWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// Expired fallback entries are cleaned periodically.
func init() {
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now()
			memCache.Lock()
			for key, entry := range memCache.items {
				if entry.Expiration.Before(now) {
					delete(memCache.items, key)
				}
			}
			memCache.Unlock()
		}
	}()
}
