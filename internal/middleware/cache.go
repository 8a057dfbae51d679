// Package middleware contains http middlewares shared by handlers.
package middleware

import (
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const cacheSize = 1024

type response struct {
	code   int
	header http.Header
	body   []byte
}

// Cache caches successful responses by request uri. A nil Cache caches nothing.
type Cache struct {
	storage *expirable.LRU[string, *response]
}

// NewCache creates a cache with ttl. It returns nil when ttl is not positive.
func NewCache(ttl time.Duration) *Cache {
	if ttl <= 0 {
		return nil
	}

	return &Cache{
		storage: expirable.NewLRU[string, *response](cacheSize, nil, ttl),
	}
}

// Purge drops all cached responses.
func (c *Cache) Purge() {
	if c == nil {
		return
	}

	c.storage.Purge()
}

// Invalidate purges the cache after every request which is not GET or HEAD.
func (c *Cache) Invalidate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r)

		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			c.Purge()
		}
	})
}

// Cached serves handler's responses from the cache.
func (c *Cache) Cached(handler http.HandlerFunc) http.HandlerFunc {
	if c == nil {
		return handler
	}

	return func(w http.ResponseWriter, r *http.Request) {
		if content, ok := c.storage.Get(r.RequestURI); ok {
			write(w, content)
			return
		}

		rec := httptest.NewRecorder()
		handler(rec, r)

		content := &response{
			code:   rec.Code,
			header: rec.Header().Clone(),
			body:   rec.Body.Bytes(),
		}

		if content.code >= http.StatusOK && content.code < http.StatusMultipleChoices {
			c.storage.Add(r.RequestURI, content)
		}

		write(w, content)
	}
}

func write(w http.ResponseWriter, content *response) {
	for k, v := range content.header {
		w.Header()[k] = v
	}

	w.WriteHeader(content.code)
	_, _ = w.Write(content.body)
}
