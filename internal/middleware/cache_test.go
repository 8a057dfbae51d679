package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCached(t *testing.T) {
	var calls int
	code := http.StatusOK

	h := NewCache(time.Minute).Cached(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_, _ = w.Write([]byte(`{"success":true}`))
	})

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		h(w, httptest.NewRequest(http.MethodGet, "/api/analytics/overview?platform=twitter", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
		assert.Equal(t, `{"success":true}`, w.Body.String())
	}
	assert.Equal(t, 1, calls)

	code = http.StatusInternalServerError
	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		h(w, httptest.NewRequest(http.MethodGet, "/api/analytics/overview", nil))
		require.Equal(t, http.StatusInternalServerError, w.Code)
	}
	assert.Equal(t, 3, calls)
}

func TestCached_Disabled(t *testing.T) {
	var calls int
	h := NewCache(0).Cached(func(w http.ResponseWriter, r *http.Request) { calls++ })

	h(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	h(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, 2, calls)
}

func TestCache_Invalidate(t *testing.T) {
	var calls int
	c := NewCache(time.Minute)

	get := c.Cached(func(w http.ResponseWriter, r *http.Request) {
		calls++
		_, _ = w.Write([]byte(`{}`))
	})
	write := c.Invalidate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	get(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/overview", nil))
	get(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/overview", nil))
	assert.Equal(t, 1, calls)

	write.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/posts", nil))
	get(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/overview", nil))
	assert.Equal(t, 1, calls)

	write.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/posts/import", nil))
	get(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/overview", nil))
	assert.Equal(t, 2, calls)

	var disabled *Cache
	assert.NotPanics(t, func() {
		disabled.Invalidate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})).
			ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodDelete, "/posts", nil))
	})
}
