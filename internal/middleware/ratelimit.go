package middleware

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/tomasen/realip"
	"golang.org/x/time/rate"
)

const limitersSize = 65536

// RateLimit limits requests per client ip to limit requests per window.
// Clients are refilled gradually with a burst of limit requests.
func RateLimit(limit int, window time.Duration, message string) func(http.Handler) http.Handler {
	var (
		mu       sync.Mutex
		limiters = expirable.NewLRU[string, *rate.Limiter](limitersSize, nil, window)
		every    = rate.Every(window / time.Duration(limit))
	)

	get := func(ip string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()

		l, ok := limiters.Get(ip)
		if !ok {
			l = rate.NewLimiter(every, limit)
		}
		// re-adding prolongs ttl of active clients
		limiters.Add(ip, l)

		return l
	}

	body, _ := json.Marshal(struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}{Error: message})

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			l := get(realip.FromRequest(r))

			now := time.Now()
			res := l.ReserveN(now, 1)
			if delay := res.DelayFrom(now); delay > 0 {
				res.CancelAt(now)

				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(delay.Seconds()))))
				w.Header().Set("RateLimit-Limit", strconv.Itoa(limit))
				w.Header().Set("RateLimit-Remaining", "0")
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write(body)
				return
			}

			w.Header().Set("RateLimit-Limit", strconv.Itoa(limit))
			w.Header().Set("RateLimit-Remaining", strconv.Itoa(int(l.TokensAt(now))))

			next.ServeHTTP(w, r)
		})
	}
}
