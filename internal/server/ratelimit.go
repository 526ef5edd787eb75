package server

import (
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// rateLimit returns middleware enforcing a per-client token bucket keyed by
// remote IP. RealIP runs earlier in the chain, so RemoteAddr reflects the
// forwarded address behind a proxy. Limiters for idle clients are dropped
// after an hour.
func rateLimit(perMinute int) func(http.Handler) http.Handler {
	type client struct {
		limiter  *rate.Limiter
		lastSeen time.Time
	}

	var (
		mu      sync.Mutex
		clients = make(map[string]*client)
	)

	limit := rate.Every(time.Minute / time.Duration(perMinute))
	burst := perMinute

	cleanup := func(now time.Time) {
		for ip, c := range clients {
			if now.Sub(c.lastSeen) > time.Hour {
				delete(clients, ip)
			}
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			now := time.Now()

			mu.Lock()
			c, ok := clients[r.RemoteAddr]
			if !ok {
				cleanup(now)
				c = &client{limiter: rate.NewLimiter(limit, burst)}
				clients[r.RemoteAddr] = c
			}
			c.lastSeen = now
			allowed := c.limiter.Allow()
			mu.Unlock()

			if !allowed {
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
