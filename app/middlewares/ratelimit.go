package middlewares

import (
	"log"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/unrolled/render"
	"golang.org/x/time/rate"
)

// ipLimiter hands out one token-bucket limiter per client IP. Buckets idle
// for an hour are evicted so the map cannot grow unbounded.
type ipLimiter struct {
	mu       sync.Mutex
	limiters map[string]*ipEntry
	limit    rate.Limit
	burst    int
}

type ipEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newIPLimiter(perMinute int) *ipLimiter {
	l := &ipLimiter{
		limiters: make(map[string]*ipEntry),
		limit:    rate.Limit(float64(perMinute) / 60.0),
		burst:    perMinute,
	}
	go l.cleanup()
	return l
}

func (l *ipLimiter) get(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.limiters[ip]
	if !ok {
		entry = &ipEntry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.limiters[ip] = entry
	}
	entry.lastSeen = time.Now()
	return entry.limiter
}

func (l *ipLimiter) cleanup() {
	for range time.Tick(10 * time.Minute) {
		l.mu.Lock()
		for ip, entry := range l.limiters {
			if time.Since(entry.lastSeen) > time.Hour {
				delete(l.limiters, ip)
			}
		}
		l.mu.Unlock()
	}
}

// EmailRateLimitMiddleware caps the email-sending endpoints at perMinute
// requests per client IP, answering 429 on excess.
func EmailRateLimitMiddleware(perMinute int, r *render.Render) func(http.Handler) http.Handler {
	limiter := newIPLimiter(perMinute)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ip, _, err := net.SplitHostPort(req.RemoteAddr)
			if err != nil {
				ip = req.RemoteAddr
			}

			if !limiter.get(ip).Allow() {
				log.Printf("EmailRateLimitMiddleware: rate limit exceeded for %s on %s", ip, req.URL.Path)
				_ = r.JSON(w, http.StatusTooManyRequests, map[string]string{
					"status":  "error",
					"message": "Too many requests. Try again in a minute.",
				})
				return
			}

			next.ServeHTTP(w, req)
		})
	}
}
