package middleware

import (
	"net"
	"net/http"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"notion-roadmap/roadmap/internal/constants"
	"notion-roadmap/roadmap/internal/logging"
	"notion-roadmap/roadmap/internal/metrics"
)

// limiterIdleTTL is how long an idle client's limiter is kept.
const limiterIdleTTL = 10 * time.Minute

// RateLimiter hands out one token bucket per client IP. Buckets for clients
// that stop sending requests expire from the table.
type RateLimiter struct {
	limiters *gocache.Cache
	rps      rate.Limit
	burst    int
	metrics  *metrics.MetricsRegistry

	whitelistedIPs map[string]bool
}

func NewRateLimiter(rps float64, burst int, m *metrics.MetricsRegistry) *RateLimiter {
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{
		limiters: gocache.New(limiterIdleTTL, 2*limiterIdleTTL),
		rps:      rate.Limit(rps),
		burst:    burst,
		metrics:  m,
		whitelistedIPs: map[string]bool{
			"127.0.0.1": true, // local health probes
			"::1":       true,
		},
	}
}

func (rl *RateLimiter) getLimiter(ip string) *rate.Limiter {
	if cached, found := rl.limiters.Get(ip); found {
		limiter := cached.(*rate.Limiter)
		// Touch so active clients are not evicted mid-burst
		rl.limiters.SetDefault(ip, limiter)
		return limiter
	}

	limiter := rate.NewLimiter(rl.rps, rl.burst)
	if err := rl.limiters.Add(ip, limiter, gocache.DefaultExpiration); err != nil {
		// Another request created it first
		if cached, found := rl.limiters.Get(ip); found {
			return cached.(*rate.Limiter)
		}
	}
	return limiter
}

func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)
		if rl.whitelistedIPs[ip] {
			next.ServeHTTP(w, r)
			return
		}

		if !rl.getLimiter(ip).Allow() {
			if rl.metrics != nil {
				rl.metrics.RateLimitedTotal.Inc()
			}
			logging.Warn("Rate limit exceeded", "ip", ip, "path", r.URL.Path)
			w.Header().Set("Retry-After", "1")
			http.Error(w, constants.StatusTooManyReqs, http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
