package server

import (
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/playperu/tycoon/internal/config"
)

const limiterSweepInterval = time.Minute

// rateLimiter keeps one token bucket per client IP.
type rateLimiter struct {
	cfg config.RateLimitConfig
	now func() time.Time

	mu        sync.Mutex
	clients   map[string]*rate.Limiter
	lastSweep time.Time
}

func newRateLimiter(cfg config.RateLimitConfig) *rateLimiter {
	return &rateLimiter{
		cfg:       cfg,
		now:       time.Now,
		clients:   make(map[string]*rate.Limiter),
		lastSweep: time.Now(),
	}
}

func (rl *rateLimiter) limiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if now.Sub(rl.lastSweep) >= limiterSweepInterval {
		// A full bucket means the client has been idle long enough to forget.
		for k, l := range rl.clients {
			if l.TokensAt(now) >= float64(rl.cfg.Burst) {
				delete(rl.clients, k)
			}
		}
		rl.lastSweep = now
	}

	l, ok := rl.clients[ip]
	if !ok {
		l = rate.NewLimiter(rate.Limit(rl.cfg.RequestsPerSecond), rl.cfg.Burst)
		rl.clients[ip] = l
	}
	return l
}

func (rl *rateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.cfg.Enabled {
			next.ServeHTTP(w, r)
			return
		}

		ip := clientIP(r, rl.cfg.TrustProxy)
		if !rl.limiter(ip).AllowN(rl.now(), 1) {
			slog.Warn("rate limit exceeded",
				"client_ip", ip,
				"method", r.Method,
				"path", r.URL.Path,
			)
			w.Header().Set("Retry-After", "1")
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			first, _, _ := strings.Cut(xff, ",")
			return strings.TrimSpace(first)
		}
		if xri := r.Header.Get("X-Real-IP"); xri != "" {
			return xri
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
