package middleware

import (
	"log/slog"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// =============================================================================
// Rate Limit Configuration
// =============================================================================

// RateLimitConfig holds configuration for the per-client rate limiter.
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained rate per client. Zero disables limiting.
	RequestsPerSecond float64

	// Burst is the number of requests allowed at once. Defaults to 1.
	Burst int

	// TrustProxy makes the limiter key on X-Forwarded-For and X-Real-IP.
	TrustProxy bool

	Logger *slog.Logger
}

// =============================================================================
// Rate Limiter
// =============================================================================

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter throttles generation and export requests per client IP.
type RateLimiter struct {
	config RateLimitConfig

	mu       sync.Mutex
	visitors map[string]*visitor
}

// NewRateLimiter creates a rate limiter with the given config.
func NewRateLimiter(cfg RateLimitConfig) *RateLimiter {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}
	return &RateLimiter{
		config:   cfg,
		visitors: make(map[string]*visitor),
	}
}

// Enabled reports whether the limiter throttles anything.
func (l *RateLimiter) Enabled() bool {
	return l != nil && l.config.RequestsPerSecond > 0
}

// TrustsProxy reports whether clients are keyed on proxy headers.
func (l *RateLimiter) TrustsProxy() bool {
	return l != nil && l.config.TrustProxy
}

// Reserve takes a token for key at now. When no token is available it
// returns false and how long the client should wait.
func (l *RateLimiter) Reserve(key string, now time.Time) (bool, time.Duration) {
	if !l.Enabled() {
		return true, 0
	}

	l.mu.Lock()
	v, ok := l.visitors[key]
	if !ok {
		v = &visitor{
			limiter: rate.NewLimiter(rate.Limit(l.config.RequestsPerSecond), l.config.Burst),
		}
		l.visitors[key] = v
	}
	v.lastSeen = now
	l.mu.Unlock()

	r := v.limiter.ReserveN(now, 1)
	if !r.OK() {
		return false, time.Minute
	}
	if delay := r.DelayFrom(now); delay > 0 {
		r.CancelAt(now)
		return false, delay
	}
	return true, 0
}

// Prune forgets clients idle for longer than idle and returns how many
// were removed.
func (l *RateLimiter) Prune(now time.Time, idle time.Duration) int {
	if l == nil {
		return 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for key, v := range l.visitors {
		if now.Sub(v.lastSeen) > idle {
			delete(l.visitors, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked clients.
func (l *RateLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.visitors)
}

// Allow takes a token for the client of r. When the client is over its
// limit it sets Retry-After on w and returns false.
func (l *RateLimiter) Allow(w http.ResponseWriter, r *http.Request) bool {
	if !l.Enabled() {
		return true
	}
	key := ClientIP(r, l.config.TrustProxy)
	ok, wait := l.Reserve(key, time.Now())
	if !ok {
		l.config.Logger.Warn("rate limit exceeded",
			"client", key,
			"path", r.URL.Path,
		)
		w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
	}
	return ok
}

// Handler returns the middleware handler function.
func (l *RateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.Allow(w, r) {
			writeJSONError(w, http.StatusTooManyRequests, "Too Many Requests", "Rate limit exceeded, retry later")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ClientIP returns the address the request came from. Proxy headers are only
// consulted when trustProxy is set.
func ClientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
			first, _, _ := strings.Cut(fwd, ",")
			if ip := strings.TrimSpace(first); ip != "" {
				return ip
			}
		}
		if ip := strings.TrimSpace(r.Header.Get("X-Real-IP")); ip != "" {
			return ip
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
