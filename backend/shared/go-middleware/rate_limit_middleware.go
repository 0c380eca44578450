package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/JacquiM/PropManPulse/backend/shared/go-utils"
)

const defaultIdleTTL = 10 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client key. Buckets idle for longer
// than the TTL are dropped on the next sweep.
type RateLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	rate      rate.Limit
	burst     int
	keyFunc   func(*http.Request) string
	idleTTL   time.Duration
	lastSweep time.Time
	now       func() time.Time
}

type RateLimiterOption func(*RateLimiter)

// WithTrustedProxyHeaders keys clients by utils.ClientIP. Only use it behind
// a proxy that overwrites X-Forwarded-For, otherwise a client picks its own key.
func WithTrustedProxyHeaders() RateLimiterOption {
	return func(rl *RateLimiter) { rl.keyFunc = utils.ClientIP }
}

func WithIdleTTL(d time.Duration) RateLimiterOption {
	return func(rl *RateLimiter) {
		if d > 0 {
			rl.idleTTL = d
		}
	}
}

func withClock(now func() time.Time) RateLimiterOption {
	return func(rl *RateLimiter) { rl.now = now }
}

// NewRateLimiter allows perMinute requests per client with the given burst.
// Clients are keyed by the connection address unless
// WithTrustedProxyHeaders is given.
func NewRateLimiter(perMinute, burst int, opts ...RateLimiterOption) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		rate:     rate.Every(time.Minute / time.Duration(max(perMinute, 1))),
		burst:    max(burst, 1),
		keyFunc:  utils.RemoteIP,
		idleTTL:  defaultIdleTTL,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(rl)
	}
	rl.lastSweep = rl.now()
	return rl
}

func (rl *RateLimiter) limiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if now.Sub(rl.lastSweep) >= rl.idleTTL {
		rl.sweepLocked(now)
	}

	v, ok := rl.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.visitors[key] = v
	}
	v.lastSeen = now
	return v.limiter
}

func (rl *RateLimiter) sweepLocked(now time.Time) {
	for key, v := range rl.visitors {
		if now.Sub(v.lastSeen) > rl.idleTTL {
			delete(rl.visitors, key)
		}
	}
	rl.lastSweep = now
}

// Cleanup drops every bucket idle for longer than the TTL.
func (rl *RateLimiter) Cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	rl.sweepLocked(rl.now())
}

// Len reports how many client buckets are tracked.
func (rl *RateLimiter) Len() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.visitors)
}

func (rl *RateLimiter) Allow(key string) bool {
	return rl.limiter(key).Allow()
}

// Middleware rejects requests past the client's budget with 429.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := rl.keyFunc(r)
		if !rl.Allow(key) {
			utils.Logger.WithFields(logrus.Fields{
				"client": key,
				"path":   r.URL.Path,
			}).Warn("rate limit exceeded")
			w.Header().Set("Retry-After", strconv.Itoa(int(rl.retryAfter().Seconds())))
			utils.RespondErrorWithCode(
				w, http.StatusTooManyRequests, utils.ErrCodeRateLimitExceeded,
				"Too many requests, please try again later", nil, utils.ErrRateLimitExceeded,
			)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) retryAfter() time.Duration {
	d := time.Duration(float64(time.Second) / float64(rl.rate))
	if d < time.Second {
		return time.Second
	}
	return d
}
