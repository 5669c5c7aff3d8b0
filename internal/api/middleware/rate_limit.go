package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/m04kA/SMC-TestDriveService/internal/api/handlers"
)

const (
	msgRateLimited = "too many requests, try again later"

	// minIdleTTL lower bound for dropping a key nobody has used
	minIdleTTL = 10 * time.Minute
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter token bucket per user (per client IP for anonymous requests).
// Keys idle for longer than idleTTL are swept, a swept key starts again with a full bucket.
type RateLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	limit     rate.Limit
	burst     int
	idleTTL   time.Duration
	lastSweep time.Time
	now       func() time.Time
	logger    Logger
}

// NewRateLimiter allows requestsPerMinute with the given burst per key
func NewRateLimiter(requestsPerMinute, burst int, logger Logger) *RateLimiter {
	interval := time.Minute / time.Duration(requestsPerMinute)

	// an idle bucket is full again after burst intervals, forgetting it earlier would loosen the limit
	idleTTL := time.Duration(burst) * interval
	if idleTTL < minIdleTTL {
		idleTTL = minIdleTTL
	}

	return &RateLimiter{
		visitors:  make(map[string]*visitor),
		limit:     rate.Every(interval),
		burst:     burst,
		idleTTL:   idleTTL,
		lastSweep: time.Now(),
		now:       time.Now,
		logger:    logger,
	}
}

// allow takes one token from the bucket of key
func (rl *RateLimiter) allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if now.Sub(rl.lastSweep) >= rl.idleTTL {
		rl.sweep(now)
	}

	v, ok := rl.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.visitors[key] = v
	}
	v.lastSeen = now

	return v.limiter.AllowN(now, 1)
}

// sweep drops idle keys. Caller holds mu.
func (rl *RateLimiter) sweep(now time.Time) {
	for key, v := range rl.visitors {
		if now.Sub(v.lastSeen) >= rl.idleTTL {
			delete(rl.visitors, key)
		}
	}
	rl.lastSweep = now
}

// Middleware rejects requests over the limit with 429
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := clientKey(r)
		if !rl.allow(key) {
			rl.logger.Warn("RateLimit: %s exceeded on %s %s", key, r.Method, r.URL.Path)
			w.Header().Set("Retry-After", "60")
			handlers.RespondError(w, http.StatusTooManyRequests, msgRateLimited)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientKey(r *http.Request) string {
	if userID, ok := UserIDFromContext(r.Context()); ok {
		return "user:" + strconv.FormatInt(userID, 10)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "ip:" + host
}
