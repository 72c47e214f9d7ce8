package api

import (
	"net/http"
	"sync"

	"contact-scout/internal/auth"

	"golang.org/x/time/rate"
)

// rateLimiter keeps one token bucket per authenticated user.
type rateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*rate.Limiter
	rps      rate.Limit
	burst    int
}

func newRateLimiter(rps float64, burst int) *rateLimiter {
	if rps <= 0 {
		rps = 5
	}
	if burst <= 0 {
		burst = 10
	}
	return &rateLimiter{
		visitors: make(map[string]*rate.Limiter),
		rps:      rate.Limit(rps),
		burst:    burst,
	}
}

func (rl *rateLimiter) limiterFor(userID string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	l, ok := rl.visitors[userID]
	if !ok {
		l = rate.NewLimiter(rl.rps, rl.burst)
		rl.visitors[userID] = l
	}
	return l
}

// Middleware throttles requests per user id. Runs after auth so the bucket
// key is the verified identity, not the connection.
func (rl *rateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := auth.UserID(r.Context())
		if userID == "" {
			userID = r.RemoteAddr
		}
		if !rl.limiterFor(userID).Allow() {
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}
