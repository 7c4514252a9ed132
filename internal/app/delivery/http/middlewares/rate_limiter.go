package middlewares

import (
	"net"
	"net/http"
	"sync"
	"time"

	"audit-service/internal/pkg/exceptions"
	"audit-service/internal/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RateLimiter throttles per client IP with a token bucket and blocks the IP
// for a fixed duration once the bucket runs dry. It guards the login endpoint
// against credential stuffing.
type RateLimiter struct {
	limiters  map[string]*rate.Limiter
	blocked   map[string]time.Time
	mu        sync.Mutex
	requests  int
	per       time.Duration
	blockTime time.Duration
	log       *zap.Logger
}

func NewRateLimiter(requests int, per, blockTime time.Duration, logger *zap.Logger) *RateLimiter {
	return &RateLimiter{
		limiters:  make(map[string]*rate.Limiter),
		blocked:   make(map[string]time.Time),
		requests:  requests,
		per:       per,
		blockTime: blockTime,
		log:       logger,
	}
}

// NewLoginLimiter builds the limiter guarding the login endpoint from the
// configured attempt budget.
func (m *Middlewares) NewLoginLimiter() *RateLimiter {
	return NewRateLimiter(
		m.InternalConfig.App.LoginMaxAttemptsPerMinute,
		time.Minute,
		time.Duration(m.InternalConfig.App.LoginBlockTimeInMinutes)*time.Minute,
		m.Log,
	)
}

func (rl *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		rl.mu.Lock()
		if blockedUntil, found := rl.blocked[ip]; found {
			if time.Now().Before(blockedUntil) {
				rl.mu.Unlock()
				utils.BuildErrorResponse(rl.log, w, exceptions.ErrTooManyRequests(nil))
				return
			}
			delete(rl.blocked, ip)
		}

		limiter, exists := rl.limiters[ip]
		if !exists {
			limiter = rate.NewLimiter(rate.Every(rl.per/time.Duration(rl.requests)), rl.requests)
			rl.limiters[ip] = limiter
		}
		rl.mu.Unlock()

		if !limiter.Allow() {
			rl.mu.Lock()
			rl.blocked[ip] = time.Now().Add(rl.blockTime)
			rl.mu.Unlock()

			rl.log.Warn("client temporarily blocked",
				zap.String("ip", ip),
				zap.Duration("block_time", rl.blockTime),
			)
			utils.BuildErrorResponse(rl.log, w, exceptions.ErrTooManyRequests(nil))
			return
		}

		next.ServeHTTP(w, r)
	})
}
