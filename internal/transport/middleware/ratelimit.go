package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"github.com/heartmarshall/weektrack-backend/internal/config"
)

// RateLimiter keeps one token bucket per client IP.
type RateLimiter struct {
	clients sync.Map // map[string]*client
	rpm     int
	limit   rate.Limit
	burst   int
	idleTTL time.Duration
	stop    chan struct{}
	once    sync.Once
}

type client struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64 // unix nanos
}

// NewRateLimiter creates a rate limiter with background cleanup of idle
// clients. Call Stop() on shutdown. A non-positive RequestsPerMinute
// disables limiting.
func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	if cfg.CleanupInterval <= 0 {
		cfg.CleanupInterval = 5 * time.Minute
	}
	rl := &RateLimiter{
		rpm:     cfg.RequestsPerMinute,
		limit:   rate.Limit(float64(cfg.RequestsPerMinute) / 60.0),
		burst:   cfg.Burst,
		idleTTL: cfg.CleanupInterval,
		stop:    make(chan struct{}),
	}
	if rl.rpm > 0 {
		go rl.cleanup(cfg.CleanupInterval)
	}
	return rl
}

// Stop terminates the background cleanup goroutine. It is safe to call twice.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
}

// Limit returns middleware that answers 429 once a client's bucket is empty.
// It returns nil when limiting is disabled; Chain skips it.
func (rl *RateLimiter) Limit() Middleware {
	if rl.rpm <= 0 {
		return nil
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c := rl.client(clientIP(r))
			if !c.limiter.Allow() {
				w.Header().Set("Retry-After", strconv.Itoa(rl.retryAfterSeconds()))
				writeJSONError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) client(key string) *client {
	val, ok := rl.clients.Load(key)
	if !ok {
		val, _ = rl.clients.LoadOrStore(key, &client{limiter: rate.NewLimiter(rl.limit, rl.burst)})
	}
	c := val.(*client)
	c.lastSeen.Store(time.Now().UnixNano())
	return c
}

func (rl *RateLimiter) retryAfterSeconds() int {
	if rl.rpm <= 0 {
		return 60
	}
	return 60/rl.rpm + 1
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func (rl *RateLimiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case now := <-ticker.C:
			rl.clients.Range(func(key, value any) bool {
				idle := now.Sub(time.Unix(0, value.(*client).lastSeen.Load()))
				if idle > rl.idleTTL {
					rl.clients.Delete(key)
				}
				return true
			})
		}
	}
}
