package adminapi

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/mdsolution/vitrine/internal/core/domain"
)

// Default rate limiting values.
const (
	DefaultRatePerSecond = 5.0
	DefaultBurst         = 5
	defaultBackoff       = 60 * time.Second
)

// RateLimiter throttles admin API requests with a token bucket and
// honours the server's Retry-After after a 429.
type RateLimiter struct {
	mu      sync.Mutex
	limiter *rate.Limiter
	retryAt time.Time
	now     func() time.Time
}

// NewRateLimiter creates a limiter allowing perSecond sustained requests.
func NewRateLimiter(perSecond float64, burst int) *RateLimiter {
	if perSecond <= 0 {
		perSecond = DefaultRatePerSecond
	}
	if burst <= 0 {
		burst = DefaultBurst
	}
	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(perSecond), burst),
		now:     time.Now,
	}
}

// Wait blocks until a request may be sent.
// During a backoff window it fails fast with domain.ErrRateLimited,
// since a blocked fetch would only delay the fallback.
func (r *RateLimiter) Wait(ctx context.Context) error {
	if r.Backoff() > 0 {
		return domain.ErrRateLimited
	}
	return r.limiter.Wait(ctx)
}

// Backoff returns how long until the current backoff window ends.
func (r *RateLimiter) Backoff() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	if d := r.retryAt.Sub(r.now()); d > 0 {
		return d
	}
	return 0
}

// RecordRateLimit starts a backoff window. A non-positive duration
// uses the default of one minute.
func (r *RateLimiter) RecordRateLimit(after time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if after <= 0 {
		after = defaultBackoff
	}
	r.retryAt = r.now().Add(after)
}

// parseRetryAfter reads a Retry-After header given in seconds or as an
// HTTP date. Unparseable values yield 0.
func parseRetryAfter(v string, now time.Time) time.Duration {
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(v); err == nil {
		return t.Sub(now)
	}
	return 0
}
