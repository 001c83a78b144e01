package zeroshot

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

var errLimiterClosed = errors.New("rate limiter closed")

// rateLimiter is a token bucket whose balance is recomputed from elapsed
// time on each call, so it needs no background goroutine.
type rateLimiter struct {
	last     time.Time
	now      func() time.Time
	closed   chan struct{}
	tokens   float64
	capacity float64
	interval time.Duration
	mu       sync.Mutex
	once     sync.Once
}

// newRateLimiter creates a limiter allowing requestsPerMinute calls, with
// a full bucket to start.
func newRateLimiter(requestsPerMinute int) *rateLimiter {
	if requestsPerMinute <= 0 {
		requestsPerMinute = 60
	}

	return &rateLimiter{
		now:      time.Now,
		last:     time.Now(),
		closed:   make(chan struct{}),
		tokens:   float64(requestsPerMinute),
		capacity: float64(requestsPerMinute),
		interval: time.Minute / time.Duration(requestsPerMinute),
	}
}

// wait blocks until a token is taken, ctx ends, or the limiter is closed.
func (rl *rateLimiter) wait(ctx context.Context) error {
	for {
		delay := rl.reserve()
		if delay == 0 {
			return nil
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return fmt.Errorf("rate limiter canceled: %w", ctx.Err())
		case <-rl.closed:
			timer.Stop()
			return errLimiterClosed
		case <-timer.C:
		}
	}
}

// reserve takes a token and returns zero, or returns how long until the
// next token accrues.
func (rl *rateLimiter) reserve() time.Duration {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.refill()
	if rl.tokens >= 1 {
		rl.tokens--
		return 0
	}
	return max(time.Millisecond, time.Duration((1-rl.tokens)*float64(rl.interval)))
}

// refill must be called with mu held.
func (rl *rateLimiter) refill() {
	now := rl.now()
	elapsed := now.Sub(rl.last)
	rl.last = now
	if elapsed <= 0 {
		return
	}
	rl.tokens = min(rl.capacity, rl.tokens+float64(elapsed)/float64(rl.interval))
}

// Close releases any callers blocked in wait.
func (rl *rateLimiter) Close() {
	rl.once.Do(func() { close(rl.closed) })
}
