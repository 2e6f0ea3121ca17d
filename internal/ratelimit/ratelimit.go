// Package ratelimit provides token-bucket admission control for outbound AI calls.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Observer receives admission outcomes (e.g. for metrics).
type Observer interface {
	ObserveAdmission(admitted bool)
}

// Status describes the bucket without consuming a token.
type Status struct {
	Remaining int
	Limit     int
	ResetTime time.Time
}

// Limiter is a token bucket with capacity MaxTokens refilling at RefillRate
// tokens per second. It is safe for concurrent use.
type Limiter struct {
	maxTokens    int
	refillRate   float64
	pollInterval time.Duration
	now          func() time.Time
	observer     Observer

	mu         sync.Mutex
	tokens     float64
	lastRefill time.Time
}

// NewLimiter creates a limiter that starts with a full bucket.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = DefaultConfig()
	}
	maxTokens := config.MaxTokens
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	refillRate := config.RefillRate
	if refillRate <= 0 {
		refillRate = DefaultRefillRate
	}
	poll := config.PollInterval
	if poll <= 0 {
		poll = DefaultPollInterval
	}
	now := config.Now
	if now == nil {
		now = time.Now
	}

	return &Limiter{
		maxTokens:    maxTokens,
		refillRate:   refillRate,
		pollInterval: poll,
		now:          now,
		tokens:       float64(maxTokens),
		lastRefill:   now(),
	}
}

// SetObserver attaches an admission observer.
func (l *Limiter) SetObserver(o Observer) {
	l.mu.Lock()
	l.observer = o
	l.mu.Unlock()
}

// refill must be called with mu held.
func (l *Limiter) refill(now time.Time) {
	elapsed := now.Sub(l.lastRefill)
	if elapsed > 0 {
		l.tokens = min(float64(l.maxTokens), l.tokens+elapsed.Seconds()*l.refillRate)
	}
	l.lastRefill = now
}

// CheckAdmission refills by elapsed time and consumes one token if available.
// No token is consumed on denial.
func (l *Limiter) CheckAdmission() bool {
	l.mu.Lock()
	l.refill(l.now())
	admitted := false
	if l.tokens >= 1.0 {
		l.tokens -= 1.0
		admitted = true
	}
	observer := l.observer
	l.mu.Unlock()

	if observer != nil {
		observer.ObserveAdmission(admitted)
	}
	return admitted
}

// AwaitAdmission polls CheckAdmission with a fixed backoff until admitted.
// It returns ctx.Err() if the context ends first.
func (l *Limiter) AwaitAdmission(ctx context.Context) error {
	for {
		if l.CheckAdmission() {
			return nil
		}
		timer := time.NewTimer(l.pollInterval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// Status returns remaining tokens and the time the bucket will be full.
func (l *Limiter) Status() Status {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.refill(now)

	resetTime := now
	if l.tokens < float64(l.maxTokens) {
		secondsUntilFull := (float64(l.maxTokens) - l.tokens) / l.refillRate
		resetTime = now.Add(time.Duration(secondsUntilFull * float64(time.Second)))
	}

	return Status{
		Remaining: int(l.tokens),
		Limit:     l.maxTokens,
		ResetTime: resetTime,
	}
}
