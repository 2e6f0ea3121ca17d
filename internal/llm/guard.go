package llm

import (
	"context"
	"time"

	"golang.org/x/sync/semaphore"
)

// RequestObserver receives the outcome of each guarded provider call.
type RequestObserver interface {
	ObserveRequest(provider string, outcome string, duration time.Duration)
}

// Request outcomes reported to RequestObserver
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
	OutcomeTimeout = "timeout"
)

// GuardConfig configures a Guard.
type GuardConfig struct {
	Timeout       time.Duration // per-call deadline; 0 disables
	MaxConcurrent int64         // concurrent calls; 0 disables
	Observer      RequestObserver
}

// Guard wraps an Adapter with a per-call deadline, a concurrency cap, and
// request observation.
type Guard struct {
	inner    Adapter
	timeout  time.Duration
	sem      *semaphore.Weighted
	observer RequestObserver
}

// NewGuard wraps inner.
func NewGuard(inner Adapter, cfg GuardConfig) *Guard {
	g := &Guard{
		inner:    inner,
		timeout:  cfg.Timeout,
		observer: cfg.Observer,
	}
	if cfg.MaxConcurrent > 0 {
		g.sem = semaphore.NewWeighted(cfg.MaxConcurrent)
	}
	return g
}

// Name returns the wrapped provider's name.
func (g *Guard) Name() string {
	return g.inner.Name()
}

// Complete runs the wrapped Complete under the guard's limits.
func (g *Guard) Complete(ctx context.Context, prompt string, opts Options) (string, error) {
	release, err := g.acquire(ctx)
	if err != nil {
		return "", err
	}
	defer release()

	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	start := time.Now()
	text, err := g.inner.Complete(ctx, prompt, opts)
	g.observe(ctx, err, time.Since(start))
	return text, err
}

// StreamComplete runs the wrapped StreamComplete; the deadline and the
// concurrency slot are held until the stream is closed.
func (g *Guard) StreamComplete(ctx context.Context, prompt string, opts Options) (Stream, error) {
	release, err := g.acquire(ctx)
	if err != nil {
		return nil, err
	}

	ctx, cancel := g.withTimeout(ctx)
	start := time.Now()
	stream, err := g.inner.StreamComplete(ctx, prompt, opts)
	if err != nil {
		g.observe(ctx, err, time.Since(start))
		cancel()
		release()
		return nil, err
	}
	return &guardedStream{Stream: stream, guard: g, ctx: ctx, start: start, cancel: cancel, release: release}, nil
}

func (g *Guard) acquire(ctx context.Context) (func(), error) {
	if g.sem == nil {
		return func() {}, nil
	}
	if err := g.sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	return func() { g.sem.Release(1) }, nil
}

func (g *Guard) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if g.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, g.timeout)
}

func (g *Guard) observe(ctx context.Context, err error, d time.Duration) {
	if g.observer == nil {
		return
	}
	outcome := OutcomeSuccess
	switch {
	case err != nil && ctx.Err() == context.DeadlineExceeded:
		outcome = OutcomeTimeout
	case err != nil:
		outcome = OutcomeError
	}
	g.observer.ObserveRequest(g.inner.Name(), outcome, d)
}

type guardedStream struct {
	Stream
	guard   *Guard
	ctx     context.Context
	start   time.Time
	cancel  context.CancelFunc
	release func()
	closed  bool
}

func (s *guardedStream) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	err := s.Stream.Close()
	s.guard.observe(s.ctx, s.Stream.Err(), time.Since(s.start))
	s.cancel()
	s.release()
	return err
}
