package llm

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	mu       sync.Mutex
	outcomes []string
}

func (r *recordingObserver) ObserveRequest(_ string, outcome string, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outcomes = append(r.outcomes, outcome)
}

func (r *recordingObserver) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.outcomes...)
}

func TestGuard_CompleteSuccess(t *testing.T) {
	obs := &recordingObserver{}
	g := NewGuard(NewMockAdapter(), GuardConfig{Timeout: time.Second, Observer: obs})

	text, err := g.Complete(context.Background(), "prompt", Options{})
	require.NoError(t, err)
	assert.Equal(t, MockAnalysisResponse, text)
	assert.Equal(t, "mock", g.Name())
	assert.Equal(t, []string{OutcomeSuccess}, obs.snapshot())
}

func TestGuard_Timeout(t *testing.T) {
	obs := &recordingObserver{}
	slow := &MockAdapter{
		CompleteFunc: func(ctx context.Context, _ string, _ Options) (string, error) {
			<-ctx.Done()
			return "", ctx.Err()
		},
	}
	g := NewGuard(slow, GuardConfig{Timeout: 10 * time.Millisecond, Observer: obs})

	_, err := g.Complete(context.Background(), "prompt", Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, []string{OutcomeTimeout}, obs.snapshot())
}

func TestGuard_ErrorOutcome(t *testing.T) {
	obs := &recordingObserver{}
	failing := &MockAdapter{
		CompleteFunc: func(context.Context, string, Options) (string, error) {
			return "", &APIError{Provider: ProviderOpenAI, Message: "boom"}
		},
	}
	g := NewGuard(failing, GuardConfig{Observer: obs})

	_, err := g.Complete(context.Background(), "prompt", Options{})
	require.Error(t, err)
	assert.Equal(t, []string{OutcomeError}, obs.snapshot())
}

func TestGuard_MaxConcurrent(t *testing.T) {
	var inFlight, peak int32
	adapter := &MockAdapter{
		CompleteFunc: func(context.Context, string, Options) (string, error) {
			n := atomic.AddInt32(&inFlight, 1)
			for {
				p := atomic.LoadInt32(&peak)
				if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			atomic.AddInt32(&inFlight, -1)
			return "ok", nil
		},
	}
	g := NewGuard(adapter, GuardConfig{MaxConcurrent: 2})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = g.Complete(context.Background(), "p", Options{})
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, atomic.LoadInt32(&peak), int32(2))
	assert.Equal(t, 10, adapter.CompleteCalls())
}

func TestGuard_AcquireHonorsCancellation(t *testing.T) {
	block := make(chan struct{})
	adapter := &MockAdapter{
		CompleteFunc: func(context.Context, string, Options) (string, error) {
			<-block
			return "ok", nil
		},
	}
	g := NewGuard(adapter, GuardConfig{MaxConcurrent: 1})

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = g.Complete(context.Background(), "first", Options{})
	}()
	require.Eventually(t, func() bool { return adapter.CompleteCalls() == 1 }, time.Second, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := g.Complete(ctx, "second", Options{})
	assert.ErrorIs(t, err, context.Canceled)

	close(block)
	<-done
}

func TestGuard_StreamHoldsSlotUntilClose(t *testing.T) {
	obs := &recordingObserver{}
	g := NewGuard(NewMockAdapter(), GuardConfig{MaxConcurrent: 1, Observer: obs})

	stream, err := g.StreamComplete(context.Background(), "p", Options{})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err = g.Complete(ctx, "p", Options{})
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	text, err := Collect(stream, nil)
	require.NoError(t, err)
	assert.Equal(t, MockAnalysisResponse, text)
	assert.Equal(t, []string{OutcomeSuccess}, obs.snapshot())

	_, err = g.Complete(context.Background(), "p", Options{})
	assert.NoError(t, err)
}

func TestGuard_StreamOpenError(t *testing.T) {
	adapter := &MockAdapter{
		StreamFunc: func(context.Context, string, Options) (Stream, error) {
			return nil, errors.New("dial failed")
		},
	}
	g := NewGuard(adapter, GuardConfig{MaxConcurrent: 1})

	_, err := g.StreamComplete(context.Background(), "p", Options{})
	require.Error(t, err)

	// slot released
	_, err = g.StreamComplete(context.Background(), "p", Options{})
	require.Error(t, err)
}
