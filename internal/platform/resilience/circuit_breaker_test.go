package resilience

import (
	"errors"
	"testing"
	"time"
)

var (
	errUpstream = errors.New("upstream 503")
	errCaller   = errors.New("upstream 404")
)

func isUpstream(err error) bool { return errors.Is(err, errUpstream) }

func newTestBreaker(now *time.Time, trials int) *CircuitBreaker {
	b := NewCircuitBreaker(CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 2,
		OpenTimeout:      5 * time.Second,
		HalfOpenMaxReq:   trials,
	})
	b.now = func() time.Time { return *now }
	return b
}

func fail(b *CircuitBreaker, err error) error {
	return b.Execute(func() error { return err }, isUpstream)
}

func succeed(b *CircuitBreaker) error {
	return b.Execute(func() error { return nil }, isUpstream)
}

func TestCircuitBreaker_OpensTrialsAndCloses(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 15, 0, 0, 0, time.UTC)
	b := newTestBreaker(&now, 1)

	_ = fail(b, errUpstream)
	if got := b.State(); got != CircuitStateClosed {
		t.Fatalf("one failure should keep the circuit closed, got %s", got)
	}
	_ = fail(b, errUpstream)
	if got := b.State(); got != CircuitStateOpen {
		t.Fatalf("expected open after threshold, got %s", got)
	}

	ran := false
	err := b.Execute(func() error { ran = true; return nil }, isUpstream)
	if !errors.Is(err, ErrCircuitOpen) || ran {
		t.Fatalf("open circuit must fail fast, err=%v ran=%v", err, ran)
	}

	now = now.Add(5 * time.Second)
	if got := b.State(); got != CircuitStateHalfOpen {
		t.Fatalf("expected half open after timeout, got %s", got)
	}
	if err := succeed(b); err != nil {
		t.Fatalf("trial call should run: %v", err)
	}
	if got := b.State(); got != CircuitStateClosed {
		t.Fatalf("successful trial call should close the circuit, got %s", got)
	}
}

func TestCircuitBreaker_FailedTrialReopens(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 15, 0, 0, 0, time.UTC)
	b := newTestBreaker(&now, 1)
	_ = fail(b, errUpstream)
	_ = fail(b, errUpstream)

	now = now.Add(6 * time.Second)
	if err := fail(b, errUpstream); !errors.Is(err, errUpstream) {
		t.Fatalf("trial call should have run, got %v", err)
	}
	if got := b.State(); got != CircuitStateOpen {
		t.Fatalf("failed trial call should reopen, got %s", got)
	}
}

func TestCircuitBreaker_LimitsConcurrentTrials(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 15, 0, 0, 0, time.UTC)
	b := newTestBreaker(&now, 1)
	_ = fail(b, errUpstream)
	_ = fail(b, errUpstream)
	now = now.Add(6 * time.Second)

	err := b.Execute(func() error {
		if inner := succeed(b); !errors.Is(inner, ErrCircuitOpen) {
			t.Errorf("second trial call while one is in flight should be rejected, got %v", inner)
		}
		return nil
	}, isUpstream)
	if err != nil {
		t.Fatalf("first trial call: %v", err)
	}
	if got := b.State(); got != CircuitStateClosed {
		t.Fatalf("expected closed, got %s", got)
	}
}

func TestCircuitBreaker_IgnoresCallerErrors(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 15, 0, 0, 0, time.UTC)
	b := newTestBreaker(&now, 1)
	for i := 0; i < 5; i++ {
		if err := fail(b, errCaller); !errors.Is(err, errCaller) {
			t.Fatalf("caller error should pass through, got %v", err)
		}
	}
	if got := b.State(); got != CircuitStateClosed {
		t.Fatalf("caller errors must not trip the circuit, got %s", got)
	}

	_ = fail(b, errUpstream)
	_ = succeed(b)
	_ = fail(b, errUpstream)
	if got := b.State(); got != CircuitStateClosed {
		t.Fatalf("a success should reset the failure streak, got %s", got)
	}
}

func TestCircuitBreaker_DisabledPassesThrough(t *testing.T) {
	t.Parallel()

	b := NewCircuitBreaker(CircuitBreakerConfig{})
	for i := 0; i < 10; i++ {
		_ = fail(b, errUpstream)
	}
	if err := succeed(b); err != nil {
		t.Fatalf("disabled breaker should never reject: %v", err)
	}
}

func TestCircuitBreakerConfig_Normalize(t *testing.T) {
	t.Parallel()

	got := CircuitBreakerConfig{Enabled: true, FailureThreshold: -1}.Normalize()
	want := DefaultCircuitBreakerConfig()
	if got != want {
		t.Fatalf("unexpected normalized config: %+v", got)
	}
}
