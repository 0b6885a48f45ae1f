package resilience

import (
	"errors"
	"sync"
	"time"
)

var ErrCircuitOpen = errors.New("circuit breaker is open")

type CircuitState string

const (
	CircuitStateClosed   CircuitState = "closed"
	CircuitStateOpen     CircuitState = "open"
	CircuitStateHalfOpen CircuitState = "half_open"
)

// CircuitBreakerConfig tunes a breaker. The zero value is a disabled breaker
// that passes every call through.
type CircuitBreakerConfig struct {
	Enabled bool
	// FailureThreshold consecutive failures open the circuit.
	FailureThreshold int
	// OpenTimeout is how long the circuit stays open before admitting trial calls.
	OpenTimeout time.Duration
	// HalfOpenMaxReq successful trial calls close the circuit again.
	HalfOpenMaxReq int
}

func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 3,
		OpenTimeout:      20 * time.Second,
		HalfOpenMaxReq:   1,
	}
}

// Normalize fills non-positive limits from DefaultCircuitBreakerConfig.
func (cfg CircuitBreakerConfig) Normalize() CircuitBreakerConfig {
	def := DefaultCircuitBreakerConfig()
	if cfg.FailureThreshold <= 0 {
		cfg.FailureThreshold = def.FailureThreshold
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = def.OpenTimeout
	}
	if cfg.HalfOpenMaxReq <= 0 {
		cfg.HalfOpenMaxReq = def.HalfOpenMaxReq
	}
	return cfg
}

// CircuitBreaker guards a flaky dependency. While open every call fails fast
// with ErrCircuitOpen. Once OpenTimeout passes, up to HalfOpenMaxReq calls run
// concurrently as trials; any failed trial reopens the circuit.
type CircuitBreaker struct {
	cfg CircuitBreakerConfig
	now func() time.Time

	mu        sync.Mutex
	failures  int
	openUntil time.Time
	inFlight  int
	succeeded int
}

func NewCircuitBreaker(cfg CircuitBreakerConfig) *CircuitBreaker {
	return &CircuitBreaker{cfg: cfg.Normalize(), now: time.Now}
}

// Execute runs fn if the circuit admits it. Only errors for which isFailure
// reports true count against the circuit; a nil isFailure counts every error.
func (b *CircuitBreaker) Execute(fn func() error, isFailure func(error) bool) error {
	if !b.cfg.Enabled {
		return fn()
	}

	trial, err := b.admit()
	if err != nil {
		return err
	}
	err = fn()
	b.settle(trial, err != nil && (isFailure == nil || isFailure(err)))
	return err
}

func (b *CircuitBreaker) State() CircuitState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.stateLocked()
}

func (b *CircuitBreaker) stateLocked() CircuitState {
	switch {
	case b.openUntil.IsZero():
		return CircuitStateClosed
	case b.now().Before(b.openUntil):
		return CircuitStateOpen
	default:
		return CircuitStateHalfOpen
	}
}

func (b *CircuitBreaker) admit() (trial bool, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.stateLocked() {
	case CircuitStateOpen:
		return false, ErrCircuitOpen
	case CircuitStateHalfOpen:
		if b.inFlight+b.succeeded >= b.cfg.HalfOpenMaxReq {
			return false, ErrCircuitOpen
		}
		b.inFlight++
		return true, nil
	}
	return false, nil
}

func (b *CircuitBreaker) settle(trial, failed bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if trial {
		b.inFlight--
	}
	if failed {
		b.failures++
		if trial || b.failures >= b.cfg.FailureThreshold {
			b.trip()
		}
		return
	}

	b.failures = 0
	if !trial {
		return
	}
	b.succeeded++
	if b.succeeded >= b.cfg.HalfOpenMaxReq && b.inFlight == 0 {
		b.openUntil = time.Time{}
		b.succeeded = 0
	}
}

func (b *CircuitBreaker) trip() {
	b.openUntil = b.now().Add(b.cfg.OpenTimeout)
	b.failures = 0
	b.succeeded = 0
}
