package resilience

import (
	"context"
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

type outcome int

const (
	outcomeSuccess outcome = iota
	outcomeFailure
	outcomeAbandoned
)

// CircuitBreaker sheds snapshot reads while the backing store keeps failing.
// After failureThreshold consecutive failures it rejects calls until
// retryAt, then admits up to probeLimit trial calls; all of them must
// succeed to close again and any failure reopens it.
type CircuitBreaker struct {
	mu  sync.Mutex
	now func() time.Time

	failureThreshold int
	cooldown         time.Duration
	probeLimit       int

	state    CircuitState
	failures int
	retryAt  time.Time
	probing  int
	passed   int
}

func NewCircuitBreaker(failureThreshold int, openTimeout time.Duration, halfOpenMaxReq int) *CircuitBreaker {
	cfg := NormalizeCircuitBreakerConfig(CircuitBreakerConfig{
		FailureThreshold: failureThreshold,
		OpenTimeout:      openTimeout,
		HalfOpenMaxReq:   halfOpenMaxReq,
	})
	return &CircuitBreaker{
		now:              time.Now,
		failureThreshold: cfg.FailureThreshold,
		cooldown:         cfg.OpenTimeout,
		probeLimit:       cfg.HalfOpenMaxReq,
		state:            CircuitStateClosed,
	}
}

// Allow reserves a slot for one call. Every nil return must be paired with
// RecordSuccess or RecordFailure.
func (b *CircuitBreaker) Allow() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.advance()
	switch b.state {
	case CircuitStateOpen:
		return ErrCircuitOpen
	case CircuitStateHalfOpen:
		if b.probing+b.passed >= b.probeLimit {
			return ErrCircuitOpen
		}
		b.probing++
	}
	return nil
}

func (b *CircuitBreaker) RecordSuccess() { b.settle(outcomeSuccess) }

func (b *CircuitBreaker) RecordFailure() { b.settle(outcomeFailure) }

func (b *CircuitBreaker) State() CircuitState {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.advance()
	return b.state
}

// Execute runs fn through the breaker. A nil breaker always admits. When
// the caller's own context is canceled the call counts as neither success
// nor failure.
func Execute[T any](ctx context.Context, b *CircuitBreaker, fn func(context.Context) (T, error)) (T, error) {
	if b == nil {
		return fn(ctx)
	}
	if err := b.Allow(); err != nil {
		var zero T
		return zero, err
	}

	out, err := fn(ctx)
	switch {
	case err == nil:
		b.settle(outcomeSuccess)
	case ctx.Err() != nil && errors.Is(err, ctx.Err()):
		b.settle(outcomeAbandoned)
	default:
		b.settle(outcomeFailure)
	}
	return out, err
}

// advance moves an open breaker whose cooldown has elapsed to half-open.
func (b *CircuitBreaker) advance() {
	if b.state == CircuitStateOpen && !b.now().Before(b.retryAt) {
		b.state = CircuitStateHalfOpen
		b.probing, b.passed = 0, 0
	}
}

func (b *CircuitBreaker) settle(o outcome) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == CircuitStateHalfOpen && b.probing > 0 {
		b.probing--
	}

	switch b.state {
	case CircuitStateClosed:
		if o == outcomeFailure {
			b.failures++
		} else if o == outcomeSuccess {
			b.failures = 0
		}
		if b.failures >= b.failureThreshold {
			b.trip()
		}
	case CircuitStateHalfOpen:
		switch o {
		case outcomeFailure:
			b.trip()
		case outcomeSuccess:
			b.passed++
			if b.passed >= b.probeLimit && b.probing == 0 {
				b.state = CircuitStateClosed
				b.failures, b.passed = 0, 0
				b.retryAt = time.Time{}
			}
		}
	case CircuitStateOpen:
		if o == outcomeFailure {
			b.retryAt = b.now().Add(b.cooldown)
		}
	}
}

func (b *CircuitBreaker) trip() {
	b.state = CircuitStateOpen
	b.retryAt = b.now().Add(b.cooldown)
	b.probing, b.passed = 0, 0
}
