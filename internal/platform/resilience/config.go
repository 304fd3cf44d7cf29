package resilience

import "time"

// CircuitBreakerConfig is loaded from SNAPSHOT_CIRCUIT_* settings.
type CircuitBreakerConfig struct {
	Enabled          bool
	FailureThreshold int
	OpenTimeout      time.Duration
	HalfOpenMaxReq   int
}

const (
	defaultFailureThreshold = 5
	defaultOpenTimeout      = 15 * time.Second
	defaultHalfOpenMaxReq   = 2
)

func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: defaultFailureThreshold,
		OpenTimeout:      defaultOpenTimeout,
		HalfOpenMaxReq:   defaultHalfOpenMaxReq,
	}
}

// NormalizeCircuitBreakerConfig replaces non-positive limits with defaults.
func NormalizeCircuitBreakerConfig(cfg CircuitBreakerConfig) CircuitBreakerConfig {
	cfg.FailureThreshold = positiveOr(cfg.FailureThreshold, defaultFailureThreshold)
	cfg.HalfOpenMaxReq = positiveOr(cfg.HalfOpenMaxReq, defaultHalfOpenMaxReq)
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = defaultOpenTimeout
	}
	return cfg
}

// NewCircuitBreakerFromConfig returns nil when disabled.
func NewCircuitBreakerFromConfig(cfg CircuitBreakerConfig) *CircuitBreaker {
	if !cfg.Enabled {
		return nil
	}
	return NewCircuitBreaker(cfg.FailureThreshold, cfg.OpenTimeout, cfg.HalfOpenMaxReq)
}

func positiveOr(v, fallback int) int {
	if v < 1 {
		return fallback
	}
	return v
}
