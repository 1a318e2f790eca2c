package aec

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-aec/dsp/transform"
)

const (
	// DefaultRegularization is the epsilon added to the per-bin power
	// before normalizing the gradient.
	DefaultRegularization = 1e-10

	// DefaultPowerSmoothing is the per-frame forgetting factor of the
	// reference power estimate.
	DefaultPowerSmoothing = 0.9
)

// config holds settings that are fixed once a Canceller is built.
type config struct {
	epsilon     float64
	smoothing   float64
	constrained bool
	factory     transform.Factory
}

// Option configures a Canceller.
type Option func(*config)

func defaultConfig() config {
	return config{
		epsilon:     DefaultRegularization,
		smoothing:   DefaultPowerSmoothing,
		constrained: true,
		factory:     transform.NewAlgoFFT,
	}
}

// WithRegularization sets the epsilon that keeps the normalized step finite
// for bins with little or no reference energy. Must be > 0.
func WithRegularization(eps float64) Option {
	return func(cfg *config) {
		cfg.epsilon = eps
	}
}

// WithPowerSmoothing sets the forgetting factor lambda of the per-bin power
// estimate, 0 <= lambda < 1. Zero uses the instantaneous power of each frame;
// values near 1 give a smoother but slower estimate.
func WithPowerSmoothing(lambda float64) Option {
	return func(cfg *config) {
		cfg.smoothing = lambda
	}
}

// WithGradientConstraint selects the constrained (true, default) or
// unconstrained (false) weight update.
func WithGradientConstraint(enabled bool) Option {
	return func(cfg *config) {
		cfg.constrained = enabled
	}
}

// WithTransform sets the factory used to build the N-point transform.
func WithTransform(factory transform.Factory) Option {
	return func(cfg *config) {
		cfg.factory = factory
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

func (cfg config) validate() error {
	if !(cfg.epsilon > 0) || math.IsInf(cfg.epsilon, 1) {
		return fmt.Errorf("%w: regularization must be positive and finite, got %v", ErrInvalidConfig, cfg.epsilon)
	}
	if !(cfg.smoothing >= 0 && cfg.smoothing < 1) {
		return fmt.Errorf("%w: power smoothing must be in [0, 1), got %v", ErrInvalidConfig, cfg.smoothing)
	}
	if cfg.factory == nil {
		return fmt.Errorf("%w: nil transform factory", ErrInvalidConfig)
	}
	return nil
}
