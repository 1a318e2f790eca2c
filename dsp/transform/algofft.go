package transform

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// AlgoFFT adapts an algo-fft complex128 plan.
type AlgoFFT struct {
	plan *algofft.Plan[complex128]
	n    int
}

// NewAlgoFFT creates an algo-fft backed transform of n points.
func NewAlgoFFT(n int) (Transform, error) {
	if err := validateSize(n); err != nil {
		return nil, err
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create FFT plan: %w", ErrInvalidSize, err)
	}

	return &AlgoFFT{plan: plan, n: n}, nil
}

// Len returns the transform size.
func (t *AlgoFFT) Len() int { return t.n }

// Forward computes the unscaled forward FFT of src into dst.
func (t *AlgoFFT) Forward(dst, src []complex128) error {
	if err := checkLengths(t.n, dst, src); err != nil {
		return err
	}
	if err := t.plan.Forward(dst, src); err != nil {
		return fmt.Errorf("transform: forward FFT failed: %w", err)
	}
	return nil
}

// Inverse computes the 1/N scaled inverse FFT of src into dst.
func (t *AlgoFFT) Inverse(dst, src []complex128) error {
	if err := checkLengths(t.n, dst, src); err != nil {
		return err
	}
	// algo-fft normalizes the inverse plan itself.
	if err := t.plan.Inverse(dst, src); err != nil {
		return fmt.Errorf("transform: inverse FFT failed: %w", err)
	}
	return nil
}
