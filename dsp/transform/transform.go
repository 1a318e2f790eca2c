// Package transform defines the fixed-size frequency transform consumed by the
// echo canceller, together with adapters for the FFT libraries it can run on.
//
// Every provider follows the same scaling convention:
//
//   - Forward is unscaled: X[k] = sum x[n] * exp(-2*pi*i*k*n/N)
//   - Inverse is scaled by 1/N, so Inverse(Forward(x)) == x
//
// Code built on a Transform may rely on this convention; mixing providers with
// different conventions would miscalibrate an estimate against its update.
//
// # Providers
//
//   - [NewAlgoFFT]: algo-fft plans. In-place safe, allocation-free. Default.
//   - [NewGonum]: gonum dsp/fourier complex FFT. In-place safe, allocation-free.
//   - [NewGoDSP]: go-dsp/fft. Allocates on every call.
package transform

import (
	"errors"
	"fmt"
	"math/bits"
)

// Errors returned by transform providers.
var (
	ErrInvalidSize    = errors.New("transform: invalid size")
	ErrLengthMismatch = errors.New("transform: buffer length mismatch")
)

// Transform is an N-point complex transform with a fixed size.
//
// dst and src must both have length Len(). Implementations must be
// deterministic and must accept dst and src being the same slice.
type Transform interface {
	Len() int
	Forward(dst, src []complex128) error
	Inverse(dst, src []complex128) error
}

// Factory builds a Transform for n points.
type Factory func(n int) (Transform, error)

// IsPowerOf2 reports whether n is a power of two of at least 2.
func IsPowerOf2(n int) bool {
	return n >= 2 && bits.OnesCount(uint(n)) == 1
}

func validateSize(n int) error {
	if !IsPowerOf2(n) {
		return fmt.Errorf("%w: size must be a power of 2 >= 2, got %d", ErrInvalidSize, n)
	}
	return nil
}

func checkLengths(n int, dst, src []complex128) error {
	if len(dst) != n || len(src) != n {
		return fmt.Errorf("%w: expected %d, got dst=%d src=%d", ErrLengthMismatch, n, len(dst), len(src))
	}
	return nil
}
