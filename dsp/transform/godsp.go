package transform

import "github.com/mjibson/go-dsp/fft"

// GoDSP adapts go-dsp/fft. Each call allocates a result slice which is then
// copied into dst, so it is not suited to allocation-free processing.
type GoDSP struct {
	n int
}

// NewGoDSP creates a go-dsp/fft backed transform of n points.
func NewGoDSP(n int) (Transform, error) {
	if err := validateSize(n); err != nil {
		return nil, err
	}
	return &GoDSP{n: n}, nil
}

// Len returns the transform size.
func (t *GoDSP) Len() int { return t.n }

// Forward computes the unscaled forward FFT of src into dst.
func (t *GoDSP) Forward(dst, src []complex128) error {
	if err := checkLengths(t.n, dst, src); err != nil {
		return err
	}
	copy(dst, fft.FFT(src))
	return nil
}

// Inverse computes the 1/N scaled inverse FFT of src into dst.
// go-dsp's IFFT already applies the 1/N factor.
func (t *GoDSP) Inverse(dst, src []complex128) error {
	if err := checkLengths(t.n, dst, src); err != nil {
		return err
	}
	copy(dst, fft.IFFT(src))
	return nil
}
