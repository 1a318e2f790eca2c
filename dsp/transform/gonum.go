package transform

import "gonum.org/v1/gonum/dsp/fourier"

// Gonum adapts gonum's complex FFT.
type Gonum struct {
	fft   *fourier.CmplxFFT
	n     int
	scale complex128 // 1/n, gonum's Sequence is unnormalized
}

// NewGonum creates a gonum dsp/fourier backed transform of n points.
func NewGonum(n int) (Transform, error) {
	if err := validateSize(n); err != nil {
		return nil, err
	}
	return &Gonum{
		fft:   fourier.NewCmplxFFT(n),
		n:     n,
		scale: complex(1/float64(n), 0),
	}, nil
}

// Len returns the transform size.
func (t *Gonum) Len() int { return t.n }

// Forward computes the unscaled forward FFT of src into dst.
func (t *Gonum) Forward(dst, src []complex128) error {
	if err := checkLengths(t.n, dst, src); err != nil {
		return err
	}
	t.fft.Coefficients(dst, src)
	return nil
}

// Inverse computes the 1/N scaled inverse FFT of src into dst.
func (t *Gonum) Inverse(dst, src []complex128) error {
	if err := checkLengths(t.n, dst, src); err != nil {
		return err
	}
	t.fft.Sequence(dst, src)
	for i := range dst {
		dst[i] *= t.scale
	}
	return nil
}
