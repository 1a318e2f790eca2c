package aec

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-aec/dsp/transform"
)

// Canceller is a frequency-domain NLMS acoustic echo canceller for one echo
// path. Create it with New.
type Canceller struct {
	blockLen int // N, transform size
	frameLen int // L = N/2, samples per call
	stepSize float64
	cfg      config

	fft   transform.Transform
	state filterState

	// Scratch, allocated once in New.
	spectrum []complex128 // X, far-end history spectrum
	echo     []complex128 // X*W, then its inverse transform
	errSpec  []complex128 // E, spectrum of the zero-padded error
	grad     []complex128 // weight update
	re, im   []float64    // split X for the power computation
	xPower   []float64    // |X[k]|^2
}

// New creates a canceller with transform size blockLength and adaptation
// step size stepSize. blockLength must be a power of two >= 2 and stepSize
// must lie in (0, 1]. The frame length is blockLength/2.
func New(blockLength int, stepSize float64, opts ...Option) (*Canceller, error) {
	if !transform.IsPowerOf2(blockLength) {
		return nil, fmt.Errorf("%w: block length must be a power of 2 >= 2, got %d", ErrInvalidConfig, blockLength)
	}
	if !(stepSize > 0 && stepSize <= 1) {
		return nil, fmt.Errorf("%w: step size must be in (0, 1], got %v", ErrInvalidConfig, stepSize)
	}

	cfg := applyOptions(opts)
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	fft, err := cfg.factory(blockLength)
	if err != nil {
		return nil, fmt.Errorf("%w: transform: %w", ErrInvalidConfig, err)
	}
	if fft == nil || fft.Len() != blockLength {
		return nil, fmt.Errorf("%w: transform does not have %d points", ErrInvalidConfig, blockLength)
	}

	return &Canceller{
		blockLen: blockLength,
		frameLen: blockLength / 2,
		stepSize: stepSize,
		cfg:      cfg,
		fft:      fft,
		state:    newFilterState(blockLength),
		spectrum: make([]complex128, blockLength),
		echo:     make([]complex128, blockLength),
		errSpec:  make([]complex128, blockLength),
		grad:     make([]complex128, blockLength),
		re:       make([]float64, blockLength),
		im:       make([]float64, blockLength),
		xPower:   make([]float64, blockLength),
	}, nil
}

// Process cancels the echo of farEnd in mic and returns the cleaned frame.
// Both inputs must have FrameLength() samples; otherwise ErrLengthMismatch
// is returned and the filter state is not touched.
func (c *Canceller) Process(farEnd, mic []float64) ([]float64, error) {
	if err := c.checkInputs(farEnd, mic); err != nil {
		return nil, err
	}

	out := make([]float64, c.frameLen)
	if err := c.process(out, farEnd, mic); err != nil {
		return nil, err
	}
	return out, nil
}

// ProcessTo is Process writing into dst, which must have FrameLength()
// samples. dst may alias farEnd or mic. It does not allocate with the
// default transform.
func (c *Canceller) ProcessTo(dst, farEnd, mic []float64) error {
	if err := c.checkInputs(farEnd, mic); err != nil {
		return err
	}
	if len(dst) != c.frameLen {
		return fmt.Errorf("%w: expected %d output samples, got %d", ErrLengthMismatch, c.frameLen, len(dst))
	}
	return c.process(dst, farEnd, mic)
}

func (c *Canceller) checkInputs(farEnd, mic []float64) error {
	if len(farEnd) != c.frameLen {
		return fmt.Errorf("%w: expected %d far-end samples, got %d", ErrLengthMismatch, c.frameLen, len(farEnd))
	}
	if len(mic) != c.frameLen {
		return fmt.Errorf("%w: expected %d mic samples, got %d", ErrLengthMismatch, c.frameLen, len(mic))
	}
	return nil
}

func (c *Canceller) process(dst, farEnd, mic []float64) error {
	c.state.pushFrame(farEnd)

	if err := c.estimateEcho(); err != nil {
		return err
	}

	// Valid overlap-save output is the second half of the inverse transform.
	echo := c.echo[c.frameLen:]
	for i := range dst {
		dst[i] = mic[i] - real(echo[i])
	}

	return c.adapt(dst)
}

// Reset clears the history, weights and power estimate, returning the
// canceller to its freshly constructed state. The step size is kept.
func (c *Canceller) Reset() {
	c.state.reset()
}

// SetStepSize changes the adaptation step size. Unlike New it accepts 0,
// which freezes the current echo path estimate.
func (c *Canceller) SetStepSize(mu float64) error {
	if !(mu >= 0 && mu <= 1) {
		return fmt.Errorf("%w: step size must be in [0, 1], got %v", ErrInvalidConfig, mu)
	}
	c.stepSize = mu
	return nil
}

// BlockLength returns the transform size N.
func (c *Canceller) BlockLength() int { return c.blockLen }

// FrameLength returns the number of samples per frame, N/2.
func (c *Canceller) FrameLength() int { return c.frameLen }

// StepSize returns the current adaptation step size.
func (c *Canceller) StepSize() float64 { return c.stepSize }

// Regularization returns the power normalization epsilon.
func (c *Canceller) Regularization() float64 { return c.cfg.epsilon }

// PowerSmoothing returns the power estimate forgetting factor.
func (c *Canceller) PowerSmoothing() float64 { return c.cfg.smoothing }

// Constrained reports whether the gradient constraint is applied.
func (c *Canceller) Constrained() bool { return c.cfg.constrained }

// ImpulseResponse writes the current time-domain echo path estimate, the
// first FrameLength() taps of the inverse transform of the weights, into dst
// and returns it. dst is reused when it has enough capacity.
func (c *Canceller) ImpulseResponse(dst []float64) ([]float64, error) {
	copy(c.grad, c.state.weights)
	if err := c.fft.Inverse(c.grad, c.grad); err != nil {
		return nil, fmt.Errorf("aec: inverse transform failed: %w", err)
	}

	if cap(dst) >= c.frameLen {
		dst = dst[:c.frameLen]
	} else {
		dst = make([]float64, c.frameLen)
	}
	for i := range dst {
		dst[i] = real(c.grad[i])
	}
	return dst, nil
}

// Check returns ErrNumericInstability if any weight or power value is NaN or
// infinite. A diverged canceller keeps running; recovering is up to the
// caller, usually Reset and a smaller step size.
func (c *Canceller) Check() error {
	for k, w := range c.state.weights {
		if !isFinite(real(w)) || !isFinite(imag(w)) {
			return fmt.Errorf("%w: weight %d is %v", ErrNumericInstability, k, w)
		}
	}
	for k, p := range c.state.power {
		if !isFinite(p) {
			return fmt.Errorf("%w: power %d is %v", ErrNumericInstability, k, p)
		}
	}
	return nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
