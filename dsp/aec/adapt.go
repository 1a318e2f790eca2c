package aec

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// adapt runs one normalized LMS update from the frame error e.
// c.spectrum must hold X for the same frame.
func (c *Canceller) adapt(e []float64) error {
	// Error goes in the second half, aligned with the valid output samples.
	clear(c.errSpec[:c.frameLen])
	for i, v := range e {
		c.errSpec[c.frameLen+i] = complex(v, 0)
	}
	if err := c.fft.Forward(c.errSpec, c.errSpec); err != nil {
		return fmt.Errorf("aec: forward transform failed: %w", err)
	}

	c.updatePower()

	if c.stepSize == 0 {
		return nil
	}

	for k, x := range c.spectrum {
		norm := c.stepSize / (c.state.power[k] + c.cfg.epsilon)
		g := complex(real(x), -imag(x)) * c.errSpec[k]
		c.grad[k] = g * complex(norm, 0)
	}

	if c.cfg.constrained {
		if err := c.constrainGradient(); err != nil {
			return err
		}
	}

	for k, g := range c.grad {
		c.state.weights[k] += g
	}
	return nil
}

// updatePower folds |X[k]|^2 of the current frame into the smoothed power.
func (c *Canceller) updatePower() {
	for k, x := range c.spectrum {
		c.re[k] = real(x)
		c.im[k] = imag(x)
	}
	vecmath.Power(c.xPower, c.re, c.im)

	lambda := c.cfg.smoothing
	for k, p := range c.xPower {
		c.state.power[k] = flushDenormal(lambda*c.state.power[k] + (1-lambda)*p)
	}
}

// constrainGradient limits the update to a causal impulse response of
// frameLen taps.
func (c *Canceller) constrainGradient() error {
	if err := c.fft.Inverse(c.grad, c.grad); err != nil {
		return fmt.Errorf("aec: inverse transform failed: %w", err)
	}
	clear(c.grad[c.frameLen:])
	if err := c.fft.Forward(c.grad, c.grad); err != nil {
		return fmt.Errorf("aec: forward transform failed: %w", err)
	}
	return nil
}

// flushDenormal zeroes values that decay into the denormal range during
// long far-end silence.
func flushDenormal(x float64) float64 {
	const tiny = 1e-30
	if x < tiny {
		return 0
	}
	return x
}
