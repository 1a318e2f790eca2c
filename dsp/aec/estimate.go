package aec

import "fmt"

// estimateEcho transforms the far-end history into c.spectrum and leaves the
// inverse transform of X*W in c.echo. Only c.echo[frameLen:] is a valid
// linear convolution; the first half wraps around.
func (c *Canceller) estimateEcho() error {
	for i, v := range c.state.history {
		c.spectrum[i] = complex(v, 0)
	}
	if err := c.fft.Forward(c.spectrum, c.spectrum); err != nil {
		return fmt.Errorf("aec: forward transform failed: %w", err)
	}

	for k, x := range c.spectrum {
		c.echo[k] = x * c.state.weights[k]
	}
	if err := c.fft.Inverse(c.echo, c.echo); err != nil {
		return fmt.Errorf("aec: inverse transform failed: %w", err)
	}
	return nil
}
