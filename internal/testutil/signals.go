package testutil

import (
	"math"
	"math/rand"
)

// NoiseSource produces consecutive frames of uniform white noise in
// [-amplitude, amplitude] from a fixed seed.
type NoiseSource struct {
	rng       *rand.Rand
	amplitude float64
}

// NewNoiseSource creates a reproducible noise generator.
func NewNoiseSource(seed int64, amplitude float64) *NoiseSource {
	return &NoiseSource{rng: rand.New(rand.NewSource(seed)), amplitude: amplitude}
}

// Frame returns the next n noise samples.
func (s *NoiseSource) Frame(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = (s.rng.Float64()*2 - 1) * s.amplitude
	}
	return out
}

// EchoPath is a streaming FIR filter that carries its delay line across
// frames, so a far-end stream fed frame by frame yields the same echo as a
// single linear convolution over the whole stream.
type EchoPath struct {
	taps  []float64
	delay []float64 // most recent sample first
}

// NewEchoPath creates an echo path with the given impulse response.
func NewEchoPath(taps ...float64) *EchoPath {
	return &EchoPath{
		taps:  append([]float64(nil), taps...),
		delay: make([]float64, len(taps)),
	}
}

// Apply returns the echo of frame.
func (p *EchoPath) Apply(frame []float64) []float64 {
	out := make([]float64, len(frame))
	if len(p.taps) == 0 {
		return out
	}
	for n, x := range frame {
		copy(p.delay[1:], p.delay[:len(p.delay)-1])
		p.delay[0] = x

		var y float64
		for k, h := range p.taps {
			y += h * p.delay[k]
		}
		out[n] = y
	}
	return out
}

// DelayedTaps returns an impulse response of length n with the given
// tap gains placed at the given delays. Pairs are (delay, gain).
func DelayedTaps(n int, pairs ...float64) []float64 {
	taps := make([]float64, n)
	for i := 0; i+1 < len(pairs); i += 2 {
		d := int(pairs[i])
		if d >= 0 && d < n {
			taps[d] = pairs[i+1]
		}
	}
	return taps
}

// Mix returns a + b sample by sample. The slices must have equal length.
func Mix(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}
	return out
}

// RMS returns the root-mean-square of all samples in frames.
func RMS(frames ...[]float64) float64 {
	var sum float64
	var n int
	for _, f := range frames {
		for _, v := range f {
			sum += v * v
		}
		n += len(f)
	}
	if n == 0 {
		return 0
	}
	return math.Sqrt(sum / float64(n))
}
