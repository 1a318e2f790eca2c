package aec

import (
	"fmt"
	"math"
)

// Meter tracks echo return loss enhancement (ERLE): the ratio of mic energy
// to canceller output energy, in dB. Frame energies are smoothed with a
// one-pole average so the reading follows convergence without jitter.
//
// Meter is separate from Canceller so that processing stays a pure state
// transition; feed it the mic frame and the output of the same call.
type Meter struct {
	smoothing float64
	micPower  float64
	outPower  float64
	frames    int
}

// NewMeter creates an ERLE meter. smoothing is the per-frame forgetting
// factor in [0, 1); 0 reports the last frame only.
func NewMeter(smoothing float64) (*Meter, error) {
	if !(smoothing >= 0 && smoothing < 1) {
		return nil, fmt.Errorf("%w: meter smoothing must be in [0, 1), got %v", ErrInvalidConfig, smoothing)
	}
	return &Meter{smoothing: smoothing}, nil
}

// Update adds one frame pair. mic and out must have equal length.
func (m *Meter) Update(mic, out []float64) error {
	if len(mic) != len(out) {
		return fmt.Errorf("%w: mic has %d samples, output has %d", ErrLengthMismatch, len(mic), len(out))
	}
	if len(mic) == 0 {
		return nil
	}

	micPower := meanSquare(mic)
	outPower := meanSquare(out)

	if m.frames == 0 {
		m.micPower = micPower
		m.outPower = outPower
	} else {
		a := m.smoothing
		m.micPower = a*m.micPower + (1-a)*micPower
		m.outPower = a*m.outPower + (1-a)*outPower
	}
	m.frames++
	return nil
}

// ERLE returns the smoothed enhancement in dB. It is 0 before the first
// frame or when both signals are silent, and +Inf when the output is silent
// but the mic is not.
func (m *Meter) ERLE() float64 {
	switch {
	case m.micPower == 0 && m.outPower == 0:
		return 0
	case m.outPower == 0:
		return math.Inf(1)
	case m.micPower == 0:
		return math.Inf(-1)
	}
	return 10 * math.Log10(m.micPower/m.outPower)
}

// Frames returns the number of frames seen since creation or Reset.
func (m *Meter) Frames() int { return m.frames }

// Reset clears the accumulated energies.
func (m *Meter) Reset() {
	m.micPower = 0
	m.outPower = 0
	m.frames = 0
}

func meanSquare(x []float64) float64 {
	var sum float64
	for _, v := range x {
		sum += v * v
	}
	return sum / float64(len(x))
}
