// Package aec provides a frequency-domain adaptive acoustic echo canceller.
//
// A [Canceller] models the echo path between a loudspeaker (far-end) signal
// and a microphone signal with a single block frequency-domain normalized LMS
// filter (FDNLMS). Processing is frame based: for a block length N the frame
// length is L = N/2, and each call consumes one far-end frame and one mic
// frame and returns one echo-cancelled frame.
//
// # Algorithm
//
// Per frame:
//
//  1. The far-end frame is appended to an N-sample history holding the
//     previous and the current frame (overlap-save window).
//  2. X = FFT(history), Y = X * W, y = IFFT(Y). The last L samples of y are
//     the echo estimate; the first L are circularly aliased and discarded.
//  3. out = mic - echo. This is both the returned frame and the error signal.
//  4. E = FFT([0...0, out]), P = lambda*P + (1-lambda)*|X|^2, and
//     W += mu * conj(X) * E / (P + eps).
//
// By default the gradient is constrained before it is added to W: it is taken
// back to the time domain, taps L..N-1 are zeroed, and it is transformed again.
// This keeps the filter a causal L-tap impulse response. The unconstrained
// update is available with [WithGradientConstraint].
//
// # Usage
//
//	c, err := aec.New(512, 0.5)
//	if err != nil {
//		return err
//	}
//	out := make([]float64, c.FrameLength())
//	for {
//		// far, mic: c.FrameLength() samples each
//		if err := c.ProcessTo(out, far, mic); err != nil {
//			return err
//		}
//	}
//
// # Transforms
//
// The FFT is injected through [WithTransform] using a [transform.Factory];
// the default is the algo-fft provider. All providers share the
// unscaled-forward, 1/N-inverse convention the update rule relies on.
//
// # Real-time use
//
// All buffers are allocated by [New]. [Canceller.ProcessTo] does not allocate
// with the default transform. A Canceller is not safe for concurrent use; one
// instance models one echo path and is owned by one goroutine.
//
// # Stability
//
// The canceller does not correct divergence. [Canceller.Check] reports
// non-finite filter state and [Meter] tracks echo return loss enhancement,
// so callers can reset the filter or lower the step size.
package aec
