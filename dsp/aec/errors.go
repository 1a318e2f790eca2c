package aec

import "errors"

// Errors returned by the canceller.
var (
	// ErrInvalidConfig indicates an invalid block length, step size, option
	// value, or transform.
	ErrInvalidConfig = errors.New("aec: invalid configuration")

	// ErrLengthMismatch indicates a frame whose length is not FrameLength().
	// The canceller state is left unchanged.
	ErrLengthMismatch = errors.New("aec: frame length mismatch")

	// ErrNumericInstability indicates non-finite filter weights or power
	// estimates. It is only reported by Check; Process never returns it.
	ErrNumericInstability = errors.New("aec: numeric instability")
)
