package aec

// filterState is everything a Canceller mutates from frame to frame.
type filterState struct {
	history []float64    // previous frame followed by the current frame
	weights []complex128 // echo path estimate per frequency bin
	power   []float64    // smoothed |X[k]|^2 per bin
}

func newFilterState(blockLen int) filterState {
	return filterState{
		history: make([]float64, blockLen),
		weights: make([]complex128, blockLen),
		power:   make([]float64, blockLen),
	}
}

func (s *filterState) reset() {
	clear(s.history)
	clear(s.weights)
	clear(s.power)
}
