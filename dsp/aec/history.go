package aec

// pushFrame drops the oldest frame from the history and appends frame as the
// newest. len(frame) must be half the history length.
func (s *filterState) pushFrame(frame []float64) {
	frameLen := len(s.history) / 2
	copy(s.history, s.history[frameLen:])
	copy(s.history[frameLen:], frame)
}
