package waveform

import "errors"

var (
	// ErrChunkSizeZero is returned when the sample rate is lower than the
	// selected detail level, so a chunk would hold no samples.
	ErrChunkSizeZero = errors.New("sample rate too low for detail level")
)
