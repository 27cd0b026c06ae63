package waveform

import "fmt"

// DetailLevel is the number of chunks per second of audio.
type DetailLevel int

const (
	Coarse DetailLevel = 1
	Medium DetailLevel = 2
	Dense  DetailLevel = 3
)

// Duration thresholds in seconds. Each is the first duration of the
// coarser tier.
const (
	MediumFrom float32 = 300
	CoarseFrom float32 = 600
)

func (d DetailLevel) String() string {
	switch d {
	case Coarse:
		return "coarse"
	case Medium:
		return "medium"
	case Dense:
		return "dense"
	default:
		return fmt.Sprintf("DetailLevel(%d)", int(d))
	}
}

// DetailFor picks the detail level for a track of duration seconds. NaN
// compares false against both thresholds and selects Coarse.
func DetailFor(duration float32) DetailLevel {
	switch {
	case duration < MediumFrom:
		return Dense
	case duration < CoarseFrom:
		return Medium
	default:
		return Coarse
	}
}

// ChunkSize is sampleRate / level using integer division.
func ChunkSize(sampleRate int, level DetailLevel) int {
	return sampleRate / int(level)
}
