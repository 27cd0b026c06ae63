package waveform

import (
	"fmt"
	"math"

	"github.com/ik5/wavpeaks/audio"
	"github.com/ik5/wavpeaks/utils"
)

// Waveform alternates negative and positive peaks, one pair per chunk.
type Waveform []int8

// Point is one chunk of a Waveform.
type Point struct {
	Neg int8
	Pos int8
}

// Points splits w into its pairs.
func (w Waveform) Points() []Point {
	points := make([]Point, 0, len(w)/2)
	for i := 0; i+1 < len(w); i += 2 {
		points = append(points, Point{Neg: w[i], Pos: w[i+1]})
	}

	return points
}

// Plan holds the per-track parameters derived before chunking.
type Plan struct {
	Duration     float32
	Level        DetailLevel
	ChunkSize    int
	AmplitudeMax float32
}

// NewPlan derives the plan for numSamples samples described by spec.
func NewPlan(numSamples int, spec audio.Spec) (Plan, error) {
	duration := float32(numSamples) / float32(spec.SampleRate)
	level := DetailFor(duration)

	p := Plan{
		Duration:     duration,
		Level:        level,
		ChunkSize:    ChunkSize(spec.SampleRate, level),
		AmplitudeMax: AmplitudeMax(spec.BitsPerSample),
	}
	if p.ChunkSize < 1 {
		return p, fmt.Errorf("%w: %d Hz at %s detail", ErrChunkSizeZero, spec.SampleRate, level)
	}

	return p, nil
}

// Chunks returns how many chunks numSamples splits into.
func (p Plan) Chunks(numSamples int) int {
	return (numSamples + p.ChunkSize - 1) / p.ChunkSize
}

// AmplitudeMax is 2^(bits-1), the largest magnitude of a signed sample at
// that bit depth.
func AmplitudeMax(bitsPerSample int) float32 {
	return float32(math.Pow(2, float64(bitsPerSample-1)))
}

// Scale maps a peak magnitude onto [0, 127]. See utils.FloorToInt8 for
// out-of-range behavior.
func Scale(peak int, amplitudeMax float32) int8 {
	return utils.FloorToInt8(float32(peak) / amplitudeMax * 127)
}

// Peak returns the largest absolute sample value, or 0 for an empty chunk.
func Peak(chunk []int) int {
	peak := 0
	for _, s := range chunk {
		if a := utils.AbsInt(s); a > peak {
			peak = a
		}
	}

	return peak
}

// Extract computes the peak waveform of samples. The result is never nil;
// an empty input gives an empty Waveform.
func Extract(samples []int, spec audio.Spec) (Waveform, error) {
	plan, err := NewPlan(len(samples), spec)
	if err != nil {
		return nil, err
	}

	return plan.Apply(samples), nil
}

// Apply chunks samples according to p.
func (p Plan) Apply(samples []int) Waveform {
	wf := make(Waveform, 0, 2*p.Chunks(len(samples)))

	for start := 0; start < len(samples); start += p.ChunkSize {
		end := min(start+p.ChunkSize, len(samples))
		scaled := Scale(Peak(samples[start:end]), p.AmplitudeMax)
		wf = append(wf, -scaled, scaled)
	}

	return wf
}
