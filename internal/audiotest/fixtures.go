// SPDX-License-Identifier: EPL-2.0

// Package audiotest generates PCM signals and WAV fixtures for tests.
package audiotest

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/wavpeaks/audio"
	"github.com/ik5/wavpeaks/formats/wav"
)

// Mono16 is 44.1kHz 16-bit mono.
var Mono16 = audio.Spec{SampleRate: 44100, BitsPerSample: 16, Channels: 1}

// Generate returns n samples where sample i is waveform(i).
func Generate(n int, waveform func(i int) int) []int {
	samples := make([]int, n)
	for i := range samples {
		samples[i] = waveform(i)
	}

	return samples
}

// Silence returns n zero samples.
func Silence(n int) []int {
	return make([]int, n)
}

// Constant returns n samples of value.
func Constant(n, value int) []int {
	return Generate(n, func(int) int { return value })
}

// Square returns n samples of a square wave that spends period/2 samples at
// -amplitude, then period/2 at +amplitude.
func Square(n, period, amplitude int) []int {
	return Generate(n, func(i int) int {
		if i%period < period/2 {
			return -amplitude
		}
		return amplitude
	})
}

// Ramp returns n samples rising linearly from 0 to peak (inclusive).
func Ramp(n, peak int) []int {
	if n == 1 {
		return []int{peak}
	}

	return Generate(n, func(i int) int { return i * peak / (n - 1) })
}

// WAVBytes encodes samples as a PCM WAV file in memory.
func WAVBytes(tb testing.TB, spec audio.Spec, samples []int) []byte {
	tb.Helper()

	buf := new(bytes.Buffer)
	if err := wav.WritePCM(buf, spec, samples); err != nil {
		tb.Fatalf("audiotest: encoding WAV: %v", err)
	}

	return buf.Bytes()
}

// WriteWAV writes samples as a PCM WAV file named name inside dir and
// returns its path.
func WriteWAV(tb testing.TB, dir, name string, spec audio.Spec, samples []int) string {
	tb.Helper()

	return WriteFile(tb, dir, name, WAVBytes(tb, spec, samples))
}

// WriteFile writes raw data to dir/name and returns its path.
func WriteFile(tb testing.TB, dir, name string, data []byte) string {
	tb.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		tb.Fatalf("audiotest: writing %s: %v", path, err)
	}

	return path
}
