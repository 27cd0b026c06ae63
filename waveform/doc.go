// SPDX-License-Identifier: EPL-2.0

// Package waveform reduces a decoded PCM stream to a peak waveform: one
// (negative, positive) int8 pair per fixed-duration chunk.
//
// # Level of Detail
//
// The chunk duration depends on the track length:
//
//	duration < 300s         Dense  (3 chunks per second)
//	300s <= duration < 600s Medium (2 chunks per second)
//	duration >= 600s        Coarse (1 chunk per second)
//
// The chunk size in samples is SampleRate / level, with integer division.
// Samples of every channel are treated as one flat stream, so a stereo file
// gets chunks that span half the wall-clock time of a mono one.
//
// # Scaling
//
// Each chunk's peak magnitude is scaled against 2^(bits-1) to the range
// [0, 127] in float32, floored and narrowed to int8 without clamping. For
// well-formed input the result stays in range.
//
// # Usage
//
//	pcm, _ := wav.Decoder{}.Decode(file)
//	wf, err := waveform.Extract(pcm.Samples, pcm.Spec)
//	// wf = [-12 12 -127 127 ...]
package waveform
