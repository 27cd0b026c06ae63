// SPDX-License-Identifier: EPL-2.0

// Package audio provides the types shared between decoders and the
// waveform engine.
//
// # PCM Streams
//
// A Decoder turns an input reader into a fully decoded PCM value:
//
//	type Decoder interface {
//	    Decode(r io.Reader) (*PCM, error)
//	}
//
// PCM carries a Spec (sample rate, bit depth, channel count) and the
// samples as signed integers at their source bit depth. Samples from
// multi-channel files stay interleaved in one flat slice; nothing in this
// module separates or mixes channels.
//
// # Format Registry
//
// The registry maps file extensions to decoders:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, err := registry.Lookup("wav")
//
// Lookup returns a *FormatError wrapping ErrUnsupportedFormat when no
// decoder is registered for the extension. The registry is safe for
// concurrent use, so a batch can share one instance across workers.
package audio
