// SPDX-License-Identifier: EPL-2.0

// Package wav decodes linear-PCM WAV files into audio.PCM values.
//
// Header parsing and sample extraction are done by github.com/go-audio/wav;
// this package checks the stream is integer PCM at a supported depth and
// converts the result into signed integer samples. A chunk walk with
// github.com/go-audio/riff recovers the extensible subformat and the exact
// data chunk size, which go-audio/wav does not expose.
//
// # Supported Formats
//
//   - WAVE_FORMAT_PCM (format tag 1)
//   - WAVE_FORMAT_EXTENSIBLE (0xFFFE) with the KSDATAFORMAT_SUBTYPE_PCM subformat
//   - 8, 16, 24 and 32 bits per sample
//   - Any channel count and sample rate
//
// Float and compressed files, plain or extensible, are rejected with
// ErrNotPCM. Bits per sample is the container size from the fmt chunk.
//
// # Decoding WAV Files
//
//	file, _ := os.Open("audio.wav")
//	pcm, err := wav.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Println(pcm.Spec.SampleRate, len(pcm.Samples))
//
// Samples are returned interleaved in file order. 8-bit samples, stored
// unsigned on disk, are shifted to the signed range [-128, 127]. A trailing
// partial sample is dropped.
//
// # Writing WAV Files
//
// WritePCM produces a canonical 44-byte-header file, mostly useful for
// generating fixtures:
//
//	spec := audio.Spec{SampleRate: 8000, BitsPerSample: 16, Channels: 1}
//	err := wav.WritePCM(file, spec, []int{100, -100, 200, -200})
//
// # Error Handling
//
//   - ErrNotWavFile: missing RIFF/WAVE preamble or unparsable header
//   - ErrUnsupportedWavLayout: no fmt chunk, or zero channels
//   - ErrNotPCM: the fmt chunk declares a non-PCM encoding
//   - ErrUnsupportedBitDepth: depth other than 8, 16, 24 or 32
//   - ErrMissingPCMData: no data chunk
//   - ErrTruncatedData: the data chunk declares more bytes than the file holds
//
// Errors are wrapped; use errors.Is to test for them.
package wav
