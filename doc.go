// SPDX-License-Identifier: EPL-2.0
// Package wavpeaks builds compact waveform thumbnails from PCM WAV files.
//
// A waveform is a sequence of int8 values alternating negative and positive
// peak magnitude, one pair per time slice, scaled to [-127, 127]. The slice
// length adapts to the track: three slices per second below five minutes,
// two below ten minutes, one beyond that.
//
// # Quick Start
//
//	wf, err := wavpeaks.FromFile("voice.wav")
//	if err != nil {
//	    panic(err)
//	}
//	fmt.Println(wf) // [-31 31 -127 127 ...]
//
// # Batches
//
// ProcessAll decodes many files concurrently and keeps the input order:
//
//	for _, r := range wavpeaks.ProcessAll(paths) {
//	    if r.Err != nil {
//	        log.Println(r.Err)
//	        continue
//	    }
//	    fmt.Println(r.Filename, len(r.Waveform))
//	}
//
// A file that fails to decode only fails its own result.
//
// # Packages
//
//   - audio: PCM types, the Decoder interface and the decoder registry
//   - formats/wav: linear-PCM WAV decoding (github.com/go-audio/wav)
//   - waveform: peak extraction
//   - batch: concurrent processing and path validation
//   - render: JSON output
//
// The wavpeaks command wires these together; see cmd/wavpeaks.
package wavpeaks
