package wavpeaks

import (
	"fmt"
	"io"

	"github.com/ik5/wavpeaks/audio"
	"github.com/ik5/wavpeaks/batch"
	"github.com/ik5/wavpeaks/formats/wav"
	"github.com/ik5/wavpeaks/waveform"
)

// NewRegistry returns a registry with every decoder shipped by this module.
func NewRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register(batch.WavExt, wav.Decoder{})

	return reg
}

// FromReader decodes a WAV stream and extracts its peak waveform.
//
// Example:
//
//	file, _ := os.Open("voice.wav")
//	wf, err := wavpeaks.FromReader(file)
//	if err != nil {
//	    panic(err)
//	}
//	// wf is [-neg, pos, -neg, pos, ...], 8-bit scaled
func FromReader(r io.Reader) (waveform.Waveform, error) {
	pcm, err := wav.Decoder{}.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return waveform.Extract(pcm.Samples, pcm.Spec)
}

// FromFile extracts the peak waveform of the WAV file at path.
func FromFile(path string) (waveform.Waveform, error) {
	return batch.NewProcessor(NewRegistry(), 1).ProcessFile(path)
}

// ProcessAll runs FromFile for every path on a pool of
// runtime.GOMAXPROCS(0) workers. Results are in the order of paths; a
// failed file does not affect the others.
func ProcessAll(paths []string) []batch.Result {
	return batch.NewProcessor(NewRegistry(), 0).ProcessAll(paths)
}
