// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/wavpeaks/audio"
)

type silenceDecoder struct{}

func (silenceDecoder) Decode(io.Reader) (*audio.PCM, error) {
	return &audio.PCM{
		Spec:    audio.Spec{SampleRate: 8000, BitsPerSample: 16, Channels: 1},
		Samples: make([]int, 16000),
	}, nil
}

// Example_registry demonstrates selecting a decoder by file extension.
func Example_registry() {
	registry := audio.NewRegistry()
	registry.Register("wav", silenceDecoder{})

	dec, err := registry.Lookup("wav")
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	pcm, _ := dec.Decode(nil)
	fmt.Printf("Sample rate: %d Hz\n", pcm.Spec.SampleRate)
	fmt.Printf("Duration: %.1fs\n", pcm.Duration())

	_, err = registry.Lookup("mp3")
	fmt.Println(errors.Is(err, audio.ErrUnsupportedFormat))
	// Output:
	// Sample rate: 8000 Hz
	// Duration: 2.0s
	// true
}
