// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"sync"
)

// Spec describes a decoded PCM stream.
type Spec struct {
	// SampleRate of the PCM stream in Hz.
	SampleRate int
	// BitsPerSample is the source bit depth (8, 16, 24, 32).
	BitsPerSample int
	// Channels count (e.g., 1=mono, 2=stereo). Informational only: samples
	// are kept as one flat interleaved sequence.
	Channels int
}

// PCM is a fully decoded stream: the spec plus every sample in decode
// order, all channels flattened.
type PCM struct {
	Spec    Spec
	Samples []int
}

// Duration of the stream in seconds, computed as len(Samples)/SampleRate.
// Channels are not taken into account.
func (p *PCM) Duration() float32 {
	return float32(len(p.Samples)) / float32(p.Spec.SampleRate)
}

// Decoder constructs a PCM stream from an input reader.
type Decoder interface {
	Decode(r io.Reader) (*PCM, error)
}

// Registry for decoders by file extension without the dot (e.g., "wav").
type Registry struct {
	codecs map[string]Decoder
	mtx    *sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.RWMutex{},
	}
}

func (r *Registry) Register(ext string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[ext] = d
}

func (r *Registry) Get(ext string) (Decoder, bool) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	d, ok := r.codecs[ext]
	return d, ok
}

// Lookup returns the decoder registered for ext or ErrUnsupportedFormat.
func (r *Registry) Lookup(ext string) (Decoder, error) {
	d, ok := r.Get(ext)
	if !ok {
		return nil, &FormatError{Ext: ext}
	}

	return d, nil
}
