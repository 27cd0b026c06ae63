package wav

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
	"github.com/ik5/wavpeaks/audio"
)

// Decoder reads a whole linear-PCM WAV stream into memory.
type Decoder struct{}

// Decode reads r to the end and returns its samples interleaved in file
// order. WAVE_FORMAT_EXTENSIBLE files with a PCM subformat are accepted.
func (Decoder) Decode(r io.Reader) (*audio.PCM, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	if err := checkRIFFHeader(rs); err != nil {
		return nil, err
	}

	l, err := scanLayout(rs)
	if err != nil {
		return nil, err
	}

	dec := gowav.NewDecoder(rs)
	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotWavFile, err)
	}

	// No fmt chunk was found before EOF.
	if dec.NumChans == 0 {
		return nil, ErrUnsupportedWavLayout
	}
	if l.format != formatPCM {
		return nil, fmt.Errorf("%w: format tag 0x%04x", ErrNotPCM, l.format)
	}

	bitDepth := int(dec.BitDepth)
	switch bitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	if !l.hasData {
		return nil, fmt.Errorf("reading PCM data: %w", ErrMissingPCMData)
	}
	if l.truncated() {
		return nil, fmt.Errorf("%w: %d of %d bytes", ErrTruncatedData, l.available, l.dataSize)
	}

	buf, err := dec.FullPCMBuffer()
	if buf == nil {
		if err == nil || errors.Is(err, io.EOF) {
			err = ErrMissingPCMData
		}
		return nil, fmt.Errorf("reading PCM data: %w", err)
	}
	if err != nil {
		return nil, fmt.Errorf("reading PCM data: %w", err)
	}

	// go-audio reads the word-alignment pad and any trailing partial
	// sample as extra samples.
	want := int(l.dataSize) / (bitDepth / 8)
	if len(buf.Data) < want {
		return nil, fmt.Errorf("%w: %d of %d samples", ErrTruncatedData, len(buf.Data), want)
	}
	buf.Data = buf.Data[:want]

	return &audio.PCM{
		Spec: audio.Spec{
			SampleRate:    int(dec.SampleRate),
			BitsPerSample: bitDepth,
			Channels:      int(dec.NumChans),
		},
		Samples: samplesFromBuffer(buf, bitDepth),
	}, nil
}

// samplesFromBuffer returns the buffer data as signed samples. 8-bit WAV
// is stored unsigned with a 128 offset; every other depth is already signed.
func samplesFromBuffer(buf *goaudio.IntBuffer, bitDepth int) []int {
	samples := buf.Data
	if samples == nil {
		samples = []int{}
	}
	if bitDepth == 8 {
		for i, v := range samples {
			samples[i] = v - 128
		}
	}

	return samples
}

// checkRIFFHeader verifies the RIFF/WAVE preamble and rewinds rs.
func checkRIFFHeader(rs io.ReadSeeker) error {
	start, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	header := make([]byte, 12)
	if _, err := io.ReadFull(rs, header); err != nil {
		return fmt.Errorf("%w: %w", ErrNotWavFile, err)
	}
	if !bytes.HasPrefix(header[:4], []byte("RIFF")) || !bytes.HasPrefix(header[8:12], []byte("WAVE")) {
		return ErrNotWavFile
	}

	if _, err := rs.Seek(start, io.SeekStart); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
