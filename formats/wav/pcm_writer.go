// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/wavpeaks/audio"
)

// WritePCM writes a canonical 44-byte-header linear PCM WAV. samples are
// interleaved signed values at spec.BitsPerSample; 8-bit samples are
// stored with the usual +128 offset.
func WritePCM(w io.Writer, spec audio.Spec, samples []int) error {
	switch spec.BitsPerSample {
	case 8, 16, 24, 32:
	default:
		return fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, spec.BitsPerSample)
	}
	if spec.Channels < 1 {
		return ErrUnsupportedWavLayout
	}

	numChannels := uint16(spec.Channels)
	bytesPerSample := spec.BitsPerSample / 8
	byteRate := uint32(spec.SampleRate) * uint32(numChannels) * uint32(bytesPerSample)
	blockAlign := numChannels * uint16(bytesPerSample)
	dataSize := uint32(len(samples) * bytesPerSample)
	riffSize := 36 + dataSize

	header := make([]byte, 44)

	// RIFF header (12 bytes)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], riffSize)
	copy(header[8:12], "WAVE")

	// fmt chunk (24 bytes)
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16)
	binary.LittleEndian.PutUint16(header[20:22], formatPCM)
	binary.LittleEndian.PutUint16(header[22:24], numChannels)
	binary.LittleEndian.PutUint32(header[24:28], uint32(spec.SampleRate))
	binary.LittleEndian.PutUint32(header[28:32], byteRate)
	binary.LittleEndian.PutUint16(header[32:34], blockAlign)
	binary.LittleEndian.PutUint16(header[34:36], uint16(spec.BitsPerSample))

	// data chunk header (8 bytes)
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w", err)
	}

	if len(samples) == 0 {
		return nil
	}

	const chunkSize = 8192 // samples per write
	buf := make([]byte, min(len(samples), chunkSize)*bytesPerSample)

	for i := 0; i < len(samples); i += chunkSize {
		chunk := samples[i:min(i+chunkSize, len(samples))]
		buf = buf[:len(chunk)*bytesPerSample]

		for j, s := range chunk {
			putSample(buf[j*bytesPerSample:(j+1)*bytesPerSample], s)
		}

		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}

func putSample(b []byte, s int) {
	switch len(b) {
	case 1:
		b[0] = uint8(s + 128)
	case 2:
		binary.LittleEndian.PutUint16(b, uint16(int16(s)))
	case 3:
		v := uint32(int32(s))
		b[0] = byte(v)
		b[1] = byte(v >> 8)
		b[2] = byte(v >> 16)
	case 4:
		binary.LittleEndian.PutUint32(b, uint32(int32(s)))
	}
}
