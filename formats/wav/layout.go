package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/go-audio/riff"
)

const (
	// formatPCM is WAVE_FORMAT_PCM in the fmt chunk.
	formatPCM = 0x0001
	// formatExtensible is WAVE_FORMAT_EXTENSIBLE; the real format is the
	// first two bytes of the subformat GUID.
	formatExtensible = 0xFFFE

	// fmtExtensibleSize is the fmt chunk size carrying a subformat GUID.
	fmtExtensibleSize = 40
)

// ksdataformatTail is the part of every KSDATAFORMAT_SUBTYPE_* GUID after
// the format tag.
var ksdataformatTail = []byte{
	0x00, 0x00, 0x00, 0x00, 0x10, 0x00, 0x80, 0x00, 0x00, 0xAA, 0x00, 0x38, 0x9B, 0x71,
}

// layout holds what go-audio does not keep from the header: the resolved
// sample format and the exact bounds of the data chunk.
type layout struct {
	format uint16

	hasData    bool
	dataOffset int64
	dataSize   int64
	// available is how many data bytes the stream actually holds.
	available int64
}

// truncated reports whether the data chunk declares more bytes than the
// stream holds.
func (l layout) truncated() bool {
	return l.available < l.dataSize
}

// scanLayout walks the RIFF chunks of rs and rewinds it afterwards.
func scanLayout(rs io.ReadSeeker) (layout, error) {
	var l layout

	start, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return l, fmt.Errorf("%w", err)
	}

	p := riff.New(rs)
	if err := p.ParseHeaders(); err != nil {
		return l, fmt.Errorf("%w: %w", ErrNotWavFile, err)
	}

	hasFmt := false
	for !hasFmt || !l.hasData {
		id, size, err := p.IDnSize()
		if err != nil {
			break
		}

		pos, err := rs.Seek(0, io.SeekCurrent)
		if err != nil {
			return l, fmt.Errorf("%w", err)
		}

		switch id {
		case riff.FmtID:
			if l.format, err = readFormat(rs, size); err != nil {
				return l, err
			}
			hasFmt = true
		case riff.DataFormatID:
			l.hasData = true
			l.dataOffset = pos
			l.dataSize = int64(size)
		}

		// chunks are word aligned
		next := pos + int64(size) + int64(size%2)
		if _, err := rs.Seek(next, io.SeekStart); err != nil {
			return l, fmt.Errorf("%w", err)
		}
	}

	if l.hasData {
		end, err := rs.Seek(0, io.SeekEnd)
		if err != nil {
			return l, fmt.Errorf("%w", err)
		}
		l.available = max(end-l.dataOffset, 0)
	}

	if _, err := rs.Seek(start, io.SeekStart); err != nil {
		return l, fmt.Errorf("%w", err)
	}

	return l, nil
}

// readFormat reads the format tag of a fmt chunk body, resolving
// WAVE_FORMAT_EXTENSIBLE to its subformat. An unknown subformat GUID keeps
// formatExtensible.
func readFormat(r io.Reader, size uint32) (uint16, error) {
	body := make([]byte, min(size, fmtExtensibleSize))
	if _, err := io.ReadFull(r, body); err != nil {
		return 0, fmt.Errorf("%w: fmt chunk: %w", ErrNotWavFile, err)
	}
	if len(body) < 2 {
		return 0, fmt.Errorf("%w: fmt chunk of %d bytes", ErrNotWavFile, size)
	}

	tag := binary.LittleEndian.Uint16(body)
	if tag != formatExtensible || len(body) < fmtExtensibleSize {
		return tag, nil
	}

	guid := body[24:40]
	if !bytes.Equal(guid[2:], ksdataformatTail) {
		return tag, nil
	}

	return binary.LittleEndian.Uint16(guid), nil
}
