package wav

import "errors"

var (
	ErrNotWavFile           = errors.New("not a WAV file")
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")
	ErrNotPCM               = errors.New("only linear PCM WAV supported")
	ErrUnsupportedBitDepth  = errors.New("unsupported PCM bit depth")
	ErrMissingPCMData       = errors.New("WAV data chunk not found")
	ErrTruncatedData        = errors.New("WAV data chunk is truncated")
)
