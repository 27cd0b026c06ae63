package batch

import (
	"os"
	"path/filepath"
	"strings"
)

// WavExt is the only extension accepted by ValidatePath.
const WavExt = "wav"

// Extension returns the extension of the last element of path without the
// dot. A name whose only dot is the leading one (".wav") has none.
func Extension(path string) string {
	base := filepath.Base(path)

	i := strings.LastIndexByte(base, '.')
	if i <= 0 {
		return ""
	}

	return base[i+1:]
}

// ValidatePath checks that path exists and has the exact extension "wav".
func ValidatePath(path string) error {
	if _, err := os.Stat(path); err != nil {
		return &InvalidPathError{Path: path, Err: ErrFileNotExist}
	}

	if Extension(path) != WavExt {
		return &InvalidPathError{Path: path, Err: ErrNotWavFile}
	}

	return nil
}

// ValidateAll validates paths in order and returns the first failure.
func ValidateAll(paths []string) error {
	for _, path := range paths {
		if err := ValidatePath(path); err != nil {
			return err
		}
	}

	return nil
}
