package batch

import (
	"errors"
	"fmt"
)

var (
	ErrFileNotExist = errors.New("the specified file does not exist")
	ErrNotWavFile   = errors.New("the specified file is not a WAV file")
)

// InvalidPathError is returned by path validation.
type InvalidPathError struct {
	Path string
	Err  error
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *InvalidPathError) Unwrap() error {
	return e.Err
}

// FileError is a per-file failure inside a batch: the file could not be
// read, decoded or reduced.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("processing %s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}
