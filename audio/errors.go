// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported audio format")
)

// FormatError reports an extension with no registered decoder.
type FormatError struct {
	Ext string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%v: %q", ErrUnsupportedFormat, e.Ext)
}

func (e *FormatError) Unwrap() error {
	return ErrUnsupportedFormat
}
