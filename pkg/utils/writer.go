package utils

import (
	"bytes"
	"io"
)

// NewWrappedOutputWriter returns a buffer and a writer that fills it. Writes
// are copied to wrappedWriter when it is not nil.
func NewWrappedOutputWriter(wrappedWriter io.Writer) (*bytes.Buffer, io.Writer) {
	buffer := new(bytes.Buffer)
	if wrappedWriter == nil {
		return buffer, buffer
	}

	return buffer, io.MultiWriter(buffer, wrappedWriter)
}
