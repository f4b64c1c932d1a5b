// Package mmfile provides platform-specific helpers for memory-mapping image files
// read-write.
package mmfile

import (
	"errors"
	"os"
)

// ErrUnmapped is returned after Close.
var ErrUnmapped = errors.New("mmfile: mapping is closed")

// Mapping is a writable view of a whole file. Stores through Bytes reach the
// file after Commit (for the range written) or Flush (for everything).
//
// NOT thread-safe.
type Mapping struct {
	f    *os.File
	data []byte
}

// Bytes returns the mapped contents. The slice is invalid after Close.
func (m *Mapping) Bytes() []byte {
	return m.data
}

// Close flushes and releases the mapping. The file itself is left open.
func (m *Mapping) Close() error {
	if m.data == nil {
		return ErrUnmapped
	}
	flushErr := m.Flush()
	unmapErr := m.unmap()
	m.data = nil
	return errors.Join(flushErr, unmapErr)
}
