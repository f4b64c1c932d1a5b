//go:build !unix

package mmfile

import (
	"io"
	"os"
)

// Map reads the entire file when mmap is not available.
func Map(f *os.File) (*Mapping, error) {
	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	data := make([]byte, info.Size())
	if _, err := f.ReadAt(data, 0); err != nil && err != io.EOF {
		return nil, err
	}
	return &Mapping{f: f, data: data}, nil
}

// Commit writes data[off:off+n] through to the file.
func (m *Mapping) Commit(off, n int) error {
	if m.data == nil {
		return ErrUnmapped
	}
	_, err := m.f.WriteAt(m.data[off:off+n], int64(off))
	return err
}

// Flush syncs the file. Every Commit has already written its range.
func (m *Mapping) Flush() error {
	if m.data == nil {
		return ErrUnmapped
	}
	return m.f.Sync()
}

func (m *Mapping) unmap() error {
	return nil
}
