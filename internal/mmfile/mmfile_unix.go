//go:build unix

package mmfile

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Map maps all of f read-write with MAP_SHARED.
func Map(f *os.File) (*Mapping, error) {
	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	size := info.Size()
	if size == 0 {
		return &Mapping{f: f, data: []byte{}}, nil
	}
	if size > int64(^uint(0)>>1) {
		return nil, fmt.Errorf("mmfile: file too large to map (%d bytes)", size)
	}
	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("mmfile: mmap failed: %w", err)
	}
	return &Mapping{f: f, data: data}, nil
}

// Commit is a no-op: stores already land in the shared mapping.
func (m *Mapping) Commit(off, n int) error {
	if m.data == nil {
		return ErrUnmapped
	}
	return nil
}

// Flush writes dirty pages back with msync.
func (m *Mapping) Flush() error {
	if m.data == nil {
		return ErrUnmapped
	}
	if len(m.data) == 0 {
		return nil
	}
	return unix.Msync(m.data, unix.MS_SYNC)
}

func (m *Mapping) unmap() error {
	if len(m.data) == 0 {
		return nil
	}
	err := unix.Munmap(m.data)
	if errors.Is(err, unix.EINVAL) {
		// Treat double-unmap as no-op for callers.
		return nil
	}
	return err
}
