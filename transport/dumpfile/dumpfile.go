// Package dumpfile implements tag.Transport on top of a tag image file.
//
// An image is a small header (signature, version, UID) followed by 4 bytes for
// every one of the 256 block addresses. It lets the cache layer and the srixctl
// tool work on a saved copy of a tag exactly as they would on real hardware:
//
//	if err := dumpfile.Create("tag.srix", uid, dumpfile.FillErased); err != nil {
//	    return err
//	}
//	f, err := dumpfile.Open("tag.srix")
//	if err != nil {
//	    return err
//	}
//	defer f.Close()
//	c, err := srix4k.ConnectFrom(ctx, f, nil)
//
// On unix the image is memory-mapped read-write and flushed with msync on
// Close; elsewhere it is loaded into memory and every block write goes
// straight to the file.
package dumpfile

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/natefinch/atomic"

	"github.com/joshuapare/srixkit/internal/format"
	"github.com/joshuapare/srixkit/internal/mmfile"
	"github.com/joshuapare/srixkit/tag"
)

// FillErased is the value of an erased EEPROM block.
var FillErased = tag.BlockFromUint32(0xFFFFFFFF)

// ErrClosed is returned by every operation on a closed File.
var ErrClosed = errors.New("dumpfile: image is closed")

// File is an open image. It implements tag.Transport.
//
// NOT thread-safe.
type File struct {
	path string
	f    *os.File
	m    *mmfile.Mapping
	data []byte
	uid  tag.UID
}

// Create writes a fresh image with every block set to fill. The file is
// replaced atomically, so a crash never leaves a half-written image behind.
func Create(path string, uid tag.UID, fill tag.Block) error {
	img := format.NewImage(uid, fill)
	if err := atomic.WriteFile(path, bytes.NewReader(img)); err != nil {
		return fmt.Errorf("cannot create image %q: %w", path, err)
	}
	return nil
}

// Open opens an existing image for reading and writing.
func Open(path string) (*File, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}
	st, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if st.Size() != format.ImageSize {
		_ = f.Close()
		return nil, fmt.Errorf("image %q is %d bytes, want %d: %w", path, st.Size(), format.ImageSize, format.ErrTruncated)
	}

	m, err := mmfile.Map(f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	data := m.Bytes()
	if err := format.CheckImage(data); err != nil {
		_ = m.Close()
		_ = f.Close()
		return nil, fmt.Errorf("image %q: %w", path, err)
	}

	return &File{
		path: path,
		f:    f,
		m:    m,
		data: data,
		uid:  tag.UID(format.ImageUID(data)),
	}, nil
}

// Name returns a human readable description of the image.
func (d *File) Name() string {
	return fmt.Sprintf("Tag image %q", d.path)
}

// Select returns the UID stored in the image header.
func (d *File) Select(ctx context.Context) (tag.UID, error) {
	if d.data == nil {
		return tag.UID{}, ErrClosed
	}
	return d.uid, nil
}

// ReadBlock implements tag.Transport.
func (d *File) ReadBlock(ctx context.Context, addr tag.Addr) (tag.Block, error) {
	off, err := d.offset(addr)
	if err != nil {
		return tag.Block{}, err
	}
	var b tag.Block
	copy(b[:], d.data[off:off+format.BlockSize])
	return b, nil
}

// WriteBlock implements tag.Transport.
func (d *File) WriteBlock(ctx context.Context, addr tag.Addr, data tag.Block) error {
	off, err := d.offset(addr)
	if err != nil {
		return err
	}
	copy(d.data[off:off+format.BlockSize], data[:])
	return d.m.Commit(off, format.BlockSize)
}

// Close flushes the image and releases the file.
func (d *File) Close() error {
	if d.data == nil {
		return ErrClosed
	}
	unmapErr := d.m.Close()
	closeErr := d.f.Close()
	d.data = nil
	d.m = nil
	d.f = nil
	return errors.Join(unmapErr, closeErr)
}

func (d *File) offset(addr tag.Addr) (int, error) {
	if d.data == nil {
		return 0, ErrClosed
	}
	if addr < 0 || int(addr) >= format.AddressSpace {
		return 0, fmt.Errorf("dumpfile: address %s outside image", addr)
	}
	return format.BlockOffset(int(addr)), nil
}
