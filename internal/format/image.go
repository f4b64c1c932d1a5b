package format

import (
	"bytes"
	"fmt"
)

// NewImage returns a fresh image buffer with the header filled in and every
// block set to fill.
func NewImage(uid [UIDSize]byte, fill [BlockSize]byte) []byte {
	img := make([]byte, ImageSize)
	copy(img, ImageSignature)
	img[ImageVersionOffset] = ImageVersion
	copy(img[ImageUIDOffset:], uid[:])
	for addr := range AddressSpace {
		copy(img[BlockOffset(addr):], fill[:])
	}
	return img
}

// CheckImage validates the header of an image buffer.
func CheckImage(img []byte) error {
	if len(img) < ImageSize {
		return fmt.Errorf("image %d bytes, want %d: %w", len(img), ImageSize, ErrTruncated)
	}
	if !bytes.Equal(img[:len(ImageSignature)], ImageSignature) {
		return ErrSignatureMismatch
	}
	if v := img[ImageVersionOffset]; v != ImageVersion {
		return fmt.Errorf("version 0x%02X: %w", v, ErrUnsupported)
	}
	return nil
}

// ImageUID returns the UID stored in an image header.
func ImageUID(img []byte) [UIDSize]byte {
	var uid [UIDSize]byte
	copy(uid[:], img[ImageUIDOffset:ImageUIDOffset+UIDSize])
	return uid
}
