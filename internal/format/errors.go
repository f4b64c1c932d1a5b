package format

import "errors"

var (
	// ErrTruncated indicates a response or buffer lacked the bytes required.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrSignatureMismatch indicates an image file had an unexpected magic.
	ErrSignatureMismatch = errors.New("format: signature mismatch")
	// ErrUnsupported indicates an image version this package can't read.
	ErrUnsupported = errors.New("format: unsupported image version")
	// ErrAddress indicates an address that doesn't fit the one-byte address field.
	ErrAddress = errors.New("format: address does not fit in one byte")
)
