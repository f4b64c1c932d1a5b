package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/joshuapare/srixkit/pkg/srix4k"
	"github.com/joshuapare/srixkit/tag"
	"github.com/joshuapare/srixkit/transport/dumpfile"
)

// openImage is replaced in tests to run commands against an emulated tag.
var openImage = openImageFile

// openImageFile opens the configured image and connects the cached layer to
// it. The returned close function flushes and releases the image.
func openImageFile(ctx context.Context) (*srix4k.Cached, func() error, error) {
	if cfg.Image == "" {
		return nil, nil, errNoImage
	}
	printVerbose("Opening image: %s\n", cfg.Image)

	f, err := dumpfile.Open(cfg.Image)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open image: %w", err)
	}
	c, err := srix4k.ConnectFrom(ctx, f, &srix4k.Options{Logger: log})
	if err != nil {
		return nil, nil, errors.Join(fmt.Errorf("failed to connect: %w", err), f.Close())
	}
	return c, f.Close, nil
}

// parseAddr accepts decimal, 0x-prefixed hex or 0o/0b literals.
func parseAddr(s string) (tag.Addr, error) {
	v, err := strconv.ParseInt(s, 0, 0)
	if err != nil {
		return 0, fmt.Errorf("invalid block address %q: %w", s, err)
	}
	addr := tag.Addr(v)
	if err := tag.SRIX4K.Check(addr); err != nil {
		return 0, err
	}
	return addr, nil
}

// parseBlock parses a 32-bit block value, decimal or 0x-prefixed hex.
func parseBlock(s string) (tag.Block, error) {
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return tag.Block{}, fmt.Errorf("invalid block value %q: %w", s, err)
	}
	return tag.BlockFromUint32(uint32(v)), nil
}

// blockAt reads a block from whichever region holds addr.
func blockAt(c *srix4k.Cached, addr tag.Addr) (tag.Block, error) {
	if tag.SRIX4K.System.Contains(addr) {
		return c.SystemAt(addr)
	}
	return c.EEPROMGet(addr)
}

// region returns the name of the region holding addr.
func region(addr tag.Addr) string {
	switch {
	case tag.OTP.Contains(addr):
		return "otp"
	case tag.Countdown.Contains(addr):
		return "countdown"
	case tag.Lockable.Contains(addr):
		return "lockable"
	case tag.Generic.Contains(addr):
		return "generic"
	case tag.SRIX4K.System.Contains(addr):
		return "system"
	default:
		return "reserved"
	}
}
