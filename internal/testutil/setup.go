// Package testutil holds fixtures shared by the tag, cache and transport tests.
package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/joshuapare/srixkit/pkg/srix4k"
	"github.com/joshuapare/srixkit/tag"
	"github.com/joshuapare/srixkit/transport/dumpfile"
	"github.com/joshuapare/srixkit/transport/memtag"
)

// TestUID is the UID every fixture tag reports. Its string form is D0021A0011223344.
var TestUID = tag.UID{0x44, 0x33, 0x22, 0x11, 0x00, 0x1A, 0x02, 0xD0}

// SetupTestTag returns an emulated tag whose mapped blocks hold their own
// address as a little-endian value, so a misrouted read is easy to spot.
func SetupTestTag(t *testing.T) *memtag.Tag {
	t.Helper()
	mt := memtag.New(TestUID)
	for a := range tag.SRIX4K.Mapped() {
		mt.Poke(a, tag.BlockFromUint32(uint32(a)))
	}
	return mt
}

// Connect builds a cached tag over mt and forgets the calls made while
// populating, so tests only see the traffic they cause.
func Connect(t *testing.T, mt *memtag.Tag, opts *srix4k.Options) *srix4k.Cached {
	t.Helper()
	c, err := srix4k.ConnectFrom(context.Background(), mt, opts)
	if err != nil {
		t.Fatalf("Failed to connect: %v", err)
	}
	mt.ResetCalls()
	return c
}

// SetupTestImage creates an erased image in a temporary directory and returns
// its path.
//
// Example:
//
//	path := testutil.SetupTestImage(t)
//	f, err := dumpfile.Open(path)
func SetupTestImage(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tag.srix")
	if err := dumpfile.Create(path, TestUID, dumpfile.FillErased); err != nil {
		t.Fatalf("Failed to create image: %v", err)
	}
	return path
}

// OpenTestImage opens the image at path and closes it when the test ends.
func OpenTestImage(t *testing.T, path string) *dumpfile.File {
	t.Helper()
	f, err := dumpfile.Open(path)
	if err != nil {
		t.Fatalf("Failed to open image: %v", err)
	}
	t.Cleanup(func() { _ = f.Close() })
	return f
}
