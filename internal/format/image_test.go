package format

import (
	"errors"
	"testing"
)

func TestNewImageRoundTrip(t *testing.T) {
	uid := [UIDSize]byte{0xD0, 0x02, 0x1A, 0x00, 0x11, 0x22, 0x33, 0x44}
	img := NewImage(uid, [BlockSize]byte{0xFF, 0xFF, 0xFF, 0xFF})

	if len(img) != ImageSize {
		t.Fatalf("len = %d, want %d", len(img), ImageSize)
	}
	if err := CheckImage(img); err != nil {
		t.Fatalf("CheckImage: %v", err)
	}
	if got := ImageUID(img); got != uid {
		t.Fatalf("ImageUID = % X, want % X", got, uid)
	}
	if got := ReadU32(img, BlockOffset(SystemAddr)); got != 0xFFFFFFFF {
		t.Fatalf("system block = %08X", got)
	}
}

func TestCheckImageErrors(t *testing.T) {
	good := NewImage([UIDSize]byte{}, [BlockSize]byte{})

	if err := CheckImage(good[:ImageSize-1]); !errors.Is(err, ErrTruncated) {
		t.Errorf("short image err = %v, want ErrTruncated", err)
	}

	bad := append([]byte(nil), good...)
	bad[0] = 'X'
	if err := CheckImage(bad); !errors.Is(err, ErrSignatureMismatch) {
		t.Errorf("bad magic err = %v, want ErrSignatureMismatch", err)
	}

	bad = append([]byte(nil), good...)
	bad[ImageVersionOffset] = 0x7F
	if err := CheckImage(bad); !errors.Is(err, ErrUnsupported) {
		t.Errorf("bad version err = %v, want ErrUnsupported", err)
	}
}

func TestEncodingHelpers(t *testing.T) {
	buf := make([]byte, 8)
	PutU32(buf, 2, 0xDEADBEEF)
	if buf[2] != 0xEF || buf[5] != 0xDE {
		t.Fatalf("PutU32 not little-endian: % X", buf)
	}
	if got := ReadU32(buf, 2); got != 0xDEADBEEF {
		t.Fatalf("ReadU32 = %08X", got)
	}
	if BlockOffset(0) != ImageHeaderSize || BlockOffset(1) != ImageHeaderSize+BlockSize {
		t.Fatalf("BlockOffset mismatch")
	}
}
