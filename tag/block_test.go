package tag

import "testing"

func TestBlockUint32(t *testing.T) {
	b := BlockFromUint32(0xDEADBEEF)
	if b != (Block{0xEF, 0xBE, 0xAD, 0xDE}) {
		t.Fatalf("BlockFromUint32 = % X, want LSB first", b[:])
	}
	if b.Uint32() != 0xDEADBEEF {
		t.Fatalf("Uint32 = %08X", b.Uint32())
	}
	if b.String() != "0xDEADBEEF" {
		t.Fatalf("String = %q", b.String())
	}
}

func TestUID(t *testing.T) {
	u := UID{0x44, 0x33, 0x22, 0x11, 0x00, 0x1A, 0x02, 0xD0}
	if u.Uint64() != 0xD0021A0011223344 {
		t.Fatalf("Uint64 = %X", u.Uint64())
	}
	if u.String() != "D0021A0011223344" {
		t.Fatalf("String = %q", u.String())
	}

	for _, s := range []string{"D0021A0011223344", "0xd0021a0011223344"} {
		got, err := ParseUID(s)
		if err != nil {
			t.Fatalf("ParseUID(%q): %v", s, err)
		}
		if got != u {
			t.Fatalf("ParseUID(%q) = %v, want %v", s, got, u)
		}
	}
	if _, err := ParseUID("not-hex"); err == nil {
		t.Fatalf("ParseUID should reject non-hex input")
	}
}

func TestAddrString(t *testing.T) {
	if Addr(0x0F).String() != "0x0F" {
		t.Fatalf("Addr.String = %q", Addr(0x0F).String())
	}
}
