package tag

import (
	"errors"
	"slices"
	"testing"
)

func TestSRIX4KLayout(t *testing.T) {
	if err := SRIX4K.Validate(); err != nil {
		t.Fatalf("SRIX4K.Validate: %v", err)
	}
	if SRIX4K.BlockCount != 256 {
		t.Fatalf("BlockCount = %d, want 256", SRIX4K.BlockCount)
	}
	if got := SRIX4K.MappedCount(); got != 129 {
		t.Fatalf("MappedCount = %d, want 129", got)
	}

	mapped := slices.Collect(SRIX4K.Mapped())
	if len(mapped) != 129 {
		t.Fatalf("Mapped yielded %d addresses, want 129", len(mapped))
	}
	if !slices.IsSorted(mapped) {
		t.Fatalf("Mapped not ascending")
	}
	if mapped[127] != 0x7F || mapped[128] != 0xFF {
		t.Fatalf("Mapped tail = %v, %v", mapped[127], mapped[128])
	}
}

func TestEEPROMSubRegionsTile(t *testing.T) {
	regions := []Range{OTP, Countdown, Lockable, Generic}
	next := SRIX4K.EEPROM.Start
	total := 0
	for _, r := range regions {
		if r.Start != next {
			t.Fatalf("region %s does not start at %s", r, next)
		}
		next = r.End
		total += r.Len()
	}
	if next != SRIX4K.EEPROM.End || total != SRIX4K.EEPROM.Len() {
		t.Fatalf("sub-regions cover up to %s (%d blocks), want %s", next, total, SRIX4K.EEPROM.End)
	}
}

func TestLayoutCheck(t *testing.T) {
	testCases := []struct {
		desc    string
		addr    Addr
		wantErr bool
	}{
		{desc: "first eeprom block", addr: 0x00},
		{desc: "last eeprom block", addr: 0x7F},
		{desc: "system block", addr: 0xFF},
		{desc: "first reserved block", addr: 0x80, wantErr: true},
		{desc: "last reserved block", addr: 0xFE, wantErr: true},
		{desc: "negative", addr: -1, wantErr: true},
		{desc: "past the address space", addr: 0x100, wantErr: true},
	}

	for _, tc := range testCases {
		err := SRIX4K.Check(tc.addr)
		if (err != nil) != tc.wantErr {
			t.Fatalf("Test %q: failed = %t (%v), want %t", tc.desc, err != nil, err, tc.wantErr)
		}
		if err == nil {
			continue
		}
		if !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Test %q: err %v is not ErrOutOfRange", tc.desc, err)
		}
		if errors.Is(err, ErrOutsideRegion) {
			t.Errorf("Test %q: whole-space check must not match ErrOutsideRegion", tc.desc)
		}
	}
}

func TestLayoutCheckIn(t *testing.T) {
	if err := SRIX4K.CheckIn(RegionEEPROM, 0x10); err != nil {
		t.Fatalf("CheckIn(eeprom, 0x10): %v", err)
	}
	if err := SRIX4K.CheckIn(RegionSystem, 0xFF); err != nil {
		t.Fatalf("CheckIn(system, 0xFF): %v", err)
	}

	err := SRIX4K.CheckIn(RegionEEPROM, 0xFF)
	if !errors.Is(err, ErrOutOfRange) || !errors.Is(err, ErrOutsideRegion) {
		t.Fatalf("CheckIn(eeprom, 0xFF) = %v, want ErrOutOfRange and ErrOutsideRegion", err)
	}
	var re *RangeError
	if !errors.As(err, &re) || re.Region != RegionEEPROM || re.Addr != 0xFF {
		t.Fatalf("unexpected RangeError: %+v", re)
	}

	if err := SRIX4K.CheckIn(Region("bogus"), 0); !errors.Is(err, ErrOutsideRegion) {
		t.Fatalf("unknown region err = %v", err)
	}
}

func TestLayoutValidate(t *testing.T) {
	testCases := []struct {
		desc   string
		layout Layout
	}{
		{desc: "zero blocks", layout: Layout{}},
		{desc: "eeprom past end", layout: Layout{BlockCount: 8, EEPROM: Range{0, 9}, System: Range{8, 8}}},
		{desc: "inverted range", layout: Layout{BlockCount: 8, EEPROM: Range{4, 2}, System: Range{7, 8}}},
		{desc: "overlap", layout: Layout{BlockCount: 8, EEPROM: Range{0, 6}, System: Range{5, 6}}},
	}
	for _, tc := range testCases {
		if err := tc.layout.Validate(); err == nil {
			t.Errorf("Test %q: Validate succeeded, want error", tc.desc)
		}
	}

	small := Layout{BlockCount: 8, EEPROM: Range{0, 4}, System: Range{7, 8}}
	if err := small.Validate(); err != nil {
		t.Fatalf("valid layout rejected: %v", err)
	}
}

func TestRangeAll(t *testing.T) {
	got := slices.Collect(Range{Start: 3, End: 6}.All())
	if !slices.Equal(got, []Addr{3, 4, 5}) {
		t.Fatalf("All = %v", got)
	}
	for a := range (Range{Start: 0, End: 100}).All() {
		if a == 2 {
			break
		}
	}
	if (Range{Start: 5, End: 1}).Len() != 0 {
		t.Fatalf("inverted range Len should be 0")
	}
}
