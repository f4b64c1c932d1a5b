package tag

import (
	"fmt"
	"iter"

	"github.com/joshuapare/srixkit/internal/format"
)

// Range is a half-open span [Start, End) of block addresses.
type Range struct {
	Start Addr
	End   Addr
}

// Contains reports whether addr lies in the range.
func (r Range) Contains(addr Addr) bool {
	return addr >= r.Start && addr < r.End
}

// Len returns the number of addresses in the range.
func (r Range) Len() int {
	if r.End < r.Start {
		return 0
	}
	return int(r.End - r.Start)
}

// All yields every address of the range in ascending order.
func (r Range) All() iter.Seq[Addr] {
	return func(yield func(Addr) bool) {
		for a := r.Start; a < r.End; a++ {
			if !yield(a) {
				return
			}
		}
	}
}

func (r Range) overlaps(o Range) bool {
	return r.Start < o.End && o.Start < r.End
}

func (r Range) String() string {
	return fmt.Sprintf("[%s, %s)", r.Start, r.End)
}

// Region names a Range of the layout for error reporting.
type Region string

const (
	RegionEEPROM Region = "eeprom"
	RegionSystem Region = "system"
)

// Layout is the static description of a tag's block address space.
type Layout struct {
	BlockCount int   // Number of addressable block slots
	EEPROM     Range // User EEPROM blocks
	System     Range // System / configuration blocks
}

// SRIX4K is the layout of the SRIX4K part.
var SRIX4K = Layout{
	BlockCount: format.AddressSpace,
	EEPROM:     Range{Start: 0, End: format.EEPROMBlocks},
	System:     Range{Start: format.SystemAddr, End: format.SystemAddr + 1},
}

// EEPROM sub-regions of the SRIX4K.
var (
	OTP       = Range{Start: format.OTPStart, End: format.CountdownStart}
	Countdown = Range{Start: format.CountdownStart, End: format.LockableStart}
	Lockable  = Range{Start: format.LockableStart, End: format.GenericStart}
	Generic   = Range{Start: format.GenericStart, End: format.EEPROMBlocks}
)

// Validate checks the layout invariants: both ranges fit inside BlockCount and
// they don't overlap.
func (l Layout) Validate() error {
	if l.BlockCount <= 0 {
		return fmt.Errorf("layout: block count %d must be positive", l.BlockCount)
	}
	for _, nr := range []struct {
		name Region
		r    Range
	}{{RegionEEPROM, l.EEPROM}, {RegionSystem, l.System}} {
		if nr.r.Start < 0 || nr.r.Start > nr.r.End || int(nr.r.End) > l.BlockCount {
			return fmt.Errorf("layout: %s range %s outside [0, %d)", nr.name, nr.r, l.BlockCount)
		}
	}
	if l.EEPROM.overlaps(l.System) {
		return fmt.Errorf("layout: eeprom %s overlaps system %s", l.EEPROM, l.System)
	}
	return nil
}

// Range returns the range of a named region.
func (l Layout) Range(region Region) (Range, bool) {
	switch region {
	case RegionEEPROM:
		return l.EEPROM, true
	case RegionSystem:
		return l.System, true
	default:
		return Range{}, false
	}
}

// IsMapped reports whether addr is backed by storage (EEPROM or System).
func (l Layout) IsMapped(addr Addr) bool {
	return l.EEPROM.Contains(addr) || l.System.Contains(addr)
}

// Check validates addr against the whole address space. Reserved addresses
// fail the same way as out-of-bounds ones.
func (l Layout) Check(addr Addr) error {
	if addr < 0 || int(addr) >= l.BlockCount || !l.IsMapped(addr) {
		return &RangeError{Addr: addr, Bounds: Range{Start: 0, End: Addr(l.BlockCount)}}
	}
	return nil
}

// CheckIn validates addr against a named region.
func (l Layout) CheckIn(region Region, addr Addr) error {
	r, ok := l.Range(region)
	if !ok || !r.Contains(addr) {
		return &RangeError{Addr: addr, Region: region, Bounds: r}
	}
	return nil
}

// Mapped yields every mapped address in ascending order.
func (l Layout) Mapped() iter.Seq[Addr] {
	return func(yield func(Addr) bool) {
		for a := Addr(0); int(a) < l.BlockCount; a++ {
			if l.IsMapped(a) && !yield(a) {
				return
			}
		}
	}
}

// MappedCount returns the number of mapped addresses.
func (l Layout) MappedCount() int {
	return l.EEPROM.Len() + l.System.Len()
}
