// Package cache provides a dirty-tracked in-memory mirror of tag memory.
//
// # Overview
//
// A Cache holds one slot per block address of a tag.Layout. Each slot keeps the
// current value, the last value confirmed by the tag, and a dirty flag. Reads
// and writes never touch hardware; the owner (srix4k.Cached) decides when the
// dirty slots are written back.
//
// # Dirty Tracking
//
// Any mutable access marks the slot dirty, whether or not the value changed:
//
//	h, _ := c.Mut(0x10)
//	h.Block()[0] = 0x42
//	h.Release() // slot 0x10 is now dirty
//
//	c.Update(0x11, func(b *tag.Block) { *b = tag.BlockFromUint32(7) })
//	c.Set(0x12, tag.BlockFromUint32(8))
//
// A spurious write-back is harmless; a missed one is not. Changed reports
// whether a slot's value actually differs from the confirmed value, for
// callers that want to skip no-op writes.
//
// # Write-Back Protocol
//
//	for a := range c.Dirty() { // ascending, recomputed on every call
//	    b, _ := c.Get(a)
//	    if err := write(a, b); err != nil {
//	        break // a and everything after it stay dirty
//	    }
//	    c.MarkClean(a)
//	}
//
// # Priming
//
// Load stores values read from the tag without marking anything dirty. It is
// the only way values enter the cache as "confirmed".
//
// # Thread Safety
//
// Cache instances are not thread-safe. Callers must synchronize access
// externally.
package cache
