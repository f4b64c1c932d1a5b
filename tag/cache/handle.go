package cache

import "github.com/joshuapare/srixkit/tag"

// Handle is scoped mutable access to one cache slot. Block returns a pointer
// into the slot; Release ends the access and marks the slot dirty.
//
// The pointer must not be used after Release.
type Handle struct {
	c        *Cache
	addr     tag.Addr
	released bool
}

// Addr returns the address the handle is bound to.
func (h *Handle) Addr() tag.Addr {
	return h.addr
}

// Block returns a pointer to the slot's value. On a released handle the slot
// is marked dirty again, since the caller may write through the pointer.
func (h *Handle) Block() *tag.Block {
	s := &h.c.slots[h.addr]
	if h.released {
		s.dirty = true
	}
	return &s.val
}

// Set replaces the slot's value and marks it dirty.
func (h *Handle) Set(value tag.Block) {
	s := &h.c.slots[h.addr]
	s.val = value
	s.dirty = true
}

// SetUint32 is Set with the little-endian encoding of v.
func (h *Handle) SetUint32(v uint32) {
	h.Set(tag.BlockFromUint32(v))
}

// Release marks the slot dirty. It is safe to call more than once.
func (h *Handle) Release() {
	if h.released {
		return
	}
	h.released = true
	h.c.slots[h.addr].dirty = true
}
