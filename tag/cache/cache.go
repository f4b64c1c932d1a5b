package cache

import (
	"iter"

	"github.com/joshuapare/srixkit/tag"
)

type slot struct {
	val       tag.Block // current in-memory value
	confirmed tag.Block // last value known to be on the tag
	dirty     bool
}

// Cache mirrors every block slot of a layout.
//
// NOT thread-safe. Only one goroutine should use it at a time.
type Cache struct {
	layout tag.Layout
	slots  []slot
}

// New allocates a clean, zeroed cache for the layout.
func New(layout tag.Layout) *Cache {
	return &Cache{
		layout: layout,
		slots:  make([]slot, layout.BlockCount),
	}
}

// Layout returns the layout the cache validates addresses against.
func (c *Cache) Layout() tag.Layout {
	return c.layout
}

// Len returns the number of slots.
func (c *Cache) Len() int {
	return len(c.slots)
}

// Get returns the cached value of addr.
func (c *Cache) Get(addr tag.Addr) (tag.Block, error) {
	if err := c.layout.Check(addr); err != nil {
		return tag.Block{}, err
	}
	return c.slots[addr].val, nil
}

// Set stores value at addr and marks the slot dirty.
func (c *Cache) Set(addr tag.Addr, value tag.Block) error {
	if err := c.layout.Check(addr); err != nil {
		return err
	}
	c.slots[addr].val = value
	c.slots[addr].dirty = true
	return nil
}

// Update runs fn with a pointer to the value at addr and marks the slot dirty
// when fn returns. The pointer must not be retained.
func (c *Cache) Update(addr tag.Addr, fn func(*tag.Block)) error {
	h, err := c.Mut(addr)
	if err != nil {
		return err
	}
	defer h.Release()
	fn(h.Block())
	return nil
}

// Mut grants mutable access to the value at addr. The slot is marked dirty
// when the handle is released.
func (c *Cache) Mut(addr tag.Addr) (*Handle, error) {
	if err := c.layout.Check(addr); err != nil {
		return nil, err
	}
	return &Handle{c: c, addr: addr}, nil
}

// IsDirty reports whether addr is waiting for write-back. Invalid addresses
// are never dirty.
func (c *Cache) IsDirty(addr tag.Addr) bool {
	if c.layout.Check(addr) != nil {
		return false
	}
	return c.slots[addr].dirty
}

// Changed reports whether the value at addr differs from the confirmed value.
func (c *Cache) Changed(addr tag.Addr) bool {
	if c.layout.Check(addr) != nil {
		return false
	}
	s := &c.slots[addr]
	return s.val != s.confirmed
}

// Dirty yields the dirty addresses in ascending order. The sequence is
// computed while iterating, so it reflects MarkClean calls made during the
// loop and can be ranged over again.
func (c *Cache) Dirty() iter.Seq[tag.Addr] {
	return func(yield func(tag.Addr) bool) {
		for i := range c.slots {
			if c.slots[i].dirty && !yield(tag.Addr(i)) {
				return
			}
		}
	}
}

// DirtyAddrs returns a snapshot of the dirty addresses in ascending order.
func (c *Cache) DirtyAddrs() []tag.Addr {
	var out []tag.Addr
	for a := range c.Dirty() {
		out = append(out, a)
	}
	return out
}

// DirtyCount returns the number of dirty slots.
func (c *Cache) DirtyCount() int {
	n := 0
	for i := range c.slots {
		if c.slots[i].dirty {
			n++
		}
	}
	return n
}

// MarkClean records that the value at addr has been written to the tag: the
// slot becomes clean and its value becomes the confirmed value. Call it only
// after a successful write.
func (c *Cache) MarkClean(addr tag.Addr) {
	if c.layout.Check(addr) != nil {
		return
	}
	s := &c.slots[addr]
	s.confirmed = s.val
	s.dirty = false
}

// Revert restores the confirmed value at addr and clears the dirty flag.
func (c *Cache) Revert(addr tag.Addr) error {
	if err := c.layout.Check(addr); err != nil {
		return err
	}
	s := &c.slots[addr]
	s.val = s.confirmed
	s.dirty = false
	return nil
}

// Load primes slots with values read from the tag. Loaded slots are clean and
// their values become the confirmed values. Load stops at the first invalid
// address; slots stored before it keep their new values.
func (c *Cache) Load(values iter.Seq2[tag.Addr, tag.Block]) error {
	for addr, b := range values {
		if err := c.layout.Check(addr); err != nil {
			return err
		}
		c.slots[addr] = slot{val: b, confirmed: b}
	}
	return nil
}
