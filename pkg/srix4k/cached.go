package srix4k

import (
	"context"
	"errors"
	"log/slog"

	"github.com/joshuapare/srixkit/tag"
	"github.com/joshuapare/srixkit/tag/cache"
)

// Cached is a connected SRIX4K with a complete local mirror of its memory.
//
// NOT thread-safe. Only one goroutine should use it at a time.
type Cached struct {
	sess  *tag.Session
	cache *cache.Cache
	log   *slog.Logger
	skip  bool
}

// ConnectFrom selects the tag through t and reads every mapped block into the
// cache. Either the whole cache is primed or a *tag.ConnectError is returned
// and no Cached escapes.
func ConnectFrom(ctx context.Context, t tag.Transport, opts *Options) (*Cached, error) {
	sess, err := tag.Connect(ctx, t, tag.SRIX4K, opts.logger())
	if err != nil {
		return nil, err
	}
	log := opts.logger()
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	c := cache.New(sess.Layout())
	var readErr error
	blocks := func(yield func(tag.Addr, tag.Block) bool) {
		for a := range sess.Layout().Mapped() {
			b, err := sess.ReadBlock(ctx, a)
			if err != nil {
				readErr = err
				return
			}
			if !yield(a, b) {
				return
			}
		}
	}
	if err := c.Load(blocks); err != nil {
		return nil, &tag.ConnectError{Stage: tag.StagePopulate, Err: err}
	}
	if readErr != nil {
		return nil, &tag.ConnectError{Stage: tag.StagePopulate, Err: readErr}
	}
	log.Info("cache primed", "uid", sess.UID().String(), "blocks", sess.Layout().MappedCount())

	return &Cached{
		sess:  sess,
		cache: c,
		log:   log,
		skip:  opts.skipUnchanged(),
	}, nil
}

// UID returns the tag identifier read at connect time.
func (c *Cached) UID() tag.UID {
	return c.sess.UID()
}

// EEPROMGet returns the cached value of an EEPROM block.
func (c *Cached) EEPROMGet(addr tag.Addr) (tag.Block, error) {
	if err := c.sess.Layout().CheckIn(tag.RegionEEPROM, addr); err != nil {
		return tag.Block{}, err
	}
	return c.cache.Get(addr)
}

// EEPROMMut grants mutable access to an EEPROM block. The block is dirty once
// the handle is released.
func (c *Cached) EEPROMMut(addr tag.Addr) (*cache.Handle, error) {
	if err := c.sess.Layout().CheckIn(tag.RegionEEPROM, addr); err != nil {
		return nil, err
	}
	return c.cache.Mut(addr)
}

// EEPROMUpdate runs fn on an EEPROM block and marks it dirty.
func (c *Cached) EEPROMUpdate(addr tag.Addr, fn func(*tag.Block)) error {
	if err := c.sess.Layout().CheckIn(tag.RegionEEPROM, addr); err != nil {
		return err
	}
	return c.cache.Update(addr, fn)
}

// EEPROMSet stores value in an EEPROM block and marks it dirty.
func (c *Cached) EEPROMSet(addr tag.Addr, value tag.Block) error {
	if err := c.sess.Layout().CheckIn(tag.RegionEEPROM, addr); err != nil {
		return err
	}
	return c.cache.Set(addr, value)
}

// SystemGet returns the cached System OTP bits block.
func (c *Cached) SystemGet() (tag.Block, error) {
	return c.cache.Get(c.systemAddr())
}

// SystemMut grants mutable access to the system block.
func (c *Cached) SystemMut() (*cache.Handle, error) {
	return c.cache.Mut(c.systemAddr())
}

// SystemUpdate runs fn on the system block and marks it dirty.
func (c *Cached) SystemUpdate(fn func(*tag.Block)) error {
	return c.cache.Update(c.systemAddr(), fn)
}

// SystemSet stores value in the system block and marks it dirty.
func (c *Cached) SystemSet(value tag.Block) error {
	return c.cache.Set(c.systemAddr(), value)
}

// SystemAt is SystemGet with an explicit address, validated against the
// system range.
func (c *Cached) SystemAt(addr tag.Addr) (tag.Block, error) {
	if err := c.sess.Layout().CheckIn(tag.RegionSystem, addr); err != nil {
		return tag.Block{}, err
	}
	return c.cache.Get(addr)
}

func (c *Cached) systemAddr() tag.Addr {
	return c.sess.Layout().System.Start
}

// Dirty returns the addresses waiting for write-back, ascending.
func (c *Cached) Dirty() []tag.Addr {
	return c.cache.DirtyAddrs()
}

// Changed returns the addresses whose cached value differs from the value
// last confirmed by the tag, ascending.
func (c *Cached) Changed() []tag.Addr {
	var out []tag.Addr
	for a := range c.sess.Layout().Mapped() {
		if c.cache.Changed(a) {
			out = append(out, a)
		}
	}
	return out
}

// Revert drops the local change to a block.
func (c *Cached) Revert(addr tag.Addr) error {
	return c.cache.Revert(addr)
}

// Sync writes every dirty block to the tag in ascending address order and
// marks each one clean as soon as its write succeeds.
//
// On the first failure Sync stops and returns *tag.SyncError; the failed block
// and all blocks after it remain dirty. A cancelled context is reported the
// same way, against the block that would have been written next.
func (c *Cached) Sync(ctx context.Context) error {
	pending := c.cache.DirtyAddrs()
	if len(pending) == 0 {
		return nil
	}
	c.log.Debug("sync started", "dirty", len(pending))

	var written []tag.Addr
	skipped := 0
	for _, a := range pending {
		if c.skip && !c.cache.Changed(a) {
			c.cache.MarkClean(a)
			skipped++
			continue
		}
		b, err := c.cache.Get(a)
		if err != nil {
			return err
		}
		if err := c.sess.WriteBlock(ctx, a, b); err != nil {
			return c.abort(err, a, written)
		}
		c.cache.MarkClean(a)
		written = append(written, a)
	}

	c.log.Info("sync complete", "written", len(written), "skipped", skipped)
	return nil
}

func (c *Cached) abort(err error, addr tag.Addr, written []tag.Addr) error {
	var te *tag.TransportError
	if !errors.As(err, &te) {
		te = &tag.TransportError{Op: tag.OpWrite, Addr: addr, Err: err}
	}
	se := &tag.SyncError{
		Err:       te,
		Written:   written,
		Remaining: c.cache.DirtyAddrs(),
	}
	c.log.Warn("sync aborted", "addr", addr.String(), "written", len(written), "remaining", len(se.Remaining), "err", te.Err)
	return se
}
