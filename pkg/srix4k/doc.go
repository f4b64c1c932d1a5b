/*
Package srix4k provides cached, dirty-tracked access to an SRIX4K tag.

# Quick Start

Connect, change a block, write it back:

	c, err := srix4k.ConnectFrom(ctx, transport, nil)
	if err != nil {
	    return err
	}
	h, err := c.EEPROMMut(0x10)
	if err != nil {
	    return err
	}
	h.SetUint32(0xDEADBEEF)
	h.Release()

	if err := c.Sync(ctx); err != nil {
	    return err
	}

ConnectFrom reads every EEPROM block and the system block once. After that,
EEPROMGet and SystemGet never touch the transport, and Sync writes only the
blocks that were mutated since they were last written.

# Partial Sync

Sync writes dirty blocks in ascending address order and stops at the first
failure. Blocks written before the failure are clean; the failing block and
everything after it stay dirty, so calling Sync again retries only those:

	err := c.Sync(ctx)
	var se *tag.SyncError
	if errors.As(err, &se) {
	    log.Printf("block %s failed, %d still dirty", se.Addr(), len(se.Remaining))
	}

# Concurrency

A Cached value owns its session and cache and has no internal locking.
Serialize access externally.
*/
package srix4k
