// Package memtag is an in-memory SRIX4K emulator implementing tag.Transport.
//
// It records every call and can be told to fail selected operations, which
// makes it the stub transport for tests of the cache and sync layers:
//
//	mt := memtag.New(uid)
//	mt.FailWrite(5, errors.New("tag left the field"))
//	c, _ := srix4k.ConnectFrom(ctx, mt, nil)
//	...
//	mt.Writes() // addresses written, in call order
//
// Like a real tag, it rejects reads and writes of reserved addresses.
package memtag

import (
	"context"
	"errors"
	"fmt"

	"github.com/joshuapare/srixkit/tag"
)

// ErrNoStorage is returned for addresses the emulated layout doesn't map.
var ErrNoStorage = errors.New("memtag: no storage at address")

// Call is one recorded transport invocation.
type Call struct {
	Op   tag.Op
	Addr tag.Addr
	Data tag.Block // payload for OpWrite, result for OpRead
}

// Tag is an emulated tag. The zero value is not usable; call New.
//
// NOT thread-safe.
type Tag struct {
	uid    tag.UID
	layout tag.Layout
	blocks []tag.Block
	calls  []Call

	selectErr   error
	readFaults  map[tag.Addr]error
	writeFaults map[tag.Addr]error
}

// New creates an emulated SRIX4K with every mapped block set to 0xFFFFFFFF,
// the erased state of the EEPROM.
func New(uid tag.UID) *Tag {
	return NewWithLayout(uid, tag.SRIX4K)
}

// NewWithLayout creates an emulated tag with a custom layout.
func NewWithLayout(uid tag.UID, layout tag.Layout) *Tag {
	m := &Tag{
		uid:         uid,
		layout:      layout,
		blocks:      make([]tag.Block, layout.BlockCount),
		readFaults:  map[tag.Addr]error{},
		writeFaults: map[tag.Addr]error{},
	}
	for a := range layout.Mapped() {
		m.blocks[a] = tag.BlockFromUint32(0xFFFFFFFF)
	}
	return m
}

// Select implements tag.Transport.
func (m *Tag) Select(ctx context.Context) (tag.UID, error) {
	m.calls = append(m.calls, Call{Op: tag.OpSelect})
	if m.selectErr != nil {
		return tag.UID{}, m.selectErr
	}
	return m.uid, nil
}

// ReadBlock implements tag.Transport.
func (m *Tag) ReadBlock(ctx context.Context, addr tag.Addr) (tag.Block, error) {
	c := Call{Op: tag.OpRead, Addr: addr}
	if err := m.check(addr); err != nil {
		m.calls = append(m.calls, c)
		return tag.Block{}, err
	}
	if err := m.readFaults[addr]; err != nil {
		m.calls = append(m.calls, c)
		return tag.Block{}, err
	}
	c.Data = m.blocks[addr]
	m.calls = append(m.calls, c)
	return c.Data, nil
}

// WriteBlock implements tag.Transport.
func (m *Tag) WriteBlock(ctx context.Context, addr tag.Addr, data tag.Block) error {
	m.calls = append(m.calls, Call{Op: tag.OpWrite, Addr: addr, Data: data})
	if err := m.check(addr); err != nil {
		return err
	}
	if err := m.writeFaults[addr]; err != nil {
		return err
	}
	m.blocks[addr] = data
	return nil
}

func (m *Tag) check(addr tag.Addr) error {
	if addr < 0 || int(addr) >= len(m.blocks) || !m.layout.IsMapped(addr) {
		return fmt.Errorf("%w %s", ErrNoStorage, addr)
	}
	return nil
}

// FailSelect makes Select return err. A nil err clears the fault.
func (m *Tag) FailSelect(err error) {
	m.selectErr = err
}

// FailRead makes ReadBlock(addr) return err. A nil err clears the fault.
func (m *Tag) FailRead(addr tag.Addr, err error) {
	if err == nil {
		delete(m.readFaults, addr)
		return
	}
	m.readFaults[addr] = err
}

// FailWrite makes WriteBlock(addr) return err without storing. A nil err
// clears the fault.
func (m *Tag) FailWrite(addr tag.Addr, err error) {
	if err == nil {
		delete(m.writeFaults, addr)
		return
	}
	m.writeFaults[addr] = err
}

// ClearFaults removes every injected fault.
func (m *Tag) ClearFaults() {
	m.selectErr = nil
	clear(m.readFaults)
	clear(m.writeFaults)
}

// Peek returns the stored block without recording a call.
func (m *Tag) Peek(addr tag.Addr) tag.Block {
	return m.blocks[addr]
}

// Poke stores a block without recording a call.
func (m *Tag) Poke(addr tag.Addr, data tag.Block) {
	m.blocks[addr] = data
}

// Calls returns a copy of every recorded call.
func (m *Tag) Calls() []Call {
	out := make([]Call, len(m.calls))
	copy(out, m.calls)
	return out
}

// Writes returns the addresses of recorded WriteBlock calls, in call order.
func (m *Tag) Writes() []tag.Addr {
	return m.addrs(tag.OpWrite)
}

// Reads returns the addresses of recorded ReadBlock calls, in call order.
func (m *Tag) Reads() []tag.Addr {
	return m.addrs(tag.OpRead)
}

func (m *Tag) addrs(op tag.Op) []tag.Addr {
	var out []tag.Addr
	for _, c := range m.calls {
		if c.Op == op {
			out = append(out, c.Addr)
		}
	}
	return out
}

// ResetCalls forgets every recorded call.
func (m *Tag) ResetCalls() {
	m.calls = m.calls[:0]
}
