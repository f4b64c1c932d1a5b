package tag

import (
	"context"
	"log/slog"
)

// Session is a connected tag: one Transport plus the UID read at connect time.
// It is the only type in this module that calls into a Transport.
//
// NOT thread-safe. Only one goroutine should use it at a time.
type Session struct {
	t      Transport
	layout Layout
	uid    UID
	log    *slog.Logger
}

// Connect selects the tag through t and keeps its UID.
//
// A failed selection returns *ConnectError wrapping a *TransportError with
// OpSelect. There is no retry at this layer. A nil logger discards output.
func Connect(ctx context.Context, t Transport, layout Layout, log *slog.Logger) (*Session, error) {
	if err := layout.Validate(); err != nil {
		return nil, &ConnectError{Stage: StageSelect, Err: err}
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	log.Debug("selecting tag")
	if err := ctx.Err(); err != nil {
		return nil, &ConnectError{Stage: StageSelect, Err: &TransportError{Op: OpSelect, Err: err}}
	}
	uid, err := t.Select(ctx)
	if err != nil {
		return nil, &ConnectError{Stage: StageSelect, Err: &TransportError{Op: OpSelect, Err: err}}
	}
	log.Info("tag selected", "uid", uid.String())

	return &Session{
		t:      t,
		layout: layout,
		uid:    uid,
		log:    log,
	}, nil
}

// UID returns the identifier read at connect time.
func (s *Session) UID() UID {
	return s.uid
}

// Layout returns the address layout the session validates against.
func (s *Session) Layout() Layout {
	return s.layout
}

// ReadBlock reads one block from the tag.
//
// The address is validated first; an invalid address fails with
// ErrOutOfRange and nothing is sent to the transport.
func (s *Session) ReadBlock(ctx context.Context, addr Addr) (Block, error) {
	if err := s.layout.Check(addr); err != nil {
		return Block{}, err
	}
	if err := ctx.Err(); err != nil {
		return Block{}, &TransportError{Op: OpRead, Addr: addr, Err: err}
	}
	b, err := s.t.ReadBlock(ctx, addr)
	if err != nil {
		s.log.Debug("read failed", "addr", addr.String(), "err", err)
		return Block{}, &TransportError{Op: OpRead, Addr: addr, Err: err}
	}
	s.log.Debug("read block", "addr", addr.String(), "data", b.String())
	return b, nil
}

// WriteBlock writes one block to the tag. Same contract as ReadBlock.
func (s *Session) WriteBlock(ctx context.Context, addr Addr, data Block) error {
	if err := s.layout.Check(addr); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return &TransportError{Op: OpWrite, Addr: addr, Err: err}
	}
	s.log.Debug("writing block", "addr", addr.String(), "data", data.String())
	if err := s.t.WriteBlock(ctx, addr, data); err != nil {
		s.log.Debug("write failed", "addr", addr.String(), "err", err)
		return &TransportError{Op: OpWrite, Addr: addr, Err: err}
	}
	return nil
}
