// Package stream implements tag.Transport over a byte stream to a reader that
// forwards SRIX4K command frames to the tag and returns the raw responses,
// such as a serial-attached reader in transparent mode.
//
// Anticollision, CRC and retries are the reader's job. Every response is read
// with io.ReadFull, so a deadline or timeout on the underlying connection
// surfaces as an ordinary error.
package stream

import (
	"context"
	"fmt"
	"io"

	"github.com/joshuapare/srixkit/internal/format"
	"github.com/joshuapare/srixkit/tag"
)

// Transport sends command frames on rw and reads fixed-size responses.
type Transport struct {
	rw io.ReadWriter
}

// New wraps rw.
func New(rw io.ReadWriter) *Transport {
	return &Transport{rw: rw}
}

// Select sends GET_UID and returns the 8-byte response.
func (t *Transport) Select(ctx context.Context) (tag.UID, error) {
	resp, err := t.transceive(ctx, format.EncodeGetUID(), format.UIDSize)
	if err != nil {
		return tag.UID{}, fmt.Errorf("get uid: %w", err)
	}
	uid, err := format.DecodeUID(resp)
	if err != nil {
		return tag.UID{}, err
	}
	return tag.UID(uid), nil
}

// ReadBlock sends READ_BLOCK and returns the 4-byte response.
func (t *Transport) ReadBlock(ctx context.Context, addr tag.Addr) (tag.Block, error) {
	frame, err := format.EncodeReadBlock(int(addr))
	if err != nil {
		return tag.Block{}, err
	}
	resp, err := t.transceive(ctx, frame, format.BlockSize)
	if err != nil {
		return tag.Block{}, err
	}
	b, err := format.DecodeBlock(resp)
	if err != nil {
		return tag.Block{}, err
	}
	return tag.Block(b), nil
}

// WriteBlock sends WRITE_BLOCK. The tag does not answer a write.
func (t *Transport) WriteBlock(ctx context.Context, addr tag.Addr, data tag.Block) error {
	frame, err := format.EncodeWriteBlock(int(addr), data)
	if err != nil {
		return err
	}
	_, err = t.transceive(ctx, frame, 0)
	return err
}

// Close closes the underlying stream if it is an io.Closer.
func (t *Transport) Close() error {
	if c, ok := t.rw.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (t *Transport) transceive(ctx context.Context, frame []byte, respLen int) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if _, err := t.rw.Write(frame); err != nil {
		return nil, fmt.Errorf("error writing frame: %w", err)
	}
	if respLen == 0 {
		return nil, nil
	}
	resp := make([]byte, respLen)
	if _, err := io.ReadFull(t.rw, resp); err != nil {
		return nil, fmt.Errorf("error reading %d byte response: %w", respLen, err)
	}
	return resp, nil
}
