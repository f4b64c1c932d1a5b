package tag_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/srixkit/tag"
	"github.com/joshuapare/srixkit/transport/memtag"
)

var testUID = tag.UID{0x44, 0x33, 0x22, 0x11, 0x00, 0x1A, 0x02, 0xD0}

func TestConnect_KeepsUID(t *testing.T) {
	mt := memtag.New(testUID)

	s, err := tag.Connect(context.Background(), mt, tag.SRIX4K, nil)
	require.NoError(t, err)
	require.Equal(t, testUID, s.UID())
	require.Equal(t, tag.SRIX4K, s.Layout())

	// UID is cached: no further selects.
	_ = s.UID()
	require.Len(t, mt.Calls(), 1)
}

func TestConnect_SelectFailure(t *testing.T) {
	mt := memtag.New(testUID)
	boom := errors.New("no tag in field")
	mt.FailSelect(boom)

	s, err := tag.Connect(context.Background(), mt, tag.SRIX4K, nil)
	require.Nil(t, s)

	var ce *tag.ConnectError
	require.ErrorAs(t, err, &ce)
	require.Equal(t, tag.StageSelect, ce.Stage)

	var te *tag.TransportError
	require.ErrorAs(t, err, &te)
	require.Equal(t, tag.OpSelect, te.Op)
	require.ErrorIs(t, err, boom)
}

func TestConnect_CancelledContext(t *testing.T) {
	mt := memtag.New(testUID)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := tag.Connect(ctx, mt, tag.SRIX4K, nil)
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, mt.Calls())
}

func TestSession_ReadWrite(t *testing.T) {
	ctx := context.Background()
	mt := memtag.New(testUID)
	s, err := tag.Connect(ctx, mt, tag.SRIX4K, nil)
	require.NoError(t, err)

	require.NoError(t, s.WriteBlock(ctx, 0x20, tag.BlockFromUint32(0xCAFEBABE)))
	b, err := s.ReadBlock(ctx, 0x20)
	require.NoError(t, err)
	require.Equal(t, uint32(0xCAFEBABE), b.Uint32())
}

func TestSession_OutOfRangeBeforeIO(t *testing.T) {
	ctx := context.Background()
	mt := memtag.New(testUID)
	s, err := tag.Connect(ctx, mt, tag.SRIX4K, nil)
	require.NoError(t, err)
	mt.ResetCalls()

	for _, addr := range []tag.Addr{-1, 0x80, 0xFE, 0x100} {
		_, err := s.ReadBlock(ctx, addr)
		require.ErrorIs(t, err, tag.ErrOutOfRange, "read %v", addr)

		err = s.WriteBlock(ctx, addr, tag.Block{})
		require.ErrorIs(t, err, tag.ErrOutOfRange, "write %v", addr)

		var te *tag.TransportError
		require.False(t, errors.As(err, &te), "OutOfRange must not wrap a transport error")
	}
	require.Empty(t, mt.Calls(), "no transport call may happen for invalid addresses")
}

func TestSession_TransportErrorCarriesAddress(t *testing.T) {
	ctx := context.Background()
	mt := memtag.New(testUID)
	s, err := tag.Connect(ctx, mt, tag.SRIX4K, nil)
	require.NoError(t, err)

	boom := errors.New("crc mismatch")
	mt.FailRead(0x11, boom)
	mt.FailWrite(0x12, boom)

	_, err = s.ReadBlock(ctx, 0x11)
	var te *tag.TransportError
	require.ErrorAs(t, err, &te)
	require.Equal(t, tag.OpRead, te.Op)
	require.Equal(t, tag.Addr(0x11), te.Addr)

	err = s.WriteBlock(ctx, 0x12, tag.Block{})
	require.ErrorAs(t, err, &te)
	require.Equal(t, tag.OpWrite, te.Op)
	require.Equal(t, tag.Addr(0x12), te.Addr)
	require.ErrorIs(t, err, boom)
}
