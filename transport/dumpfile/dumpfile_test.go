package dumpfile_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/srixkit/internal/format"
	"github.com/joshuapare/srixkit/internal/testutil"
	"github.com/joshuapare/srixkit/pkg/srix4k"
	"github.com/joshuapare/srixkit/tag"
	"github.com/joshuapare/srixkit/transport/dumpfile"
)

func TestCreateAndOpen(t *testing.T) {
	path := testutil.SetupTestImage(t)

	st, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, int64(format.ImageSize), st.Size())

	f, err := dumpfile.Open(path)
	require.NoError(t, err)
	defer f.Close()

	uid, err := f.Select(context.Background())
	require.NoError(t, err)
	require.Equal(t, testutil.TestUID, uid)

	b, err := f.ReadBlock(context.Background(), 0x10)
	require.NoError(t, err)
	require.Equal(t, dumpfile.FillErased, b)
	require.Contains(t, f.Name(), path)
}

func TestWritesPersistAcrossReopen(t *testing.T) {
	path := testutil.SetupTestImage(t)
	ctx := context.Background()

	f, err := dumpfile.Open(path)
	require.NoError(t, err)
	require.NoError(t, f.WriteBlock(ctx, 0x05, tag.BlockFromUint32(0x12345678)))
	require.NoError(t, f.WriteBlock(ctx, 0xFF, tag.BlockFromUint32(0x0000FFFF)))
	require.NoError(t, f.Close())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, uint32(0x12345678), format.ReadU32(raw, format.BlockOffset(0x05)))

	f, err = dumpfile.Open(path)
	require.NoError(t, err)
	defer f.Close()
	b, err := f.ReadBlock(ctx, 0xFF)
	require.NoError(t, err)
	require.Equal(t, uint32(0x0000FFFF), b.Uint32())
}

func TestClosedImage(t *testing.T) {
	f, err := dumpfile.Open(testutil.SetupTestImage(t))
	require.NoError(t, err)
	require.NoError(t, f.Close())

	ctx := context.Background()
	_, err = f.Select(ctx)
	require.ErrorIs(t, err, dumpfile.ErrClosed)
	_, err = f.ReadBlock(ctx, 0)
	require.ErrorIs(t, err, dumpfile.ErrClosed)
	require.ErrorIs(t, f.WriteBlock(ctx, 0, tag.Block{}), dumpfile.ErrClosed)
	require.ErrorIs(t, f.Close(), dumpfile.ErrClosed)
}

func TestOpenRejectsBadImages(t *testing.T) {
	dir := t.TempDir()

	short := filepath.Join(dir, "short.srix")
	require.NoError(t, os.WriteFile(short, []byte("SRIX4K"), 0o644))
	_, err := dumpfile.Open(short)
	require.ErrorIs(t, err, format.ErrTruncated)

	img := format.NewImage(testutil.TestUID, dumpfile.FillErased)
	img[0] = 'X'
	badMagic := filepath.Join(dir, "magic.srix")
	require.NoError(t, os.WriteFile(badMagic, img, 0o644))
	_, err = dumpfile.Open(badMagic)
	require.ErrorIs(t, err, format.ErrSignatureMismatch)

	_, err = dumpfile.Open(filepath.Join(dir, "missing.srix"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestOutsideImage(t *testing.T) {
	f := testutil.OpenTestImage(t, testutil.SetupTestImage(t))

	_, err := f.ReadBlock(context.Background(), 0x100)
	require.Error(t, err)
}

func TestCachedSyncOnImage(t *testing.T) {
	path := testutil.SetupTestImage(t)
	ctx := context.Background()

	f, err := dumpfile.Open(path)
	require.NoError(t, err)
	c, err := srix4k.ConnectFrom(ctx, f, nil)
	require.NoError(t, err)
	require.Equal(t, testutil.TestUID, c.UID())

	require.NoError(t, c.EEPROMSet(0x20, tag.BlockFromUint32(0xCAFEBABE)))
	require.NoError(t, c.Sync(ctx))
	require.NoError(t, f.Close())

	c, err = srix4k.ConnectFrom(ctx, testutil.OpenTestImage(t, path), nil)
	require.NoError(t, err)
	b, err := c.EEPROMGet(0x20)
	require.NoError(t, err)
	require.Equal(t, uint32(0xCAFEBABE), b.Uint32())
}
