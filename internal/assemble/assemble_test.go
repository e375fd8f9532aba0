package assemble

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dchen116/nrrd/internal/format"
)

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func gzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err := gz.Write(data)
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	return buf.Bytes()
}

func TestAssembleRawAttached(t *testing.T) {
	t.Parallel()

	header := []byte("NRRD0004\ntype: uchar\n\n")
	payload := []byte{1, 2, 3, 4, 5, 6}
	path := writeFile(t, t.TempDir(), "a.nrrd", append(append([]byte(nil), header...), payload...))

	dst := make([]byte, 6)
	plans := []Plan{{Path: path, Base: int64(len(header)), Width: 1, Elements: 6}}
	require.NoError(t, Assemble(context.Background(), plans, dst, nil))
	assert.Equal(t, payload, dst)
}

func TestAssembleBigEndian(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "be.raw", []byte{0x01, 0x00, 0x00, 0x02})
	dst := make([]byte, 4)
	plans := []Plan{{Path: path, Width: 2, Elements: 2, Endian: format.EndianBig}}
	require.NoError(t, Assemble(context.Background(), plans, dst, nil))
	assert.Equal(t, []byte{0x00, 0x01, 0x02, 0x00}, dst)
}

func TestAssembleLineAndByteSkip(t *testing.T) {
	t.Parallel()

	data := []byte("line one\nline two\nXX\x07\x08\x09")
	path := writeFile(t, t.TempDir(), "skip.raw", data)

	dst := make([]byte, 3)
	plans := []Plan{{Path: path, LineSkip: 2, ByteSkip: 2, Width: 1, Elements: 3}}
	require.NoError(t, Assemble(context.Background(), plans, dst, nil))
	assert.Equal(t, []byte{7, 8, 9}, dst)
}

func TestAssembleNegativeByteSkip(t *testing.T) {
	t.Parallel()

	data := []byte("arbitrary preamble of unknown length\x0a\x0b\x0c\x0d")
	path := writeFile(t, t.TempDir(), "tail.raw", data)

	dst := make([]byte, 4)
	plans := []Plan{{Path: path, ByteSkip: -1, Width: 2, Elements: 2}}
	require.NoError(t, Assemble(context.Background(), plans, dst, nil))
	assert.Equal(t, []byte{0x0a, 0x0b, 0x0c, 0x0d}, dst)
}

func TestReadOffset(t *testing.T) {
	t.Parallel()

	off, err := readOffset(10, 1000, 5, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(15), off)

	off, err = readOffset(10, 1000, -1, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(900), off)

	_, err = readOffset(0, 50, -1, 100)
	assert.Error(t, err)
}

func TestAssembleGzipAttached(t *testing.T) {
	t.Parallel()

	header := []byte("NRRD0004\nencoding: gzip\n\n")
	payload := []byte{0, 1, 0, 2, 0, 3, 0, 4}
	file := append(append([]byte(nil), header...), gzipBytes(t, append([]byte{0xAA, 0xBB}, payload...))...)
	dir := t.TempDir()
	path := writeFile(t, dir, "g.nrrd", file)

	dst := make([]byte, len(payload))
	plans := []Plan{{
		Path:     path,
		Base:     int64(len(header)),
		ByteSkip: 2, // applied after decompression
		Encoding: format.EncodingGzip,
		Endian:   format.EndianBig,
		Width:    2,
		Elements: 4,
	}}
	require.NoError(t, Assemble(context.Background(), plans, dst, &Options{TempDir: dir}))
	assert.Equal(t, []byte{1, 0, 2, 0, 3, 0, 4, 0}, dst)

	// the inflated temp file is gone
	left, err := filepath.Glob(filepath.Join(dir, "nrrd-slab-*"))
	require.NoError(t, err)
	assert.Empty(t, left)
}

func TestAssembleGzipLineSkipBeforeInflate(t *testing.T) {
	t.Parallel()

	payload := []byte{9, 8, 7}
	file := append([]byte("text preamble\n"), gzipBytes(t, payload)...)
	path := writeFile(t, t.TempDir(), "g.raw.gz", file)

	dst := make([]byte, 3)
	plans := []Plan{{Path: path, LineSkip: 1, Encoding: format.EncodingGzip, Width: 1, Elements: 3}}
	require.NoError(t, Assemble(context.Background(), plans, dst, nil))
	assert.Equal(t, payload, dst)
}

func TestAssembleSlabsInOrder(t *testing.T) {
	t.Parallel()

	for _, workers := range []int{1, 3} {
		dir := t.TempDir()
		var plans []Plan
		for i := range 5 {
			path := writeFile(t, dir, filepath.Base(t.Name())+string(rune('a'+i)), []byte{byte(i), byte(i + 10)})
			plans = append(plans, Plan{Path: path, Width: 1, Elements: 2, Dest: int64(i * 2)})
		}
		dst := make([]byte, 10)
		require.NoError(t, Assemble(context.Background(), plans, dst, &Options{Workers: workers}))
		assert.Equal(t, []byte{0, 10, 1, 11, 2, 12, 3, 13, 4, 14}, dst, "workers=%d", workers)
	}
}

func TestAssembleErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	short := writeFile(t, dir, "short.raw", []byte{1, 2})
	corrupt := writeFile(t, dir, "bad.gz", []byte("definitely not gzip"))
	good := writeFile(t, dir, "good.raw", []byte{1, 2, 3, 4})

	tests := []struct {
		name string
		plan Plan
	}{
		{"missing file", Plan{Path: filepath.Join(dir, "nope.raw"), Width: 1, Elements: 1}},
		{"short read", Plan{Path: short, Width: 1, Elements: 4}},
		{"short tail", Plan{Path: short, ByteSkip: -1, Width: 1, Elements: 4}},
		{"corrupt gzip", Plan{Path: corrupt, Encoding: format.EncodingGzip, Width: 1, Elements: 1}},
		{"too many lines", Plan{Path: good, LineSkip: 3, Width: 1, Elements: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			dst := make([]byte, tt.plan.Size())
			err := Assemble(context.Background(), []Plan{tt.plan}, dst, &Options{TempDir: dir})
			assert.ErrorIs(t, err, format.ErrIO)
		})
	}
}

func TestAssembleFailureAbortsVolume(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	good := writeFile(t, dir, "ok.raw", []byte{1})
	plans := []Plan{
		{Path: good, Width: 1, Elements: 1},
		{Path: filepath.Join(dir, "gone.raw"), Width: 1, Elements: 1, Dest: 1},
		{Path: good, Width: 1, Elements: 1, Dest: 2},
	}
	err := Assemble(context.Background(), plans, make([]byte, 3), &Options{Workers: 2})
	assert.ErrorIs(t, err, format.ErrIO)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestAssembleDestinationOutOfRange(t *testing.T) {
	t.Parallel()

	plans := []Plan{{Path: "unused", Width: 2, Elements: 4, Dest: 2}}
	assert.Error(t, Assemble(context.Background(), plans, make([]byte, 8), nil))
}

func TestAssembleCancelled(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "c.raw", []byte{1})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	plans := []Plan{{Path: path, Width: 1, Elements: 1}, {Path: path, Width: 1, Elements: 1, Dest: 1}}
	err := Assemble(ctx, plans, make([]byte, 2), nil)
	assert.ErrorIs(t, err, context.Canceled)
}
