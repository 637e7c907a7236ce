package pkgarchive

import (
	"bytes"
	"testing"

	"github.com/joshuapare/lsartifact/internal/bio"
	"github.com/joshuapare/lsartifact/internal/format"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type solidEntryFixture struct {
	path             string
	offset           uint32
	sizeOnDisk       uint32
	uncompressedSize uint32
}

// buildSolidPKG assembles a PKG whose flags mark it solid, with leading
// bytes at the very start of the stream (where a solid archive's single LZ4
// frame lives) and a normal LZ4-block file table describing entries.
func buildSolidPKG(t *testing.T, leading []byte, entries []solidEntryFixture) []byte {
	t.Helper()

	var tableRaw bytes.Buffer
	tw := bio.NewWriter(&tableRaw)
	for _, e := range entries {
		require.NoError(t, tw.WriteUTF8Fixed(e.path, 256))
		require.NoError(t, tw.WriteU32(e.offset))
		require.NoError(t, tw.WriteU32(e.sizeOnDisk))
		require.NoError(t, tw.WriteU32(e.uncompressedSize))
		require.NoError(t, tw.WriteU32(0)) // part index
		require.NoError(t, tw.WriteU32(0)) // flags
		require.NoError(t, tw.WriteU32(0)) // crc, unchecked
	}

	compressed := make([]byte, lz4.CompressBlockBound(tableRaw.Len()))
	n, err := lz4.CompressBlock(tableRaw.Bytes(), compressed, nil)
	require.NoError(t, err)
	require.Greater(t, n, 0)
	compressed = compressed[:n]

	var out bytes.Buffer
	w := bio.NewWriter(&out)
	require.NoError(t, w.WriteBytes(leading))

	fileTableOffset := out.Len()
	require.NoError(t, w.WriteI32(int32(len(entries))))
	require.NoError(t, w.WriteBytes(compressed))
	fileTableSize := out.Len() - fileTableOffset

	require.NoError(t, w.WriteU32(uint32(V13)))
	require.NoError(t, w.WriteU32(uint32(fileTableOffset)))
	require.NoError(t, w.WriteU32(uint32(fileTableSize)))
	require.NoError(t, w.WriteU16(1)) // part count
	require.NoError(t, w.WriteU8(FlagsSolid))
	require.NoError(t, w.WriteU8(0)) // priority
	require.NoError(t, w.WriteBytes(make([]byte, 16)))

	require.NoError(t, w.WriteI32(40))
	require.NoError(t, w.WriteBytes(Signature[:]))

	return out.Bytes()
}

// TestReadFileTableSolidRejectsNonContiguousOffsets reproduces the literal
// "three entries, sizes 100/200/300, first_offset=7" scenario: the recorded
// per-entry sizes (600) never equal last_offset-first_offset (300) for a
// contiguous 100/200/300 packing, so the solid-archive contiguity invariant
// — shared byte-for-byte with the original implementation — always rejects
// it, regardless of the frame's actual contents.
func TestReadFileTableSolidRejectsNonContiguousOffsets(t *testing.T) {
	entries := []solidEntryFixture{
		{path: "a.bin", offset: 7, sizeOnDisk: 100, uncompressedSize: 100},
		{path: "b.bin", offset: 107, sizeOnDisk: 200, uncompressedSize: 200},
		{path: "c.bin", offset: 307, sizeOnDisk: 300, uncompressedSize: 300},
	}
	raw := buildSolidPKG(t, nil, entries)
	rs := bytes.NewReader(raw)

	header, err := ReadHeader(rs)
	require.NoError(t, err)
	require.True(t, header.IsSolid())

	_, err = ReadFileTable(rs, header)
	require.Error(t, err)
	var ferr *format.Error
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, format.KindFileTable, ferr.Kind)
	assert.Contains(t, ferr.Msg, "not contiguous from byte 7")
}

// TestReadFileTableSolidRejectsNonSevenFirstOffset covers the other half of
// the contiguity invariant: any first_offset other than 7 is rejected
// before the frame is ever touched.
func TestReadFileTableSolidRejectsNonSevenFirstOffset(t *testing.T) {
	entries := []solidEntryFixture{
		{path: "a.bin", offset: 0, sizeOnDisk: 0, uncompressedSize: 0},
	}
	raw := buildSolidPKG(t, nil, entries)
	rs := bytes.NewReader(raw)

	header, err := ReadHeader(rs)
	require.NoError(t, err)

	_, err = ReadFileTable(rs, header)
	require.Error(t, err)
	var ferr *format.Error
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, format.KindFileTable, ferr.Kind)
}

// TestReadFileTableSolidRejectsFramePositionMismatch builds a case that
// passes the contiguity invariant (sizes are derived from the actual
// compressed frame length, so last_offset-first_offset always equals their
// sum) but whose second entry claims a frame offset the decompressed
// cursor never reaches, exercising the independent per-entry position
// check.
func TestReadFileTableSolidRejectsFramePositionMismatch(t *testing.T) {
	content := bytes.Repeat([]byte("a"), 4096)
	var frameBuf bytes.Buffer
	fw := lz4.NewWriter(&frameBuf)
	_, err := fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, fw.Close())
	frame := frameBuf.Bytes()

	lastOffset := uint32(len(frame))
	const firstOffset = uint32(7)
	// The frame header alone (magic + descriptor) occupies the first 7
	// bytes, and a real frame always carries at least a block header and an
	// end mark beyond that, so this comfortably holds for any non-trivial
	// content.
	require.GreaterOrEqual(t, lastOffset, firstOffset+7)

	entries := []solidEntryFixture{
		// uncompressedSize 0 on both entries means neither actually consumes
		// frame bytes, so this only needs the frame to exist and decompress,
		// not to be long enough to satisfy a real read.
		{path: "a.bin", offset: firstOffset, sizeOnDisk: lastOffset - firstOffset, uncompressedSize: 0},
		{path: "b.bin", offset: lastOffset, sizeOnDisk: 0, uncompressedSize: 0},
	}
	raw := buildSolidPKG(t, frame, entries)
	rs := bytes.NewReader(raw)

	header, err := ReadHeader(rs)
	require.NoError(t, err)
	require.True(t, header.IsSolid())

	_, err = ReadFileTable(rs, header)
	require.Error(t, err)
	var ferr *format.Error
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, format.KindFileTable, ferr.Kind)
	assert.Contains(t, ferr.Msg, "does not match frame position")
}
