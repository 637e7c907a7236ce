package tbt

import (
	"bytes"
	"testing"

	"github.com/joshuapare/lsartifact/internal/bio"
	"github.com/joshuapare/lsartifact/internal/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildTBTWithTranslatedString builds a minimal BG3 (LSFM) document with a
// single root region node carrying one type-28 TranslatedString attribute,
// whose raw bytes are supplied by the caller so both branches of the
// probe-and-rewind logic in readTranslatedString can be exercised.
func buildTBTWithTranslatedString(t *testing.T, attrPayload []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := bio.NewWriter(&buf)

	require.NoError(t, w.WriteBytes([]byte{0x4D, 0x46, 0x53, 0x4C}))
	require.NoError(t, w.WriteU32(0)) // total_size
	require.NoError(t, w.WriteU32(0)) // big_endian flag
	require.NoError(t, w.WriteU32(0)) // unknown

	require.NoError(t, w.WriteU64(0)) // timestamp
	for i := 0; i < 4; i++ {
		require.NoError(t, w.WriteU32(0))
	}

	require.NoError(t, w.WriteU32(2)) // string_count
	require.NoError(t, w.WriteI32(4))
	require.NoError(t, w.WriteBytes([]byte("Root")))
	require.NoError(t, w.WriteU32(0))
	require.NoError(t, w.WriteI32(3))
	require.NoError(t, w.WriteBytes([]byte("msg")))
	require.NoError(t, w.WriteU32(1))

	require.NoError(t, w.WriteU32(1)) // region_count
	require.NoError(t, w.WriteU32(0)) // region_name_id -> "Root"
	nodeOffset := buf.Len() + 4
	require.NoError(t, w.WriteU32(uint32(nodeOffset)))
	require.Equal(t, nodeOffset, buf.Len())

	require.NoError(t, w.WriteU32(0)) // node_name_id "Root"
	require.NoError(t, w.WriteU32(1)) // attribute_count
	require.NoError(t, w.WriteU32(0)) // child_count

	require.NoError(t, w.WriteU32(1))  // attr_name_id "msg"
	require.NoError(t, w.WriteU32(28)) // type id 28 == TranslatedString
	require.NoError(t, w.WriteBytes(attrPayload))

	return buf.Bytes()
}

// TestReadTranslatedStringProbeRewindsToEmptyInlineValue covers the branch
// where the four bytes following the version field read as zero: the stream
// rewinds and re-reads them as the inline value's length prefix, which is
// therefore always zero in this branch.
func TestReadTranslatedStringProbeRewindsToEmptyInlineValue(t *testing.T) {
	var payload bytes.Buffer
	w := bio.NewWriter(&payload)
	require.NoError(t, w.WriteU16(0)) // version placeholder, overwritten to 0
	require.NoError(t, w.WriteU32(0)) // probe sentinel, reread as length=0
	require.NoError(t, w.WriteI32(5)) // handle length
	require.NoError(t, w.WriteBytes([]byte("world")))

	raw := buildTBTWithTranslatedString(t, payload.Bytes())
	doc, err := Read(bytes.NewReader(raw))
	require.NoError(t, err)

	root := doc.RootIndexes()[0]
	attr, ok := doc.Value(root).Attributes.Get("msg")
	require.True(t, ok)
	ts, ok := attr.Value.(value.TranslatedString)
	require.True(t, ok)
	assert.Equal(t, uint16(0), ts.Version)
	assert.Equal(t, "", ts.Value)
	assert.Equal(t, "world", ts.Handle)
}

// TestReadTranslatedStringProbeKeepsVersionedHandle covers the branch where
// the probed four bytes are non-zero: only two of them are consumed by the
// probe, so the remaining two plus the next two bytes on the wire form the
// handle length that follows.
func TestReadTranslatedStringProbeKeepsVersionedHandle(t *testing.T) {
	payload := []byte{
		0x01, 0x00, // version = 1
		0xAB, 0xCD, 0x01, 0x00, // non-zero probe; trailing [01 00] feeds handle length
		0x00, 0x00, // completes handle length as 1 (little-endian 01 00 00 00)
		'H', // handle "H"
	}

	raw := buildTBTWithTranslatedString(t, payload)
	doc, err := Read(bytes.NewReader(raw))
	require.NoError(t, err)

	root := doc.RootIndexes()[0]
	attr, ok := doc.Value(root).Attributes.Get("msg")
	require.True(t, ok)
	ts, ok := attr.Value.(value.TranslatedString)
	require.True(t, ok)
	assert.Equal(t, uint16(1), ts.Version)
	assert.Equal(t, "", ts.Value)
	assert.Equal(t, "H", ts.Handle)
}
