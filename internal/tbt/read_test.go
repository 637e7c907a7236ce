package tbt

import (
	"bytes"
	"testing"

	"github.com/joshuapare/lsartifact/internal/bio"
	"github.com/joshuapare/lsartifact/internal/document"
	"github.com/joshuapare/lsartifact/internal/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildMinimalTBT(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := bio.NewWriter(&buf)

	// On-disk signature bytes are the reverse of SignatureBG3.
	require.NoError(t, w.WriteBytes([]byte{0x4D, 0x46, 0x53, 0x4C}))
	require.NoError(t, w.WriteU32(0)) // total_size
	require.NoError(t, w.WriteU32(0)) // big_endian flag
	require.NoError(t, w.WriteU32(0)) // unknown

	require.NoError(t, w.WriteU64(0)) // timestamp
	for i := 0; i < 4; i++ {
		require.NoError(t, w.WriteU32(0)) // major/minor/revision/build
	}

	require.NoError(t, w.WriteU32(2)) // string_count
	require.NoError(t, w.WriteI32(4))
	require.NoError(t, w.WriteBytes([]byte("Root")))
	require.NoError(t, w.WriteU32(0))
	require.NoError(t, w.WriteI32(6))
	require.NoError(t, w.WriteBytes([]byte("ChildA")))
	require.NoError(t, w.WriteU32(1))

	require.NoError(t, w.WriteU32(1)) // region_count
	require.NoError(t, w.WriteU32(0)) // region_name_id -> "Root"
	nodeOffset := buf.Len() + 4
	require.NoError(t, w.WriteU32(uint32(nodeOffset)))

	require.Equal(t, nodeOffset, buf.Len())

	require.NoError(t, w.WriteU32(0)) // node_name_id "Root"
	require.NoError(t, w.WriteU32(0)) // attribute_count
	require.NoError(t, w.WriteU32(1)) // child_count

	require.NoError(t, w.WriteU32(1)) // node_name_id "ChildA"
	require.NoError(t, w.WriteU32(1)) // attribute_count
	require.NoError(t, w.WriteU32(0)) // child_count

	require.NoError(t, w.WriteU32(1)) // attr_name_id "ChildA"
	require.NoError(t, w.WriteU32(4)) // type id 4 == Int
	require.NoError(t, w.WriteI32(42))

	return buf.Bytes()
}

func TestReadMinimalDocument(t *testing.T) {
	raw := buildMinimalTBT(t)
	doc, err := Read(bytes.NewReader(raw))
	require.NoError(t, err)

	require.Len(t, doc.RootIndexes(), 1)
	root := doc.RootIndexes()[0]
	rootData := doc.Value(root)
	assert.Equal(t, document.KindRegion, rootData.Kind)
	assert.Equal(t, "Root", rootData.RegionName)
	assert.Equal(t, "Root", rootData.Name)

	children := doc.Children(root)
	require.Len(t, children, 1)
	child := doc.Value(children[0])
	assert.Equal(t, "ChildA", child.Name)

	attr, ok := child.Attributes.Get("ChildA")
	require.True(t, ok)
	assert.Equal(t, value.Int(42), attr.Value)
}
