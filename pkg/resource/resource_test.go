package resource

import (
	"bytes"
	"testing"

	"github.com/joshuapare/lsartifact/internal/bio"
	"github.com/joshuapare/lsartifact/internal/diagnostics"
	"github.com/joshuapare/lsartifact/internal/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildMinimalTBT(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := bio.NewWriter(&buf)

	require.NoError(t, w.WriteBytes([]byte{0x4D, 0x46, 0x53, 0x4C}))
	require.NoError(t, w.WriteU32(0))
	require.NoError(t, w.WriteU32(0))
	require.NoError(t, w.WriteU32(0))

	require.NoError(t, w.WriteU64(0))
	for i := 0; i < 4; i++ {
		require.NoError(t, w.WriteU32(0))
	}

	require.NoError(t, w.WriteU32(2))
	require.NoError(t, w.WriteI32(4))
	require.NoError(t, w.WriteBytes([]byte("Root")))
	require.NoError(t, w.WriteU32(0))
	require.NoError(t, w.WriteI32(4))
	require.NoError(t, w.WriteBytes([]byte("Item")))
	require.NoError(t, w.WriteU32(1))

	require.NoError(t, w.WriteU32(1))
	require.NoError(t, w.WriteU32(0))
	nodeOffset := buf.Len() + 4
	require.NoError(t, w.WriteU32(uint32(nodeOffset)))
	require.Equal(t, nodeOffset, buf.Len())

	require.NoError(t, w.WriteU32(0)) // node_name_id "Root"
	require.NoError(t, w.WriteU32(0)) // attribute_count
	require.NoError(t, w.WriteU32(1)) // child_count

	require.NoError(t, w.WriteU32(1)) // node_name_id "Item"
	require.NoError(t, w.WriteU32(1)) // attribute_count
	require.NoError(t, w.WriteU32(0)) // child_count

	require.NoError(t, w.WriteU32(1)) // attr_name_id "Item"
	require.NoError(t, w.WriteU32(5)) // type id 5 == UInt
	require.NoError(t, w.WriteU32(7))

	return buf.Bytes()
}

func TestOpenTBT(t *testing.T) {
	raw := buildMinimalTBT(t)
	res, err := OpenTBT(bytes.NewReader(raw), DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, KindTBT, res.Kind)

	require.Len(t, res.Doc.RootIndexes(), 1)
	root := res.Doc.RootIndexes()[0]
	children := res.Doc.Children(root)
	require.Len(t, children, 1)

	v, ok := res.ResolveAttributeValue(root, "/Item/Item")
	require.True(t, ok)
	assert.Equal(t, value.UInt(7), v)
}

func TestOpenTBTRecordsDiagnosticsOnLowLimits(t *testing.T) {
	raw := buildMinimalTBT(t)
	report := diagnostics.New()
	opts := Options{MaxNodeCount: 1, Diagnostics: report}

	res, err := OpenTBT(bytes.NewReader(raw), opts)
	require.NoError(t, err)
	assert.NotNil(t, res)
	assert.True(t, report.HasIssues())
}

func TestOpenTBTNilDiagnosticsIsNoop(t *testing.T) {
	raw := buildMinimalTBT(t)
	opts := Options{MaxNodeCount: 1}
	_, err := OpenTBT(bytes.NewReader(raw), opts)
	require.NoError(t, err)
}
