package hbt

import (
	"bytes"
	"testing"

	"github.com/joshuapare/lsartifact/internal/bio"
	"github.com/joshuapare/lsartifact/internal/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildTranslatedFsStringHBT builds a V6 sibling-layout document whose one
// node carries a single type-33 TranslatedFsString attribute with one
// nested argument, exercising readTranslatedFsString's self-recursion.
func buildTranslatedFsStringHBT(t *testing.T) []byte {
	t.Helper()

	var strs bytes.Buffer
	sw := bio.NewWriter(&strs)
	require.NoError(t, sw.WriteU32(1)) // one hash bucket
	require.NoError(t, sw.WriteU16(2)) // two strings in it
	require.NoError(t, sw.WriteU16(4))
	require.NoError(t, sw.WriteBytes([]byte("Root")))
	require.NoError(t, sw.WriteU16(3))
	require.NoError(t, sw.WriteBytes([]byte("msg")))

	var values bytes.Buffer
	vw := bio.NewWriter(&values)
	require.NoError(t, vw.WriteU16(1)) // outer version (>=V4, handle-only form)
	require.NoError(t, vw.WriteI32(4))
	require.NoError(t, vw.WriteBytes([]byte("root"))) // outer handle
	require.NoError(t, vw.WriteI32(1))                // one argument
	require.NoError(t, vw.WriteI32(3))
	require.NoError(t, vw.WriteBytes([]byte("key"))) // argument key
	require.NoError(t, vw.WriteU16(2))               // nested version
	require.NoError(t, vw.WriteI32(4))
	require.NoError(t, vw.WriteBytes([]byte("leaf"))) // nested handle
	require.NoError(t, vw.WriteI32(0))                // nested argument count
	require.NoError(t, vw.WriteI32(5))
	require.NoError(t, vw.WriteBytes([]byte("value"))) // argument value

	var attrs bytes.Buffer
	aw := bio.NewWriter(&attrs)
	typeAndLength := uint32(values.Len())<<6 | 33 // type id 33 (TranslatedFsString)
	require.NoError(t, aw.WriteU32(1))             // name hash: bucket 0 offset 1 ("msg")
	require.NoError(t, aw.WriteU32(typeAndLength))
	require.NoError(t, aw.WriteI32(-1)) // next attribute
	require.NoError(t, aw.WriteU32(0))  // data offset

	var nodes bytes.Buffer
	nw := bio.NewWriter(&nodes)
	require.NoError(t, nw.WriteU32(0))  // name hash: bucket 0 offset 0 ("Root")
	require.NoError(t, nw.WriteI32(-1)) // parent
	require.NoError(t, nw.WriteI32(-1)) // next sibling, unused
	require.NoError(t, nw.WriteI32(0))  // first attribute

	var out bytes.Buffer
	w := bio.NewWriter(&out)
	require.NoError(t, w.WriteBytes(Signature[:]))
	require.NoError(t, w.WriteU32(6)) // version V6
	require.NoError(t, w.WriteI64(0)) // engine version
	require.NoError(t, w.WriteU32(uint32(strs.Len())))
	require.NoError(t, w.WriteU32(uint32(strs.Len())))
	require.NoError(t, w.WriteU64(0)) // unknown1, V6 only
	require.NoError(t, w.WriteU32(uint32(nodes.Len())))
	require.NoError(t, w.WriteU32(uint32(nodes.Len())))
	require.NoError(t, w.WriteU32(uint32(attrs.Len())))
	require.NoError(t, w.WriteU32(uint32(attrs.Len())))
	require.NoError(t, w.WriteU32(uint32(values.Len())))
	require.NoError(t, w.WriteU32(uint32(values.Len())))
	require.NoError(t, w.WriteU8(0))  // compression flags: none
	require.NoError(t, w.WriteU8(0))  // unknown2
	require.NoError(t, w.WriteU16(0)) // unknown3
	require.NoError(t, w.WriteU32(1)) // has_sibling_data

	require.NoError(t, w.WriteBytes(strs.Bytes()))
	require.NoError(t, w.WriteBytes(nodes.Bytes()))
	require.NoError(t, w.WriteBytes(attrs.Bytes()))
	require.NoError(t, w.WriteBytes(values.Bytes()))

	return out.Bytes()
}

func TestReadTranslatedFsStringWithNestedArgument(t *testing.T) {
	raw := buildTranslatedFsStringHBT(t)
	doc, err := Read(bytes.NewReader(raw))
	require.NoError(t, err)

	require.Len(t, doc.RootIndexes(), 1)
	root := doc.RootIndexes()[0]

	attr, ok := doc.Value(root).Attributes.Get("msg")
	require.True(t, ok)
	fs, ok := attr.Value.(value.TranslatedFsString)
	require.True(t, ok)

	assert.Equal(t, uint16(1), fs.Version)
	assert.Equal(t, "root", fs.Handle)
	require.Len(t, fs.Arguments, 1)

	arg := fs.Arguments[0]
	assert.Equal(t, "key", arg.Key)
	assert.Equal(t, "value", arg.Value)
	nested, ok := arg.String.(value.TranslatedFsString)
	require.True(t, ok)
	assert.Equal(t, uint16(2), nested.Version)
	assert.Equal(t, "leaf", nested.Handle)
	assert.Empty(t, nested.Arguments)
}
