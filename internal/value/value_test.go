package value

import (
	"bytes"
	"testing"

	"github.com/joshuapare/lsartifact/internal/bio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadScalars(t *testing.T) {
	r := bio.NewReader(bytes.NewReader([]byte{0x2A}))
	v, err := Read(r, 1)
	require.NoError(t, err)
	assert.Equal(t, Byte(0x2A), v)
	assert.Equal(t, uint32(1), v.TypeID())
	assert.Equal(t, 1, v.Length())

	r = bio.NewReader(bytes.NewReader([]byte{0x01}))
	v, err = Read(r, 19)
	require.NoError(t, err)
	assert.Equal(t, Bool(true), v)
}

func TestReadVec3(t *testing.T) {
	buf := []byte{
		0x00, 0x00, 0x80, 0x3F, // 1.0
		0x00, 0x00, 0x00, 0x40, // 2.0
		0x00, 0x00, 0x40, 0x40, // 3.0
	}
	r := bio.NewReader(bytes.NewReader(buf))
	v, err := Read(r, 12)
	require.NoError(t, err)
	assert.Equal(t, Vec3{1, 2, 3}, v)
	assert.Equal(t, 12, v.Length())
}

func TestReadMat3x4Layout(t *testing.T) {
	// 4 rows of 3 floats: row i is [i*3, i*3+1, i*3+2].
	var out bytesBuf
	w := bio.NewWriter(&out)
	for i := float32(0); i < 12; i++ {
		require.NoError(t, w.WriteF32(i))
	}
	r := bio.NewReader(bytes.NewReader(out.b))
	v, err := Read(r, 16)
	require.NoError(t, err)
	want := Mat3x4{
		{0, 1, 2},
		{3, 4, 5},
		{6, 7, 8},
		{9, 10, 11},
	}
	assert.Equal(t, want, v)
}

func TestInvalidTypeID(t *testing.T) {
	r := bio.NewReader(bytes.NewReader(nil))
	_, err := Read(r, 20)
	require.Error(t, err)
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(Int(5), Int(5)))
	assert.False(t, Equal(Int(5), Int(6)))
	assert.False(t, Equal(Int(5), UInt(5)))
	assert.True(t, Equal(ScratchBuffer{1, 2, 3}, ScratchBuffer{1, 2, 3}))
}

type bytesBuf struct{ b []byte }

func (b *bytesBuf) Write(p []byte) (int, error) {
	b.b = append(b.b, p...)
	return len(p), nil
}
