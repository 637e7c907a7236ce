package bio

import (
	"encoding/binary"
	"io"

	"github.com/joshuapare/lsartifact/internal/format"
)

// Writer mirrors Reader: typed little-endian primitives over an io.Writer.
type Writer struct {
	io.Writer
}

func NewWriter(w io.Writer) *Writer { return &Writer{Writer: w} }

func (w *Writer) WriteBytes(b []byte) error {
	_, err := w.Write(b)
	if err != nil {
		return format.Wrap(format.KindIO, err, "write %d bytes", len(b))
	}
	return nil
}

// WriteUTF8Fixed right-pads value with NULs to exactly n bytes. It fails if
// value is longer than n — the mirror of ReadUTF8Fixed's trim behaviour.
func (w *Writer) WriteUTF8Fixed(value string, n int) error {
	if len(value) > n {
		return format.Errorf(format.KindPath, "value of length %d does not fit in %d-byte field", len(value), n)
	}
	buf := make([]byte, n)
	copy(buf, value)
	return w.WriteBytes(buf)
}

func (w *Writer) WriteU8(v uint8) error  { return w.WriteBytes([]byte{v}) }
func (w *Writer) WriteI8(v int8) error   { return w.WriteU8(uint8(v)) }

func (w *Writer) WriteU16(v uint16) error {
	b := make([]byte, 2)
	binary.LittleEndian.PutUint16(b, v)
	return w.WriteBytes(b)
}

func (w *Writer) WriteU32(v uint32) error {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return w.WriteBytes(b)
}

func (w *Writer) WriteU64(v uint64) error {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, v)
	return w.WriteBytes(b)
}

func (w *Writer) WriteI16(v int16) error { return w.WriteU16(uint16(v)) }
func (w *Writer) WriteI32(v int32) error { return w.WriteU32(uint32(v)) }
func (w *Writer) WriteI64(v int64) error { return w.WriteU64(uint64(v)) }

func (w *Writer) WriteF32(v float32) error { return w.WriteU32(mathFloat32Bits(v)) }
func (w *Writer) WriteF64(v float64) error { return w.WriteU64(mathFloat64Bits(v)) }
