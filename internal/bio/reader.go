// Package bio implements the length-prefixed and fixed-width binary read
// primitives every codec in this module is built on (spec §4.1), grounded on
// the original implementation's util/read.rs and the teacher's internal/buf
// conventions: methods on Reader and Writer types wrapping an io.Reader or io.Writer, little-endian
// throughout, with NUL-trimmed UTF-8 fixed-string decoding.
package bio

import (
	"encoding/binary"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/joshuapare/lsartifact/internal/format"
)

// Reader adds typed little-endian primitives on top of an io.Reader.
type Reader struct {
	io.Reader
}

// NewReader wraps r with the primitives codecs need.
func NewReader(r io.Reader) *Reader { return &Reader{Reader: r} }

// ReadBytes reads exactly n bytes or returns a wrapped I/O error.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n == 0 {
		return []byte{}, nil
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r.Reader, buf); err != nil {
		return nil, format.Wrap(format.KindIO, err, "read %d bytes", n)
	}
	return buf, nil
}

// ReadUTF8Fixed reads exactly n bytes, validates them as UTF-8, and strips
// any trailing NUL padding.
func (r *Reader) ReadUTF8Fixed(n int) (string, error) {
	buf, err := r.ReadBytes(n)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(buf) {
		return "", format.Errorf(format.KindUTF8, "invalid utf-8 in fixed-width field of length %d", n)
	}
	return strings.TrimRight(string(buf), "\x00"), nil
}

func (r *Reader) ReadU8() (uint8, error) {
	b, err := r.ReadBytes(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *Reader) ReadI8() (int8, error) {
	v, err := r.ReadU8()
	return int8(v), err
}

func (r *Reader) ReadU16() (uint16, error) {
	b, err := r.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (r *Reader) ReadU32() (uint32, error) {
	b, err := r.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (r *Reader) ReadU64() (uint64, error) {
	b, err := r.ReadBytes(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

func (r *Reader) ReadI16() (int16, error) {
	v, err := r.ReadU16()
	return int16(v), err
}

func (r *Reader) ReadI32() (int32, error) {
	v, err := r.ReadU32()
	return int32(v), err
}

func (r *Reader) ReadI64() (int64, error) {
	v, err := r.ReadU64()
	return int64(v), err
}

func (r *Reader) ReadF32() (float32, error) {
	v, err := r.ReadU32()
	if err != nil {
		return 0, err
	}
	return mathFloat32(v), nil
}

func (r *Reader) ReadF64() (float64, error) {
	v, err := r.ReadU64()
	if err != nil {
		return 0, err
	}
	return mathFloat64(v), nil
}
