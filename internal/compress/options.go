// Package compress implements the packed-flag compression options and the
// decode dispatch described in spec §4.2: a single byte selects method and
// level, and decoding fans out across Zlib, LZ4 block, and LZ4 frame,
// matching the original implementation's compression/mod.rs and
// compression/read.rs.
package compress

// Method is the compression algorithm a packed flag byte selects.
type Method int

const (
	MethodNone Method = iota
	MethodZlib
	MethodLZ4
)

// Level is the compression tightness a packed flag byte selects. It has no
// bearing on decoding — it only round-trips through Encode/Decode — but is
// part of the on-disk format.
type Level int

const (
	LevelFast Level = iota
	LevelDefault
	LevelMax
)

// Options bundles everything Decompress needs to process one compressed
// section: the method/level pair decoded from a flag byte, whether the
// section is LZ4-frame-chunked, and an optional CRC32 the compressed bytes
// must match before decoding is attempted.
type Options struct {
	Method        Method
	Level         Level
	Chunked       bool
	CompressedCRC *uint32
}

// DecodeFlags splits one packed byte into method (low nibble) and level
// (high nibble), defaulting unknown level nibbles to Default the way the
// source's `From<u8>` impl does.
func DecodeFlags(flags uint8) Options {
	var method Method
	switch flags & 0x0F {
	case 0x01:
		method = MethodZlib
	case 0x02:
		method = MethodLZ4
	default:
		method = MethodNone
	}
	level := LevelDefault
	switch flags & 0xF0 {
	case 0x10:
		level = LevelFast
	case 0x20:
		level = LevelDefault
	case 0x30:
		level = LevelMax
	}
	return Options{Method: method, Level: level}
}

// EncodeFlags packs method and level back into a single byte. Unrecognised
// levels are never produced by DecodeFlags, so no default branch is needed
// for Level here.
func EncodeFlags(o Options) uint8 {
	var b uint8
	switch o.Method {
	case MethodZlib:
		b |= 0x01
	case MethodLZ4:
		b |= 0x02
	}
	switch o.Level {
	case LevelFast:
		b |= 0x10
	case LevelDefault:
		b |= 0x20
	case LevelMax:
		b |= 0x30
	}
	return b
}

// WithChunked returns a copy of o with Chunked set.
func (o Options) WithChunked(chunked bool) Options {
	o.Chunked = chunked
	return o
}

// WithCRC returns a copy of o that requires the compressed bytes to match crc.
func (o Options) WithCRC(crc uint32) Options {
	o.CompressedCRC = &crc
	return o
}
