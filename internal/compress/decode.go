package compress

import (
	"bytes"
	"compress/zlib"
	"hash/crc32"
	"io"

	"github.com/joshuapare/lsartifact/internal/format"
	"github.com/pierrec/lz4/v4"
)

// Decompress reads exactly compressedSize bytes from r, optionally verifies
// their CRC32, and decodes them per opts to exactly uncompressedSize bytes.
// Output shorter than uncompressedSize is a hard failure for every method,
// so callers never receive a partially-decoded buffer. Output longer than
// uncompressedSize is rejected only for MethodNone and LZ4 block data; for
// zlib and LZ4 frame data, decoding stops after uncompressedSize bytes and
// any further output is neither read nor reported.
func Decompress(r io.Reader, compressedSize, uncompressedSize int, opts Options) ([]byte, error) {
	compressed := make([]byte, compressedSize)
	if compressedSize > 0 {
		if _, err := io.ReadFull(r, compressed); err != nil {
			return nil, format.Wrap(format.KindIO, err, "read %d compressed bytes", compressedSize)
		}
	}

	if opts.CompressedCRC != nil {
		got := crc32.ChecksumIEEE(compressed)
		if got != *opts.CompressedCRC {
			return nil, format.CrcMismatch(*opts.CompressedCRC, got)
		}
	}

	switch {
	case opts.Method == MethodNone:
		if len(compressed) != uncompressedSize {
			return nil, format.Errorf(format.KindCompression,
				"uncompressed passthrough size mismatch: have %d, want %d", len(compressed), uncompressedSize)
		}
		return compressed, nil
	case opts.Method == MethodZlib:
		return decodeZlib(compressed, uncompressedSize)
	case opts.Method == MethodLZ4 && opts.Chunked:
		return decodeLZ4Frame(compressed, uncompressedSize)
	case opts.Method == MethodLZ4:
		return decodeLZ4Block(compressed, uncompressedSize)
	default:
		return nil, format.Errorf(format.KindCompression, "unreachable compression dispatch")
	}
}

func decodeZlib(compressed []byte, uncompressedSize int) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, format.Wrap(format.KindCompression, err, "open zlib stream")
	}
	defer zr.Close()
	out := make([]byte, uncompressedSize)
	if _, err := io.ReadFull(zr, out); err != nil {
		return nil, format.Wrap(format.KindCompression, err, "zlib decode to %d bytes", uncompressedSize)
	}
	return out, nil
}

func decodeLZ4Block(compressed []byte, uncompressedSize int) ([]byte, error) {
	out := make([]byte, uncompressedSize)
	n, err := lz4.UncompressBlock(compressed, out)
	if err != nil {
		return nil, format.Wrap(format.KindCompression, err, "lz4 block decode")
	}
	if n != uncompressedSize {
		return nil, format.Errorf(format.KindCompression, "lz4 block decode size mismatch: have %d, want %d", n, uncompressedSize)
	}
	return out, nil
}

func decodeLZ4Frame(compressed []byte, uncompressedSize int) ([]byte, error) {
	fr := lz4.NewReader(bytes.NewReader(compressed))
	out := make([]byte, uncompressedSize)
	if _, err := io.ReadFull(fr, out); err != nil {
		return nil, format.Wrap(format.KindCompression, err, "lz4 frame decode to %d bytes", uncompressedSize)
	}
	return out, nil
}
