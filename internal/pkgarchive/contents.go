package pkgarchive

import (
	"io"
	"math"

	"github.com/joshuapare/lsartifact/internal/compress"
	"github.com/joshuapare/lsartifact/internal/format"
)

// ReadFileContents returns an entry's raw bytes, decompressing on demand for
// non-solid archives. parts holds one reader per package part file, indexed
// by FileEntry.PartIndex; parts[0] is always the main archive stream.
func ReadFileContents(parts []io.ReadSeeker, header Header, entry *FileEntry) ([]byte, error) {
	if entry.SizeOnDisk > math.MaxInt32 {
		return nil, format.FileTooLarge(entry.Path, entry.SizeOnDisk)
	}
	if header.IsSolid() {
		if !entry.HasContents() {
			return nil, format.FileEmpty(entry.Path)
		}
		return entry.contents, nil
	}

	if int(entry.PartIndex) >= len(parts) {
		return nil, format.InvalidFileTable("file table references a missing archive part")
	}
	part := parts[entry.PartIndex]

	if _, err := part.Seek(int64(entry.Offset), io.SeekStart); err != nil {
		return nil, format.Wrap(format.KindIO, err, "seek to file contents")
	}
	if !entry.IsCompressed() {
		buf := make([]byte, entry.SizeOnDisk)
		if _, err := io.ReadFull(part, buf); err != nil {
			return nil, format.Wrap(format.KindIO, err, "read uncompressed file contents")
		}
		return buf, nil
	}

	crc := entry.CRC
	opts := compress.Options{Method: entry.CompressionMethod()}.WithCRC(crc)
	return compress.Decompress(part, int(entry.SizeOnDisk), int(entry.UncompressedSize), opts)
}
