package pkgarchive

import "github.com/joshuapare/lsartifact/internal/compress"

// FileEntry is one file-table record: where its bytes live (which part
// stream, at what offset, compressed how) and, for solid archives, its
// already-materialised contents.
type FileEntry struct {
	Path             string
	Offset           uint32
	SizeOnDisk       uint32
	UncompressedSize uint32
	PartIndex        uint32
	Flags            uint32
	CRC              uint32
	contents         []byte
}

func (f *FileEntry) CompressionMethod() compress.Method {
	switch f.Flags & 0x0f {
	case 1:
		return compress.MethodZlib
	case 2:
		return compress.MethodLZ4
	default:
		return compress.MethodNone
	}
}

func (f *FileEntry) IsCompressed() bool {
	return f.CompressionMethod() != compress.MethodNone
}

func (f *FileEntry) HasContents() bool {
	return f.contents != nil
}

func (f *FileEntry) Contents() []byte {
	return f.contents
}
