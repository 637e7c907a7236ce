package pkgarchive

import (
	"bytes"
	"io"

	"github.com/joshuapare/lsartifact/internal/bio"
	"github.com/joshuapare/lsartifact/internal/compress"
	"github.com/joshuapare/lsartifact/internal/format"
)

// ReadHeader locates and decodes the V13 footer. Only the V13 layout is
// implemented; probing follows the original's three-step signature search
// (v13 footer, then a front signature for v10/v15/v16, then a bare front
// version word for v7/v9) purely to report which version was actually
// found — every outcome other than v13 is still format.InvalidVersion.
func ReadHeader(rs io.ReadSeeker) (Header, error) {
	br := bio.NewReader(rs)

	if _, err := rs.Seek(-4, io.SeekEnd); err != nil {
		return Header{}, format.Wrap(format.KindIO, err, "seek to signature footer")
	}
	sig, err := br.ReadBytes(4)
	if err != nil {
		return Header{}, err
	}
	if !bytes.Equal(sig, Signature[:]) {
		return Header{}, probeUnsupportedVersion(rs, br)
	}

	if _, err := rs.Seek(-8, io.SeekEnd); err != nil {
		return Header{}, format.Wrap(format.KindIO, err, "seek to header size field")
	}
	headerSize, err := br.ReadI32()
	if err != nil {
		return Header{}, err
	}
	if _, err := rs.Seek(-int64(headerSize), io.SeekEnd); err != nil {
		return Header{}, format.Wrap(format.KindIO, err, "seek to header body")
	}

	rawVersion, err := br.ReadU32()
	if err != nil {
		return Header{}, err
	}
	version, err := parseVersion(rawVersion)
	if err != nil {
		return Header{}, err
	}
	if version != V13 {
		return Header{}, format.InvalidVersion(int64(version))
	}

	fileTableOffset, err := br.ReadU32()
	if err != nil {
		return Header{}, err
	}
	fileTableSize, err := br.ReadU32()
	if err != nil {
		return Header{}, err
	}
	partCount, err := br.ReadU16()
	if err != nil {
		return Header{}, err
	}
	flags, err := br.ReadU8()
	if err != nil {
		return Header{}, err
	}
	priority, err := br.ReadU8()
	if err != nil {
		return Header{}, err
	}
	if _, err := br.ReadBytes(16); err != nil { // md5 hash, discarded
		return Header{}, err
	}

	return Header{
		Version:         version,
		PartCount:       partCount,
		FileTableOffset: fileTableOffset,
		FileTableSize:   fileTableSize,
		Flags:           flags,
		Priority:        priority,
	}, nil
}

// probeUnsupportedVersion runs after the v13 footer check has already
// failed, checking the front of the stream for the v10/v15/v16 signed
// header and then for a bare v7/v9 version word, so the returned error
// names an actual version rather than -1. None of those versions have a
// working reader here.
func probeUnsupportedVersion(rs io.ReadSeeker, br *bio.Reader) error {
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return format.Wrap(format.KindIO, err, "seek to front signature")
	}
	sig, err := br.ReadBytes(4)
	if err != nil {
		return format.InvalidVersion(-1)
	}
	if bytes.Equal(sig, Signature[:]) {
		version, err := br.ReadI32()
		if err != nil {
			return format.InvalidVersion(-1)
		}
		return format.InvalidVersion(int64(version))
	}

	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return format.Wrap(format.KindIO, err, "seek to front version word")
	}
	version, err := br.ReadI32()
	if err != nil {
		return format.InvalidVersion(-1)
	}
	return format.InvalidVersion(int64(version))
}

// ReadFileTable decompresses the file table and, for solid archives, the
// entire packed payload in one shot — mirroring a subtlety in the original:
// a solid archive is one LZ4 frame read from the start of the stream, and
// entry offsets count from that start, so the first entry sits at byte 7,
// just past the frame's 7-byte magic/descriptor header. The table is
// rejected unless the smallest offset is 7 and the largest offset minus the
// smallest equals the sum of all entries' on-disk sizes; after the frame is
// decoded, each entry's offset must also equal the decoded position reached
// when that entry comes up.
func ReadFileTable(rs io.ReadSeeker, header Header) ([]*FileEntry, error) {
	if _, err := rs.Seek(int64(header.FileTableOffset), io.SeekStart); err != nil {
		return nil, format.Wrap(format.KindIO, err, "seek to file table")
	}
	br := bio.NewReader(rs)

	fileCount, err := br.ReadI32()
	if err != nil {
		return nil, err
	}

	uncompressedSize := (256 + 6*4) * int(fileCount)
	raw, err := compress.Decompress(rs, int(header.FileTableSize)-4, uncompressedSize,
		compress.Options{Method: compress.MethodLZ4})
	if err != nil {
		return nil, err
	}

	cursor := bio.NewReader(bytes.NewReader(raw))
	entries := make([]*FileEntry, 0, fileCount)
	for i := int32(0); i < fileCount; i++ {
		path, err := cursor.ReadUTF8Fixed(256)
		if err != nil {
			return nil, err
		}
		offset, err := cursor.ReadU32()
		if err != nil {
			return nil, err
		}
		sizeOnDisk, err := cursor.ReadU32()
		if err != nil {
			return nil, err
		}
		uncompressed, err := cursor.ReadU32()
		if err != nil {
			return nil, err
		}
		partIndex, err := cursor.ReadU32()
		if err != nil {
			return nil, err
		}
		flags, err := cursor.ReadU32()
		if err != nil {
			return nil, err
		}
		crc, err := cursor.ReadU32()
		if err != nil {
			return nil, err
		}
		entries = append(entries, &FileEntry{
			Path:             path,
			Offset:           offset,
			SizeOnDisk:       sizeOnDisk,
			UncompressedSize: uncompressed,
			PartIndex:        partIndex,
			Flags:            flags,
			CRC:              crc,
		})
	}

	if !header.IsSolid() {
		return entries, nil
	}

	var totalSizeOnDisk uint32
	firstOffset := uint32(0xffffffff)
	var lastOffset uint32
	for _, e := range entries {
		if e.Offset < firstOffset {
			firstOffset = e.Offset
		}
		if e.Offset > lastOffset {
			lastOffset = e.Offset
		}
		totalSizeOnDisk += e.SizeOnDisk
	}
	if firstOffset != 7 || lastOffset-firstOffset != totalSizeOnDisk {
		return nil, format.InvalidFileTable("solid archive offsets are not contiguous from byte 7")
	}

	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, format.Wrap(format.KindIO, err, "seek to solid frame start")
	}
	frame, err := compress.Decompress(rs, int(lastOffset), int(totalSizeOnDisk),
		compress.Options{Method: compress.MethodLZ4, Chunked: true})
	if err != nil {
		return nil, err
	}

	solid := bytes.NewReader(frame)
	if _, err := solid.Seek(int64(firstOffset), io.SeekStart); err != nil {
		return nil, format.Wrap(format.KindIO, err, "seek solid frame to first entry")
	}
	for _, e := range entries {
		if uint32(solid.Size())-uint32(solid.Len()) != e.Offset {
			return nil, format.InvalidFileTable("solid archive entry offset does not match frame position")
		}
		buf := make([]byte, e.UncompressedSize)
		if _, err := io.ReadFull(solid, buf); err != nil {
			return nil, format.Wrap(format.KindIO, err, "read solid entry %q", e.Path)
		}
		e.contents = buf
	}

	return entries, nil
}
