package hbt

import (
	"bytes"

	"github.com/joshuapare/lsartifact/internal/bio"
	"github.com/joshuapare/lsartifact/internal/compress"
	"github.com/joshuapare/lsartifact/internal/format"
)

// readStringLists decompresses the strings section and parses it into
// hash buckets: a count of buckets, then per bucket a count of strings and
// the strings themselves, each u16-length-prefixed.
func readStringLists(r *bio.Reader, h Header) ([][]string, error) {
	opts := compress.DecodeFlags(h.CompressionFlags).WithChunked(h.chunksAllowed())
	raw, err := compress.Decompress(r, int(h.StringsSizeOnDisk), int(h.StringsUncompressedSize), opts)
	if err != nil {
		return nil, err
	}

	br := bio.NewReader(bytes.NewReader(raw))
	bucketCount, err := br.ReadU32()
	if err != nil {
		return nil, err
	}
	lists := make([][]string, 0, bucketCount)
	for i := uint32(0); i < bucketCount; i++ {
		stringCount, err := br.ReadU16()
		if err != nil {
			return nil, err
		}
		list := make([]string, 0, stringCount)
		for j := uint16(0); j < stringCount; j++ {
			length, err := br.ReadU16()
			if err != nil {
				return nil, err
			}
			s, err := br.ReadUTF8Fixed(int(length))
			if err != nil {
				return nil, err
			}
			list = append(list, s)
		}
		lists = append(lists, list)
	}
	return lists, nil
}

func lookupString(lists [][]string, index, offset int32) (string, error) {
	if index < 0 || int(index) >= len(lists) {
		return "", format.InvalidStringIndex(index)
	}
	bucket := lists[index]
	if offset < 0 || int(offset) >= len(bucket) {
		return "", format.InvalidStringOffset(index, offset)
	}
	return bucket[offset], nil
}
