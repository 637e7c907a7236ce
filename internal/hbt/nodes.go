package hbt

import (
	"bytes"

	"github.com/joshuapare/lsartifact/internal/bio"
	"github.com/joshuapare/lsartifact/internal/compress"
)

// readNodeInfos decompresses and parses the nodes section. The sibling
// layout carries an explicit (unused here) next-sibling link between the
// parent link and the first-attribute link; the non-sibling layout swaps
// the order of the first-attribute and parent fields.
func readNodeInfos(r *bio.Reader, h Header) ([]nodeInfo, error) {
	opts := compress.DecodeFlags(h.CompressionFlags).WithChunked(h.chunksAllowed())
	raw, err := compress.Decompress(r, int(h.NodesSizeOnDisk), int(h.NodesUncompressedSize), opts)
	if err != nil {
		return nil, err
	}

	src := bytes.NewReader(raw)
	br := bio.NewReader(src)
	hasSibling := h.hasSiblingLinks()
	var infos []nodeInfo
	for src.Len() > 0 {
		nameHash, err := br.ReadU32()
		if err != nil {
			return nil, err
		}
		nameIndex := int32(nameHash >> 16)
		nameOffset := int32(nameHash & 0xFFFF)

		var parentIndex, firstAttrIndex int32
		if hasSibling {
			p, err := br.ReadI32()
			if err != nil {
				return nil, err
			}
			if _, err := br.ReadI32(); err != nil { // next_sibling_index, unused
				return nil, err
			}
			f, err := br.ReadI32()
			if err != nil {
				return nil, err
			}
			parentIndex, firstAttrIndex = p, f
		} else {
			f, err := br.ReadI32()
			if err != nil {
				return nil, err
			}
			p, err := br.ReadI32()
			if err != nil {
				return nil, err
			}
			firstAttrIndex, parentIndex = f, p
		}

		infos = append(infos, nodeInfo{
			nameIndex:           nameIndex,
			nameOffset:          nameOffset,
			parentIndex:         parentIndex,
			firstAttributeIndex: firstAttrIndex,
		})
	}
	return infos, nil
}
