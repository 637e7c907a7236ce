package hbt

import (
	"bytes"

	"github.com/joshuapare/lsartifact/internal/bio"
	"github.com/joshuapare/lsartifact/internal/compress"
)

// readAttributeInfos decompresses and parses the attributes section.
//
// In the sibling layout, each record already carries its own data offset
// and next-attribute link.
//
// In the non-sibling layout, records carry the owning node's index instead
// of a next-attribute link, and no data offset at all (data_offset is
// instead reconstructed as a running total of preceding attribute
// lengths). The attribute chain per node is rebuilt by keeping, for each
// node index, the most recently seen attribute index for that node in
// refs, threaded through node_index+1 rather than node_index — node 0 uses
// refs[1], and refs[0] is the slot of records whose node_index is -1 ("no
// owning node"), which chain among themselves there, so the node_index==-1
// case and the node_index==0 case stay distinguishable in the same slice.
func readAttributeInfos(r *bio.Reader, h Header) ([]attributeInfo, error) {
	opts := compress.DecodeFlags(h.CompressionFlags).WithChunked(h.chunksAllowed())
	raw, err := compress.Decompress(r, int(h.AttributesSizeOnDisk), int(h.AttributesUncompressedSize), opts)
	if err != nil {
		return nil, err
	}

	src := bytes.NewReader(raw)
	br := bio.NewReader(src)

	if h.hasSiblingLinks() {
		var infos []attributeInfo
		for src.Len() > 0 {
			nameHash, err := br.ReadU32()
			if err != nil {
				return nil, err
			}
			typeAndLength, err := br.ReadU32()
			if err != nil {
				return nil, err
			}
			nextAttributeIndex, err := br.ReadI32()
			if err != nil {
				return nil, err
			}
			offset, err := br.ReadU32()
			if err != nil {
				return nil, err
			}
			infos = append(infos, attributeInfo{
				nameIndex:          int32(nameHash >> 16),
				nameOffset:         int32(nameHash & 0xFFFF),
				typeID:             typeAndLength & 0x3f,
				length:             typeAndLength >> 6,
				dataOffset:         offset,
				nextAttributeIndex: nextAttributeIndex,
			})
		}
		return infos, nil
	}

	var infos []attributeInfo
	var refs []int32
	var dataOffset uint32
	var index int32
	for src.Len() > 0 {
		nameHash, err := br.ReadU32()
		if err != nil {
			return nil, err
		}
		typeAndLength, err := br.ReadU32()
		if err != nil {
			return nil, err
		}
		nodeIndex, err := br.ReadI32()
		if err != nil {
			return nil, err
		}

		length := typeAndLength >> 6
		info := attributeInfo{
			nameIndex:          int32(nameHash >> 16),
			nameOffset:         int32(nameHash & 0xFFFF),
			typeID:             typeAndLength & 0x3f,
			length:             length,
			dataOffset:         dataOffset,
			nextAttributeIndex: -1,
		}

		currentNodeIndex := int(nodeIndex) + 1
		if len(refs) > currentNodeIndex {
			attrRef := refs[currentNodeIndex]
			if attrRef != -1 {
				infos[attrRef].nextAttributeIndex = index
			}
			refs[currentNodeIndex] = index
		} else {
			for len(refs) < currentNodeIndex {
				refs = append(refs, -1)
			}
			refs = append(refs, index)
		}

		dataOffset += length
		infos = append(infos, info)
		index++
	}
	return infos, nil
}
