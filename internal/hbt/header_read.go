package hbt

import (
	"bytes"

	"github.com/joshuapare/lsartifact/internal/bio"
	"github.com/joshuapare/lsartifact/internal/format"
)

func readHeader(br *bio.Reader) (Header, error) {
	sig, err := br.ReadBytes(4)
	if err != nil {
		return Header{}, err
	}
	if !bytes.Equal(sig, Signature[:]) {
		return Header{}, format.InvalidSignature(Signature[:], sig)
	}

	verWord, err := br.ReadU32()
	if err != nil {
		return Header{}, err
	}
	version, err := parseVersion(verWord)
	if err != nil {
		return Header{}, err
	}

	var h Header
	h.Version = version

	if version >= V5 {
		v, err := br.ReadI64()
		if err != nil {
			return Header{}, err
		}
		h.EngineVersion = v
	} else {
		v, err := br.ReadI32()
		if err != nil {
			return Header{}, err
		}
		h.EngineVersion = int64(v)
	}

	if h.StringsUncompressedSize, err = br.ReadU32(); err != nil {
		return Header{}, err
	}
	if h.StringsSizeOnDisk, err = br.ReadU32(); err != nil {
		return Header{}, err
	}
	if version >= V6 {
		if _, err := br.ReadU64(); err != nil { // unknown1
			return Header{}, err
		}
	}
	if h.NodesUncompressedSize, err = br.ReadU32(); err != nil {
		return Header{}, err
	}
	if h.NodesSizeOnDisk, err = br.ReadU32(); err != nil {
		return Header{}, err
	}
	if h.AttributesUncompressedSize, err = br.ReadU32(); err != nil {
		return Header{}, err
	}
	if h.AttributesSizeOnDisk, err = br.ReadU32(); err != nil {
		return Header{}, err
	}
	if h.ValuesUncompressedSize, err = br.ReadU32(); err != nil {
		return Header{}, err
	}
	if h.ValuesSizeOnDisk, err = br.ReadU32(); err != nil {
		return Header{}, err
	}
	if h.CompressionFlags, err = br.ReadU8(); err != nil {
		return Header{}, err
	}
	if _, err := br.ReadU8(); err != nil { // unknown2
		return Header{}, err
	}
	if _, err := br.ReadU16(); err != nil { // unknown3
		return Header{}, err
	}
	if h.HasSiblingData, err = br.ReadU32(); err != nil {
		return Header{}, err
	}

	return h, nil
}
