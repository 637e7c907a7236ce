package hbt

import (
	"bytes"
	"io"

	"github.com/joshuapare/lsartifact/internal/arena"
	"github.com/joshuapare/lsartifact/internal/bio"
	"github.com/joshuapare/lsartifact/internal/compress"
	"github.com/joshuapare/lsartifact/internal/document"
	"github.com/joshuapare/lsartifact/internal/format"
	"github.com/joshuapare/lsartifact/internal/value"
)

// readArena decompresses the values section, then materialises one
// document.Data per node info, resolving each node's attribute chain by
// seeking to attribute_info.data_offset inside the decompressed values
// buffer for every attribute.
func readArena(r *bio.Reader, h Header, strings [][]string, nodes []nodeInfo, attrs []attributeInfo) (*arena.Arena[document.Data], error) {
	opts := compress.DecodeFlags(h.CompressionFlags).WithChunked(h.chunksAllowed())
	raw, err := compress.Decompress(r, int(h.ValuesSizeOnDisk), int(h.ValuesUncompressedSize), opts)
	if err != nil {
		return nil, err
	}

	values := bytes.NewReader(raw)
	vr := bio.NewReader(values)

	a := arena.New[document.Data]()
	for _, n := range nodes {
		data, err := readNodeData(values, vr, n, strings, attrs, h.Version)
		if err != nil {
			return nil, err
		}
		if n.parentIndex == -1 {
			a.Alloc(data, nil)
		} else {
			parent := arena.Index(n.parentIndex)
			a.Alloc(data, &parent)
		}
	}
	return a, nil
}

func readNodeData(values io.ReadSeeker, vr *bio.Reader, n nodeInfo, strings [][]string, attrs []attributeInfo, version Version) (document.Data, error) {
	name, err := lookupString(strings, n.nameIndex, n.nameOffset)
	if err != nil {
		return document.Data{}, err
	}
	data := document.NewData(name)
	if n.firstAttributeIndex == -1 {
		return data, nil
	}

	attrIndex := n.firstAttributeIndex
	for {
		if attrIndex < 0 || int(attrIndex) >= len(attrs) {
			return document.Data{}, format.InvalidAttributeIndex(attrIndex)
		}
		info := attrs[attrIndex]

		if _, err := values.Seek(int64(info.dataOffset), io.SeekStart); err != nil {
			return document.Data{}, format.Wrap(format.KindIO, err, "seek to attribute data offset %d", info.dataOffset)
		}
		val, err := readAttributeValue(vr, int(info.length), info.typeID, version)
		if err != nil {
			return document.Data{}, err
		}
		attrName, err := lookupString(strings, info.nameIndex, info.nameOffset)
		if err != nil {
			return document.Data{}, err
		}
		data.Attributes.Set(attrName, val)

		if info.nextAttributeIndex == -1 {
			break
		}
		attrIndex = info.nextAttributeIndex
	}
	return data, nil
}

// readAttributeValue handles the string-like, translated-string, and
// translated-fs-string variants whose layout depends on size/version,
// falling back to value.Read for every other type id.
func readAttributeValue(br *bio.Reader, size int, typeID uint32, version Version) (value.Value, error) {
	switch typeID {
	case 20:
		s, err := br.ReadUTF8Fixed(size)
		return value.String(s), err
	case 21:
		s, err := br.ReadUTF8Fixed(size)
		return value.Path(s), err
	case 22:
		s, err := br.ReadUTF8Fixed(size)
		return value.FixedString(s), err
	case 23:
		s, err := br.ReadUTF8Fixed(size)
		return value.LsString(s), err
	case 25:
		buf, err := br.ReadBytes(size)
		return value.ScratchBuffer(buf), err
	case 28:
		return readTranslatedString(br, version)
	case 29:
		s, err := br.ReadUTF8Fixed(size)
		return value.WString(s), err
	case 30:
		s, err := br.ReadUTF8Fixed(size)
		return value.LswString(s), err
	case 33:
		return readTranslatedFsString(br, version)
	default:
		return value.Read(br, typeID)
	}
}

func readVersionedHandleValue(br *bio.Reader, version Version) (uint16, string, error) {
	if version >= V4 {
		v, err := br.ReadU16()
		return v, "", err
	}
	length, err := br.ReadI32()
	if err != nil {
		return 0, "", err
	}
	val, err := br.ReadUTF8Fixed(int(length))
	return 0, val, err
}

func readTranslatedString(br *bio.Reader, version Version) (value.TranslatedString, error) {
	v, val, err := readVersionedHandleValue(br, version)
	if err != nil {
		return value.TranslatedString{}, err
	}
	handleLength, err := br.ReadI32()
	if err != nil {
		return value.TranslatedString{}, err
	}
	handle, err := br.ReadUTF8Fixed(int(handleLength))
	if err != nil {
		return value.TranslatedString{}, err
	}
	return value.TranslatedString{Version: v, Value: val, Handle: handle}, nil
}

func readTranslatedFsString(br *bio.Reader, version Version) (value.TranslatedFsString, error) {
	v, val, err := readVersionedHandleValue(br, version)
	if err != nil {
		return value.TranslatedFsString{}, err
	}
	handleLength, err := br.ReadI32()
	if err != nil {
		return value.TranslatedFsString{}, err
	}
	handle, err := br.ReadUTF8Fixed(int(handleLength))
	if err != nil {
		return value.TranslatedFsString{}, err
	}
	argCount, err := br.ReadI32()
	if err != nil {
		return value.TranslatedFsString{}, err
	}
	args := make([]value.TranslatedFsStringArgument, 0, argCount)
	for i := int32(0); i < argCount; i++ {
		keyLength, err := br.ReadI32()
		if err != nil {
			return value.TranslatedFsString{}, err
		}
		key, err := br.ReadUTF8Fixed(int(keyLength))
		if err != nil {
			return value.TranslatedFsString{}, err
		}
		argString, err := readTranslatedFsString(br, version)
		if err != nil {
			return value.TranslatedFsString{}, err
		}
		valueLength, err := br.ReadI32()
		if err != nil {
			return value.TranslatedFsString{}, err
		}
		argValue, err := br.ReadUTF8Fixed(int(valueLength))
		if err != nil {
			return value.TranslatedFsString{}, err
		}
		args = append(args, value.TranslatedFsStringArgument{Key: key, String: argString, Value: argValue})
	}
	return value.TranslatedFsString{Version: v, Value: val, Handle: handle, Arguments: args}, nil
}
