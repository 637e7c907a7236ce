package tbt

import (
	"io"

	"github.com/joshuapare/lsartifact/internal/arena"
	"github.com/joshuapare/lsartifact/internal/bio"
	"github.com/joshuapare/lsartifact/internal/document"
	"github.com/joshuapare/lsartifact/internal/format"
	"github.com/joshuapare/lsartifact/internal/value"
)

// Read decodes a complete TBT stream into a Document. rs must support
// seeking: region offsets are absolute positions the reader jumps to and
// returns from.
func Read(rs io.ReadSeeker) (*document.Document, error) {
	br := bio.NewReader(rs)

	sigWord, err := br.ReadU32()
	if err != nil {
		return nil, err
	}
	sigBytes := [4]byte{byte(sigWord >> 24), byte(sigWord >> 16), byte(sigWord >> 8), byte(sigWord)}
	isBG3 := sigBytes == SignatureBG3
	isFW3 := sigBytes == SignatureFW3
	if !isBG3 && !isFW3 {
		return nil, format.InvalidSignature(SignatureBG3[:], sigBytes[:])
	}

	if _, err := br.ReadU32(); err != nil { // total_size, unused
		return nil, err
	}
	if _, err := br.ReadU32(); err != nil { // big_endian flag, unused
		return nil, err
	}
	if _, err := br.ReadU32(); err != nil { // unknown, unused
		return nil, err
	}

	// Resource metadata (timestamp, major/minor/revision/build) is parsed to
	// advance the stream but, as in the original implementation, never
	// attached to the resulting document.
	if _, err := br.ReadU64(); err != nil {
		return nil, err
	}
	for i := 0; i < 4; i++ {
		if _, err := br.ReadU32(); err != nil {
			return nil, err
		}
	}

	stringCount, err := br.ReadU32()
	if err != nil {
		return nil, err
	}
	strings := make(map[uint32]string, stringCount)
	for i := uint32(0); i < stringCount; i++ {
		length, err := br.ReadI32()
		if err != nil {
			return nil, err
		}
		s, err := br.ReadUTF8Fixed(int(length))
		if err != nil {
			return nil, err
		}
		idx, err := br.ReadU32()
		if err != nil {
			return nil, err
		}
		strings[idx] = s
	}

	regionCount, err := br.ReadU32()
	if err != nil {
		return nil, err
	}
	a := arena.New[document.Data]()
	for i := uint32(0); i < regionCount; i++ {
		regionNameID, err := br.ReadU32()
		if err != nil {
			return nil, err
		}
		regionOffset, err := br.ReadU32()
		if err != nil {
			return nil, err
		}
		regionName, ok := strings[regionNameID]
		if !ok {
			return nil, format.InvalidStringIndex(int32(regionNameID))
		}
		lastPos, err := rs.Seek(0, io.SeekCurrent)
		if err != nil {
			return nil, format.Wrap(format.KindIO, err, "tell before region seek")
		}
		if _, err := rs.Seek(int64(regionOffset), io.SeekStart); err != nil {
			return nil, format.Wrap(format.KindIO, err, "seek to region offset %d", regionOffset)
		}
		if err := readNode(br, rs, a, strings, isBG3, document.KindRegion, regionName, nil); err != nil {
			return nil, err
		}
		if _, err := rs.Seek(lastPos, io.SeekStart); err != nil {
			return nil, format.Wrap(format.KindIO, err, "restore position after region")
		}
	}

	return document.NewWithArena(a), nil
}

func readNode(
	br *bio.Reader,
	rs io.ReadSeeker,
	a *arena.Arena[document.Data],
	strings map[uint32]string,
	isBG3 bool,
	kind document.Kind,
	regionName string,
	parent *arena.Index,
) error {
	nameID, err := br.ReadU32()
	if err != nil {
		return err
	}
	attrCount, err := br.ReadU32()
	if err != nil {
		return err
	}
	childCount, err := br.ReadU32()
	if err != nil {
		return err
	}
	name, ok := strings[nameID]
	if !ok {
		return format.InvalidStringIndex(int32(nameID))
	}

	data := document.Data{Kind: kind, RegionName: regionName, Name: name, Attributes: document.NewAttributeMap()}
	idx := a.Alloc(data, parent)

	for i := uint32(0); i < attrCount; i++ {
		attrNameID, err := br.ReadU32()
		if err != nil {
			return err
		}
		typeID, err := br.ReadU32()
		if err != nil {
			return err
		}
		val, err := readAttributeValue(br, rs, typeID, isBG3)
		if err != nil {
			return err
		}
		attrName, ok := strings[attrNameID]
		if !ok {
			return format.InvalidStringIndex(int32(attrNameID))
		}
		a.Value(idx).Attributes.Set(attrName, val)
	}

	for i := uint32(0); i < childCount; i++ {
		if err := readNode(br, rs, a, strings, isBG3, document.KindElement, "", &idx); err != nil {
			return err
		}
	}

	return nil
}

// readAttributeValue handles the string-like and translated-string variants
// whose on-disk layout is format-specific, falling back to value.Read for
// every other type id.
func readAttributeValue(br *bio.Reader, rs io.ReadSeeker, typeID uint32, isBG3 bool) (value.Value, error) {
	switch typeID {
	case 20:
		s, err := readLengthPrefixedString(br)
		return value.String(s), err
	case 21:
		s, err := readLengthPrefixedString(br)
		return value.Path(s), err
	case 22:
		s, err := readLengthPrefixedString(br)
		return value.FixedString(s), err
	case 23:
		s, err := readLengthPrefixedString(br)
		return value.LsString(s), err
	case 25:
		length, err := br.ReadI32()
		if err != nil {
			return nil, err
		}
		buf, err := br.ReadBytes(int(length))
		return value.ScratchBuffer(buf), err
	case 28:
		return readTranslatedString(br, rs, isBG3)
	case 29:
		length, err := br.ReadI32()
		if err != nil {
			return nil, err
		}
		s, err := br.ReadUTF8Fixed(int(length) * 2)
		return value.WString(s), err
	case 30:
		length, err := br.ReadI32()
		if err != nil {
			return nil, err
		}
		s, err := br.ReadUTF8Fixed(int(length) * 2)
		return value.LswString(s), err
	default:
		return value.Read(br, typeID)
	}
}

func readLengthPrefixedString(br *bio.Reader) (string, error) {
	length, err := br.ReadI32()
	if err != nil {
		return "", err
	}
	return br.ReadUTF8Fixed(int(length))
}

// readTranslatedString reproduces the original reader's BG3 probe-and-rewind
// logic: after the u16 version field it reads a four-byte probe word. When
// the probe is zero, the stream is rewound by four bytes and the zero word
// is re-read as the inline value's i32 length, so the inline value is empty
// and the version is reset to 0. When the probe is non-zero, the stream is
// rewound by two bytes only: the probe's first two bytes stay consumed and
// its last two bytes begin the handle's length field.
func readTranslatedString(br *bio.Reader, rs io.ReadSeeker, isBG3 bool) (value.TranslatedString, error) {
	var version uint16
	var val string

	if isBG3 {
		v, err := br.ReadU16()
		if err != nil {
			return value.TranslatedString{}, err
		}
		version = v

		test, err := br.ReadU32()
		if err != nil {
			return value.TranslatedString{}, err
		}
		if test == 0 {
			if _, err := rs.Seek(-4, io.SeekCurrent); err != nil {
				return value.TranslatedString{}, format.Wrap(format.KindIO, err, "rewind translated string probe")
			}
			version = 0
			length, err := br.ReadI32()
			if err != nil {
				return value.TranslatedString{}, err
			}
			val, err = br.ReadUTF8Fixed(int(length))
			if err != nil {
				return value.TranslatedString{}, err
			}
		} else {
			if _, err := rs.Seek(-2, io.SeekCurrent); err != nil {
				return value.TranslatedString{}, format.Wrap(format.KindIO, err, "rewind translated string probe")
			}
		}
	} else {
		length, err := br.ReadI32()
		if err != nil {
			return value.TranslatedString{}, err
		}
		v, err := br.ReadUTF8Fixed(int(length))
		if err != nil {
			return value.TranslatedString{}, err
		}
		val = v
	}

	handleLength, err := br.ReadI32()
	if err != nil {
		return value.TranslatedString{}, err
	}
	handle, err := br.ReadUTF8Fixed(int(handleLength))
	if err != nil {
		return value.TranslatedString{}, err
	}

	return value.TranslatedString{Version: version, Value: val, Handle: handle}, nil
}
