// Package pkgarchive decodes the PKG container format: a V13 footer, a
// compressed file table, and per-file or solid-archive content storage.
package pkgarchive

import "github.com/joshuapare/lsartifact/internal/format"

// Signature is the raw on-disk magic, read and compared byte-for-byte with
// no reversal (unlike the tree formats' signature words).
var Signature = [4]byte{0x4C, 0x53, 0x50, 0x4B} // "LSPK"

// Version is the PKG container version. Only V13 has a working reader here;
// every other value panicked ("todo!") in the original and is surfaced as
// format.InvalidVersion instead.
type Version int32

const (
	V7  Version = 7
	V9  Version = 9
	V10 Version = 10
	V13 Version = 13
	V15 Version = 15
	V16 Version = 16
)

func parseVersion(v uint32) (Version, error) {
	switch Version(v) {
	case V7, V9, V10, V13, V15, V16:
		return Version(v), nil
	default:
		return 0, format.InvalidVersion(int64(v))
	}
}

const (
	FlagsNone               uint8 = 0x00
	FlagsAllowMemoryMapping uint8 = 0x02
	FlagsSolid              uint8 = 0x04
	FlagsPreload            uint8 = 0x08
)

// Header is the V13 footer: a fixed-size block at the tail of the archive
// naming where the (possibly multi-part) file table lives.
type Header struct {
	Version         Version
	PartCount       uint16
	FileTableOffset uint32
	FileTableSize   uint32
	Flags           uint8
	Priority        uint8
}

func (h Header) IsSolid() bool {
	return h.Flags&FlagsSolid != 0
}
