// Package format defines the typed error used across every codec in this
// module.
package format

import "fmt"

// Kind classifies a Error so callers can branch on the failure category
// instead of matching message text.
type Kind int

const (
	KindSignature Kind = iota
	KindVersion
	KindFileTable
	KindCRC
	KindTooLarge
	KindEmpty
	KindNotFound
	KindStringIndex
	KindStringOffset
	KindAttributeIndex
	KindTypeID
	KindPath
	KindIO
	KindUTF8
	KindCompression
)

func (k Kind) String() string {
	switch k {
	case KindSignature:
		return "signature"
	case KindVersion:
		return "version"
	case KindFileTable:
		return "file-table"
	case KindCRC:
		return "crc"
	case KindTooLarge:
		return "too-large"
	case KindEmpty:
		return "empty"
	case KindNotFound:
		return "not-found"
	case KindStringIndex:
		return "string-index"
	case KindStringOffset:
		return "string-offset"
	case KindAttributeIndex:
		return "attribute-index"
	case KindTypeID:
		return "type-id"
	case KindPath:
		return "path"
	case KindIO:
		return "io"
	case KindUTF8:
		return "utf8"
	case KindCompression:
		return "compression"
	default:
		return "unknown"
	}
}

// Error is the single result type every fallible operation in this module
// returns. The offending index/offset/type id/path is always folded into Msg
// so the location of the failure survives even after Unwrap strips Err.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Errorf builds a located Error of the given kind.
func Errorf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap builds a located Error of the given kind around an underlying cause.
func Wrap(kind Kind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: err}
}

// InvalidSignature reports an unexpected magic.
func InvalidSignature(expected, actual []byte) *Error {
	return Errorf(KindSignature, "invalid signature: expected %q, got %q", expected, actual)
}

// InvalidVersion reports an unsupported or unknown format version.
func InvalidVersion(v int64) *Error {
	return Errorf(KindVersion, "invalid version: %d", v)
}

// InvalidFileTable reports a structurally inconsistent PKG file table.
func InvalidFileTable(reason string) *Error {
	return Errorf(KindFileTable, "invalid file table: %s", reason)
}

// CrcMismatch reports a CRC32 verification failure.
func CrcMismatch(expected, got uint32) *Error {
	return Errorf(KindCRC, "crc mismatch: expected %08x, got %08x", expected, got)
}

// FileTooLarge reports a file entry whose size_on_disk exceeds int32 range.
func FileTooLarge(path string, size uint32) *Error {
	return Errorf(KindTooLarge, "file %q too large: %d bytes", path, size)
}

// FileEmpty reports a solid-archive entry that was never materialised.
func FileEmpty(path string) *Error {
	return Errorf(KindEmpty, "file %q has no materialised contents", path)
}

// FileNotFound reports a missing file-table entry.
func FileNotFound(path string) *Error {
	return Errorf(KindNotFound, "file %q not found", path)
}

// InvalidStringIndex reports a name bucket index with no matching list.
func InvalidStringIndex(i int32) *Error {
	return Errorf(KindStringIndex, "invalid string bucket index: %d", i)
}

// InvalidStringOffset reports an offset with no matching entry in its bucket.
func InvalidStringOffset(i, o int32) *Error {
	return Errorf(KindStringOffset, "invalid string offset: bucket %d, offset %d", i, o)
}

// InvalidAttributeIndex reports a broken attribute-chain link.
func InvalidAttributeIndex(i int32) *Error {
	return Errorf(KindAttributeIndex, "invalid attribute index: %d", i)
}

// InvalidTypeID reports an attribute value type id outside the known lattice.
func InvalidTypeID(id uint32) *Error {
	return Errorf(KindTypeID, "invalid type id: %d", id)
}

// InvalidPath reports a malformed query or filesystem path.
func InvalidPath(p string) *Error {
	return Errorf(KindPath, "invalid path: %q", p)
}
