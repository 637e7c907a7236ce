// Package hbt decodes the hashed binary tree format (spec §4.6): four
// independently compressed sections (hashed string buckets, node infos,
// attribute infos, attribute value bytes) assembled into a document the way
// the original implementation's lsf/{header,read,node,attribute,context}.rs
// do it, across on-disk versions 1 through 6 and both the sibling-linked
// and non-sibling attribute-chain layouts.
package hbt

import "github.com/joshuapare/lsartifact/internal/format"

// Signature is the fixed four-byte magic "LSOF".
var Signature = [4]byte{0x4C, 0x53, 0x4F, 0x46}

// Version is the on-disk format revision. V4 is the first BG3-era version,
// which changes the TranslatedString/TranslatedFsString inline-value
// layout; V6 changes the header's own field layout.
type Version int

const (
	V1 Version = 1
	V2 Version = 2
	V3 Version = 3
	V4 Version = 4
	V5 Version = 5
	V6 Version = 6
)

func parseVersion(v uint32) (Version, error) {
	switch v {
	case 1, 2, 3, 4, 5, 6:
		return Version(v), nil
	default:
		return 0, format.InvalidVersion(int64(v))
	}
}

// Header is the fixed-layout preamble preceding the four compressed
// sections.
type Header struct {
	Version                     Version
	EngineVersion               int64
	StringsUncompressedSize     uint32
	StringsSizeOnDisk           uint32
	NodesUncompressedSize       uint32
	NodesSizeOnDisk             uint32
	AttributesUncompressedSize  uint32
	AttributesSizeOnDisk        uint32
	ValuesUncompressedSize      uint32
	ValuesSizeOnDisk            uint32
	CompressionFlags            uint8
	HasSiblingData              uint32
}

// chunksAllowed reports whether sections are LZ4-frame-chunked rather than
// single-block LZ4, true from V2 onward.
func (h Header) chunksAllowed() bool { return h.Version >= V2 }

// hasSiblingLinks reports whether node/attribute infos carry explicit
// sibling/next-attribute links (V3+ with the has_sibling_data flag set), as
// opposed to the non-sibling layout that must be reconstructed.
func (h Header) hasSiblingLinks() bool { return h.Version >= V3 && h.HasSiblingData == 1 }
