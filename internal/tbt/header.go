// Package tbt decodes the tagged binary tree format (spec §4.5): a single
// signature-prefixed stream holding resource metadata, a flat shared string
// pool, and one or more named regions, each a node tree serialised depth
// first. Grounded on the original implementation's lsb/{header,read}.rs.
package tbt

// SignatureBG3 and SignatureFW3 are the two recognised magics, compared
// against the big-endian byte representation of the little-endian-read
// first word of the stream — the original on-disk bytes are the reverse of
// these arrays, which is how the source format packs a human-readable
// magic into a little-endian integer field.
var (
	SignatureBG3 = [4]byte{0x4C, 0x53, 0x46, 0x4D} // "LSFM"
	SignatureFW3 = [4]byte{0x4C, 0x53, 0x46, 0x57} // "LSFW"
)
