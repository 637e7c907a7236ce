package resource

import "github.com/joshuapare/lsartifact/internal/diagnostics"

// Options controls parse-time safety limits, mirroring the teacher's
// OpenOptions (pkg/types.OpenOptions{MaxCellSize, CollectDiagnostics, ...}):
// the limits here are advisory rather than enforced mid-parse (the codecs
// below this package have no truncation/tolerant-read mode of their own),
// but a Resource records a diagnostic when a parsed document exceeds them,
// giving callers the same "did this look abusive" signal without requiring
// every codec to thread a budget through every read call.
type Options struct {
	// MaxStringLength guards the byte length of each individual attribute
	// value, whatever its type.
	MaxStringLength int
	// MaxNodeCount guards the total number of nodes in a parsed document.
	MaxNodeCount int
	// MaxAttributeCount guards the total number of attributes across a
	// parsed document.
	MaxAttributeCount int
	// MaxDecompressedSectionSize is carried with the other limits and set
	// by DefaultOptions, but nothing checks it: neither checkLimits nor the
	// codecs compare any decompressed section's size against it.
	MaxDecompressedSectionSize int
	// Diagnostics, if non-nil, receives soft-limit violations and other
	// tolerated conditions encountered while opening a resource.
	Diagnostics *diagnostics.Report
}

const (
	defaultMaxStringLength             = 1 << 20 // 1 MiB
	defaultMaxNodeCount                = 1 << 22 // ~4M nodes
	defaultMaxAttributeCount           = 1 << 24 // ~16M attributes
	defaultMaxDecompressedSectionSize  = 1 << 30 // 1 GiB
)

// DefaultOptions returns the same conservative defaults the teacher's
// newReader applies for MaxCellSize, sized up for this format's larger
// documents.
func DefaultOptions() Options {
	return Options{
		MaxStringLength:            defaultMaxStringLength,
		MaxNodeCount:               defaultMaxNodeCount,
		MaxAttributeCount:          defaultMaxAttributeCount,
		MaxDecompressedSectionSize: defaultMaxDecompressedSectionSize,
	}
}
