// Package resource is the top-level entry point combining the HBT/TBT
// codecs, the arena-backed document they build, and the query layer over
// it, the way the teacher's pkg/hive ties internal/reader and pkg/types
// together behind one high-level API.
package resource

import (
	"github.com/joshuapare/lsartifact/internal/arena"
	"github.com/joshuapare/lsartifact/internal/diagnostics"
	"github.com/joshuapare/lsartifact/internal/document"
	"github.com/joshuapare/lsartifact/internal/value"
)

// Kind names which codec produced a Resource's document.
type Kind int

const (
	KindTBT Kind = iota
	KindHBT
)

func (k Kind) String() string {
	if k == KindHBT {
		return "hbt"
	}
	return "tbt"
}

// Resource is a parsed tree document plus the codec it came from. All query
// operations delegate to the underlying Document.
type Resource struct {
	Kind Kind
	Doc  *document.Document
}

func (r *Resource) Find(selector document.Selector) []arena.Index {
	return r.Doc.Find(selector)
}

func (r *Resource) Matches(index arena.Index, selector document.Selector) bool {
	return r.Doc.Matches(index, selector)
}

func (r *Resource) FullPath(index arena.Index) string {
	return r.Doc.FullPath(index)
}

func (r *Resource) Resolve(index arena.Index, path string) (arena.Index, bool) {
	return r.Doc.Resolve(index, path)
}

func (r *Resource) ResolveAttributeValue(index arena.Index, path string) (value.Value, bool) {
	return r.Doc.ResolveAttributeValue(index, path)
}

// checkLimits walks the whole document once and records a diagnostic for
// each Options limit that was exceeded. It never fails the open — the
// limits are advisory, matching the design note in options.go.
func checkLimits(doc *document.Document, opts Options, structure string) {
	if opts.Diagnostics == nil {
		return
	}
	nodeCount := 0
	attrCount := 0
	for _, root := range doc.RootIndexes() {
		for _, idx := range doc.RecursiveIter(root) {
			nodeCount++
			data := doc.Value(idx)
			attrCount += len(data.Attributes)
			for _, attr := range data.Attributes {
				if attr.Value.Length() > opts.MaxStringLength {
					opts.Diagnostics.Add(diagnostics.SevWarning, structure,
						"attribute value length %d exceeds MaxStringLength %d", attr.Value.Length(), opts.MaxStringLength)
				}
			}
		}
	}
	if opts.MaxNodeCount > 0 && nodeCount > opts.MaxNodeCount {
		opts.Diagnostics.Add(diagnostics.SevWarning, structure,
			"document has %d nodes, exceeding MaxNodeCount %d", nodeCount, opts.MaxNodeCount)
	}
	if opts.MaxAttributeCount > 0 && attrCount > opts.MaxAttributeCount {
		opts.Diagnostics.Add(diagnostics.SevWarning, structure,
			"document has %d attributes, exceeding MaxAttributeCount %d", attrCount, opts.MaxAttributeCount)
	}
}
