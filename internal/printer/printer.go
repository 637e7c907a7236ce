// Package printer renders a parsed document as structured output, grounded
// on the teacher's hive/printer package: a Format-selected Printer wrapping
// a reader and a writer, dispatching PrintKey/PrintValue/PrintTree to one
// function per format.
package printer

import (
	"fmt"
	"io"

	"github.com/joshuapare/lsartifact/internal/arena"
	"github.com/joshuapare/lsartifact/internal/document"
)

const (
	DefaultIndentSize    = 2
	DefaultMaxDepth      = 0
	DefaultMaxValueBytes = 32
)

// Format specifies the output format for printing.
type Format string

const (
	FormatStructure Format = "structure"
	FormatYAML      Format = "yaml"
	FormatJSON      Format = "json"
	FormatXML       Format = "xml"
)

// Options controls printing behavior.
type Options struct {
	// Format specifies the output format (structure, yaml, json, xml).
	Format Format

	// IndentSize is the number of spaces per indent level.
	IndentSize int

	// MaxDepth limits recursion depth (0 = unlimited).
	MaxDepth int

	// ShowValues includes attribute values in output.
	ShowValues bool

	// ShowValueTypes includes the value lattice's type name alongside each value.
	ShowValueTypes bool

	// MaxValueBytes limits how many bytes of a ScratchBuffer value to display.
	// Longer values are truncated. 0 means no limit.
	MaxValueBytes int
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:         FormatStructure,
		IndentSize:     DefaultIndentSize,
		MaxDepth:       DefaultMaxDepth,
		ShowValues:     true,
		ShowValueTypes: true,
		MaxValueBytes:  DefaultMaxValueBytes,
	}
}

// Printer renders parts of a Document to a writer according to Options.
type Printer struct {
	opts   Options
	writer io.Writer
	doc    *document.Document
}

// New creates a Printer over doc, writing to w according to opts.
func New(doc *document.Document, w io.Writer, opts Options) *Printer {
	return &Printer{doc: doc, writer: w, opts: opts}
}

// PrintKey prints the node reached by resolving path from index, without
// descending into its children.
func (p *Printer) PrintKey(index arena.Index, path string) error {
	node, ok := p.resolve(index, path)
	if !ok {
		return fmt.Errorf("find node %q: not found", path)
	}
	switch p.opts.Format {
	case FormatJSON:
		return p.printJSON(p.buildTree(node, 0))
	case FormatYAML:
		return p.printYAML(p.buildTree(node, 0))
	case FormatXML:
		return p.printXML(p.buildTree(node, 0))
	default:
		return p.printStructureKey(node, 0)
	}
}

// PrintValue prints a single attribute's value.
func (p *Printer) PrintValue(index arena.Index, keyPath, attrName string) error {
	node, ok := p.resolve(index, keyPath)
	if !ok {
		return fmt.Errorf("find node %q: not found", keyPath)
	}
	attr, ok := p.doc.Attribute(node, attrName)
	if !ok {
		return fmt.Errorf("attribute %q: not found", attrName)
	}
	switch p.opts.Format {
	case FormatJSON:
		return p.printJSON(valueNode{Name: attrName, Value: p.formatValue(attr.Value)})
	case FormatYAML:
		return p.printYAML(valueNode{Name: attrName, Value: p.formatValue(attr.Value)})
	case FormatXML:
		return p.printXML(valueNode{Name: attrName, Value: p.formatValue(attr.Value)})
	default:
		fmt.Fprintf(p.writer, "%s = %s\n", attrName, p.formatValue(attr.Value))
		return nil
	}
}

// PrintTree prints the full subtree rooted at resolving path from index.
func (p *Printer) PrintTree(index arena.Index, path string) error {
	node, ok := p.resolve(index, path)
	if !ok {
		return fmt.Errorf("find node %q: not found", path)
	}
	switch p.opts.Format {
	case FormatJSON:
		return p.printJSON(p.buildTree(node, 0))
	case FormatYAML:
		return p.printYAML(p.buildTree(node, 0))
	case FormatXML:
		return p.printXML(p.buildTree(node, 0))
	default:
		return p.printStructureTree(node, 0)
	}
}

func (p *Printer) resolve(index arena.Index, path string) (arena.Index, bool) {
	if path == "" || path == "/" {
		return index, true
	}
	return p.doc.Resolve(index, path)
}
