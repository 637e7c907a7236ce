package printer

import (
	"fmt"

	"github.com/joshuapare/lsartifact/internal/arena"
	"github.com/joshuapare/lsartifact/internal/value"
)

// treeNode is the format-neutral shape every structured encoder (JSON, YAML,
// XML) renders — built once per PrintKey/PrintTree call and then handed to
// whichever encoder Options.Format selects.
type treeNode struct {
	Name       string            `json:"name" yaml:"name" xml:"name,attr"`
	Attributes map[string]string `json:"attributes,omitempty" yaml:"attributes,omitempty" xml:"attribute,omitempty"`
	Children   []treeNode        `json:"children,omitempty" yaml:"children,omitempty" xml:"child,omitempty"`
}

// valueNode is the shape PrintValue renders for a single attribute.
type valueNode struct {
	Name  string `json:"name" yaml:"name" xml:"name,attr"`
	Value string `json:"value" yaml:"value" xml:",chardata"`
}

func (p *Printer) buildTree(index arena.Index, depth int) treeNode {
	data := p.doc.Value(index)
	node := treeNode{Name: data.Name}

	if p.opts.ShowValues && len(data.Attributes) > 0 {
		node.Attributes = make(map[string]string, len(data.Attributes))
		for name, attr := range data.Attributes {
			node.Attributes[name] = p.formatValue(attr.Value)
		}
	}

	if p.opts.MaxDepth > 0 && depth+1 >= p.opts.MaxDepth {
		return node
	}
	for _, child := range p.doc.Children(index) {
		node.Children = append(node.Children, p.buildTree(child, depth+1))
	}
	return node
}

// formatValue renders a value for display, truncating ScratchBuffer payloads
// past MaxValueBytes and optionally prefixing the lattice type name.
func (p *Printer) formatValue(v value.Value) string {
	s := v.String()
	if buf, ok := v.(value.ScratchBuffer); ok && p.opts.MaxValueBytes > 0 && len(buf) > p.opts.MaxValueBytes {
		s = fmt.Sprintf("%X...(%d bytes)", []byte(buf)[:p.opts.MaxValueBytes], len(buf))
	}
	if p.opts.ShowValueTypes {
		return fmt.Sprintf("(%s) %s", typeName(v), s)
	}
	return s
}

func typeName(v value.Value) string {
	switch v.(type) {
	case value.None:
		return "None"
	case value.Byte:
		return "Byte"
	case value.Short:
		return "Short"
	case value.UShort:
		return "UShort"
	case value.Int:
		return "Int"
	case value.UInt:
		return "UInt"
	case value.Float:
		return "Float"
	case value.Double:
		return "Double"
	case value.Bool:
		return "Bool"
	case value.String:
		return "String"
	case value.Path:
		return "Path"
	case value.FixedString:
		return "FixedString"
	case value.LsString:
		return "LsString"
	case value.ULongLong:
		return "ULongLong"
	case value.ScratchBuffer:
		return "ScratchBuffer"
	case value.Long:
		return "Long"
	case value.Int8:
		return "Int8"
	case value.TranslatedString:
		return "TranslatedString"
	case value.WString:
		return "WString"
	case value.LswString:
		return "LswString"
	case value.UUID:
		return "UUID"
	case value.Int64:
		return "Int64"
	case value.TranslatedFsString:
		return "TranslatedFsString"
	default:
		return "Vector"
	}
}
