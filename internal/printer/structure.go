package printer

import (
	"fmt"
	"strings"

	"github.com/joshuapare/lsartifact/internal/arena"
)

func (p *Printer) indent(depth int) string {
	return strings.Repeat(" ", depth*p.opts.IndentSize)
}

func (p *Printer) printStructureKey(index arena.Index, depth int) error {
	data := p.doc.Value(index)
	fmt.Fprintf(p.writer, "%s%s\n", p.indent(depth), data.Name)
	if !p.opts.ShowValues {
		return nil
	}
	for name, attr := range data.Attributes {
		fmt.Fprintf(p.writer, "%s  %s = %s\n", p.indent(depth), name, p.formatValue(attr.Value))
	}
	return nil
}

func (p *Printer) printStructureTree(index arena.Index, depth int) error {
	if err := p.printStructureKey(index, depth); err != nil {
		return err
	}
	if p.opts.MaxDepth > 0 && depth+1 >= p.opts.MaxDepth {
		return nil
	}
	for _, child := range p.doc.Children(index) {
		if err := p.printStructureTree(child, depth+1); err != nil {
			return err
		}
	}
	return nil
}
