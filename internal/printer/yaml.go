package printer

import "gopkg.in/yaml.v3"

func (p *Printer) printYAML(v any) error {
	enc := yaml.NewEncoder(p.writer)
	enc.SetIndent(p.opts.IndentSize)
	defer enc.Close()
	return enc.Encode(v)
}
