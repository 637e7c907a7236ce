package printer

import (
	"encoding/xml"
	"strings"
)

func (p *Printer) printXML(v any) error {
	enc := xml.NewEncoder(p.writer)
	enc.Indent("", strings.Repeat(" ", p.opts.IndentSize))
	if err := enc.Encode(v); err != nil {
		return err
	}
	_, err := p.writer.Write([]byte("\n"))
	return err
}
