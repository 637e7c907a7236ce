// Package document implements the parsed tree model and query layer shared
// by the TBT and HBT codecs (spec §3, §4.8): a node carries a name, a kind
// (plain element or named region root), and a string-keyed attribute map of
// lattice values; Selector and the Document query methods mirror the
// original implementation's resource/node/{data,attribute,selector}.rs and
// resource/reader.rs.
package document

import "github.com/joshuapare/lsartifact/internal/value"

// Kind distinguishes a region root (the entry point a PKG/TBT/HBT resource
// exposes by name) from an ordinary element.
type Kind int

const (
	KindElement Kind = iota
	KindRegion
)

// Data is the value every node in a Document carries.
type Data struct {
	Kind       Kind
	RegionName string
	Name       string
	Attributes AttributeMap
}

// NewData returns a plain element node with an empty attribute map.
func NewData(name string) Data {
	return Data{Kind: KindElement, Name: name, Attributes: NewAttributeMap()}
}

// NewRegionData returns a region-root node named region.
func NewRegionData(name, region string) Data {
	return Data{Kind: KindRegion, RegionName: region, Name: name, Attributes: NewAttributeMap()}
}

// Attribute wraps one attribute value. It exists as its own type (rather
// than a bare value.Value) so the document model can grow per-attribute
// metadata later without breaking callers.
type Attribute struct {
	Value value.Value
}

// AttributeMap is a node's string-keyed attribute set.
type AttributeMap map[string]Attribute

// NewAttributeMap returns an empty attribute map.
func NewAttributeMap() AttributeMap { return AttributeMap{} }

func (m AttributeMap) Get(name string) (Attribute, bool) {
	a, ok := m[name]
	return a, ok
}

func (m AttributeMap) Set(name string, value value.Value) {
	m[name] = Attribute{Value: value}
}
