package document

import "github.com/joshuapare/lsartifact/internal/value"

// Selector is a closed query predicate over Document nodes, mirroring the
// original implementation's resource/node/selector.rs Selector enum.
type Selector interface {
	isSelector()
}

// Any matches every node.
type Any struct{}

func (Any) isSelector() {}

// Name matches a node whose Name equals the given string exactly.
type Name string

func (Name) isSelector() {}

// AttributeEquals matches a node carrying an attribute of the given name
// whose value equals Value exactly.
type AttributeEquals struct {
	Name  string
	Value value.Value
}

func (AttributeEquals) isSelector() {}

// AnyChildMatches matches a node with at least one direct child matching
// Inner.
type AnyChildMatches struct {
	Inner Selector
}

func (AnyChildMatches) isSelector() {}

// And matches a node that matches every selector in the list.
type And []Selector

func (And) isSelector() {}

// Or matches a node that matches at least one selector in the list.
type Or []Selector

func (Or) isSelector() {}
