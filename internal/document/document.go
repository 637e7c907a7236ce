package document

import (
	"strconv"
	"strings"

	"github.com/joshuapare/lsartifact/internal/arena"
	"github.com/joshuapare/lsartifact/internal/value"
)

// Document is a parsed tree plus the query operations defined over it,
// mirroring the original implementation's Resource + ResourceReader.
type Document struct {
	arena *arena.Arena[Data]
}

// New returns an empty document.
func New() *Document { return &Document{arena: arena.New[Data]()} }

// NewWithArena wraps an already-populated arena, as produced by a codec.
func NewWithArena(a *arena.Arena[Data]) *Document { return &Document{arena: a} }

func (d *Document) Arena() *arena.Arena[Data] { return d.arena }
func (d *Document) Size() int                 { return d.arena.Size() }
func (d *Document) RootIndexes() []arena.Index { return d.arena.RootIndexes() }
func (d *Document) Parent(i arena.Index) *arena.Index { return d.arena.Parent(i) }
func (d *Document) Children(i arena.Index) []arena.Index { return d.arena.Children(i) }
func (d *Document) Value(i arena.Index) *Data { return d.arena.Value(i) }
func (d *Document) RecursiveIter(i arena.Index) []arena.Index { return d.arena.RecursiveIter(i) }

// Alloc appends a node, mirroring arena.Alloc.
func (d *Document) Alloc(data Data, parent *arena.Index) arena.Index {
	return d.arena.Alloc(data, parent)
}

// Matches evaluates selector against the node at index.
func (d *Document) Matches(index arena.Index, selector Selector) bool {
	data := d.Value(index)
	switch s := selector.(type) {
	case Any:
		return true
	case Name:
		return data.Name == string(s)
	case AttributeEquals:
		attr, ok := data.Attributes.Get(s.Name)
		return ok && value.Equal(attr.Value, s.Value)
	case AnyChildMatches:
		for _, child := range d.Children(index) {
			if d.Matches(child, s.Inner) {
				return true
			}
		}
		return false
	case And:
		for _, sub := range s {
			if !d.Matches(index, sub) {
				return false
			}
		}
		return true
	case Or:
		for _, sub := range s {
			if d.Matches(index, sub) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// Find returns every node, across every root, matching selector, in
// preorder.
func (d *Document) Find(selector Selector) []arena.Index {
	var out []arena.Index
	for _, root := range d.RootIndexes() {
		for _, idx := range d.RecursiveIter(root) {
			if d.Matches(idx, selector) {
				out = append(out, idx)
			}
		}
	}
	return out
}

// FullPath renders index's path from its root, disambiguating same-named
// siblings with a [k] suffix (k = position among same-named children).
func (d *Document) FullPath(index arena.Index) string {
	parent := d.Parent(index)
	if parent == nil {
		return "/" + d.Value(index).Name
	}
	parentPath := d.FullPath(*parent)
	name := d.Value(index).Name
	var similar []arena.Index
	for _, child := range d.Children(*parent) {
		if d.Value(child).Name == name {
			similar = append(similar, child)
		}
	}
	if len(similar) == 1 {
		return parentPath + "/" + name
	}
	pos := 0
	for i, child := range similar {
		if child == index {
			pos = i
			break
		}
	}
	return parentPath + "/" + name + "[" + strconv.Itoa(pos) + "]"
}

// Attribute returns the named attribute on index, if present.
func (d *Document) Attribute(index arena.Index, name string) (Attribute, bool) {
	return d.Value(index).Attributes.Get(name)
}

// AttributeValue is Attribute with the wrapper value unwrapped.
func (d *Document) AttributeValue(index arena.Index, name string) (value.Value, bool) {
	a, ok := d.Attribute(index, name)
	if !ok {
		return nil, false
	}
	return a.Value, true
}

// Resolve walks an absolute, slash-separated path ("/A/B[1]/C") starting
// from index, returning the node it reaches.
//
// This reproduces a quirk of the original implementation: when a path
// segment carries a "[k]" disambiguator, the candidate siblings are
// collected from the children of the just-matched node rather than from the
// children of the node being descended from. That only changes behaviour
// when the matched node itself has same-named children, which none of the
// known corpora exercise, so the original (not the "obviously intended")
// behaviour is preserved rather than corrected. Only k > 0 takes that path:
// a "[0]" suffix resolves to the first matching child itself, the same node
// the bare name resolves to, without looking at that child's children.
func (d *Document) Resolve(index arena.Index, path string) (arena.Index, bool) {
	if !strings.HasPrefix(path, "/") {
		return 0, false
	}
	current := index
	for _, part := range strings.Split(path, "/") {
		if part == "" {
			continue
		}
		name := part
		offset := 0
		if strings.HasSuffix(part, "]") {
			open := strings.Index(part, "[")
			if open < 0 {
				return 0, false
			}
			name = part[:open]
			offsetStr := strings.TrimSuffix(part[open+1:], "]")
			n, err := strconv.Atoi(offsetStr)
			if err != nil {
				return 0, false
			}
			offset = n
		}

		cursor := current
		found := false
		for _, child := range d.Children(cursor) {
			if d.Value(child).Name == name {
				found = true
				cursor = child
				break
			}
		}
		if !found {
			return 0, false
		}
		if offset > 0 {
			var similar []arena.Index
			matchedName := d.Value(cursor).Name
			for _, child := range d.Children(cursor) {
				if matchedName == d.Value(child).Name {
					similar = append(similar, child)
				}
			}
			if len(similar) <= offset {
				return 0, false
			}
			cursor = similar[offset]
		}
		current = cursor
	}
	return current, true
}

// ResolveAttribute splits path into a node path and a trailing attribute
// name, resolves the node path from index, and looks up the attribute.
func (d *Document) ResolveAttribute(index arena.Index, path string) (Attribute, bool) {
	if !strings.HasPrefix(path, "/") {
		return Attribute{}, false
	}
	parts := strings.Split(path, "/")
	attrName := parts[len(parts)-1]
	nodePath := strings.Join(parts[:len(parts)-1], "/")
	if nodePath == "" {
		return d.Attribute(index, attrName)
	}
	nodeIndex, ok := d.Resolve(index, nodePath)
	if !ok {
		return Attribute{}, false
	}
	return d.Attribute(nodeIndex, attrName)
}

// ResolveAttributeValue is ResolveAttribute with the wrapper value
// unwrapped.
func (d *Document) ResolveAttributeValue(index arena.Index, path string) (value.Value, bool) {
	a, ok := d.ResolveAttribute(index, path)
	if !ok {
		return nil, false
	}
	return a.Value, true
}
