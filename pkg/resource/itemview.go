package resource

import (
	"strings"

	"github.com/joshuapare/lsartifact/internal/arena"
	"github.com/joshuapare/lsartifact/internal/document"
	"github.com/joshuapare/lsartifact/internal/value"
)

// Entity is a read-only view over one node of a given name that carries a
// "Parent" uint attribute — the generic shape of the original's per-game
// domain types (Item, Character, ...), which are all thin wrappers around an
// arena index plus a handful of resolve_attribute_value-backed accessors.
// Entity never mutates the document it views.
type Entity struct {
	doc   *document.Document
	index arena.Index
}

// Index returns the wrapped node index.
func (e Entity) Index() arena.Index { return e.index }

// resolve looks up an attribute path relative to the entity; a path without
// a leading "/" is resolved as if it had one.
func (e Entity) resolve(path string) (value.Value, bool) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return e.doc.ResolveAttributeValue(e.index, path)
}

// FindEntitiesByParent returns every node named entityName whose "Parent"
// attribute equals parentID, across the whole document.
func FindEntitiesByParent(doc *document.Document, entityName string, parentID uint32) []Entity {
	selector := document.And{
		document.Name(entityName),
		document.AttributeEquals{Name: "Parent", Value: value.UInt(parentID)},
	}
	indexes := doc.Find(selector)
	out := make([]Entity, 0, len(indexes))
	for _, idx := range indexes {
		out = append(out, Entity{doc: doc, index: idx})
	}
	return out
}

// StringAttr resolves path relative to the entity and returns it as a
// string, falling back to def if the path is absent or not string-shaped.
func (e Entity) StringAttr(path string, def string) string {
	v, ok := e.resolve(path)
	if !ok {
		return def
	}
	switch s := v.(type) {
	case value.String:
		return string(s)
	case value.FixedString:
		return string(s)
	case value.LsString:
		return string(s)
	case value.Path:
		return string(s)
	default:
		return def
	}
}

// IntAttr resolves path relative to the entity and returns it as an int32,
// falling back to def if the path is absent or not Int-shaped.
func (e Entity) IntAttr(path string, def int32) int32 {
	v, ok := e.resolve(path)
	if !ok {
		return def
	}
	if i, ok := v.(value.Int); ok {
		return int32(i)
	}
	return def
}

// UIntAttr resolves path relative to the entity and returns it as a uint32,
// falling back to def if the path is absent or not UInt-shaped.
func (e Entity) UIntAttr(path string, def uint32) uint32 {
	v, ok := e.resolve(path)
	if !ok {
		return def
	}
	if u, ok := v.(value.UInt); ok {
		return uint32(u)
	}
	return def
}
