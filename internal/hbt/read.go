package hbt

import (
	"io"

	"github.com/joshuapare/lsartifact/internal/bio"
	"github.com/joshuapare/lsartifact/internal/document"
)

// Read decodes a complete HBT stream into a Document.
func Read(rs io.ReadSeeker) (*document.Document, error) {
	br := bio.NewReader(rs)

	header, err := readHeader(br)
	if err != nil {
		return nil, err
	}
	strings, err := readStringLists(br, header)
	if err != nil {
		return nil, err
	}
	nodes, err := readNodeInfos(br, header)
	if err != nil {
		return nil, err
	}
	attrs, err := readAttributeInfos(br, header)
	if err != nil {
		return nil, err
	}
	a, err := readArena(br, header, strings, nodes, attrs)
	if err != nil {
		return nil, err
	}

	return document.NewWithArena(a), nil
}
