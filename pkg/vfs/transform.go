package vfs

import (
	"bytes"

	"github.com/joshuapare/lsartifact/pkg/resource"
)

// AsTBT materialises the named member and parses it as a TBT stream,
// mirroring the original's Transform trait's lsb_file.
func (h *Handle) AsTBT(path string, opts resource.Options) (*resource.Resource, error) {
	contents, err := h.Contents(path)
	if err != nil {
		return nil, err
	}
	return resource.OpenTBT(bytes.NewReader(contents), opts)
}

// AsHBT materialises the named member and parses it as an HBT stream,
// mirroring the original's Transform trait's lsf_file.
func (h *Handle) AsHBT(path string, opts resource.Options) (*resource.Resource, error) {
	contents, err := h.Contents(path)
	if err != nil {
		return nil, err
	}
	return resource.OpenHBT(bytes.NewReader(contents), opts)
}
