// Package vfs is the file-level façade over a PKG archive: opening the main
// file and its part siblings, looking up and materialising member contents,
// and unpacking to disk, grounded on the original implementation's
// lsv/package.rs (Package/PackageHandle/Unpack/Transform).
package vfs

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/joshuapare/lsartifact/internal/format"
	"github.com/joshuapare/lsartifact/internal/pkgarchive"
)

// partPath reproduces the original's part-file naming exactly: the parent
// directory joined with "{full file name}_{part}{extension without dot}" —
// note the extension appears twice (once already inside the base name, once
// appended again), which is how the original actually names part files, not
// an oversight to be "cleaned up" here.
func partPath(path string, part int) string {
	dir := filepath.Dir(path)
	base := filepath.Base(path)
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	return filepath.Join(dir, fmt.Sprintf("%s_%d%s", base, part, ext))
}

func partPaths(path string, count int) []string {
	paths := make([]string, count)
	for i := 0; i < count; i++ {
		paths[i] = partPath(path, i)
	}
	return paths
}

// Handle is an open PKG archive: its header, file table, and the backing
// streams for every part file (index 0 is always the main archive).
type Handle struct {
	path    string
	header  pkgarchive.Header
	entries map[string]*pkgarchive.FileEntry
	parts   []io.ReadSeeker
	unmap   []func() error
}

// Open mmaps path and every part sibling it names, and decodes the header
// and file table.
func Open(path string) (*Handle, error) {
	data, cleanup, err := mmapFile(path)
	if err != nil {
		return nil, err
	}
	unmap := []func() error{cleanup}

	main := bytes.NewReader(data)
	header, err := pkgarchive.ReadHeader(main)
	if err != nil {
		closeAll(unmap)
		return nil, err
	}

	parts := make([]io.ReadSeeker, 1, header.PartCount)
	parts[0] = main
	for _, p := range partPaths(path, int(header.PartCount)-1) {
		pdata, pcleanup, err := mmapFile(p)
		if err != nil {
			closeAll(unmap)
			return nil, err
		}
		unmap = append(unmap, pcleanup)
		parts = append(parts, bytes.NewReader(pdata))
	}

	entryList, err := pkgarchive.ReadFileTable(main, header)
	if err != nil {
		closeAll(unmap)
		return nil, err
	}
	entries := make(map[string]*pkgarchive.FileEntry, len(entryList))
	for _, e := range entryList {
		entries[e.Path] = e
	}

	return &Handle{path: path, header: header, entries: entries, parts: parts, unmap: unmap}, nil
}

func closeAll(cleanups []func() error) {
	for _, c := range cleanups {
		c()
	}
}

// Close unmaps every backing stream.
func (h *Handle) Close() error {
	var firstErr error
	for _, c := range h.unmap {
		if err := c(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Path returns the archive's on-disk path, as given to Open.
func (h *Handle) Path() string { return h.path }

// Header returns the decoded archive footer.
func (h *Handle) Header() pkgarchive.Header { return h.header }

// Files returns every member path in the archive.
func (h *Handle) Files() []string {
	out := make([]string, 0, len(h.entries))
	for p := range h.entries {
		out = append(out, p)
	}
	return out
}

// Contents returns the decompressed bytes of the named member.
func (h *Handle) Contents(path string) ([]byte, error) {
	entry, ok := h.entries[path]
	if !ok {
		return nil, format.FileNotFound(path)
	}
	return pkgarchive.ReadFileContents(h.parts, h.header, entry)
}
