package vfs

import (
	"os"
	"path/filepath"

	"github.com/google/renameio"
)

// Unpack writes every member's contents under targetDir, recreating its
// relative directory structure, the way the original's Unpack trait's
// unpack() does — but via renameio.WriteFile so a process killed mid-extract
// never leaves a half-written member behind.
func (h *Handle) Unpack(targetDir string) error {
	for path := range h.entries {
		contents, err := h.Contents(path)
		if err != nil {
			return err
		}
		target := filepath.Join(targetDir, path)
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return err
		}
		if err := renameio.WriteFile(target, contents, 0o644); err != nil {
			return err
		}
	}
	return nil
}
