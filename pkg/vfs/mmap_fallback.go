//go:build !unix

package vfs

import "os"

// mmapFile reads the entire file when mmap is not available on this platform.
func mmapFile(path string) ([]byte, func() error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, func() error { return nil }, err
	}
	return data, func() error { return nil }, nil
}
