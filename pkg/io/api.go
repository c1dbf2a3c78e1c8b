package io

import (
	"os"
)

// FileIO is an interface for the whole-file operations catalog backends and the exporter need
type FileIO interface {
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm os.FileMode) error
	MkdirAll(path string, perm os.FileMode) error
	FileExists(path string) bool
}
