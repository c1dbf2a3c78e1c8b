package io

import (
	"fmt"
	"os"
	"path/filepath"
)

var _ FileIO = (*FileSystem)(nil)

// FileSystem is the default implementation of file io using the os package
type FileSystem struct{}

// ReadFile is a wrapper around os.ReadFile
func (o *FileSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// MkdirAll is a wrapper around os.MkdirAll
func (o *FileSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// WriteFile replaces name with data. The data is written to a temporary file in the same
// directory and renamed over the target so readers never observe a partial file.
func (o *FileSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(name)
	if err := o.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(name)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpName := tmp.Name()

	_, err = tmp.Write(data)
	if err == nil {
		err = tmp.Chmod(perm)
	}
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", name, err)
	}

	if err := os.Rename(tmpName, name); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", name, err)
	}

	return nil
}

// FileExists reports whether path can be stat'd
func (o *FileSystem) FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
