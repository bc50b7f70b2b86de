package driver

import "fmt"

// LoadError reports that a source file could not be read from disk.
type LoadError struct {
	Path string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("could not read file %q", e.Path)
}

func errLoadFailed(path string) error {
	return &LoadError{Path: path}
}
