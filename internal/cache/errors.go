// Package cache reads the file-system research cache of coach career histories.
package cache

import "fmt"

// LoadError represents an error reading or decoding one cache file.
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("cache load error: %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("cache load error: %s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
