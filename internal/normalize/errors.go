// Package normalize canonicalizes free-text school names against the NMDP GITG program database.
package normalize

import "fmt"

// LoadError represents an error during file I/O or JSON parsing of the
// program database or alias table. Construction cannot proceed past it.
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("load error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
