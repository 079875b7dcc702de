package abbrev

import (
	"errors"
	"fmt"
)

// Sentinel errors for table construction and loading.
var (
	// ErrUnknownCategory indicates a category name that is not one of the three tables.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrMissingCategory indicates a table source without one of the three categories.
	ErrMissingCategory = errors.New("missing category")

	// ErrUnsupportedFormat indicates a table file format that cannot be parsed.
	ErrUnsupportedFormat = errors.New("unsupported table format")

	// ErrEmptyKey indicates an empty word inside a category mapping.
	ErrEmptyKey = errors.New("empty word in category")
)

// LoadError wraps a table loading failure with the source it came from.
type LoadError struct {
	Source string // File path or "embedded"
	Err    error  // Underlying error
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("load abbreviation table %s: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("load abbreviation table: %v", e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *LoadError) Unwrap() error {
	return e.Err
}
