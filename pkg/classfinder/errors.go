package classfinder

import (
	"errors"
	"fmt"
)

// Sentinel errors for finder creation.
var (
	// ErrInvalidName indicates a registry name that is not a safe
	// path segment. Names must match [A-Za-z0-9_-]+.
	ErrInvalidName = errors.New("invalid registry name")

	// ErrNilLoader indicates Get was called without a loader and no
	// process default has been set.
	ErrNilLoader = errors.New("no loader configured")
)

// ResourceError wraps an I/O failure while enumerating or reading an
// index resource. It is fatal to the populate or reload call that hit it;
// the finder's previous snapshot, if any, stays in place.
type ResourceError struct {
	// Registry is the finder name being populated.
	Registry string
	// Path is the resource path or origin involved.
	Path string
	// Op is the operation that failed ("enumerate", "open", "read").
	Op string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ResourceError) Error() string {
	return fmt.Sprintf("classfinder %s: %s %s: %v", e.Registry, e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *ResourceError) Unwrap() error {
	return e.Err
}
