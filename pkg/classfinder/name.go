package classfinder

import (
	"fmt"
	"regexp"
)

// IndexDir is the directory, relative to each search-path root, that holds
// index resources. Producers and consumers share this layout.
const IndexDir = "META-INF/classfinder"

// namePattern accepts names that are safe to splice into a resource path.
var namePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidateName checks that name is a safe registry name.
// Returns ErrInvalidName (wrapped with the offending value) otherwise.
// Validation runs before any cache lookup or I/O.
func ValidateName(name string) error {
	if !namePattern.MatchString(name) {
		return fmt.Errorf("%w: %q must match %s", ErrInvalidName, name, namePattern)
	}
	return nil
}

// IndexPath returns the relative resource path for a registry name,
// e.g. "META-INF/classfinder/handlers". The name must already be valid.
func IndexPath(name string) string {
	return IndexDir + "/" + name
}
