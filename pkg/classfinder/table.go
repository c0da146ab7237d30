package classfinder

import (
	"context"
	"sort"

	"github.com/randalmurphal/classfinder/pkg/classfinder/registry"
)

// Table is a process-scoped mapping from registry name to Finder.
// Each entry is created at most once: concurrent first requests for the
// same name construct exactly one Finder and run exactly one populate
// scan. Finders are never removed.
//
// A Table can be constructed and injected where explicit ownership is
// wanted; the package-level Get uses a shared default Table.
type Table struct {
	finders *registry.Registry[string, *Finder]
}

// NewTable creates an empty finder table.
func NewTable() *Table {
	return &Table{finders: registry.New[string, *Finder]()}
}

// Get returns the Finder for name, constructing and populating it on
// first request. The name is validated before the cache is touched.
//
// Options apply only when this call constructs the finder; on a cache hit
// they are ignored (first-writer-wins - the first caller's loader stays
// bound to the name). A populate failure is returned to the caller and
// nothing is stored, so a later Get retries.
func (t *Table) Get(ctx context.Context, name string, opts ...Option) (*Finder, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	return t.finders.GetOrCreate(name, func() (*Finder, error) {
		cfg := defaultFinderConfig()
		for _, opt := range opts {
			opt(&cfg)
		}
		return newFinder(ctx, name, cfg)
	})
}

// Lookup returns the Finder for name if one has already been constructed.
// It never constructs or scans.
func (t *Table) Lookup(name string) (*Finder, bool) {
	return t.finders.Get(name)
}

// Names returns the names of all constructed finders in lexicographic order.
func (t *Table) Names() []string {
	names := t.finders.Keys()
	sort.Strings(names)
	return names
}

// Len returns the number of constructed finders.
func (t *Table) Len() int {
	return t.finders.Len()
}

// defaultTable backs the package-level Get and Lookup.
var defaultTable = NewTable()

// Get returns the Finder for name from the process-wide default table,
// constructing and populating it on first request. See Table.Get.
func Get(ctx context.Context, name string, opts ...Option) (*Finder, error) {
	return defaultTable.Get(ctx, name, opts...)
}

// Lookup returns an already-constructed Finder from the default table.
func Lookup(name string) (*Finder, bool) {
	return defaultTable.Lookup(name)
}
