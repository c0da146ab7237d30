package classfinder

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"reflect"
	"sync"

	"github.com/randalmurphal/classfinder/pkg/classfinder/registry"
)

// Resource is one index file discovered on a loader's search path.
type Resource interface {
	// Open returns the resource's content as a UTF-8 byte stream.
	// The caller must close it.
	Open() (io.ReadCloser, error)

	// Origin identifies the resource for logging and error messages.
	Origin() string
}

// Loader is the capability a Finder scans through: it enumerates index
// resources by relative path and resolves fully-qualified type names to
// live handles. Implementations must be safe for concurrent use.
type Loader interface {
	// Resources returns every resource visible on the search path at
	// relPath, one per contributing root. Roots that do not contain
	// relPath are skipped; an empty result is not an error.
	Resources(relPath string) ([]Resource, error)

	// Resolve maps a fully-qualified type name to its handle.
	Resolve(name string) (reflect.Type, bool)
}

// TypeTable maps fully-qualified type names to reflect.Type handles.
// Go has no by-name type lookup, so anything an index file may reference
// must be registered here first - typically from an init function, the
// same way gob.Register works.
//
// All methods are safe for concurrent use.
type TypeTable struct {
	types *registry.Registry[string, reflect.Type]
}

// NewTypeTable creates an empty type table.
func NewTypeTable() *TypeTable {
	return &TypeTable{types: registry.New[string, reflect.Type]()}
}

// Register binds a fully-qualified name to a type handle.
// Re-registering a name replaces the previous binding.
func (t *TypeTable) Register(name string, typ reflect.Type) {
	t.types.Register(name, typ)
}

// Resolve returns the handle bound to name and whether it exists.
func (t *TypeTable) Resolve(name string) (reflect.Type, bool) {
	return t.types.Get(name)
}

// Len returns the number of registered names.
func (t *TypeTable) Len() int {
	return t.types.Len()
}

// RegisterType binds a fully-qualified name to the type T.
//
//	classfinder.RegisterType[MyHandler](table, "com.example.MyHandler")
func RegisterType[T any](t *TypeTable, name string) {
	t.Register(name, reflect.TypeOf((*T)(nil)).Elem())
}

// SearchPath is a Loader over an ordered list of fs.FS roots plus a
// TypeTable. Each root is one contributing artifact: a directory
// (os.DirFS), an archive (zip.Reader implements fs.FS), an embedded tree
// (embed.FS), or a test tree (fstest.MapFS). Every root may ship its own
// index file under the same relative path and all of them are merged.
type SearchPath struct {
	types *TypeTable
	roots []fs.FS
}

// NewSearchPath creates a loader over the given roots, in order.
func NewSearchPath(types *TypeTable, roots ...fs.FS) *SearchPath {
	return &SearchPath{types: types, roots: roots}
}

// Resources returns one resource per root that contains relPath.
// A stat failure other than "not exist" aborts the enumeration.
func (s *SearchPath) Resources(relPath string) ([]Resource, error) {
	var out []Resource
	for i, root := range s.roots {
		if _, err := fs.Stat(root, relPath); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("stat root[%d] %s: %w", i, relPath, err)
		}
		out = append(out, &fsResource{
			fsys:   root,
			path:   relPath,
			origin: fmt.Sprintf("root[%d]/%s", i, relPath),
		})
	}
	return out, nil
}

// Resolve looks the name up in the search path's type table.
func (s *SearchPath) Resolve(name string) (reflect.Type, bool) {
	if s.types == nil {
		return nil, false
	}
	return s.types.Resolve(name)
}

// fsResource is a Resource backed by a file inside one fs.FS root.
type fsResource struct {
	fsys   fs.FS
	path   string
	origin string
}

func (r *fsResource) Open() (io.ReadCloser, error) {
	return r.fsys.Open(r.path)
}

func (r *fsResource) Origin() string {
	return r.origin
}

// defaultLoader is the process-wide loader used by Get when no WithLoader
// option is supplied. Nil until SetDefaultLoader is called.
var defaultLoader struct {
	mu sync.RWMutex
	l  Loader
}

// SetDefaultLoader installs the loader used by Get when the caller does
// not pass WithLoader. Finders already constructed keep the loader they
// were bound to.
func SetDefaultLoader(l Loader) {
	defaultLoader.mu.Lock()
	defaultLoader.l = l
	defaultLoader.mu.Unlock()
}

// DefaultLoader returns the process-wide default loader, or nil if none
// has been set.
func DefaultLoader() Loader {
	defaultLoader.mu.RLock()
	defer defaultLoader.mu.RUnlock()
	return defaultLoader.l
}
