// Package registry provides a generic thread-safe registry for values
// indexed by key.
//
// Registry is designed for read-heavy workloads using sync.RWMutex. It
// supports any comparable key type and any value type through Go generics.
//
// # Lazy Initialization
//
// Use GetOrCreate for thread-safe lazy initialization:
//
//	finders := registry.New[string, *Finder]()
//
//	// First call constructs the finder, subsequent calls return the same one
//	f, err := finders.GetOrCreate("handlers", func() (*Finder, error) {
//	    return newFinder("handlers")
//	})
//
// GetOrCreate is atomic - the factory function is called at most once per
// key, even under concurrent access. A factory error leaves the table
// unchanged so the next caller retries construction.
package registry
