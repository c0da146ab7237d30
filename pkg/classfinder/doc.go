/*
Package classfinder loads named type indexes produced at build time and
resolves them into live reflect.Type handles at run time.

# Overview

A type index is a plain-text resource at META-INF/classfinder/<name> inside
a contributing artifact: UTF-8, one fully-qualified type name per line, no
header, no comments. Several independently built artifacts may each ship an
index file under the same name; classfinder merges all of them into one
de-duplicated view.

The package keeps a process-wide table of named Finder instances. A Finder
is created at most once per name, populated synchronously on first request,
and can be re-scanned on demand with Reload.

# Basic Usage

Register the types an index may reference, point a loader at the artifacts,
and ask for a named finder:

	types := classfinder.NewTypeTable()
	classfinder.RegisterType[MyHandler](types, "com.example.MyHandler")

	loader := classfinder.NewSearchPath(types, os.DirFS("plugins"), appFS)

	finder, err := classfinder.Get(ctx, "handlers", classfinder.WithLoader(loader))
	if err != nil {
	    log.Fatal(err)
	}
	for _, t := range finder.Classes() {
	    h := reflect.New(t).Interface()
	    // use h...
	}

# Caching and Reload

Get returns the same Finder for the same name on every call; options passed
on a cache hit are ignored (the first caller binds the loader for the name's
lifetime). Reload re-scans the search path and atomically replaces the
finder's snapshot; slices returned by earlier Classes calls are unaffected.

# Failure Model

Callers only ever see two failures: ErrInvalidName for a name that is not a
safe path segment, and a ResourceError when enumerating or reading an index
resource fails. A listed name that cannot be resolved is logged at Warn and
skipped; a name with no index resources at all yields an empty finder. Both
are expected in deployments that include only a subset of the artifacts a
shared index references.

# Thread Safety

All package-level functions and all Finder and Table methods are safe for
concurrent use. Concurrent first requests for one name construct exactly one
Finder and run exactly one populate scan. Classes never observes a
half-built snapshot; Reload publishes with a single atomic swap.
*/
package classfinder
