package classfinder

import (
	"context"
	"log/slog"
	"reflect"
	"slices"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/randalmurphal/classfinder/pkg/classfinder/observability"
)

// Finder is one named type index: a cached, de-duplicated set of resolved
// type handles sourced from every index resource on its loader's search
// path. Finders are created through Get (or Table.Get) and live for the
// process lifetime.
//
// The current snapshot is replaced wholesale by Reload via an atomic swap;
// Classes is safe to call concurrently with a Reload in progress.
type Finder struct {
	name    string
	loader  Loader
	logger  *slog.Logger
	metrics observability.MetricsRecorder
	spans   observability.SpanManager

	snapshot atomic.Pointer[[]reflect.Type]
}

// newFinder constructs a Finder and runs the initial populate scan.
// The name is validated again here: internal paths may reach the
// constructor without going through Get.
func newFinder(ctx context.Context, name string, cfg finderConfig) (*Finder, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	loader := cfg.loader
	if loader == nil {
		loader = DefaultLoader()
	}
	if loader == nil {
		return nil, ErrNilLoader
	}

	f := &Finder{
		name:    name,
		loader:  loader,
		logger:  cfg.logger,
		metrics: cfg.metrics,
		spans:   cfg.spans,
	}
	if err := f.Reload(ctx); err != nil {
		return nil, err
	}
	return f, nil
}

// Name returns the registry name this finder was created under.
func (f *Finder) Name() string {
	return f.name
}

// Classes returns the current snapshot of resolved type handles, ordered
// by first appearance across the scan. The returned slice is the caller's
// own copy: it is a stable point-in-time view, unaffected by later
// Reload calls.
func (f *Finder) Classes() []reflect.Type {
	snap := f.snapshot.Load()
	if snap == nil {
		return nil
	}
	return slices.Clone(*snap)
}

// Reload re-scans the search path and atomically replaces the snapshot.
// On a ResourceError the previous snapshot stays in place. Individual
// names that fail resolution are skipped with a warning, never an error.
func (f *Finder) Reload(ctx context.Context) error {
	scanID := uuid.NewString()
	ctx, span := f.spans.StartScanSpan(ctx, f.name, scanID)
	start := time.Now()

	logger := observability.EnrichLogger(f.logger, f.name, scanID)
	classes, resources, err := f.scan(ctx, logger)

	elapsed := time.Since(start)
	f.metrics.RecordScan(ctx, f.name, elapsed, err)
	f.spans.EndSpanWithError(span, err)

	if err != nil {
		observability.LogScanError(logger, err)
		return err
	}

	f.snapshot.Store(&classes)
	observability.LogScanComplete(logger, resources, len(classes), float64(elapsed.Milliseconds()))
	return nil
}

// scan runs the locate -> parse -> resolve pipeline and returns the new
// snapshot. It never touches f.snapshot; the caller publishes the result.
func (f *Finder) scan(ctx context.Context, logger *slog.Logger) ([]reflect.Type, int, error) {
	relPath := IndexPath(f.name)
	observability.LogScanStart(logger, relPath)

	resources, err := f.loader.Resources(relPath)
	if err != nil {
		return nil, 0, &ResourceError{Registry: f.name, Path: relPath, Op: "enumerate", Err: err}
	}
	if len(resources) == 0 {
		observability.LogEmptyIndex(logger, relPath)
	}
	f.metrics.RecordResources(ctx, f.name, len(resources))

	seen := make(map[reflect.Type]struct{})
	var classes []reflect.Type
	for _, res := range resources {
		names, op, err := readResource(res)
		if err != nil {
			return nil, 0, &ResourceError{Registry: f.name, Path: res.Origin(), Op: op, Err: err}
		}
		f.spans.AddSpanEvent(ctx, "classfinder.resource",
			attribute.String("origin", res.Origin()),
			attribute.Int("entries", len(names)),
		)
		for _, name := range names {
			t, ok := f.loader.Resolve(name)
			f.metrics.RecordResolution(ctx, f.name, ok)
			if !ok {
				observability.LogUnresolvedName(logger, res.Origin(), name)
				continue
			}
			if _, dup := seen[t]; dup {
				continue
			}
			seen[t] = struct{}{}
			classes = append(classes, t)
		}
	}
	return classes, len(resources), nil
}
