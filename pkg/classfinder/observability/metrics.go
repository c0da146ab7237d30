package observability

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records classfinder scan metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordScan records a populate or reload scan with its duration and
	// error status.
	RecordScan(ctx context.Context, registry string, duration time.Duration, err error)

	// RecordResources records how many index resources contributed to a scan.
	RecordResources(ctx context.Context, registry string, count int)

	// RecordResolution records one candidate name resolution attempt.
	RecordResolution(ctx context.Context, registry string, resolved bool)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	scans       metric.Int64Counter
	scanLatency metric.Float64Histogram
	scanErrors  metric.Int64Counter
	resources   metric.Int64Counter
	resolved    metric.Int64Counter
	skipped     metric.Int64Counter
}

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("classfinder")

	scans, err := meter.Int64Counter("classfinder.scans",
		metric.WithDescription("Number of index scans"),
	)
	if err != nil {
		return nil, err
	}

	scanLatency, err := meter.Float64Histogram("classfinder.scan.latency_ms",
		metric.WithDescription("Index scan latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	scanErrors, err := meter.Int64Counter("classfinder.scan.errors",
		metric.WithDescription("Number of failed index scans"),
	)
	if err != nil {
		return nil, err
	}

	resources, err := meter.Int64Counter("classfinder.resources",
		metric.WithDescription("Number of index resources scanned"),
	)
	if err != nil {
		return nil, err
	}

	resolved, err := meter.Int64Counter("classfinder.names.resolved",
		metric.WithDescription("Number of index entries resolved to types"),
	)
	if err != nil {
		return nil, err
	}

	skipped, err := meter.Int64Counter("classfinder.names.skipped",
		metric.WithDescription("Number of index entries that failed resolution"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		scans:       scans,
		scanLatency: scanLatency,
		scanErrors:  scanErrors,
		resources:   resources,
		resolved:    resolved,
		skipped:     skipped,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := newOtelMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordScan records a scan completion.
func (m *otelMetrics) RecordScan(ctx context.Context, registry string, duration time.Duration, err error) {
	attrs := []attribute.KeyValue{
		attribute.String("registry", registry),
	}

	m.scans.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.scanLatency.Record(ctx, float64(duration.Milliseconds()), metric.WithAttributes(attrs...))

	if err != nil {
		m.scanErrors.Add(ctx, 1, metric.WithAttributes(attrs...))
	}
}

// RecordResources records the number of contributing index resources.
func (m *otelMetrics) RecordResources(ctx context.Context, registry string, count int) {
	m.resources.Add(ctx, int64(count), metric.WithAttributes(
		attribute.String("registry", registry),
	))
}

// RecordResolution records one name resolution attempt.
func (m *otelMetrics) RecordResolution(ctx context.Context, registry string, ok bool) {
	attrs := metric.WithAttributes(attribute.String("registry", registry))
	if ok {
		m.resolved.Add(ctx, 1, attrs)
	} else {
		m.skipped.Add(ctx, 1, attrs)
	}
}
