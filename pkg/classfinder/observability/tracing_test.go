package observability

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// setupTracingTest creates a test tracer provider with an in-memory span recorder.
func setupTracingTest(t *testing.T) (*tracetest.InMemoryExporter, func()) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exporter),
	)

	originalProvider := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)

	// Update the package-level tracer
	tracer = otel.Tracer("classfinder")

	cleanup := func() {
		otel.SetTracerProvider(originalProvider)
		if err := tp.Shutdown(context.Background()); err != nil {
			t.Logf("Error shutting down tracer provider: %v", err)
		}
	}

	return exporter, cleanup
}

func TestStartScanSpan(t *testing.T) {
	exporter, cleanup := setupTracingTest(t)
	defer cleanup()

	sm := NewSpanManager()

	ctx := context.Background()
	_, span := sm.StartScanSpan(ctx, "handlers", "scan-123")
	require.NotNil(t, span)
	span.End()

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)

	s := spans[0]
	assert.Equal(t, "classfinder.scan", s.Name)

	var registry, scanID string
	for _, attr := range s.Attributes {
		switch attr.Key {
		case "registry":
			registry = attr.Value.AsString()
		case "scan.id":
			scanID = attr.Value.AsString()
		}
	}
	assert.Equal(t, "handlers", registry)
	assert.Equal(t, "scan-123", scanID)
}

func TestEndSpanWithError(t *testing.T) {
	exporter, cleanup := setupTracingTest(t)
	defer cleanup()

	sm := NewSpanManager()

	t.Run("records error status", func(t *testing.T) {
		exporter.Reset()

		_, span := sm.StartScanSpan(context.Background(), "handlers", "scan-1")
		sm.EndSpanWithError(span, errors.New("enumerate failed"))

		spans := exporter.GetSpans()
		require.Len(t, spans, 1)
		assert.Equal(t, codes.Error, spans[0].Status.Code)
		assert.Equal(t, "enumerate failed", spans[0].Status.Description)
		require.Len(t, spans[0].Events, 1) // the recorded error
	})

	t.Run("records ok status", func(t *testing.T) {
		exporter.Reset()

		_, span := sm.StartScanSpan(context.Background(), "handlers", "scan-2")
		sm.EndSpanWithError(span, nil)

		spans := exporter.GetSpans()
		require.Len(t, spans, 1)
		assert.Equal(t, codes.Ok, spans[0].Status.Code)
	})

	t.Run("tolerates nil span", func(t *testing.T) {
		sm.EndSpanWithError(nil, errors.New("ignored"))
	})
}

func TestAddSpanEvent(t *testing.T) {
	exporter, cleanup := setupTracingTest(t)
	defer cleanup()

	sm := NewSpanManager()

	ctx, span := sm.StartScanSpan(context.Background(), "handlers", "scan-3")
	sm.AddSpanEvent(ctx, "classfinder.resource",
		attribute.String("origin", "root[0]/META-INF/classfinder/handlers"),
		attribute.Int("entries", 4),
	)
	span.End()

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	require.Len(t, spans[0].Events, 1)
	assert.Equal(t, "classfinder.resource", spans[0].Events[0].Name)
}

func TestAddSpanEventNoSpanInContext(t *testing.T) {
	_, cleanup := setupTracingTest(t)
	defer cleanup()

	// Must not panic without a recording span in context.
	NewSpanManager().AddSpanEvent(context.Background(), "orphan")
}
