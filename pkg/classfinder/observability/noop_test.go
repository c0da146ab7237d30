package observability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"
)

func TestNoopMetrics(t *testing.T) {
	var m MetricsRecorder = NoopMetrics{}
	ctx := context.Background()

	// None of these may panic.
	m.RecordScan(ctx, "handlers", time.Second, nil)
	m.RecordScan(ctx, "handlers", time.Second, errors.New("boom"))
	m.RecordResources(ctx, "handlers", 3)
	m.RecordResolution(ctx, "handlers", true)
	m.RecordResolution(ctx, "handlers", false)
}

func TestNoopSpanManager(t *testing.T) {
	var sm SpanManager = NoopSpanManager{}
	ctx := context.Background()

	gotCtx, span := sm.StartScanSpan(ctx, "handlers", "scan-1")
	assert.Equal(t, ctx, gotCtx)
	assert.NotNil(t, span)
	assert.False(t, span.IsRecording())

	sm.EndSpanWithError(span, errors.New("ignored"))
	sm.EndSpanWithError(nil, nil)
	sm.AddSpanEvent(ctx, "ignored", attribute.String("k", "v"))
}
