package classfinder

import (
	"log/slog"

	"github.com/randalmurphal/classfinder/pkg/classfinder/observability"
)

// finderConfig holds construction-time configuration for a Finder.
type finderConfig struct {
	loader  Loader
	logger  *slog.Logger
	metrics observability.MetricsRecorder
	spans   observability.SpanManager
}

// defaultFinderConfig returns the default construction configuration:
// the process default loader, no logging, no telemetry.
func defaultFinderConfig() finderConfig {
	return finderConfig{
		metrics: observability.NoopMetrics{},
		spans:   observability.NoopSpanManager{},
	}
}

// Option configures a Finder at construction time.
//
// Options only take effect for the caller that actually constructs the
// finder: on a cache hit they are ignored, so the first caller for a name
// binds its loader and telemetry for that name's lifetime.
type Option func(*finderConfig)

// WithLoader binds the finder to a specific loader instead of the process
// default set via SetDefaultLoader.
func WithLoader(l Loader) Option {
	return func(c *finderConfig) {
		c.loader = l
	}
}

// WithLogger enables structured logging for the finder's scans.
// Default: no logging.
func WithLogger(logger *slog.Logger) Option {
	return func(c *finderConfig) {
		c.logger = logger
	}
}

// WithMetrics sets the metrics recorder for the finder's scans.
// Default: observability.NoopMetrics.
func WithMetrics(m observability.MetricsRecorder) Option {
	return func(c *finderConfig) {
		if m != nil {
			c.metrics = m
		}
	}
}

// WithSpans sets the span manager for the finder's scans.
// Default: observability.NoopSpanManager.
func WithSpans(s observability.SpanManager) Option {
	return func(c *finderConfig) {
		if s != nil {
			c.spans = s
		}
	}
}
