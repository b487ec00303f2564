// Package otel bridges promptforge builder events to OpenTelemetry.
// The core library stays dependency-free on observability: callers install a
// MetricsHandler as the builder's event emitter and provide their own meter
// and tracer, including any exporter configuration.
package otel

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/quill-labs/promptforge"
)

// MetricsHandler translates promptforge events into OpenTelemetry metrics.
// It records counters for renders, cache hits, and mutations, a histogram of
// render durations, and counters for validation findings.
type MetricsHandler struct {
	renders          metric.Int64Counter
	cacheHits        metric.Int64Counter
	mutations        metric.Int64Counter
	renderDuration   metric.Float64Histogram
	validationIssues metric.Int64Counter
}

// NewMetricsHandler creates a MetricsHandler that uses the given meter to
// create its instruments.
func NewMetricsHandler(meter metric.Meter) (*MetricsHandler, error) {
	renders, err := meter.Int64Counter("promptforge.render.count",
		metric.WithDescription("Number of document renders"),
	)
	if err != nil {
		return nil, err
	}

	cacheHits, err := meter.Int64Counter("promptforge.render.cache_hits",
		metric.WithDescription("Number of renders served from the cache"),
	)
	if err != nil {
		return nil, err
	}

	mutations, err := meter.Int64Counter("promptforge.builder.mutations",
		metric.WithDescription("Number of builder mutations"),
	)
	if err != nil {
		return nil, err
	}

	renderDuration, err := meter.Float64Histogram("promptforge.render.duration",
		metric.WithDescription("Duration of uncached renders in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	validationIssues, err := meter.Int64Counter("promptforge.validation.issues",
		metric.WithDescription("Number of validation findings by severity"),
	)
	if err != nil {
		return nil, err
	}

	return &MetricsHandler{
		renders:          renders,
		cacheHits:        cacheHits,
		mutations:        mutations,
		renderDuration:   renderDuration,
		validationIssues: validationIssues,
	}, nil
}

// Handle processes one builder event and records the appropriate metrics.
// Install it via Builder.SetEmitter(handler.Handle).
func (h *MetricsHandler) Handle(e promptforge.Event) {
	switch e.Kind {
	case promptforge.EventRender:
		h.handleRender(e)
	case promptforge.EventMutate:
		h.handleMutate(e)
	case promptforge.EventValidate:
		h.handleValidate(e)
	}
}

func (h *MetricsHandler) handleRender(e promptforge.Event) {
	ctx := context.Background()
	attrs := metric.WithAttributes(
		attribute.String("format", string(e.Format)),
	)
	h.renders.Add(ctx, 1, attrs)
	if e.Cached {
		h.cacheHits.Add(ctx, 1, attrs)
		return
	}
	h.renderDuration.Record(ctx, e.Elapsed.Seconds(), attrs)
}

func (h *MetricsHandler) handleMutate(e promptforge.Event) {
	h.mutations.Add(context.Background(), 1, metric.WithAttributes(
		attribute.String("op", e.Op),
	))
}

func (h *MetricsHandler) handleValidate(e promptforge.Event) {
	ctx := context.Background()
	if e.Errors > 0 {
		h.validationIssues.Add(ctx, int64(e.Errors), metric.WithAttributes(
			attribute.String("severity", string(promptforge.SeverityError)),
		))
	}
	if e.Warnings > 0 {
		h.validationIssues.Add(ctx, int64(e.Warnings), metric.WithAttributes(
			attribute.String("severity", string(promptforge.SeverityWarning)),
		))
	}
}
