package otel

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/quill-labs/promptforge"
)

// RenderSpan renders the builder in the given format inside a trace span.
// The span records the target format and the length of the produced document.
// Rendering itself cannot fail, so the span always ends successfully.
func RenderSpan(ctx context.Context, tracer trace.Tracer, b *promptforge.Builder, format promptforge.Format) (context.Context, string) {
	ctx, span := tracer.Start(ctx, "promptforge.render",
		trace.WithAttributes(attribute.String("format", string(format))),
	)
	defer span.End()

	doc := b.Render(format)
	span.SetAttributes(attribute.Int("document.length", len(doc)))
	return ctx, doc
}

// ValidateSpan validates the builder inside a trace span, recording issue
// counts as span attributes.
func ValidateSpan(ctx context.Context, tracer trace.Tracer, b *promptforge.Builder) (context.Context, promptforge.Result) {
	ctx, span := tracer.Start(ctx, "promptforge.validate")
	defer span.End()

	result := promptforge.Validate(b)
	span.SetAttributes(
		attribute.Bool("valid", result.Valid),
		attribute.Int("errors", len(result.Errors)),
		attribute.Int("warnings", len(result.Warnings)),
	)
	return ctx, result
}
