package promptforge

import (
	"time"
)

// EventKind identifies the type of event emitted by a Builder.
type EventKind string

const (
	// EventMutate is emitted after any mutating operation.
	EventMutate EventKind = "mutate"

	// EventRender is emitted after a render completes (cached or not).
	EventRender EventKind = "render"

	// EventExtend is emitted when a copy is produced via Extend.
	EventExtend EventKind = "extend"

	// EventMerge is emitted after a successful merge into this builder.
	EventMerge EventKind = "merge"

	// EventValidate is emitted after validation completes.
	EventValidate EventKind = "validate"
)

// String returns the string representation of the EventKind.
func (k EventKind) String() string {
	return string(k)
}

// Event is a small structured record of builder activity, intended for
// observability adapters. Events carry metadata only, never document content.
type Event struct {
	// Kind identifies the event type.
	Kind EventKind

	// Op names the mutating operation for EventMutate (e.g. "add_capability").
	Op string

	// Format is the render target for EventRender.
	Format Format

	// Cached reports whether a render was served from the cache.
	Cached bool

	// Time is when the event occurred.
	Time time.Time

	// Elapsed is the wall time of the operation, when measured.
	Elapsed time.Duration

	// Errors and Warnings carry issue counts for EventValidate.
	Errors   int
	Warnings int
}

// EventEmitter receives builder events. Emitters must be fast and must not
// call back into the builder.
type EventEmitter func(Event)

// emitEvent delivers an event if an emitter is configured.
func (b *Builder) emitEvent(e Event) {
	if b.emit == nil {
		return
	}
	if e.Time.IsZero() {
		e.Time = time.Now()
	}
	b.emit(e)
}
