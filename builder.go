package promptforge

import (
	"strings"
	"time"

	"github.com/quill-labs/promptforge/schema"
)

// Builder accumulates system prompt configuration through a fluent API.
// It is the single owner of its state: copies are explicit (Extend) and
// combination is explicit (Merge), never implicit aliasing.
//
// A Builder is not safe for concurrent mutation. Callers needing concurrent
// use should take one Extend() copy per goroutine.
//
// Example usage:
//
//	prompt := promptforge.New().
//	    WithIdentity("You are a helpful assistant").
//	    AddCapability("Answer questions").
//	    Must("Cite sources for factual claims").
//	    EnableGuardrails().
//	    Render(promptforge.FormatVerbose)
type Builder struct {
	identity        string
	contextInfo     string
	capabilities    []string
	tools           []ToolSpec
	constraints     []Constraint
	examples        []Example
	guardrails      bool
	forbiddenTopics []string
	tone            string
	outputFormat    string
	errorHandling   string
	format          Format

	cache map[Format]string
	emit  EventEmitter
}

// New creates an empty Builder with the verbose format as default target.
func New() *Builder {
	return &Builder{
		format: FormatVerbose,
		cache:  make(map[Format]string),
	}
}

// invalidate clears every cached render. Invalidation is deliberately coarse:
// any mutation drops all formats.
func (b *Builder) invalidate(op string) {
	b.cache = make(map[Format]string)
	b.emitEvent(Event{Kind: EventMutate, Op: op})
}

// SetEmitter installs an event emitter for observability adapters.
// Passing nil disables emission. The emitter itself is not configuration:
// it does not invalidate the cache and is not copied by Extend.
func (b *Builder) SetEmitter(emit EventEmitter) {
	b.emit = emit
}

// WithIdentity sets the agent identity statement, replacing any prior value.
func (b *Builder) WithIdentity(identity string) *Builder {
	b.identity = identity
	b.invalidate("identity")
	return b
}

// WithContext sets the background context block, replacing any prior value.
func (b *Builder) WithContext(contextInfo string) *Builder {
	b.contextInfo = contextInfo
	b.invalidate("context")
	return b
}

// AddCapability appends one capability. Blank entries are dropped and never
// stored; insertion order is rendering order.
func (b *Builder) AddCapability(capability string) *Builder {
	if strings.TrimSpace(capability) == "" {
		return b
	}
	b.capabilities = append(b.capabilities, capability)
	b.invalidate("add_capability")
	return b
}

// AddCapabilities appends multiple capabilities, dropping blank entries.
func (b *Builder) AddCapabilities(capabilities ...string) *Builder {
	for _, c := range capabilities {
		b.AddCapability(c)
	}
	return b
}

// AddTool registers a tool specification. Names are not checked for
// uniqueness here; duplicates surface as validation errors and as hard
// failures during Merge.
func (b *Builder) AddTool(spec ToolSpec) *Builder {
	b.tools = append(b.tools, spec)
	b.invalidate("add_tool")
	return b
}

// Tool is a convenience for AddTool without an executor.
func (b *Builder) Tool(name, description string, parameters *schema.Type) *Builder {
	return b.AddTool(ToolSpec{Name: name, Description: description, Parameters: parameters})
}

// AddConstraint appends a behavioral constraint. Blank rules are dropped.
func (b *Builder) AddConstraint(constraintType ConstraintType, rule string) *Builder {
	if strings.TrimSpace(rule) == "" {
		return b
	}
	b.constraints = append(b.constraints, Constraint{Type: constraintType, Rule: rule})
	b.invalidate("add_constraint")
	return b
}

// Must appends a hard requirement.
func (b *Builder) Must(rule string) *Builder {
	return b.AddConstraint(ConstraintMust, rule)
}

// MustNot appends a hard prohibition.
func (b *Builder) MustNot(rule string) *Builder {
	return b.AddConstraint(ConstraintMustNot, rule)
}

// Should appends a soft recommendation.
func (b *Builder) Should(rule string) *Builder {
	return b.AddConstraint(ConstraintShould, rule)
}

// ShouldNot appends a soft discouragement.
func (b *Builder) ShouldNot(rule string) *Builder {
	return b.AddConstraint(ConstraintShouldNot, rule)
}

// AddExample appends a behavior example. Examples with no populated
// user/assistant/input/output field are dropped at insertion.
func (b *Builder) AddExample(example Example) *Builder {
	if example.empty() {
		return b
	}
	b.examples = append(b.examples, example)
	b.invalidate("add_example")
	return b
}

// EnableGuardrails opts in to the fixed security guardrail section.
func (b *Builder) EnableGuardrails() *Builder {
	b.guardrails = true
	b.invalidate("guardrails")
	return b
}

// ForbidTopic adds a topic to the content restrictions. Topics are
// deduplicated on insertion, preserving first-occurrence order; blank
// entries are dropped.
func (b *Builder) ForbidTopic(topic string) *Builder {
	if strings.TrimSpace(topic) == "" {
		return b
	}
	for _, existing := range b.forbiddenTopics {
		if existing == topic {
			return b
		}
	}
	b.forbiddenTopics = append(b.forbiddenTopics, topic)
	b.invalidate("forbid_topic")
	return b
}

// ForbidTopics adds multiple topics with the same deduplication rules.
func (b *Builder) ForbidTopics(topics ...string) *Builder {
	for _, t := range topics {
		b.ForbidTopic(t)
	}
	return b
}

// WithTone sets the communication style, replacing any prior value.
func (b *Builder) WithTone(tone string) *Builder {
	b.tone = tone
	b.invalidate("tone")
	return b
}

// WithOutputFormat sets the output format instructions, replacing any prior value.
func (b *Builder) WithOutputFormat(outputFormat string) *Builder {
	b.outputFormat = outputFormat
	b.invalidate("output_format")
	return b
}

// WithErrorHandling sets the error handling instructions, replacing any prior value.
func (b *Builder) WithErrorHandling(errorHandling string) *Builder {
	b.errorHandling = errorHandling
	b.invalidate("error_handling")
	return b
}

// WithFormat selects the default render target used by String.
// Invalid formats are ignored.
func (b *Builder) WithFormat(format Format) *Builder {
	if !format.Valid() {
		return b
	}
	b.format = format
	b.invalidate("format")
	return b
}

// Identity returns the identity statement.
func (b *Builder) Identity() string { return b.identity }

// Context returns the background context block.
func (b *Builder) Context() string { return b.contextInfo }

// Capabilities returns a copy of the capability list.
func (b *Builder) Capabilities() []string {
	return append([]string(nil), b.capabilities...)
}

// Tools returns a copy of the registered tool specifications.
func (b *Builder) Tools() []ToolSpec {
	return append([]ToolSpec(nil), b.tools...)
}

// Constraints returns a copy of the constraint list in insertion order.
func (b *Builder) Constraints() []Constraint {
	return append([]Constraint(nil), b.constraints...)
}

// Examples returns a copy of the example list.
func (b *Builder) Examples() []Example {
	return append([]Example(nil), b.examples...)
}

// GuardrailsEnabled reports whether the guardrail section is enabled.
func (b *Builder) GuardrailsEnabled() bool { return b.guardrails }

// ForbiddenTopics returns a copy of the restricted topic list.
func (b *Builder) ForbiddenTopics() []string {
	return append([]string(nil), b.forbiddenTopics...)
}

// Tone returns the communication style.
func (b *Builder) Tone() string { return b.tone }

// OutputFormat returns the output format instructions.
func (b *Builder) OutputFormat() string { return b.outputFormat }

// ErrorHandling returns the error handling instructions.
func (b *Builder) ErrorHandling() string { return b.errorHandling }

// Format returns the default render target.
func (b *Builder) Format() Format { return b.format }

// Render produces the document in the given format. Results are memoized per
// format until the next mutation; rendering never fails and never mutates
// configuration. Invalid formats fall back to verbose.
func (b *Builder) Render(format Format) string {
	if !format.Valid() {
		format = FormatVerbose
	}

	if doc, ok := b.cache[format]; ok {
		b.emitEvent(Event{Kind: EventRender, Format: format, Cached: true})
		return doc
	}

	started := time.Now()
	var doc string
	switch format {
	case FormatCompact:
		doc = renderCompact(b)
	case FormatCondensed:
		doc = renderCondensed(b)
	default:
		doc = renderVerbose(b)
	}

	if b.cache == nil {
		b.cache = make(map[Format]string)
	}
	b.cache[format] = doc
	b.emitEvent(Event{Kind: EventRender, Format: format, Elapsed: time.Since(started)})
	return doc
}

// String renders the document in the builder's default format.
func (b *Builder) String() string {
	return b.Render(b.format)
}
