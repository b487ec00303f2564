package promptforge

import (
	"fmt"
)

// ToolConflictError is returned by Merge when the source defines a tool whose
// name already exists in the target. The merge is rejected atomically: the
// target is left completely unchanged.
type ToolConflictError struct {
	Name string
}

func (e *ToolConflictError) Error() string {
	return fmt.Sprintf("tool %q is already defined in the target builder", e.Name)
}

// Extend returns a structural deep copy of the builder. Mutating the copy
// never affects the original: no containers are shared between the two.
// The copy starts with an empty render cache and no event emitter.
func (b *Builder) Extend() *Builder {
	out := &Builder{
		identity:        b.identity,
		contextInfo:     b.contextInfo,
		capabilities:    append([]string(nil), b.capabilities...),
		constraints:     append([]Constraint(nil), b.constraints...),
		examples:        append([]Example(nil), b.examples...),
		guardrails:      b.guardrails,
		forbiddenTopics: append([]string(nil), b.forbiddenTopics...),
		tone:            b.tone,
		outputFormat:    b.outputFormat,
		errorHandling:   b.errorHandling,
		format:          b.format,
		cache:           make(map[Format]string),
	}

	out.tools = make([]ToolSpec, len(b.tools))
	for i, t := range b.tools {
		out.tools[i] = cloneToolSpec(t)
	}

	b.emitEvent(Event{Kind: EventExtend})
	return out
}

// Merge combines the source builder into the receiver:
//
//   - capabilities: source entries not already present are appended in order
//   - tools: appended; any name collision aborts the whole merge
//   - constraints, examples: concatenated wholesale
//   - context: concatenated with a blank-line separator
//   - tone, output format, error handling: receiver's value wins if non-empty
//   - guardrails: enabled if either side has them enabled
//   - forbidden topics: union preserving receiver order first
//   - identity and default format: untouched
//
// On a tool-name collision Merge returns a *ToolConflictError naming the
// offending tool and leaves the receiver completely unchanged.
func (b *Builder) Merge(src *Builder) error {
	if src == nil {
		return nil
	}

	// Collision check happens before any mutation so a failed merge is a no-op.
	existing := make(map[string]struct{}, len(b.tools))
	for _, t := range b.tools {
		existing[t.Name] = struct{}{}
	}
	for _, t := range src.tools {
		if _, ok := existing[t.Name]; ok {
			return &ToolConflictError{Name: t.Name}
		}
	}

	for _, c := range src.capabilities {
		if !containsString(b.capabilities, c) {
			b.capabilities = append(b.capabilities, c)
		}
	}

	for _, t := range src.tools {
		b.tools = append(b.tools, cloneToolSpec(t))
	}

	b.constraints = append(b.constraints, src.constraints...)
	b.examples = append(b.examples, src.examples...)

	if src.contextInfo != "" {
		if b.contextInfo == "" {
			b.contextInfo = src.contextInfo
		} else {
			b.contextInfo = b.contextInfo + "\n\n" + src.contextInfo
		}
	}

	if b.tone == "" {
		b.tone = src.tone
	}
	if b.outputFormat == "" {
		b.outputFormat = src.outputFormat
	}
	if b.errorHandling == "" {
		b.errorHandling = src.errorHandling
	}

	b.guardrails = b.guardrails || src.guardrails

	for _, topic := range src.forbiddenTopics {
		if !containsString(b.forbiddenTopics, topic) {
			b.forbiddenTopics = append(b.forbiddenTopics, topic)
		}
	}

	b.cache = make(map[Format]string)
	b.emitEvent(Event{Kind: EventMerge})
	return nil
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
