// Package promptforge assembles structured system prompts for AI agents from
// declarative configuration, and renders them in multiple formats optimized
// for either human readability or token efficiency.
//
// The core is a pure, in-memory library: it does not call language models,
// execute tools, or persist anything. A Builder accumulates configuration
// through a fluent API, and Render produces the document in one of three
// formats sharing a single section-ordering contract.
package promptforge

import (
	"context"
	"fmt"
	"strings"

	"github.com/quill-labs/promptforge/schema"
)

// Format selects a rendering backend.
type Format string

const (
	// FormatVerbose renders header-delimited markdown-style sections.
	FormatVerbose Format = "verbose"

	// FormatCompact renders a token-efficient structured layout with
	// label-prefixed blocks and inline list counts.
	FormatCompact Format = "compact"

	// FormatCondensed renders the verbose content with all surplus
	// whitespace collapsed.
	FormatCondensed Format = "condensed"
)

// String returns the string representation of the Format.
func (f Format) String() string {
	return string(f)
}

// Valid reports whether f is one of the supported formats.
func (f Format) Valid() bool {
	switch f {
	case FormatVerbose, FormatCompact, FormatCondensed:
		return true
	}
	return false
}

// ParseFormat converts a string to a Format, rejecting unknown values.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.TrimSpace(s))
	if !f.Valid() {
		return "", fmt.Errorf("invalid format %q (must be verbose, compact, or condensed)", s)
	}
	return f, nil
}

// ConstraintType is the severity class of a behavioral constraint.
// It governs both grouping and rendered emphasis.
type ConstraintType string

const (
	ConstraintMust      ConstraintType = "must"
	ConstraintMustNot   ConstraintType = "must_not"
	ConstraintShould    ConstraintType = "should"
	ConstraintShouldNot ConstraintType = "should_not"
)

// constraintOrder is the fixed rendering order of constraint groups,
// independent of insertion order.
var constraintOrder = []ConstraintType{
	ConstraintMust,
	ConstraintMustNot,
	ConstraintShould,
	ConstraintShouldNot,
}

// Constraint is one behavioral rule with its severity class.
type Constraint struct {
	Type ConstraintType `json:"type" yaml:"type"`
	Rule string         `json:"rule" yaml:"rule"`
}

// Example is a demonstration of desired behavior. User/Assistant and
// Input/Output are two equivalent presentation styles; whichever fields are
// populated decides the style, and the two are never mixed in one rendering.
type Example struct {
	User        string `json:"user,omitempty" yaml:"user,omitempty"`
	Assistant   string `json:"assistant,omitempty" yaml:"assistant,omitempty"`
	Input       string `json:"input,omitempty" yaml:"input,omitempty"`
	Output      string `json:"output,omitempty" yaml:"output,omitempty"`
	Explanation string `json:"explanation,omitempty" yaml:"explanation,omitempty"`
}

// empty reports whether the example carries no primary content. Examples with
// only an explanation are considered empty and are dropped at insertion.
func (e Example) empty() bool {
	return e.User == "" && e.Assistant == "" && e.Input == "" && e.Output == ""
}

// exampleFieldOrder is the canonical field order used for presence signatures
// and tabular rendering.
var exampleFieldOrder = []string{"user", "assistant", "input", "output", "explanation"}

// signature returns the field-presence signature: the ordered subset of
// populated fields. Examples sharing a signature can be rendered tabularly.
func (e Example) signature() string {
	parts := make([]string, 0, len(exampleFieldOrder))
	for _, name := range exampleFieldOrder {
		if e.field(name) != "" {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, ",")
}

func (e Example) field(name string) string {
	switch name {
	case "user":
		return e.User
	case "assistant":
		return e.Assistant
	case "input":
		return e.Input
	case "output":
		return e.Output
	case "explanation":
		return e.Explanation
	}
	return ""
}

// ToolExecutor is an opaque capability reference attached to a tool.
// The core never invokes it; it is only passed through to external adapters.
type ToolExecutor func(ctx context.Context, args map[string]any) (map[string]any, error)

// ToolSpec is declarative metadata describing one externally-executable
// capability. Name is intended to be a unique key; duplicates are reported by
// Validate and rejected by Merge.
type ToolSpec struct {
	Name        string       `json:"name" yaml:"name"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty"`
	Parameters  *schema.Type `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	Executor    ToolExecutor `json:"-" yaml:"-"`
}

// ToolExport is the per-tool record handed to external tool-invocation
// adapters. Executor is passed through unmodified and may be nil.
type ToolExport struct {
	Description string
	Parameters  *schema.Type
	Executor    ToolExecutor
}
