package promptforge

import (
	"github.com/quill-labs/promptforge/schema"
)

// Config is a plain structural snapshot of a builder's configuration, suitable
// for persistence, debugging, and file loading. Executors are opaque runtime
// capabilities and are not part of the snapshot.
type Config struct {
	Identity        string       `json:"identity,omitempty" yaml:"identity,omitempty"`
	Context         string       `json:"context,omitempty" yaml:"context,omitempty"`
	Capabilities    []string     `json:"capabilities,omitempty" yaml:"capabilities,omitempty"`
	Tools           []ToolConfig `json:"tools,omitempty" yaml:"tools,omitempty"`
	Constraints     []Constraint `json:"constraints,omitempty" yaml:"constraints,omitempty"`
	Examples        []Example    `json:"examples,omitempty" yaml:"examples,omitempty"`
	Guardrails      bool         `json:"guardrails,omitempty" yaml:"guardrails,omitempty"`
	ForbiddenTopics []string     `json:"forbidden_topics,omitempty" yaml:"forbidden_topics,omitempty"`
	Tone            string       `json:"tone,omitempty" yaml:"tone,omitempty"`
	OutputFormat    string       `json:"output_format,omitempty" yaml:"output_format,omitempty"`
	ErrorHandling   string       `json:"error_handling,omitempty" yaml:"error_handling,omitempty"`
	Format          Format       `json:"format,omitempty" yaml:"format,omitempty"`
}

// ToolConfig is the serializable shape of a tool specification.
type ToolConfig struct {
	Name        string       `json:"name" yaml:"name"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty"`
	Parameters  *schema.Type `json:"parameters,omitempty" yaml:"parameters,omitempty"`
}

// Snapshot exports the full configuration as an independent Config: mutating
// the builder afterwards does not affect the snapshot, and vice versa.
func (b *Builder) Snapshot() Config {
	cfg := Config{
		Identity:        b.identity,
		Context:         b.contextInfo,
		Capabilities:    append([]string(nil), b.capabilities...),
		Constraints:     append([]Constraint(nil), b.constraints...),
		Examples:        append([]Example(nil), b.examples...),
		Guardrails:      b.guardrails,
		ForbiddenTopics: append([]string(nil), b.forbiddenTopics...),
		Tone:            b.tone,
		OutputFormat:    b.outputFormat,
		ErrorHandling:   b.errorHandling,
		Format:          b.format,
	}

	if len(b.tools) > 0 {
		cfg.Tools = make([]ToolConfig, len(b.tools))
		for i, t := range b.tools {
			cfg.Tools[i] = ToolConfig{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  cloneSchemaType(t.Parameters),
			}
		}
	}

	return cfg
}

// FromConfig reconstructs a builder from a configuration snapshot. Values
// pass through the normal insertion rules, so blank capabilities, empty
// examples, and duplicate topics present in a hand-written file are dropped
// the same way they would be through the fluent API.
func FromConfig(cfg Config) *Builder {
	b := New()
	b.identity = cfg.Identity
	b.contextInfo = cfg.Context
	b.tone = cfg.Tone
	b.outputFormat = cfg.OutputFormat
	b.errorHandling = cfg.ErrorHandling
	b.guardrails = cfg.Guardrails
	if cfg.Format.Valid() {
		b.format = cfg.Format
	}

	b.AddCapabilities(cfg.Capabilities...)
	for _, t := range cfg.Tools {
		b.AddTool(ToolSpec{
			Name:        t.Name,
			Description: t.Description,
			Parameters:  cloneSchemaType(t.Parameters),
		})
	}
	for _, c := range cfg.Constraints {
		b.AddConstraint(c.Type, c.Rule)
	}
	for _, e := range cfg.Examples {
		b.AddExample(e)
	}
	b.ForbidTopics(cfg.ForbiddenTopics...)

	b.cache = make(map[Format]string)
	return b
}

// ToolExports returns the per-tool records consumed by external
// text-generation and tool-invocation adapters, keyed by tool name.
// If duplicate names exist (a validation error), the last registration wins.
func (b *Builder) ToolExports() map[string]ToolExport {
	exports := make(map[string]ToolExport, len(b.tools))
	for _, t := range b.tools {
		exports[t.Name] = ToolExport{
			Description: t.Description,
			Parameters:  cloneSchemaType(t.Parameters),
			Executor:    t.Executor,
		}
	}
	return exports
}

// cloneToolSpec deep-copies a tool specification. The executor reference is
// carried over as-is; it is opaque and immutable from the core's perspective.
func cloneToolSpec(t ToolSpec) ToolSpec {
	return ToolSpec{
		Name:        t.Name,
		Description: t.Description,
		Parameters:  cloneSchemaType(t.Parameters),
		Executor:    t.Executor,
	}
}

// cloneSchemaType deep-copies a schema tree so that no mutable containers are
// shared between builders or exports.
func cloneSchemaType(t *schema.Type) *schema.Type {
	if t == nil {
		return nil
	}

	out := *t
	out.Elem = cloneSchemaType(t.Elem)

	if t.Fields != nil {
		out.Fields = make([]schema.Field, len(t.Fields))
		for i, f := range t.Fields {
			cloned := cloneSchemaType(&f.Type)
			out.Fields[i] = schema.Field{Name: f.Name, Type: *cloned}
		}
	}

	if t.Variants != nil {
		out.Variants = make([]schema.Type, len(t.Variants))
		for i := range t.Variants {
			cloned := cloneSchemaType(&t.Variants[i])
			out.Variants[i] = *cloned
		}
	}

	if t.Values != nil {
		out.Values = append([]string(nil), t.Values...)
	}

	return &out
}
