package promptforge

import (
	"fmt"
	"strings"

	"github.com/quill-labs/promptforge/schema"
)

// renderCompact produces the token-oriented structured layout: no headers,
// label-prefixed indented blocks, inline list counts, and tabular example
// rows when the whole list shares one field-presence signature.
func renderCompact(b *Builder) string {
	lines := make([]string, 0, 32)

	lines = appendCompactScalar(lines, "Identity", b.identity)
	lines = appendCompactScalar(lines, "Context", b.contextInfo)
	lines = appendCompactList(lines, "Capabilities", b.capabilities)
	lines = appendCompactTools(lines, b.tools)
	lines = appendCompactExamples(lines, b.examples)
	lines = appendCompactConstraints(lines, b.constraints)
	lines = appendCompactScalar(lines, "ErrorHandling", b.errorHandling)
	if b.guardrails {
		lines = append(lines, strings.Split(guardrailsCompact, "\n")...)
	}
	lines = appendCompactList(lines, "Restricted", b.forbiddenTopics)
	lines = appendCompactScalar(lines, "Tone", b.tone)
	lines = appendCompactScalar(lines, "OutputFormat", b.outputFormat)

	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// indented prefixes every line of content with depth levels of two-space
// indentation.
func indented(content string, depth int) []string {
	prefix := strings.Repeat("  ", depth)
	raw := strings.Split(content, "\n")
	out := make([]string, len(raw))
	for i, line := range raw {
		out[i] = prefix + line
	}
	return out
}

func appendCompactScalar(lines []string, label, content string) []string {
	if strings.TrimSpace(content) == "" {
		return lines
	}
	lines = append(lines, label+":")
	return append(lines, indented(content, 1)...)
}

func appendCompactList(lines []string, label string, items []string) []string {
	if len(items) == 0 {
		return lines
	}
	lines = append(lines, fmt.Sprintf("%s[%d]:", label, len(items)))
	for _, item := range items {
		lines = append(lines, indented(item, 1)...)
	}
	return lines
}

func appendCompactTools(lines []string, tools []ToolSpec) []string {
	if len(tools) == 0 {
		return lines
	}
	lines = append(lines, fmt.Sprintf("Tools[%d]:", len(tools)))
	for _, t := range tools {
		head := t.Name
		if t.Description != "" {
			head += ": " + t.Description
		}
		lines = append(lines, indented(head, 1)...)
		if t.Parameters == nil {
			continue
		}
		for _, doc := range schema.Describe(t.Parameters) {
			param := fmt.Sprintf("%s(%s,%s): %s", doc.Name, doc.Type, requiredWord(doc.Required), doc.Description)
			lines = append(lines, indented(param, 2)...)
		}
	}
	return lines
}

func appendCompactConstraints(lines []string, constraints []Constraint) []string {
	groups := groupedConstraints(constraints)
	if len(groups) == 0 {
		return lines
	}
	lines = append(lines, "Constraints:")
	for _, g := range groups {
		label := strings.ToUpper(string(g.kind))
		lines = append(lines, fmt.Sprintf("  %s[%d]:", label, len(g.rules)))
		for _, rule := range g.rules {
			lines = append(lines, indented(rule, 2)...)
		}
	}
	return lines
}

func appendCompactExamples(lines []string, examples []Example) []string {
	if len(examples) == 0 {
		return lines
	}

	if sig, ok := tabularSignature(examples); ok {
		lines = append(lines, fmt.Sprintf("Examples[%d]{%s}:", len(examples), sig))
		fields := strings.Split(sig, ",")
		for _, e := range examples {
			lines = append(lines, "  "+csvRow(e, fields))
		}
		return lines
	}

	lines = append(lines, fmt.Sprintf("Examples[%d]:", len(examples)))
	for i, e := range examples {
		lines = append(lines, fmt.Sprintf("  Example %d:", i+1))
		lines = appendCompactExampleFields(lines, e)
	}
	return lines
}

func appendCompactExampleFields(lines []string, e Example) []string {
	appendField := func(name, value string) []string {
		if value == "" {
			return lines
		}
		return append(lines, indented(name+": "+value, 2)...)
	}

	if conversationStyle(e) {
		lines = appendField("user", e.User)
		lines = appendField("assistant", e.Assistant)
	} else {
		lines = appendField("input", e.Input)
		lines = appendField("output", e.Output)
	}
	lines = appendField("explanation", e.Explanation)
	return lines
}

// csvRow renders one example as a quoted-CSV row over the given fields.
// Fields are double-quoted with internal quotes escaped by doubling.
func csvRow(e Example, fields []string) string {
	cells := make([]string, len(fields))
	for i, name := range fields {
		cells[i] = `"` + strings.ReplaceAll(e.field(name), `"`, `""`) + `"`
	}
	return strings.Join(cells, ",")
}
