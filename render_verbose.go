package promptforge

import (
	"fmt"
	"strings"

	"github.com/quill-labs/promptforge/schema"
)

// verboseConstraintHeadings maps constraint types to their verbose group labels.
var verboseConstraintHeadings = map[ConstraintType]string{
	ConstraintMust:      "Must:",
	ConstraintMustNot:   "Must Not:",
	ConstraintShould:    "Should:",
	ConstraintShouldNot: "Should Not:",
}

// renderVerbose produces the human-readable markdown-style document:
// header-delimited sections, numbered lists, bulleted constraints, and
// per-tool parameter documentation.
func renderVerbose(b *Builder) string {
	sections := make([]string, 0, 11)
	add := func(s string) {
		if s != "" {
			sections = append(sections, s)
		}
	}

	add(verboseScalar("Identity", b.identity))
	add(verboseScalar("Context", b.contextInfo))
	add(verboseNumberedList("Capabilities", b.capabilities))
	add(verboseTools(b.tools))
	add(verboseExamples(b.examples))
	add(verboseConstraints(b.constraints))
	add(verboseScalar("Error Handling", b.errorHandling))
	if b.guardrails {
		add("## Security Guardrails\n\n" + guardrailsVerbose)
	}
	add(verboseRestrictions(b.forbiddenTopics))
	add(verboseScalar("Communication Style", b.tone))
	add(verboseScalar("Output Format", b.outputFormat))

	return strings.TrimSpace(strings.Join(sections, "\n\n"))
}

func verboseScalar(heading, content string) string {
	if strings.TrimSpace(content) == "" {
		return ""
	}
	return "## " + heading + "\n\n" + content
}

func verboseNumberedList(heading string, items []string) string {
	if len(items) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("## " + heading + "\n")
	for i, item := range items {
		fmt.Fprintf(&sb, "\n%d. %s", i+1, item)
	}
	return sb.String()
}

func verboseTools(tools []ToolSpec) string {
	if len(tools) == 0 {
		return ""
	}

	blocks := make([]string, 0, len(tools)+1)
	blocks = append(blocks, "## Tools")
	for _, t := range tools {
		blocks = append(blocks, verboseTool(t))
	}
	return strings.Join(blocks, "\n\n")
}

func verboseTool(t ToolSpec) string {
	var sb strings.Builder
	sb.WriteString("### " + t.Name)
	if t.Description != "" {
		sb.WriteString("\n\n" + t.Description)
	}
	if t.Parameters != nil {
		sb.WriteString("\n\nParameters:")
		for _, doc := range schema.Describe(t.Parameters) {
			fmt.Fprintf(&sb, "\n- %s (%s, %s): %s",
				doc.Name, doc.Type, requiredWord(doc.Required), doc.Description)
		}
	}
	return sb.String()
}

func requiredWord(required bool) string {
	if required {
		return "required"
	}
	return "optional"
}

func verboseExamples(examples []Example) string {
	if len(examples) == 0 {
		return ""
	}

	blocks := make([]string, 0, len(examples)+1)
	blocks = append(blocks, "## Examples")
	for i, e := range examples {
		blocks = append(blocks, verboseExample(i+1, e))
	}
	return strings.Join(blocks, "\n\n")
}

func verboseExample(n int, e Example) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "### Example %d", n)

	if conversationStyle(e) {
		if e.User != "" {
			sb.WriteString("\n\nUser: " + e.User)
		}
		if e.Assistant != "" {
			sb.WriteString("\nAssistant: " + e.Assistant)
		}
	} else {
		if e.Input != "" {
			sb.WriteString("\n\nInput: " + e.Input)
		}
		if e.Output != "" {
			sb.WriteString("\nOutput: " + e.Output)
		}
	}

	if e.Explanation != "" {
		sb.WriteString("\nExplanation: " + e.Explanation)
	}
	return sb.String()
}

func verboseConstraints(constraints []Constraint) string {
	groups := groupedConstraints(constraints)
	if len(groups) == 0 {
		return ""
	}

	blocks := make([]string, 0, len(groups)+1)
	blocks = append(blocks, "## Behavioral Guidelines")
	for _, g := range groups {
		var sb strings.Builder
		sb.WriteString(verboseConstraintHeadings[g.kind])
		for _, rule := range g.rules {
			sb.WriteString("\n- " + rule)
		}
		blocks = append(blocks, sb.String())
	}
	return strings.Join(blocks, "\n\n")
}

func verboseRestrictions(topics []string) string {
	if len(topics) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("## Content Restrictions\n\n" + restrictionsIntro + "\n")
	for i, topic := range topics {
		fmt.Fprintf(&sb, "\n%d. %s", i+1, topic)
	}
	return sb.String()
}
