package promptforge

import (
	"fmt"
	"strings"
)

// Format renders the validation result as a human-readable multi-section
// report: a ✓/✗ summary line followed by grouped error, warning, and
// recommendation listings with suggestions. This is a thin presentation step
// over the structured data; programmatic consumers should use the fields
// directly.
func (r Result) Format() string {
	var sb strings.Builder

	switch {
	case r.Valid && len(r.Warnings) == 0:
		sb.WriteString("✓ Prompt configuration is valid")
	case r.Valid:
		fmt.Fprintf(&sb, "✓ Prompt configuration is valid (%d %s)",
			len(r.Warnings), pluralize("warning", len(r.Warnings)))
	default:
		fmt.Fprintf(&sb, "✗ Prompt configuration has %d %s",
			len(r.Errors), pluralize("error", len(r.Errors)))
	}

	writeIssueGroup(&sb, "Errors", r.Errors)
	writeIssueGroup(&sb, "Warnings", r.Warnings)
	writeIssueGroup(&sb, "Recommendations", r.Info)

	return sb.String()
}

func writeIssueGroup(sb *strings.Builder, heading string, issues []Issue) {
	if len(issues) == 0 {
		return
	}
	sb.WriteString("\n\n" + heading + ":")
	for _, issue := range issues {
		fmt.Fprintf(sb, "\n  [%s] %s", issue.Code, issue.Message)
		if issue.Suggestion != "" {
			fmt.Fprintf(sb, "\n    Suggestion: %s", issue.Suggestion)
		}
	}
}

// pluralize returns the singular or plural form of a word based on count.
func pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	return word + "s"
}
