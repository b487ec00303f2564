package promptforge

import (
	"strings"
)

// renderCondensed produces the whitespace-compact document: identical section
// content and order to the verbose format, with every line trimmed and
// blank-line runs collapsed to at most one. Interior spacing inside
// caller-supplied content is left alone.
func renderCondensed(b *Builder) string {
	return condense(renderVerbose(b))
}

func condense(doc string) string {
	if doc == "" {
		return ""
	}

	lines := strings.Split(doc, "\n")
	out := make([]string, 0, len(lines))
	blank := false

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			if !blank && len(out) > 0 {
				out = append(out, "")
			}
			blank = true
			continue
		}
		blank = false
		out = append(out, trimmed)
	}

	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return strings.Join(out, "\n")
}
