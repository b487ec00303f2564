package promptforge

// Rendering is deterministic and pure: two renders of an unchanged builder
// produce byte-identical output. All three backends share one section
// contract: a section is emitted iff its data is non-empty, in the fixed
// order Identity, Context, Capabilities, Tools, Examples, Behavioral
// Guidelines, Error Handling, Security Guardrails, Content Restrictions,
// Communication Style, Output Format.

// constraintGroup is one severity class with its rules in insertion order.
type constraintGroup struct {
	kind  ConstraintType
	rules []string
}

// groupedConstraints partitions constraints into the fixed severity order
// (must, must_not, should, should_not), preserving insertion order within
// each group and omitting empty groups.
func groupedConstraints(constraints []Constraint) []constraintGroup {
	byType := make(map[ConstraintType][]string, len(constraintOrder))
	for _, c := range constraints {
		byType[c.Type] = append(byType[c.Type], c.Rule)
	}

	groups := make([]constraintGroup, 0, len(constraintOrder))
	for _, kind := range constraintOrder {
		if rules := byType[kind]; len(rules) > 0 {
			groups = append(groups, constraintGroup{kind: kind, rules: rules})
		}
	}
	return groups
}

// conversationStyle reports whether an example renders in user/assistant
// style rather than input/output style. The two styles are never mixed:
// whichever pair has content decides, with user/assistant taking precedence.
func conversationStyle(e Example) bool {
	return e.User != "" || e.Assistant != ""
}

// tabularSignature returns the shared field-presence signature when the whole
// example list qualifies for tabular rendering: three or more examples, all
// with an identical signature. The threshold is exactly three; two examples
// always render as individual blocks.
func tabularSignature(examples []Example) (string, bool) {
	if len(examples) < 3 {
		return "", false
	}
	sig := examples[0].signature()
	for _, e := range examples[1:] {
		if e.signature() != sig {
			return "", false
		}
	}
	return sig, true
}
