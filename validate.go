package promptforge

import (
	"fmt"
	"strings"
)

// Severity classifies a validation issue.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Issue is one validation finding.
type Issue struct {
	Severity   Severity `json:"severity"`
	Code       string   `json:"code"`
	Message    string   `json:"message"`
	Suggestion string   `json:"suggestion,omitempty"`
}

// Result groups validation findings by severity. Valid is true iff there are
// no errors; warnings and info never affect it.
type Result struct {
	Valid    bool    `json:"valid"`
	Errors   []Issue `json:"errors"`
	Warnings []Issue `json:"warnings"`
	Info     []Issue `json:"info"`
}

// Checks toggles the validator's rule families independently.
// Use DefaultChecks for the everything-on configuration.
type Checks struct {
	// DuplicateTools reports tools sharing a name.
	DuplicateTools bool

	// MissingIdentity reports a blank or whitespace-only identity.
	MissingIdentity bool

	// EmptySections reports empty capability and constraint lists.
	EmptySections bool

	// Recommendations emits non-blocking completeness suggestions.
	Recommendations bool

	// ConstraintConflicts runs the textual must/must-not contradiction
	// heuristic.
	ConstraintConflicts bool
}

// DefaultChecks returns a Checks value with every rule family enabled.
func DefaultChecks() Checks {
	return Checks{
		DuplicateTools:      true,
		MissingIdentity:     true,
		EmptySections:       true,
		Recommendations:     true,
		ConstraintConflicts: true,
	}
}

// Validate inspects the builder with all rule families enabled.
// Findings are reported, never thrown: validation itself cannot fail.
func Validate(b *Builder) Result {
	return ValidateWith(b, DefaultChecks())
}

// ValidateWith inspects the builder with the given rule families enabled.
func ValidateWith(b *Builder, checks Checks) Result {
	issues := make([]Issue, 0)

	if checks.DuplicateTools {
		issues = append(issues, checkDuplicateTools(b)...)
	}
	if checks.MissingIdentity {
		issues = append(issues, checkIdentity(b)...)
	}
	if checks.EmptySections {
		issues = append(issues, checkEmptySections(b)...)
	}
	if checks.Recommendations {
		issues = append(issues, checkRecommendations(b)...)
	}
	if checks.ConstraintConflicts {
		issues = append(issues, checkConstraintConflicts(b)...)
	}

	result := Result{
		Errors:   make([]Issue, 0),
		Warnings: make([]Issue, 0),
		Info:     make([]Issue, 0),
	}
	for _, issue := range issues {
		switch issue.Severity {
		case SeverityError:
			result.Errors = append(result.Errors, issue)
		case SeverityWarning:
			result.Warnings = append(result.Warnings, issue)
		default:
			result.Info = append(result.Info, issue)
		}
	}
	result.Valid = len(result.Errors) == 0

	b.emitEvent(Event{
		Kind:     EventValidate,
		Errors:   len(result.Errors),
		Warnings: len(result.Warnings),
	})
	return result
}

func checkDuplicateTools(b *Builder) []Issue {
	counts := make(map[string]int, len(b.tools))
	order := make([]string, 0, len(b.tools))
	for _, t := range b.tools {
		if counts[t.Name] == 0 {
			order = append(order, t.Name)
		}
		counts[t.Name]++
	}

	issues := make([]Issue, 0)
	for _, name := range order {
		if counts[name] > 1 {
			issues = append(issues, Issue{
				Severity:   SeverityError,
				Code:       "DUPLICATE_TOOL_NAME",
				Message:    fmt.Sprintf("Tool %q is defined %d times", name, counts[name]),
				Suggestion: "Remove or rename the duplicate tool registrations",
			})
		}
	}
	return issues
}

func checkIdentity(b *Builder) []Issue {
	if strings.TrimSpace(b.identity) != "" {
		return nil
	}
	return []Issue{{
		Severity:   SeverityWarning,
		Code:       "MISSING_IDENTITY",
		Message:    "No identity is set",
		Suggestion: "Call WithIdentity to tell the agent who it is",
	}}
}

func checkEmptySections(b *Builder) []Issue {
	issues := make([]Issue, 0, 2)
	if len(b.capabilities) == 0 {
		issues = append(issues, Issue{
			Severity:   SeverityWarning,
			Code:       "NO_CAPABILITIES",
			Message:    "No capabilities are defined",
			Suggestion: "Add capabilities so the agent knows what it can do",
		})
	}
	if len(b.constraints) == 0 {
		issues = append(issues, Issue{
			Severity:   SeverityWarning,
			Code:       "NO_CONSTRAINTS",
			Message:    "No behavioral constraints are defined",
			Suggestion: "Add constraints to bound the agent's behavior",
		})
	}
	return issues
}

func checkRecommendations(b *Builder) []Issue {
	issues := make([]Issue, 0, 3)

	if len(b.tools) > 0 && len(b.examples) == 0 {
		issues = append(issues, Issue{
			Severity:   SeverityInfo,
			Code:       "TOOLS_WITHOUT_EXAMPLES",
			Message:    "Tools are defined but no usage examples are given",
			Suggestion: "Add examples demonstrating when to use each tool",
		})
	}

	if len(b.tools) > 0 && !b.guardrails {
		issues = append(issues, Issue{
			Severity:   SeverityInfo,
			Code:       "TOOLS_WITHOUT_GUARDRAILS",
			Message:    "Tools are defined but security guardrails are disabled",
			Suggestion: "Call EnableGuardrails to protect tool-using prompts",
		})
	}

	if len(b.constraints) > 0 && !hasConstraintType(b.constraints, ConstraintMust) {
		issues = append(issues, Issue{
			Severity:   SeverityInfo,
			Code:       "NO_MUST_CONSTRAINT",
			Message:    "Constraints are defined but none is a hard requirement",
			Suggestion: "Consider promoting the most important rule to a must constraint",
		})
	}

	return issues
}

func hasConstraintType(constraints []Constraint, kind ConstraintType) bool {
	for _, c := range constraints {
		if c.Type == kind {
			return true
		}
	}
	return false
}

// checkConstraintConflicts flags potential contradictions between "must"
// rules phrased with "never" and "must_not" rules covering the same text.
// This is a deliberately naive token heuristic, not a semantic analyzer:
// it removes the token "never" from the must rule and looks for the
// remainder inside each must_not rule. Known limitation, kept as-is for
// compatibility with downstream tooling.
func checkConstraintConflicts(b *Builder) []Issue {
	issues := make([]Issue, 0)

	for _, must := range b.constraints {
		if must.Type != ConstraintMust {
			continue
		}
		needle, ok := conflictNeedle(must.Rule)
		if !ok {
			continue
		}
		for _, mustNot := range b.constraints {
			if mustNot.Type != ConstraintMustNot {
				continue
			}
			if strings.Contains(normalizeRule(mustNot.Rule), needle) {
				issues = append(issues, Issue{
					Severity: SeverityWarning,
					Code:     "CONFLICTING_CONSTRAINTS",
					Message: fmt.Sprintf("Possible contradiction between must rule %q and must_not rule %q",
						must.Rule, mustNot.Rule),
					Suggestion: "Review whether the two rules demand opposite behavior",
				})
			}
		}
	}

	return issues
}

// conflictNeedle lowers a must rule, strips the token "never", and collapses
// the remaining whitespace. Returns false when the rule does not contain
// "never" or nothing remains after stripping.
func conflictNeedle(rule string) (string, bool) {
	lower := strings.ToLower(rule)
	if !strings.Contains(lower, "never") {
		return "", false
	}
	needle := strings.Join(strings.Fields(strings.ReplaceAll(lower, "never", "")), " ")
	if needle == "" {
		return "", false
	}
	return needle, true
}

func normalizeRule(rule string) string {
	return strings.Join(strings.Fields(strings.ToLower(rule)), " ")
}
