package promptforge

import (
	"strings"
	"testing"
)

// fullBuilder returns a configuration that passes every check.
func fullBuilder() *Builder {
	return New().
		WithIdentity("You are a test agent.").
		AddCapability("do things").
		Tool("search", "find things", nil).
		AddExample(Example{User: "u", Assistant: "a"}).
		Must("be correct").
		EnableGuardrails()
}

func hasCode(issues []Issue, code string) bool {
	for _, issue := range issues {
		if issue.Code == code {
			return true
		}
	}
	return false
}

func TestValidate_FullConfigurationIsClean(t *testing.T) {
	result := Validate(fullBuilder())

	if !result.Valid {
		t.Errorf("expected valid result, got errors: %v", result.Errors)
	}
	if len(result.Errors) != 0 || len(result.Warnings) != 0 || len(result.Info) != 0 {
		t.Errorf("expected no findings, got %+v", result)
	}
}

func TestValidate_DuplicateToolNames(t *testing.T) {
	b := fullBuilder().
		Tool("search", "again", nil).
		Tool("search", "and again", nil).
		Tool("fetch", "fine", nil)

	result := Validate(b)

	if result.Valid {
		t.Error("duplicate tools should invalidate the configuration")
	}
	if len(result.Errors) != 1 {
		t.Fatalf("expected one error per duplicated name, got %v", result.Errors)
	}
	err := result.Errors[0]
	if err.Code != "DUPLICATE_TOOL_NAME" {
		t.Errorf("unexpected code %q", err.Code)
	}
	if !strings.Contains(err.Message, `"search"`) || !strings.Contains(err.Message, "3 times") {
		t.Errorf("unexpected message %q", err.Message)
	}
}

func TestValidate_MissingIdentity(t *testing.T) {
	tests := []struct {
		name     string
		identity string
		want     bool
	}{
		{"empty", "", true},
		{"whitespace only", "   \t", true},
		{"present", "You are an agent.", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := fullBuilder().WithIdentity(tt.identity)
			result := Validate(b)
			if got := hasCode(result.Warnings, "MISSING_IDENTITY"); got != tt.want {
				t.Errorf("MISSING_IDENTITY reported = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidate_EmptySections(t *testing.T) {
	result := Validate(New().WithIdentity("agent"))

	if !hasCode(result.Warnings, "NO_CAPABILITIES") {
		t.Error("expected NO_CAPABILITIES warning")
	}
	if !hasCode(result.Warnings, "NO_CONSTRAINTS") {
		t.Error("expected NO_CONSTRAINTS warning")
	}
	if !result.Valid {
		t.Error("warnings alone should not invalidate the configuration")
	}
}

func TestValidate_Recommendations(t *testing.T) {
	t.Run("tools without examples", func(t *testing.T) {
		b := New().WithIdentity("a").AddCapability("c").Must("m").
			EnableGuardrails().
			Tool("search", "find", nil)
		result := Validate(b)
		if !hasCode(result.Info, "TOOLS_WITHOUT_EXAMPLES") {
			t.Errorf("expected TOOLS_WITHOUT_EXAMPLES, got %v", result.Info)
		}
	})

	t.Run("tools without guardrails", func(t *testing.T) {
		b := New().WithIdentity("a").AddCapability("c").Must("m").
			AddExample(Example{User: "u", Assistant: "a"}).
			Tool("search", "find", nil)
		result := Validate(b)
		if !hasCode(result.Info, "TOOLS_WITHOUT_GUARDRAILS") {
			t.Errorf("expected TOOLS_WITHOUT_GUARDRAILS, got %v", result.Info)
		}
	})

	t.Run("no must constraint", func(t *testing.T) {
		b := New().WithIdentity("a").AddCapability("c").Should("soft only")
		result := Validate(b)
		if !hasCode(result.Info, "NO_MUST_CONSTRAINT") {
			t.Errorf("expected NO_MUST_CONSTRAINT, got %v", result.Info)
		}
	})

	t.Run("no tools no tool recommendations", func(t *testing.T) {
		result := Validate(New().WithIdentity("a").AddCapability("c").Must("m"))
		if hasCode(result.Info, "TOOLS_WITHOUT_EXAMPLES") || hasCode(result.Info, "TOOLS_WITHOUT_GUARDRAILS") {
			t.Errorf("tool recommendations without tools: %v", result.Info)
		}
	})
}

func TestValidate_ConstraintConflicts(t *testing.T) {
	tests := []struct {
		name     string
		must     string
		mustNot  string
		conflict bool
	}{
		{
			name:     "never phrasing overlaps must_not",
			must:     "Never use emojis",
			mustNot:  "use emojis in any response",
			conflict: true,
		},
		{
			name:     "case insensitive",
			must:     "NEVER Use Emojis",
			mustNot:  "USE EMOJIS",
			conflict: true,
		},
		{
			name:     "no never token",
			must:     "Always cite sources",
			mustNot:  "cite sources",
			conflict: false,
		},
		{
			name:     "unrelated rules",
			must:     "Never use emojis",
			mustNot:  "reveal internal data",
			conflict: false,
		},
		{
			name:     "never alone",
			must:     "never",
			mustNot:  "anything",
			conflict: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New().
				WithIdentity("a").
				AddCapability("c").
				Must(tt.must).
				MustNot(tt.mustNot)
			result := Validate(b)
			if got := hasCode(result.Warnings, "CONFLICTING_CONSTRAINTS"); got != tt.conflict {
				t.Errorf("conflict reported = %v, want %v (warnings: %v)", got, tt.conflict, result.Warnings)
			}
		})
	}
}

func TestValidateWith_ChecksToggles(t *testing.T) {
	b := New().
		Tool("dup", "", nil).
		Tool("dup", "", nil)

	all := ValidateWith(b, DefaultChecks())
	if all.Valid {
		t.Error("expected duplicate tool error with default checks")
	}

	none := ValidateWith(b, Checks{})
	if !none.Valid || len(none.Warnings) != 0 || len(none.Info) != 0 {
		t.Errorf("expected no findings with all checks off, got %+v", none)
	}

	only := ValidateWith(b, Checks{MissingIdentity: true})
	if !hasCode(only.Warnings, "MISSING_IDENTITY") {
		t.Error("expected MISSING_IDENTITY with that check enabled")
	}
	if len(only.Errors) != 0 {
		t.Errorf("duplicate check should be off, got %v", only.Errors)
	}
}

func TestValidate_EmitsEventWithCounts(t *testing.T) {
	b := New().
		Tool("dup", "", nil).
		Tool("dup", "", nil)

	var got *Event
	b.SetEmitter(func(e Event) {
		if e.Kind == EventValidate {
			got = &e
		}
	})

	result := Validate(b)

	if got == nil {
		t.Fatal("expected a validate event")
	}
	if got.Errors != len(result.Errors) || got.Warnings != len(result.Warnings) {
		t.Errorf("event counts %d/%d do not match result %d/%d",
			got.Errors, got.Warnings, len(result.Errors), len(result.Warnings))
	}
}

func TestConflictNeedle(t *testing.T) {
	tests := []struct {
		rule string
		want string
		ok   bool
	}{
		{"Never use emojis", "use emojis", true},
		{"never   USE   emojis", "use emojis", true},
		{"Always be kind", "", false},
		{"never", "", false},
		{"NEVER  ", "", false},
	}

	for _, tt := range tests {
		got, ok := conflictNeedle(tt.rule)
		if ok != tt.ok || got != tt.want {
			t.Errorf("conflictNeedle(%q) = (%q, %v), want (%q, %v)", tt.rule, got, ok, tt.want, tt.ok)
		}
	}
}
