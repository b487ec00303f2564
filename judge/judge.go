// Package judge evaluates rendered prompt documents with an LLM.
// It complements the static validator: the validator checks structure, the
// judge asks a model whether the document actually reads as intended. Callers
// supply any Iris provider; the package never constructs one itself.
package judge

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/petal-labs/iris/core"
)

const judgeInstructions = `You are a quality reviewer for AI system prompts.
You will receive a system prompt document and a list of criteria.
Judge whether the document satisfies each criterion.

Respond with JSON only, no prose, in this exact shape:
{"pass": true, "score": 0.9, "findings": [{"criterion": "...", "met": true, "note": "..."}]}

"score" is your overall quality rating between 0 and 1.
"pass" is true only when every criterion is met.`

// Finding is the judge's assessment of one criterion.
type Finding struct {
	Criterion string `json:"criterion"`
	Met       bool   `json:"met"`
	Note      string `json:"note,omitempty"`
}

// Verdict is the judge's overall assessment of a document.
type Verdict struct {
	Pass     bool      `json:"pass"`
	Score    float64   `json:"score"`
	Findings []Finding `json:"findings,omitempty"`
}

// Judge evaluates prompt documents against caller-supplied criteria using an
// Iris chat provider.
type Judge struct {
	provider    core.Provider
	model       core.ModelID
	temperature *float32
}

// Option configures a Judge.
type Option func(*Judge)

// WithTemperature sets the sampling temperature for evaluation requests.
// Low values keep verdicts stable across runs.
func WithTemperature(t float32) Option {
	return func(j *Judge) {
		j.temperature = &t
	}
}

// New creates a Judge backed by the given provider and model.
func New(provider core.Provider, model core.ModelID, opts ...Option) *Judge {
	j := &Judge{provider: provider, model: model}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Evaluate asks the model to judge document against the given criteria.
// At least one criterion is required.
func (j *Judge) Evaluate(ctx context.Context, document string, criteria []string) (Verdict, error) {
	if strings.TrimSpace(document) == "" {
		return Verdict{}, fmt.Errorf("judge: empty document")
	}
	if len(criteria) == 0 {
		return Verdict{}, fmt.Errorf("judge: no criteria given")
	}

	req := &core.ChatRequest{
		Model:        j.model,
		Instructions: judgeInstructions,
		Messages: []core.Message{
			{Role: core.RoleUser, Content: buildEvaluationMessage(document, criteria)},
		},
	}
	if j.temperature != nil {
		req.Temperature = j.temperature
	}

	resp, err := j.provider.Chat(ctx, req)
	if err != nil {
		return Verdict{}, fmt.Errorf("judge: provider chat failed: %w", err)
	}

	return parseVerdict(resp.Output)
}

func buildEvaluationMessage(document string, criteria []string) string {
	var sb strings.Builder
	sb.WriteString("Criteria:\n")
	for i, c := range criteria {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, c)
	}
	sb.WriteString("\nDocument:\n")
	sb.WriteString(document)
	return sb.String()
}

// parseVerdict extracts the JSON verdict from model output. Models sometimes
// wrap JSON in code fences or surrounding prose, so it parses the slice from
// the first "{" to the last "}". The instructions demand a single JSON object
// with no prose; this tolerates fencing around one object, not output that
// contains several objects or brace-bearing trailing text.
func parseVerdict(output string) (Verdict, error) {
	start := strings.Index(output, "{")
	end := strings.LastIndex(output, "}")
	if start < 0 || end <= start {
		return Verdict{}, fmt.Errorf("judge: no JSON object in model output")
	}

	var v Verdict
	if err := json.Unmarshal([]byte(output[start:end+1]), &v); err != nil {
		return Verdict{}, fmt.Errorf("judge: parse verdict: %w", err)
	}
	return v, nil
}
