package judge

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/petal-labs/iris/core"
)

// mockProvider is a mock implementation of core.Provider for testing.
type mockProvider struct {
	id           string
	chatResponse *core.ChatResponse
	chatError    error
	lastRequest  *core.ChatRequest
}

func (m *mockProvider) ID() string {
	return m.id
}

func (m *mockProvider) Chat(ctx context.Context, req *core.ChatRequest) (*core.ChatResponse, error) {
	m.lastRequest = req
	if m.chatError != nil {
		return nil, m.chatError
	}
	return m.chatResponse, nil
}

func (m *mockProvider) StreamChat(ctx context.Context, req *core.ChatRequest) (*core.ChatStream, error) {
	return nil, nil // not used in tests
}

func (m *mockProvider) Models() []core.ModelInfo {
	return []core.ModelInfo{{ID: "mock-model"}}
}

func (m *mockProvider) Supports(feature core.Feature) bool {
	return feature == core.FeatureChat
}

func TestEvaluate_ParsesVerdict(t *testing.T) {
	mock := &mockProvider{
		id: "mock",
		chatResponse: &core.ChatResponse{
			Output: `{"pass": true, "score": 0.92, "findings": [{"criterion": "states an identity", "met": true, "note": "clear opening"}]}`,
		},
	}

	j := New(mock, "mock-model")
	verdict, err := j.Evaluate(context.Background(), "## Identity\n\nYou are an agent.", []string{"states an identity"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !verdict.Pass {
		t.Error("expected a passing verdict")
	}
	if verdict.Score != 0.92 {
		t.Errorf("unexpected score: %v", verdict.Score)
	}
	if len(verdict.Findings) != 1 || !verdict.Findings[0].Met {
		t.Errorf("unexpected findings: %+v", verdict.Findings)
	}
}

func TestEvaluate_RequestShape(t *testing.T) {
	mock := &mockProvider{
		id:           "mock",
		chatResponse: &core.ChatResponse{Output: `{"pass": false, "score": 0.1}`},
	}

	j := New(mock, "mock-model", WithTemperature(0.2))
	document := "## Identity\n\nYou are a careful agent."
	_, err := j.Evaluate(context.Background(), document, []string{"first criterion", "second criterion"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := mock.lastRequest
	if req == nil {
		t.Fatal("provider was never called")
	}
	if req.Model != "mock-model" {
		t.Errorf("unexpected model: %q", req.Model)
	}
	if req.Instructions == "" {
		t.Error("expected judge instructions to be set")
	}
	if req.Temperature == nil || *req.Temperature != float32(0.2) {
		t.Errorf("expected temperature 0.2, got %v", req.Temperature)
	}
	if len(req.Messages) != 1 || req.Messages[0].Role != core.RoleUser {
		t.Fatalf("expected one user message, got %+v", req.Messages)
	}
	content := req.Messages[0].Content
	if !strings.Contains(content, "1. first criterion") || !strings.Contains(content, "2. second criterion") {
		t.Errorf("criteria not numbered in message:\n%s", content)
	}
	if !strings.Contains(content, document) {
		t.Errorf("document missing from message:\n%s", content)
	}
}

func TestEvaluate_ToleratesWrappedJSON(t *testing.T) {
	mock := &mockProvider{
		id: "mock",
		chatResponse: &core.ChatResponse{
			Output: "Here is my assessment:\n```json\n{\"pass\": true, \"score\": 0.8}\n```\nDone.",
		},
	}

	j := New(mock, "mock-model")
	verdict, err := j.Evaluate(context.Background(), "doc", []string{"c"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !verdict.Pass || verdict.Score != 0.8 {
		t.Errorf("unexpected verdict: %+v", verdict)
	}
}

func TestEvaluate_ProviderError(t *testing.T) {
	mock := &mockProvider{
		id:        "mock",
		chatError: context.DeadlineExceeded,
	}

	j := New(mock, "mock-model")
	_, err := j.Evaluate(context.Background(), "doc", []string{"c"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected wrapped provider error, got %v", err)
	}
}

func TestEvaluate_InputValidation(t *testing.T) {
	mock := &mockProvider{id: "mock", chatResponse: &core.ChatResponse{Output: "{}"}}
	j := New(mock, "mock-model")

	if _, err := j.Evaluate(context.Background(), "  ", []string{"c"}); err == nil {
		t.Error("expected error for empty document")
	}
	if _, err := j.Evaluate(context.Background(), "doc", nil); err == nil {
		t.Error("expected error for missing criteria")
	}
	if mock.lastRequest != nil {
		t.Error("provider should not be called on invalid input")
	}
}

func TestEvaluate_MalformedOutput(t *testing.T) {
	tests := []struct {
		name   string
		output string
	}{
		{"no json", "I think it looks fine."},
		{"broken json", `{"pass": tru`},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockProvider{id: "mock", chatResponse: &core.ChatResponse{Output: tt.output}}
			j := New(mock, "mock-model")
			if _, err := j.Evaluate(context.Background(), "doc", []string{"c"}); err == nil {
				t.Error("expected parse error")
			}
		})
	}
}
