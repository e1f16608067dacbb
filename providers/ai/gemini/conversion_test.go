package gemini

import (
	"testing"

	"github.com/pverdi/omniassist/providers/ai"
)

func TestRequestToGemini(t *testing.T) {
	req := ai.ChatRequest{
		Model:        "gemini-2.0-flash",
		SystemPrompt: "You are a structuring assistant.",
		Messages: []ai.Message{
			{Role: ai.RoleUser, Content: "plan my week"},
			{Role: ai.RoleAssistant, Content: "{\"plan\":{}}"},
			{Role: ai.RoleUser, Content: "add a gym day"},
		},
		ResponseFormat:   &ai.ResponseFormat{Type: ai.FormatJSONObject},
		GenerationConfig: &ai.GenerationConfig{Temperature: 0.4, MaxOutputTokens: 1024},
	}

	got := requestToGemini(req)

	if got.SystemInstruction == nil || got.SystemInstruction.Parts[0].Text != req.SystemPrompt {
		t.Errorf("system instruction not mapped: %+v", got.SystemInstruction)
	}
	if len(got.Contents) != 3 {
		t.Fatalf("len(contents) = %d, want 3", len(got.Contents))
	}
	wantRoles := []string{"user", "model", "user"}
	for i, c := range got.Contents {
		if c.Role != wantRoles[i] {
			t.Errorf("contents[%d].Role = %q, want %q", i, c.Role, wantRoles[i])
		}
	}
	if got.GenerationConfig == nil {
		t.Fatal("generation config missing")
	}
	if got.GenerationConfig.ResponseMimeType != "application/json" {
		t.Errorf("ResponseMimeType = %q, want application/json", got.GenerationConfig.ResponseMimeType)
	}
	if got.GenerationConfig.Temperature == nil || *got.GenerationConfig.Temperature != 0.4 {
		t.Errorf("Temperature = %v", got.GenerationConfig.Temperature)
	}
	if got.GenerationConfig.MaxOutputTokens == nil || *got.GenerationConfig.MaxOutputTokens != 1024 {
		t.Errorf("MaxOutputTokens = %v", got.GenerationConfig.MaxOutputTokens)
	}
}

func TestRequestToGemini_NoConfig(t *testing.T) {
	got := requestToGemini(ai.ChatRequest{
		Messages: []ai.Message{{Role: ai.RoleUser, Content: "hi"}},
	})
	if got.GenerationConfig != nil {
		t.Errorf("GenerationConfig = %+v, want nil", got.GenerationConfig)
	}
	if got.SystemInstruction != nil {
		t.Errorf("SystemInstruction = %+v, want nil", got.SystemInstruction)
	}
}

func TestGeminiToGeneric(t *testing.T) {
	resp := generateContentResponse{
		ModelVersion: "gemini-2.0-flash-001",
		Candidates: []candidate{
			{
				Content: &content{
					Role:  "model",
					Parts: []part{{Text: `{"a":`}, {Text: `1}`}},
				},
				FinishReason: "STOP",
			},
		},
		UsageMetadata: &usageMetadata{
			PromptTokenCount:     12,
			CandidatesTokenCount: 8,
			TotalTokenCount:      20,
		},
	}

	got := geminiToGeneric(resp)

	if got.Content != "{\"a\":\n1}" {
		t.Errorf("Content = %q", got.Content)
	}
	if got.FinishReason != "stop" {
		t.Errorf("FinishReason = %q, want stop", got.FinishReason)
	}
	if got.Usage == nil || got.Usage.TotalTokens != 20 {
		t.Errorf("Usage = %+v", got.Usage)
	}
	if got.Model != "gemini-2.0-flash-001" {
		t.Errorf("Model = %q", got.Model)
	}
}

func TestGeminiToGeneric_Blocked(t *testing.T) {
	resp := generateContentResponse{
		PromptFeedback: &promptFeedback{BlockReason: "SAFETY"},
	}

	got := geminiToGeneric(resp)

	if got.FinishReason != "content_filter" {
		t.Errorf("FinishReason = %q, want content_filter", got.FinishReason)
	}
	if got.Refusal != "SAFETY" {
		t.Errorf("Refusal = %q, want SAFETY", got.Refusal)
	}
}

func TestMapFinishReason(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "STOP", want: "stop"},
		{in: "MAX_TOKENS", want: "length"},
		{in: "SAFETY", want: "content_filter"},
		{in: "RECITATION", want: "content_filter"},
		{in: "OTHER", want: "stop"},
		{in: "", want: "stop"},
	}
	for _, tt := range tests {
		if got := mapFinishReason(tt.in); got != tt.want {
			t.Errorf("mapFinishReason(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
