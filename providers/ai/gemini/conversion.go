package gemini

import (
	"fmt"
	"strings"
	"time"

	"github.com/pverdi/omniassist/providers/ai"
)

// requestToGemini converts an ai.ChatRequest to a Gemini
// generateContentRequest.
func requestToGemini(request ai.ChatRequest) generateContentRequest {
	req := generateContentRequest{}

	if request.SystemPrompt != "" {
		req.SystemInstruction = &systemInstruction{
			Parts: []part{{Text: request.SystemPrompt}},
		}
	}

	req.Contents = buildContents(request.Messages)
	req.GenerationConfig = buildGenerationConfig(request.GenerationConfig, request.ResponseFormat)

	return req
}

// buildContents converts ai.Message slice to Gemini content slice.
// Role mapping: user -> user, assistant -> model. System messages belong in
// SystemInstruction; any that arrive here are downgraded to user content.
func buildContents(messages []ai.Message) []content {
	var contents []content

	for _, msg := range messages {
		switch msg.Role {
		case ai.RoleAssistant:
			if msg.Content != "" {
				contents = append(contents, content{
					Role:  "model",
					Parts: []part{{Text: msg.Content}},
				})
			}
		default:
			contents = append(contents, content{
				Role:  "user",
				Parts: []part{{Text: msg.Content}},
			})
		}
	}

	return contents
}

// buildGenerationConfig converts ai.GenerationConfig and ai.ResponseFormat
// to Gemini generationConfig. A json_object response format switches the
// response MIME type to application/json, Gemini's native JSON mode.
func buildGenerationConfig(cfg *ai.GenerationConfig, respFmt *ai.ResponseFormat) *generationConfig {
	if cfg == nil && respFmt == nil {
		return nil
	}

	gc := &generationConfig{}

	if cfg != nil {
		if cfg.Temperature > 0 {
			t := float64(cfg.Temperature)
			gc.Temperature = &t
		}
		if cfg.TopP > 0 {
			p := float64(cfg.TopP)
			gc.TopP = &p
		}
		if cfg.MaxOutputTokens > 0 {
			n := cfg.MaxOutputTokens
			gc.MaxOutputTokens = &n
		}
	}

	if respFmt != nil && respFmt.Type == ai.FormatJSONObject {
		gc.ResponseMimeType = "application/json"
	}

	return gc
}

// geminiToGeneric converts a Gemini generateContentResponse to
// ai.ChatResponse.
func geminiToGeneric(resp generateContentResponse) *ai.ChatResponse {
	result := &ai.ChatResponse{
		Id:      fmt.Sprintf("gemini-%d", time.Now().UnixNano()),
		Model:   resp.ModelVersion,
		Object:  "chat.completion",
		Created: time.Now().Unix(),
	}

	if len(resp.Candidates) == 0 {
		result.FinishReason = "error"
		if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
			result.FinishReason = "content_filter"
			result.Refusal = resp.PromptFeedback.BlockReason
		}
		return result
	}

	cand := resp.Candidates[0]
	result.FinishReason = mapFinishReason(cand.FinishReason)

	if cand.Content != nil {
		var textParts []string
		for _, p := range cand.Content.Parts {
			if p.Text != "" {
				textParts = append(textParts, p.Text)
			}
		}
		result.Content = strings.Join(textParts, "\n")
	}

	if resp.UsageMetadata != nil {
		result.Usage = &ai.Usage{
			PromptTokens:     resp.UsageMetadata.PromptTokenCount,
			CompletionTokens: resp.UsageMetadata.CandidatesTokenCount,
			TotalTokens:      resp.UsageMetadata.TotalTokenCount,
		}
	}

	return result
}

// mapFinishReason converts a Gemini finish reason to the generic form.
func mapFinishReason(geminiReason string) string {
	switch geminiReason {
	case "STOP":
		return "stop"
	case "MAX_TOKENS":
		return "length"
	case "SAFETY", "RECITATION":
		return "content_filter"
	default:
		return "stop"
	}
}
