package ai

/*
	##### PROVIDER INPUT #####
*/

// ChatRequest represents a single synchronous completion request.
type ChatRequest struct {
	Model            string            `json:"model,omitempty"`             // Model name or identifier
	Messages         []Message         `json:"messages"`                    // Conversation messages, system prompt excluded
	SystemPrompt     string            `json:"system_prompt,omitempty"`     // Optional system prompt
	ResponseFormat   *ResponseFormat   `json:"response_format,omitempty"`   // Optional response format hint
	GenerationConfig *GenerationConfig `json:"generation_config,omitempty"` // Optional generation configuration
}

// Message represents a single message in a conversation.
type Message struct {
	Role    MessageRole `json:"role"`
	Content string      `json:"content,omitempty"`
}

// GenerationConfig carries the sampling parameters shared across providers.
type GenerationConfig struct {
	MaxOutputTokens int     `json:"max_output_tokens,omitempty"` // Optional max tokens for the output
	Temperature     float32 `json:"temperature,omitempty"`       // Sampling temperature [0..2]
	TopP            float32 `json:"top_p,omitempty"`             // Nucleus sampling [0..1]
}

// ResponseFormat hints the provider at the expected output shape.
type ResponseFormat struct {
	// Type is a provider-portable hint: "text" or "json_object". Providers
	// map it to their native JSON mode.
	Type string `json:"type,omitempty"`
}

// FormatJSONObject asks the provider to emit a single JSON object.
const FormatJSONObject = "json_object"

/*
	##### PROVIDER OUTPUT #####
*/

// Usage reports token accounting for a completed request.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens,omitempty"`
	CompletionTokens int `json:"completion_tokens,omitempty"`
	TotalTokens      int `json:"total_tokens,omitempty"`
}

// ChatResponse represents the response from a chat completion.
type ChatResponse struct {
	Id           string `json:"id"`
	Model        string `json:"model"`
	Object       string `json:"object"`
	Created      int64  `json:"created"`
	Content      string `json:"content"`
	FinishReason string `json:"finish_reason,omitempty"`
	Refusal      string `json:"refusal,omitempty"` // Set when the model refuses to respond (safety/policy)
	Usage        *Usage `json:"usage,omitempty"`
}

/*
	##### ENUMS #####
*/

// MessageRole represents the role of a message; compatible with string.
type MessageRole string

const (
	RoleSystem    MessageRole = "system"    // System instructions/configuration
	RoleUser      MessageRole = "user"      // End-user message
	RoleAssistant MessageRole = "assistant" // Model response
)

// ModelInfo describes one entry of a provider's model catalog.
type ModelInfo struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Recommended bool   `json:"recommended,omitempty"`
}
