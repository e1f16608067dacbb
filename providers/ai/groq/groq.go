package groq

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"

	"github.com/pverdi/omniassist/providers/ai"
	"github.com/pverdi/omniassist/providers/observability"
)

const (
	defaultBaseURL = "https://api.groq.com/openai/v1"

	// DefaultModel is the catalog's recommended model.
	DefaultModel = "llama-3.3-70b-versatile"
)

// Provider implements the ai.Provider interface for Groq's
// OpenAI-compatible chat completions API.
type Provider struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// New creates a new Groq provider instance with default values from the
// environment.
//
// Environment variables:
//   - GROQ_API_KEY: API key for authentication
//   - GROQ_API_BASE_URL: Base URL for API (optional, defaults to Groq's API)
func New() *Provider {
	apiKey := os.Getenv("GROQ_API_KEY")
	baseURL := os.Getenv("GROQ_API_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Provider{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

// Ensure Provider implements ai.Provider at compile time.
var _ ai.Provider = (*Provider)(nil)

// WithAPIKey sets the API key for the provider.
func (p *Provider) WithAPIKey(apiKey string) ai.Provider {
	p.apiKey = apiKey
	return p
}

// WithBaseURL sets the base URL for the API.
func (p *Provider) WithBaseURL(baseURL string) ai.Provider {
	p.baseURL = baseURL
	return p
}

// WithHttpClient sets a custom HTTP client.
func (p *Provider) WithHttpClient(httpClient *http.Client) ai.Provider {
	p.client = httpClient
	return p
}

// SendMessage implements the ai.Provider interface. It sends a chat request
// to Groq's chat completions endpoint and returns the response.
func (p *Provider) SendMessage(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
	observer := observability.ObserverFromContext(ctx)

	model := request.Model
	if model == "" {
		model = DefaultModel
	}

	if observer != nil {
		observer.Debug("groq provider preparing request",
			observability.String(observability.AttrProvider, "groq"),
			observability.String(observability.AttrEndpoint, p.baseURL),
			observability.String(observability.AttrModel, model),
			observability.Int("request.messages", len(request.Messages)),
		)
	}

	if p.apiKey == "" {
		return nil, fmt.Errorf("GROQ_API_KEY is not set")
	}

	client := openai.NewClient(
		option.WithAPIKey(p.apiKey),
		option.WithBaseURL(p.baseURL),
		option.WithHTTPClient(p.client),
	)

	params := buildChatParams(request, model)

	completion, err := client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("groq chat completion failed: %w", err)
	}

	result := completionToGeneric(completion)
	result.Model = model // Ensure model is set even if not in response

	if observer != nil {
		observer.Debug("groq provider response",
			observability.String(observability.AttrModel, model),
			observability.String(observability.AttrFinishReason, result.FinishReason),
			observability.Int(observability.AttrResponseLength, len(result.Content)),
		)
	}

	return result, nil
}

// buildChatParams converts an ai.ChatRequest to openai-go chat completion
// params. The system prompt, when present, becomes the leading system
// message.
func buildChatParams(request ai.ChatRequest, model string) openai.ChatCompletionNewParams {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(request.Messages)+1)

	if request.SystemPrompt != "" {
		messages = append(messages, openai.SystemMessage(request.SystemPrompt))
	}

	for _, msg := range request.Messages {
		switch msg.Role {
		case ai.RoleSystem:
			messages = append(messages, openai.SystemMessage(msg.Content))
		case ai.RoleAssistant:
			messages = append(messages, openai.AssistantMessage(msg.Content))
		default:
			messages = append(messages, openai.UserMessage(msg.Content))
		}
	}

	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(model),
		Messages: messages,
	}

	if cfg := request.GenerationConfig; cfg != nil {
		if cfg.Temperature > 0 {
			params.Temperature = openai.Float(float64(cfg.Temperature))
		}
		if cfg.TopP > 0 {
			params.TopP = openai.Float(float64(cfg.TopP))
		}
		if cfg.MaxOutputTokens > 0 {
			params.MaxCompletionTokens = openai.Int(int64(cfg.MaxOutputTokens))
		}
	}

	if request.ResponseFormat != nil && request.ResponseFormat.Type == ai.FormatJSONObject {
		jsonObject := shared.NewResponseFormatJSONObjectParam()
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &jsonObject,
		}
	}

	return params
}

// completionToGeneric converts an openai-go chat completion to
// ai.ChatResponse.
func completionToGeneric(completion *openai.ChatCompletion) *ai.ChatResponse {
	result := &ai.ChatResponse{
		Id:      completion.ID,
		Model:   completion.Model,
		Object:  string(completion.Object),
		Created: completion.Created,
	}

	if len(completion.Choices) > 0 {
		choice := completion.Choices[0]
		result.Content = choice.Message.Content
		result.FinishReason = choice.FinishReason
		result.Refusal = choice.Message.Refusal
	}

	if completion.Usage.TotalTokens > 0 {
		result.Usage = &ai.Usage{
			PromptTokens:     int(completion.Usage.PromptTokens),
			CompletionTokens: int(completion.Usage.CompletionTokens),
			TotalTokens:      int(completion.Usage.TotalTokens),
		}
	}

	return result
}

// Models returns the catalog of Groq models offered by the assistant, in
// display order.
func Models() []ai.ModelInfo {
	return []ai.ModelInfo{
		{ID: "llama-3.3-70b-versatile", Description: "Most capable (Recommended)", Recommended: true},
		{ID: "llama-3.1-8b-instant", Description: "Fastest responses"},
		{ID: "mixtral-8x7b-32768", Description: "Long context window"},
		{ID: "gemma2-9b-it", Description: "Lightweight & efficient"},
	}
}
