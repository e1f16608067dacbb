package gemini

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/pverdi/omniassist/internal/httpx"
	"github.com/pverdi/omniassist/providers/ai"
	"github.com/pverdi/omniassist/providers/observability"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

	// DefaultModel is the catalog's recommended model.
	DefaultModel = "gemini-2.0-flash"
)

// Provider implements the ai.Provider interface for Google's Gemini API.
type Provider struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// New creates a new Gemini provider instance with default values from the
// environment.
//
// Environment variables:
//   - GEMINI_API_KEY: API key for authentication
//   - GEMINI_API_BASE_URL: Base URL for API (optional, defaults to Google's API)
func New() *Provider {
	apiKey := os.Getenv("GEMINI_API_KEY")
	baseURL := os.Getenv("GEMINI_API_BASE_URL")
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
// to the Gemini generateContent endpoint and returns the response.
func (p *Provider) SendMessage(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
	observer := observability.ObserverFromContext(ctx)

	model := request.Model
	if model == "" {
		model = DefaultModel
	}

	if observer != nil {
		observer.Debug("gemini provider preparing request",
			observability.String(observability.AttrProvider, "gemini"),
			observability.String(observability.AttrEndpoint, p.baseURL),
			observability.String(observability.AttrModel, model),
			observability.Int("request.messages", len(request.Messages)),
		)
	}

	if p.apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set")
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", p.baseURL, model)
	geminiReq := requestToGemini(request)

	// Gemini authenticates with its own header instead of a Bearer token.
	httpResponse, resp, err := httpx.DoPostSync[generateContentResponse](
		ctx,
		p.client,
		url,
		"",
		geminiReq,
		httpx.HeaderOption{Key: "x-goog-api-key", Value: p.apiKey},
	)
	if err != nil {
		return nil, err
	}

	if resp == nil {
		return nil, fmt.Errorf("empty response from Gemini API: %s", httpResponse.Status)
	}

	result := geminiToGeneric(*resp)
	result.Model = model // Ensure model is set even if not in response

	if observer != nil {
		observer.Debug("gemini provider response",
			observability.String(observability.AttrModel, model),
			observability.String(observability.AttrFinishReason, result.FinishReason),
			observability.Int(observability.AttrResponseLength, len(result.Content)),
		)
	}

	return result, nil
}

// Models returns the catalog of Gemini models offered by the assistant,
// in display order.
func Models() []ai.ModelInfo {
	return []ai.ModelInfo{
		{ID: "gemini-2.0-flash", Description: "Fast & versatile (Recommended)", Recommended: true},
		{ID: "gemini-1.5-flash", Description: "Fast & efficient"},
		{ID: "gemini-1.5-pro", Description: "Advanced reasoning"},
		{ID: "gemini-2.5-flash-preview-03-25", Description: "Latest Flash preview"},
		{ID: "gemini-2.5-pro-preview-03-25", Description: "Latest Pro preview"},
	}
}
