package ai

import (
	"context"
	"net/http"
)

// Provider is the interface every completion provider implementation must
// satisfy. It covers a single request lifecycle: authentication, endpoint
// configuration, message dispatch, and response interpretation. Calls are
// synchronous; cancellation and deadlines come from the caller's context.
type Provider interface {
	// SendMessage sends a chat request to the provider and returns the
	// completed response. Returns an error if the provider call fails,
	// the context is cancelled, or the response cannot be decoded.
	SendMessage(ctx context.Context, request ChatRequest) (*ChatResponse, error)

	// WithAPIKey sets the API key used for authenticating requests.
	WithAPIKey(apiKey string) Provider

	// WithBaseURL overrides the default base URL for API requests.
	WithBaseURL(baseURL string) Provider

	// WithHttpClient sets the HTTP client used for outbound requests.
	WithHttpClient(httpClient *http.Client) Provider
}
