// Package groq implements the [ai.Provider] interface for Groq's
// OpenAI-compatible chat completions API.
//
// Requests are sent through the openai-go SDK pointed at Groq's endpoint,
// so message construction, JSON mode, and response decoding follow the
// OpenAI wire format directly. The primary entry point is [New], which
// reads GROQ_API_KEY and GROQ_API_BASE_URL from the environment. The
// served model catalog is exposed through [Models].
package groq
