// Package ai defines the provider-neutral chat types and the [Provider]
// interface that concrete completion providers (gemini, groq) implement.
//
// The shapes here are deliberately small: the assistant issues one blocking
// request per user interaction, so there is no streaming, tool calling, or
// multimodal content. [ChatRequest] carries the prompt and a portable JSON
// response-format hint; [ChatResponse] carries the text, finish reason, and
// token usage.
package ai
